package preflight

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"brokerdocs/internal/broker"
	"brokerdocs/internal/translation"
)

// CheckSourceDirectory verifies that the directory exists and can be listed
// and read.
func CheckSourceDirectory(name, path string) Result {
	return checkDirectory(name, path, unix.R_OK|unix.X_OK, "read ok")
}

// CheckTargetDirectory verifies that the target directory is writable. A
// missing target passes when its nearest existing ancestor is writable, since
// the run creates it.
func CheckTargetDirectory(name, path string) Result {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
		}
		return checkDirectory(name, path, unix.R_OK|unix.W_OK|unix.X_OK, "read/write ok")
	}
	if !os.IsNotExist(err) {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}

	ancestor := filepath.Dir(path)
	for {
		if _, err := os.Stat(ancestor); err == nil {
			break
		}
		next := filepath.Dir(ancestor)
		if next == ancestor {
			break
		}
		ancestor = next
	}
	if err := unix.Access(ancestor, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot create under %s: %v)", path, ancestor, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", path)}
}

// CheckTranslation verifies that the broker publishes documents in lang and
// that the translation file covers every required key.
func CheckTranslation(b broker.Broker, lang, dir string) Result {
	name := fmt.Sprintf("Translation (%s)", lang)
	dict, err := translation.Select(b, lang, dir)
	if err != nil {
		var missing *translation.MissingKeyError
		if errors.As(err, &missing) {
			return Result{Name: name, Detail: "missing key " + missing.Path, Err: err}
		}
		return Result{Name: name, Detail: err.Error(), Err: err}
	}
	return Result{Name: name, Passed: true, Detail: dict.Source}
}

func checkDirectory(name, path string, mode uint32, okDetail string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, mode); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, okDetail)}
}
