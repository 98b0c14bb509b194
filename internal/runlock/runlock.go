package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"brokerdocs/internal/services"
)

// ErrLocked reports that another run already owns the target directory.
var ErrLocked = errors.New("target directory is in use by another run")

// Lock is an exclusive advisory lock tied to one target directory.
type Lock struct {
	path string
	lock *flock.Flock
}

// PathFor returns the lock file used for target. Lock files live in the
// system temp directory so read-only or synced targets never see them.
func PathFor(target string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(target)))
	return filepath.Join(os.TempDir(), "brokerdocs-"+hex.EncodeToString(sum[:8])+".lock")
}

// Acquire takes the lock for target without blocking.
func Acquire(target string) (*Lock, error) {
	path := PathFor(target)
	l := &Lock{path: path, lock: flock.New(path)}
	ok, err := l.lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrFilesystem, "runlock", "acquire", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s (lock %s)", ErrLocked, target, path)
	}
	return l, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string { return l.path }

// Release unlocks and removes the lock file.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	_ = os.Remove(l.path)
	return nil
}
