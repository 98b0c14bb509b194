package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// KeepFile is the placeholder that keeps otherwise empty directories in
// version control. It is never listed or removed.
const KeepFile = ".gitkeep"

const pdfMIME = "application/pdf"

// ListFiles returns the regular files below dir in lexical order. When
// recursive is false only the top level is read.
func ListFiles(dir string, recursive bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || d.Name() == KeepFile {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// IsPDF reports whether path has a .pdf extension and PDF content.
func IsPDF(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return false, nil
	}
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return false, fmt.Errorf("detect type of %s: %w", path, err)
	}
	return mime.Is(pdfMIME), nil
}

// ListPDFs returns every PDF below dir, recursively, in lexical order.
// Files with a .pdf extension but other content are returned separately so
// callers can report them.
func ListPDFs(dir string) (pdfs []string, rejected []string, err error) {
	files, err := ListFiles(dir, true)
	if err != nil {
		return nil, nil, err
	}
	for _, path := range files {
		ok, err := IsPDF(path)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case ok:
			pdfs = append(pdfs, path)
		case strings.EqualFold(filepath.Ext(path), ".pdf"):
			rejected = append(rejected, path)
		}
	}
	return pdfs, rejected, nil
}

// ClearDirectory removes everything inside dir except KeepFile entries at
// any depth. Directories that still hold a KeepFile are kept. A missing dir
// is not an error.
func ClearDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.Name() == KeepFile {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !entry.IsDir() {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("remove %s: %w", path, err)
			}
			continue
		}
		if err := ClearDirectory(path); err != nil {
			return err
		}
		if _, err := os.Stat(filepath.Join(path, KeepFile)); err == nil {
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return nil
}

// Exists reports whether anything exists at path. Errors other than
// "does not exist" count as existing so callers never overwrite blindly.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}
