package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
)

// ErrTargetExists is returned when a copy destination is already taken.
var ErrTargetExists = errors.New("target already exists")

// CopyFile copies src to a new file at dst. It never overwrites: an existing
// dst yields ErrTargetExists.
func CopyFile(src, dst string) error {
	return copyNew(src, dst, false)
}

// CopyFileVerified copies like CopyFile and additionally compares size and
// SHA256 of source and copy. dst is removed on mismatch.
func CopyFileVerified(src, dst string) error {
	return copyNew(src, dst, true)
}

func copyNew(src, dst string, verify bool) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrTargetExists, dst)
		}
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	var (
		reader           io.Reader = in
		writer           io.Writer = out
		srcHash, dstHash hash.Hash
	)
	if verify {
		srcHash, dstHash = sha256.New(), sha256.New()
		reader = io.TeeReader(in, srcHash)
		writer = io.MultiWriter(out, dstHash)
	}

	written, err := io.Copy(writer, reader)
	if err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	if !verify {
		return nil
	}

	if written != srcInfo.Size() {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written)
	}
	if !bytes.Equal(srcHash.Sum(nil), dstHash.Sum(nil)) {
		_ = os.Remove(dst)
		return errors.New("copy hash mismatch: file corrupted during copy")
	}
	return nil
}
