// Package fsio is the editor's narrow view of the file system: whole-file
// reads and writes plus a backup copy.
package fsio

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound wraps reads of a path that does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrPermissionDenied wraps reads or writes the OS refused.
	ErrPermissionDenied = errors.New("permission denied")
)

// FileSystem reads and writes whole UTF-8 text files.
type FileSystem interface {
	ReadFile(path string) (string, error)
	WriteFile(path, content string) error
	Exists(path string) bool
	// Backup copies path to BackupPath(path). A missing path is not an error.
	Backup(path string) error
}

// BackupPath returns where Backup copies path to.
func BackupPath(path string) string {
	return path + ".bak"
}

// classify wraps err with ErrNotFound or ErrPermissionDenied when it
// matches, keeping the original error in the chain.
func classify(op, path string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s %q: %w: %w", op, path, ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s %q: %w: %w", op, path, ErrPermissionDenied, err)
	}
	return fmt.Errorf("%s %q: %w", op, path, err)
}
