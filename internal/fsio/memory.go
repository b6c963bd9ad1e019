package fsio

import (
	"fmt"
	"io/fs"
	"sort"
)

// Memory is an in-memory FileSystem for tests.
type Memory struct {
	files      map[string]string
	readOnly   map[string]bool
	readErrors map[string]error
}

var _ FileSystem = (*Memory)(nil)

// NewMemory returns a Memory holding files.
func NewMemory(files map[string]string) *Memory {
	m := &Memory{
		files:      make(map[string]string),
		readOnly:   make(map[string]bool),
		readErrors: make(map[string]error),
	}
	for path, content := range files {
		m.files[path] = content
	}
	return m
}

// SetReadOnly makes writes to path fail with ErrPermissionDenied.
func (m *Memory) SetReadOnly(path string, readOnly bool) {
	m.readOnly[path] = readOnly
}

// SetReadError makes reads of path fail with err wrapped the way OS
// errors are. A nil err clears it.
func (m *Memory) SetReadError(path string, err error) {
	if err == nil {
		delete(m.readErrors, path)
		return
	}
	m.readErrors[path] = err
}

// Files returns the stored paths in order.
func (m *Memory) Files() []string {
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (m *Memory) ReadFile(path string) (string, error) {
	if err, ok := m.readErrors[path]; ok {
		return "", classify("read", path, err)
	}
	content, ok := m.files[path]
	if !ok {
		return "", classify("read", path, fs.ErrNotExist)
	}
	return content, nil
}

func (m *Memory) WriteFile(path, content string) error {
	if m.readOnly[path] {
		return classify("write", path, fs.ErrPermission)
	}
	m.files[path] = content
	return nil
}

func (m *Memory) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *Memory) Backup(path string) error {
	content, ok := m.files[path]
	if !ok {
		return nil
	}
	if err := m.WriteFile(BackupPath(path), content); err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	return nil
}
