package fsio

import (
	"os"
)

const fileMode = 0o644

// OS is the FileSystem backed by the real disk.
type OS struct{}

var _ FileSystem = OS{}

func (OS) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", classify("read", path, err)
	}
	return string(data), nil
}

// WriteFile replaces path, keeping the mode of an existing file.
func (OS) WriteFile(path, content string) error {
	mode := os.FileMode(fileMode)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return classify("write", path, os.WriteFile(path, []byte(content), mode))
}

func (OS) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (o OS) Backup(path string) error {
	if !o.Exists(path) {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return classify("backup", path, err)
	}
	return classify("backup", BackupPath(path), os.WriteFile(BackupPath(path), data, fileMode))
}
