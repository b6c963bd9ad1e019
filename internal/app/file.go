package app

import (
	"errors"
	"fmt"

	"github.com/bethropolis/modal/internal/buffer"
	"github.com/bethropolis/modal/internal/event"
	"github.com/bethropolis/modal/internal/fsio"
	"github.com/bethropolis/modal/internal/logger"
	"github.com/bethropolis/modal/internal/modehandler"
	"github.com/bethropolis/modal/internal/types"
)

// loadBuffer reads path into a new buffer. A missing file is a new,
// empty buffer that keeps the path. Any other read error also yields an
// empty buffer with the path, plus the error.
func loadBuffer(fsys fsio.FileSystem, path string) (buf *buffer.TextBuffer, newFile bool, err error) {
	if path == "" {
		return buffer.New(), false, nil
	}
	text, err := fsys.ReadFile(path)
	switch {
	case err == nil:
		return buffer.NewFromText(path, text), false, nil
	case errors.Is(err, fsio.ErrNotFound):
		return buffer.NewFromText(path, ""), true, nil
	}
	return buffer.NewFromText(path, ""), false, err
}

// load replaces the session buffer with the contents of path.
func (a *App) load(path string) {
	buf, newFile, err := loadBuffer(a.fs, path)
	a.session.Buffer = buf
	a.session.SetCursor(types.Position{})

	a.events.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{
		FilePath:  path,
		LineCount: buf.LineCount(),
		NewFile:   newFile,
	})
	if err != nil {
		logger.Warnf("App: load failed, starting empty: %v", err)
		a.showError(err)
	}
}

// save writes the buffer to its path, after a backup copy when enabled.
// On failure the buffer stays modified and the error is shown.
func (a *App) save() error {
	buf := a.session.Buffer
	path := buf.FilePath()
	if path == "" {
		a.showError(modehandler.ErrNoFileName)
		return modehandler.ErrNoFileName
	}

	if a.cfg.BackupOnSave {
		if err := a.fs.Backup(path); err != nil {
			err = fmt.Errorf("backup failed: %w", err)
			logger.Errorf("App: %v", err)
			a.showError(err)
			return err
		}
	}

	content := buf.Serialize()
	if err := a.fs.WriteFile(path, content); err != nil {
		logger.Errorf("App: save failed: %v", err)
		a.showError(err)
		return err
	}

	buf.MarkSaved()
	a.events.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: path, Bytes: len(content)})
	a.showMessage("\"%s\" written", path)
	return nil
}
