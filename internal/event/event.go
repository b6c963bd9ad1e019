// Package event is a small synchronous publish/subscribe bus.
package event

import (
	"github.com/bethropolis/modal/internal/mode"
	"github.com/bethropolis/modal/internal/types"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferLoaded   // A file was read into the buffer
	TypeBufferModified // Buffer content changed, including undo and redo
	TypeBufferSaved    // The buffer was written to disk
	TypeCursorMoved    // The cursor position changed
	TypeModeChanged    // The active mode changed

	TypeAppQuit // The main loop is about to stop
)

func (t Type) String() string {
	switch t {
	case TypeBufferLoaded:
		return "buffer-loaded"
	case TypeBufferModified:
		return "buffer-modified"
	case TypeBufferSaved:
		return "buffer-saved"
	case TypeCursorMoved:
		return "cursor-moved"
	case TypeModeChanged:
		return "mode-changed"
	case TypeAppQuit:
		return "app-quit"
	}
	return "unknown"
}

// Event is what handlers receive.
type Event struct {
	Type Type
	Data any
}

// BufferLoadedData describes a completed load.
type BufferLoadedData struct {
	FilePath  string
	LineCount int
	NewFile   bool // The path did not exist yet
}

// BufferModifiedData describes an edit.
type BufferModifiedData struct {
	Action    string // Name of the input action that caused it
	LineCount int
	Modified  bool
}

// BufferSavedData describes a completed save.
type BufferSavedData struct {
	FilePath string
	Bytes    int
}

// CursorMovedData carries the new cursor position.
type CursorMovedData struct {
	Position types.Position
}

// ModeChangedData carries both ends of a mode transition.
type ModeChangedData struct {
	From mode.Mode
	To   mode.Mode
}

// AppQuitData records whether unsaved changes were discarded.
type AppQuitData struct {
	Forced bool
}
