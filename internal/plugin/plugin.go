package plugin

import (
	"github.com/bethropolis/modal/internal/event"
)

// CommandFunc is a colon command contributed by a plugin. A returned error
// is shown on the status line.
type CommandFunc func() error

// EditorAPI is the part of the editor a plugin may touch.
type EditorAPI interface {
	// Buffer access is read-only.
	BufferText() string
	BufferLineCount() int
	BufferFilePath() string
	IsBufferModified() bool

	RegisterCommand(name string, fn CommandFunc) error
	Subscribe(eventType event.Type, handler event.Handler)
	SetStatusMessage(format string, args ...any)
}

// Plugin is an optional editor extension.
type Plugin interface {
	Name() string
	// Initialize is called once with the editor API, before the first key.
	Initialize(api EditorAPI) error
	// Shutdown is called when the editor exits.
	Shutdown() error
}
