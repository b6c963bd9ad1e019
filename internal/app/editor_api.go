package app

import (
	"github.com/bethropolis/modal/internal/core"
	"github.com/bethropolis/modal/internal/event"
	"github.com/bethropolis/modal/internal/modehandler"
	"github.com/bethropolis/modal/internal/plugin"
)

var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// appEditorAPI is what plugins see of the App.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

func (api *appEditorAPI) BufferText() string {
	return api.app.session.Buffer.Serialize()
}

func (api *appEditorAPI) BufferLineCount() int {
	return api.app.session.Buffer.LineCount()
}

func (api *appEditorAPI) BufferFilePath() string {
	return api.app.session.Buffer.FilePath()
}

func (api *appEditorAPI) IsBufferModified() bool {
	return api.app.session.Buffer.IsModified()
}

// RegisterCommand adds a colon command whose error, if any, goes to the
// status line.
func (api *appEditorAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	return api.app.GetModeHandler().RegisterCommand(name, func(*core.Session) modehandler.Outcome {
		return modehandler.Outcome{Redraw: true, Err: fn()}
	})
}

func (api *appEditorAPI) Subscribe(eventType event.Type, handler event.Handler) {
	api.app.events.Subscribe(eventType, handler)
}

func (api *appEditorAPI) SetStatusMessage(format string, args ...any) {
	api.app.showMessage(format, args...)
}
