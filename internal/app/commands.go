package app

import (
	"github.com/bethropolis/modal/internal/logger"
)

// registerAppCommands registers commands that need App state.
func registerAppCommands(a *App) {
	api := a.editorAPI

	err := api.RegisterCommand("theme", func() error {
		api.SetStatusMessage("Current theme: %s", a.GetTheme().Name)
		return nil
	})
	if err != nil {
		logger.Warnf("Failed to register ':theme' command: %v", err)
	}
}
