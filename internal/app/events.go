package app

import (
	"github.com/bethropolis/modal/internal/event"
	"github.com/bethropolis/modal/internal/logger"
)

// subscribeLogging records the file-level events in the log.
func (a *App) subscribeLogging() {
	a.events.Subscribe(event.TypeBufferLoaded, func(e event.Event) bool {
		if d, ok := e.Data.(event.BufferLoadedData); ok {
			logger.Infof("App: loaded %q (%d lines, new=%v)", d.FilePath, d.LineCount, d.NewFile)
		}
		return false
	})
	a.events.Subscribe(event.TypeBufferSaved, func(e event.Event) bool {
		if d, ok := e.Data.(event.BufferSavedData); ok {
			logger.Infof("App: wrote %d bytes to %q", d.Bytes, d.FilePath)
		}
		return false
	})
	a.events.Subscribe(event.TypeAppQuit, func(e event.Event) bool {
		if d, ok := e.Data.(event.AppQuitData); ok {
			logger.Infof("App: quit (forced=%v)", d.Forced)
		}
		return false
	})
}
