package app

import (
	"fmt"

	"github.com/bethropolis/modal/internal/buffer"
	"github.com/bethropolis/modal/internal/clipboard"
	"github.com/bethropolis/modal/internal/config"
	"github.com/bethropolis/modal/internal/core"
	"github.com/bethropolis/modal/internal/event"
	"github.com/bethropolis/modal/internal/fsio"
	"github.com/bethropolis/modal/internal/logger"
	"github.com/bethropolis/modal/internal/modehandler"
	"github.com/bethropolis/modal/internal/plugin"
	"github.com/bethropolis/modal/internal/statusbar"
	"github.com/bethropolis/modal/internal/theme"
	"github.com/bethropolis/modal/internal/tui"
	"github.com/bethropolis/modal/internal/utils"
)

// Options configures a new App. Zero fields get the real defaults.
type Options struct {
	Config   *config.Config
	FilePath string
	FS       fsio.FileSystem // fsio.OS{} when nil
	Screen   tui.Screen      // a tcell terminal when nil
}

// App wires the session, the command engine and the terminal together and
// runs the single-threaded edit loop.
type App struct {
	cfg         config.EditorConfig
	fs          fsio.FileSystem
	screen      tui.Screen
	session     *core.Session
	modeHandler *modehandler.ModeHandler
	events      *event.Manager
	statusBar   *statusbar.StatusBar
	plugins     *plugin.Manager
	editorAPI   plugin.EditorAPI
	activeTheme *theme.Theme

	messageTimer utils.Debouncer // wakes the loop when a message expires
}

// New creates an App and loads opts.FilePath. A file that cannot be read
// leaves an empty buffer and a status warning rather than an error.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = fsio.OS{}
	}

	activeTheme, themeErr := theme.Resolve(fsys, cfg.Editor.Theme)
	if themeErr != nil {
		logger.Warnf("App: %v; using the built-in theme", themeErr)
		activeTheme = theme.DevComfortDark()
	}

	events := event.NewManager()
	statusBar := statusbar.New(statusbar.Config{Theme: activeTheme, MessageTimeout: config.MessageTimeout})
	statusBar.Subscribe(events)

	session := core.NewSession(buffer.New(), clipboard.NewRegister(cfg.Editor.SystemClipboard))

	a := &App{
		cfg:         cfg.Editor,
		fs:          fsys,
		session:     session,
		events:      events,
		statusBar:   statusBar,
		plugins:     plugin.NewManager(),
		activeTheme: activeTheme,
		modeHandler: modehandler.New(modehandler.Config{
			Session:      session,
			EventManager: events,
		}),
	}
	a.subscribeLogging()

	a.editorAPI = newEditorAPI(a)
	registerAppCommands(a)
	if err := registerPlugins(a.plugins); err != nil {
		logger.Warnf("App: %v", err)
	}
	a.plugins.InitializePlugins(a.editorAPI)

	a.load(opts.FilePath)
	if themeErr != nil {
		a.showError(themeErr)
	}

	a.screen = opts.Screen
	if a.screen == nil {
		t, err := tui.New(activeTheme)
		if err != nil {
			return nil, fmt.Errorf("TUI initialization failed: %w", err)
		}
		a.screen = t
	}
	return a, nil
}

// Run draws, reads a key and executes it until a quit command or until
// the screen goes away. The screen is closed on return.
func (a *App) Run() error {
	defer a.screen.Close()
	defer a.plugins.ShutdownPlugins()
	defer a.messageTimer.Stop()

	for {
		a.draw()
		key, ok := a.screen.PollKey()
		if !ok {
			logger.Infof("App: screen closed, exiting")
			return nil
		}
		if key == nil {
			continue // resize or wake-up
		}
		if a.handleOutcome(a.modeHandler.HandleKeyEvent(key)) {
			return nil
		}
	}
}

// handleOutcome shows the outcome's status text and performs its signal.
// It reports whether the loop should stop.
func (a *App) handleOutcome(out modehandler.Outcome) bool {
	if out.Err != nil {
		a.showError(out.Err)
	} else if out.Message != "" {
		a.showMessage("%s", out.Message)
	}

	switch out.Signal {
	case modehandler.SignalSave:
		_ = a.save() // already shown on the status line
	case modehandler.SignalSaveAndQuit:
		if a.save() != nil {
			return false
		}
		return a.quit(false)
	case modehandler.SignalQuit:
		return a.quit(out.Force)
	}
	return false
}

func (a *App) quit(forced bool) bool {
	if a.session.Buffer.IsModified() {
		logger.Warnf("App: exiting with unsaved changes to %q", a.session.Buffer.FilePath())
	}
	a.events.Dispatch(event.TypeAppQuit, event.AppQuitData{Forced: forced})
	return true
}

// GetModeHandler allows the API adapter to reach the command registry.
func (a *App) GetModeHandler() *modehandler.ModeHandler {
	return a.modeHandler
}

// GetTheme returns the app's active theme.
func (a *App) GetTheme() *theme.Theme {
	return a.activeTheme
}
