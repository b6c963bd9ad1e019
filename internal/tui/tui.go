package tui

import (
	"fmt"

	"github.com/bethropolis/modal/internal/logger"
	"github.com/bethropolis/modal/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Screen is what the editor loop needs from a terminal.
type Screen interface {
	// PollKey blocks for the next key. A nil key with ok set asks for a
	// redraw (resize, wake-up); ok is false once the screen is closed.
	PollKey() (key *tcell.EventKey, ok bool)
	Render(f Frame)
	Size() (width, height int)
	// Interrupt wakes a blocked PollKey from another goroutine.
	Interrupt()
	Close()
}

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
}

var _ Screen = (*TUI)(nil)

// New creates and initializes the terminal screen.
func New(th *theme.Theme) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	return NewWithScreen(s, th), nil
}

// NewWithScreen wraps an already initialized screen, such as a
// tcell.SimulationScreen.
func NewWithScreen(s tcell.Screen, th *theme.Theme) *TUI {
	if th == nil {
		th = theme.DevComfortDark()
	}
	s.SetStyle(th.Style(theme.StyleDefault))
	return &TUI{screen: s}
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

func (t *TUI) PollKey() (*tcell.EventKey, bool) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return nil, false
		case *tcell.EventKey:
			return ev, true
		case *tcell.EventResize:
			t.screen.Sync()
			return nil, true
		case *tcell.EventInterrupt:
			return nil, true
		default:
			logger.DebugTagf("tui", "TUI: ignoring event %T", ev)
		}
	}
}

func (t *TUI) Interrupt() {
	if err := t.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		logger.DebugTagf("tui", "TUI: interrupt dropped: %v", err)
	}
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}
