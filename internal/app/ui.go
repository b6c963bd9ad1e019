package app

import (
	"github.com/bethropolis/modal/internal/config"
	"github.com/bethropolis/modal/internal/mode"
	"github.com/bethropolis/modal/internal/tui"
	"github.com/bethropolis/modal/internal/utils"
)

// draw scrolls the viewport to the cursor and renders one frame.
func (a *App) draw() {
	s := a.session
	width, height := a.screen.Size()
	layout := tui.ComputeLayout(width, height, s.Buffer.LineCount(), a.cfg.ShowLineNumbers)
	col := utils.VisualColumn(s.Buffer.Runes(s.Cursor.Line), s.Cursor.Col, a.cfg.TabWidth)
	s.ScrollToCursor(layout.Height, layout.Width, col, a.cfg.ScrollOff)

	a.statusBar.SetCommandLine(s.Modes.CommandText(), s.Mode() == mode.Command)
	a.statusBar.SetPendingKeys(s.Keys.Pending())

	start, end, selecting := s.Modes.Selection(s.Cursor)
	a.screen.Render(tui.Frame{
		Buffer:      s.Buffer,
		Cursor:      s.Cursor,
		Mode:        s.Mode(),
		Selection:   selecting,
		SelStart:    start,
		SelEnd:      end,
		ViewportY:   s.ViewportY,
		ViewportX:   s.ViewportX,
		TabWidth:    a.cfg.TabWidth,
		LineNumbers: a.cfg.ShowLineNumbers,
		Theme:       a.activeTheme,
		Status:      a.statusBar,
	})

	// PollKey blocks, so an expiring message needs a wake-up to disappear.
	if _, ok := a.statusBar.Message(); ok {
		a.messageTimer.Debounce(config.MessageTimeout, a.screen.Interrupt)
	}
}

// showMessage puts informational text on the status line.
func (a *App) showMessage(format string, args ...any) {
	a.statusBar.SetTemporaryMessage(format, args...)
}

// showError puts err on the status line in the error style.
func (a *App) showError(err error) {
	a.statusBar.SetError(err)
}
