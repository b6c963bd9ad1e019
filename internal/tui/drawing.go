package tui

import (
	"strconv"

	"github.com/bethropolis/modal/internal/config"
	"github.com/bethropolis/modal/internal/mode"
	"github.com/bethropolis/modal/internal/statusbar"
	"github.com/bethropolis/modal/internal/theme"
	"github.com/bethropolis/modal/internal/types"
	"github.com/bethropolis/modal/internal/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// View is the read-only part of a buffer the renderer looks at.
type View interface {
	LineCount() int
	Runes(row int) []rune
}

// Frame is a snapshot of everything one render draws.
type Frame struct {
	Buffer      View
	Cursor      types.Position
	Mode        mode.Mode
	Selection   bool // SelStart..SelEnd is highlighted, both ends included
	SelStart    types.Position
	SelEnd      types.Position
	ViewportY   int
	ViewportX   int
	TabWidth    int
	LineNumbers bool
	Theme       *theme.Theme
	Status      *statusbar.StatusBar
}

// Layout is the text area left after the gutter and status bar.
type Layout struct {
	Gutter int // Cells taken by line numbers, including padding
	Width  int
	Height int
}

// ComputeLayout splits a width x height screen for a buffer of lineCount
// lines. The gutter is dropped when it would leave no room for text.
func ComputeLayout(width, height, lineCount int, lineNumbers bool) Layout {
	l := Layout{Height: max(height-config.StatusBarHeight, 0)}
	if lineNumbers {
		l.Gutter = len(strconv.Itoa(max(lineCount, 1))) + 1
		if l.Gutter >= width {
			l.Gutter = 0
		}
	}
	l.Width = max(width-l.Gutter, 0)
	return l
}

func selected(pos, start, end types.Position) bool {
	return !pos.Before(start) && !end.Before(pos)
}

// Render draws f and shows it.
func (t *TUI) Render(f Frame) {
	if f.Theme == nil {
		f.Theme = theme.DevComfortDark()
	}
	if f.TabWidth <= 0 {
		f.TabWidth = config.DefaultTabWidth
	}
	width, height := t.screen.Size()
	layout := ComputeLayout(width, height, f.Buffer.LineCount(), f.LineNumbers)

	t.drawBuffer(f, layout, width)

	commandX, command := 0, false
	if f.Status != nil {
		commandX, command = f.Status.Draw(t.screen, width, height)
	}

	if command {
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
		t.screen.ShowCursor(commandX, height-1)
	} else {
		t.drawCursor(f, layout)
	}
	t.screen.Show()
}

func (t *TUI) drawBuffer(f Frame, layout Layout, width int) {
	th := f.Theme
	defaultStyle := th.Style(theme.StyleDefault)
	lineNumberStyle := th.Style(theme.StyleLineNumber)
	currentNumberStyle := th.Style(theme.StyleLineNumberCurrent)
	selectionStyle := th.Style(theme.StyleSelection)
	nonTextStyle := th.Style(theme.StyleNonText)

	lineCount := f.Buffer.LineCount()
	digits := layout.Gutter - 1

	for screenY := 0; screenY < layout.Height; screenY++ {
		row := screenY + f.ViewportY

		for x := 0; x < width; x++ {
			t.screen.SetContent(x, screenY, ' ', nil, defaultStyle)
		}

		if row >= lineCount {
			t.screen.SetContent(0, screenY, '~', nil, nonTextStyle)
			continue
		}

		if layout.Gutter > 0 {
			style := lineNumberStyle
			if row == f.Cursor.Line {
				style = currentNumberStyle
			}
			num := strconv.Itoa(row + 1)
			for i, r := range num {
				t.screen.SetContent(digits-len(num)+i, screenY, r, nil, style)
			}
		}

		line := f.Buffer.Runes(row)
		if len(line) == 0 {
			if f.Selection && f.ViewportX == 0 && selected(types.Position{Line: row}, f.SelStart, f.SelEnd) {
				t.screen.SetContent(layout.Gutter, screenY, ' ', nil, selectionStyle)
			}
			continue
		}

		visualX, runeIndex := 0, 0
		gr := uniseg.NewGraphemes(string(line))
		for gr.Next() {
			runes := gr.Runes()
			w := utils.GraphemeWidth(gr.Str(), visualX, f.TabWidth)
			screenX := visualX - f.ViewportX + layout.Gutter

			style := defaultStyle
			if f.Selection && selected(types.Position{Line: row, Col: runeIndex}, f.SelStart, f.SelEnd) {
				style = selectionStyle
			}

			if visualX+w > f.ViewportX {
				if runes[0] == '\t' {
					for i := 0; i < w; i++ {
						if x := screenX + i; x >= layout.Gutter && x < width {
							t.screen.SetContent(x, screenY, ' ', nil, style)
						}
					}
				} else if screenX >= layout.Gutter && screenX+w <= width {
					t.screen.SetContent(screenX, screenY, runes[0], runes[1:], style)
				}
			}

			visualX += w
			runeIndex += len(runes)
			if visualX-f.ViewportX >= layout.Width {
				break
			}
		}
	}
}

// drawCursor places the terminal cursor, hiding it when it is scrolled
// out of the text area.
func (t *TUI) drawCursor(f Frame, layout Layout) {
	if f.Mode == mode.Insert {
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	} else {
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}

	col := utils.VisualColumn(f.Buffer.Runes(f.Cursor.Line), f.Cursor.Col, f.TabWidth)
	screenX := col - f.ViewportX + layout.Gutter
	screenY := f.Cursor.Line - f.ViewportY

	if screenX < layout.Gutter || screenX >= layout.Gutter+layout.Width || screenY < 0 || screenY >= layout.Height {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}
