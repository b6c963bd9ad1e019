// Package core holds the state of one editing session.
package core

import (
	"github.com/bethropolis/modal/internal/buffer"
	"github.com/bethropolis/modal/internal/clipboard"
	"github.com/bethropolis/modal/internal/cursor"
	"github.com/bethropolis/modal/internal/input"
	"github.com/bethropolis/modal/internal/mode"
	"github.com/bethropolis/modal/internal/types"
)

// Session is everything one editing session mutates: the buffer, the
// cursor, the modal state, the pending keys and the unnamed register.
// It is passed explicitly to whatever needs it.
type Session struct {
	Buffer   *buffer.TextBuffer
	Cursor   types.Position
	Modes    *mode.Manager
	Keys     *input.InputProcessor
	Register *clipboard.Register

	ViewportY int // First visible line
	ViewportX int // First visible display column
}

// NewSession starts a Normal mode session at the top of buf.
func NewSession(buf *buffer.TextBuffer, reg *clipboard.Register) *Session {
	if buf == nil {
		buf = buffer.New()
	}
	if reg == nil {
		reg = clipboard.NewRegister(false)
	}
	return &Session{
		Buffer:   buf,
		Modes:    mode.NewManager(),
		Keys:     input.NewInputProcessor(),
		Register: reg,
	}
}

// Mode returns the active mode.
func (s *Session) Mode() mode.Mode {
	return s.Modes.Current()
}

// SetCursor moves the cursor to p, clamped into the buffer.
func (s *Session) SetCursor(p types.Position) {
	s.Cursor = cursor.Clamp(s.Buffer, p)
}

// Move applies m to the cursor and reports whether it moved.
func (s *Session) Move(m cursor.Motion) bool {
	before := s.Cursor
	s.Cursor = m(s.Buffer, s.Cursor)
	return s.Cursor != before
}

// ScrollToCursor adjusts the viewport so the cursor stays visible with
// scrollOff lines of context. cursorCol is the cursor's display column.
func (s *Session) ScrollToCursor(height, width, cursorCol, scrollOff int) {
	if height <= 0 || width <= 0 {
		return
	}
	if scrollOff*2 >= height {
		scrollOff = (height - 1) / 2
	}

	line := s.Cursor.Line
	if line-scrollOff < s.ViewportY {
		s.ViewportY = max(line-scrollOff, 0)
	}
	if line+scrollOff >= s.ViewportY+height {
		s.ViewportY = line + scrollOff - height + 1
	}
	if maxTop := max(s.Buffer.LineCount()-height, 0); s.ViewportY > maxTop {
		s.ViewportY = maxTop
	}

	if cursorCol < s.ViewportX {
		s.ViewportX = cursorCol
	}
	if cursorCol >= s.ViewportX+width {
		s.ViewportX = cursorCol - width + 1
	}
}
