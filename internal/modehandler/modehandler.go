// Package modehandler executes resolved key actions against a session.
// It edits the buffer, moves the cursor and switches modes; saving and
// quitting are left to the caller through Outcome signals.
package modehandler

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/modal/internal/core"
	"github.com/bethropolis/modal/internal/event"
	"github.com/bethropolis/modal/internal/input"
	"github.com/bethropolis/modal/internal/logger"
	"github.com/bethropolis/modal/internal/mode"
)

// CommandFunc runs a colon command.
type CommandFunc func(s *core.Session) Outcome

// ModeHandler routes actions to the handler of the active mode.
type ModeHandler struct {
	session  *core.Session
	events   *event.Manager
	commands map[string]CommandFunc
}

// Config holds the dependencies of a ModeHandler.
type Config struct {
	Session      *core.Session
	EventManager *event.Manager // Optional
}

// New creates a ModeHandler with the built-in commands registered.
func New(cfg Config) *ModeHandler {
	if cfg.Session == nil {
		panic("modehandler.New: Session is required")
	}
	mh := &ModeHandler{
		session:  cfg.Session,
		events:   cfg.EventManager,
		commands: make(map[string]CommandFunc),
	}
	mh.registerBuiltins()
	return mh
}

// Session returns the session being edited.
func (mh *ModeHandler) Session() *core.Session {
	return mh.session
}

// HandleKeyEvent maps ev through the session's key processor and runs the
// resulting action. A key that only extends a pending sequence redraws so
// the pending keys can be shown.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) Outcome {
	ae, ready := mh.session.Keys.ProcessEvent(ev, mh.session.Mode())
	if !ready {
		return handled()
	}
	return mh.Execute(ae)
}

// Execute runs one resolved action in the active mode.
func (mh *ModeHandler) Execute(ae input.ActionEvent) Outcome {
	s := mh.session
	fromMode, fromCursor := s.Mode(), s.Cursor

	var out Outcome
	switch fromMode {
	case mode.Normal:
		out = mh.handleNormal(ae)
	case mode.Insert:
		out = mh.handleInsert(ae)
	case mode.Visual:
		out = mh.handleVisual(ae)
	case mode.Command:
		out = mh.handleCommand(ae)
	default:
		logger.Warnf("ModeHandler: no handler for mode %s", fromMode)
	}

	mh.settleCursor()

	if to := s.Mode(); to != fromMode {
		logger.DebugTagf("mode", "ModeHandler: %s -> %s", fromMode, to)
		mh.events.Dispatch(event.TypeModeChanged, event.ModeChangedData{From: fromMode, To: to})
		out.Redraw = true
	}
	if s.Cursor != fromCursor {
		mh.events.Dispatch(event.TypeCursorMoved, event.CursorMovedData{Position: s.Cursor})
		out.Redraw = true
	}
	return out
}

// settleCursor keeps the cursor inside the buffer. Outside Insert mode it
// also stays on a character rather than the slot past the line end.
func (mh *ModeHandler) settleCursor() {
	s := mh.session
	s.SetCursor(s.Cursor)
	if s.Mode() == mode.Insert {
		return
	}
	if n := s.Buffer.LineLen(s.Cursor.Line); n > 0 && s.Cursor.Col >= n {
		s.Cursor.Col = n - 1
	}
}

// modified announces a successful edit.
func (mh *ModeHandler) modified(action input.Action) {
	b := mh.session.Buffer
	mh.events.Dispatch(event.TypeBufferModified, event.BufferModifiedData{
		Action:    action.String(),
		LineCount: b.LineCount(),
		Modified:  b.IsModified(),
	})
}

// editFailed logs a rejected buffer edit. Edits run on a clamped cursor,
// so a rejection here is a bug.
func (mh *ModeHandler) editFailed(action input.Action, err error) Outcome {
	logger.Errorf("ModeHandler: %s failed at %s: %v", action, mh.session.Cursor, err)
	return Outcome{}
}

// RegisterCommand adds a colon command. Names are matched exactly.
func (mh *ModeHandler) RegisterCommand(name string, fn CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = fn
	logger.DebugTagf("command", "ModeHandler: registered command ':%s'", name)
	return nil
}
