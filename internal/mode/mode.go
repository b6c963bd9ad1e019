// Package mode holds the editor's modal state machine.
package mode

import (
	"errors"
	"fmt"

	"github.com/bethropolis/modal/internal/types"
)

// Mode is the interaction context that decides what keys mean.
type Mode int

const (
	Normal Mode = iota
	Insert
	Visual
	Command
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Visual:
		return "VISUAL"
	case Command:
		return "COMMAND"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ErrInvalidTransition is returned for a mode change the table does not allow.
var ErrInvalidTransition = errors.New("invalid mode transition")

// transitions lists every allowed edge. Leaving any mode goes through Normal.
var transitions = map[Mode]map[Mode]bool{
	Normal:  {Insert: true, Visual: true, Command: true},
	Insert:  {Normal: true},
	Visual:  {Normal: true},
	Command: {Normal: true},
}

// Manager owns the active mode and the state that only lives inside one:
// the pending command line in Command mode and the anchor in Visual mode.
type Manager struct {
	current  Mode
	previous Mode

	commandText []rune
	anchor      types.Position
}

// NewManager starts in Normal mode.
func NewManager() *Manager {
	return &Manager{current: Normal, previous: Normal}
}

// Current returns the active mode.
func (m *Manager) Current() Mode { return m.current }

// Previous returns the mode active before the last transition.
func (m *Manager) Previous() Mode { return m.previous }

// Is reports whether mode is active.
func (m *Manager) Is(mode Mode) bool { return m.current == mode }

func (m *Manager) transition(to Mode) error {
	if !transitions[m.current][to] {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, to)
	}
	m.previous, m.current = m.current, to
	m.commandText = nil
	m.anchor = types.Position{}
	return nil
}

// EnterInsert switches Normal to Insert.
func (m *Manager) EnterInsert() error {
	return m.transition(Insert)
}

// EnterVisual switches Normal to Visual and anchors the selection at cursor.
func (m *Manager) EnterVisual(cursor types.Position) error {
	if err := m.transition(Visual); err != nil {
		return err
	}
	m.anchor = cursor
	return nil
}

// EnterCommand switches Normal to Command with an empty command line.
func (m *Manager) EnterCommand() error {
	if err := m.transition(Command); err != nil {
		return err
	}
	m.commandText = []rune{}
	return nil
}

// Escape returns to Normal from any mode, dropping mode-local state.
// In Normal mode it does nothing.
func (m *Manager) Escape() {
	if m.current == Normal {
		return
	}
	_ = m.transition(Normal)
}

// CommandText returns the pending command line ("" outside Command mode).
func (m *Manager) CommandText() string {
	return string(m.commandText)
}

// AppendCommand adds r to the pending command line. Ignored outside Command mode.
func (m *Manager) AppendCommand(r rune) {
	if m.current == Command {
		m.commandText = append(m.commandText, r)
	}
}

// BackspaceCommand drops the last rune of the command line. It reports
// false when the line was already empty.
func (m *Manager) BackspaceCommand() bool {
	if m.current != Command || len(m.commandText) == 0 {
		return false
	}
	m.commandText = m.commandText[:len(m.commandText)-1]
	return true
}

// Anchor returns the Visual anchor and whether Visual mode is active.
func (m *Manager) Anchor() (types.Position, bool) {
	return m.anchor, m.current == Visual
}

// Selection returns the Visual selection between the anchor and cursor,
// ordered start first. ok is false outside Visual mode.
func (m *Manager) Selection(cursor types.Position) (start, end types.Position, ok bool) {
	if m.current != Visual {
		return types.Position{}, types.Position{}, false
	}
	start, end = types.Ordered(m.anchor, cursor)
	return start, end, true
}
