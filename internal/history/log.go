package history

import (
	"github.com/bethropolis/modal/internal/logger"
)

// Log is a linear undo/redo history made of two plain stacks.
// It is owned by a single buffer and is not safe for concurrent use.
type Log struct {
	undo []Action
	redo []Action

	// savedDepth is the undo depth matching the saved file, or -1 once
	// that state can no longer be reached.
	savedDepth int
}

// NewLog returns an empty history whose initial state counts as saved.
func NewLog() *Log {
	return &Log{}
}

// Push records a freshly applied action and discards the redo side.
func (l *Log) Push(a Action) {
	if l.savedDepth > len(l.undo) {
		l.savedDepth = -1 // the saved state lived on the redo stack
	}
	l.undo = append(l.undo, a)
	l.redo = l.redo[:0]
	logger.DebugTagf("history", "History: recorded %s at %s, depth %d", a.Kind, a.Start, len(l.undo))
}

// Undo moves the newest action onto the redo stack and returns it.
// The caller applies a.Inverse().
func (l *Log) Undo() (Action, bool) {
	if len(l.undo) == 0 {
		logger.DebugTagf("history", "History: nothing to undo")
		return Action{}, false
	}
	a := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	l.redo = append(l.redo, a)
	logger.DebugTagf("history", "History: undo %s, depth %d", a.Kind, len(l.undo))
	return a, true
}

// Redo moves the newest undone action back onto the undo stack and returns it.
func (l *Log) Redo() (Action, bool) {
	if len(l.redo) == 0 {
		logger.DebugTagf("history", "History: nothing to redo")
		return Action{}, false
	}
	a := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.undo = append(l.undo, a)
	logger.DebugTagf("history", "History: redo %s, depth %d", a.Kind, len(l.undo))
	return a, true
}

// CanUndo reports whether Undo would return an action.
func (l *Log) CanUndo() bool { return len(l.undo) > 0 }

// CanRedo reports whether Redo would return an action.
func (l *Log) CanRedo() bool { return len(l.redo) > 0 }

// Depth is the number of undoable actions.
func (l *Log) Depth() int { return len(l.undo) }

// MarkSaved records the current state as the one on disk.
func (l *Log) MarkSaved() {
	l.savedDepth = len(l.undo)
}

// Dirty reports whether the current state differs from the saved one.
func (l *Log) Dirty() bool {
	return l.savedDepth != len(l.undo)
}

// Clear drops all history and treats the current state as saved.
func (l *Log) Clear() {
	l.undo = l.undo[:0]
	l.redo = l.redo[:0]
	l.savedDepth = 0
	logger.DebugTagf("history", "History: cleared")
}
