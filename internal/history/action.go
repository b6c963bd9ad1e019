// Package history records reversible buffer mutations for undo and redo.
package history

import "github.com/bethropolis/modal/internal/types"

// Kind names the editing operation an Action came from.
type Kind int

const (
	InsertChar Kind = iota
	DeleteChar
	InsertLine
	DeleteLine
	SplitLine
	JoinLines
	DeleteRange
)

func (k Kind) String() string {
	switch k {
	case InsertChar:
		return "insert-char"
	case DeleteChar:
		return "delete-char"
	case InsertLine:
		return "insert-line"
	case DeleteLine:
		return "delete-line"
	case SplitLine:
		return "split-line"
	case JoinLines:
		return "join-lines"
	case DeleteRange:
		return "delete-range"
	}
	return "unknown"
}

// Op is the primitive text operation an Action applies.
type Op int

const (
	OpInsert Op = iota // Text was inserted at Start, ending at End
	OpDelete           // Text between Start and End was removed
)

// Action is one reversible mutation. Every buffer edit reduces to inserting
// or deleting Text (which may contain '\n') between Start and End.
type Action struct {
	Kind  Kind
	Op    Op
	Text  string
	Start types.Position
	End   types.Position

	CursorBefore types.Position // Cursor when the edit was made
	CursorAfter  types.Position // Cursor once the edit was applied
}

// Inverse returns the action that undoes a.
func (a Action) Inverse() Action {
	inv := a
	if a.Op == OpInsert {
		inv.Op = OpDelete
	} else {
		inv.Op = OpInsert
	}
	inv.CursorBefore, inv.CursorAfter = a.CursorAfter, a.CursorBefore
	return inv
}
