package modehandler

import (
	"github.com/bethropolis/modal/internal/cursor"
	"github.com/bethropolis/modal/internal/input"
	"github.com/bethropolis/modal/internal/types"
)

func (mh *ModeHandler) handleNormal(ae input.ActionEvent) Outcome {
	if out, ok := mh.move(ae.Action); ok {
		return out
	}

	s := mh.session
	b := s.Buffer

	switch ae.Action {
	case input.ActionInsertBefore:
		return mh.enter(s.Modes.EnterInsert())

	case input.ActionInsertAfter:
		s.Move(cursor.Right)
		return mh.enter(s.Modes.EnterInsert())

	case input.ActionOpenLineBelow, input.ActionOpenLineAbove:
		open := b.InsertLineAfter
		if ae.Action == input.ActionOpenLineAbove {
			open = b.InsertLineBefore
		}
		pos, err := open(s.Cursor)
		if err != nil {
			return mh.editFailed(ae.Action, err)
		}
		s.Cursor = pos
		mh.modified(ae.Action)
		return mh.enter(s.Modes.EnterInsert())

	case input.ActionEnterVisual:
		return mh.enter(s.Modes.EnterVisual(s.Cursor))

	case input.ActionEnterCommand:
		return mh.enter(s.Modes.EnterCommand())

	case input.ActionDeleteChar:
		if s.Cursor.Col >= b.LineLen(s.Cursor.Line) {
			return Outcome{} // x never joins lines
		}
		removed, err := b.DeleteCharForward(s.Cursor)
		if err != nil {
			return mh.editFailed(ae.Action, err)
		}
		s.Register.Store(removed, false)
		mh.modified(ae.Action)
		return handled()

	case input.ActionDeleteLine:
		if b.LineCount() == 1 && b.LineLen(0) == 0 {
			return Outcome{}
		}
		line := s.Cursor.Line
		removed, err := b.DeleteLine(s.Cursor)
		if err != nil {
			return mh.editFailed(ae.Action, err)
		}
		s.Register.Store(removed, true)
		s.SetCursor(types.Position{Line: line})
		mh.modified(ae.Action)
		return handled()

	case input.ActionUndo:
		return mh.undo()

	case input.ActionRedo:
		return mh.redo()

	case input.ActionEscape:
		return handled()
	}
	return Outcome{}
}

// enter wraps a mode transition result.
func (mh *ModeHandler) enter(err error) Outcome {
	if err != nil {
		return failed(err)
	}
	return handled()
}
