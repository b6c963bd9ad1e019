package modehandler

import (
	"github.com/bethropolis/modal/internal/input"
)

func (mh *ModeHandler) handleInsert(ae input.ActionEvent) Outcome {
	if out, ok := mh.move(ae.Action); ok {
		return out
	}

	s := mh.session
	b := s.Buffer

	switch ae.Action {
	case input.ActionInsertRune:
		pos, err := b.InsertChar(s.Cursor, ae.Rune)
		if err != nil {
			return mh.editFailed(ae.Action, err)
		}
		s.Cursor = pos

	case input.ActionInsertNewLine:
		pos, err := b.SplitLine(s.Cursor)
		if err != nil {
			return mh.editFailed(ae.Action, err)
		}
		s.Cursor = pos

	case input.ActionDeleteCharBackward:
		if s.Cursor.Line == 0 && s.Cursor.Col == 0 {
			return Outcome{}
		}
		pos, err := b.DeleteCharBackward(s.Cursor)
		if err != nil {
			return mh.editFailed(ae.Action, err)
		}
		s.Cursor = pos

	case input.ActionDeleteCharForward:
		removed, err := b.DeleteCharForward(s.Cursor)
		if err != nil {
			return mh.editFailed(ae.Action, err)
		}
		if removed == "" {
			return Outcome{}
		}

	case input.ActionEscape:
		s.Modes.Escape()
		return handled()

	default:
		return Outcome{}
	}

	mh.modified(ae.Action)
	return handled()
}
