package modehandler

import (
	"github.com/bethropolis/modal/internal/input"
)

func (mh *ModeHandler) handleVisual(ae input.ActionEvent) Outcome {
	if out, ok := mh.move(ae.Action); ok {
		return out
	}

	s := mh.session
	switch ae.Action {
	case input.ActionDeleteSelection:
		start, end, ok := s.Modes.Selection(s.Cursor)
		if !ok {
			return Outcome{}
		}
		removed, err := s.Buffer.DeleteRange(start, end)
		if err != nil {
			return mh.editFailed(ae.Action, err)
		}
		if removed == "" {
			s.Modes.Escape()
			return handled()
		}
		s.Register.Store(removed, false)
		s.Modes.Escape()
		s.SetCursor(start)
		mh.modified(ae.Action)
		return handled()

	case input.ActionEscape:
		s.Modes.Escape()
		return handled()
	}
	return Outcome{}
}
