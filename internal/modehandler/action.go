package modehandler

import (
	"errors"

	"github.com/bethropolis/modal/internal/buffer"
	"github.com/bethropolis/modal/internal/cursor"
	"github.com/bethropolis/modal/internal/input"
)

// motions maps every cursor-only action to its arithmetic.
var motions = map[input.Action]cursor.Motion{
	input.ActionMoveLeft:         cursor.Left,
	input.ActionMoveRight:        cursor.Right,
	input.ActionMoveUp:           cursor.Up,
	input.ActionMoveDown:         cursor.Down,
	input.ActionMoveWordForward:  cursor.WordForward,
	input.ActionMoveWordBackward: cursor.WordBackward,
	input.ActionMoveLineStart:    cursor.LineStart,
	input.ActionMoveLineEnd:      cursor.LineEnd,
	input.ActionMoveBufferStart:  cursor.BufferStart,
	input.ActionMoveBufferEnd:    cursor.BufferEnd,
}

// move runs the motion bound to action, if any.
func (mh *ModeHandler) move(action input.Action) (Outcome, bool) {
	m, ok := motions[action]
	if !ok {
		return Outcome{}, false
	}
	mh.session.Move(m)
	return handled(), true
}

func (mh *ModeHandler) undo() Outcome {
	s := mh.session
	pos, err := s.Buffer.Undo()
	if errors.Is(err, buffer.ErrNothingToUndo) {
		return info("Already at oldest change")
	}
	s.SetCursor(pos)
	mh.modified(input.ActionUndo)
	return handled()
}

func (mh *ModeHandler) redo() Outcome {
	s := mh.session
	pos, err := s.Buffer.Redo()
	if errors.Is(err, buffer.ErrNothingToRedo) {
		return info("Already at newest change")
	}
	s.SetCursor(pos)
	mh.modified(input.ActionRedo)
	return handled()
}
