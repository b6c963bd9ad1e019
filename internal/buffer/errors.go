package buffer

import "errors"

var (
	// ErrOutOfBounds is returned when a position lies outside the buffer.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrNothingToUndo is returned by Undo on an empty history.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo is returned by Redo when nothing was undone.
	ErrNothingToRedo = errors.New("nothing to redo")
)
