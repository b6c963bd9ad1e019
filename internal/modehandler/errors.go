package modehandler

import "errors"

// User errors are shown on the status line and never end the session.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnsavedChanges = errors.New("no write since last change (add ! to override)")
	ErrNoFileName     = errors.New("no file name")
)

// IsUserError reports whether err is one of the user errors above.
func IsUserError(err error) bool {
	return errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnsavedChanges) ||
		errors.Is(err, ErrNoFileName)
}
