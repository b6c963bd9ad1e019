package modehandler

// Signal asks the caller to do something the engine does not do itself.
type Signal int

const (
	SignalNone Signal = iota
	SignalSave
	SignalQuit
	SignalSaveAndQuit
)

func (s Signal) String() string {
	switch s {
	case SignalSave:
		return "save"
	case SignalQuit:
		return "quit"
	case SignalSaveAndQuit:
		return "save-and-quit"
	}
	return "none"
}

// Outcome is the result of handling one key.
type Outcome struct {
	Redraw  bool
	Signal  Signal
	Force   bool   // With SignalQuit: discard unsaved changes
	Err     error  // User-visible error for the status line
	Message string // Informational status text
}

func handled() Outcome { return Outcome{Redraw: true} }

func failed(err error) Outcome { return Outcome{Redraw: true, Err: err} }

func info(msg string) Outcome { return Outcome{Redraw: true, Message: msg} }
