package modehandler

import (
	"fmt"

	"github.com/bethropolis/modal/internal/core"
	"github.com/bethropolis/modal/internal/input"
	"github.com/bethropolis/modal/internal/logger"
)

func (mh *ModeHandler) handleCommand(ae input.ActionEvent) Outcome {
	m := mh.session.Modes

	switch ae.Action {
	case input.ActionAppendCommand:
		m.AppendCommand(ae.Rune)
		return handled()

	case input.ActionDeleteCommandChar:
		if !m.BackspaceCommand() {
			m.Escape() // Backspace on an empty line leaves Command mode
		}
		return handled()

	case input.ActionExecuteCommand:
		text := m.CommandText()
		m.Escape()
		return mh.executeCommand(text)

	case input.ActionEscape:
		m.Escape()
		return handled()
	}
	return Outcome{}
}

// executeCommand looks up text in the registry. Matching is exact.
func (mh *ModeHandler) executeCommand(text string) Outcome {
	if text == "" {
		return handled()
	}
	fn, ok := mh.commands[text]
	if !ok {
		logger.DebugTagf("command", "ModeHandler: unknown command ':%s'", text)
		return failed(fmt.Errorf("%w: %s", ErrUnknownCommand, text))
	}
	logger.DebugTagf("command", "ModeHandler: executing ':%s'", text)
	out := fn(mh.session)
	out.Redraw = true
	return out
}

func (mh *ModeHandler) registerBuiltins() {
	builtins := map[string]CommandFunc{
		"w":  cmdWrite,
		"q":  cmdQuit,
		"wq": cmdWriteQuit,
		"q!": cmdForceQuit,
	}
	for name, fn := range builtins {
		if err := mh.RegisterCommand(name, fn); err != nil {
			logger.Errorf("ModeHandler: %v", err)
		}
	}
}

func cmdWrite(s *core.Session) Outcome {
	if s.Buffer.FilePath() == "" {
		return failed(ErrNoFileName)
	}
	return Outcome{Signal: SignalSave}
}

func cmdQuit(s *core.Session) Outcome {
	if s.Buffer.IsModified() {
		return failed(ErrUnsavedChanges)
	}
	return Outcome{Signal: SignalQuit}
}

func cmdWriteQuit(s *core.Session) Outcome {
	if s.Buffer.FilePath() == "" {
		return failed(ErrNoFileName)
	}
	return Outcome{Signal: SignalSaveAndQuit}
}

func cmdForceQuit(*core.Session) Outcome {
	return Outcome{Signal: SignalQuit, Force: true}
}
