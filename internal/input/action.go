// Package input translates terminal key events into editor actions.
package input

// Action is a fully resolved editor command.
type Action int

const (
	ActionUnknown Action = iota // Unbound key, ignored

	// Motions
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionMoveWordForward
	ActionMoveWordBackward
	ActionMoveLineStart
	ActionMoveLineEnd
	ActionMoveBufferStart
	ActionMoveBufferEnd

	// Normal mode edits and mode entry
	ActionInsertBefore    // i
	ActionInsertAfter     // a
	ActionOpenLineBelow   // o
	ActionOpenLineAbove   // O
	ActionEnterVisual     // v
	ActionEnterCommand    // :
	ActionDeleteChar      // x
	ActionDeleteLine      // dd
	ActionDeleteSelection // d or x in Visual mode
	ActionUndo
	ActionRedo

	// Insert mode
	ActionInsertRune // Carries Rune
	ActionInsertNewLine
	ActionDeleteCharBackward
	ActionDeleteCharForward

	// Command mode
	ActionAppendCommand // Carries Rune
	ActionDeleteCommandChar
	ActionExecuteCommand

	// Any mode
	ActionEscape
)

var actionNames = map[Action]string{
	ActionUnknown:            "unknown",
	ActionMoveLeft:           "move-left",
	ActionMoveRight:          "move-right",
	ActionMoveUp:             "move-up",
	ActionMoveDown:           "move-down",
	ActionMoveWordForward:    "word-forward",
	ActionMoveWordBackward:   "word-backward",
	ActionMoveLineStart:      "line-start",
	ActionMoveLineEnd:        "line-end",
	ActionMoveBufferStart:    "buffer-start",
	ActionMoveBufferEnd:      "buffer-end",
	ActionInsertBefore:       "insert",
	ActionInsertAfter:        "append",
	ActionOpenLineBelow:      "open-below",
	ActionOpenLineAbove:      "open-above",
	ActionEnterVisual:        "visual",
	ActionEnterCommand:       "command",
	ActionDeleteChar:         "delete-char",
	ActionDeleteLine:         "delete-line",
	ActionDeleteSelection:    "delete-selection",
	ActionUndo:               "undo",
	ActionRedo:               "redo",
	ActionInsertRune:         "insert-rune",
	ActionInsertNewLine:      "newline",
	ActionDeleteCharBackward: "backspace",
	ActionDeleteCharForward:  "delete",
	ActionAppendCommand:      "command-append",
	ActionDeleteCommandChar:  "command-backspace",
	ActionExecuteCommand:     "command-execute",
	ActionEscape:             "escape",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent is a decoded key event.
type ActionEvent struct {
	Action Action
	Rune   rune // For ActionInsertRune and ActionAppendCommand
}
