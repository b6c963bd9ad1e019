package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/modal/internal/logger"
	"github.com/bethropolis/modal/internal/mode"
)

// Keymap maps special keys (Enter, arrows, control keys) to actions.
type Keymap map[tcell.Key]ActionEvent

// RuneKeymap maps plain printable keys to actions.
type RuneKeymap map[rune]Action

// bindings is the key table for one mode.
type bindings struct {
	keys  Keymap
	runes RuneKeymap
	// sequences are multi-key commands such as "gg"; every proper prefix of
	// one is recorded in prefixes.
	sequences map[string]Action
	prefixes  map[string]struct{}
	// textRune, when set, receives every printable key not bound in runes.
	textRune Action
}

func newBindings() *bindings {
	return &bindings{
		keys:      make(Keymap),
		runes:     make(RuneKeymap),
		sequences: make(map[string]Action),
		prefixes:  make(map[string]struct{}),
	}
}

func (b *bindings) bindSequence(seq string, action Action) {
	b.sequences[seq] = action
	r := []rune(seq)
	for i := 1; i < len(r); i++ {
		b.prefixes[string(r[:i])] = struct{}{}
	}
}

func (b *bindings) isPrefix(seq string) bool {
	_, ok := b.prefixes[seq]
	return ok
}

// InputProcessor turns tcell key events into ActionEvents for the active
// mode. It holds the pending keys of a partly typed sequence.
type InputProcessor struct {
	modes   map[mode.Mode]*bindings
	pending []rune
}

// NewInputProcessor creates a processor with the default bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{modes: make(map[mode.Mode]*bindings)}
	p.loadDefaultBindings()
	return p
}

func motionRunes() RuneKeymap {
	return RuneKeymap{
		'h': ActionMoveLeft,
		'j': ActionMoveDown,
		'k': ActionMoveUp,
		'l': ActionMoveRight,
		'w': ActionMoveWordForward,
		'b': ActionMoveWordBackward,
		'0': ActionMoveLineStart,
		'$': ActionMoveLineEnd,
		'G': ActionMoveBufferEnd,
	}
}

func arrowKeys(km Keymap) {
	km[tcell.KeyLeft] = ActionEvent{Action: ActionMoveLeft}
	km[tcell.KeyRight] = ActionEvent{Action: ActionMoveRight}
	km[tcell.KeyUp] = ActionEvent{Action: ActionMoveUp}
	km[tcell.KeyDown] = ActionEvent{Action: ActionMoveDown}
}

func (p *InputProcessor) loadDefaultBindings() {
	normal := newBindings()
	normal.runes = motionRunes()
	normal.runes['i'] = ActionInsertBefore
	normal.runes['a'] = ActionInsertAfter
	normal.runes['o'] = ActionOpenLineBelow
	normal.runes['O'] = ActionOpenLineAbove
	normal.runes['v'] = ActionEnterVisual
	normal.runes[':'] = ActionEnterCommand
	normal.runes['x'] = ActionDeleteChar
	normal.runes['u'] = ActionUndo
	normal.bindSequence("gg", ActionMoveBufferStart)
	normal.bindSequence("dd", ActionDeleteLine)
	arrowKeys(normal.keys)
	normal.keys[tcell.KeyCtrlR] = ActionEvent{Action: ActionRedo}
	p.modes[mode.Normal] = normal

	visual := newBindings()
	visual.runes = motionRunes()
	visual.runes['d'] = ActionDeleteSelection
	visual.runes['x'] = ActionDeleteSelection
	visual.bindSequence("gg", ActionMoveBufferStart)
	arrowKeys(visual.keys)
	p.modes[mode.Visual] = visual

	insert := newBindings()
	insert.textRune = ActionInsertRune
	arrowKeys(insert.keys)
	insert.keys[tcell.KeyEnter] = ActionEvent{Action: ActionInsertNewLine}
	insert.keys[tcell.KeyBackspace] = ActionEvent{Action: ActionDeleteCharBackward}
	insert.keys[tcell.KeyBackspace2] = ActionEvent{Action: ActionDeleteCharBackward}
	insert.keys[tcell.KeyDelete] = ActionEvent{Action: ActionDeleteCharForward}
	insert.keys[tcell.KeyTab] = ActionEvent{Action: ActionInsertRune, Rune: '\t'}
	p.modes[mode.Insert] = insert

	command := newBindings()
	command.textRune = ActionAppendCommand
	command.keys[tcell.KeyEnter] = ActionEvent{Action: ActionExecuteCommand}
	command.keys[tcell.KeyBackspace] = ActionEvent{Action: ActionDeleteCommandChar}
	command.keys[tcell.KeyBackspace2] = ActionEvent{Action: ActionDeleteCommandChar}
	p.modes[mode.Command] = command
}

// Pending returns the keys typed so far of an unfinished sequence.
func (p *InputProcessor) Pending() string {
	return string(p.pending)
}

// Reset discards any pending keys.
func (p *InputProcessor) Reset() {
	p.pending = p.pending[:0]
}

// ProcessEvent resolves ev in mode m. It returns false while ev only
// extends a pending sequence and no action is ready yet.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey, m mode.Mode) (ActionEvent, bool) {
	key := ev.Key()

	if key == tcell.KeyEscape {
		p.Reset()
		return ActionEvent{Action: ActionEscape}, true
	}

	b, ok := p.modes[m]
	if !ok {
		p.Reset()
		return ActionEvent{Action: ActionUnknown}, true
	}

	if key != tcell.KeyRune {
		p.discardPending(ev)
		if ae, ok := b.keys[key]; ok {
			return ae, true
		}
		return ActionEvent{Action: ActionUnknown}, true
	}

	if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
		p.discardPending(ev)
		return ActionEvent{Action: ActionUnknown}, true
	}

	r := ev.Rune()
	if len(p.pending) > 0 {
		seq := string(p.pending) + string(r)
		if action, ok := b.sequences[seq]; ok {
			p.Reset()
			return ActionEvent{Action: action}, true
		}
		if b.isPrefix(seq) {
			p.pending = append(p.pending, r)
			return ActionEvent{}, false
		}
		// No continuation: drop the prefix and read r on its own.
		p.discardPending(ev)
	}

	if b.isPrefix(string(r)) {
		p.pending = append(p.pending, r)
		logger.DebugTagf("keys", "input: pending %q", p.Pending())
		return ActionEvent{}, false
	}
	if action, ok := b.runes[r]; ok {
		return ActionEvent{Action: action}, true
	}
	if b.textRune != ActionUnknown {
		return ActionEvent{Action: b.textRune, Rune: r}, true
	}
	return ActionEvent{Action: ActionUnknown}, true
}

func (p *InputProcessor) discardPending(ev *tcell.EventKey) {
	if len(p.pending) == 0 {
		return
	}
	logger.DebugTagf("keys", "input: %q does not continue %q, discarding", ev.Name(), p.Pending())
	p.Reset()
}
