package buffer

import (
	"github.com/bethropolis/modal/internal/history"
	"github.com/bethropolis/modal/internal/types"
)

// record applies a fresh edit and pushes it onto the history.
func (b *TextBuffer) record(kind history.Kind, op history.Op, start, end types.Position, text string, before, after types.Position) {
	a := history.Action{
		Kind:         kind,
		Op:           op,
		Text:         text,
		Start:        start,
		End:          end,
		CursorBefore: before,
		CursorAfter:  after,
	}
	b.apply(a)
	b.history.Push(a)
}

func (b *TextBuffer) lastLine() int { return len(b.lines) - 1 }

// InsertChar inserts ch before pos.Col on pos.Line.
func (b *TextBuffer) InsertChar(pos types.Position, ch rune) (types.Position, error) {
	if err := b.validate(pos); err != nil {
		return pos, err
	}
	text := string(ch)
	kind := history.InsertChar
	end := types.Position{Line: pos.Line, Col: pos.Col + 1}
	if ch == '\n' {
		kind = history.SplitLine
		end = types.Position{Line: pos.Line + 1}
	}
	b.record(kind, history.OpInsert, pos, end, text, pos, end)
	return end, nil
}

// DeleteCharForward removes the character at pos and returns it. At the
// end of a line the next line is joined on and "\n" is returned. At the end
// of the last line nothing happens.
func (b *TextBuffer) DeleteCharForward(pos types.Position) (string, error) {
	if err := b.validate(pos); err != nil {
		return "", err
	}
	if pos.Col < b.LineLen(pos.Line) {
		end := types.Position{Line: pos.Line, Col: pos.Col + 1}
		text := b.textBetween(pos, end)
		b.record(history.DeleteChar, history.OpDelete, pos, end, text, pos, pos)
		return text, nil
	}
	if pos.Line < b.lastLine() {
		end := types.Position{Line: pos.Line + 1}
		b.record(history.JoinLines, history.OpDelete, pos, end, "\n", pos, pos)
		return "\n", nil
	}
	return "", nil
}

// DeleteCharBackward removes the character left of pos and returns the
// resulting cursor. At column 0 the line joins onto the previous one, and
// the cursor lands at that line's original length. At (0,0) nothing happens.
func (b *TextBuffer) DeleteCharBackward(pos types.Position) (types.Position, error) {
	if err := b.validate(pos); err != nil {
		return pos, err
	}
	switch {
	case pos.Col > 0:
		start := types.Position{Line: pos.Line, Col: pos.Col - 1}
		b.record(history.DeleteChar, history.OpDelete, start, pos, b.textBetween(start, pos), pos, start)
		return start, nil
	case pos.Line > 0:
		start := types.Position{Line: pos.Line - 1, Col: b.LineLen(pos.Line - 1)}
		b.record(history.JoinLines, history.OpDelete, start, pos, "\n", pos, start)
		return start, nil
	}
	return pos, nil
}

// InsertLineAfter opens an empty line below pos.Line and returns its start.
func (b *TextBuffer) InsertLineAfter(pos types.Position) (types.Position, error) {
	if err := b.validate(pos); err != nil {
		return pos, err
	}
	at := types.Position{Line: pos.Line, Col: b.LineLen(pos.Line)}
	after := types.Position{Line: pos.Line + 1}
	b.record(history.InsertLine, history.OpInsert, at, after, "\n", pos, after)
	return after, nil
}

// InsertLineBefore opens an empty line above pos.Line and returns its start.
func (b *TextBuffer) InsertLineBefore(pos types.Position) (types.Position, error) {
	if err := b.validate(pos); err != nil {
		return pos, err
	}
	at := types.Position{Line: pos.Line}
	end := types.Position{Line: pos.Line + 1}
	b.record(history.InsertLine, history.OpInsert, at, end, "\n", pos, at)
	return at, nil
}

// SplitLine breaks pos.Line at pos.Col, moving the remainder to a new line
// below. It returns the start of that new line.
func (b *TextBuffer) SplitLine(pos types.Position) (types.Position, error) {
	if err := b.validate(pos); err != nil {
		return pos, err
	}
	after := types.Position{Line: pos.Line + 1}
	b.record(history.SplitLine, history.OpInsert, pos, after, "\n", pos, after)
	return after, nil
}

// DeleteLine removes pos.Line and returns its text. The last remaining line
// is emptied instead of removed.
func (b *TextBuffer) DeleteLine(pos types.Position) (string, error) {
	if err := b.validate(pos); err != nil {
		return "", err
	}
	row := pos.Line
	text := b.Line(row)

	var start, end types.Position
	switch {
	case len(b.lines) == 1:
		if text == "" {
			return "", nil
		}
		start, end = types.Position{}, types.Position{Col: b.LineLen(0)}
	case row < b.lastLine():
		start, end = types.Position{Line: row}, types.Position{Line: row + 1}
	default:
		start = types.Position{Line: row - 1, Col: b.LineLen(row - 1)}
		end = types.Position{Line: row, Col: b.LineLen(row)}
	}

	after := types.Position{Line: row}
	if row >= len(b.lines)-(end.Line-start.Line) {
		after.Line = row - 1
	}
	if after.Line < 0 {
		after.Line = 0
	}
	b.record(history.DeleteLine, history.OpDelete, start, end, b.textBetween(start, end), pos, after)
	return text, nil
}

// DeleteRange removes the characters from start through end inclusive and
// returns them. An end on the slot past a line's last character takes the
// line break with it.
func (b *TextBuffer) DeleteRange(start, end types.Position) (string, error) {
	start, end = types.Ordered(start, end)
	if err := b.validate(start); err != nil {
		return "", err
	}
	if err := b.validate(end); err != nil {
		return "", err
	}

	stop := types.Position{Line: end.Line, Col: end.Col + 1}
	if end.Col >= b.LineLen(end.Line) {
		if end.Line < b.lastLine() {
			stop = types.Position{Line: end.Line + 1}
		} else {
			stop = types.Position{Line: end.Line, Col: b.LineLen(end.Line)}
		}
	}
	if stop == start {
		return "", nil
	}

	text := b.textBetween(start, stop)
	b.record(history.DeleteRange, history.OpDelete, start, stop, text, start, start)
	return text, nil
}
