// Package buffer implements the editable line-oriented text buffer.
package buffer

import (
	"fmt"
	"strings"

	"github.com/bethropolis/modal/internal/history"
	"github.com/bethropolis/modal/internal/logger"
	"github.com/bethropolis/modal/internal/types"
)

// TextBuffer is an ordered list of lines plus the history that can undo
// changes to them. It always holds at least one line.
type TextBuffer struct {
	lines    [][]rune
	filePath string
	history  *history.Log
}

// New creates a buffer holding one empty line.
func New() *TextBuffer {
	return &TextBuffer{
		lines:   [][]rune{{}},
		history: history.NewLog(),
	}
}

// NewFromText creates a buffer from file contents.
func NewFromText(filePath, text string) *TextBuffer {
	b := New()
	b.filePath = filePath
	b.Load(text)
	return b
}

// Load replaces the content with text split on '\n'. History is cleared
// and the new content counts as saved.
func (b *TextBuffer) Load(text string) {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	b.lines = lines
	b.history.Clear()
	logger.Debugf("buffer: loaded %d lines", len(lines))
}

// Serialize joins the lines with '\n'. Serialize after Load returns the
// loaded text unchanged.
func (b *TextBuffer) Serialize() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// LineCount returns the number of lines, never less than one.
func (b *TextBuffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of row, or "" if row is out of range.
func (b *TextBuffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// Runes returns a copy of row's characters.
func (b *TextBuffer) Runes(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return append([]rune(nil), b.lines[row]...)
}

// LineLen returns the character count of row, or 0 if row is out of range.
func (b *TextBuffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// FilePath returns the backing file path, "" if none.
func (b *TextBuffer) FilePath() string {
	return b.filePath
}

// SetFilePath changes the backing file path.
func (b *TextBuffer) SetFilePath(path string) {
	b.filePath = path
}

// IsModified reports unsaved changes. Undoing back to the saved state
// clears it again.
func (b *TextBuffer) IsModified() bool {
	return b.history.Dirty()
}

// MarkSaved records that the current content is on disk.
func (b *TextBuffer) MarkSaved() {
	b.history.MarkSaved()
}

// CanUndo reports whether Undo has anything to revert.
func (b *TextBuffer) CanUndo() bool { return b.history.CanUndo() }

// CanRedo reports whether Redo has anything to reapply.
func (b *TextBuffer) CanRedo() bool { return b.history.CanRedo() }

// Undo reverts the newest action and returns the cursor it was made from.
func (b *TextBuffer) Undo() (types.Position, error) {
	a, ok := b.history.Undo()
	if !ok {
		return types.Position{}, ErrNothingToUndo
	}
	b.apply(a.Inverse())
	return a.CursorBefore, nil
}

// Redo reapplies the newest undone action and returns the cursor after it.
func (b *TextBuffer) Redo() (types.Position, error) {
	a, ok := b.history.Redo()
	if !ok {
		return types.Position{}, ErrNothingToRedo
	}
	b.apply(a)
	return a.CursorAfter, nil
}

func (b *TextBuffer) apply(a history.Action) {
	switch a.Op {
	case history.OpInsert:
		b.insertText(a.Start, a.Text)
	case history.OpDelete:
		b.deleteText(a.Start, a.End)
	}
}

// validate rejects positions outside the buffer shape.
func (b *TextBuffer) validate(pos types.Position) error {
	if pos.Line < 0 || pos.Line >= len(b.lines) || pos.Col < 0 || pos.Col > len(b.lines[pos.Line]) {
		return fmt.Errorf("%w: %s (lines %d)", ErrOutOfBounds, pos, len(b.lines))
	}
	return nil
}

// insertText splices text (which may hold '\n') in at pos and returns the
// position just past it.
func (b *TextBuffer) insertText(pos types.Position, text string) types.Position {
	parts := strings.Split(text, "\n")
	line := b.lines[pos.Line]
	head := append([]rune(nil), line[:pos.Col]...)
	tail := append([]rune(nil), line[pos.Col:]...)

	if len(parts) == 1 {
		head = append(head, []rune(parts[0])...)
		b.lines[pos.Line] = append(head, tail...)
		return types.Position{Line: pos.Line, Col: pos.Col + len([]rune(parts[0]))}
	}

	inserted := make([][]rune, len(parts))
	inserted[0] = append(head, []rune(parts[0])...)
	for i := 1; i < len(parts); i++ {
		inserted[i] = []rune(parts[i])
	}
	last := len(parts) - 1
	end := types.Position{Line: pos.Line + last, Col: len(inserted[last])}
	inserted[last] = append(inserted[last], tail...)

	lines := make([][]rune, 0, len(b.lines)+last)
	lines = append(lines, b.lines[:pos.Line]...)
	lines = append(lines, inserted...)
	lines = append(lines, b.lines[pos.Line+1:]...)
	b.lines = lines
	return end
}

// textBetween returns the text from start up to (not including) end.
func (b *TextBuffer) textBetween(start, end types.Position) string {
	if start.Line == end.Line {
		return string(b.lines[start.Line][start.Col:end.Col])
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Line][start.Col:]))
	for row := start.Line + 1; row < end.Line; row++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[row]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Line][:end.Col]))
	return sb.String()
}

// deleteText removes the text from start up to end and returns it.
func (b *TextBuffer) deleteText(start, end types.Position) string {
	removed := b.textBetween(start, end)
	merged := append([]rune(nil), b.lines[start.Line][:start.Col]...)
	merged = append(merged, b.lines[end.Line][end.Col:]...)

	lines := make([][]rune, 0, len(b.lines)-(end.Line-start.Line))
	lines = append(lines, b.lines[:start.Line]...)
	lines = append(lines, merged)
	lines = append(lines, b.lines[end.Line+1:]...)
	b.lines = lines
	return removed
}
