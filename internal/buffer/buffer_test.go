package buffer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/modal/internal/types"
)

func pos(line, col int) types.Position { return types.Position{Line: line, Col: col} }

func TestLoadSerializeRoundTrip(t *testing.T) {
	for _, text := range []string{
		"",
		"hello",
		"hello\n",
		"\n\n",
		"one\ntwo\nthree",
		"trailing\n\n",
		"tabs\tand ünïcode\n日本語",
	} {
		b := NewFromText("f.txt", text)
		assert.Equal(t, text, b.Serialize(), "round trip of %q", text)
		assert.False(t, b.IsModified())
		assert.GreaterOrEqual(t, b.LineCount(), 1)
	}
}

func TestNewIsOneEmptyLine(t *testing.T) {
	b := New()
	assert.Equal(t, 1, b.LineCount())
	assert.Equal(t, "", b.Line(0))
	assert.Equal(t, "", b.FilePath())
}

func TestInsertChar(t *testing.T) {
	b := NewFromText("", "hello")
	after, err := b.InsertChar(pos(0, 0), 'X')
	require.NoError(t, err)
	assert.Equal(t, pos(0, 1), after)
	assert.Equal(t, "Xhello", b.Serialize())
	assert.True(t, b.IsModified())

	_, err = b.InsertChar(pos(0, 6), '!')
	require.NoError(t, err)
	assert.Equal(t, "Xhello!", b.Serialize())

	_, err = b.InsertChar(pos(0, 9), '?')
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = b.InsertChar(pos(3, 0), '?')
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, "Xhello!", b.Serialize())
}

func TestDeleteCharForward(t *testing.T) {
	b := NewFromText("", "ab\ncd")

	removed, err := b.DeleteCharForward(pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, "a", removed)
	assert.Equal(t, "b\ncd", b.Serialize())

	removed, err = b.DeleteCharForward(pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, "\n", removed)
	assert.Equal(t, "bcd", b.Serialize())

	removed, err = b.DeleteCharForward(pos(0, 3))
	require.NoError(t, err)
	assert.Equal(t, "", removed)
	assert.Equal(t, "bcd", b.Serialize())
}

func TestDeleteCharBackward(t *testing.T) {
	b := NewFromText("", "abc\nde")

	at, err := b.DeleteCharBackward(pos(1, 0))
	require.NoError(t, err)
	assert.Equal(t, pos(0, 3), at, "lands at the previous line's original length")
	assert.Equal(t, "abcde", b.Serialize())

	at, err = b.DeleteCharBackward(pos(0, 2))
	require.NoError(t, err)
	assert.Equal(t, pos(0, 1), at)
	assert.Equal(t, "acde", b.Serialize())

	depth := b.history.Depth()
	at, err = b.DeleteCharBackward(pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, pos(0, 0), at)
	assert.Equal(t, depth, b.history.Depth(), "no action at buffer start")
}

func TestInsertLines(t *testing.T) {
	b := NewFromText("", "a\nb")

	at, err := b.InsertLineAfter(pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, pos(1, 0), at)
	assert.Equal(t, "a\n\nb", b.Serialize())

	at, err = b.InsertLineBefore(pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, pos(0, 0), at)
	assert.Equal(t, "\na\n\nb", b.Serialize())
}

func TestSplitLine(t *testing.T) {
	b := NewFromText("", "hello world")
	at, err := b.SplitLine(pos(0, 5))
	require.NoError(t, err)
	assert.Equal(t, pos(1, 0), at)
	assert.Equal(t, []string{"hello", " world"}, []string{b.Line(0), b.Line(1)})
}

func TestDeleteLine(t *testing.T) {
	b := NewFromText("", "hello world")
	removed, err := b.DeleteLine(pos(0, 3))
	require.NoError(t, err)
	assert.Equal(t, "hello world", removed)
	assert.Equal(t, 1, b.LineCount())
	assert.Equal(t, "", b.Line(0))
	assert.True(t, b.IsModified())

	b = NewFromText("", "one\ntwo\nthree")
	_, err = b.DeleteLine(pos(1, 0))
	require.NoError(t, err)
	assert.Equal(t, "one\nthree", b.Serialize())

	_, err = b.DeleteLine(pos(1, 0))
	require.NoError(t, err)
	assert.Equal(t, "one", b.Serialize())

	cur, err := b.Undo()
	require.NoError(t, err)
	assert.Equal(t, pos(1, 0), cur)
	assert.Equal(t, "one\nthree", b.Serialize())
}

func TestDeleteRange(t *testing.T) {
	b := NewFromText("", "hello\nworld")
	removed, err := b.DeleteRange(pos(1, 1), pos(0, 3))
	require.NoError(t, err)
	assert.Equal(t, "lo\nwo", removed)
	assert.Equal(t, "helrld", b.Serialize())

	b = NewFromText("", "ab\n\ncd")
	removed, err = b.DeleteRange(pos(0, 1), pos(1, 0))
	require.NoError(t, err)
	assert.Equal(t, "b\n\n", removed)
	assert.Equal(t, "acd", b.Serialize())

	_, err = b.Undo()
	require.NoError(t, err)
	assert.Equal(t, "ab\n\ncd", b.Serialize())
}

func TestUndoRedo(t *testing.T) {
	b := NewFromText("", "hello")
	_, err := b.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
	_, err = b.Redo()
	assert.ErrorIs(t, err, ErrNothingToRedo)

	_, err = b.InsertChar(pos(0, 5), '!')
	require.NoError(t, err)

	cur, err := b.Undo()
	require.NoError(t, err)
	assert.Equal(t, pos(0, 5), cur)
	assert.Equal(t, "hello", b.Serialize())
	assert.False(t, b.IsModified(), "back at the loaded state")

	cur, err = b.Redo()
	require.NoError(t, err)
	assert.Equal(t, pos(0, 6), cur)
	assert.Equal(t, "hello!", b.Serialize())
	assert.True(t, b.IsModified())

	b.MarkSaved()
	assert.False(t, b.IsModified())
}

// Any run of edits followed by as many undos restores content and cursor.
func TestUndoSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		b := NewFromText("", "alpha beta\n\ngamma\tdelta\nz")
		original := b.Serialize()
		start := pos(rng.Intn(b.LineCount()), 0)
		start.Col = rng.Intn(b.LineLen(start.Line) + 1)

		cur := start
		steps := 1 + rng.Intn(12)
		for i := 0; i < steps; i++ {
			cur = randomEdit(t, rng, b, cur)
		}
		for b.CanUndo() {
			var err error
			cur, err = b.Undo()
			require.NoError(t, err)
		}
		require.Equal(t, original, b.Serialize(), "round %d", round)
		require.Equal(t, start, cur, "round %d", round)
	}
}

// randomEdit applies one mutation at cur and returns where the cursor ends up.
func randomEdit(t *testing.T, rng *rand.Rand, b *TextBuffer, cur types.Position) types.Position {
	t.Helper()
	clamp := func(p types.Position) types.Position {
		if p.Line >= b.LineCount() {
			p.Line = b.LineCount() - 1
		}
		if p.Col > b.LineLen(p.Line) {
			p.Col = b.LineLen(p.Line)
		}
		return p
	}
	var err error
	switch rng.Intn(7) {
	case 0:
		cur, err = b.InsertChar(cur, rune('a'+rng.Intn(26)))
	case 1:
		_, err = b.DeleteCharForward(cur)
	case 2:
		cur, err = b.DeleteCharBackward(cur)
	case 3:
		cur, err = b.InsertLineAfter(cur)
	case 4:
		cur, err = b.InsertLineBefore(cur)
	case 5:
		_, err = b.DeleteLine(cur)
		cur.Col = 0
	case 6:
		cur, err = b.SplitLine(cur)
	}
	require.NoError(t, err)
	return clamp(cur)
}
