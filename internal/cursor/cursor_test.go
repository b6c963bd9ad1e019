package cursor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/modal/internal/types"
)

type lines []string

func (l lines) LineCount() int { return len(l) }
func (l lines) LineLen(row int) int { return len([]rune(l[row])) }
func (l lines) Line(row int) string { return l[row] }

func shape(text string) lines { return lines(strings.Split(text, "\n")) }

func at(line, col int) types.Position { return types.Position{Line: line, Col: col} }

func TestHorizontalClamp(t *testing.T) {
	s := shape("abc")
	assert.Equal(t, at(0, 0), Left(s, at(0, 0)))
	assert.Equal(t, at(0, 3), Right(s, at(0, 3)))
	assert.Equal(t, at(0, 2), Right(s, at(0, 1)))
}

func TestVerticalClampsColumn(t *testing.T) {
	s := shape("a long line\nab\n\nlonger again")
	p := at(0, 8)

	p = Down(s, p)
	assert.Equal(t, at(1, 2), p)
	p = Down(s, p)
	assert.Equal(t, at(2, 0), p)
	p = Down(s, Down(s, p))
	assert.Equal(t, at(3, 0), p)
	assert.Equal(t, at(0, 0), Up(s, Up(s, Up(s, Up(s, p)))))
}

func TestVerticalNeverExceedsLineLen(t *testing.T) {
	s := shape("xxxxxxxx\n\nyy\nzzzzz\n")
	for row := 0; row < s.LineCount(); row++ {
		for col := 0; col <= s.LineLen(row); col++ {
			for _, m := range []Motion{Up, Down, Left, Right} {
				p := m(s, at(row, col))
				assert.GreaterOrEqual(t, p.Col, 0)
				assert.GreaterOrEqual(t, p.Line, 0)
				assert.Less(t, p.Line, s.LineCount())
				assert.LessOrEqual(t, p.Col, s.LineLen(p.Line))
			}
		}
	}
}

func TestLineAndBufferBounds(t *testing.T) {
	s := shape("hello\n\nend")
	assert.Equal(t, at(0, 0), LineStart(s, at(0, 3)))
	assert.Equal(t, at(0, 4), LineEnd(s, at(0, 1)))
	assert.Equal(t, at(1, 0), LineEnd(s, at(1, 0)))
	assert.Equal(t, at(0, 0), BufferStart(s, at(2, 2)))
	assert.Equal(t, at(2, 0), BufferEnd(s, at(0, 4)))
}

func TestWordForward(t *testing.T) {
	tests := []struct {
		name string
		text string
		from types.Position
		want types.Position
	}{
		{"inside word", "hello world", at(0, 1), at(0, 6)},
		{"from whitespace", "a   b", at(0, 2), at(0, 4)},
		{"last word stays", "hello world", at(0, 6), at(0, 6)},
		{"trailing space stays", "end   ", at(0, 0), at(0, 0)},
		{"across line break", "foo\nbar", at(0, 0), at(1, 0)},
		{"skips empty lines", "foo\n\n  bar", at(0, 2), at(2, 2)},
		{"tabs are whitespace", "x\t\ty", at(0, 0), at(0, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordForward(shape(tt.text), tt.from))
		})
	}
}

func TestWordForwardTwice(t *testing.T) {
	s := shape("hello world")
	p := WordForward(s, WordForward(s, at(0, 0)))
	assert.Equal(t, at(0, 6), p)
}

func TestWordBackward(t *testing.T) {
	tests := []struct {
		name string
		text string
		from types.Position
		want types.Position
	}{
		{"to previous word", "hello world", at(0, 6), at(0, 0)},
		{"to start of current word", "hello world", at(0, 9), at(0, 6)},
		{"across line break", "foo\n  bar", at(1, 2), at(0, 0)},
		{"buffer start stays", "hello", at(0, 0), at(0, 0)},
		{"leading space stays", "   hi", at(0, 3), at(0, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordBackward(shape(tt.text), tt.from))
		})
	}
}
