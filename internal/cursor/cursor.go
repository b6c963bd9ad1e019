// Package cursor implements position arithmetic over a buffer's shape.
// Every function returns a position inside the buffer; none of them mutate.
package cursor

import (
	"unicode"

	"github.com/bethropolis/modal/internal/types"
)

// Shape is the read-only view of a buffer that motions need.
type Shape interface {
	LineCount() int
	LineLen(row int) int
	Line(row int) string
}

// Motion moves p within s.
type Motion func(s Shape, p types.Position) types.Position

// Clamp pulls p back inside the buffer: row into [0, LineCount-1], then
// col into [0, LineLen(row)].
func Clamp(s Shape, p types.Position) types.Position {
	if p.Line >= s.LineCount() {
		p.Line = s.LineCount() - 1
	}
	if p.Line < 0 {
		p.Line = 0
	}
	if n := s.LineLen(p.Line); p.Col > n {
		p.Col = n
	}
	if p.Col < 0 {
		p.Col = 0
	}
	return p
}

func Left(s Shape, p types.Position) types.Position {
	p.Col--
	return Clamp(s, p)
}

func Right(s Shape, p types.Position) types.Position {
	p.Col++
	return Clamp(s, p)
}

func Up(s Shape, p types.Position) types.Position {
	p.Line--
	return Clamp(s, p)
}

func Down(s Shape, p types.Position) types.Position {
	p.Line++
	return Clamp(s, p)
}

// LineStart moves to column 0.
func LineStart(s Shape, p types.Position) types.Position {
	return Clamp(s, types.Position{Line: p.Line})
}

// LineEnd moves onto the last character of the line, or column 0 when empty.
func LineEnd(s Shape, p types.Position) types.Position {
	p = Clamp(s, p)
	p.Col = max(s.LineLen(p.Line)-1, 0)
	return p
}

// BufferStart moves to (0,0).
func BufferStart(s Shape, _ types.Position) types.Position {
	return types.Position{}
}

// BufferEnd moves to column 0 of the last line.
func BufferEnd(s Shape, _ types.Position) types.Position {
	return types.Position{Line: s.LineCount() - 1}
}

// A cell is either a character or the line break that follows a line.
// The last line has no break cell. Breaks count as whitespace.

type cells struct {
	s    Shape
	rows map[int][]rune
}

func newCells(s Shape) *cells {
	return &cells{s: s, rows: make(map[int][]rune)}
}

func (c *cells) row(line int) []rune {
	r, ok := c.rows[line]
	if !ok {
		r = []rune(c.s.Line(line))
		c.rows[line] = r
	}
	return r
}

func (c *cells) blank(p types.Position) bool {
	r := c.row(p.Line)
	return p.Col >= len(r) || unicode.IsSpace(r[p.Col])
}

func (c *cells) next(p types.Position) (types.Position, bool) {
	last := c.s.LineCount() - 1
	n := len(c.row(p.Line))
	switch {
	case p.Col+1 < n, p.Col+1 == n && p.Line < last:
		return types.Position{Line: p.Line, Col: p.Col + 1}, true
	case p.Line < last:
		return types.Position{Line: p.Line + 1}, true
	}
	return p, false
}

func (c *cells) prev(p types.Position) (types.Position, bool) {
	switch {
	case p.Col > 0:
		return types.Position{Line: p.Line, Col: p.Col - 1}, true
	case p.Line > 0:
		return types.Position{Line: p.Line - 1, Col: len(c.row(p.Line - 1))}, true
	}
	return p, false
}

// WordForward moves to the start of the next non-whitespace run. With no
// run ahead the position is unchanged.
func WordForward(s Shape, p types.Position) types.Position {
	p = Clamp(s, p)
	c := newCells(s)
	q := p
	var ok bool
	for !c.blank(q) {
		if q, ok = c.next(q); !ok {
			return p
		}
	}
	for c.blank(q) {
		if q, ok = c.next(q); !ok {
			return p
		}
	}
	return q
}

// WordBackward moves to the start of the previous non-whitespace run, or
// the start of the current one when p is inside it. With no run behind
// the position is unchanged.
func WordBackward(s Shape, p types.Position) types.Position {
	p = Clamp(s, p)
	c := newCells(s)
	q, ok := c.prev(p)
	if !ok {
		return p
	}
	for c.blank(q) {
		if q, ok = c.prev(q); !ok {
			return p
		}
	}
	for q.Col > 0 && !c.blank(types.Position{Line: q.Line, Col: q.Col - 1}) {
		q.Col--
	}
	return q
}
