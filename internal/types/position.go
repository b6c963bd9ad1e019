// Package types holds small value types shared across the editor packages.
package types

import "fmt"

// Position is a location in the buffer.
// Line is the 0-based line index.
// Col is the 0-based rune index within the line; Col == line length
// addresses the slot past the last character.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p sorts strictly before o in reading order.
func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Col < o.Col
}

// Ordered returns a and b sorted so the first is not after the second.
func Ordered(a, b Position) (Position, Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
