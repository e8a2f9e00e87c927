package lexer

import (
	"lexiscope/internal/charclass"
	"lexiscope/internal/source"
)

// Cursor walks the classified characters one code unit at a time and
// tracks the line/column of the next unit.
type Cursor struct {
	chars   []charclass.Character
	textLen int
	Pos     int // index of the next unit
	Line    int // 1-based
	Col     int // 1-based
}

// NewCursor creates a cursor positioned at the first unit.
func NewCursor(text string, chars []charclass.Character) Cursor {
	return Cursor{chars: chars, textLen: len(text), Line: 1, Col: 1}
}

// EOF проверяет, что все единицы прочитаны
func (c *Cursor) EOF() bool {
	return c.Pos >= len(c.chars)
}

// Peek returns the code point of the next unit, or source.InvalidRune at EOF.
func (c *Cursor) Peek() rune {
	return c.PeekAt(0)
}

// PeekAt looks n units ahead without consuming.
func (c *Cursor) PeekAt(n int) rune {
	if c.Pos+n >= len(c.chars) {
		return source.InvalidRune
	}
	return c.chars[c.Pos+n].CodePoint
}

// Offset returns the byte offset of the next unit (len(text) at EOF).
func (c *Cursor) Offset() int {
	if c.EOF() {
		return c.textLen
	}
	return c.chars[c.Pos].Offset
}

// Bump consumes one unit and returns its code point.
// A line break moves to column 1 of the next line.
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return source.InvalidRune
	}
	r := c.chars[c.Pos].CodePoint
	c.Pos++
	if r == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col++
	}
	return r
}

// BumpN consumes up to n units.
func (c *Cursor) BumpN(n int) {
	for i := 0; i < n && !c.EOF(); i++ {
		c.Bump()
	}
}

// Mark это метка начала токена
type Mark struct {
	Pos    int
	Offset int
	Line   int
	Col    int
}

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark{Pos: c.Pos, Offset: c.Offset(), Line: c.Line, Col: c.Col}
}
