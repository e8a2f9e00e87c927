package lexer

import (
	"testing"

	"lexiscope/internal/charclass"
	"lexiscope/internal/source"
)

func TestCursorBasic(t *testing.T) {
	src := "ab\nc"
	c := NewCursor(src, charclass.ClassifyAll(src))

	if c.EOF() {
		t.Fatalf("fresh cursor must not be at EOF")
	}
	if c.Peek() != 'a' || c.PeekAt(2) != '\n' {
		t.Fatalf("peek mismatch")
	}

	m := c.Mark()
	c.Bump()
	c.Bump()
	if c.Line != 1 || c.Col != 3 {
		t.Fatalf("before newline: %d:%d", c.Line, c.Col)
	}
	// перевод строки сбрасывает колонку
	c.Bump()
	if c.Line != 2 || c.Col != 1 {
		t.Fatalf("after newline: %d:%d", c.Line, c.Col)
	}
	if c.Offset() != 3 {
		t.Fatalf("offset = %d", c.Offset())
	}
	c.Bump()
	if !c.EOF() || c.Peek() != source.InvalidRune || c.Offset() != len(src) {
		t.Fatalf("expected EOF")
	}
	if c.Bump() != source.InvalidRune {
		t.Fatalf("bump past EOF must be a no-op")
	}
	if m.Pos != 0 || m.Line != 1 || m.Col != 1 {
		t.Fatalf("mark = %+v", m)
	}
}

func TestCursorMultibyteOffsets(t *testing.T) {
	src := "é1"
	c := NewCursor(src, charclass.ClassifyAll(src))
	c.Bump()
	if c.Pos != 1 || c.Offset() != 2 || c.Col != 2 {
		t.Fatalf("pos=%d off=%d col=%d", c.Pos, c.Offset(), c.Col)
	}
}
