package lexer

import (
	"lexiscope/internal/charclass"
	"lexiscope/internal/token"
)

// scanSpace coalesces a run of whitespace, newlines included, into one token.
func (lx *Lexer) scanSpace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && charclass.IsWhitespace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(start, token.Whitespace)
}
