package lexer

import (
	"lexiscope/internal/charclass"
	"lexiscope/internal/token"
)

// scanNumber consumes a run of digits and dots. Placement is not checked:
// "3.14.15" is a single number token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if !charclass.IsDigit(ch) && ch != '.' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(start, token.Number)
}
