package lexer

import "lexiscope/internal/token"

// scanString consumes a quoted literal including both quotes.
// A backslash takes the next unit verbatim; nothing is unescaped.
// An unterminated literal silently runs to the end of input and comes out
// invalid (its first and last units differ).
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Bump()
		if ch == '\\' {
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if ch == quote {
			break
		}
	}
	return lx.emit(start, token.String)
}
