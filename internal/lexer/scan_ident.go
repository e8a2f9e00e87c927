package lexer

import "lexiscope/internal/token"

// scanIdentOrKeyword consumes [letter _ $][letter digit _ $]* and checks the
// result against the reserved-word table (case-sensitive).
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	value := lx.text[start.Offset:lx.cursor.Offset()]
	if token.IsKeyword(value) {
		return lx.emit(start, token.Keyword)
	}
	return lx.emit(start, token.Identifier)
}
