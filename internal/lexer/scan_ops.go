package lexer

import "lexiscope/internal/token"

// scanOperator tries the operator table, longest entry first.
// Operators are ASCII, so one byte of the match is one unit.
func (lx *Lexer) scanOperator() (token.Token, bool) {
	op, ok := token.MatchOperator(lx.text[lx.cursor.Offset():])
	if !ok {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.BumpN(len(op))
	return lx.emit(start, token.Operator), true
}

// scanPunct emits one structural punctuation unit.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(start, token.Punctuation)
}

// scanSymbol is the fallback: any unit no other rule accepted.
func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(start, token.Symbol)
}
