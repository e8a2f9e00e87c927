package lexer

import "lexiscope/internal/charclass"

func isQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '`'
}

// Буквы включают accented-набор из charclass.
func isIdentStart(r rune) bool {
	return charclass.IsLetter(r) || r == '_' || r == '$'
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || charclass.IsDigit(r)
}
