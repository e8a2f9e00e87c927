package lexer

import (
	"lexiscope/internal/charclass"
	"lexiscope/internal/token"
)

// Lexer is a single-pass maximal-munch tokenizer. It never backtracks and
// every rule consumes at least one unit, so it always terminates.
type Lexer struct {
	text   string
	chars  []charclass.Character
	cursor Cursor
}

// New creates a lexer over text and its classified characters.
// chars must be charclass.ClassifyAll(text) (or an equivalent sequence).
func New(text string, chars []charclass.Character) *Lexer {
	return &Lexer{
		text:   text,
		chars:  chars,
		cursor: NewCursor(text, chars),
	}
}

// Tokenize returns every token of text in order. Concatenating their values
// reproduces text exactly.
func Tokenize(text string, chars []charclass.Character) []token.Token {
	lx := New(text, chars)
	tokens := make([]token.Token, 0, len(chars)/2+1)
	for {
		tok, ok := lx.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token; ok is false once the input is exhausted.
func (lx *Lexer) Next() (tok token.Token, ok bool) {
	if lx.cursor.EOF() {
		return token.Token{}, false
	}

	// правила в порядке приоритета
	ch := lx.cursor.Peek()
	switch {
	case charclass.IsWhitespace(ch):
		return lx.scanSpace(), true
	case isQuote(ch):
		return lx.scanString(), true
	case charclass.IsDigit(ch):
		return lx.scanNumber(), true
	}

	if tok, ok := lx.scanOperator(); ok {
		return tok, true
	}

	switch {
	case token.IsPunct(ch):
		return lx.scanPunct(), true
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword(), true
	default:
		return lx.scanSymbol(), true
	}
}

// emit closes the token that started at m.
func (lx *Lexer) emit(m Mark, typ token.Type) token.Token {
	end := lx.cursor.Pos
	tok := token.Token{
		Value:      lx.text[m.Offset:lx.cursor.Offset()],
		Type:       typ,
		Start:      m.Pos,
		Offset:     m.Offset,
		Line:       m.Line,
		Column:     m.Col,
		Length:     end - m.Pos,
		Characters: lx.chars[m.Pos:end:end],
	}
	annotate(&tok)
	return tok
}
