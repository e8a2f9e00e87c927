package phase

import (
	"fmt"

	"lexiscope/internal/diag"
	"lexiscope/internal/token"
)

// delimiter tracks one bracket kind. depth never goes below zero: a closer
// with nothing open is reported and ignored.
type delimiter struct {
	open, close string
	name        string
	unmatched   diag.Code
	unclosed    diag.Code
	depth       int
}

func newDelimiters() []*delimiter {
	return []*delimiter{
		{open: "{", close: "}", name: "brace", unmatched: diag.SynUnmatchedBrace, unclosed: diag.SynUnclosedBrace},
		{open: "(", close: ")", name: "parenthesis", unmatched: diag.SynUnmatchedParen, unclosed: diag.SynUnclosedParen},
		{open: "[", close: "]", name: "bracket", unmatched: diag.SynUnmatchedBracket, unclosed: diag.SynUnclosedBracket},
	}
}

func checkSyntactic(in *Input, opts Options, r diag.Reporter) string {
	delims := newDelimiters()
	invalid := 0

	for i := range in.Tokens {
		tok := &in.Tokens[i]
		if !tok.Valid {
			invalid++
			diag.Error(r, diag.SynInvalidToken, tok.Line, tok.Column,
				fmt.Sprintf("malformed %s %q: %s", tok.Type, tok.Value, tok.Meaning)).
				Hint(invalidTokenHint(tok)).
				Send()
		}
		if !tok.IsBracket() {
			continue
		}
		for _, d := range delims {
			switch tok.Value {
			case d.open:
				d.depth++
			case d.close:
				if d.depth == 0 {
					diag.Error(r, d.unmatched, tok.Line, tok.Column,
						fmt.Sprintf("unmatched closing %s '%s'", d.name, d.close)).
						Hint(fmt.Sprintf("insert a matching '%s' before this point", d.open)).
						Send()
					continue
				}
				d.depth--
			}
		}
	}

	line, col := 1, 1
	if n := len(in.Tokens); n > 0 {
		line, col = in.Tokens[n-1].Line, in.Tokens[n-1].Column
	}
	checked := delims[:1]
	if opts.SymmetricDelimiters {
		checked = delims
	}
	unclosed := 0
	for _, d := range checked {
		if d.depth <= 0 {
			continue
		}
		unclosed += d.depth
		diag.Error(r, d.unclosed, line, col,
			fmt.Sprintf("%d unclosed %s(s) '%s' at end of input", d.depth, d.name, d.open)).
			Hint(fmt.Sprintf("add %d closing '%s'", d.depth, d.close)).
			Send()
	}

	return fmt.Sprintf("%d tokens checked, %d malformed, %d unclosed delimiters", len(in.Tokens), invalid, unclosed)
}

func invalidTokenHint(tok *token.Token) string {
	switch tok.Type {
	case token.String:
		if len(tok.Value) > 0 {
			return fmt.Sprintf("close the literal with a matching %c", tok.Value[0])
		}
	case token.Number:
		return "write the number as digits with at most one decimal point"
	case token.Identifier:
		return "identifiers start with a letter, '_' or '$'"
	}
	return "check the token spelling"
}
