// Package stats summarises classified characters and tokens.
package stats

import (
	"lexiscope/internal/charclass"
	"lexiscope/internal/token"
)

// CharacterStats counts characters by type.
type CharacterStats struct {
	Total       int `json:"total" msgpack:"total" cbor:"total"`
	Letters     int `json:"letters" msgpack:"letters" cbor:"letters"`
	Digits      int `json:"digits" msgpack:"digits" cbor:"digits"`
	Accented    int `json:"accented" msgpack:"accented" cbor:"accented"`
	Operators   int `json:"operators" msgpack:"operators" cbor:"operators"`
	Punctuation int `json:"punctuation" msgpack:"punctuation" cbor:"punctuation"`
	Symbols     int `json:"symbols" msgpack:"symbols" cbor:"symbols"`
	Whitespace  int `json:"whitespace" msgpack:"whitespace" cbor:"whitespace"`
	Control     int `json:"control" msgpack:"control" cbor:"control"`
	Other       int `json:"other" msgpack:"other" cbor:"other"`
	Valid       int `json:"valid" msgpack:"valid" cbor:"valid"`
	Invalid     int `json:"invalid" msgpack:"invalid" cbor:"invalid"`
}

// TokenStats counts tokens by type. Whitespace tokens are only in Total.
type TokenStats struct {
	Total       int `json:"total" msgpack:"total" cbor:"total"`
	Keywords    int `json:"keywords" msgpack:"keywords" cbor:"keywords"`
	Identifiers int `json:"identifiers" msgpack:"identifiers" cbor:"identifiers"`
	Numbers     int `json:"numbers" msgpack:"numbers" cbor:"numbers"`
	Strings     int `json:"strings" msgpack:"strings" cbor:"strings"`
	Operators   int `json:"operators" msgpack:"operators" cbor:"operators"`
	Punctuation int `json:"punctuation" msgpack:"punctuation" cbor:"punctuation"`
	Symbols     int `json:"symbols" msgpack:"symbols" cbor:"symbols"`
	Valid       int `json:"valid" msgpack:"valid" cbor:"valid"`
	Invalid     int `json:"invalid" msgpack:"invalid" cbor:"invalid"`
	// Lines is the highest line any token starts on, 1 when there are none.
	Lines int `json:"lines" msgpack:"lines" cbor:"lines"`
}

// Statistics is the summary attached to every analysis result.
type Statistics struct {
	Characters CharacterStats `json:"characters" msgpack:"characters" cbor:"characters"`
	Tokens     TokenStats     `json:"tokens" msgpack:"tokens" cbor:"tokens"`
}

// Compute makes one pass over each sequence.
func Compute(chars []charclass.Character, tokens []token.Token) Statistics {
	return Statistics{
		Characters: countCharacters(chars),
		Tokens:     countTokens(tokens),
	}
}

func countCharacters(chars []charclass.Character) CharacterStats {
	s := CharacterStats{Total: len(chars)}
	for i := range chars {
		ch := &chars[i]
		switch ch.Type {
		case charclass.Letter:
			s.Letters++
		case charclass.Digit:
			s.Digits++
		case charclass.Accented:
			s.Accented++
		case charclass.Operator:
			s.Operators++
		case charclass.Punctuation:
			s.Punctuation++
		case charclass.Symbol:
			s.Symbols++
		case charclass.Whitespace:
			s.Whitespace++
		case charclass.Control:
			s.Control++
		default:
			s.Other++
		}
		if ch.Valid {
			s.Valid++
		} else {
			s.Invalid++
		}
	}
	return s
}

func countTokens(tokens []token.Token) TokenStats {
	s := TokenStats{Total: len(tokens), Lines: 1}
	for i := range tokens {
		tok := &tokens[i]
		switch tok.Type {
		case token.Keyword:
			s.Keywords++
		case token.Identifier:
			s.Identifiers++
		case token.Number:
			s.Numbers++
		case token.String:
			s.Strings++
		case token.Operator:
			s.Operators++
		case token.Punctuation:
			s.Punctuation++
		case token.Symbol:
			s.Symbols++
		}
		if tok.Valid {
			s.Valid++
		} else {
			s.Invalid++
		}
		if tok.Line > s.Lines {
			s.Lines = tok.Line
		}
	}
	return s
}
