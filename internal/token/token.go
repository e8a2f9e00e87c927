package token

import "lexiscope/internal/charclass"

// Type is the lexical class of a token.
type Type string

const (
	Keyword     Type = "keyword"
	Identifier  Type = "identifier"
	Number      Type = "number"
	String      Type = "string"
	Operator    Type = "operator"
	Punctuation Type = "punctuation"
	Whitespace  Type = "whitespace"
	Symbol      Type = "symbol"
	// Literal is part of the public vocabulary but the tokenizer never emits it:
	// true/false/null are reserved words and come out as Keyword.
	Literal Type = "literal"
)

// Scope tags are flat: they describe the role of a token, not a nesting level.
const (
	ScopeDeclaration = "declaration" // var, let, const
	ScopeIdentifier  = "identifier"
	ScopeExpression  = "expression" // operators
	ScopeGlobal      = "global"
)

// ScopeOf picks the scope tag for a token of type typ with value v.
func ScopeOf(typ Type, v string) string {
	switch {
	case typ == Keyword && (v == "var" || v == "let" || v == "const"):
		return ScopeDeclaration
	case typ == Identifier:
		return ScopeIdentifier
	case typ == Operator:
		return ScopeExpression
	}
	return ScopeGlobal
}

// Token is a maximal lexical unit made of contiguous characters.
type Token struct {
	Value      string
	Type       Type
	Subtype    string
	Start      int // unit index of the first character
	Offset     int // byte offset of the first character
	Line       int
	Column     int
	Length     int                   // in units
	Characters []charclass.Character `msgpack:"-" cbor:"-"`
	Valid      bool
	Meaning    string
	Scope      string
}

// End returns the unit index just past the token.
func (t *Token) End() int {
	return t.Start + t.Length
}

// IsBracket reports whether the token is one of { } ( ) [ ].
func (t *Token) IsBracket() bool {
	if t.Type != Punctuation || len(t.Value) != 1 {
		return false
	}
	switch t.Value[0] {
	case '{', '}', '(', ')', '[', ']':
		return true
	}
	return false
}

// IsPunct reports membership in the structural punctuation set.
func IsPunct(r rune) bool {
	return charclass.IsPunctuation(r)
}
