package stats

import (
	"testing"

	"lexiscope/internal/charclass"
	"lexiscope/internal/lexer"
)

func compute(src string) Statistics {
	chars := charclass.ClassifyAll(src)
	return Compute(chars, lexer.Tokenize(src, chars))
}

func TestEmpty(t *testing.T) {
	s := compute("")
	if s.Characters != (CharacterStats{}) {
		t.Fatalf("characters: %+v", s.Characters)
	}
	if s.Tokens != (TokenStats{Lines: 1}) {
		t.Fatalf("tokens: %+v", s.Tokens)
	}
}

func TestCounts(t *testing.T) {
	s := compute("let é = 'a';\nx += 42 \x01")
	c := s.Characters
	if c.Total != 22 {
		t.Fatalf("total %d", c.Total)
	}
	if c.Letters != 5 || c.Accented != 1 || c.Digits != 2 || c.Control != 1 {
		t.Fatalf("letters=%d accented=%d digits=%d control=%d", c.Letters, c.Accented, c.Digits, c.Control)
	}
	if c.Valid != c.Total || c.Invalid != 0 {
		t.Fatalf("valid=%d invalid=%d", c.Valid, c.Invalid)
	}

	tk := s.Tokens
	if tk.Keywords != 1 || tk.Identifiers != 2 || tk.Numbers != 1 || tk.Strings != 1 {
		t.Fatalf("tokens %+v", tk)
	}
	if tk.Operators != 2 || tk.Punctuation != 1 || tk.Symbols != 1 {
		t.Fatalf("tokens %+v", tk)
	}
	if tk.Lines != 2 {
		t.Fatalf("lines %d", tk.Lines)
	}
}

func TestInvalidCounted(t *testing.T) {
	s := compute("'x \xfe")
	if s.Characters.Invalid != 1 {
		t.Fatalf("characters invalid %d", s.Characters.Invalid)
	}
	// незакрытая строка поглощает всё до конца
	if s.Tokens.Total != 1 || s.Tokens.Invalid != 1 {
		t.Fatalf("tokens %+v", s.Tokens)
	}
}
