package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]KeywordGroup{
		"if":       GroupConditional,
		"case":     GroupConditional,
		"while":    GroupLoop,
		"function": GroupDeclaration,
		"return":   GroupFlow,
		"let":      GroupReserved,
		"int":      GroupReserved,
		"get":      GroupReserved,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Function", "LET", "Return", // регистр важен
		"x", "foo_bar", "toString", "",
		"type", "undefined", // не входят в словарь
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

// Словарь фиксирован: ровно эти 70 слов, ни больше ни меньше.
func TestReservedWordsExact(t *testing.T) {
	want := []string{
		"abstract",
		"arguments",
		"await",
		"boolean",
		"break",
		"byte",
		"case",
		"catch",
		"char",
		"class",
		"const",
		"continue",
		"debugger",
		"default",
		"delete",
		"do",
		"double",
		"else",
		"enum",
		"eval",
		"export",
		"extends",
		"false",
		"final",
		"finally",
		"float",
		"for",
		"function",
		"goto",
		"if",
		"implements",
		"import",
		"in",
		"instanceof",
		"int",
		"interface",
		"let",
		"long",
		"native",
		"new",
		"null",
		"package",
		"private",
		"protected",
		"public",
		"return",
		"short",
		"static",
		"super",
		"switch",
		"synchronized",
		"this",
		"throw",
		"throws",
		"transient",
		"true",
		"try",
		"typeof",
		"var",
		"void",
		"volatile",
		"while",
		"with",
		"yield",
		"async",
		"of",
		"from",
		"as",
		"get",
		"set",
	}
	if len(reservedWords) != len(want) {
		t.Fatalf("table has %d words, want %d", len(reservedWords), len(want))
	}
	for i, w := range want {
		if reservedWords[i] != w {
			t.Fatalf("word %d = %q, want %q", i, reservedWords[i], w)
		}
		if !IsKeyword(w) {
			t.Fatalf("%q is not a keyword", w)
		}
	}
	if len(keywords) != len(want) {
		t.Fatalf("duplicates in table: %d distinct of %d", len(keywords), len(want))
	}
}

func TestKeywordsIsSortedCopy(t *testing.T) {
	list := Keywords()
	if len(list) != len(keywords) {
		t.Fatalf("Keywords() has %d entries, table has %d", len(list), len(keywords))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1] >= list[i] {
			t.Fatalf("Keywords() not sorted at %d: %q >= %q", i, list[i-1], list[i])
		}
	}
	list[0] = "mutated"
	if Keywords()[0] == "mutated" {
		t.Fatal("Keywords() leaked the internal slice")
	}
}
