package token

import "sort"

// KeywordGroup is the subtype given to a reserved word.
type KeywordGroup string

const (
	GroupConditional KeywordGroup = "conditional"
	GroupLoop        KeywordGroup = "loop"
	GroupDeclaration KeywordGroup = "declaration"
	GroupFlow        KeywordGroup = "flow-control"
	GroupReserved    KeywordGroup = "reserved"
)

// reservedWords is the fixed vocabulary in its canonical order.
var reservedWords = []string{
	"abstract", "arguments", "await", "boolean", "break", "byte", "case", "catch", "char",
	"class", "const", "continue", "debugger", "default", "delete", "do", "double", "else", "enum",
	"eval", "export", "extends", "false", "final", "finally", "float", "for", "function", "goto",
	"if", "implements", "import", "in", "instanceof", "int", "interface", "let", "long", "native",
	"new", "null", "package", "private", "protected", "public", "return", "short", "static",
	"super", "switch", "synchronized", "this", "throw", "throws", "transient", "true", "try",
	"typeof", "var", "void", "volatile", "while", "with", "yield", "async", "of", "from", "as",
	"get", "set",
}

// keywordGroups lists the words whose subtype is not GroupReserved.
var keywordGroups = map[string]KeywordGroup{
	"if":        GroupConditional,
	"else":      GroupConditional,
	"switch":    GroupConditional,
	"case":      GroupConditional,
	"for":       GroupLoop,
	"while":     GroupLoop,
	"do":        GroupLoop,
	"function":  GroupDeclaration,
	"class":     GroupDeclaration,
	"interface": GroupDeclaration,
	"return":    GroupFlow,
	"break":     GroupFlow,
	"continue":  GroupFlow,
}

var keywords = func() map[string]KeywordGroup {
	m := make(map[string]KeywordGroup, len(reservedWords))
	for _, w := range reservedWords {
		g, ok := keywordGroups[w]
		if !ok {
			g = GroupReserved
		}
		m[w] = g
	}
	return m
}()

var keywordList = func() []string {
	out := append([]string(nil), reservedWords...)
	sort.Strings(out)
	return out
}()

// LookupKeyword returns the group of a reserved word. Matching is case-sensitive.
func LookupKeyword(ident string) (KeywordGroup, bool) {
	g, ok := keywords[ident]
	return g, ok
}

// IsKeyword reports whether ident is a reserved word.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// Keywords returns the reserved words in lexical order. The slice is a copy.
func Keywords() []string {
	return append([]string(nil), keywordList...)
}
