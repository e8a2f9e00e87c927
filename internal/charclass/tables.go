package charclass

import "unicode"

// Character-level sets. operatorChars holds every character that appears
// in some operator of the tokenizer's table, so '.' (from "..." and "?.")
// is an operator character before it is punctuation.
var (
	operatorChars    = runeSet("+-*/%=<>!&|^~?:.")
	punctuationChars = runeSet("{}()[];,.@#")
	delimiterChars   = runeSet(";,.")
	accentedLetters  = runeSet("áéíóúñüÁÉÍÓÚÑÜ")
)

func runeSet(s string) map[rune]struct{} {
	m := make(map[rune]struct{}, len(s))
	for _, r := range s {
		m[r] = struct{}{}
	}
	return m
}

func in(set map[rune]struct{}, r rune) bool {
	_, ok := set[r]
	return ok
}

// IsASCIILetter reports whether r is in [A-Za-z].
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsDigit reports whether r is a decimal digit 0-9.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsAccentedLetter reports whether r is one of the recognised Latin accented letters.
func IsAccentedLetter(r rune) bool {
	return in(accentedLetters, r)
}

// IsLetter reports whether r is an ASCII or accented letter.
func IsLetter(r rune) bool {
	return IsASCIILetter(r) || IsAccentedLetter(r)
}

// IsWhitespace covers every Unicode space, including tab, CR and LF.
func IsWhitespace(r rune) bool {
	return r >= 0 && unicode.IsSpace(r)
}

// IsControl covers the C0 and C1 ranges plus DEL.
func IsControl(r rune) bool {
	return r >= 0 && unicode.IsControl(r)
}

// IsOperatorChar reports membership in the operator character set.
func IsOperatorChar(r rune) bool {
	return in(operatorChars, r)
}

// IsPunctuation reports membership in the structural punctuation set { } ( ) [ ] ; , . @ #.
func IsPunctuation(r rune) bool {
	return in(punctuationChars, r)
}

// isGenericSymbol matches printable ASCII that is neither alphanumeric nor space.
func isGenericSymbol(r rune) bool {
	return r > ' ' && r < 0x7F && !IsASCIILetter(r) && !IsDigit(r)
}

type typeRule struct {
	match func(rune) bool
	typ   Type
}

// typeRules is evaluated top to bottom; the first match wins.
var typeRules = []typeRule{
	{IsASCIILetter, Letter},
	{IsDigit, Digit},
	{IsAccentedLetter, Accented},
	{IsWhitespace, Whitespace},
	{IsControl, Control},
	{IsOperatorChar, Operator},
	{IsPunctuation, Punctuation},
	{isGenericSymbol, Symbol},
}

type categoryRule struct {
	match func(rune) bool
	cat   Category
}

// categoryRules has its own precedence, independent of typeRules. The
// delimiter rule never fires while ; , . sit in the punctuation set; it is
// kept so the category stays reachable if that set shrinks.
var categoryRules = []categoryRule{
	{IsLetter, CatAlphabetic},
	{IsDigit, CatNumeric},
	{IsOperatorChar, CatOperator},
	{IsPunctuation, CatPunctuation},
	{func(r rune) bool { return in(delimiterChars, r) }, CatDelimiter},
	{IsWhitespace, CatWhitespace},
	{IsControl, CatControl},
	{func(r rune) bool { return r > 127 }, CatUnicode},
}

func typeOf(r rune) Type {
	for _, rule := range typeRules {
		if rule.match(r) {
			return rule.typ
		}
	}
	return Other
}

func categoryOf(r rune) Category {
	for _, rule := range categoryRules {
		if rule.match(r) {
			return rule.cat
		}
	}
	return CatSymbol
}

var fixedRoles = map[rune]Role{
	'{': RoleBlockOpen,
	'}': RoleBlockClose,
	'(': RoleExpressionOpen,
	')': RoleExpressionClose,
	';': RoleStatementTerminator,
	',': RoleSeparator,
	'=': RoleAssignment,
}

// roleOf needs the previous unit to tell word starts from continuations.
// prev is ignored when first is true.
func roleOf(r rune, cat Category, first bool, prev rune) Role {
	if cat == CatAlphabetic {
		if first || IsWhitespace(prev) {
			return RoleWordStart
		}
		return RoleWordContinuation
	}
	if IsDigit(r) {
		return RoleNumericLiteral
	}
	if role, ok := fixedRoles[r]; ok {
		return role
	}
	return RoleStructural
}
