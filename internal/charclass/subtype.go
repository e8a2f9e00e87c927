package charclass

import "unicode"

func subtypeOf(r rune, typ Type) string {
	switch typ {
	case Letter, Accented:
		if unicode.IsUpper(r) {
			return "uppercase"
		}
		return "lowercase"
	case Digit:
		return "decimal"
	case Whitespace:
		switch r {
		case ' ':
			return "space"
		case '\t':
			return "tab"
		case '\n':
			return "newline"
		case '\r':
			return "carriage-return"
		}
		return "unicode-space"
	case Control:
		switch {
		case r == 0:
			return "null"
		case r == 0x7F:
			return "delete"
		case r < 0x20:
			return "c0"
		}
		return "c1"
	case Operator:
		switch r {
		case '+', '-', '*', '/', '%':
			return "arithmetic"
		case '=':
			return "assignment"
		case '<', '>':
			return "relational"
		case '!':
			return "logical"
		case '&', '|', '^', '~':
			return "bitwise"
		case '.':
			return "accessor"
		}
		return "conditional"
	case Punctuation:
		switch r {
		case '{', '}':
			return "brace"
		case '(', ')':
			return "parenthesis"
		case '[', ']':
			return "bracket"
		case ';':
			return "terminator"
		case ',':
			return "separator"
		case '.':
			return "accessor"
		case '@':
			return "decorator"
		}
		return "hash"
	case Symbol:
		switch r {
		case '"', '\'', '`':
			return "quote"
		case '\\':
			return "escape"
		case '$', '_':
			return "identifier-symbol"
		}
		return "ascii"
	}
	if r < 0 {
		return "invalid"
	}
	return "unicode"
}
