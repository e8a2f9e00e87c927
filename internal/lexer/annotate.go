package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"lexiscope/internal/token"
)

// annotate fills Subtype, Valid, Meaning and Scope from the token's type and value.
func annotate(tok *token.Token) {
	tok.Scope = token.ScopeOf(tok.Type, tok.Value)
	tok.Subtype = subtypeOf(tok)
	tok.Valid = validOf(tok)
	tok.Meaning = meaningOf(tok)
}

func subtypeOf(tok *token.Token) string {
	switch tok.Type {
	case token.Keyword:
		group, _ := token.LookupKeyword(tok.Value)
		return string(group)
	case token.Identifier:
		return identSubtype(tok.Value)
	case token.Number:
		return numberSubtype(tok.Value)
	case token.String:
		return stringSubtype(tok.Value)
	case token.Operator:
		group, _ := token.LookupOperator(tok.Value)
		return string(group)
	case token.Punctuation:
		return punctSubtype(tok.Value)
	case token.Whitespace:
		return spaceSubtype(tok.Value)
	default:
		if len(tok.Characters) > 0 {
			return string(tok.Characters[0].Type)
		}
		return "unknown"
	}
}

// identSubtype looks at the first ASCII letter only; an underscore decides
// just for names that start with something else.
func identSubtype(v string) string {
	switch first := v[0]; {
	case first >= 'A' && first <= 'Z':
		return "capitalized"
	case first >= 'a' && first <= 'z':
		return "lower-camel"
	case strings.Contains(v, "_"):
		return "snake_case"
	default:
		return "standard"
	}
}

func numberSubtype(v string) string {
	lower := strings.ToLower(v)
	switch {
	case strings.HasPrefix(lower, "0x"):
		return "hex"
	case strings.HasPrefix(lower, "0b"):
		return "binary"
	case strings.HasPrefix(lower, "0o"):
		return "octal"
	case strings.Contains(v, "."):
		return "float"
	default:
		return "integer"
	}
}

func stringSubtype(v string) string {
	switch v[0] {
	case '"':
		return "double-quoted"
	case '\'':
		return "single-quoted"
	default:
		return "template"
	}
}

func punctSubtype(v string) string {
	switch v {
	case "{":
		return "brace-open"
	case "}":
		return "brace-close"
	case "(":
		return "paren-open"
	case ")":
		return "paren-close"
	case "[":
		return "bracket-open"
	case "]":
		return "bracket-close"
	case ";":
		return "terminator"
	case ",":
		return "separator"
	case ".":
		return "accessor"
	case "@":
		return "decorator"
	case "#":
		return "hash"
	}
	return "punctuation"
}

func spaceSubtype(v string) string {
	switch {
	case strings.Contains(v, "\n"):
		return "newline"
	case strings.Trim(v, " ") == "":
		return "space"
	case strings.Trim(v, "\t") == "":
		return "tab"
	default:
		return "mixed"
	}
}

func validOf(tok *token.Token) bool {
	switch tok.Type {
	case token.Keyword:
		return token.IsKeyword(tok.Value)
	case token.Identifier:
		return isIdentifier(tok.Value)
	case token.Number:
		return parsesAsNumber(tok.Value)
	case token.String:
		return isClosedString(tok)
	default:
		return true
	}
}

func isIdentifier(v string) bool {
	if v == "" {
		return false
	}
	for i, r := range v {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if !isIdentContinue(r) {
			return false
		}
	}
	return true
}

// parsesAsNumber accepts a value whose leading decimal prefix is a real
// number, so "3.14.15" is valid (it reads as 3.14) while "." is not.
func parsesAsNumber(v string) bool {
	i := 0
	for i < len(v) && v[i] >= '0' && v[i] <= '9' {
		i++
	}
	if i < len(v) && v[i] == '.' {
		i++
		for i < len(v) && v[i] >= '0' && v[i] <= '9' {
			i++
		}
	}
	prefix := strings.TrimSuffix(v[:i], ".")
	if prefix == "" {
		return false
	}
	_, err := strconv.ParseFloat(prefix, 64)
	return err == nil
}

// isClosedString compares the first and last characters, which for a lone
// quote are the same one.
func isClosedString(tok *token.Token) bool {
	n := len(tok.Characters)
	first, last := tok.Characters[0], tok.Characters[n-1]
	return isQuote(first.CodePoint) && first.CodePoint == last.CodePoint
}

func meaningOf(tok *token.Token) string {
	switch tok.Type {
	case token.Keyword:
		return fmt.Sprintf("reserved word (%s)", tok.Subtype)
	case token.Identifier:
		return fmt.Sprintf("user-defined name (%s)", tok.Subtype)
	case token.Number:
		return fmt.Sprintf("numeric literal (%s)", tok.Subtype)
	case token.String:
		if !tok.Valid {
			return "unterminated string literal"
		}
		return fmt.Sprintf("string literal (%s)", tok.Subtype)
	case token.Operator:
		return fmt.Sprintf("%s operator", tok.Subtype)
	case token.Punctuation:
		return fmt.Sprintf("structural punctuation (%s)", tok.Subtype)
	case token.Whitespace:
		return fmt.Sprintf("whitespace (%s)", tok.Subtype)
	default:
		return fmt.Sprintf("unrecognised symbol (%s)", tok.Subtype)
	}
}
