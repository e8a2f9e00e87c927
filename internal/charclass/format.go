package charclass

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// display returns a visible stand-in for units that would otherwise render as nothing.
func display(r rune, raw string) string {
	switch {
	case r < 0:
		return "�"
	case r == ' ':
		return "␣"
	case r == '\t':
		return "⇥"
	case r == '\n':
		return "↵"
	case r == '\r':
		return "␍"
	case r < 0x20:
		return string(rune(0x2400 + r)) // control pictures
	case r == 0x7F:
		return "␡"
	case IsControl(r):
		return fmt.Sprintf("\\u%04X", r)
	case IsWhitespace(r):
		return "·"
	}
	return raw
}

// escape renders a unit for the context window; control units become escapes.
func escape(r rune, raw string) string {
	switch {
	case r < 0:
		return fmt.Sprintf("\\x%02X", raw[0])
	case r == '\n':
		return `\n`
	case r == '\t':
		return `\t`
	case r == '\r':
		return `\r`
	case r < 0x100 && IsControl(r):
		return fmt.Sprintf("\\x%02X", r)
	case IsControl(r):
		return fmt.Sprintf("\\u%04X", r)
	}
	return raw
}

func unicodeString(r rune) string {
	if r < 0 {
		return "U+????"
	}
	return fmt.Sprintf("U+%04X", r)
}

// hexString is unpadded: a tab is 0x9, not 0x09.
func hexString(r rune, raw string) string {
	if r < 0 {
		return fmt.Sprintf("0x%X", raw[0])
	}
	return fmt.Sprintf("0x%X", r)
}

func binaryString(r rune, raw string) string {
	if r < 0 {
		return fmt.Sprintf("%08b", raw[0])
	}
	return fmt.Sprintf("%08b", r)
}

var typePhrases = map[Type]string{
	Letter:      "letter",
	Digit:       "digit",
	Operator:    "operator character",
	Punctuation: "punctuation mark",
	Whitespace:  "whitespace",
	Symbol:      "symbol",
	Accented:    "accented letter",
	Control:     "control character",
	Other:       "character",
}

func describe(r rune, raw string, typ Type, subtype string) string {
	if r < 0 {
		return fmt.Sprintf("invalid UTF-8 byte 0x%02X", raw[0])
	}
	phrase := typePhrases[typ]
	if subtype != "" && typ != Other {
		phrase = subtype + " " + phrase
	}
	name := runenames.Name(r)
	if name == "" || strings.HasPrefix(name, "<") {
		return fmt.Sprintf("%s %s", phrase, unicodeString(r))
	}
	return fmt.Sprintf("%s %s (%s)", phrase, unicodeString(r), name)
}
