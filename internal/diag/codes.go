package diag

import (
	"fmt"
	"strconv"
	"strings"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInvalidChar Code = 1001

	// Синтаксические
	SynInvalidToken     Code = 2001
	SynUnmatchedBrace   Code = 2002
	SynUnmatchedParen   Code = 2003
	SynUnmatchedBracket Code = 2004
	SynUnclosedBrace    Code = 2005
	SynUnclosedParen    Code = 2006
	SynUnclosedBracket  Code = 2007

	// Семантические
	SemaRedeclaration Code = 3001
	SemaKeywordTypo   Code = 3002

	// Ввод-вывод (batch, watch)
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:         "Unknown error",
	LexInvalidChar:      "Invalid character",
	SynInvalidToken:     "Malformed token",
	SynUnmatchedBrace:   "Unmatched closing brace",
	SynUnmatchedParen:   "Unmatched closing parenthesis",
	SynUnmatchedBracket: "Unmatched closing bracket",
	SynUnclosedBrace:    "Unclosed brace",
	SynUnclosedParen:    "Unclosed parenthesis",
	SynUnclosedBracket:  "Unclosed bracket",
	SemaRedeclaration:   "Possible redeclaration",
	SemaKeywordTypo:     "Identifier resembles a reserved word",
	IOLoadFileError:     "I/O load file error",
}

var codePrefixes = []struct {
	prefix string
	base   int
}{
	{"LEX", 1000},
	{"SIN", 2000},
	{"SEM", 3000},
	{"IO", 4000},
}

// ID returns the stable textual code, e.g. LEX001 or SIN005.
func (c Code) ID() string {
	ic := int(c)
	for _, p := range codePrefixes {
		if ic > p.base && ic < p.base+1000 {
			return fmt.Sprintf("%s%03d", p.prefix, ic-p.base)
		}
	}
	return "E000"
}

// ParseCode maps a textual ID back to its Code.
func ParseCode(id string) (Code, error) {
	for _, p := range codePrefixes {
		rest, ok := strings.CutPrefix(id, p.prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n <= 0 || n >= 1000 {
			break
		}
		c := Code(p.base + n)
		if _, known := codeDescription[c]; known {
			return c, nil
		}
		break
	}
	if id == "E000" {
		return UnknownCode, nil
	}
	return UnknownCode, fmt.Errorf("unknown diagnostic code %q", id)
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.ID()), nil
}

func (c *Code) UnmarshalText(b []byte) error {
	v, err := ParseCode(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
