package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"lexiscope/internal/token"
)

// FormatTokensPretty выводит токены в человекочитаемом формате.
// Пробельные токены пропускаются, если withSpace == false.
func FormatTokensPretty(w io.Writer, tokens []token.Token, withSpace bool) error {
	var b strings.Builder
	n := 0
	for i := range tokens {
		tok := &tokens[i]
		if tok.Type == token.Whitespace && !withSpace {
			continue
		}
		n++
		mark := ""
		if !tok.Valid {
			mark = " (invalid)"
		}
		fmt.Fprintf(&b, "%4d: %-12s %s at %d:%d len %d%s",
			n, tok.Type, runewidth.FillRight(quoteValue(tok.Value), 16), tok.Line, tok.Column, tok.Length, mark)
		if tok.Subtype != "" {
			fmt.Fprintf(&b, " [%s]", tok.Subtype)
		}
		if tok.Meaning != "" {
			b.WriteString(" - " + tok.Meaning)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(TokensJSON(tokens)); err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	return nil
}

// quoteValue keeps printable text as is and escapes the rest, so that
// wide characters stay measurable by runewidth.
func quoteValue(s string) string {
	q := fmt.Sprintf("%+q", s)
	if strings.ContainsRune(s, '\\') || strings.ContainsRune(s, '"') {
		return q
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7F || r == 0xFFFD {
			return q
		}
	}
	return `"` + s + `"`
}
