package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"lexiscope/internal/charclass"
)

// FormatCharactersPretty prints one classified unit per line.
func FormatCharactersPretty(w io.Writer, chars []charclass.Character) error {
	var b strings.Builder
	for i := range chars {
		c := &chars[i]
		mark := ""
		if !c.Valid {
			mark = " (invalid)"
		}
		fmt.Fprintf(&b, "%5d %4d:%-3d %s %-8s %-12s %-11s %-12s %s%s\n",
			c.Position, c.Line, c.Column,
			runewidth.FillRight(c.Display, 3),
			c.Unicode, c.Type, c.Category, c.Role, c.Description, mark)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatCharactersJSON выводит символы в JSON.
func FormatCharactersJSON(w io.Writer, chars []charclass.Character) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(CharactersJSON(chars)); err != nil {
		return fmt.Errorf("encode characters: %w", err)
	}
	return nil
}
