// Package testkit checks the structural invariants of an analysis result.
// Tests and fuzz harnesses call it on arbitrary input.
package testkit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"lexiscope/internal/analysis"
	"lexiscope/internal/diag"
	"lexiscope/internal/source"
)

var phaseOrder = map[diag.Phase]int{
	diag.PhaseLexical:   0,
	diag.PhaseSyntactic: 1,
	diag.PhaseSemantic:  2,
}

// CheckInvariants runs every check below and returns the first violation:
// 1) one character per code unit, positions 0..n-1, line/col recomputed
// 2) tokens are lossless, contiguous and own a slice of the characters
// 3) diagnostics are grouped by phase in pipeline order, 1-based positions
// 4) statistics totals match the sequences
func CheckInvariants(text string, res *analysis.Result) error {
	if res == nil {
		return fmt.Errorf("nil result")
	}
	if err := CheckCharacters(text, res); err != nil {
		return err
	}
	if err := CheckTokens(text, res); err != nil {
		return err
	}
	if err := CheckDiagnostics(res); err != nil {
		return err
	}
	return CheckStatistics(res)
}

// CheckCharacters checks that positions, offsets and line/column advance one unit at a time.
func CheckCharacters(text string, res *analysis.Result) error {
	units := source.Units(text)
	if len(units) != len(res.Characters) {
		return fmt.Errorf("got %d characters for %d units", len(res.Characters), len(units))
	}
	line, col := 1, 1
	for i := range res.Characters {
		ch := &res.Characters[i]
		if ch.Position != i {
			return fmt.Errorf("character %d has position %d", i, ch.Position)
		}
		if ch.Offset != units[i].Offset {
			return fmt.Errorf("character %d at offset %d, unit at %d", i, ch.Offset, units[i].Offset)
		}
		if ch.Line != line || ch.Column != col {
			return fmt.Errorf("character %d at %d:%d, want %d:%d", i, ch.Line, ch.Column, line, col)
		}
		if ch.CodePoint >= 0 && !ch.Valid {
			return fmt.Errorf("character %d (U+%04X) is in range but invalid", i, ch.CodePoint)
		}
		if ch.CodePoint >= 0 && !utf8.ValidString(ch.Value) {
			return fmt.Errorf("character %d value %q is not a decoded rune", i, ch.Value)
		}
		if ch.IsLineBreak() {
			line, col = line+1, 1
		} else {
			col++
		}
	}
	return nil
}

// CheckTokens checks that tokens tile the characters and rebuild text exactly.
func CheckTokens(text string, res *analysis.Result) error {
	var b strings.Builder
	next := 0
	for i := range res.Tokens {
		tok := &res.Tokens[i]
		if tok.Length <= 0 {
			return fmt.Errorf("token %d is empty", i)
		}
		if tok.Start != next {
			return fmt.Errorf("token %d starts at %d, want %d", i, tok.Start, next)
		}
		if tok.End() > len(res.Characters) {
			return fmt.Errorf("token %d ends past the characters", i)
		}
		if len(tok.Characters) != tok.Length {
			return fmt.Errorf("token %d owns %d characters, length %d", i, len(tok.Characters), tok.Length)
		}
		first := &res.Characters[tok.Start]
		if tok.Characters[0].Position != first.Position {
			return fmt.Errorf("token %d characters do not start at %d", i, tok.Start)
		}
		if tok.Line != first.Line || tok.Column != first.Column || tok.Offset != first.Offset {
			return fmt.Errorf("token %d at %d:%d, first character at %d:%d", i, tok.Line, tok.Column, first.Line, first.Column)
		}
		b.WriteString(tok.Value)
		next = tok.End()
	}
	if next != len(res.Characters) {
		return fmt.Errorf("tokens cover %d of %d characters", next, len(res.Characters))
	}
	if b.String() != text {
		return fmt.Errorf("tokens do not reconstruct the input")
	}
	return nil
}

// CheckDiagnostics checks phase order and 1-based locations.
func CheckDiagnostics(res *analysis.Result) error {
	last := -1
	total := 0
	for i := range res.Phases {
		total += len(res.Phases[i].Diagnostics)
	}
	if total != len(res.Diagnostics) {
		return fmt.Errorf("phases hold %d diagnostics, result %d", total, len(res.Diagnostics))
	}
	for i := range res.Diagnostics {
		d := &res.Diagnostics[i]
		ord, ok := phaseOrder[d.Phase]
		if !ok {
			return fmt.Errorf("diagnostic %s has unexpected phase %q", d.ID, d.Phase)
		}
		if ord < last {
			return fmt.Errorf("diagnostic %s (%s) after a later phase", d.ID, d.Phase)
		}
		last = ord
		if d.Line < 1 || d.Column < 1 {
			return fmt.Errorf("diagnostic %s at %d:%d", d.ID, d.Line, d.Column)
		}
	}
	return nil
}

// CheckStatistics checks that the counts agree with the sequences.
func CheckStatistics(res *analysis.Result) error {
	c := res.Statistics.Characters
	if c.Total != len(res.Characters) || c.Valid+c.Invalid != c.Total {
		return fmt.Errorf("character stats %+v for %d characters", c, len(res.Characters))
	}
	byType := c.Letters + c.Digits + c.Accented + c.Operators + c.Punctuation + c.Symbols + c.Whitespace + c.Control + c.Other
	if byType != c.Total {
		return fmt.Errorf("character types sum to %d, total %d", byType, c.Total)
	}
	t := res.Statistics.Tokens
	if t.Total != len(res.Tokens) || t.Valid+t.Invalid != t.Total {
		return fmt.Errorf("token stats %+v for %d tokens", t, len(res.Tokens))
	}
	if t.Lines < 1 {
		return fmt.Errorf("lines = %d", t.Lines)
	}
	return nil
}
