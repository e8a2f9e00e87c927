package charclass

import (
	"strings"

	"lexiscope/internal/source"
)

// Classify returns the Character for the unit at index in text.
// An index outside the text yields an invalid Other character at that position.
func Classify(text string, index int) Character {
	units := source.Units(text)
	if index < 0 || index >= len(units) {
		return Character{Position: index, Type: Other, Category: CatSymbol, CodePoint: source.InvalidRune, Role: RoleStructural}
	}
	line, col := 1, 1
	for _, u := range units[:index] {
		if u.Rune == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return classifyUnit(text, units, index, line, col)
}

// ClassifyAll returns one Character per code unit of text, in source order.
func ClassifyAll(text string) []Character {
	return ClassifyUnits(text, source.Units(text))
}

// ClassifyUnits classifies units that were already decoded from text.
func ClassifyUnits(text string, units []source.Unit) []Character {
	out := make([]Character, len(units))
	line, col := 1, 1
	for i := range units {
		out[i] = classifyUnit(text, units, i, line, col)
		if units[i].Rune == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return out
}

func classifyUnit(text string, units []source.Unit, i, line, col int) Character {
	u := units[i]
	r := u.Rune
	raw := text[u.Offset:u.End()]
	typ := typeOf(r)
	cat := categoryOf(r)
	sub := subtypeOf(r, typ)

	var prev rune
	if i > 0 {
		prev = units[i-1].Rune
	}

	return Character{
		Value:       raw,
		Display:     display(r, raw),
		Type:        typ,
		Subtype:     sub,
		Category:    cat,
		Position:    i,
		Offset:      u.Offset,
		Line:        line,
		Column:      col,
		CodePoint:   r,
		Unicode:     unicodeString(r),
		Hex:         hexString(r, raw),
		Binary:      binaryString(r, raw),
		Description: describe(r, raw, typ, sub),
		Valid:       r >= 0 && r <= MaxCodePoint,
		Context:     contextWindow(text, units, i),
		Role:        roleOf(r, cat, i == 0, prev),
	}
}

func contextWindow(text string, units []source.Unit, i int) string {
	lo := max(i-ContextRadius, 0)
	hi := min(i+ContextRadius+1, len(units))
	var sb strings.Builder
	for _, u := range units[lo:hi] {
		sb.WriteString(escape(u.Rune, text[u.Offset:u.End()]))
	}
	return sb.String()
}
