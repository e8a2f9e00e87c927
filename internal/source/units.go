package source

import "unicode/utf8"

// InvalidRune marks a unit decoded from a malformed UTF-8 byte.
// It lies outside [0, 0x10FFFF], so such units are never valid characters.
const InvalidRune rune = -1

// Unit is one code unit of the analysed text: a single decoded rune
// or a single malformed byte.
type Unit struct {
	Offset int // byte offset into the text
	Width  int // bytes occupied by the unit
	Rune   rune
}

// End returns the byte offset just past the unit.
func (u Unit) End() int {
	return u.Offset + u.Width
}

// Units splits text into code units in source order.
// Concatenating text[u.Offset:u.End()] over the result yields text again.
func Units(text string) []Unit {
	out := make([]Unit, 0, utf8.RuneCountInString(text))
	for off := 0; off < len(text); {
		r, sz := utf8.DecodeRuneInString(text[off:])
		if r == utf8.RuneError && sz == 1 {
			r = InvalidRune
		}
		out = append(out, Unit{Offset: off, Width: sz, Rune: r})
		off += sz
	}
	return out
}
