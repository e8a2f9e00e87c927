package diag

import "strconv"

// Bag collects one phase's diagnostics in emission order, numbering them
// <phase>-<n>. A positive limit caps how many are kept.
type Bag struct {
	phase   Phase
	limit   int
	items   []Diagnostic
	dropped int
}

func NewBag(phase Phase, limit int) *Bag {
	b := &Bag{phase: phase, limit: limit}
	if limit > 0 {
		b.items = make([]Diagnostic, 0, limit)
	}
	return b
}

// Add stamps Phase and ID on d and stores it. It reports false when the
// bag is full; the diagnostic is then only counted in Dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.full() {
		b.dropped++
		return false
	}
	d.Phase = b.phase
	d.ID = string(b.phase) + "-" + strconv.Itoa(len(b.items)+1)
	b.items = append(b.items, d)
	return true
}

func (b *Bag) full() bool { return b.limit > 0 && len(b.items) >= b.limit }

func (b *Bag) Phase() Phase { return b.phase }

func (b *Bag) Len() int { return len(b.items) }

// Dropped counts diagnostics refused because of the limit.
func (b *Bag) Dropped() int { return b.dropped }

// HasErrors: есть ли хоть одна ошибка (или хуже).
func (b *Bag) HasErrors() bool { return b.Worst() >= SevError && b.Len() > 0 }

// HasWarnings also holds when the bag has errors.
func (b *Bag) HasWarnings() bool { return b.Worst() >= SevWarning && b.Len() > 0 }

// Worst is the highest severity stored, or SevSuggestion for an empty bag.
func (b *Bag) Worst() Severity {
	worst := SevSuggestion
	for i := range b.items {
		worst = max(worst, b.items[i].Severity)
	}
	return worst
}

// Items returns a copy the caller may keep.
func (b *Bag) Items() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}
