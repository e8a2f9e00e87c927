package diag

// Diagnostic is one finding of a phase. Line and Column are 1-based.
type Diagnostic struct {
	ID         string   `json:"id" msgpack:"id" cbor:"id"`
	Message    string   `json:"message" msgpack:"message" cbor:"message"`
	Line       int      `json:"line" msgpack:"line" cbor:"line"`
	Column     int      `json:"column" msgpack:"column" cbor:"column"`
	Severity   Severity `json:"severity" msgpack:"severity" cbor:"severity"`
	Phase      Phase    `json:"phase" msgpack:"phase" cbor:"phase"`
	Code       Code     `json:"code" msgpack:"code" cbor:"code"`
	Suggestion string   `json:"suggestion,omitempty" msgpack:"suggestion,omitempty" cbor:"suggestion,omitempty"`
}

// HasSuggestion reports whether a remediation hint is attached.
func (d *Diagnostic) HasSuggestion() bool {
	return d.Suggestion != ""
}

// Worst returns the highest severity in diags; ok is false for an empty list.
func Worst(diags []Diagnostic) (sev Severity, ok bool) {
	for i := range diags {
		if !ok || diags[i].Severity > sev {
			sev = diags[i].Severity
			ok = true
		}
	}
	return sev, ok
}

// Collect concatenates per-phase lists in the order given, keeping the
// emission order inside each list. Nothing is re-sorted.
func Collect(lists ...[]Diagnostic) []Diagnostic {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]Diagnostic, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
