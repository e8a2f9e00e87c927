package diag

import "fmt"

// Severity defines the importance of a diagnostic. Values are ordered, so
// comparisons like sev >= SevWarning work.
type Severity uint8

const (
	// SevSuggestion is an optional hint; it never changes a phase status.
	SevSuggestion Severity = iota
	SevInfo
	SevWarning
	SevError
	// SevFatal is reserved; no phase emits it.
	SevFatal
)

func (s Severity) String() string {
	switch s {
	case SevSuggestion:
		return "suggestion"
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	case SevFatal:
		return "fatal"
	}
	return "unknown"
}

// ParseSeverity is the inverse of String.
func ParseSeverity(s string) (Severity, error) {
	for sev := SevSuggestion; sev <= SevFatal; sev++ {
		if sev.String() == s {
			return sev, nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	v, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
