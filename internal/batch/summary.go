package batch

import "lexiscope/internal/diag"

// Summary aggregates a batch run.
type Summary struct {
	Files       int
	Cached      int
	LoadFailed  int
	BySeverity  map[diag.Severity]int
	Diagnostics int
}

// Summarize counts files and diagnostics across results.
func Summarize(results []FileResult) Summary {
	s := Summary{Files: len(results), BySeverity: make(map[diag.Severity]int)}
	for i := range results {
		r := &results[i]
		if r.Cached {
			s.Cached++
		}
		if r.LoadErr != nil {
			s.LoadFailed++
		}
		for _, d := range r.Diagnostics() {
			s.BySeverity[d.Severity]++
			s.Diagnostics++
		}
	}
	return s
}

// Worst returns the highest severity over all files.
func (s Summary) Worst() (diag.Severity, bool) {
	for sev := diag.SevFatal; ; sev-- {
		if s.BySeverity[sev] > 0 {
			return sev, true
		}
		if sev == diag.SevSuggestion {
			return 0, false
		}
	}
}
