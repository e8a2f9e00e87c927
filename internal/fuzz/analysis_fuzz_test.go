package fuzztests

import (
	"context"
	"testing"

	"lexiscope/internal/analysis"
	"lexiscope/internal/phase"
	"lexiscope/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzAnalyze(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		text := string(clampSeed(input[:min(len(input), maxFuzzInput)]))
		res := analysis.Analyze(text)
		if err := testkit.CheckInvariants(text, res); err != nil {
			t.Fatalf("%q: %v", text, err)
		}
	})
}

func FuzzAnalyzeOptions(f *testing.F) {
	for _, s := range seeds {
		f.Add([]byte(s), true, true, 3)
	}
	f.Fuzz(func(t *testing.T, input []byte, symmetric, hints bool, max int) {
		text := string(clampSeed(input[:min(len(input), maxFuzzInput)]))
		opts := analysis.Options{Phase: phase.Options{
			SymmetricDelimiters: symmetric,
			KeywordHints:        hints,
			MaxDiagnostics:      max,
		}}
		res := analysis.AnalyzeWithOptions(context.Background(), text, opts)
		if err := testkit.CheckInvariants(text, res); err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		if max > 0 {
			for _, p := range res.Phases {
				if len(p.Diagnostics) > max {
					t.Fatalf("%s: %d diagnostics over cap %d", p.Phase, len(p.Diagnostics), max)
				}
			}
		}
	})
}
