// Package analysis ties the pipeline together:
// text → characters → tokens → phase results → diagnostics + statistics.
package analysis

import (
	"context"
	"fmt"

	"lexiscope/internal/charclass"
	"lexiscope/internal/diag"
	"lexiscope/internal/lexer"
	"lexiscope/internal/observ"
	"lexiscope/internal/phase"
	"lexiscope/internal/stats"
	"lexiscope/internal/token"
	"lexiscope/internal/trace"
)

// Options configure one analysis run. The zero value gives the reference
// behaviour.
type Options struct {
	Phase    phase.Options
	Observer StageObserver
}

// Result is built fresh for every call and never modified afterwards.
type Result struct {
	Characters  []charclass.Character `msgpack:"characters"`
	Tokens      []token.Token         `msgpack:"tokens"`
	Phases      []phase.Result        `msgpack:"phases"`
	Diagnostics []diag.Diagnostic     `msgpack:"diagnostics"`
	Statistics  stats.Statistics      `msgpack:"statistics"`
	Timings     observ.Report         `msgpack:"timings"`
}

// Analyze runs the full pipeline with default options.
func Analyze(text string) *Result {
	return AnalyzeWithOptions(context.Background(), text, Options{})
}

// AnalyzeWithOptions runs the full pipeline. The tracer, if any, is taken
// from ctx. Stages run strictly in order; a canceled ctx marks the phases
// that did not start as skipped but still returns a complete Result.
func AnalyzeWithOptions(ctx context.Context, text string, opts Options) *Result {
	timer := observ.NewTimer()
	notify := func(ev StageEvent) {
		if opts.Observer != nil {
			opts.Observer(ev)
		}
	}
	stage := func(name string, fn func() string) {
		notify(StageEvent{Name: name, Status: StageStart})
		_, span := trace.Start(ctx, trace.ScopePass, name)
		idx := timer.Begin(name)
		note := fn()
		dur := timer.End(idx, note)
		span.End(note)
		notify(StageEvent{Name: name, Status: StageEnd, Elapsed: dur})
	}

	res := &Result{}

	stage("classify", func() string {
		res.Characters = charclass.ClassifyAll(text)
		return fmt.Sprintf("%d characters", len(res.Characters))
	})
	stage("tokenize", func() string {
		res.Tokens = lexer.Tokenize(text, res.Characters)
		return fmt.Sprintf("%d tokens", len(res.Tokens))
	})

	in := &phase.Input{Text: text, Characters: res.Characters, Tokens: res.Tokens}
	res.Phases = make([]phase.Result, 0, len(phase.Passes))
	lists := make([][]diag.Diagnostic, 0, len(phase.Passes))
	for _, p := range phase.Passes {
		notify(StageEvent{Name: string(p.Phase), Status: StageStart})
		pr := p.Run(ctx, in, opts.Phase, timer)
		notify(StageEvent{Name: string(p.Phase), Status: StageEnd, Elapsed: pr.Duration})
		res.Phases = append(res.Phases, pr)
		lists = append(lists, pr.Diagnostics)
	}
	res.Diagnostics = diag.Collect(lists...)

	stage("stats", func() string {
		res.Statistics = stats.Compute(res.Characters, res.Tokens)
		return ""
	})

	res.Timings = timer.Report()
	return res
}

// Phase returns the result of the named phase, or nil.
func (r *Result) Phase(name diag.Phase) *phase.Result {
	for i := range r.Phases {
		if r.Phases[i].Phase == name {
			return &r.Phases[i]
		}
	}
	return nil
}

// Worst returns the highest diagnostic severity; ok is false when there
// are no diagnostics.
func (r *Result) Worst() (diag.Severity, bool) {
	return diag.Worst(r.Diagnostics)
}

// CountBySeverity tallies the diagnostics.
func (r *Result) CountBySeverity() map[diag.Severity]int {
	out := make(map[diag.Severity]int)
	for i := range r.Diagnostics {
		out[r.Diagnostics[i].Severity]++
	}
	return out
}

// Relink points every token's Characters back into r.Characters. Encoders
// skip the per-token copy, so a decoded Result must be relinked before use.
func (r *Result) Relink() {
	n := len(r.Characters)
	for i := range r.Tokens {
		tok := &r.Tokens[i]
		start, end := tok.Start, tok.End()
		if start < 0 || end > n || start > end {
			tok.Characters = nil
			continue
		}
		tok.Characters = r.Characters[start:end:end]
	}
}
