package phase

import (
	"context"
	"fmt"
	"strconv"

	"lexiscope/internal/diag"
	"lexiscope/internal/observ"
	"lexiscope/internal/trace"
)

// Pass is one validation pass.
type Pass struct {
	Phase diag.Phase
	// check reports into r and returns the summary line.
	check func(in *Input, opts Options, r diag.Reporter) string
	// status derives the pass status from what was reported.
	status func(b *diag.Bag) Status
}

// Passes lists the passes in execution order.
var Passes = []Pass{
	{Phase: diag.PhaseLexical, check: checkLexical, status: errorIfAny},
	{Phase: diag.PhaseSyntactic, check: checkSyntactic, status: errorIfAny},
	{Phase: diag.PhaseSemantic, check: checkSemantic, status: warningIfAny},
}

func errorIfAny(b *diag.Bag) Status {
	if b.Len() > 0 || b.Dropped() > 0 {
		return StatusError
	}
	return StatusCompleted
}

// Suggestions never change the semantic status.
func warningIfAny(b *diag.Bag) Status {
	if b.HasWarnings() {
		return StatusWarning
	}
	return StatusCompleted
}

// Run executes the pass. timer may be nil.
func (p Pass) Run(ctx context.Context, in *Input, opts Options, timer *observ.Timer) Result {
	name := string(p.Phase)
	if err := ctx.Err(); err != nil {
		return Result{Phase: p.Phase, Status: StatusSkipped, Summary: "skipped: " + err.Error()}
	}
	if timer == nil {
		timer = observ.NewTimer()
	}

	ctx, span := trace.Start(ctx, trace.ScopePass, name)
	idx := timer.Begin(name)

	bag := diag.NewBag(p.Phase, opts.MaxDiagnostics)
	summary := p.check(in, opts, bag)
	status := p.status(bag)

	dur := timer.End(idx, summary)

	if trace.Enabled(ctx, trace.ScopeUnit) {
		for _, d := range bag.Items() {
			trace.Point(ctx, trace.ScopeUnit, d.Code.ID(), d.Message,
				trace.Attr{Key: "at", Value: fmt.Sprintf("%d:%d", d.Line, d.Column)})
		}
	}
	span.Set("diagnostics", strconv.Itoa(bag.Len())).End(string(status))

	return Result{
		Phase:       p.Phase,
		Status:      status,
		Diagnostics: bag.Items(),
		Duration:    dur,
		Summary:     summary,
	}
}

// RunAll executes every pass in order. A pass never sees another pass's
// diagnostics, so an error in one does not change the next.
func RunAll(ctx context.Context, in *Input, opts Options, timer *observ.Timer) []Result {
	results := make([]Result, 0, len(Passes))
	for _, p := range Passes {
		results = append(results, p.Run(ctx, in, opts, timer))
	}
	return results
}

// Lexical runs the lexical pass alone.
func Lexical(ctx context.Context, in *Input, opts Options) Result {
	return Passes[0].Run(ctx, in, opts, nil)
}

// Syntactic runs the syntactic pass alone.
func Syntactic(ctx context.Context, in *Input, opts Options) Result {
	return Passes[1].Run(ctx, in, opts, nil)
}

// Semantic runs the semantic pass alone.
func Semantic(ctx context.Context, in *Input, opts Options) Result {
	return Passes[2].Run(ctx, in, opts, nil)
}
