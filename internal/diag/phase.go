package diag

// Phase names the pass that produced a diagnostic.
type Phase string

const (
	PhaseLexical   Phase = "lexical"
	PhaseSyntactic Phase = "syntactic"
	PhaseSemantic  Phase = "semantic"
	// PhaseOptimization is reserved; nothing runs it.
	PhaseOptimization Phase = "optimization"
	// PhaseLoad tags I/O diagnostics for files that could not be read.
	PhaseLoad Phase = "load"
)
