package phase

import (
	"time"

	"lexiscope/internal/charclass"
	"lexiscope/internal/diag"
	"lexiscope/internal/token"
)

// Status is the outcome of one pass.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
	StatusWarning   Status = "warning"
	// StatusSkipped is set only when the caller's context is done before the
	// pass starts.
	StatusSkipped Status = "skipped"
)

// Result is what a pass produced.
type Result struct {
	Phase       diag.Phase        `json:"phase" msgpack:"phase"`
	Status      Status            `json:"status" msgpack:"status"`
	Diagnostics []diag.Diagnostic `json:"diagnostics" msgpack:"diagnostics"`
	Duration    time.Duration     `json:"duration" msgpack:"duration"`
	Summary     string            `json:"summary" msgpack:"summary"`
}

// Input holds the fully materialised sequences every pass reads.
type Input struct {
	Text       string
	Characters []charclass.Character
	Tokens     []token.Token
}

// Options tune the passes. The zero value reproduces the reference
// behaviour exactly.
type Options struct {
	// SymmetricDelimiters also reports unclosed parentheses (SIN006) and
	// brackets (SIN007) at the end of the syntactic scan. Without it only
	// braces are checked (SIN005).
	SymmetricDelimiters bool
	// KeywordHints makes the semantic pass suggest a reserved word for
	// identifiers that are one or two edits away from it (SEM002).
	KeywordHints bool
	// MaxDiagnostics caps each pass's bag; <= 0 means unlimited.
	MaxDiagnostics int
}
