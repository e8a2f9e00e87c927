// Package diag defines the diagnostic model shared by the analysis phases.
//
// A Diagnostic records what a phase found: a stable Code (LEX001, SIN002,
// SEM001, ...), a Severity, the originating Phase, a 1-based line/column, a
// message and an optional remediation suggestion. Diagnostics are data, not
// failures; no phase stops because it reported something.
//
// # Emitting diagnostics
//
// Phases write through a Reporter. The usual chain is
//
//	diag.Error(r, diag.SynUnmatchedBrace, line, col, msg).
//		Hint("insert a matching '{'").
//		Send()
//
// A Bag is itself a Reporter and belongs to one phase: it
// stamps the phase on every entry and numbers them <phase>-<n> in emission
// order, so identifiers are deterministic for a given input.
//
// # Collecting
//
// Collect concatenates per-phase lists in phase order without re-sorting.
// Rendering lives in internal/diagfmt.
package diag
