// Package phase runs the three validation passes over an analysed text.
//
// Lexical looks at characters, Syntactic and Semantic look at tokens. The
// passes are independent: each one always runs over the full sequences and
// none of them reads another pass's diagnostics. Diagnostics are collected
// per pass in a diag.Bag and returned in a Result together with the pass
// status, its duration and a one-line summary.
package phase
