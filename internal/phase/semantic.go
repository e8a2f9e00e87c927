package phase

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"lexiscope/internal/diag"
	"lexiscope/internal/token"
)

type declSite struct {
	line, col int
}

// checkSemantic flags repeated identifiers. Scope is flat: the first
// occurrence anywhere in the text counts as the declaration.
func checkSemantic(in *Input, opts Options, r diag.Reporter) string {
	seen := make(map[string]declSite)
	total := 0

	for i := range in.Tokens {
		tok := &in.Tokens[i]
		if tok.Type != token.Identifier {
			continue
		}
		total++
		if first, ok := seen[tok.Value]; ok {
			diag.Warning(r, diag.SemaRedeclaration, tok.Line, tok.Column,
				fmt.Sprintf("possible redeclaration of %q (first seen at %d:%d)", tok.Value, first.line, first.col)).
				Hint(fmt.Sprintf("rename %q if this is a new variable", tok.Value)).
				Send()
			continue
		}
		seen[tok.Value] = declSite{line: tok.Line, col: tok.Column}

		if !opts.KeywordHints {
			continue
		}
		if kw, ok := nearKeyword(tok.Value); ok {
			diag.Suggest(r, diag.SemaKeywordTypo, tok.Line, tok.Column,
				fmt.Sprintf("identifier %q looks like the reserved word %q", tok.Value, kw)).
				Hint(fmt.Sprintf("did you mean %q?", kw)).
				Send()
		}
	}

	return fmt.Sprintf("%d identifiers, %d distinct", total, len(seen))
}

// nearKeyword returns the closest reserved word within the edit budget.
// Short names get a budget of 1 so "if"-sized words do not match everything.
func nearKeyword(ident string) (string, bool) {
	if len(ident) < 3 {
		return "", false
	}
	budget := 2
	if len(ident) <= 4 {
		budget = 1
	}
	best, bestDist := "", budget+1
	for _, kw := range token.Keywords() {
		if absDiff(len(kw), len(ident)) > budget {
			continue
		}
		d := fuzzy.LevenshteinDistance(ident, kw)
		if d > 0 && d < bestDist {
			best, bestDist = kw, d
		}
	}
	return best, best != ""
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
