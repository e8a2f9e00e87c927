package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"lexiscope/internal/charclass"
	"lexiscope/internal/diag"
	"lexiscope/internal/observ"
	"lexiscope/internal/stats"
	"lexiscope/internal/token"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// DiagnosticJSON представляет диагностику для JSON
type DiagnosticJSON struct {
	ID         string       `json:"id"`
	Code       string       `json:"code"`
	Title      string       `json:"title,omitempty"`
	Severity   string       `json:"severity"`
	Phase      string       `json:"phase"`
	Message    string       `json:"message"`
	Suggestion string       `json:"suggestion,omitempty"`
	Location   LocationJSON `json:"location"`
}

// PhaseJSON is one pass outcome. DurationMS is present only with timings,
// so that the default output is byte-for-byte reproducible.
type PhaseJSON struct {
	Phase       string   `json:"phase"`
	Status      string   `json:"status"`
	Diagnostics int      `json:"diagnostics"`
	Summary     string   `json:"summary,omitempty"`
	DurationMS  *float64 `json:"duration_ms,omitempty"`
}

// CharacterJSON mirrors charclass.Character.
type CharacterJSON struct {
	Value       string `json:"value"`
	Display     string `json:"display"`
	Type        string `json:"type"`
	Subtype     string `json:"subtype"`
	Category    string `json:"category"`
	Role        string `json:"role"`
	Position    int    `json:"position"`
	Offset      int    `json:"offset"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	CodePoint   int32  `json:"code_point"`
	Unicode     string `json:"unicode"`
	Hex         string `json:"hex"`
	Binary      string `json:"binary"`
	Description string `json:"description"`
	Valid       bool   `json:"valid"`
	Context     string `json:"context"`
}

// TokenJSON mirrors token.Token without its characters.
type TokenJSON struct {
	Value   string `json:"value"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
	Start   int    `json:"start"`
	Offset  int    `json:"offset"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Length  int    `json:"length"`
	Valid   bool   `json:"valid"`
	Meaning string `json:"meaning"`
	Scope   string `json:"scope"`
}

// FileOutput is everything reported for one input.
type FileOutput struct {
	Path        string            `json:"path"`
	Cached      bool              `json:"cached,omitempty"`
	Status      string            `json:"status"`
	Diagnostics []DiagnosticJSON  `json:"diagnostics"`
	Truncated   int               `json:"truncated,omitempty"`
	Phases      []PhaseJSON       `json:"phases,omitempty"`
	Statistics  *stats.Statistics `json:"statistics,omitempty"`
	Characters  []CharacterJSON   `json:"characters,omitempty"`
	Tokens      []TokenJSON       `json:"tokens,omitempty"`
	Timings     *observ.Report    `json:"timings,omitempty"`
}

// SummaryJSON aggregates all files of a document.
type SummaryJSON struct {
	Files       int            `json:"files"`
	Diagnostics int            `json:"diagnostics"`
	BySeverity  map[string]int `json:"by_severity"`
	Worst       string         `json:"worst,omitempty"`
}

// Document is the root object of JSON and CBOR output.
type Document struct {
	Tool    string       `json:"tool"`
	Version string       `json:"version"`
	Files   []FileOutput `json:"files"`
	Summary SummaryJSON  `json:"summary"`
}

// Status values of FileOutput.
const (
	FileStatusOK      = "ok"
	FileStatusWarning = "warning"
	FileStatusError   = "error"
	FileStatusFailed  = "load_failed"
)

// BuildDocument converts entries to the serialisable form.
func BuildDocument(entries []Entry, opts JSONOpts, tool, version string) Document {
	doc := Document{
		Tool:    tool,
		Version: version,
		Files:   make([]FileOutput, 0, len(entries)),
		Summary: SummaryJSON{Files: len(entries), BySeverity: make(map[string]int)},
	}
	var worst diag.Severity
	haveWorst := false
	for i := range entries {
		e := &entries[i]
		all := e.Diags()
		for _, d := range all {
			doc.Summary.Diagnostics++
			doc.Summary.BySeverity[d.Severity.String()]++
			if !haveWorst || d.Severity > worst {
				worst, haveWorst = d.Severity, true
			}
		}
		doc.Files = append(doc.Files, buildFileOutput(e, all, opts))
	}
	if haveWorst {
		doc.Summary.Worst = worst.String()
	}
	return doc
}

func buildFileOutput(e *Entry, all []diag.Diagnostic, opts JSONOpts) FileOutput {
	path := formatPath(e.Path, opts.PathMode, opts.BaseDir)
	shown, hidden := limit(all, opts.Max)
	out := FileOutput{
		Path:        path,
		Cached:      e.Cached,
		Status:      fileStatus(e, all),
		Diagnostics: make([]DiagnosticJSON, 0, len(shown)),
		Truncated:   hidden,
	}
	for i := range shown {
		out.Diagnostics = append(out.Diagnostics, diagnosticJSON(path, &shown[i]))
	}
	res := e.Result
	if res == nil {
		return out
	}
	out.Phases = make([]PhaseJSON, 0, len(res.Phases))
	for i := range res.Phases {
		p := &res.Phases[i]
		pj := PhaseJSON{
			Phase:       string(p.Phase),
			Status:      string(p.Status),
			Diagnostics: len(p.Diagnostics),
			Summary:     p.Summary,
		}
		if opts.IncludeTimings {
			ms := observ.DurationToMillis(p.Duration)
			pj.DurationMS = &ms
		}
		out.Phases = append(out.Phases, pj)
	}
	st := res.Statistics
	out.Statistics = &st
	if opts.IncludeCharacters {
		out.Characters = CharactersJSON(res.Characters)
	}
	if opts.IncludeTokens {
		out.Tokens = TokensJSON(res.Tokens)
	}
	if opts.IncludeTimings {
		tm := res.Timings
		out.Timings = &tm
	}
	return out
}

func fileStatus(e *Entry, all []diag.Diagnostic) string {
	if e.Result == nil && len(all) > 0 {
		return FileStatusFailed
	}
	sev, ok := diag.Worst(all)
	switch {
	case !ok || sev < diag.SevWarning:
		return FileStatusOK
	case sev == diag.SevWarning:
		return FileStatusWarning
	default:
		return FileStatusError
	}
}

func diagnosticJSON(path string, d *diag.Diagnostic) DiagnosticJSON {
	return DiagnosticJSON{
		ID:         d.ID,
		Code:       d.Code.ID(),
		Title:      d.Code.Title(),
		Severity:   d.Severity.String(),
		Phase:      string(d.Phase),
		Message:    d.Message,
		Suggestion: d.Suggestion,
		Location:   LocationJSON{File: path, Line: d.Line, Column: d.Column},
	}
}

// CharactersJSON converts classified characters.
func CharactersJSON(chars []charclass.Character) []CharacterJSON {
	out := make([]CharacterJSON, len(chars))
	for i := range chars {
		c := &chars[i]
		out[i] = CharacterJSON{
			Value:       c.Value,
			Display:     c.Display,
			Type:        string(c.Type),
			Subtype:     c.Subtype,
			Category:    string(c.Category),
			Role:        string(c.Role),
			Position:    c.Position,
			Offset:      c.Offset,
			Line:        c.Line,
			Column:      c.Column,
			CodePoint:   c.CodePoint,
			Unicode:     c.Unicode,
			Hex:         c.Hex,
			Binary:      c.Binary,
			Description: c.Description,
			Valid:       c.Valid,
			Context:     c.Context,
		}
	}
	return out
}

// TokensJSON converts tokens.
func TokensJSON(tokens []token.Token) []TokenJSON {
	out := make([]TokenJSON, len(tokens))
	for i := range tokens {
		t := &tokens[i]
		out[i] = TokenJSON{
			Value:   t.Value,
			Type:    string(t.Type),
			Subtype: t.Subtype,
			Start:   t.Start,
			Offset:  t.Offset,
			Line:    t.Line,
			Column:  t.Column,
			Length:  t.Length,
			Valid:   t.Valid,
			Meaning: t.Meaning,
			Scope:   t.Scope,
		}
	}
	return out
}

// WriteJSON пишет документ с отступами.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// JSON строит документ и сразу его пишет.
func JSON(w io.Writer, entries []Entry, opts JSONOpts, tool, version string) error {
	return WriteJSON(w, BuildDocument(entries, opts, tool, version))
}
