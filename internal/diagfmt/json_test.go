package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lexiscope/internal/analysis"
	"lexiscope/internal/diag"
	"lexiscope/internal/source"
)

// sampleEntries: LEX001 1:3, SIN002 1:5, SEM001 1:7
func sampleEntries(t *testing.T) []Entry {
	t.Helper()
	fs := source.NewFileSet()
	text := "x \xff } x"
	id := fs.AddVirtual("dir/sample.txt", []byte(text))
	res := analysis.Analyze(text)
	if len(res.Diagnostics) != 3 {
		t.Fatalf("sample produced %d diagnostics", len(res.Diagnostics))
	}
	return []Entry{{Path: "dir/sample.txt", File: fs.Get(id), Result: res}}
}

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	var buf bytes.Buffer
	opts := JSONOpts{PathMode: PathModeBasename}
	if err := JSON(&buf, sampleEntries(t), opts, "lexiscope", "test"); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if len(doc.Files) != 1 {
		t.Fatalf("Expected 1 file, got %d", len(doc.Files))
	}
	f := doc.Files[0]
	if f.Path != "sample.txt" {
		t.Errorf("path = %q", f.Path)
	}
	if f.Status != FileStatusError {
		t.Errorf("status = %q", f.Status)
	}
	var codes []string
	for _, d := range f.Diagnostics {
		codes = append(codes, d.Code)
	}
	if diff := cmp.Diff([]string{"LEX001", "SIN002", "SEM001"}, codes); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}
	first := f.Diagnostics[0]
	if first.ID != "lexical-1" || first.Severity != "error" || first.Location.Column != 3 {
		t.Errorf("first diagnostic = %+v", first)
	}
	if first.Suggestion == "" {
		t.Errorf("LEX001 must carry a suggestion")
	}
	if doc.Summary.Diagnostics != 3 || doc.Summary.Worst != "error" {
		t.Errorf("summary = %+v", doc.Summary)
	}
	if doc.Summary.BySeverity["warning"] != 1 {
		t.Errorf("by severity = %v", doc.Summary.BySeverity)
	}
}

// без --timings вывод воспроизводим байт в байт
func TestJSONReproducible(t *testing.T) {
	var a, b bytes.Buffer
	opts := JSONOpts{IncludeCharacters: true, IncludeTokens: true}
	if err := JSON(&a, sampleEntries(t), opts, "lexiscope", "test"); err != nil {
		t.Fatal(err)
	}
	if err := JSON(&b, sampleEntries(t), opts, "lexiscope", "test"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("outputs differ")
	}
	if bytes.Contains(a.Bytes(), []byte("duration_ms")) {
		t.Fatalf("durations leaked without timings")
	}
}

func TestJSONOptionalSections(t *testing.T) {
	doc := BuildDocument(sampleEntries(t), JSONOpts{}, "lexiscope", "test")
	f := doc.Files[0]
	if f.Characters != nil || f.Tokens != nil || f.Timings != nil {
		t.Fatalf("optional sections must be omitted by default")
	}
	if f.Statistics == nil || f.Statistics.Characters.Invalid != 1 {
		t.Fatalf("statistics = %+v", f.Statistics)
	}

	doc = BuildDocument(sampleEntries(t), JSONOpts{IncludeCharacters: true, IncludeTokens: true, IncludeTimings: true}, "lexiscope", "test")
	f = doc.Files[0]
	if len(f.Characters) != 7 {
		t.Fatalf("characters = %d", len(f.Characters))
	}
	if f.Characters[2].CodePoint != -1 || f.Characters[2].Valid {
		t.Fatalf("invalid byte = %+v", f.Characters[2])
	}
	if len(f.Tokens) == 0 || f.Timings == nil || f.Phases[0].DurationMS == nil {
		t.Fatalf("missing sections: %+v", f)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	doc := BuildDocument(sampleEntries(t), JSONOpts{Max: 1}, "lexiscope", "test")
	f := doc.Files[0]
	if len(f.Diagnostics) != 1 || f.Truncated != 2 {
		t.Fatalf("got %d diagnostics, truncated %d", len(f.Diagnostics), f.Truncated)
	}
	// сводка считает всё
	if doc.Summary.Diagnostics != 3 {
		t.Fatalf("summary = %d", doc.Summary.Diagnostics)
	}
}

func TestJSONLoadFailure(t *testing.T) {
	entries := []Entry{{
		Path: "missing.txt",
		Diagnostics: []diag.Diagnostic{{
			ID: "load-1", Message: "failed to load file", Line: 1, Column: 1,
			Severity: diag.SevError, Phase: diag.PhaseLoad, Code: diag.IOLoadFileError,
		}},
	}}
	doc := BuildDocument(entries, JSONOpts{}, "lexiscope", "test")
	f := doc.Files[0]
	if f.Status != FileStatusFailed || f.Diagnostics[0].Code != "IO001" || f.Phases != nil {
		t.Fatalf("got %+v", f)
	}
}

func TestCBORRoundTrip(t *testing.T) {
	want := BuildDocument(sampleEntries(t), JSONOpts{IncludeCharacters: true, IncludeTokens: true}, "lexiscope", "test")
	var buf bytes.Buffer
	if err := WriteCBOR(&buf, want); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeCBOR(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}

	// канонический режим: одинаковый вход даёт одинаковые байты
	var again bytes.Buffer
	if err := WriteCBOR(&again, want); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), again.Bytes()) {
		t.Fatalf("cbor output not stable")
	}
}

func TestSarif(t *testing.T) {
	var buf bytes.Buffer
	meta := SarifRunMeta{ToolName: "lexiscope", ToolVersion: "test", InvocationArgs: []string{"analyze"}}
	if err := Sarif(&buf, sampleEntries(t), JSONOpts{}, meta); err != nil {
		t.Fatal(err)
	}
	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("invalid sarif: %v", err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("log = %+v", log)
	}
	run := log.Runs[0]
	var rules []string
	for _, r := range run.Tool.Driver.Rules {
		rules = append(rules, r.ID)
	}
	if diff := cmp.Diff([]string{"LEX001", "SIN002", "SEM001"}, rules); diff != "" {
		t.Fatalf("rules (-want +got):\n%s", diff)
	}
	if len(run.Results) != 3 {
		t.Fatalf("results = %d", len(run.Results))
	}
	sem := run.Results[2]
	if sem.Level != "warning" || sem.RuleIndex != 2 || sem.Locations[0].PhysicalLocation.Region.StartColumn != 7 {
		t.Fatalf("semantic result = %+v", sem)
	}
	if run.Invocations[0].ExecutionSuccessful {
		t.Fatalf("errors present, run must not be successful")
	}
}
