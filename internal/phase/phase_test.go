package phase

import (
	"context"
	"strings"
	"testing"

	"lexiscope/internal/charclass"
	"lexiscope/internal/diag"
	"lexiscope/internal/lexer"
	"lexiscope/internal/observ"
	"lexiscope/internal/trace"
)

func input(src string) *Input {
	chars := charclass.ClassifyAll(src)
	return &Input{Text: src, Characters: chars, Tokens: lexer.Tokenize(src, chars)}
}

func codes(r Result) []string {
	out := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		out[i] = d.Code.ID()
	}
	return out
}

func TestBalancedBraces(t *testing.T) {
	res := Syntactic(context.Background(), input("{ }"), Options{})
	if res.Status != StatusCompleted || len(res.Diagnostics) != 0 {
		t.Fatalf("status=%s diags=%v", res.Status, codes(res))
	}
}

func TestUnmatchedClosers(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
	}{
		{"}", diag.SynUnmatchedBrace},
		{")", diag.SynUnmatchedParen},
		{"]", diag.SynUnmatchedBracket},
	}
	for _, c := range cases {
		res := Syntactic(context.Background(), input(c.src), Options{})
		if res.Status != StatusError || len(res.Diagnostics) != 1 {
			t.Fatalf("%q: status=%s diags=%v", c.src, res.Status, codes(res))
		}
		d := res.Diagnostics[0]
		if d.Code != c.code || d.Line != 1 || d.Column != 1 || d.Severity != diag.SevError {
			t.Fatalf("%q: got %+v", c.src, d)
		}
		if !d.HasSuggestion() {
			t.Fatalf("%q: missing suggestion", c.src)
		}
	}
}

func TestCounterRestartsFromZero(t *testing.T) {
	// "}" уводит счётчик в минус, но последующая пара сбалансирована
	res := Syntactic(context.Background(), input("} { }"), Options{})
	got := codes(res)
	if len(got) != 1 || got[0] != "SIN002" {
		t.Fatalf("got %v", got)
	}
}

func TestUnclosedBraceSummary(t *testing.T) {
	res := Syntactic(context.Background(), input("{{\n  x"), Options{})
	if len(res.Diagnostics) != 1 {
		t.Fatalf("got %v", codes(res))
	}
	d := res.Diagnostics[0]
	if d.Code != diag.SynUnclosedBrace || !strings.Contains(d.Message, "2 unclosed") {
		t.Fatalf("got %+v", d)
	}
	// привязка к последнему токену
	if d.Line != 2 || d.Column != 3 {
		t.Fatalf("position %d:%d", d.Line, d.Column)
	}
}

func TestUnclosedOnEmptyTokensDefaultsToOrigin(t *testing.T) {
	in := &Input{}
	res := Syntactic(context.Background(), in, Options{})
	if res.Status != StatusCompleted {
		t.Fatalf("empty input: %s", res.Status)
	}
}

func TestAsymmetricDelimiterCheck(t *testing.T) {
	src := "f(a[1"
	res := Syntactic(context.Background(), input(src), Options{})
	if len(res.Diagnostics) != 0 || res.Status != StatusCompleted {
		t.Fatalf("default mode must ignore open parens/brackets, got %v", codes(res))
	}

	res = Syntactic(context.Background(), input(src), Options{SymmetricDelimiters: true})
	got := codes(res)
	if len(got) != 2 || got[0] != "SIN006" || got[1] != "SIN007" {
		t.Fatalf("symmetric mode: got %v", got)
	}
}

func TestMalformedTokens(t *testing.T) {
	res := Syntactic(context.Background(), input(`x = "abc`), Options{})
	got := codes(res)
	if len(got) != 1 || got[0] != "SIN001" {
		t.Fatalf("got %v", got)
	}
	if !strings.Contains(res.Diagnostics[0].Suggestion, `"`) {
		t.Fatalf("suggestion %q", res.Diagnostics[0].Suggestion)
	}
}

func TestRedeclaration(t *testing.T) {
	res := Semantic(context.Background(), input("let x = 1;\nlet x = 2;"), Options{})
	if res.Status != StatusWarning || len(res.Diagnostics) != 1 {
		t.Fatalf("status=%s diags=%v", res.Status, codes(res))
	}
	d := res.Diagnostics[0]
	if d.Code != diag.SemaRedeclaration || d.Severity != diag.SevWarning {
		t.Fatalf("got %+v", d)
	}
	if d.Line != 2 || d.Column != 5 {
		t.Fatalf("should point at the second x, got %d:%d", d.Line, d.Column)
	}
	if !strings.Contains(d.Message, "1:5") {
		t.Fatalf("message should mention first site: %q", d.Message)
	}
}

func TestRedeclarationEveryRepeat(t *testing.T) {
	res := Semantic(context.Background(), input("a a a b"), Options{})
	if len(res.Diagnostics) != 2 {
		t.Fatalf("got %v", codes(res))
	}
	if res.Diagnostics[0].ID != "semantic-1" || res.Diagnostics[1].ID != "semantic-2" {
		t.Fatalf("ids %s %s", res.Diagnostics[0].ID, res.Diagnostics[1].ID)
	}
}

func TestKeywordHints(t *testing.T) {
	src := "functon f() { retrun x }"
	res := Semantic(context.Background(), input(src), Options{})
	if len(res.Diagnostics) != 0 {
		t.Fatalf("hints are off by default, got %v", codes(res))
	}

	res = Semantic(context.Background(), input(src), Options{KeywordHints: true})
	got := codes(res)
	if len(got) != 2 || got[0] != "SEM002" || got[1] != "SEM002" {
		t.Fatalf("got %v", got)
	}
	if res.Diagnostics[0].Suggestion != `did you mean "function"?` {
		t.Fatalf("suggestion %q", res.Diagnostics[0].Suggestion)
	}
	if res.Status != StatusCompleted {
		t.Fatalf("suggestions must not change status, got %s", res.Status)
	}
}

func TestInvalidCharacter(t *testing.T) {
	res := Lexical(context.Background(), input("a\xffb"), Options{})
	if res.Status != StatusError || len(res.Diagnostics) != 1 {
		t.Fatalf("status=%s diags=%v", res.Status, codes(res))
	}
	d := res.Diagnostics[0]
	if d.Code != diag.LexInvalidChar || d.Column != 2 || d.ID != "lexical-1" || d.Phase != diag.PhaseLexical {
		t.Fatalf("got %+v", d)
	}
	if !strings.Contains(res.Summary, "3 characters") {
		t.Fatalf("summary %q", res.Summary)
	}
}

func TestRunAllIndependent(t *testing.T) {
	timer := observ.NewTimer()
	results := RunAll(context.Background(), input("\xff } x x"), Options{}, timer)
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	want := []Status{StatusError, StatusError, StatusWarning}
	for i, r := range results {
		if r.Status != want[i] {
			t.Fatalf("%s: status %s, want %s", r.Phase, r.Status, want[i])
		}
		if r.Summary == "" {
			t.Fatalf("%s: empty summary", r.Phase)
		}
	}
	if timer.Len() != 3 {
		t.Fatalf("timer recorded %d stages", timer.Len())
	}
}

func TestEmptyInputCompletes(t *testing.T) {
	for _, r := range RunAll(context.Background(), input(""), Options{}, nil) {
		if r.Status != StatusCompleted || len(r.Diagnostics) != 0 {
			t.Fatalf("%s: %s %v", r.Phase, r.Status, codes(r))
		}
	}
}

func TestCanceledContextSkips(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, r := range RunAll(ctx, input("x"), Options{}, nil) {
		if r.Status != StatusSkipped {
			t.Fatalf("%s: %s", r.Phase, r.Status)
		}
	}
}

func TestDiagnosticsTraced(t *testing.T) {
	ring := trace.NewRing(64, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)
	Syntactic(ctx, input("}"), Options{})

	var points int
	for _, ev := range ring.Events() {
		if ev.Kind == trace.KindPoint && ev.Name == "SIN002" {
			if at, _ := ev.Attr("at"); at != "1:1" {
				t.Fatalf("point at %q", at)
			}
			points++
		}
	}
	if points != 1 {
		t.Fatalf("expected one diagnostic point, got %d", points)
	}
}
