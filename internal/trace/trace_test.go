package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelRecords(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopePass, true},
		{LevelError, ScopeFile, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeUnit, false},
		{LevelDebug, ScopeUnit, true},
		{LevelDebug, 0, false},
	}
	for _, c := range cases {
		if got := c.level.Records(c.scope); got != c.want {
			t.Fatalf("%s/%s: got %v", c.level, c.scope, got)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "DEBUG"} {
		l, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if !strings.EqualFold(l.String(), s) {
			t.Fatalf("%s round-tripped to %s", s, l)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestStreamText(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithTracer(context.Background(), NewStream(&buf, LevelPhase, FormatText))

	ctx, span := Start(ctx, ScopePass, "lexical")
	span.Set("units", "3").Set("a", "1")
	_, skipped := Start(ctx, ScopeFile, "file:skipped")
	skipped.End("")
	span.End("ok")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got:\n%s", buf.String())
	}
	if !strings.Contains(lines[0], "pass   + lexical") {
		t.Fatalf("begin line: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "- lexical (ok) a=1 units=3") {
		t.Fatalf("end line: %q", lines[1])
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithTracer(context.Background(), NewStream(&buf, LevelDebug, FormatNDJSON))
	Point(ctx, ScopeUnit, "SIN002", "unexpected closing brace", Attr{Key: "line", Value: "1"})

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["kind"] != "point" || got["scope"] != "unit" || got["name"] != "SIN002" {
		t.Fatalf("unexpected event %v", got)
	}
	attrs, _ := got["attrs"].(map[string]any)
	if attrs["line"] != "1" {
		t.Fatalf("attrs %v", got["attrs"])
	}
}

func TestRingKeepsNewest(t *testing.T) {
	r := NewRing(2, LevelPhase)
	ctx := WithTracer(context.Background(), r)
	for _, name := range []string{"a", "b", "c"} {
		Point(ctx, ScopeDriver, name, "")
	}
	evs := r.Events()
	if len(evs) != 2 || evs[0].Name != "b" || evs[1].Name != "c" {
		t.Fatalf("events %+v", evs)
	}
	if evs[0].Seq >= evs[1].Seq {
		t.Fatalf("seq not increasing: %d %d", evs[0].Seq, evs[1].Seq)
	}
	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 2 {
		t.Fatalf("dump:\n%s", buf.String())
	}
}

func TestOpenBoth(t *testing.T) {
	var buf bytes.Buffer
	tr, err := Open(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf, RingSize: 8})
	if err != nil {
		t.Fatal(err)
	}
	Point(WithTracer(context.Background(), tr), ScopePass, "x", "")
	ring := RingOf(tr)
	if ring == nil || len(ring.Events()) != 1 {
		t.Fatalf("ring missing or empty")
	}
	if buf.Len() == 0 {
		t.Fatalf("stream output empty")
	}
	if off, _ := Open(Config{Level: LevelOff}); off != Nop {
		t.Fatalf("off level must give Nop")
	}
	if _, err := Open(Config{Level: LevelPhase}); err == nil {
		t.Fatalf("missing mode accepted")
	}
}

func TestStartNestsSpans(t *testing.T) {
	r := NewRing(16, LevelDebug)
	ctx := WithTracer(context.Background(), r)
	ctx, outer := Start(ctx, ScopeDriver, "analyze")
	inner, span := Start(ctx, ScopePass, "lexical")
	Point(inner, ScopeUnit, "LEX001", "")
	span.End("")
	outer.End("")

	evs := r.Events()
	if len(evs) != 5 {
		t.Fatalf("got %d events", len(evs))
	}
	if evs[1].Parent != outer.ID() || evs[2].Parent != span.ID() {
		t.Fatalf("parents: %d %d", evs[1].Parent, evs[2].Parent)
	}
	if evs[0].Depth != 0 || evs[1].Depth != 1 || evs[2].Depth != 2 || evs[3].Depth != 1 {
		t.Fatalf("depths: %d %d %d %d", evs[0].Depth, evs[1].Depth, evs[2].Depth, evs[3].Depth)
	}
}

func TestDisabledByDefault(t *testing.T) {
	ctx := context.Background()
	if Enabled(ctx, ScopeDriver) {
		t.Fatalf("expected Nop")
	}
	_, span := Start(ctx, ScopePass, "x")
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatalf("span on Nop must be inert")
	}
}

func TestEventAttr(t *testing.T) {
	ev := Event{Attrs: []Attr{{Key: "cached", Value: "true"}}}
	if v, ok := ev.Attr("cached"); !ok || v != "true" {
		t.Fatalf("got %q %v", v, ok)
	}
	if _, ok := ev.Attr("missing"); ok {
		t.Fatalf("missing attr found")
	}
}
