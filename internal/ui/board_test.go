package ui

import (
	"errors"
	"strings"
	"testing"

	"lexiscope/internal/batch"
)

func queued(b *Board, names ...string) {
	for _, n := range names {
		b.apply(batch.Event{File: n, Stage: batch.StageLoad, Status: batch.StatusQueued})
	}
}

func TestBoardTracksStages(t *testing.T) {
	b := NewBoard("analyze", nil)
	queued(b, "a.txt", "b.txt")

	b.apply(batch.Event{File: "a.txt", Stage: batch.StageAnalyze, Status: batch.StatusWorking, Detail: "syntactic"})
	a := b.byName["a.txt"]
	if a.state != rowRunning || a.step != 3 {
		t.Fatalf("a = %+v", a)
	}
	if got := a.strip(); got != "■■■■□□" {
		t.Fatalf("strip = %q", got)
	}
	if b.byName["b.txt"].state != rowQueued {
		t.Fatalf("b touched: %+v", b.byName["b.txt"])
	}
}

func TestBoardIgnoresUnknownFiles(t *testing.T) {
	b := NewBoard("analyze", nil)
	queued(b, "a.txt")
	b.apply(batch.Event{File: "zzz", Stage: batch.StageFinished, Status: batch.StatusDone})
	if len(b.rows) != 1 {
		t.Fatalf("rows = %d", len(b.rows))
	}
	if f, _ := b.counts(); f != 0 {
		t.Fatalf("finished = %d", f)
	}
}

func TestBoardFraction(t *testing.T) {
	b := NewBoard("analyze", nil)
	if b.fraction() != 0 {
		t.Fatalf("empty board fraction = %v", b.fraction())
	}
	queued(b, "a.txt", "b.txt")
	b.apply(batch.Event{File: "a.txt", Stage: batch.StageFinished, Status: batch.StatusDone, Detail: "cached"})
	b.apply(batch.Event{File: "b.txt", Stage: batch.StageAnalyze, Status: batch.StatusWorking, Detail: "classify"})
	if p := b.fraction(); p <= 0.5 || p >= 1 {
		t.Fatalf("fraction = %v", p)
	}
	if b.byName["a.txt"].state != rowCached {
		t.Fatalf("a = %v", b.byName["a.txt"].state)
	}
	b.apply(batch.Event{File: "b.txt", Stage: batch.StageFinished, Status: batch.StatusError, Err: errors.New("boom")})
	if p := b.fraction(); p != 1 {
		t.Fatalf("fraction = %v", p)
	}
	if f, failed := b.counts(); f != 2 || failed != 1 {
		t.Fatalf("counts = %d, %d", f, failed)
	}
}

func TestRowApply(t *testing.T) {
	cases := []struct {
		ev   batch.Event
		want rowState
		note string
	}{
		{batch.Event{Status: batch.StatusQueued}, rowQueued, ""},
		{batch.Event{Stage: batch.StageCache, Status: batch.StatusWorking}, rowCache, ""},
		{batch.Event{Stage: batch.StageAnalyze, Status: batch.StatusWorking, Detail: "semantic"}, rowRunning, ""},
		{batch.Event{Stage: batch.StageFinished, Status: batch.StatusDone, Detail: "2 diagnostics"}, rowDone, "2 diagnostics"},
		{batch.Event{Stage: batch.StageFinished, Status: batch.StatusError, Err: errors.New("no such file")}, rowFailed, "no such file"},
	}
	for _, c := range cases {
		r := newRow("x")
		r.apply(c.ev)
		if r.state != c.want || r.note != c.note {
			t.Errorf("apply(%+v) = %s %q, want %s %q", c.ev, r.state, r.note, c.want, c.note)
		}
	}
}

func TestBoardView(t *testing.T) {
	b := NewBoard("analyze", nil)
	queued(b, "a.txt", "b.txt")
	b.apply(batch.Event{File: "a.txt", Stage: batch.StageFinished, Status: batch.StatusDone, Detail: "1 diagnostics"})
	view := b.View()
	for _, want := range []string{"analyze 1/2", "a.txt", "b.txt", "done", "queued", "1 diagnostics", "■■■■■■"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if NewBoard("x", nil).View() != "" {
		t.Fatalf("empty board must render nothing")
	}
}

func TestFit(t *testing.T) {
	cases := map[string]string{
		"abcdefghij": "abc...",
		"abc":        "abc",
		"日本語テキスト":    "日...",
	}
	for in, want := range cases {
		if got := fit(in, 6); got != want {
			t.Errorf("fit(%q) = %q, want %q", in, got, want)
		}
	}
}
