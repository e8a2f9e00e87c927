package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	a := tm.Begin("lexical")
	if d := tm.End(a, "3 chars"); d < 0 {
		t.Fatalf("negative duration %v", d)
	}
	b := tm.Begin("syntactic")
	tm.End(b, "")

	rep := tm.Report()
	if len(rep.Stages) != 2 || rep.Stages[0].Name != "lexical" || rep.Stages[1].Name != "syntactic" {
		t.Fatalf("unexpected stages %+v", rep.Stages)
	}
	if rep.TotalMS < rep.Stages[0].DurationMS {
		t.Fatalf("total below a single stage")
	}
	sum := tm.Summary()
	if !strings.Contains(sum, "// 3 chars") || !strings.Contains(sum, "total") {
		t.Fatalf("summary:\n%s", sum)
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	if d := tm.End(5, ""); d != 0 {
		t.Fatalf("got %v", d)
	}
	if rep := tm.Report(); rep.TotalMS != 0 || rep.Stages != nil {
		t.Fatalf("empty timer report %+v", rep)
	}
}

func TestDurationToMillis(t *testing.T) {
	if got := DurationToMillis(1500 * time.Microsecond); got != 1.5 {
		t.Fatalf("got %v", got)
	}
}
