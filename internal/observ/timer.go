// Package observ measures how long the analysis stages take.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Stage records the duration and metadata of one pipeline stage
// (classify, tokenize, a phase, stats).
type Stage struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the execution time of multiple stages. time.Since uses the
// monotonic clock, so wall-clock jumps do not skew durations.
type Timer struct {
	stages []Stage
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{stages: make([]Stage, 0, 8)} }

// Begin starts a new stage and returns its index.
func (t *Timer) Begin(name string) int {
	t.stages = append(t.stages, Stage{Name: name, Start: time.Now()})
	return len(t.stages) - 1
}

// End finishes a stage by its index and returns the measured duration.
func (t *Timer) End(idx int, note string) time.Duration {
	if idx < 0 || idx >= len(t.stages) {
		return 0
	}
	s := &t.stages[idx]
	s.Dur = time.Since(s.Start)
	s.Note = note
	return s.Dur
}

// Len returns the number of recorded stages.
func (t *Timer) Len() int { return len(t.stages) }

// Summary returns a human-readable string summarizing all tracked stages.
func (t *Timer) Summary() string {
	return t.Report().String()
}

// StageReport представляет сжатую информацию о стадии для сериализации.
type StageReport struct {
	Name       string  `json:"name" msgpack:"name" cbor:"name"`
	DurationMS float64 `json:"duration_ms" msgpack:"duration_ms" cbor:"duration_ms"`
	Note       string  `json:"note,omitempty" msgpack:"note,omitempty" cbor:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms" msgpack:"total_ms" cbor:"total_ms"`
	Stages  []StageReport `json:"stages" msgpack:"stages" cbor:"stages"`
}

// Report формирует срез стадий и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if len(t.stages) == 0 {
		return Report{}
	}
	report := Report{
		Stages: make([]StageReport, len(t.stages)),
	}
	var total time.Duration
	for i, s := range t.stages {
		total += s.Dur
		report.Stages[i] = StageReport{
			Name:       s.Name,
			DurationMS: DurationToMillis(s.Dur),
			Note:       s.Note,
		}
	}
	report.TotalMS = DurationToMillis(total)
	return report
}

func (r Report) String() string {
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, s := range r.Stages {
		fmt.Fprintf(&sb, "  %-20s %7.2f ms", s.Name, s.DurationMS)
		if s.Note != "" {
			sb.WriteString("  // " + s.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-20s %7.2f ms\n", "total", r.TotalMS)
	return sb.String()
}

// DurationToMillis converts d to fractional milliseconds.
func DurationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
