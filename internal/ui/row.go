package ui

import (
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"lexiscope/internal/batch"
)

// pipeline lists the analysis stages in the order they report.
var pipeline = []string{"classify", "tokenize", "lexical", "syntactic", "semantic", "stats"}

type rowState uint8

const (
	rowQueued rowState = iota
	rowCache
	rowRunning
	rowDone
	rowCached
	rowFailed
)

var rowLabels = map[rowState]string{
	rowQueued:  "queued",
	rowCache:   "cache",
	rowRunning: "running",
	rowDone:    "done",
	rowCached:  "cached",
	rowFailed:  "failed",
}

func (s rowState) String() string { return rowLabels[s] }

func (s rowState) finished() bool { return s >= rowDone }

// row is one input file on the board.
type row struct {
	name    string
	state   rowState
	step    int // index into pipeline, -1 before the first stage
	note    string
	elapsed time.Duration
}

func newRow(name string) *row {
	return &row{name: name, step: -1}
}

// apply folds one batch event into the row.
func (r *row) apply(ev batch.Event) {
	switch ev.Status {
	case batch.StatusQueued:
		r.state = rowQueued
	case batch.StatusWorking:
		if ev.Stage == batch.StageCache {
			r.state = rowCache
			return
		}
		r.state = rowRunning
		if i := slices.Index(pipeline, ev.Detail); i >= 0 {
			r.step = i
		}
	case batch.StatusDone:
		r.state = rowDone
		if ev.Detail == "cached" {
			r.state = rowCached
		} else {
			r.note = ev.Detail
		}
		r.step = len(pipeline) - 1
		r.elapsed = ev.Elapsed
	case batch.StatusError:
		r.state = rowFailed
		if ev.Err != nil {
			r.note = ev.Err.Error()
		}
		r.elapsed = ev.Elapsed
	}
}

// fraction is the share of the row's work already done.
func (r *row) fraction() float64 {
	switch {
	case r.state.finished():
		return 1
	case r.state == rowCache:
		return 0.05
	case r.state == rowRunning:
		return 0.1 + 0.9*float64(r.step)/float64(len(pipeline))
	}
	return 0
}

// strip draws one cell per pipeline stage: "■■■□□□".
func (r *row) strip() string {
	var b strings.Builder
	for i := range pipeline {
		if i <= r.step {
			b.WriteString("■")
		} else {
			b.WriteString("□")
		}
	}
	return b.String()
}

func fit(s string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(s) <= width:
		return s
	case width <= 3:
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
