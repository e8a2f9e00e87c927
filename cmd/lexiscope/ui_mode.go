package main

import (
	"fmt"
	"os"
	"strings"

	"lexiscope/internal/batch"
)

// progressMode decides whether analyze draws the Bubble Tea board.
type progressMode string

const (
	progressAuto progressMode = "auto"
	progressOn   progressMode = "on"
	progressOff  progressMode = "off"
)

// parseProgressMode accepts the --ui flag or [output].progress; origin names
// whichever one the value came from.
func parseProgressMode(origin, value string) (progressMode, error) {
	switch m := progressMode(strings.ToLower(strings.TrimSpace(value))); m {
	case "":
		return progressAuto, nil
	case progressAuto, progressOn, progressOff:
		return m, nil
	}
	return "", fmt.Errorf("%s: unknown progress mode %q (want auto|on|off)", origin, value)
}

// show: одиночный файл отрабатывает быстрее, чем успевает нарисоваться доска,
// поэтому auto требует хотя бы два входа и терминал на stderr.
func (m progressMode) show(inputs int, stderrTTY bool) bool {
	switch m {
	case progressOn:
		return true
	case progressOff:
		return false
	}
	return stderrTTY && inputs > 1
}

// batchWantsProgress resolves the mode against the files the batch will read.
// A listing error is left for batch.Run to report.
func batchWantsProgress(m progressMode, req batch.Request) bool {
	if m != progressAuto {
		return m.show(0, false)
	}
	if !isTerminal(os.Stderr) {
		return false
	}
	files, err := batch.ListFiles(req.Paths, req.Extensions)
	if err != nil {
		return false
	}
	return m.show(len(files), true)
}
