package analysis

import "time"

// StageStatus reports whether a stage started or finished.
type StageStatus int

const (
	// StageStart indicates that a pipeline stage has begun.
	StageStart StageStatus = iota
	StageEnd
)

// StageEvent describes a stage boundary.
type StageEvent struct {
	Name    string
	Status  StageStatus
	Elapsed time.Duration
}

// StageObserver receives stage events emitted during AnalyzeWithOptions.
type StageObserver func(StageEvent)
