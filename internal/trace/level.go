package trace

import (
	"fmt"
	"strings"
)

// Scope is the granularity of an event; smaller is coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // one CLI command
	ScopePass                    // one analysis stage
	ScopeFile                    // one input in batch or watch mode
	ScopeUnit                    // one diagnostic
)

var scopeNames = [...]string{"", "driver", "pass", "file", "unit"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && s != 0 {
		return scopeNames[s]
	}
	return fmt.Sprintf("scope(%d)", uint8(s))
}

// Level selects which scopes are recorded.
type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelPhase
	LevelDetail
	LevelDebug
)

var levels = []struct {
	name  string
	level Level
	// finest scope recorded
	upTo Scope
}{
	{"off", LevelOff, 0},
	{"error", LevelError, ScopePass},
	{"phase", LevelPhase, ScopePass},
	{"detail", LevelDetail, ScopeFile},
	{"debug", LevelDebug, ScopeUnit},
}

func (l Level) String() string {
	if int(l) < len(levels) {
		return levels[l].name
	}
	return fmt.Sprintf("level(%d)", uint8(l))
}

// ParseLevel accepts the names printed by Level.String, case-insensitively.
func ParseLevel(s string) (Level, error) {
	for _, e := range levels {
		if strings.EqualFold(s, e.name) {
			return e.level, nil
		}
	}
	return LevelOff, fmt.Errorf("unknown trace level %q (want off|error|phase|detail|debug)", s)
}

// Records reports whether events of scope pass this level.
func (l Level) Records(scope Scope) bool {
	if int(l) >= len(levels) {
		return false
	}
	return scope != 0 && scope <= levels[l].upTo
}
