package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Mode picks the recorders Open builds.
type Mode uint8

const (
	ModeStream Mode = iota + 1
	ModeRing
	ModeBoth
)

func (m Mode) String() string {
	switch m {
	case ModeStream:
		return "stream"
	case ModeRing:
		return "ring"
	case ModeBoth:
		return "both"
	}
	return "?"
}

func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeStream, ModeRing, ModeBoth} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return ModeRing, fmt.Errorf("unknown trace mode %q (want stream|ring|both)", s)
}

// Config describes a tracer. Output wins over Path; Path "" or "-" means
// stderr, which is never closed.
type Config struct {
	Level    Level
	Mode     Mode
	Format   Format
	Output   io.Writer
	Path     string
	RingSize int
}

// Open builds the tracer described by cfg. LevelOff always yields Nop.
func Open(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	if cfg.Mode == ModeRing {
		return NewRing(cfg.RingSize, cfg.Level), nil
	}
	if cfg.Mode != ModeStream && cfg.Mode != ModeBoth {
		return nil, fmt.Errorf("unknown trace mode %d", cfg.Mode)
	}

	w, err := cfg.writer()
	if err != nil {
		return nil, err
	}
	format := cfg.Format
	if format == FormatAuto && (strings.HasSuffix(cfg.Path, ".ndjson") || strings.HasSuffix(cfg.Path, ".jsonl")) {
		format = FormatNDJSON
	}
	stream := NewStream(w, cfg.Level, format)
	if cfg.Mode == ModeStream {
		return stream, nil
	}
	return &fanout{level: cfg.Level, targets: []Tracer{stream, NewRing(cfg.RingSize, cfg.Level)}}, nil
}

func (cfg Config) writer() (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.Path == "" || cfg.Path == "-" {
		return struct{ io.Writer }{os.Stderr}, nil
	}
	f, err := os.Create(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open trace output: %w", err)
	}
	return f, nil
}
