package trace

import (
	"errors"
	"io"
	"sync"
)

// Tracer receives events. Record must be safe for concurrent use and must
// drop events whose scope the tracer's Level does not record.
type Tracer interface {
	Record(ev Event)
	Flush() error
	Close() error
	Level() Level
}

type nop struct{}

func (nop) Record(Event) {}
func (nop) Flush() error { return nil }
func (nop) Close() error { return nil }
func (nop) Level() Level { return LevelOff }

// Nop records nothing.
var Nop Tracer = nop{}

// Stream encodes every event to w as it arrives.
type Stream struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
}

func NewStream(w io.Writer, level Level, format Format) *Stream {
	if format == FormatAuto {
		format = FormatText
	}
	return &Stream{w: w, level: level, format: format}
}

func (s *Stream) Record(ev Event) {
	if !s.level.Records(ev.Scope) {
		return
	}
	stamp(&ev)
	line := Encode(&ev, s.format)

	s.mu.Lock()
	defer s.mu.Unlock()
	// трассировка не должна ломать анализ
	_, _ = s.w.Write(line) //nolint:errcheck
}

func (s *Stream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes and closes w when it is an io.Closer.
func (s *Stream) Close() error {
	if err := s.Flush(); err != nil {
		return err
	}
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Stream) Level() Level { return s.level }

// Ring keeps the most recent events in memory.
type Ring struct {
	mu    sync.Mutex
	buf   []Event
	next  int
	count int
	level Level
}

const defaultRingSize = 4096

func NewRing(size int, level Level) *Ring {
	if size <= 0 {
		size = defaultRingSize
	}
	return &Ring{buf: make([]Event, size), level: level}
}

func (r *Ring) Record(ev Event) {
	if !r.level.Records(ev.Scope) {
		return
	}
	stamp(&ev)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf[r.next] = ev
	r.next = (r.next + 1) % len(r.buf)
	r.count = min(r.count+1, len(r.buf))
}

// Events returns the retained events, oldest first.
func (r *Ring) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, 0, r.count)
	start := (r.next - r.count + len(r.buf)) % len(r.buf)
	for i := 0; i < r.count; i++ {
		out = append(out, r.buf[(start+i)%len(r.buf)])
	}
	return out
}

// Dump encodes the retained events to w.
func (r *Ring) Dump(w io.Writer, format Format) error {
	for _, ev := range r.Events() {
		if _, err := w.Write(Encode(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Ring) Flush() error { return nil }
func (r *Ring) Close() error { return nil }
func (r *Ring) Level() Level { return r.level }

// fanout forwards to several tracers sharing one level.
type fanout struct {
	level   Level
	targets []Tracer
}

func (f *fanout) Record(ev Event) {
	if !f.level.Records(ev.Scope) {
		return
	}
	// одинаковый Seq во всех получателях
	stamp(&ev)
	for _, t := range f.targets {
		t.Record(ev)
	}
}

func (f *fanout) Flush() error {
	var errs []error
	for _, t := range f.targets {
		errs = append(errs, t.Flush())
	}
	return errors.Join(errs...)
}

func (f *fanout) Close() error {
	var errs []error
	for _, t := range f.targets {
		errs = append(errs, t.Close())
	}
	return errors.Join(errs...)
}

func (f *fanout) Level() Level { return f.level }

// RingOf returns the Ring inside t, if t is or contains one.
func RingOf(t Tracer) *Ring {
	switch v := t.(type) {
	case *Ring:
		return v
	case *fanout:
		for _, inner := range v.targets {
			if r := RingOf(inner); r != nil {
				return r
			}
		}
	}
	return nil
}
