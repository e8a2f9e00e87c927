package trace

import (
	"slices"
	"strings"
	"sync/atomic"
	"time"
)

// Kind tells spans from points.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindBegin:
		return "begin"
	case KindEnd:
		return "end"
	case KindPoint:
		return "point"
	}
	return "?"
}

// Attr is one key=value annotation on an event.
type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is one recorded fact. Seq is assigned on first record and is
// unique across all tracers of the process.
type Event struct {
	Time   time.Time
	Seq    uint64
	Kind   Kind
	Scope  Scope
	Span   uint64 // 0 for points
	Parent uint64
	Depth  int
	Name   string
	Detail string
	Attrs  []Attr
}

// Attr returns the value stored under key, if any.
func (e *Event) Attr(key string) (string, bool) {
	i := slices.IndexFunc(e.Attrs, func(a Attr) bool { return a.Key == key })
	if i < 0 {
		return "", false
	}
	return e.Attrs[i].Value, true
}

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

func stamp(ev *Event) {
	if ev.Seq == 0 {
		ev.Seq = seqCounter.Add(1)
	}
}

func sortAttrs(attrs []Attr) []Attr {
	if len(attrs) < 2 {
		return attrs
	}
	out := slices.Clone(attrs)
	slices.SortStableFunc(out, func(a, b Attr) int { return strings.Compare(a.Key, b.Key) })
	return out
}
