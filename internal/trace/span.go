package trace

import (
	"context"
	"time"
)

type tracerKey struct{}

type spanKey struct{}

type spanRef struct {
	id    uint64
	depth int
}

// WithTracer stores t in ctx; nil means Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// FromContext returns the tracer stored in ctx or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx != nil {
		if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
			return t
		}
	}
	return Nop
}

func currentSpan(ctx context.Context) spanRef {
	if ctx != nil {
		if ref, ok := ctx.Value(spanKey{}).(spanRef); ok {
			return ref
		}
	}
	return spanRef{}
}

// Enabled reports whether an event of scope would be recorded under ctx.
// Callers use it to skip building expensive details.
func Enabled(ctx context.Context, scope Scope) bool {
	return FromContext(ctx).Level().Records(scope)
}

// Span is an open interval. The zero Span and a nil *Span are inert.
type Span struct {
	tracer  Tracer
	ref     spanRef
	parent  uint64
	scope   Scope
	name    string
	started time.Time
	attrs   []Attr
}

// Start opens a span under the span already in ctx and returns a context
// that makes it the parent of nested spans. When the scope is filtered out
// ctx is returned unchanged.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	t := FromContext(ctx)
	if !t.Level().Records(scope) {
		return ctx, &Span{}
	}
	parent := currentSpan(ctx)
	s := &Span{
		tracer:  t,
		ref:     spanRef{id: spanCounter.Add(1), depth: parent.depth + 1},
		parent:  parent.id,
		scope:   scope,
		name:    name,
		started: time.Now(),
	}
	t.Record(Event{
		Time:   s.started,
		Kind:   KindBegin,
		Scope:  scope,
		Span:   s.ref.id,
		Parent: s.parent,
		Depth:  parent.depth,
		Name:   name,
	})
	return context.WithValue(ctx, spanKey{}, s.ref), s
}

// ID is 0 for inert spans.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.ref.id
}

// Set attaches key=value to the closing event.
func (s *Span) Set(key, value string) *Span {
	if s.ID() == 0 {
		return s
	}
	s.attrs = append(s.attrs, Attr{Key: key, Value: value})
	return s
}

// End closes the span and returns its duration.
func (s *Span) End(detail string) time.Duration {
	if s.ID() == 0 {
		return 0
	}
	now := time.Now()
	s.tracer.Record(Event{
		Time:   now,
		Kind:   KindEnd,
		Scope:  s.scope,
		Span:   s.ref.id,
		Parent: s.parent,
		Depth:  s.ref.depth - 1,
		Name:   s.name,
		Detail: detail,
		Attrs:  sortAttrs(s.attrs),
	})
	return now.Sub(s.started)
}

// Point records an instant event under the span in ctx.
func Point(ctx context.Context, scope Scope, name, detail string, attrs ...Attr) {
	t := FromContext(ctx)
	if !t.Level().Records(scope) {
		return
	}
	parent := currentSpan(ctx)
	t.Record(Event{
		Time:   time.Now(),
		Kind:   KindPoint,
		Scope:  scope,
		Parent: parent.id,
		Depth:  parent.depth,
		Name:   name,
		Detail: detail,
		Attrs:  sortAttrs(attrs),
	})
}
