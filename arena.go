// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Arena is a fixed region of n slots addressed by offset. [Arena.At] and
// [Arena.Span] hand out storage capabilities validated against the region
// bounds when they are created.
type Arena[T any] struct {
	id     uuid.UUID
	slots  []T
	tracer Tracer
}

// Option configures an [Arena].
type Option func(*options)

type options struct {
	id     uuid.UUID
	tracer Tracer
}

// WithID sets the region identity reported in trace events.
// By default a random UUID is used.
func WithID(id uuid.UUID) Option {
	return func(o *options) { o.id = id }
}

// WithTracer sets the tracer receiving events of handles derived from the
// arena.
func WithTracer(t Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithLogger traces handle events to log at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.tracer = ZapTracer(log) }
}

// NewArena returns an arena of n slots.
func NewArena[T any](n int, opts ...Option) *Arena[T] {
	if n < 0 {
		violation("NewArena", ErrOutOfRange)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}
	return &Arena[T]{id: o.id, slots: make([]T, n), tracer: o.tracer}
}

// ID returns the region identity.
func (a *Arena[T]) ID() uuid.UUID { return a.id }

// Len returns the number of slots in the region.
func (a *Arena[T]) Len() int { return len(a.slots) }

// At returns storage for the slot at off.
// Panics if off is outside the region.
func (a *Arena[T]) At(off int) Storage[T] {
	if off < 0 || off >= len(a.slots) {
		violation("Arena.At", ErrOutOfRange)
	}
	return arenaSlot[T]{a: a, off: off}
}

// Span returns storage for the n slots starting at off.
// Panics if the span is not inside the region.
func (a *Arena[T]) Span(off, n int) SliceStorage[T] {
	if off < 0 || n < 0 || off > len(a.slots)-n {
		violation("Arena.Span", ErrOutOfRange)
	}
	return arenaSpan[T]{a: a, off: off, n: n}
}

func (a *Arena[T]) origin(off int) tracing {
	return tracing{tracer: a.tracer, region: a.id, offset: off}
}

type arenaSlot[T any] struct {
	a   *Arena[T]
	off int
}

func (s arenaSlot[T]) Place() *T       { return &s.a.slots[s.off] }
func (s arenaSlot[T]) origin() tracing { return s.a.origin(s.off) }

type arenaSpan[T any] struct {
	a      *Arena[T]
	off, n int
}

func (s arenaSpan[T]) Places() []T {
	return s.a.slots[s.off : s.off+s.n : s.off+s.n]
}

func (s arenaSpan[T]) origin() tracing { return s.a.origin(s.off) }
