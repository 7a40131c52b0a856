// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

// Storage is a block of caller-owned memory able to hold one T.
//
// Place returns the address of the block. Repeated calls on the same
// Storage return the same address. Storage never allocates on request and
// outlives every handle derived from it.
type Storage[T any] interface {
	Place() *T
}

// SliceStorage is a block of caller-owned memory able to hold a run of T.
// Places returns the run; repeated calls return the same run until the
// storage is explicitly resized.
type SliceStorage[T any] interface {
	Places() []T
}

// traced is implemented by storages that carry a tracing origin.
type traced interface {
	origin() tracing
}

func originOf(s any) tracing {
	if t, ok := s.(traced); ok {
		return t.origin()
	}
	return tracing{}
}

// Slot is fixed-size storage for a single value. Its zero value is ready to
// use; a Slot must not be copied once a handle has been derived from it.
type Slot[T any] struct {
	v T
}

// Place implements [Storage].
func (s *Slot[T]) Place() *T { return &s.v }

// Slots is storage over a fixed run of slots.
type Slots[T any] []T

// MakeSlots returns storage for n values.
func MakeSlots[T any](n int) Slots[T] { return make(Slots[T], n) }

// Places implements [SliceStorage].
func (s Slots[T]) Places() []T { return s }

// Run is storage over a growable run of slots. Places covers the first
// Len slots. Grow may move the run and must not be called while any handle
// over it is live.
type Run[T any] struct {
	buf []T
}

// NewRun returns a run of n slots with room for capacity slots.
func NewRun[T any](n, capacity int) *Run[T] {
	if capacity < n {
		capacity = n
	}
	return &Run[T]{buf: make([]T, n, capacity)}
}

// Len returns the number of slots covered by Places.
func (r *Run[T]) Len() int { return len(r.buf) }

// Grow appends n zero slots.
func (r *Run[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	if len(r.buf)+n <= cap(r.buf) {
		r.buf = r.buf[:len(r.buf)+n]
		return
	}
	buf := make([]T, len(r.buf)+n, 2*(len(r.buf)+n))
	copy(buf, r.buf)
	r.buf = buf
}

// Truncate shrinks the run to n slots. The slots past n must not hold live
// values.
func (r *Run[T]) Truncate(n int) {
	if n < 0 || n > len(r.buf) {
		violation("Run.Truncate", ErrOutOfRange)
	}
	clear(r.buf[n:])
	r.buf = r.buf[:n]
}

// Places implements [SliceStorage].
func (r *Run[T]) Places() []T { return r.buf }
