// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

// Own owns a value but not the memory holding it. Drop destroys the value
// exactly once and never affects the storage.
type Own[T any] struct {
	ptr *T
	d   duty
	tr  tracing
}

// Build runs c against the place of s and returns the owning handle.
//
// The place handed to c is bound to a scope that closes when Build returns.
// If c exits abnormally after producing its proof, the value is destroyed
// before the panic continues.
func Build[T any](s Storage[T], c Ctor[T]) *Own[T] {
	p := s.Place()
	if p == nil {
		violation("Build", ErrNilPlace)
	}
	tr := originOf(s)
	sc := openScope[T](nil)
	done := false
	defer func() { sc.close(!done) }()

	u := newUninit(p, sc, tr)
	sc.track(u)
	i := u.WriteWith(c)
	i.d.leave("Build", disarmed)
	done = true

	emit[T](tr, EventBuild, 1)
	return &Own[T]{ptr: p, tr: tr}
}

// FromRaw wraps p as an owning handle.
//
// p must hold a valid T that nothing else owns; the returned handle takes
// over its destruction.
func FromRaw[T any](p *T) *Own[T] {
	if p == nil {
		violation("FromRaw", ErrNilPlace)
	}
	return &Own[T]{ptr: p}
}

// Get returns the owned value for reading and mutation.
func (o *Own[T]) Get() *T {
	o.d.check("Own.Get")
	return o.ptr
}

// Drop destroys the value.
func (o *Own[T]) Drop() {
	o.d.leave("Own.Drop", consumed)
	destroy(o.ptr)
	emit[T](o.tr, EventDrop, 1)
}

// Leak disarms o and returns the value's address. The caller becomes
// responsible for the value; nothing destroys it implicitly.
func (o *Own[T]) Leak() *T {
	o.d.leave("Own.Leak", disarmed)
	emit[T](o.tr, EventLeak, 1)
	return o.ptr
}

// MoveOut returns the value and clears its slot without running its
// destructor.
func (o *Own[T]) MoveOut() T {
	o.d.leave("Own.MoveOut", consumed)
	v := *o.ptr
	var zero T
	*o.ptr = zero
	emit[T](o.tr, EventMoveOut, 1)
	return v
}

// Pin fixes the value at its address.
func (o *Own[T]) Pin() Pinned[T] {
	o.d.check("Own.Pin")
	return Pinned[T]{h: o}
}

// Live reports whether o still owns its value.
func (o *Own[T]) Live() bool { return o.d.live() }

// OwnSlice owns a run of values but not the memory holding them.
type OwnSlice[T any] struct {
	s  []T
	d  duty
	tr tracing
}

// BuildSlice runs c against the run of s and returns the owning handle.
func BuildSlice[T any](s SliceStorage[T], c SliceCtor[T]) *OwnSlice[T] {
	run := s.Places()
	tr := originOf(s)
	sc := openScope[T](nil)
	done := false
	defer func() { sc.close(!done) }()

	u := newUninitSlice(run, sc, tr)
	sc.track(u)
	i := u.WriteWith(c)
	i.d.leave("BuildSlice", disarmed)
	done = true

	emit[T](tr, EventBuild, len(run))
	return &OwnSlice[T]{s: run, tr: tr}
}

// Get returns the owned run.
func (o *OwnSlice[T]) Get() []T {
	o.d.check("OwnSlice.Get")
	return o.s
}

// Len returns the number of elements.
func (o *OwnSlice[T]) Len() int { return len(o.s) }

// Drop destroys every element, first to last.
func (o *OwnSlice[T]) Drop() {
	o.d.leave("OwnSlice.Drop", consumed)
	destroyAll(o.s)
	emit[T](o.tr, EventDrop, len(o.s))
}

// Leak disarms o and returns the run.
func (o *OwnSlice[T]) Leak() []T {
	o.d.leave("OwnSlice.Leak", disarmed)
	emit[T](o.tr, EventLeak, len(o.s))
	return o.s
}

// MoveOut copies the values into a new slice and clears the run without
// running destructors.
func (o *OwnSlice[T]) MoveOut() []T {
	o.d.leave("OwnSlice.MoveOut", consumed)
	out := make([]T, len(o.s))
	copy(out, o.s)
	clear(o.s)
	emit[T](o.tr, EventMoveOut, len(o.s))
	return out
}

// Live reports whether o still owns its values.
func (o *OwnSlice[T]) Live() bool { return o.d.live() }
