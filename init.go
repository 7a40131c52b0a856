// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

// Init is the proof that a place holds a valid value. It is obtained only
// from [Uninit.Write], [Uninit.AssumeValid] or a projection composing
// field proofs, and it is the exclusive owner of the value: Drop runs the
// value's destructor once.
//
// Building an [Own] from an Init, or folding it into a composite proof,
// disarms it; any later use panics with [ErrConsumed].
type Init[T any] struct {
	ptr   *T
	d     duty
	scope *Scope
	tr    tracing
	src   *Uninit[T]
}

// Get returns the proven value for reading and mutation.
func (i *Init[T]) Get() *T {
	i.d.check("Init.Get")
	i.scope.check("Init.Get")
	return i.ptr
}

// Drop destroys the value.
func (i *Init[T]) Drop() {
	i.d.leave("Init.Drop", consumed)
	destroy(i.ptr)
	emit[T](i.tr, EventDrop, 1)
}

// Pin fixes the value at its address. The returned handle keeps the drop
// duty but offers no way to move the value out.
func (i *Init[T]) Pin() Pinned[T] {
	i.d.check("Init.Pin")
	return Pinned[T]{h: i}
}

func (i *Init[T]) proof() proofInfo {
	if i == nil {
		return proofInfo{}
	}
	return proofInfo{src: i.src, d: &i.d, scope: i.scope}
}

// Proof is a type-erased field proof passed to a projection composition.
// It is implemented by *[Init].
type Proof interface {
	proof() proofInfo
}

type proofInfo struct {
	src   any
	d     *duty
	scope *Scope
}

// InitSlice is the proof that a run of places holds valid values.
type InitSlice[T any] struct {
	s     []T
	d     duty
	scope *Scope
	tr    tracing
	src   *UninitSlice[T]
}

// Get returns the proven run.
func (i *InitSlice[T]) Get() []T {
	i.d.check("InitSlice.Get")
	i.scope.check("InitSlice.Get")
	return i.s
}

// Len returns the number of elements.
func (i *InitSlice[T]) Len() int { return len(i.s) }

// Drop destroys every element, first to last.
func (i *InitSlice[T]) Drop() {
	i.d.leave("InitSlice.Drop", consumed)
	destroyAll(i.s)
	emit[T](i.tr, EventDrop, len(i.s))
}

type pinTarget[T any] interface {
	Get() *T
	Drop()
}

// Pinned is a proof or owning handle whose value must never be relocated.
// It carries no state besides the handle it wraps.
type Pinned[T any] struct {
	h pinTarget[T]
}

// Get returns the pinned value. The value may be mutated in place but must
// not be copied out and used as if it were the original.
func (p Pinned[T]) Get() *T { return p.h.Get() }

// Drop destroys the value in place.
func (p Pinned[T]) Drop() { p.h.Drop() }
