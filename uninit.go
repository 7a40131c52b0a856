// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

import "unsafe"

// Ctor is a constructor: it turns a place into a proof that the place holds
// a valid value. The proof returned must be the one produced from the place
// it was given.
type Ctor[T any] func(*Uninit[T]) *Init[T]

// SliceCtor is a constructor for a run of places.
type SliceCtor[T any] func(*UninitSlice[T]) *InitSlice[T]

// Uninit is a place that needs to be initialized. It carries no guarantee
// about the current contents of its memory and offers no typed read.
//
// An Uninit is consumed by the first of Write, WriteWith or AssumeValid.
type Uninit[T any] struct {
	ptr   *T
	d     duty
	scope *Scope
	tr    tracing
	proof *Init[T]
}

func newUninit[T any](p *T, s *Scope, tr tracing) *Uninit[T] {
	return &Uninit[T]{ptr: p, scope: s, tr: tr}
}

// UninitFromRaw wraps p as a place.
//
// p must be valid for T and must not be reachable through any other live
// handle. The returned place is not bound to a scope.
func UninitFromRaw[T any](p *T) *Uninit[T] {
	if p == nil {
		violation("UninitFromRaw", ErrNilPlace)
	}
	return newUninit(p, nil, tracing{})
}

func (u *Uninit[T]) usable(op string) {
	u.d.check(op)
	u.scope.check(op)
}

// Addr returns the address of the place.
func (u *Uninit[T]) Addr() unsafe.Pointer {
	u.usable("Uninit.Addr")
	return unsafe.Pointer(u.ptr)
}

// Size returns the size in bytes of the place.
func (u *Uninit[T]) Size() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Write stores v in the place and returns the proof.
func (u *Uninit[T]) Write(v T) *Init[T] {
	u.usable("Uninit.Write")
	*u.ptr = v
	return u.AssumeValid()
}

// WriteWith runs c against the place and returns its proof.
// Panics if c returns a proof that was not produced from u.
func (u *Uninit[T]) WriteWith(c Ctor[T]) *Init[T] {
	u.usable("Uninit.WriteWith")
	return u.claim("Uninit.WriteWith", c(u))
}

// AssumeValid returns a proof for the place without writing to it.
//
// The caller asserts the memory already holds a valid T. Every constructor
// in this package calls it exactly once, after establishing validity.
func (u *Uninit[T]) AssumeValid() *Init[T] {
	u.usable("Uninit.AssumeValid")
	u.d.leave("Uninit.AssumeValid", consumed)
	i := &Init[T]{ptr: u.ptr, scope: u.scope, tr: u.tr, src: u}
	u.proof = i
	return i
}

// claim checks that i was produced from u and still owns its value.
func (u *Uninit[T]) claim(op string, i *Init[T]) *Init[T] {
	if i == nil || i.src != u {
		violation(op, ErrForeignProof)
	}
	i.d.check(op)
	return i
}

// unwind destroys the value proven for u if the proof still owns it.
func (u *Uninit[T]) unwind() {
	if i := u.proof; i != nil && i.d.tryLeave(consumed) {
		destroy(i.ptr)
		emit[T](i.tr, EventDrop, 1)
	}
}

// UninitSlice is a run of places that need to be initialized.
type UninitSlice[T any] struct {
	s     []T
	d     duty
	scope *Scope
	tr    tracing
	proof *InitSlice[T]
}

func newUninitSlice[T any](s []T, sc *Scope, tr tracing) *UninitSlice[T] {
	return &UninitSlice[T]{s: s, scope: sc, tr: tr}
}

// UninitSliceFromRaw wraps s as a run of places under the same contract
// as [UninitFromRaw].
func UninitSliceFromRaw[T any](s []T) *UninitSlice[T] {
	return newUninitSlice(s, nil, tracing{})
}

func (u *UninitSlice[T]) usable(op string) {
	u.d.check(op)
	u.scope.check(op)
}

// Len returns the number of places.
func (u *UninitSlice[T]) Len() int { return len(u.s) }

// Addr returns the address of the first place, or nil for an empty run.
func (u *UninitSlice[T]) Addr() unsafe.Pointer {
	u.usable("UninitSlice.Addr")
	return unsafe.Pointer(unsafe.SliceData(u.s))
}

// WriteAll copies vs into the run. Panics if the lengths differ.
func (u *UninitSlice[T]) WriteAll(vs []T) *InitSlice[T] {
	u.usable("UninitSlice.WriteAll")
	if len(vs) != len(u.s) {
		violation("UninitSlice.WriteAll", ErrLengthMismatch)
	}
	copy(u.s, vs)
	return u.AssumeValid()
}

// WriteWith runs c against the run and returns its proof.
func (u *UninitSlice[T]) WriteWith(c SliceCtor[T]) *InitSlice[T] {
	u.usable("UninitSlice.WriteWith")
	i := c(u)
	if i == nil || i.src != u {
		violation("UninitSlice.WriteWith", ErrForeignProof)
	}
	i.d.check("UninitSlice.WriteWith")
	return i
}

// AssumeValid returns a proof for the run without writing to it.
// The caller asserts every element already holds a valid T.
func (u *UninitSlice[T]) AssumeValid() *InitSlice[T] {
	u.usable("UninitSlice.AssumeValid")
	u.d.leave("UninitSlice.AssumeValid", consumed)
	i := &InitSlice[T]{s: u.s, scope: u.scope, tr: u.tr, src: u}
	u.proof = i
	return i
}

func (u *UninitSlice[T]) unwind() {
	if i := u.proof; i != nil && i.d.tryLeave(consumed) {
		destroyAll(i.s)
		emit[T](i.tr, EventDrop, len(i.s))
	}
}
