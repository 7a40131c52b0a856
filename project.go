// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

import (
	"reflect"
	"unsafe"
)

// Projector decomposes a place of an aggregate T into per-field places U
// and recomposes the per-field proofs I.
//
// Decompose must call [Field] exactly once per field of T, with the scope
// it is given, and return the places in U. Proofs must list every proof
// held by I. Implementations for user types are expected to be generated;
// the tuples and arrays of this package ship with their own.
type Projector[T, U, I any] interface {
	Decompose(s *Scope, whole *Uninit[T]) U
	Proofs(proofs I) []Proof
}

// Construct initializes whole field by field.
//
// p decomposes whole into field places, f fills them in any order and
// returns one proof per field, and the proofs are composed into the proof
// for whole. Field places and proofs are bound to a scope that closes when
// Construct returns. If f exits abnormally, field values already proven
// and not yet composed are destroyed before the panic continues.
func Construct[T, U, I any](whole *Uninit[T], p Projector[T, U, I], f func(*Scope, U) I) *Init[T] {
	const op = "Construct"
	whole.usable(op)
	s := openScope(whole.ptr)
	done := false
	defer func() { s.close(!done) }()

	places := p.Decompose(s, whole)
	proofs := f(s, places)
	i := compose(op, s, whole, p.Proofs(proofs))
	done = true
	return i
}

// checkLayout verifies that the recorded field places of a struct or array
// cover each of its fields exactly once at the field's offset and type.
// Other kinds are trusted to their projector.
func checkLayout(op string, t reflect.Type, ents []entry) {
	if t == nil {
		return
	}
	switch t.Kind() {
	case reflect.Struct:
		n := 0
		for i := range t.NumField() {
			sf := t.Field(i)
			if sf.Name == "_" {
				continue
			}
			n++
			if !hasEntry(ents, sf.Offset, sf.Type) {
				violation(op, ErrLayoutMismatch)
			}
		}
		if n != len(ents) {
			violation(op, ErrLayoutMismatch)
		}
	case reflect.Array:
		if t.Len() != len(ents) {
			violation(op, ErrLayoutMismatch)
		}
		elem := t.Elem()
		for i := range t.Len() {
			if !hasEntry(ents, uintptr(i)*elem.Size(), elem) {
				violation(op, ErrLayoutMismatch)
			}
		}
	}
}

func hasEntry(ents []entry, off uintptr, t reflect.Type) bool {
	for _, e := range ents {
		if e.off == off && e.typ == t {
			return true
		}
	}
	return false
}

// ArrayPlaces holds one place per element, in index order.
type ArrayPlaces[T any] []*Uninit[T]

// ArrayProofs holds one proof per element.
type ArrayProofs[T any] []*Init[T]

type arrayProjector[T, A any] struct {
	n int
}

// ProjectArray returns the projector of A into its elements. A must be an
// array type with element type T, of any length; otherwise ProjectArray
// panics with [ErrLayoutMismatch].
func ProjectArray[T, A any]() Projector[A, ArrayPlaces[T], ArrayProofs[T]] {
	return arrayProjector[T, A]{n: arrayLen[T, A]("ProjectArray")}
}

func (p arrayProjector[T, A]) Decompose(s *Scope, whole *Uninit[A]) ArrayPlaces[T] {
	places := make(ArrayPlaces[T], p.n)
	for i := range places {
		places[i] = Field(s, whole, func(a *A) *T { return &arrayElems[T](a, p.n)[i] })
	}
	return places
}

func (arrayProjector[T, A]) Proofs(proofs ArrayProofs[T]) []Proof {
	out := make([]Proof, len(proofs))
	for i, p := range proofs {
		out[i] = p
	}
	return out
}

// arrayLen returns the length of A, which must be an array of T.
func arrayLen[T, A any](op string) int {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array || t.Elem() != reflect.TypeFor[T]() {
		violation(op, ErrLayoutMismatch)
	}
	return t.Len()
}

// arrayElems views the n elements of the array at p as a slice.
func arrayElems[T, A any](p *A, n int) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(p)), n)
}
