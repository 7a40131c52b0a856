// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

// Value returns a constructor writing v.
func Value[T any](v T) Ctor[T] {
	return func(u *Uninit[T]) *Init[T] { return u.Write(v) }
}

// MoveFrom returns a constructor relocating the value owned by src into
// the place. src is disarmed, so its value is destroyed only through the
// destination; the source slot is cleared.
func MoveFrom[T any](src *Own[T]) Ctor[T] {
	return func(u *Uninit[T]) *Init[T] {
		u.usable("MoveFrom")
		p := src.Leak()
		if p != u.ptr {
			*u.ptr = *p
			var zero T
			*p = zero
		}
		return u.AssumeValid()
	}
}

// FieldFn returns a constructor initializing the place field by field
// through [Construct].
func FieldFn[T, U, I any](p Projector[T, U, I], f func(*Scope, U) I) Ctor[T] {
	return func(u *Uninit[T]) *Init[T] { return Construct(u, p, f) }
}

// FillSlice returns a constructor initializing a run of places from index
// 0 upward with f.
//
// If f exits abnormally at index k, the values at [0, k) are destroyed in
// order, the places at [k, n) are left untouched, and the panic continues.
func FillSlice[T any](f func(int, *Uninit[T]) *Init[T]) SliceCtor[T] {
	return func(u *UninitSlice[T]) *InitSlice[T] {
		u.usable("FillSlice")
		fill("FillSlice", u.s, u.tr, f)
		return u.AssumeValid()
	}
}

// FillArray is [FillSlice] for a fixed-length array place. A must be an
// array type with element type T, of any length; otherwise FillArray panics
// with [ErrLayoutMismatch].
func FillArray[T, A any](f func(int, *Uninit[T]) *Init[T]) Ctor[A] {
	n := arrayLen[T, A]("FillArray")
	return func(u *Uninit[A]) *Init[A] {
		u.usable("FillArray")
		fill("FillArray", arrayElems[T](u.ptr, n), u.tr, f)
		return u.AssumeValid()
	}
}

func fill[T any](op string, base []T, tr tracing, f func(int, *Uninit[T]) *Init[T]) {
	s := openScope[T](nil)
	g := newRollback(base, tr)
	defer func() {
		s.close(false)
		g.release()
	}()
	for g.count < len(base) {
		i := g.count
		u := newUninit(&base[i], s, tr.at(i))
		g.begin(u)
		proof := u.claim(op, f(i, u))
		proof.d.leave(op, disarmed)
		g.advance()
	}
	g.disarm()
}
