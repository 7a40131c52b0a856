// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

// Tuples of two to eight values with their projections. A one-element tuple
// is just its element: project into it with [Uninit.WriteWith] directly.

// Tuple2 holds 2 values laid out in order.
type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

// Places2 holds the field places of a [Tuple2].
type Places2[A, B any] struct {
	P0 *Uninit[A]
	P1 *Uninit[B]
}

// Proofs2 holds the field proofs of a [Tuple2].
type Proofs2[A, B any] struct {
	P0 *Init[A]
	P1 *Init[B]
}

type tuple2Projector[A, B any] struct{}

// Project2 returns the projector of a [Tuple2] into its fields.
func Project2[A, B any]() Projector[Tuple2[A, B], Places2[A, B], Proofs2[A, B]] {
	return tuple2Projector[A, B]{}
}

func (tuple2Projector[A, B]) Decompose(s *Scope, whole *Uninit[Tuple2[A, B]]) Places2[A, B] {
	return Places2[A, B]{
		P0: Field(s, whole, func(t *Tuple2[A, B]) *A { return &t.V0 }),
		P1: Field(s, whole, func(t *Tuple2[A, B]) *B { return &t.V1 }),
	}
}

func (tuple2Projector[A, B]) Proofs(p Proofs2[A, B]) []Proof {
	return []Proof{p.P0, p.P1}
}

// Tuple3 holds 3 values laid out in order.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// Places3 holds the field places of a [Tuple3].
type Places3[A, B, C any] struct {
	P0 *Uninit[A]
	P1 *Uninit[B]
	P2 *Uninit[C]
}

// Proofs3 holds the field proofs of a [Tuple3].
type Proofs3[A, B, C any] struct {
	P0 *Init[A]
	P1 *Init[B]
	P2 *Init[C]
}

type tuple3Projector[A, B, C any] struct{}

// Project3 returns the projector of a [Tuple3] into its fields.
func Project3[A, B, C any]() Projector[Tuple3[A, B, C], Places3[A, B, C], Proofs3[A, B, C]] {
	return tuple3Projector[A, B, C]{}
}

func (tuple3Projector[A, B, C]) Decompose(s *Scope, whole *Uninit[Tuple3[A, B, C]]) Places3[A, B, C] {
	return Places3[A, B, C]{
		P0: Field(s, whole, func(t *Tuple3[A, B, C]) *A { return &t.V0 }),
		P1: Field(s, whole, func(t *Tuple3[A, B, C]) *B { return &t.V1 }),
		P2: Field(s, whole, func(t *Tuple3[A, B, C]) *C { return &t.V2 }),
	}
}

func (tuple3Projector[A, B, C]) Proofs(p Proofs3[A, B, C]) []Proof {
	return []Proof{p.P0, p.P1, p.P2}
}

// Tuple4 holds 4 values laid out in order.
type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// Places4 holds the field places of a [Tuple4].
type Places4[A, B, C, D any] struct {
	P0 *Uninit[A]
	P1 *Uninit[B]
	P2 *Uninit[C]
	P3 *Uninit[D]
}

// Proofs4 holds the field proofs of a [Tuple4].
type Proofs4[A, B, C, D any] struct {
	P0 *Init[A]
	P1 *Init[B]
	P2 *Init[C]
	P3 *Init[D]
}

type tuple4Projector[A, B, C, D any] struct{}

// Project4 returns the projector of a [Tuple4] into its fields.
func Project4[A, B, C, D any]() Projector[Tuple4[A, B, C, D], Places4[A, B, C, D], Proofs4[A, B, C, D]] {
	return tuple4Projector[A, B, C, D]{}
}

func (tuple4Projector[A, B, C, D]) Decompose(s *Scope, whole *Uninit[Tuple4[A, B, C, D]]) Places4[A, B, C, D] {
	return Places4[A, B, C, D]{
		P0: Field(s, whole, func(t *Tuple4[A, B, C, D]) *A { return &t.V0 }),
		P1: Field(s, whole, func(t *Tuple4[A, B, C, D]) *B { return &t.V1 }),
		P2: Field(s, whole, func(t *Tuple4[A, B, C, D]) *C { return &t.V2 }),
		P3: Field(s, whole, func(t *Tuple4[A, B, C, D]) *D { return &t.V3 }),
	}
}

func (tuple4Projector[A, B, C, D]) Proofs(p Proofs4[A, B, C, D]) []Proof {
	return []Proof{p.P0, p.P1, p.P2, p.P3}
}

// Tuple5 holds 5 values laid out in order.
type Tuple5[A, B, C, D, E any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
}

// Places5 holds the field places of a [Tuple5].
type Places5[A, B, C, D, E any] struct {
	P0 *Uninit[A]
	P1 *Uninit[B]
	P2 *Uninit[C]
	P3 *Uninit[D]
	P4 *Uninit[E]
}

// Proofs5 holds the field proofs of a [Tuple5].
type Proofs5[A, B, C, D, E any] struct {
	P0 *Init[A]
	P1 *Init[B]
	P2 *Init[C]
	P3 *Init[D]
	P4 *Init[E]
}

type tuple5Projector[A, B, C, D, E any] struct{}

// Project5 returns the projector of a [Tuple5] into its fields.
func Project5[A, B, C, D, E any]() Projector[Tuple5[A, B, C, D, E], Places5[A, B, C, D, E], Proofs5[A, B, C, D, E]] {
	return tuple5Projector[A, B, C, D, E]{}
}

func (tuple5Projector[A, B, C, D, E]) Decompose(s *Scope, whole *Uninit[Tuple5[A, B, C, D, E]]) Places5[A, B, C, D, E] {
	return Places5[A, B, C, D, E]{
		P0: Field(s, whole, func(t *Tuple5[A, B, C, D, E]) *A { return &t.V0 }),
		P1: Field(s, whole, func(t *Tuple5[A, B, C, D, E]) *B { return &t.V1 }),
		P2: Field(s, whole, func(t *Tuple5[A, B, C, D, E]) *C { return &t.V2 }),
		P3: Field(s, whole, func(t *Tuple5[A, B, C, D, E]) *D { return &t.V3 }),
		P4: Field(s, whole, func(t *Tuple5[A, B, C, D, E]) *E { return &t.V4 }),
	}
}

func (tuple5Projector[A, B, C, D, E]) Proofs(p Proofs5[A, B, C, D, E]) []Proof {
	return []Proof{p.P0, p.P1, p.P2, p.P3, p.P4}
}

// Tuple6 holds 6 values laid out in order.
type Tuple6[A, B, C, D, E, F any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
}

// Places6 holds the field places of a [Tuple6].
type Places6[A, B, C, D, E, F any] struct {
	P0 *Uninit[A]
	P1 *Uninit[B]
	P2 *Uninit[C]
	P3 *Uninit[D]
	P4 *Uninit[E]
	P5 *Uninit[F]
}

// Proofs6 holds the field proofs of a [Tuple6].
type Proofs6[A, B, C, D, E, F any] struct {
	P0 *Init[A]
	P1 *Init[B]
	P2 *Init[C]
	P3 *Init[D]
	P4 *Init[E]
	P5 *Init[F]
}

type tuple6Projector[A, B, C, D, E, F any] struct{}

// Project6 returns the projector of a [Tuple6] into its fields.
func Project6[A, B, C, D, E, F any]() Projector[Tuple6[A, B, C, D, E, F], Places6[A, B, C, D, E, F], Proofs6[A, B, C, D, E, F]] {
	return tuple6Projector[A, B, C, D, E, F]{}
}

func (tuple6Projector[A, B, C, D, E, F]) Decompose(s *Scope, whole *Uninit[Tuple6[A, B, C, D, E, F]]) Places6[A, B, C, D, E, F] {
	return Places6[A, B, C, D, E, F]{
		P0: Field(s, whole, func(t *Tuple6[A, B, C, D, E, F]) *A { return &t.V0 }),
		P1: Field(s, whole, func(t *Tuple6[A, B, C, D, E, F]) *B { return &t.V1 }),
		P2: Field(s, whole, func(t *Tuple6[A, B, C, D, E, F]) *C { return &t.V2 }),
		P3: Field(s, whole, func(t *Tuple6[A, B, C, D, E, F]) *D { return &t.V3 }),
		P4: Field(s, whole, func(t *Tuple6[A, B, C, D, E, F]) *E { return &t.V4 }),
		P5: Field(s, whole, func(t *Tuple6[A, B, C, D, E, F]) *F { return &t.V5 }),
	}
}

func (tuple6Projector[A, B, C, D, E, F]) Proofs(p Proofs6[A, B, C, D, E, F]) []Proof {
	return []Proof{p.P0, p.P1, p.P2, p.P3, p.P4, p.P5}
}

// Tuple7 holds 7 values laid out in order.
type Tuple7[A, B, C, D, E, F, G any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
}

// Places7 holds the field places of a [Tuple7].
type Places7[A, B, C, D, E, F, G any] struct {
	P0 *Uninit[A]
	P1 *Uninit[B]
	P2 *Uninit[C]
	P3 *Uninit[D]
	P4 *Uninit[E]
	P5 *Uninit[F]
	P6 *Uninit[G]
}

// Proofs7 holds the field proofs of a [Tuple7].
type Proofs7[A, B, C, D, E, F, G any] struct {
	P0 *Init[A]
	P1 *Init[B]
	P2 *Init[C]
	P3 *Init[D]
	P4 *Init[E]
	P5 *Init[F]
	P6 *Init[G]
}

type tuple7Projector[A, B, C, D, E, F, G any] struct{}

// Project7 returns the projector of a [Tuple7] into its fields.
func Project7[A, B, C, D, E, F, G any]() Projector[Tuple7[A, B, C, D, E, F, G], Places7[A, B, C, D, E, F, G], Proofs7[A, B, C, D, E, F, G]] {
	return tuple7Projector[A, B, C, D, E, F, G]{}
}

func (tuple7Projector[A, B, C, D, E, F, G]) Decompose(s *Scope, whole *Uninit[Tuple7[A, B, C, D, E, F, G]]) Places7[A, B, C, D, E, F, G] {
	return Places7[A, B, C, D, E, F, G]{
		P0: Field(s, whole, func(t *Tuple7[A, B, C, D, E, F, G]) *A { return &t.V0 }),
		P1: Field(s, whole, func(t *Tuple7[A, B, C, D, E, F, G]) *B { return &t.V1 }),
		P2: Field(s, whole, func(t *Tuple7[A, B, C, D, E, F, G]) *C { return &t.V2 }),
		P3: Field(s, whole, func(t *Tuple7[A, B, C, D, E, F, G]) *D { return &t.V3 }),
		P4: Field(s, whole, func(t *Tuple7[A, B, C, D, E, F, G]) *E { return &t.V4 }),
		P5: Field(s, whole, func(t *Tuple7[A, B, C, D, E, F, G]) *F { return &t.V5 }),
		P6: Field(s, whole, func(t *Tuple7[A, B, C, D, E, F, G]) *G { return &t.V6 }),
	}
}

func (tuple7Projector[A, B, C, D, E, F, G]) Proofs(p Proofs7[A, B, C, D, E, F, G]) []Proof {
	return []Proof{p.P0, p.P1, p.P2, p.P3, p.P4, p.P5, p.P6}
}

// Tuple8 holds 8 values laid out in order.
type Tuple8[A, B, C, D, E, F, G, H any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
	V4 E
	V5 F
	V6 G
	V7 H
}

// Places8 holds the field places of a [Tuple8].
type Places8[A, B, C, D, E, F, G, H any] struct {
	P0 *Uninit[A]
	P1 *Uninit[B]
	P2 *Uninit[C]
	P3 *Uninit[D]
	P4 *Uninit[E]
	P5 *Uninit[F]
	P6 *Uninit[G]
	P7 *Uninit[H]
}

// Proofs8 holds the field proofs of a [Tuple8].
type Proofs8[A, B, C, D, E, F, G, H any] struct {
	P0 *Init[A]
	P1 *Init[B]
	P2 *Init[C]
	P3 *Init[D]
	P4 *Init[E]
	P5 *Init[F]
	P6 *Init[G]
	P7 *Init[H]
}

type tuple8Projector[A, B, C, D, E, F, G, H any] struct{}

// Project8 returns the projector of a [Tuple8] into its fields.
func Project8[A, B, C, D, E, F, G, H any]() Projector[Tuple8[A, B, C, D, E, F, G, H], Places8[A, B, C, D, E, F, G, H], Proofs8[A, B, C, D, E, F, G, H]] {
	return tuple8Projector[A, B, C, D, E, F, G, H]{}
}

func (tuple8Projector[A, B, C, D, E, F, G, H]) Decompose(s *Scope, whole *Uninit[Tuple8[A, B, C, D, E, F, G, H]]) Places8[A, B, C, D, E, F, G, H] {
	return Places8[A, B, C, D, E, F, G, H]{
		P0: Field(s, whole, func(t *Tuple8[A, B, C, D, E, F, G, H]) *A { return &t.V0 }),
		P1: Field(s, whole, func(t *Tuple8[A, B, C, D, E, F, G, H]) *B { return &t.V1 }),
		P2: Field(s, whole, func(t *Tuple8[A, B, C, D, E, F, G, H]) *C { return &t.V2 }),
		P3: Field(s, whole, func(t *Tuple8[A, B, C, D, E, F, G, H]) *D { return &t.V3 }),
		P4: Field(s, whole, func(t *Tuple8[A, B, C, D, E, F, G, H]) *E { return &t.V4 }),
		P5: Field(s, whole, func(t *Tuple8[A, B, C, D, E, F, G, H]) *F { return &t.V5 }),
		P6: Field(s, whole, func(t *Tuple8[A, B, C, D, E, F, G, H]) *G { return &t.V6 }),
		P7: Field(s, whole, func(t *Tuple8[A, B, C, D, E, F, G, H]) *H { return &t.V7 }),
	}
}

func (tuple8Projector[A, B, C, D, E, F, G, H]) Proofs(p Proofs8[A, B, C, D, E, F, G, H]) []Proof {
	return []Proof{p.P0, p.P1, p.P2, p.P3, p.P4, p.P5, p.P6, p.P7}
}
