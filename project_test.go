// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/place"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair = place.Tuple2[tracked, tracked]

func TestProjectionOutOfOrder(t *testing.T) {
	var log dropLog
	var slot place.Slot[pair]

	own := place.Build(&slot, place.FieldFn(place.Project2[tracked, tracked](),
		func(_ *place.Scope, f place.Places2[tracked, tracked]) place.Proofs2[tracked, tracked] {
			second := f.P1.Write(tracked{id: 1, log: &log})
			first := f.P0.Write(tracked{id: 0, log: &log})
			return place.Proofs2[tracked, tracked]{P0: first, P1: second}
		}))

	assert.Equal(t, 0, own.Get().V0.id)
	assert.Equal(t, 1, own.Get().V1.id)
	assert.Empty(t, log.ids)

	own.Drop()
	assert.Equal(t, 1, log.count(0))
	assert.Equal(t, 1, log.count(1))
	assert.Len(t, log.ids, 2)
}

func TestProjectionMissingField(t *testing.T) {
	var log dropLog
	var slot place.Slot[pair]

	requireViolation(t, place.ErrIncompleteProjection, func() {
		place.Build(&slot, place.FieldFn(place.Project2[tracked, tracked](),
			func(_ *place.Scope, f place.Places2[tracked, tracked]) place.Proofs2[tracked, tracked] {
				return place.Proofs2[tracked, tracked]{P0: f.P0.Write(tracked{id: 0, log: &log})}
			}))
	})
	// The orphaned field proof is destroyed while unwinding.
	assert.Equal(t, []int{0}, log.ids)
}

func TestProjectionSwappedProofs(t *testing.T) {
	var slot place.Slot[place.Tuple2[int, int]]

	requireViolation(t, place.ErrForeignProof, func() {
		place.Build(&slot, place.FieldFn(place.Project2[int, int](),
			func(_ *place.Scope, f place.Places2[int, int]) place.Proofs2[int, int] {
				a := f.P0.Write(1)
				return place.Proofs2[int, int]{P0: a, P1: a}
			}))
	})
}

func TestProjectionRejectsOutsideProof(t *testing.T) {
	var slot place.Slot[place.Tuple2[int, int]]
	var x int
	outside := place.UninitFromRaw(&x).Write(5)

	requireViolation(t, place.ErrForeignProof, func() {
		place.Build(&slot, place.FieldFn(place.Project2[int, int](),
			func(_ *place.Scope, f place.Places2[int, int]) place.Proofs2[int, int] {
				return place.Proofs2[int, int]{P0: outside, P1: f.P1.Write(2)}
			}))
	})
}

func TestProjectionFieldPlacesDieWithScope(t *testing.T) {
	var slot place.Slot[place.Tuple2[int, int]]
	var kept place.Places2[int, int]
	var scope *place.Scope

	v := panicValue(func() {
		place.Build(&slot, place.FieldFn(place.Project2[int, int](),
			func(s *place.Scope, f place.Places2[int, int]) place.Proofs2[int, int] {
				kept, scope = f, s
				assert.True(t, s.Alive())
				panic("abort")
			}))
	})
	require.Equal(t, "abort", v)
	assert.False(t, scope.Alive())
	requireViolation(t, place.ErrScopeClosed, func() { kept.P0.Write(1) })
}

func TestProjectionUnwindDestroysWrittenFields(t *testing.T) {
	var log dropLog
	var slot place.Slot[place.Tuple3[tracked, tracked, tracked]]

	v := panicValue(func() {
		place.Build(&slot, place.FieldFn(place.Project3[tracked, tracked, tracked](),
			func(_ *place.Scope, f place.Places3[tracked, tracked, tracked]) place.Proofs3[tracked, tracked, tracked] {
				f.P2.Write(tracked{id: 2, log: &log})
				f.P0.Write(tracked{id: 0, log: &log})
				panic("mid-projection")
			}))
	})
	assert.Equal(t, "mid-projection", v)
	assert.ElementsMatch(t, []int{0, 2}, log.ids)
	assert.Zero(t, log.count(1))
}

func TestProjectionNested(t *testing.T) {
	type inner = place.Tuple2[int, string]
	type outer = place.Tuple2[inner, tracked]
	var log dropLog
	var slot place.Slot[outer]

	own := place.Build(&slot, place.FieldFn(place.Project2[inner, tracked](),
		func(_ *place.Scope, f place.Places2[inner, tracked]) place.Proofs2[inner, tracked] {
			in := f.P0.WriteWith(place.FieldFn(place.Project2[int, string](),
				func(_ *place.Scope, g place.Places2[int, string]) place.Proofs2[int, string] {
					return place.Proofs2[int, string]{P0: g.P0.Write(1), P1: g.P1.Write("x")}
				}))
			return place.Proofs2[inner, tracked]{P0: in, P1: f.P1.Write(tracked{id: 3, log: &log})}
		}))

	assert.Equal(t, outer{V0: inner{V0: 1, V1: "x"}, V1: tracked{id: 3, log: &log}}, *own.Get())
	own.Drop()
	assert.Equal(t, []int{3}, log.ids)
}

func TestProjectionWideTuple(t *testing.T) {
	type wide = place.Tuple8[int, int8, int16, int32, int64, string, bool, float64]
	var slot place.Slot[wide]

	own := place.Build(&slot, place.FieldFn(place.Project8[int, int8, int16, int32, int64, string, bool, float64](),
		func(_ *place.Scope, f place.Places8[int, int8, int16, int32, int64, string, bool, float64]) place.Proofs8[int, int8, int16, int32, int64, string, bool, float64] {
			return place.Proofs8[int, int8, int16, int32, int64, string, bool, float64]{
				P7: f.P7.Write(7.5),
				P6: f.P6.Write(true),
				P5: f.P5.Write("five"),
				P4: f.P4.Write(4),
				P3: f.P3.Write(3),
				P2: f.P2.Write(2),
				P1: f.P1.Write(1),
				P0: f.P0.Write(0),
			}
		}))
	assert.Equal(t, wide{0, 1, 2, 3, 4, "five", true, 7.5}, own.MoveOut())
}

func TestProjectArray(t *testing.T) {
	var slot place.Slot[[4]int]

	own := place.Build(&slot, place.FieldFn(place.ProjectArray[int, [4]int](),
		func(_ *place.Scope, places place.ArrayPlaces[int]) place.ArrayProofs[int] {
			require.Len(t, places, 4)
			proofs := make(place.ArrayProofs[int], len(places))
			for i := len(places) - 1; i >= 0; i-- {
				proofs[i] = places[i].Write(i * i)
			}
			return proofs
		}))
	assert.Equal(t, [4]int{0, 1, 4, 9}, *own.Get())
}

func TestProjectArrayShortProofs(t *testing.T) {
	var slot place.Slot[[3]int]
	requireViolation(t, place.ErrIncompleteProjection, func() {
		place.Build(&slot, place.FieldFn(place.ProjectArray[int, [3]int](),
			func(_ *place.Scope, places place.ArrayPlaces[int]) place.ArrayProofs[int] {
				return place.ArrayProofs[int]{places[0].Write(1), places[1].Write(2)}
			}))
	})
}

func TestProjectArrayAnyLength(t *testing.T) {
	var slot place.Slot[[20]string]

	own := place.Build(&slot, place.FieldFn(place.ProjectArray[string, [20]string](),
		func(_ *place.Scope, places place.ArrayPlaces[string]) place.ArrayProofs[string] {
			require.Len(t, places, 20)
			proofs := make(place.ArrayProofs[string], len(places))
			for i := len(places) - 1; i >= 0; i-- {
				proofs[i] = places[i].Write(strconv.Itoa(i))
			}
			return proofs
		}))
	got := own.MoveOut()
	for i, v := range got {
		assert.Equal(t, strconv.Itoa(i), v)
	}
}

func TestProjectArrayAnyLengthUnwind(t *testing.T) {
	var log dropLog
	var slot place.Slot[[100]tracked]

	v := panicValue(func() {
		place.Build(&slot, place.FieldFn(place.ProjectArray[tracked, [100]tracked](),
			func(_ *place.Scope, places place.ArrayPlaces[tracked]) place.ArrayProofs[tracked] {
				for i := 99; i >= 90; i-- {
					places[i].Write(tracked{id: i, log: &log})
				}
				panic(errElement)
			}))
	})
	assert.Equal(t, errElement, v)
	assert.ElementsMatch(t, []int{90, 91, 92, 93, 94, 95, 96, 97, 98, 99}, log.ids)
	assert.Equal(t, tracked{}, slot.Place()[0])
}

func TestProjectArrayRejectsNonArray(t *testing.T) {
	requireViolation(t, place.ErrLayoutMismatch, func() { place.ProjectArray[int, [2]string]() })
	requireViolation(t, place.ErrLayoutMismatch, func() { place.ProjectArray[int, []int]() })
}

func TestProjectionEveryArity(t *testing.T) {
	t.Run("4", func(t *testing.T) {
		type tuple = place.Tuple4[tracked, int, int, int]
		var log dropLog
		var slot place.Slot[tuple]
		own := place.Build(&slot, place.FieldFn(place.Project4[tracked, int, int, int](),
			func(_ *place.Scope, f place.Places4[tracked, int, int, int]) place.Proofs4[tracked, int, int, int] {
				p3 := f.P3.Write(3)
				p1 := f.P1.Write(1)
				p0 := f.P0.Write(tracked{id: 4, log: &log})
				p2 := f.P2.Write(2)
				return place.Proofs4[tracked, int, int, int]{P0: p0, P1: p1, P2: p2, P3: p3}
			}))
		assert.Equal(t, tuple{tracked{id: 4, log: &log}, 1, 2, 3}, *own.Get())
		own.Drop()
		assert.Equal(t, []int{4}, log.ids)
	})
	t.Run("5", func(t *testing.T) {
		type tuple = place.Tuple5[tracked, int, int, int, int]
		var log dropLog
		var slot place.Slot[tuple]
		own := place.Build(&slot, place.FieldFn(place.Project5[tracked, int, int, int, int](),
			func(_ *place.Scope, f place.Places5[tracked, int, int, int, int]) place.Proofs5[tracked, int, int, int, int] {
				p4 := f.P4.Write(4)
				p2 := f.P2.Write(2)
				p0 := f.P0.Write(tracked{id: 5, log: &log})
				p3 := f.P3.Write(3)
				p1 := f.P1.Write(1)
				return place.Proofs5[tracked, int, int, int, int]{P0: p0, P1: p1, P2: p2, P3: p3, P4: p4}
			}))
		assert.Equal(t, tuple{tracked{id: 5, log: &log}, 1, 2, 3, 4}, *own.Get())
		own.Drop()
		assert.Equal(t, []int{5}, log.ids)
	})
	t.Run("6", func(t *testing.T) {
		type tuple = place.Tuple6[tracked, int, int, int, int, int]
		var log dropLog
		var slot place.Slot[tuple]
		own := place.Build(&slot, place.FieldFn(place.Project6[tracked, int, int, int, int, int](),
			func(_ *place.Scope, f place.Places6[tracked, int, int, int, int, int]) place.Proofs6[tracked, int, int, int, int, int] {
				p5 := f.P5.Write(5)
				p1 := f.P1.Write(1)
				p3 := f.P3.Write(3)
				p0 := f.P0.Write(tracked{id: 6, log: &log})
				p4 := f.P4.Write(4)
				p2 := f.P2.Write(2)
				return place.Proofs6[tracked, int, int, int, int, int]{P0: p0, P1: p1, P2: p2, P3: p3, P4: p4, P5: p5}
			}))
		assert.Equal(t, tuple{tracked{id: 6, log: &log}, 1, 2, 3, 4, 5}, *own.Get())
		own.Drop()
		assert.Equal(t, []int{6}, log.ids)
	})
	t.Run("7", func(t *testing.T) {
		type tuple = place.Tuple7[tracked, int, int, int, int, int, int]
		var log dropLog
		var slot place.Slot[tuple]
		own := place.Build(&slot, place.FieldFn(place.Project7[tracked, int, int, int, int, int, int](),
			func(_ *place.Scope, f place.Places7[tracked, int, int, int, int, int, int]) place.Proofs7[tracked, int, int, int, int, int, int] {
				p6 := f.P6.Write(6)
				p0 := f.P0.Write(tracked{id: 7, log: &log})
				p4 := f.P4.Write(4)
				p2 := f.P2.Write(2)
				p5 := f.P5.Write(5)
				p3 := f.P3.Write(3)
				p1 := f.P1.Write(1)
				return place.Proofs7[tracked, int, int, int, int, int, int]{P0: p0, P1: p1, P2: p2, P3: p3, P4: p4, P5: p5, P6: p6}
			}))
		assert.Equal(t, tuple{tracked{id: 7, log: &log}, 1, 2, 3, 4, 5, 6}, *own.Get())
		own.Drop()
		assert.Equal(t, []int{7}, log.ids)
	})
}

// account is a user aggregate with a hand-written projector, the kind of
// code a decomposition generator emits.
type account struct {
	Name    string
	Balance int64
	Owner   tracked
}

type accountPlaces struct {
	Name    *place.Uninit[string]
	Balance *place.Uninit[int64]
	Owner   *place.Uninit[tracked]
}

type accountProofs struct {
	Name    *place.Init[string]
	Balance *place.Init[int64]
	Owner   *place.Init[tracked]
}

type accountProjector struct{ skipOwner bool }

func (p accountProjector) Decompose(s *place.Scope, whole *place.Uninit[account]) accountPlaces {
	out := accountPlaces{
		Name:    place.Field(s, whole, func(a *account) *string { return &a.Name }),
		Balance: place.Field(s, whole, func(a *account) *int64 { return &a.Balance }),
	}
	if !p.skipOwner {
		out.Owner = place.Field(s, whole, func(a *account) *tracked { return &a.Owner })
	}
	return out
}

func (p accountProjector) Proofs(i accountProofs) []place.Proof {
	if p.skipOwner {
		return []place.Proof{i.Name, i.Balance}
	}
	return []place.Proof{i.Name, i.Balance, i.Owner}
}

func TestUserAggregateProjection(t *testing.T) {
	var log dropLog
	var slot place.Slot[account]

	own := place.Build(&slot, place.FieldFn[account, accountPlaces, accountProofs](accountProjector{},
		func(_ *place.Scope, f accountPlaces) accountProofs {
			return accountProofs{
				Owner:   f.Owner.Write(tracked{id: 8, log: &log}),
				Balance: f.Balance.Write(100),
				Name:    f.Name.Write("alice"),
			}
		}))
	assert.Equal(t, "alice", own.Get().Name)
	assert.Equal(t, int64(100), own.Get().Balance)

	own.Drop()
	assert.Equal(t, []int{8}, log.ids)
}

func TestUserAggregateOmittedFieldIsLayoutMismatch(t *testing.T) {
	var slot place.Slot[account]
	requireViolation(t, place.ErrLayoutMismatch, func() {
		place.Build(&slot, place.FieldFn[account, accountPlaces, accountProofs](accountProjector{skipOwner: true},
			func(_ *place.Scope, f accountPlaces) accountProofs {
				return accountProofs{Name: f.Name.Write("bob"), Balance: f.Balance.Write(1)}
			}))
	})
}

func TestFieldRejectsDuplicate(t *testing.T) {
	var slot place.Slot[place.Tuple2[string, string]]
	requireViolation(t, place.ErrLayoutMismatch, func() {
		place.Build(&slot, place.FieldFn[place.Tuple2[string, string], place.Places2[string, string], place.Proofs2[string, string]](strayProjector{},
			func(_ *place.Scope, f place.Places2[string, string]) place.Proofs2[string, string] {
				t.Fatal("decomposition should have failed")
				return place.Proofs2[string, string]{}
			}))
	})
}

func TestFieldOutsideAggregate(t *testing.T) {
	var slot place.Slot[place.Tuple2[string, string]]
	var outside string

	requireViolation(t, place.ErrLayoutMismatch, func() {
		place.Build(&slot, place.FieldFn[place.Tuple2[string, string], place.Places2[string, string], place.Proofs2[string, string]](strayProjector{stray: &outside},
			func(_ *place.Scope, f place.Places2[string, string]) place.Proofs2[string, string] {
				t.Fatal("decomposition should have failed")
				return place.Proofs2[string, string]{}
			}))
	})
}

func TestFieldScopeClosed(t *testing.T) {
	var slot place.Slot[place.Tuple2[int, int]]
	var scope *place.Scope
	var whole *place.Uninit[place.Tuple2[int, int]]

	own := place.Build(&slot, func(u *place.Uninit[place.Tuple2[int, int]]) *place.Init[place.Tuple2[int, int]] {
		whole = u
		return place.Construct(u, place.Project2[int, int](),
			func(s *place.Scope, f place.Places2[int, int]) place.Proofs2[int, int] {
				scope = s
				return place.Proofs2[int, int]{P0: f.P0.Write(1), P1: f.P1.Write(2)}
			})
	})
	defer own.Drop()

	requireViolation(t, place.ErrScopeClosed, func() {
		place.Field(scope, whole, func(p *place.Tuple2[int, int]) *int { return &p.V0 })
	})
}

// strayProjector projects the first field twice, or an address outside the
// aggregate when stray is set.
type strayProjector struct{ stray *string }

func (p strayProjector) Decompose(s *place.Scope, whole *place.Uninit[place.Tuple2[string, string]]) place.Places2[string, string] {
	first := func(t *place.Tuple2[string, string]) *string { return &t.V0 }
	second := first
	if p.stray != nil {
		second = func(*place.Tuple2[string, string]) *string { return p.stray }
	}
	return place.Places2[string, string]{
		P0: place.Field(s, whole, first),
		P1: place.Field(s, whole, second),
	}
}

func (strayProjector) Proofs(p place.Proofs2[string, string]) []place.Proof {
	return []place.Proof{p.P0, p.P1}
}
