// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package place provides placement construction in Go: building a value
// directly inside caller-owned storage instead of building it elsewhere and
// copying it into position.
//
// A place starts as an [Uninit] handle, which offers no typed read of its
// memory. A constructor turns it into an [Init] proof, which is the only
// evidence that the memory now holds a valid value and the exclusive owner
// of that value. [Build] runs a constructor against a [Storage] and absorbs
// the proof into an [Own] handle.
//
// # Design Philosophy
//
// place provides:
//   - Handles with an explicit duty tag: each handle owns its value until
//     exactly one terminal operation disarms or consumes it
//   - Scopes bounding how long field places stay usable
//   - Runtime-checked projections: an aggregate is proven whole only by one
//     proof per field, each produced from that field's own place
//
// Contract violations (reusing a consumed handle, using a place outside its
// scope, composing an incomplete projection) panic with a [*ContractError].
// Panics raised by caller constructors propagate unchanged after partially
// built values have been destroyed.
//
// # Storage
//
//   - [Storage]: memory for one T, [Slot] is the plain implementation
//   - [SliceStorage]: memory for a run of T, [Slots] (fixed) and [Run] (growable)
//   - [Arena]: a region of slots addressed by offset; [Arena.At] and
//     [Arena.Span] are bounds-checked capabilities carrying a [Tracer]
//
// # Places and Proofs
//
//   - [Uninit.Write]: store a value, yielding the proof
//   - [Uninit.WriteWith]: run a [Ctor]
//   - [Uninit.AssumeValid]: unchecked promotion, the single trust boundary
//   - [Init.Get], [Init.Drop], [Init.Pin]
//   - [UninitSlice], [InitSlice]: the same for runs of places
//
// # Owning Handles
//
//   - [Build], [BuildSlice]: run a constructor against storage
//   - [FromRaw]: adopt a pointer already holding an owned value
//   - [Own.Drop]: destroy the value once
//   - [Own.MoveOut]: take the value out without destroying it
//   - [Own.Leak]: disarm and return the address, e.g. to feed [MoveFrom]
//   - [Own.Pin]: forbid relocation
//
// Destruction runs [Dropper] on the value (or on its nested fields) and
// clears the slot. Storage lifetime is never affected.
//
// # Projection
//
//   - [Projector]: two-way contract decomposing a place into field places
//     and composing field proofs back
//   - [Field]: project one field, recorded by the [Scope]
//   - [Construct]: run a per-field function and compose its proofs
//   - [Project2] … [Project8]: projectors for [Tuple2] … [Tuple8]
//   - [ProjectArray]: projector for arrays of any length
//
// # Constructors
//
//   - [Value]: write a value
//   - [MoveFrom]: relocate an owned value
//   - [FieldFn]: field-by-field construction through a projector
//   - [FillArray], [FillSlice]: per-index construction with rollback on panic
//
// # Tracing
//
// Handles derived from an [Arena] report lifecycle [Event]s to its
// [Tracer]. [ZapTracer] logs them through zap; see [WithLogger].
//
// # Example
//
//	var slot place.Slot[place.Tuple2[int, string]]
//	own := place.Build(&slot, place.FieldFn(place.Project2[int, string](),
//		func(_ *place.Scope, f place.Places2[int, string]) place.Proofs2[int, string] {
//			s := f.P1.Write("answer")
//			n := f.P0.Write(42)
//			return place.Proofs2[int, string]{P0: n, P1: s}
//		}))
//	defer own.Drop()
//	// own.Get().V0 == 42
package place
