// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

import (
	"reflect"
	"sync/atomic"
	"unsafe"
)

// Scope bounds the validity of the places handed out by one call. Once the
// call that opened it returns, every place and proof bound to the scope
// panics with [ErrScopeClosed] on use, so field places cannot outlive the
// point where their aggregate is considered whole.
//
// During a projection the scope also records every field place handed out,
// which is what composition checks the returned proofs against.
type Scope struct {
	closed atomic.Bool
	base   uintptr
	size   uintptr
	typ    reflect.Type
	ledger *[]entry
}

// entry is a field place recorded by a scope.
type entry struct {
	off   uintptr
	typ   reflect.Type
	place unwinder
}

type unwinder interface {
	unwind()
}

// openScope opens a scope for a projection of whole. A nil whole opens a
// scope that only bounds lifetimes.
func openScope[T any](whole *T) *Scope {
	s := &Scope{}
	if whole != nil {
		s.base = uintptr(unsafe.Pointer(whole))
		s.size = unsafe.Sizeof(*whole)
		s.typ = reflect.TypeFor[T]()
	}
	return s
}

// Alive reports whether the scope is still open.
func (s *Scope) Alive() bool { return !s.closed.Load() }

// check panics if s is closed. A nil scope never closes.
func (s *Scope) check(op string) {
	if s != nil && s.closed.Load() {
		violation(op, ErrScopeClosed)
	}
}

func (s *Scope) track(p unwinder) {
	s.record(entry{place: p})
}

func (s *Scope) record(e entry) {
	if s.ledger == nil {
		s.ledger = acquireLedger()
	}
	*s.ledger = append(*s.ledger, e)
}

func (s *Scope) entries() []entry {
	if s.ledger == nil {
		return nil
	}
	return *s.ledger
}

// close closes s. With unwind set, values proven for recorded places and
// still owned by their proofs are destroyed in recording order.
func (s *Scope) close(unwind bool) {
	s.closed.Store(true)
	if unwind {
		for _, e := range s.entries() {
			e.place.unwind()
		}
	}
	if s.ledger != nil {
		releaseLedger(s.ledger)
		s.ledger = nil
	}
}

// Field projects the field of whole located by addr into its own place.
//
// addr must only compute the address of a field of its argument; it must
// not read or write through it. s must be the scope passed to the
// projection of whole. Each field may be projected once.
func Field[T, F any](s *Scope, whole *Uninit[T], addr func(*T) *F) *Uninit[F] {
	const op = "Field"
	s.check(op)
	whole.usable(op)
	if s.typ == nil || uintptr(unsafe.Pointer(whole.ptr)) != s.base {
		violation(op, ErrForeignProof)
	}
	fp := addr(whole.ptr)
	if fp == nil {
		violation(op, ErrNilPlace)
	}
	var zero F
	size := unsafe.Sizeof(zero)
	at := uintptr(unsafe.Pointer(fp))
	if at < s.base || at-s.base > s.size || s.size-(at-s.base) < size {
		violation(op, ErrLayoutMismatch)
	}
	off := at - s.base
	typ := reflect.TypeFor[F]()
	for _, e := range s.entries() {
		if size > 0 && e.off == off && e.typ == typ {
			violation(op, ErrLayoutMismatch)
		}
	}
	u := newUninit(fp, s, whole.tr)
	s.record(entry{off: off, typ: typ, place: u})
	return u
}

// compose folds proofs into a proof for whole. Every recorded field place
// must be matched by exactly one live proof produced from it.
func compose[T any](op string, s *Scope, whole *Uninit[T], proofs []Proof) *Init[T] {
	ents := s.entries()
	if len(proofs) != len(ents) {
		violation(op, ErrIncompleteProjection)
	}
	seen := make([]bool, len(ents))
	infos := make([]proofInfo, len(proofs))
	for k, p := range proofs {
		if p == nil {
			violation(op, ErrIncompleteProjection)
		}
		info := p.proof()
		if info.d == nil {
			violation(op, ErrIncompleteProjection)
		}
		info.d.check(op)
		if info.scope != s {
			violation(op, ErrForeignProof)
		}
		j := matchEntry(ents, info.src, k)
		if j < 0 || seen[j] {
			violation(op, ErrForeignProof)
		}
		seen[j] = true
		infos[k] = info
	}
	checkLayout(op, s.typ, ents)
	for _, info := range infos {
		info.d.leave(op, disarmed)
	}
	i := whole.AssumeValid()
	emit[T](whole.tr, EventCompose, len(proofs))
	return i
}

// matchEntry returns the index of the entry recorded for src, trying the
// positional hint first.
func matchEntry(ents []entry, src any, hint int) int {
	if hint < len(ents) && any(ents[hint].place) == src {
		return hint
	}
	for j := range ents {
		if any(ents[j].place) == src {
			return j
		}
	}
	return -1
}
