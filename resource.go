// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

import (
	"reflect"
	"sync"
	"unsafe"
)

// Dropper is implemented by values that need a destructor. A handle owning
// a value runs its destructor exactly once when it discharges its duty;
// afterwards the slot is reset to the zero value so nothing reads the
// destroyed value.
//
// Drop is looked up on *T, so both value and pointer receivers apply. A
// type implementing Dropper is responsible for its own fields. Structs and
// arrays that do not implement it are destroyed field by field, in order,
// running Drop on every nested field that does.
//
// A handle whose T is a pointer or interface owns what it refers to: Drop
// runs on the stored value if it is non-nil and implements Dropper. Pointer
// and interface fields nested in a struct or array are references and are
// left alone.
type Dropper interface {
	Drop()
}

var dropperType = reflect.TypeFor[Dropper]()

// dropPlans caches, per type, whether destroying a value runs any Drop.
var dropPlans sync.Map // reflect.Type → bool

func needsDrop(t reflect.Type) bool {
	if v, ok := dropPlans.Load(t); ok {
		return v.(bool)
	}
	need := computeNeedsDrop(t)
	dropPlans.Store(t, need)
	return need
}

func computeNeedsDrop(t reflect.Type) bool {
	if reflect.PointerTo(t).Implements(dropperType) {
		return true
	}
	switch t.Kind() {
	case reflect.Struct:
		for i := range t.NumField() {
			if needsDrop(t.Field(i).Type) {
				return true
			}
		}
	case reflect.Array:
		return t.Len() > 0 && needsDrop(t.Elem())
	}
	return false
}

// holdsDropper reports whether a stored value of type t is a reference
// that may itself carry a Dropper.
func holdsDropper(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Pointer:
		return t.Implements(dropperType)
	}
	return false
}

// heldDropper returns v as a Dropper unless it is nil or does not implement it.
func heldDropper(v any) (Dropper, bool) {
	d, ok := v.(Dropper)
	if !ok {
		return nil, false
	}
	if rv := reflect.ValueOf(d); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}
	return d, true
}

// destroy runs the destructor of the value at p and clears the slot.
func destroy[T any](p *T) {
	t := reflect.TypeFor[T]()
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	} else if holdsDropper(t) {
		if d, ok := heldDropper(*p); ok {
			d.Drop()
		}
	} else if needsDrop(t) {
		dropFields(reflect.ValueOf(p).Elem())
	}
	var zero T
	*p = zero
}

// dropFields runs the destructors nested in the addressable struct or array v.
func dropFields(v reflect.Value) {
	n := 0
	field := v.Field
	switch v.Kind() {
	case reflect.Struct:
		n = v.NumField()
	case reflect.Array:
		n, field = v.Len(), v.Index
	}
	for i := range n {
		f := field(i)
		if !needsDrop(f.Type()) {
			continue
		}
		// Unexported fields cannot be reached through Interface; go
		// through their address instead.
		fp := reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr()))
		if d, ok := fp.Interface().(Dropper); ok {
			d.Drop()
			continue
		}
		dropFields(f)
	}
}

// destroyAll destroys s[0], s[1], ... in order.
func destroyAll[T any](s []T) {
	if t := reflect.TypeFor[T](); !needsDrop(t) && !holdsDropper(t) {
		clear(s)
		return
	}
	for i := range s {
		destroy(&s[i])
	}
}

// rollback guards a partially filled sequence. While armed, release
// destroys exactly base[:count] in order and nothing beyond count. The
// element in progress, if its constructor already proved it, is destroyed
// first. The loop that owns the guard disarms it once every element is done.
type rollback[T any] struct {
	base  []T
	count int
	cur   *Uninit[T]
	armed bool
	tr    tracing
}

func newRollback[T any](base []T, tr tracing) *rollback[T] {
	return &rollback[T]{base: base, armed: true, tr: tr}
}

// begin marks u as the element in progress.
func (g *rollback[T]) begin(u *Uninit[T]) { g.cur = u }

// advance confirms the element in progress as complete.
func (g *rollback[T]) advance() {
	g.cur = nil
	g.count++
}

// disarm turns release into a no-op.
func (g *rollback[T]) disarm() { g.armed = false }

// release is deferred by the fill loop. It does not recover: an abnormal
// exit continues to the caller after cleanup.
func (g *rollback[T]) release() {
	if !g.armed {
		return
	}
	g.armed = false
	if g.cur != nil {
		g.cur.unwind()
	}
	destroyAll(g.base[:g.count])
	emit[T](g.tr, EventRollback, g.count)
}
