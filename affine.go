// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

import (
	"sync/atomic"
)

// Duty states of a handle. A handle starts in owns and leaves it exactly
// once: to disarmed when its duty moves elsewhere (transfer, leak, fold
// into a composite proof), or to consumed when it discharges the duty
// itself (drop, move-out, write).
const (
	owns uint32 = iota
	disarmed
	consumed
)

// duty is the affine state tag shared by every handle kind.
type duty struct {
	state atomic.Uint32
}

// live reports whether the handle still owns its duty.
func (d *duty) live() bool { return d.state.Load() == owns }

// check panics unless the handle still owns its duty.
func (d *duty) check(op string) {
	if d.state.Load() != owns {
		violation(op, ErrConsumed)
	}
}

// leave transitions owns → to. Panics if the handle already left owns.
func (d *duty) leave(op string, to uint32) {
	if !d.state.CompareAndSwap(owns, to) {
		violation(op, ErrConsumed)
	}
}

// tryLeave is the non-panicking variant of leave.
func (d *duty) tryLeave(to uint32) bool {
	return d.state.CompareAndSwap(owns, to)
}
