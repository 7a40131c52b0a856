// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

import "errors"

// Contract violations. Handles never return these; they panic with a
// [*ContractError] wrapping one of them, so a recovered value can be
// matched with [errors.Is].
var (
	// ErrConsumed reports use of a handle whose duty was already
	// transferred, leaked, dropped or moved out.
	ErrConsumed = errors.New("place: handle already consumed")

	// ErrScopeClosed reports use of a handle after the call that created
	// its scope returned.
	ErrScopeClosed = errors.New("place: handle used outside its scope")

	// ErrForeignProof reports a proof that does not belong to the place it
	// is claimed for.
	ErrForeignProof = errors.New("place: proof does not match place")

	// ErrIncompleteProjection reports a composition missing a field proof.
	ErrIncompleteProjection = errors.New("place: projection is incomplete")

	// ErrLayoutMismatch reports a decomposition that disagrees with the
	// aggregate's memory layout.
	ErrLayoutMismatch = errors.New("place: projection does not match layout")

	// ErrOutOfRange reports an arena capability outside its region.
	ErrOutOfRange = errors.New("place: offset out of range")

	// ErrLengthMismatch reports a sequence write of the wrong length.
	ErrLengthMismatch = errors.New("place: length mismatch")

	// ErrNilPlace reports a nil address wrapped as a place.
	ErrNilPlace = errors.New("place: nil place")
)

// ContractError is the panic value raised on a contract violation.
type ContractError struct {
	Op  string
	Err error
}

func (e *ContractError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *ContractError) Unwrap() error { return e.Err }

func violation(op string, err error) {
	panic(&ContractError{Op: op, Err: err})
}
