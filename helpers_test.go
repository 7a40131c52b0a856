// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/place"
	"github.com/stretchr/testify/require"
)

// dropLog records destructor runs by id.
type dropLog struct {
	ids []int
}

func (l *dropLog) count(id int) int {
	n := 0
	for _, x := range l.ids {
		if x == id {
			n++
		}
	}
	return n
}

// tracked logs its id when destroyed.
type tracked struct {
	id  int
	log *dropLog
}

func (t *tracked) Drop() { t.log.ids = append(t.log.ids, t.id) }

// buffer is a heap-backed value counting its destructor runs.
type buffer struct {
	data  []byte
	drops *int
}

func (b *buffer) Drop() { *b.drops++ }

// requireViolation runs fn and requires it to panic with a contract error
// wrapping want.
func requireViolation(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, want)
		var ce *place.ContractError
		require.True(t, errors.As(err, &ce))
	}()
	fn()
}

// panicValue runs fn and returns what it panicked with.
func panicValue(fn func()) (v any) {
	defer func() { v = recover() }()
	fn()
	return nil
}
