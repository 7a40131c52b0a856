// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package place

import "sync"

// Ledger pool for projection scopes. A ledger is only referenced by its
// scope; close releases it after zeroing every entry so pooled ledgers do
// not keep places reachable.

const maxPooledLedger = 64

var ledgerPool = sync.Pool{New: func() any {
	l := make([]entry, 0, 8)
	return &l
}}

func acquireLedger() *[]entry {
	return ledgerPool.Get().(*[]entry)
}

func releaseLedger(l *[]entry) {
	if cap(*l) > maxPooledLedger {
		return
	}
	clear(*l)
	*l = (*l)[:0]
	ledgerPool.Put(l)
}
