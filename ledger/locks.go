// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sort"
	"sync"

	"github.com/mu-coin/mucoind/address"
)

type addressLock struct {
	sync.Mutex
	references int
}

// per address mutexes, entries exist only while referenced
type lockTable struct {
	sync.Mutex
	locks map[address.Address]*addressLock
}

func newLockTable() *lockTable {
	return &lockTable{
		locks: make(map[address.Address]*addressLock),
	}
}

// sortAddresses - ascending byte order, the only order locks are taken in
func sortAddresses(addresses []address.Address) []address.Address {
	sorted := make([]address.Address, len(addresses))
	copy(sorted, addresses)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})
	return sorted
}

// hasDuplicate - sorted input only
func hasDuplicate(sorted []address.Address) bool {
	for i := 1; i < len(sorted); i += 1 {
		if sorted[i-1] == sorted[i] {
			return true
		}
	}
	return false
}

// acquire - lock every address, input must be sorted without duplicates
func (t *lockTable) acquire(sorted []address.Address) {
	for _, a := range sorted {
		t.Lock()
		l, ok := t.locks[a]
		if !ok {
			l = &addressLock{}
			t.locks[a] = l
		}
		l.references += 1
		t.Unlock()

		l.Lock()
	}
}

// release - unlock in reverse order
func (t *lockTable) release(sorted []address.Address) {
	for i := len(sorted) - 1; i >= 0; i -= 1 {
		a := sorted[i]

		t.Lock()
		l := t.locks[a]
		l.Unlock()
		l.references -= 1
		if 0 == l.references {
			delete(t.locks, a)
		}
		t.Unlock()
	}
}

// size - number of addresses currently locked or waited on
func (t *lockTable) size() int {
	t.Lock()
	defer t.Unlock()
	return len(t.locks)
}
