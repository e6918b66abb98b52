// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage


// Transaction - a single batch of writes across pools
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

// TransactionData - the Transaction over an Access
type TransactionData struct {
	dataAccess Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		dataAccess: access,
	}
}

func (t *TransactionData) Begin() error {
	return t.dataAccess.Begin()
}

func (t *TransactionData) Put(p *PoolHandle, key []byte, value []byte) {
	p.put(key, value)
}

func (t *TransactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	p.putN(key, value)
}

func (t *TransactionData) Delete(p *PoolHandle, key []byte) {
	p.remove(key)
}

func (t *TransactionData) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

func (t *TransactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}

func (t *TransactionData) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}

func (t *TransactionData) InUse() bool {
	return t.dataAccess.InUse()
}

func (t *TransactionData) Commit() error {
	return t.dataAccess.Commit()
}

func (t *TransactionData) Abort() {
	t.dataAccess.Abort()
}
