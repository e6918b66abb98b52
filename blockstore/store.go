// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockstore - per address block history
//
// every address has an ordered history of the blocks that mention
// it, the most recent being the one that holds its current balance
// and sequence
package blockstore

import (
	"github.com/mu-coin/mucoind/address"
	"github.com/mu-coin/mucoind/transaction"
)

// Store - the history operations needed to validate and apply a block
type Store interface {
	// Latest - most recently inserted block for an address, nil if none
	Latest(address.Address) (*transaction.Block, error)

	// Insert - append a block to the history of an address
	Insert(address.Address, *transaction.Block) error
}

// Batcher - a store that can append one block to several histories
// as a single write
type Batcher interface {
	InsertBatch([]address.Address, *transaction.Block) error
}

// BatchStore - a Store with atomic multi-address insert
type BatchStore interface {
	Store
	Batcher
}
