// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockstore

import (
	"sync"

	"github.com/mu-coin/mucoind/address"
	"github.com/mu-coin/mucoind/transaction"
)

// Memory - in-memory store, contents are lost on exit
type Memory struct {
	sync.RWMutex
	history map[address.Address][]*transaction.Block
}

// NewMemory - create an empty store
func NewMemory() *Memory {
	return &Memory{
		history: make(map[address.Address][]*transaction.Block),
	}
}

// Latest - copy of the last block inserted for the address
func (m *Memory) Latest(a address.Address) (*transaction.Block, error) {
	m.RLock()
	defer m.RUnlock()

	blocks := m.history[a]
	if 0 == len(blocks) {
		return nil, nil
	}
	return blocks[len(blocks)-1].Copy(), nil
}

// Insert - append a copy of the block
func (m *Memory) Insert(a address.Address, block *transaction.Block) error {
	m.Lock()
	defer m.Unlock()

	m.history[a] = append(m.history[a], block.Copy())
	return nil
}

// InsertBatch - append the block to every address under one lock
func (m *Memory) InsertBatch(addresses []address.Address, block *transaction.Block) error {
	m.Lock()
	defer m.Unlock()

	for _, a := range addresses {
		m.history[a] = append(m.history[a], block.Copy())
	}
	return nil
}

// History - all blocks for an address, oldest first
func (m *Memory) History(a address.Address) []*transaction.Block {
	m.RLock()
	defer m.RUnlock()

	blocks := m.history[a]
	result := make([]*transaction.Block, len(blocks))
	for i, b := range blocks {
		result[i] = b.Copy()
	}
	return result
}

// Count - number of blocks recorded for an address
func (m *Memory) Count(a address.Address) uint64 {
	m.RLock()
	defer m.RUnlock()
	return uint64(len(m.history[a]))
}
