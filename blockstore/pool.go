// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockstore

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/mu-coin/mucoind/address"
	"github.com/mu-coin/mucoind/fault"
	"github.com/mu-coin/mucoind/storage"
	"github.com/mu-coin/mucoind/transaction"
)

const (
	historyKeyLength = address.Length + 8
)

// Pool - store kept in the LevelDB pools of the storage package
//
// storage.Initialise must have been called
type Pool struct {
	sync.Mutex
	log *logger.L
}

// NewPool - a store over the already open database
func NewPool() (*Pool, error) {
	if nil == storage.Pool.AddressCount || nil == storage.Pool.AddressHistory {
		return nil, fault.ErrNotInitialised
	}
	return &Pool{
		log: logger.New("blockstore"),
	}, nil
}

func historyKey(a address.Address, index uint64) []byte {
	key := make([]byte, historyKeyLength)
	copy(key, a[:])
	binary.BigEndian.PutUint64(key[address.Length:], index)
	return key
}

// Count - number of blocks recorded for an address
func (p *Pool) Count(a address.Address) uint64 {
	n, found := storage.Pool.AddressCount.GetN(a[:])
	if !found {
		return 0
	}
	return n
}

// Latest - last block appended for the address
func (p *Pool) Latest(a address.Address) (*transaction.Block, error) {
	count := p.Count(a)
	if 0 == count {
		return nil, nil
	}

	packed := storage.Pool.AddressHistory.Get(historyKey(a, count-1))
	if nil == packed {
		p.log.Errorf("address: %s  count: %d  missing history", a, count)
		return nil, fault.ErrMissingHistory
	}

	block, _, err := transaction.Packed(packed).Unpack()
	if nil != err {
		p.log.Errorf("address: %s  unpack error: %s", a, err)
		return nil, err
	}
	return block, nil
}

// Insert - append a block to one address
func (p *Pool) Insert(a address.Address, block *transaction.Block) error {
	return p.InsertBatch([]address.Address{a}, block)
}

// InsertBatch - append the block to every address in one database write
func (p *Pool) InsertBatch(addresses []address.Address, block *transaction.Block) error {
	p.Lock()
	defer p.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	packed := block.Pack()
	for _, a := range addresses {
		count, _ := trx.GetN(storage.Pool.AddressCount, a[:])
		trx.Put(storage.Pool.AddressHistory, historyKey(a, count), packed)
		trx.PutN(storage.Pool.AddressCount, a[:], count+1)
		p.log.Debugf("address: %s  index: %d", a, count)
	}

	err = trx.Commit()
	if nil != err {
		p.log.Errorf("commit error: %s", err)
	}
	return err
}

// History - up to count blocks for an address starting at index start
func (p *Pool) History(a address.Address, start uint64, count int) ([]*transaction.Block, error) {
	cursor, err := storage.Pool.AddressHistory.Prefix(a[:])
	if nil != err {
		return nil, err
	}

	elements, err := cursor.Seek(historyKey(a, start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	result := make([]*transaction.Block, 0, len(elements))
	for _, e := range elements {
		block, _, err := transaction.Packed(e.Value).Unpack()
		if nil != err {
			return nil, err
		}
		result = append(result, block)
	}
	return result, nil
}
