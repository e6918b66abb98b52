// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - validate a block against the recorded history of
// each address it names and, if valid, append it to those histories
//
// a block is accepted when:
//
//   every entry is signed over the block hash by its address key
//   an entry with sequence zero names an address with no history
//   an entry with sequence n > 0 follows an entry with sequence n-1
//     in the latest block recorded for the address
//   sum(new balances) + fee == sum(previous balances)
package ledger

import (
	"math/big"

	"github.com/bitmark-inc/logger"

	"github.com/mu-coin/mucoind/address"
	"github.com/mu-coin/mucoind/blockstore"
	"github.com/mu-coin/mucoind/counter"
	"github.com/mu-coin/mucoind/ecc"
	"github.com/mu-coin/mucoind/fault"
	"github.com/mu-coin/mucoind/number"
	"github.com/mu-coin/mucoind/transaction"
)

// Ledger - bound to one store for its lifetime
type Ledger struct {
	ctx      *ecc.Context
	store    blockstore.Store
	locks    *lockTable
	log      *logger.L
	accepted counter.Counter
	rejected counter.Counter
}

// Stats - number of blocks processed since start
type Stats struct {
	Accepted uint64 `json:"accepted"`
	Rejected uint64 `json:"rejected"`
}

// New - create a ledger over a store
func New(ctx *ecc.Context, store blockstore.Store) *Ledger {
	if nil == ctx || nil == store {
		logger.Panicf("ledger.New: context: %v  store: %v", ctx, store)
	}
	return &Ledger{
		ctx:   ctx,
		store: store,
		locks: newLockTable(),
		log:   logger.New("ledger"),
	}
}

// Process - validate the block and record it if valid
//
// a non-nil error is returned for an undecodable entry key and for
// store failures, a rejected block alone is not an error
func (l *Ledger) Process(block *transaction.Block) (Result, error) {
	result, err := l.process(block)
	if result.Accepted {
		l.accepted.Increment()
		l.log.Infof("accepted: %s  entries: %d", block.Hash(), len(block.Entries))
	} else {
		l.rejected.Increment()
		l.log.Debugf("%s  error: %v", result, err)
	}
	return result, err
}

// IsInvalid - true if the block was rejected for any reason
func (l *Ledger) IsInvalid(block *transaction.Block) bool {
	result, _ := l.Process(block)
	return !result.Accepted
}

// Stats - read the counters
func (l *Ledger) Stats() Stats {
	return Stats{
		Accepted: l.accepted.Uint64(),
		Rejected: l.rejected.Uint64(),
	}
}

func (l *Ledger) process(block *transaction.Block) (Result, error) {
	if nil == block || 0 == len(block.Entries) {
		return rejectBlock(ReasonEmpty), nil
	}

	sorted := sortAddresses(block.Addresses())
	if hasDuplicate(sorted) {
		return rejectBlock(ReasonDuplicateAddress), nil
	}

	l.locks.acquire(sorted)
	defer l.locks.release(sorted)

	message := block.Hash()
	previousTotal := new(big.Int)
	nextTotal := new(big.Int)

	for i, e := range block.Entries {
		err := e.Verify(l.ctx, message)
		if fault.ErrInvalidPoint == err {
			return rejectEntry(ReasonInvalidPoint, i), err
		} else if nil != err {
			return rejectEntry(ReasonInvalidSignature, i), nil
		}

		existing, err := l.store.Latest(e.Address)
		if nil != err {
			l.log.Errorf("address: %s  latest error: %s", e.Address, err)
			return rejectEntry(ReasonStore, i), err
		}

		if 0 == e.Sequence {
			if nil != existing {
				return rejectEntry(ReasonAlreadyExists, i), nil
			}
		} else {
			if nil == existing {
				return rejectEntry(ReasonMissingHistory, i), nil
			}
			previous := existing.Find(e.Address)
			if nil == previous {
				return rejectEntry(ReasonMissingHistory, i), nil
			}
			if uint32(previous.Sequence)+1 != uint32(e.Sequence) {
				return rejectEntry(ReasonSequenceMismatch, i), nil
			}
			previousTotal.Add(previousTotal, previous.Balance.Big())
		}
		nextTotal.Add(nextTotal, e.Balance.Big())
	}

	if nextTotal.Cmp(previousTotal) >= 0 {
		return rejectBlock(ReasonInflation), nil
	}
	expected := new(big.Int).Add(nextTotal, block.Fee().Big())
	if 0 != expected.Cmp(previousTotal) {
		return rejectBlock(ReasonFeeMismatch), nil
	}

	if err := l.commit(block); nil != err {
		return rejectBlock(ReasonStore), err
	}
	return accepted, nil
}

// append the block to every address it names
func (l *Ledger) commit(block *transaction.Block) error {
	addresses := block.Addresses()

	if b, ok := l.store.(blockstore.Batcher); ok {
		err := b.InsertBatch(addresses, block)
		if nil != err {
			l.log.Errorf("insert batch error: %s", err)
		}
		return err
	}

	for i, a := range addresses {
		if err := l.store.Insert(a, block); nil != err {
			if i > 0 {
				l.log.Criticalf("partial insert: %d of %d addresses  error: %s", i, len(addresses), err)
			} else {
				l.log.Errorf("insert error: %s", err)
			}
			return err
		}
	}
	return nil
}

// Previous - latest block that names the address
func (l *Ledger) Previous(a address.Address) (*transaction.Block, error) {
	block, err := l.store.Latest(a)
	if nil != err {
		return nil, err
	}
	if nil == block {
		return nil, fault.ErrMissingHistory
	}
	return block, nil
}

// HasBalance - true if the address has any recorded history
func (l *Ledger) HasBalance(a address.Address) (bool, error) {
	block, err := l.store.Latest(a)
	if nil != err {
		return false, err
	}
	return nil != block, nil
}

// Entry - the current entry for an address
func (l *Ledger) Entry(a address.Address) (*transaction.Entry, error) {
	block, err := l.Previous(a)
	if nil != err {
		return nil, err
	}
	e := block.Find(a)
	if nil == e {
		return nil, fault.ErrMissingPreviousEntry
	}
	return e, nil
}

// Balance - the current balance of an address
func (l *Ledger) Balance(a address.Address) (number.Uint256, error) {
	e, err := l.Entry(a)
	if nil != err {
		return number.Uint256{}, err
	}
	return e.Balance, nil
}
