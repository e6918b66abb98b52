// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec"

	"github.com/mu-coin/mucoind/address"
	"github.com/mu-coin/mucoind/ecc"
	"github.com/mu-coin/mucoind/number"
	"github.com/mu-coin/mucoind/point"
)

// FeeUnits - value destroyed by every block, whatever its size
const FeeUnits = 1

// Block - an atomic ordered set of entries
type Block struct {
	Entries []Entry `json:"entries"`
}

// NewBlock - a block from entries in the given order
func NewBlock(entries ...Entry) *Block {
	b := &Block{
		Entries: make([]Entry, len(entries)),
	}
	copy(b.Entries, entries)
	return b
}

// Hash - the message every entry signs
func (b *Block) Hash() number.Uint256 {
	h := sha256.New()
	sequence := make([]byte, 2)
	for _, e := range b.Entries {
		h.Write(e.Address[:])
		h.Write(e.Balance[:])
		binary.LittleEndian.PutUint16(sequence, e.Sequence)
		h.Write(sequence)
	}

	var digest number.Uint256
	copy(digest[:], h.Sum(nil))
	return digest
}

// Fee - constant, does not scale with entry count
func (b *Block) Fee() number.Uint256 {
	return number.Uint256FromUint64(FeeUnits)
}

// Equal - same entries in the same order
func (b *Block) Equal(other *Block) bool {
	if nil == b || nil == other {
		return b == other
	}
	if len(b.Entries) != len(other.Entries) {
		return false
	}
	for i, e := range b.Entries {
		if !e.Equal(other.Entries[i]) {
			return false
		}
	}
	return true
}

// Addresses - addresses in entry order
func (b *Block) Addresses() []address.Address {
	result := make([]address.Address, len(b.Entries))
	for i, e := range b.Entries {
		result[i] = e.Address
	}
	return result
}

// Find - the entry for an address, nil if not present
func (b *Block) Find(a address.Address) *Entry {
	for i := range b.Entries {
		if a == b.Entries[i].Address {
			return &b.Entries[i]
		}
	}
	return nil
}

// Copy - independent copy of the block
func (b *Block) Copy() *Block {
	return NewBlock(b.Entries...)
}

// SignWith - sign every entry owned by privateKey, returns the number signed
func (b *Block) SignWith(ctx *ecc.Context, privateKey *btcec.PrivateKey) (int, error) {
	owner := address.FromEncoding(point.Encode(ctx, privateKey.PubKey()))
	message := b.Hash()
	defer message.Clear()

	n := 0
	for i := range b.Entries {
		if owner != b.Entries[i].Address {
			continue
		}
		if err := b.Entries[i].Sign(ctx, privateKey, message); nil != err {
			return n, err
		}
		n += 1
	}
	return n, nil
}
