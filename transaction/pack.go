// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/binary"

	"github.com/mu-coin/mucoind/fault"
	"github.com/mu-coin/mucoind/number"
	"github.com/mu-coin/mucoind/util"
)

// packed entry size
const (
	entryLength = 32 + number.Uint256Length + 2 + number.Uint512Length + 1
)

// Packed - binary form of a block
type Packed []byte

// Pack - convert a block to its binary form
func (b *Block) Pack() Packed {
	buffer := make(Packed, 0, util.Varint64MaximumBytes+len(b.Entries)*entryLength)
	buffer = append(buffer, util.ToVarint64(uint64(len(b.Entries)))...)

	sequence := make([]byte, 2)
	for _, e := range b.Entries {
		buffer = append(buffer, e.Address[:]...)
		buffer = append(buffer, e.Balance[:]...)
		binary.BigEndian.PutUint16(sequence, e.Sequence)
		buffer = append(buffer, sequence...)
		buffer = append(buffer, e.Signature[:]...)
		buffer = append(buffer, e.PointType)
	}
	return buffer
}

// Unpack - convert binary to a block
//
// returns the block and the number of bytes consumed
func (record Packed) Unpack() (*Block, int, error) {
	count, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.ErrRecordTruncated
	}
	if 0 == count {
		return nil, 0, fault.ErrEmptyBlock
	}

	// check size before allocating
	if count > uint64(len(record)-n)/entryLength {
		return nil, 0, fault.ErrRecordTruncated
	}

	b := &Block{
		Entries: make([]Entry, count),
	}
	for i := range b.Entries {
		e := &b.Entries[i]
		n += copy(e.Address[:], record[n:])
		n += copy(e.Balance[:], record[n:])
		e.Sequence = binary.BigEndian.Uint16(record[n:])
		n += 2
		n += copy(e.Signature[:], record[n:])
		e.PointType = record[n]
		n += 1
	}
	return b, n, nil
}
