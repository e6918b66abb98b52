// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/json"

	"github.com/btcsuite/btcd/btcec"

	"github.com/mu-coin/mucoind/address"
	"github.com/mu-coin/mucoind/ecc"
	"github.com/mu-coin/mucoind/fault"
	"github.com/mu-coin/mucoind/number"
	"github.com/mu-coin/mucoind/point"
)

// Entry - one address's signed balance claim
type Entry struct {
	Address   address.Address
	Balance   number.Uint256
	Sequence  uint16
	Signature number.Uint512
	PointType byte
}

// NewEntry - unsigned entry for the owner of a public key
func NewEntry(ctx *ecc.Context, publicKey *btcec.PublicKey, balance number.Uint256, sequence uint16) Entry {
	e := point.Encode(ctx, publicKey)
	return Entry{
		Address:   address.FromEncoding(e),
		Balance:   balance,
		Sequence:  sequence,
		PointType: e.Type(),
	}
}

// Key - rebuild the owner's public key from point type and address
//
// the key is never stored, so it cannot disagree with the address
func (entry Entry) Key(ctx *ecc.Context) (*btcec.PublicKey, error) {
	if point.EvenY != entry.PointType && point.OddY != entry.PointType {
		return nil, fault.ErrInvalidPoint
	}
	return point.New(entry.PointType, entry.Address.Number()).Key(ctx)
}

// Sign - sign message (normally the block hash) into the signature field
func (entry *Entry) Sign(ctx *ecc.Context, privateKey *btcec.PrivateKey, message number.Uint256) error {
	signature, err := ctx.Sign(privateKey, message)
	if nil != err {
		return err
	}
	entry.Signature = signature
	return nil
}

// Verify - check the signature over message
//
// returns fault.ErrInvalidPoint if the key cannot be rebuilt and
// fault.ErrInvalidSignature on any signature mismatch
func (entry Entry) Verify(ctx *ecc.Context, message number.Uint256) error {
	publicKey, err := entry.Key(ctx)
	if nil != err {
		return err
	}
	if !ctx.Verify(publicKey, message, entry.Signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Validate - true if the signature over message is good
func (entry Entry) Validate(ctx *ecc.Context, message number.Uint256) bool {
	return nil == entry.Verify(ctx, message)
}

// Equal - all fields match
func (entry Entry) Equal(other Entry) bool {
	return entry == other
}

// JSON form: balance as a decimal string
type entryJSON struct {
	Address   address.Address `json:"address"`
	Balance   string          `json:"balance"`
	Sequence  uint16          `json:"sequence"`
	Signature number.Uint512  `json:"signature"`
	PointType byte            `json:"point_type"`
}

// MarshalJSON - convert to JSON
func (entry Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		Address:   entry.Address,
		Balance:   entry.Balance.Decimal(),
		Sequence:  entry.Sequence,
		Signature: entry.Signature,
		PointType: entry.PointType,
	})
}

// UnmarshalJSON - convert from JSON
func (entry *Entry) UnmarshalJSON(s []byte) error {
	var j entryJSON
	if err := json.Unmarshal(s, &j); nil != err {
		return err
	}
	balance, err := number.Uint256FromDecimal(j.Balance)
	if nil != err {
		return err
	}
	*entry = Entry{
		Address:   j.Address,
		Balance:   balance,
		Sequence:  j.Sequence,
		Signature: j.Signature,
		PointType: j.PointType,
	}
	return nil
}
