// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - ledger account identifiers
//
// an address is the x coordinate of the owner's compressed public
// key; it is never chosen independently of a key
package address

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/mu-coin/mucoind/fault"
	"github.com/mu-coin/mucoind/number"
	"github.com/mu-coin/mucoind/point"
)

// miscellaneous constants
const (
	Length         = number.Uint256Length
	checksumLength = 4
)

// Address - 256 bit account identifier
type Address [Length]byte

// FromEncoding - the address owned by a compressed public key
func FromEncoding(e point.Encoding) Address {
	return Address(e.Point())
}

// FromBase58 - parse the text form and verify its checksum
func FromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, err
	}
	if Length+checksumLength != len(buffer) {
		return Address{}, fault.ErrInvalidLength
	}

	checksum := sha3.Sum256(buffer[:Length])
	if !bytes.Equal(checksum[:checksumLength], buffer[Length:]) {
		return Address{}, fault.ErrChecksumMismatch
	}

	var a Address
	copy(a[:], buffer[:Length])
	return a, nil
}

// Number - the address as a 256 bit value
func (a Address) Number() number.Uint256 {
	return number.Uint256(a)
}

// Bytes - canonical bytes
func (a Address) Bytes() []byte {
	return a[:]
}

// Compare - byte-wise order, used to sort addresses
func (a Address) Compare(other Address) int {
	return bytes.Compare(a[:], other[:])
}

// String - base58(address ++ checksum) for the fmt package (for %s)
func (a Address) String() string {
	checksum := sha3.Sum256(a[:])
	buffer := make([]byte, 0, Length+checksumLength)
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - hex for the fmt package (for %#v)
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - base58 text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - from base58 text
func (a *Address) UnmarshalText(s []byte) error {
	parsed, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = parsed
	return nil
}
