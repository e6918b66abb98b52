// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package number

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
)

// Uint256Length - number of bytes in a Uint256
const Uint256Length = 32

// Uint256 - 256 bit unsigned integer stored big endian
type Uint256 [Uint256Length]byte

// NewUint256 - convert a big.Int, panics if n is negative or too large
func NewUint256(n *big.Int) Uint256 {
	var qwords [4]uint64
	bigToQwords("NewUint256", n, qwords[:])
	return Uint256FromQwords(qwords)
}

// Uint256FromUint64 - small value convenience
func Uint256FromUint64(n uint64) Uint256 {
	return Uint256FromQwords([4]uint64{n})
}

// Uint256FromQwords - build from words, least significant first
func Uint256FromQwords(qwords [4]uint64) Uint256 {
	var u Uint256
	qwordsToBytes(qwords[:], u[:])
	return u
}

// Uint256FromDecimal - parse a decimal string
func Uint256FromDecimal(s string) (Uint256, error) {
	n, err := parseDecimal(s, 256)
	if nil != err {
		return Uint256{}, err
	}
	return NewUint256(n), nil
}

// Qwords - the value as words, least significant first
func (u Uint256) Qwords() [4]uint64 {
	var qwords [4]uint64
	bytesToQwords(u[:], qwords[:])
	return qwords
}

// Big - the value as a new big.Int
func (u Uint256) Big() *big.Int {
	qwords := u.Qwords()
	return qwordsToBig(qwords[:])
}

// Bytes - canonical big endian bytes
func (u Uint256) Bytes() []byte {
	return u[:]
}

// Clear - zero all bytes in place
func (u *Uint256) Clear() {
	for i := range u {
		u[i] = 0
	}
}

// IsZero - true if every byte is zero
func (u Uint256) IsZero() bool {
	return u == Uint256{}
}

// Cmp - compare as numbers, -1, 0 or +1
func (u Uint256) Cmp(other Uint256) int {
	return bytes.Compare(u[:], other[:])
}

// Decimal - base 10 text
func (u Uint256) Decimal() string {
	return u.Big().String()
}

// String - big endian hex for the fmt package (for %s)
func (u Uint256) String() string {
	return hex.EncodeToString(u[:])
}

// GoString - big endian hex for the fmt package (for %#v)
func (u Uint256) GoString() string {
	return "<uint256:" + hex.EncodeToString(u[:]) + ">"
}

// Scan - read big endian hex for the fmt package scan routines
func (u *Uint256) Scan(state fmt.ScanState, verb rune) error {
	return scanHex(state, u[:])
}

// MarshalText - convert to big endian hex text
func (u Uint256) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(u)))
	hex.Encode(buffer, u[:])
	return buffer, nil
}

// UnmarshalText - convert from big endian hex text
func (u *Uint256) UnmarshalText(s []byte) error {
	var buffer Uint256
	if err := decodeHex(buffer[:], s); nil != err {
		return err
	}
	*u = buffer
	return nil
}
