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

// Uint512Length - number of bytes in a Uint512
const Uint512Length = 64

// Uint512 - 512 bit unsigned integer stored big endian
type Uint512 [Uint512Length]byte

// NewUint512 - convert a big.Int, panics if n is negative or too large
func NewUint512(n *big.Int) Uint512 {
	var qwords [8]uint64
	bigToQwords("NewUint512", n, qwords[:])
	return Uint512FromQwords(qwords)
}

// Uint512FromUint64 - small value convenience
func Uint512FromUint64(n uint64) Uint512 {
	return Uint512FromQwords([8]uint64{n})
}

// Uint512FromQwords - build from words, least significant first
//
// a signature is held as R in the high four words and S in the low four
func Uint512FromQwords(qwords [8]uint64) Uint512 {
	var u Uint512
	qwordsToBytes(qwords[:], u[:])
	return u
}

// Uint512FromDecimal - parse a decimal string
func Uint512FromDecimal(s string) (Uint512, error) {
	n, err := parseDecimal(s, 512)
	if nil != err {
		return Uint512{}, err
	}
	return NewUint512(n), nil
}

// Qwords - the value as words, least significant first
func (u Uint512) Qwords() [8]uint64 {
	var qwords [8]uint64
	bytesToQwords(u[:], qwords[:])
	return qwords
}

// Big - the value as a new big.Int
func (u Uint512) Big() *big.Int {
	qwords := u.Qwords()
	return qwordsToBig(qwords[:])
}

// Bytes - canonical big endian bytes
func (u Uint512) Bytes() []byte {
	return u[:]
}

// Clear - zero all bytes in place
func (u *Uint512) Clear() {
	for i := range u {
		u[i] = 0
	}
}

// IsZero - true if every byte is zero
func (u Uint512) IsZero() bool {
	return u == Uint512{}
}

// Cmp - compare as numbers, -1, 0 or +1
func (u Uint512) Cmp(other Uint512) int {
	return bytes.Compare(u[:], other[:])
}

// Decimal - base 10 text
func (u Uint512) Decimal() string {
	return u.Big().String()
}

// String - big endian hex for the fmt package (for %s)
func (u Uint512) String() string {
	return hex.EncodeToString(u[:])
}

// GoString - big endian hex for the fmt package (for %#v)
func (u Uint512) GoString() string {
	return "<uint512:" + hex.EncodeToString(u[:]) + ">"
}

// Scan - read big endian hex for the fmt package scan routines
func (u *Uint512) Scan(state fmt.ScanState, verb rune) error {
	return scanHex(state, u[:])
}

// MarshalText - convert to big endian hex text
func (u Uint512) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(u)))
	hex.Encode(buffer, u[:])
	return buffer, nil
}

// UnmarshalText - convert from big endian hex text
func (u *Uint512) UnmarshalText(s []byte) error {
	var buffer Uint512
	if err := decodeHex(buffer[:], s); nil != err {
		return err
	}
	*u = buffer
	return nil
}
