// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package point - compressed public key encoding
//
// byte 0 is the parity discriminator (2 = even y, 3 = odd y) and
// bytes 1…32 are the big endian x coordinate
package point

import (
	"encoding/hex"

	"github.com/bitmark-inc/logger"
	"github.com/btcsuite/btcd/btcec"

	"github.com/mu-coin/mucoind/ecc"
	"github.com/mu-coin/mucoind/number"
)

// Length - bytes in an encoding
const Length = ecc.CompressedPointLength

// discriminator values
const (
	EvenY = 2
	OddY  = 3
)

// Encoding - compressed point
type Encoding [Length]byte

// Encode - compress a live public key
func Encode(ctx *ecc.Context, publicKey *btcec.PublicKey) Encoding {
	var e Encoding
	copy(e[:], ctx.EncodePoint(publicKey))
	return e
}

// New - pair a discriminator with an x coordinate
//
// used when rebuilding a key from stored entry data; a type byte
// other than 2 or 3 is a caller bug
func New(kind byte, x number.Uint256) Encoding {
	if EvenY != kind && OddY != kind {
		logger.Panicf("point.New: invalid type byte: %d", kind)
	}
	var e Encoding
	e[0] = kind
	copy(e[1:], x[:])
	return e
}

// Type - the discriminator byte
func (e Encoding) Type() byte {
	return e[0]
}

// Point - the x coordinate
func (e Encoding) Point() number.Uint256 {
	var x number.Uint256
	copy(x[:], e[1:])
	return x
}

// Key - decode to a public key, fault.ErrInvalidPoint if x is not on the curve
func (e Encoding) Key(ctx *ecc.Context) (*btcec.PublicKey, error) {
	return ctx.DecodePoint(e[:])
}

// String - hex for the fmt package (for %s)
func (e Encoding) String() string {
	return hex.EncodeToString(e[:])
}

// GoString - hex for the fmt package (for %#v)
func (e Encoding) GoString() string {
	return "<point:" + hex.EncodeToString(e[:]) + ">"
}
