// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ecc - elliptic curve context for keys and signatures
//
// All key generation, point encoding and signature operations go
// through a Context so that the curve and the random source are
// explicit.  Tests construct a context over a deterministic reader.
package ecc

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec"

	"github.com/mu-coin/mucoind/fault"
)

// sizes of the encoded items
const (
	PrivateKeyLength      = 32
	CompressedPointLength = 33
)

// Context - the curve and the random source
type Context struct {
	curve  *btcec.KoblitzCurve
	random io.Reader
}

// New - create a secp256k1 context, a nil reader selects crypto/rand
func New(random io.Reader) *Context {
	if nil == random {
		random = rand.Reader
	}
	return &Context{
		curve:  btcec.S256(),
		random: random,
	}
}

// Curve - the curve parameters
func (ctx *Context) Curve() *btcec.KoblitzCurve {
	return ctx.curve
}

// GenerateKey - create a private key from the context's random source
//
// candidates outside [1, N-1] are discarded
func (ctx *Context) GenerateKey() (*btcec.PrivateKey, error) {
	buffer := make([]byte, PrivateKeyLength)
	defer clearBytes(buffer)

	k := new(big.Int)
	for {
		if _, err := io.ReadFull(ctx.random, buffer); nil != err {
			return nil, err
		}
		k.SetBytes(buffer)
		if k.Sign() > 0 && k.Cmp(ctx.curve.N) < 0 {
			privateKey, _ := btcec.PrivKeyFromBytes(ctx.curve, buffer)
			return privateKey, nil
		}
	}
}

// PrivateKeyFromBytes - import a 32 byte big endian scalar
func (ctx *Context) PrivateKeyFromBytes(buffer []byte) (*btcec.PrivateKey, error) {
	if PrivateKeyLength != len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}
	k := new(big.Int).SetBytes(buffer)
	if k.Sign() <= 0 || k.Cmp(ctx.curve.N) >= 0 {
		return nil, fault.ErrInvalidPrivateKey
	}
	privateKey, _ := btcec.PrivKeyFromBytes(ctx.curve, buffer)
	return privateKey, nil
}

// EncodePoint - compressed form: parity byte (2 or 3) ++ x
func (ctx *Context) EncodePoint(publicKey *btcec.PublicKey) []byte {
	return publicKey.SerializeCompressed()
}

// DecodePoint - recover the point, fails if x is not on the curve
func (ctx *Context) DecodePoint(buffer []byte) (*btcec.PublicKey, error) {
	if CompressedPointLength != len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}
	publicKey, err := btcec.ParsePubKey(buffer, ctx.curve)
	if nil != err {
		return nil, fault.ErrInvalidPoint
	}
	return publicKey, nil
}

func clearBytes(buffer []byte) {
	for i := range buffer {
		buffer[i] = 0
	}
}
