// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec"

	"github.com/mu-coin/mucoind/number"
)

var lowMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// Sign - ECDSA over a 256 bit message digest
//
// nonces are derived by RFC 6979 so the same key and message always
// produce the same signature; the result is R ++ S
func (ctx *Context) Sign(privateKey *btcec.PrivateKey, message number.Uint256) (number.Uint512, error) {
	digest := message
	defer digest.Clear()

	signature, err := privateKey.Sign(digest[:])
	if nil != err {
		return number.Uint512{}, err
	}

	n := new(big.Int).Lsh(signature.R, 256)
	n.Or(n, signature.S)
	return number.NewUint512(n), nil
}

// Verify - check R ++ S against a message digest
func (ctx *Context) Verify(publicKey *btcec.PublicKey, message number.Uint256, signature number.Uint512) bool {
	n := signature.Big()
	s := &btcec.Signature{
		R: new(big.Int).Rsh(n, 256),
		S: new(big.Int).And(n, lowMask),
	}
	if 0 == s.R.Sign() || 0 == s.S.Sign() {
		return false
	}
	return s.Verify(message[:], publicKey)
}
