// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - secp256k1 key pairs and their JSON file form
package keypair

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/btcsuite/btcd/btcec"

	"github.com/mu-coin/mucoind/address"
	"github.com/mu-coin/mucoind/ecc"
	"github.com/mu-coin/mucoind/fault"
	"github.com/mu-coin/mucoind/point"
)

// KeyPair - structure to hold public and private keys
type KeyPair struct {
	PrivateKey *btcec.PrivateKey
	PublicKey  *btcec.PublicKey
}

// RawKeyPair - text version of the keys
type RawKeyPair struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
	Address    string `json:"address"`
}

// New - generate a key pair from the context's random source
func New(ctx *ecc.Context) (*KeyPair, error) {
	privateKey, err := ctx.GenerateKey()
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		PrivateKey: privateKey,
		PublicKey:  privateKey.PubKey(),
	}, nil
}

// FromPrivateHex - rebuild a key pair from a hex private key
func FromPrivateHex(ctx *ecc.Context, s string) (*KeyPair, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	privateKey, err := ctx.PrivateKeyFromBytes(buffer)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		PrivateKey: privateKey,
		PublicKey:  privateKey.PubKey(),
	}, nil
}

// Encoding - compressed public key
func (k *KeyPair) Encoding(ctx *ecc.Context) point.Encoding {
	return point.Encode(ctx, k.PublicKey)
}

// Address - the ledger address of the public key
func (k *KeyPair) Address(ctx *ecc.Context) address.Address {
	return address.FromEncoding(k.Encoding(ctx))
}

// Raw - text form for saving
func (k *KeyPair) Raw(ctx *ecc.Context) *RawKeyPair {
	return &RawKeyPair{
		PrivateKey: hex.EncodeToString(k.PrivateKey.Serialize()),
		PublicKey:  hex.EncodeToString(ctx.EncodePoint(k.PublicKey)),
		Address:    k.Address(ctx).String(),
	}
}

// KeyPair - decode the text form, the public key and address must
// match the private key
func (raw *RawKeyPair) KeyPair(ctx *ecc.Context) (*KeyPair, error) {
	k, err := FromPrivateHex(ctx, raw.PrivateKey)
	if nil != err {
		return nil, err
	}

	if "" != raw.PublicKey {
		buffer, err := hex.DecodeString(raw.PublicKey)
		if nil != err {
			return nil, err
		}
		publicKey, err := ctx.DecodePoint(buffer)
		if nil != err {
			return nil, err
		}
		if !publicKey.IsEqual(k.PublicKey) {
			return nil, fault.ErrNotPublicKey
		}
	}

	if "" != raw.Address {
		a, err := address.FromBase58(raw.Address)
		if nil != err {
			return nil, err
		}
		if a != k.Address(ctx) {
			return nil, fault.ErrNotPublicKey
		}
	}
	return k, nil
}

// Save - write a new key file, an existing file is not overwritten
func Save(ctx *ecc.Context, fileName string, k *KeyPair) error {
	buffer, err := json.MarshalIndent(k.Raw(ctx), "", "  ")
	if nil != err {
		return err
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		return err
	}
	_, err = f.Write(append(buffer, '\n'))
	if nil != err {
		f.Close()
		os.Remove(fileName)
		return err
	}
	return f.Close()
}

// Load - read a key file written by Save
func Load(ctx *ecc.Context, fileName string) (*KeyPair, error) {
	buffer, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	var raw RawKeyPair
	err = json.Unmarshal(buffer, &raw)
	if nil != err {
		return nil, err
	}
	return raw.KeyPair(ctx)
}
