// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mu-coin/mucoind/ecc"
	"github.com/mu-coin/mucoind/fault"
	"github.com/mu-coin/mucoind/fixtures"
	"github.com/mu-coin/mucoind/keypair"
)

const (
	keyFile = "test.key"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestRawRoundTrip(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("keypair"))
	k, err := keypair.New(ctx)
	assert.Nil(t, err, "new error")

	raw := k.Raw(ctx)
	assert.Equal(t, 64, len(raw.PrivateKey), "wrong private key length")
	assert.Equal(t, 66, len(raw.PublicKey), "wrong public key length")
	assert.Equal(t, k.Address(ctx).String(), raw.Address, "wrong address")

	k2, err := raw.KeyPair(ctx)
	assert.Nil(t, err, "decode error")
	assert.True(t, k.PublicKey.IsEqual(k2.PublicKey), "public key changed")
	assert.Equal(t, k.PrivateKey.Serialize(), k2.PrivateKey.Serialize(), "private key changed")
}

func TestRawMismatch(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("mismatch"))
	k1, _ := keypair.New(ctx)
	k2, _ := keypair.New(ctx)

	raw := k1.Raw(ctx)
	raw.PublicKey = k2.Raw(ctx).PublicKey
	_, err := raw.KeyPair(ctx)
	assert.Equal(t, fault.ErrNotPublicKey, err, "wrong public key accepted")

	raw = k1.Raw(ctx)
	raw.Address = k2.Raw(ctx).Address
	_, err = raw.KeyPair(ctx)
	assert.Equal(t, fault.ErrNotPublicKey, err, "wrong address accepted")

	raw = k1.Raw(ctx)
	raw.PrivateKey = "00"
	_, err = raw.KeyPair(ctx)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short private key accepted")
}

func TestSaveLoad(t *testing.T) {
	_ = os.Remove(keyFile)
	defer os.Remove(keyFile)

	ctx := ecc.New(fixtures.NewReader("save-load"))
	k, _ := keypair.New(ctx)

	err := keypair.Save(ctx, keyFile, k)
	assert.Nil(t, err, "save error")

	err = keypair.Save(ctx, keyFile, k)
	assert.True(t, os.IsExist(err), "existing file overwritten")

	k2, err := keypair.Load(ctx, keyFile)
	assert.Nil(t, err, "load error")
	assert.Equal(t, k.Address(ctx), k2.Address(ctx), "wrong address after load")
}
