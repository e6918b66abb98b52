// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"os"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/assert"

	"github.com/mu-coin/mucoind/ecc"
	"github.com/mu-coin/mucoind/fault"
	"github.com/mu-coin/mucoind/fixtures"
	"github.com/mu-coin/mucoind/number"
	"github.com/mu-coin/mucoind/transaction"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func keys(t *testing.T, ctx *ecc.Context, n int) []*btcec.PrivateKey {
	result := make([]*btcec.PrivateKey, n)
	for i := range result {
		k, err := ctx.GenerateKey()
		if nil != err {
			t.Fatalf("generate error: %s", err)
		}
		result[i] = k
	}
	return result
}

func TestHashLayout(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("hash-layout"))
	k := keys(t, ctx, 2)

	e1 := transaction.NewEntry(ctx, k[0].PubKey(), number.Uint256FromUint64(50), 1)
	e2 := transaction.NewEntry(ctx, k[1].PubKey(), number.Uint256FromUint64(49), 0x0102)
	b := transaction.NewBlock(e1, e2)

	buffer := make([]byte, 0, 2*66)
	for _, e := range []transaction.Entry{e1, e2} {
		buffer = append(buffer, e.Address[:]...)
		buffer = append(buffer, e.Balance[:]...)
		sequence := make([]byte, 2)
		binary.LittleEndian.PutUint16(sequence, e.Sequence)
		buffer = append(buffer, sequence...)
	}
	assert.Equal(t, number.Uint256(sha256.Sum256(buffer)), b.Hash(), "wrong hash")

	// signatures are outside the hash
	_, err := b.SignWith(ctx, k[0])
	assert.Nil(t, err, "sign error")
	assert.Equal(t, number.Uint256(sha256.Sum256(buffer)), b.Hash(), "signing changed hash")

	// order matters
	reversed := transaction.NewBlock(e2, e1)
	assert.NotEqual(t, b.Hash(), reversed.Hash(), "hash ignores order")
	assert.False(t, b.Equal(reversed), "equal ignores order")

	empty := transaction.NewBlock()
	assert.Equal(t, number.Uint256(sha256.Sum256(nil)), empty.Hash(), "empty hash")
}

func TestBlockEqualNil(t *testing.T) {
	var missing *transaction.Block
	b := transaction.NewBlock()

	assert.False(t, b.Equal(nil), "block equal to nil")
	assert.False(t, missing.Equal(b), "nil equal to block")
	assert.True(t, missing.Equal(nil), "nil not equal to nil")
}

func TestFee(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("fee"))
	k := keys(t, ctx, 3)
	small := transaction.NewBlock(transaction.NewEntry(ctx, k[0].PubKey(), number.Uint256{}, 0))
	large := transaction.NewBlock(
		transaction.NewEntry(ctx, k[0].PubKey(), number.Uint256{}, 0),
		transaction.NewEntry(ctx, k[1].PubKey(), number.Uint256{}, 0),
		transaction.NewEntry(ctx, k[2].PubKey(), number.Uint256{}, 0),
	)
	one := number.Uint256FromUint64(1)
	assert.Equal(t, one, small.Fee(), "wrong fee")
	assert.Equal(t, one, large.Fee(), "fee must not scale with entries")
}

func TestSignValidate(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("sign-validate"))
	k := keys(t, ctx, 2)

	b := transaction.NewBlock(
		transaction.NewEntry(ctx, k[0].PubKey(), number.Uint256FromUint64(50), 1),
		transaction.NewEntry(ctx, k[1].PubKey(), number.Uint256FromUint64(49), 0),
	)
	message := b.Hash()

	// unsigned
	assert.False(t, b.Entries[0].Validate(ctx, message), "unsigned entry valid")

	n, err := b.SignWith(ctx, k[0])
	assert.Nil(t, err, "sign error")
	assert.Equal(t, 1, n, "wrong sign count")
	assert.True(t, b.Entries[0].Validate(ctx, message), "signed entry invalid")
	assert.False(t, b.Entries[1].Validate(ctx, message), "other entry signed")

	n, err = b.SignWith(ctx, k[1])
	assert.Nil(t, err, "sign error")
	assert.Equal(t, 1, n, "wrong sign count")
	assert.True(t, b.Entries[1].Validate(ctx, message), "signed entry invalid")

	// different message
	other := message
	other[0] ^= 0xff
	assert.False(t, b.Entries[0].Validate(ctx, other), "wrong message accepted")
	assert.Equal(t, fault.ErrInvalidSignature, b.Entries[0].Verify(ctx, other), "wrong error")

	// mutated signature
	e := b.Entries[0]
	e.Signature[10] ^= 0x40
	assert.False(t, e.Validate(ctx, message), "mutated signature accepted")

	// signed by the wrong key
	e = b.Entries[0]
	err = e.Sign(ctx, k[1], message)
	assert.Nil(t, err, "sign error")
	assert.False(t, e.Validate(ctx, message), "wrong key accepted")
}

func TestKey(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("entry-key"))
	k := keys(t, ctx, 1)
	e := transaction.NewEntry(ctx, k[0].PubKey(), number.Uint256FromUint64(1), 0)

	publicKey, err := e.Key(ctx)
	assert.Nil(t, err, "key error")
	assert.True(t, k[0].PubKey().IsEqual(publicKey), "wrong key")

	bad := e
	bad.PointType = 4
	_, err = bad.Key(ctx)
	assert.Equal(t, fault.ErrInvalidPoint, err, "bad point type accepted")
	assert.Equal(t, fault.ErrInvalidPoint, bad.Verify(ctx, number.Uint256{}), "bad point type verified")
	assert.False(t, bad.Validate(ctx, number.Uint256{}), "bad point type validated")

	// x = 5 is not on the curve
	bad = e
	bad.Address = [32]byte{31: 5}
	_, err = bad.Key(ctx)
	assert.Equal(t, fault.ErrInvalidPoint, err, "off curve address accepted")
}

func TestEntryEqual(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("entry-equal"))
	k := keys(t, ctx, 1)
	e := transaction.NewEntry(ctx, k[0].PubKey(), number.Uint256FromUint64(7), 3)

	same := e
	assert.True(t, e.Equal(same), "copy not equal")

	changes := []func(*transaction.Entry){
		func(x *transaction.Entry) { x.Balance[31] += 1 },
		func(x *transaction.Entry) { x.Sequence += 1 },
		func(x *transaction.Entry) { x.Signature[0] += 1 },
		func(x *transaction.Entry) { x.PointType ^= 1 },
		func(x *transaction.Entry) { x.Address[0] += 1 },
	}
	for i, change := range changes {
		x := e
		change(&x)
		assert.False(t, e.Equal(x), "%d: change not detected", i)
	}
}

func TestPackUnpack(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("pack"))
	k := keys(t, ctx, 3)
	b := transaction.NewBlock(
		transaction.NewEntry(ctx, k[0].PubKey(), number.Uint256FromUint64(1000), 7),
		transaction.NewEntry(ctx, k[1].PubKey(), number.Uint256FromUint64(0), 65535),
		transaction.NewEntry(ctx, k[2].PubKey(), number.Uint256FromUint64(3), 0),
	)
	for _, key := range k {
		_, err := b.SignWith(ctx, key)
		assert.Nil(t, err, "sign error")
	}

	packed := b.Pack()
	unpacked, n, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, len(packed), n, "wrong length consumed")
	assert.True(t, b.Equal(unpacked), "pack round trip")
	assert.Equal(t, b.Hash(), unpacked.Hash(), "hash changed")

	// trailing data is left for the caller
	extended := append(transaction.Packed{}, packed...)
	extended = append(extended, 0xaa, 0xbb)
	_, n, err = extended.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, len(packed), n, "trailing data consumed")

	for _, size := range []int{0, 1, 50, len(packed) - 1} {
		_, _, err = packed[:size].Unpack()
		assert.Equal(t, fault.ErrRecordTruncated, err, "%d: truncated record accepted", size)
	}

	_, _, err = transaction.Packed{0x00}.Unpack()
	assert.Equal(t, fault.ErrEmptyBlock, err, "empty block accepted")
}

func TestJSON(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("json"))
	k := keys(t, ctx, 2)
	b := transaction.NewBlock(
		transaction.NewEntry(ctx, k[0].PubKey(), number.Uint256FromUint64(50), 1),
		transaction.NewEntry(ctx, k[1].PubKey(), number.Uint256FromUint64(49), 0),
	)
	_, err := b.SignWith(ctx, k[0])
	assert.Nil(t, err, "sign error")

	buffer, err := json.Marshal(b)
	assert.Nil(t, err, "marshal error")

	var decoded transaction.Block
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.True(t, b.Equal(&decoded), "json round trip")

	var raw struct {
		Entries []map[string]interface{} `json:"entries"`
	}
	err = json.Unmarshal(buffer, &raw)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, "50", raw.Entries[0]["balance"], "balance is not decimal text")
	assert.Equal(t, b.Entries[0].Address.String(), raw.Entries[0]["address"], "address is not base58")

	err = json.Unmarshal([]byte(`{"entries":[{"balance":"x"}]}`), &decoded)
	assert.NotNil(t, err, "bad balance accepted")
}

func TestFindCopy(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("find"))
	k := keys(t, ctx, 3)
	b := transaction.NewBlock(
		transaction.NewEntry(ctx, k[0].PubKey(), number.Uint256FromUint64(5), 1),
		transaction.NewEntry(ctx, k[1].PubKey(), number.Uint256FromUint64(6), 2),
	)
	e := b.Find(b.Entries[1].Address)
	if assert.NotNil(t, e, "entry not found") {
		assert.Equal(t, uint16(2), e.Sequence, "wrong entry")
	}

	missing := transaction.NewEntry(ctx, k[2].PubKey(), number.Uint256{}, 0)
	assert.Nil(t, b.Find(missing.Address), "found absent address")

	c := b.Copy()
	c.Entries[0].Sequence = 99
	assert.Equal(t, uint16(1), b.Entries[0].Sequence, "copy shares entries")

	addresses := b.Addresses()
	assert.Equal(t, 2, len(addresses), "wrong address count")
	assert.Equal(t, b.Entries[0].Address, addresses[0], "wrong address order")
}
