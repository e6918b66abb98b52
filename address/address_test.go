// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"encoding/json"
	"fmt"
	"sort"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"

	"github.com/mu-coin/mucoind/address"
	"github.com/mu-coin/mucoind/ecc"
	"github.com/mu-coin/mucoind/fault"
	"github.com/mu-coin/mucoind/fixtures"
	"github.com/mu-coin/mucoind/point"
)

func makeAddress(t *testing.T, ctx *ecc.Context) (address.Address, point.Encoding) {
	k, err := ctx.GenerateKey()
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	e := point.Encode(ctx, k.PubKey())
	return address.FromEncoding(e), e
}

func TestFromEncoding(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("address"))
	a, e := makeAddress(t, ctx)

	assert.Equal(t, e.Point(), a.Number(), "address is not the x coordinate")
	assert.Equal(t, e[1:], a.Bytes(), "wrong bytes")

	b := address.FromEncoding(point.New(e.Type(), a.Number()))
	assert.True(t, a == b, "addresses differ")
}

func TestText(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("address-text"))
	a, _ := makeAddress(t, ctx)

	s := a.String()
	parsed, err := address.FromBase58(s)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, a, parsed, "text round trip")

	assert.Equal(t, s, fmt.Sprintf("%s", a), "wrong string form")
	assert.Equal(t, fmt.Sprintf("<address:%x>", a[:]), fmt.Sprintf("%#v", a), "wrong go string form")

	buffer, err := json.Marshal(a)
	assert.Nil(t, err, "marshal error")
	var decoded address.Address
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, a, decoded, "json round trip")
}

func TestChecksum(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("address-checksum"))
	a, _ := makeAddress(t, ctx)

	buffer, err := base58.Decode(a.String())
	assert.Nil(t, err, "decode error")

	buffer[0] ^= 0x01
	_, err = address.FromBase58(base58.Encode(buffer))
	assert.Equal(t, fault.ErrChecksumMismatch, err, "corrupted address accepted")

	_, err = address.FromBase58(base58.Encode(buffer[:20]))
	assert.Equal(t, fault.ErrInvalidLength, err, "short address accepted")

	_, err = address.FromBase58("0OIl")
	assert.NotNil(t, err, "invalid base58 accepted")
}

func TestCompare(t *testing.T) {
	ctx := ecc.New(fixtures.NewReader("address-order"))
	list := make([]address.Address, 10)
	for i := range list {
		list[i], _ = makeAddress(t, ctx)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Compare(list[j]) < 0
	})
	for i := 1; i < len(list); i += 1 {
		assert.Equal(t, -1, list[i-1].Compare(list[i]), "%d: not sorted", i)
	}
	assert.Equal(t, 0, list[0].Compare(list[0]), "self compare")
}
