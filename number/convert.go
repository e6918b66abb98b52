// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package number

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/bitmark-inc/logger"

	"github.com/mu-coin/mucoind/fault"
)

const qwordSize = 8

var qwordMask = new(big.Int).SetUint64(^uint64(0))

// reverse a byte slice in place
func reverse(buffer []byte) {
	for i, j := 0, len(buffer)-1; i < j; i, j = i+1, j-1 {
		buffer[i], buffer[j] = buffer[j], buffer[i]
	}
}

// split a big.Int into words, least significant first
func bigToQwords(name string, n *big.Int, qwords []uint64) {
	if n.Sign() < 0 || n.BitLen() > len(qwords)*64 {
		logger.Panicf("number.%s: value: %s out of range", name, n.String())
	}
	v := new(big.Int).Set(n)
	w := new(big.Int)
	for i := range qwords {
		qwords[i] = w.And(v, qwordMask).Uint64()
		v.Rsh(v, 64)
	}
}

// lay the words out in memory order then reverse the whole
// buffer to obtain the canonical big endian bytes
func qwordsToBytes(qwords []uint64, buffer []byte) {
	for i, q := range qwords {
		binary.LittleEndian.PutUint64(buffer[i*qwordSize:], q)
	}
	reverse(buffer)
}

// inverse of qwordsToBytes, buffer is not modified
func bytesToQwords(buffer []byte, qwords []uint64) {
	temp := make([]byte, len(buffer))
	copy(temp, buffer)
	reverse(temp)
	for i := range qwords {
		qwords[i] = binary.LittleEndian.Uint64(temp[i*qwordSize:])
	}
}

// reassemble the words most significant first
func qwordsToBig(qwords []uint64) *big.Int {
	last := len(qwords) - 1
	result := new(big.Int).SetUint64(qwords[last])
	w := new(big.Int)
	for i := last - 1; i >= 0; i -= 1 {
		result.Lsh(result, 64)
		result.Or(result, w.SetUint64(qwords[i]))
	}
	return result
}

// parse a decimal string into a big.Int that fits in bits
func parseDecimal(s string, bits int) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fault.ErrInvalidNumber
	}
	if n.Sign() < 0 || n.BitLen() > bits {
		return nil, fault.ErrNumberOutOfRange
	}
	return n, nil
}

// hex text must decode to exactly len(buffer) bytes
func decodeHex(buffer []byte, s []byte) error {
	if hex.EncodedLen(len(buffer)) != len(s) {
		return fault.ErrInvalidLength
	}
	_, err := hex.Decode(buffer, s)
	return err
}

// scan a hex token for the fmt package
func scanHex(state fmt.ScanState, buffer []byte) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return decodeHex(buffer, token)
}
