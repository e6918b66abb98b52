// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package number - fixed width unsigned integers
//
// Uint256 and Uint512 hold their value as a big endian (canonical)
// byte array, this is the form used for hashing and for storage.
// Arithmetic is done by converting to big.Int through an array of
// 64 bit words held least significant word first.
//
// Constructing from a negative or oversized big.Int is a caller bug
// and panics.
package number
