// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - signed multi-address balance changes
//
// A Block is an ordered list of Entries, one per address.  Each entry
// claims a new balance and the next sequence number for its address
// and is signed by the address owner over the block hash.
//
// Block hash, SHA-256 over each entry in order:
//
//   address (32 bytes) ++ balance (32 bytes, big endian) ++ sequence (2 bytes, little endian)
//
// Packed record (storage):
//
//   count (varint64) ++ [ address ++ balance ++ sequence (2 bytes, big endian) ++ signature (64 bytes) ++ point type ]
//
// The signature is not part of the hash, so entries may be signed in
// any order by their separate owners.
package transaction
