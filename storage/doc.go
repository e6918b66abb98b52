// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk block history
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte ledger address
// 4. count        = successive index value as big endian uint64 (8 bytes)
// 5. packed block = transaction.Packed
//
// Address history:
//
//   N ++ address               - next count value to use for appending to the history
//                                data: count
//   H ++ address ++ count      - blocks that mention the address, oldest first
//                                data: packed block
//
// Testing:
//   Z ++ key                   - testing data
package storage
