// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/mu-coin/mucoind/fault"
)

func newTestAccess(t *testing.T) (Access, *leveldb.DB) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}
	return newDA(db, new(leveldb.Batch), newCache()), db
}

func TestAccessBeginTwice(t *testing.T) {
	da, db := newTestAccess(t)
	defer db.Close()

	assert.Nil(t, da.Begin(), "first begin")
	assert.Equal(t, fault.ErrTransactionInProgress, da.Begin(), "second begin")
	assert.True(t, da.InUse(), "not in use")

	da.Abort()
	assert.False(t, da.InUse(), "still in use")
}

func TestAccessCommitWithoutBegin(t *testing.T) {
	da, db := newTestAccess(t)
	defer db.Close()

	assert.Equal(t, fault.ErrTransactionNotStarted, da.Commit(), "wrong error")
}

func TestAccessReadsPendingWrites(t *testing.T) {
	da, db := newTestAccess(t)
	defer db.Close()

	key := []byte("key")
	value := []byte("value")

	_ = da.Begin()
	da.Put(key, value)

	actual, err := da.Get(key)
	assert.Nil(t, err, "get error")
	assert.Equal(t, value, actual, "pending value not visible")

	has, err := db.Has(key, nil)
	assert.Nil(t, err, "db has error")
	assert.False(t, has, "written before commit")

	err = da.Commit()
	assert.Nil(t, err, "commit error")

	actual, err = db.Get(key, nil)
	assert.Nil(t, err, "db get error")
	assert.Equal(t, value, actual, "committed value")
}

func TestAccessAbortDiscards(t *testing.T) {
	da, db := newTestAccess(t)
	defer db.Close()

	key := []byte("key")

	_ = da.Begin()
	da.Put(key, []byte("value"))
	da.Abort()

	actual, err := da.Get(key)
	assert.Nil(t, err, "get error")
	assert.Nil(t, actual, "aborted value visible")

	_ = da.Begin()
	err = da.Commit()
	assert.Nil(t, err, "empty commit error")

	has, err := da.Has(key)
	assert.Nil(t, err, "has error")
	assert.False(t, has, "aborted value was written")
}

func TestAccessPendingDelete(t *testing.T) {
	da, db := newTestAccess(t)
	defer db.Close()

	key := []byte("key")
	_ = db.Put(key, []byte("value"), nil)

	_ = da.Begin()
	da.Delete(key)

	has, err := da.Has(key)
	assert.Nil(t, err, "has error")
	assert.False(t, has, "pending delete still visible")

	_ = da.Commit()
	has, _ = db.Has(key, nil)
	assert.False(t, has, "delete not committed")
}
