// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mu-coin/mucoind/fault"
	"github.com/mu-coin/mucoind/fixtures"
	"github.com/mu-coin/mucoind/storage"
)

const (
	databaseName = "test.leveldb"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setup(t *testing.T) {
	removeDatabase()
	err := storage.Initialise(databaseName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown() {
	storage.Finalise()
	removeDatabase()
}

func removeDatabase() {
	_ = os.RemoveAll(databaseName)
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(databaseName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "wrong error")
}

func TestReopenReadOnly(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	trx.PutN(storage.Pool.AddressCount, []byte("count"), 7)
	assert.Nil(t, trx.Commit(), "commit error")

	storage.Finalise()

	err = storage.Initialise(databaseName, storage.ReadOnly)
	assert.Nil(t, err, "read only open error")
	assert.True(t, storage.IsReadOnly(), "not read only")

	n, found := storage.Pool.AddressCount.GetN([]byte("count"))
	assert.True(t, found, "count not found")
	assert.Equal(t, uint64(7), n, "wrong count")
}

func TestReadOnlyMissingDatabase(t *testing.T) {
	removeDatabase()
	defer removeDatabase()

	err := storage.Initialise(databaseName, storage.ReadOnly)
	assert.NotNil(t, err, "opened a missing database")
	storage.Finalise()
}

func TestNoDatabase(t *testing.T) {
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.ErrDatabaseIsNotSet, err, "wrong error")
}

func TestTransactionPutGet(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrTransactionInProgress, err, "nested transaction")

	trx.Put(storage.Pool.TestData, []byte("key"), []byte("value"))
	assert.Equal(t, []byte("value"), trx.Get(storage.Pool.TestData, []byte("key")), "pending read")
	assert.True(t, trx.Has(storage.Pool.TestData, []byte("key")), "pending has")
	assert.False(t, storage.Pool.AddressCount.Has([]byte("key")), "leaked into another pool")

	trx.Abort()
	assert.False(t, trx.InUse(), "in use after abort")
	assert.Nil(t, storage.Pool.TestData.Get([]byte("key")), "abort kept value")

	trx, _ = storage.NewDBTransaction()
	trx.Put(storage.Pool.TestData, []byte("key"), []byte("value"))
	trx.PutN(storage.Pool.TestData, []byte("n"), 12)
	assert.Nil(t, trx.Commit(), "commit error")

	assert.Equal(t, []byte("value"), storage.Pool.TestData.Get([]byte("key")), "committed value")
	n, found := trx.GetN(storage.Pool.TestData, []byte("n"))
	assert.True(t, found, "n not found")
	assert.Equal(t, uint64(12), n, "wrong n")

	trx, _ = storage.NewDBTransaction()
	trx.Delete(storage.Pool.TestData, []byte("key"))
	assert.Nil(t, trx.Commit(), "commit error")
	assert.False(t, storage.Pool.TestData.Has([]byte("key")), "delete failed")
}

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown()

	trx, _ := storage.NewDBTransaction()
	for i := byte(0); i < 10; i += 1 {
		trx.Put(storage.Pool.TestData, []byte{'a', i}, []byte{i})
		trx.Put(storage.Pool.TestData, []byte{'b', i}, []byte{i + 100})
	}
	trx.Put(storage.Pool.AddressHistory, []byte{'a', 0}, []byte{'x'})
	assert.Nil(t, trx.Commit(), "commit error")

	cursor := storage.Pool.TestData.NewFetchCursor()
	data, err := cursor.Fetch(15)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 15, len(data), "first fetch")
	assert.Equal(t, []byte{'a', 0}, data[0].Key, "first key")

	data, err = cursor.Fetch(15)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 5, len(data), "second fetch")
	assert.Equal(t, []byte{'b', 9}, data[4].Key, "last key")

	cursor, err = storage.Pool.TestData.Prefix([]byte{'b'})
	assert.Nil(t, err, "prefix error")
	data, err = cursor.Fetch(100)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 10, len(data), "prefix fetch")
	for i, e := range data {
		assert.True(t, bytes.HasPrefix(e.Key, []byte{'b'}), "key outside prefix")
		assert.Equal(t, []byte{byte(i) + 100}, e.Value, "wrong value")
	}

	cursor = storage.Pool.TestData.NewFetchCursor().Seek([]byte{'b', 8})
	data, _ = cursor.Fetch(100)
	assert.Equal(t, 2, len(data), "seek fetch")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	_, err = storage.Pool.TestData.Prefix(nil)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "empty prefix")
}
