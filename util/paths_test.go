// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mu-coin/mucoind/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/x.leveldb", util.EnsureAbsolute("/data", "x.leveldb"), "relative path")
	assert.Equal(t, "/other/x", util.EnsureAbsolute("/data", "/other/./x"), "absolute path")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data/sub", "../log"), "parent path")
}

func TestEnsureDirectory(t *testing.T) {
	dir := filepath.Join("paths-test", "a", "b")
	defer os.RemoveAll("paths-test")

	assert.False(t, util.EnsureFileExists(dir), "directory already present")
	assert.Nil(t, util.EnsureDirectory(dir), "create error")
	assert.True(t, util.EnsureFileExists(dir), "directory missing")
	assert.Nil(t, util.EnsureDirectory(dir), "second create error")
}
