// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - common setup for package tests
package fixtures

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - start a critical-only logger writing below ./testing
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Reader - a deterministic byte stream for key generation in tests
//
// the stream is SHA-256(seed ++ counter) for counter = 0, 1, 2…
type Reader struct {
	seed    []byte
	counter uint64
	buffer  []byte
}

// NewReader - create a deterministic reader from a seed string
func NewReader(seed string) *Reader {
	return &Reader{
		seed: []byte(seed),
	}
}

// Read - fill p from the stream, never fails
func (r *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if 0 == len(r.buffer) {
			block := make([]byte, len(r.seed)+8)
			copy(block, r.seed)
			binary.BigEndian.PutUint64(block[len(r.seed):], r.counter)
			r.counter += 1
			digest := sha256.Sum256(block)
			r.buffer = digest[:]
		}
		c := copy(p[n:], r.buffer)
		r.buffer = r.buffer[c:]
		n += c
	}
	return n, nil
}
