// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/mu-coin/mucoind/ecc"
	"github.com/mu-coin/mucoind/keypair"
	"github.com/mu-coin/mucoind/number"
	"github.com/mu-coin/mucoind/transaction"
)

type entryArgument struct {
	keyFile  string
	balance  number.Uint256
	sequence uint16
}

// KEYFILE:BALANCE:SEQUENCE, the key file name may itself contain ':'
func parseEntryArgument(s string) (*entryArgument, error) {
	n := strings.LastIndex(s, ":")
	if n <= 0 {
		return nil, fmt.Errorf("entry: %q is not KEYFILE:BALANCE:SEQUENCE", s)
	}
	sequence, err := strconv.ParseUint(s[n+1:], 10, 16)
	if nil != err {
		return nil, fmt.Errorf("entry: %q sequence error: %s", s, err)
	}

	s2 := s[:n]
	n = strings.LastIndex(s2, ":")
	if n <= 0 {
		return nil, fmt.Errorf("entry: %q is not KEYFILE:BALANCE:SEQUENCE", s)
	}
	balance, err := number.Uint256FromDecimal(s2[n+1:])
	if nil != err {
		return nil, fmt.Errorf("entry: %q balance error: %s", s, err)
	}

	return &entryArgument{
		keyFile:  s2[:n],
		balance:  balance,
		sequence: uint16(sequence),
	}, nil
}

// build and sign a block from the entry arguments
func makeBlock(ctx *ecc.Context, arguments []string) (*transaction.Block, error) {
	if 0 == len(arguments) {
		return nil, fmt.Errorf("at least one entry is required")
	}

	keys := make([]*keypair.KeyPair, len(arguments))
	entries := make([]transaction.Entry, len(arguments))
	for i, a := range arguments {
		e, err := parseEntryArgument(a)
		if nil != err {
			return nil, err
		}
		k, err := keypair.Load(ctx, e.keyFile)
		if nil != err {
			return nil, err
		}
		keys[i] = k
		entries[i] = transaction.NewEntry(ctx, k.PublicKey, e.balance, e.sequence)
	}

	block := transaction.NewBlock(entries...)
	for _, k := range keys {
		if _, err := block.SignWith(ctx, k.PrivateKey); nil != err {
			return nil, err
		}
	}
	return block, nil
}

func runMakeBlock(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	block, err := makeBlock(m.ctx, c.StringSlice("entry"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "hash: %s\n", block.Hash())
	}

	output := c.String("output")
	if "" == output {
		return printJson(m.w, block)
	}

	buffer, err := json.MarshalIndent(block, "", "  ")
	if nil != err {
		return err
	}
	return ioutil.WriteFile(output, append(buffer, '\n'), 0600)
}
