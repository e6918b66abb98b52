// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/mu-coin/mucoind/ecc"
	"github.com/mu-coin/mucoind/intake"
	"github.com/mu-coin/mucoind/transaction"
)

type entryStatus struct {
	Address  string `json:"address"`
	Sequence uint16 `json:"sequence"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
}

type verifyResult struct {
	Hash    string        `json:"hash"`
	Valid   bool          `json:"valid"`
	Entries []entryStatus `json:"entries"`
}

func verifyBlock(ctx *ecc.Context, block *transaction.Block) *verifyResult {
	message := block.Hash()
	result := &verifyResult{
		Hash:    message.String(),
		Valid:   0 != len(block.Entries),
		Entries: make([]entryStatus, len(block.Entries)),
	}
	for i, e := range block.Entries {
		status := entryStatus{
			Address:  e.Address.String(),
			Sequence: e.Sequence,
			Valid:    true,
		}
		if err := e.Verify(ctx, message); nil != err {
			status.Valid = false
			status.Error = err.Error()
			result.Valid = false
		}
		result.Entries[i] = status
	}
	return result
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkRequired(c, "block")
	if nil != err {
		return err
	}

	block, err := intake.ReadBlock(fileName)
	if nil != err {
		return err
	}

	result := verifyBlock(m.ctx, block)
	if err := printJson(m.w, result); nil != err {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("block: %q has invalid entries", fileName)
	}
	return nil
}

func checkRequired(c *cli.Context, name string) (string, error) {
	s := c.String(name)
	if "" == s {
		return "", fmt.Errorf("--%s is required", name)
	}
	return s, nil
}
