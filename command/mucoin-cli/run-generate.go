// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/mu-coin/mucoind/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	k, err := keypair.New(m.ctx)
	if nil != err {
		return err
	}

	if output := c.String("output"); "" != output {
		if err := keypair.Save(m.ctx, output, k); nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "saved: %q\n", output)
		}
	}

	return printJson(m.w, k.Raw(m.ctx))
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkRequired(c, "key")
	if nil != err {
		return err
	}

	k, err := keypair.Load(m.ctx, fileName)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s\n", k.Address(m.ctx))
	return nil
}
