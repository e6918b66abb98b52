// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/mu-coin/mucoind/ecc"
)

type metadata struct {
	ctx     *ecc.Context
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "mucoin-cli"
	app.Usage = "key and block tool for mucoind"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a key pair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " also save the key pair to `FILE`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "address",
			Usage:     "show the address of a key file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*key pair `FILE`",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "make-block",
			Usage:     "create a block and sign every entry",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "entry, e",
					Usage: "*entry as `KEYFILE:BALANCE:SEQUENCE`, repeat for each entry",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write the block to `FILE` instead of standard output",
				},
			},
			Action: runMakeBlock,
		},
		{
			Name:      "verify",
			Usage:     "check the signature of every entry in a block",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "block, b",
					Value: "",
					Usage: "*block `FILE`",
				},
			},
			Action: runVerify,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			ctx:     ecc.New(nil),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
