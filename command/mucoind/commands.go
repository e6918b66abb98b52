// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/mu-coin/mucoind/address"
	"github.com/mu-coin/mucoind/blockstore"
	"github.com/mu-coin/mucoind/ecc"
	"github.com/mu-coin/mucoind/fault"
	"github.com/mu-coin/mucoind/intake"
	"github.com/mu-coin/mucoind/keypair"
	"github.com/mu-coin/mucoind/ledger"
	"github.com/mu-coin/mucoind/util"
)

const (
	keyPairFilename = "mucoin.key"
)

// setup command handler
//
// commands that run to create key files these commands cannot
// access any internal database or states or the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "generate-keypair", "key":
		fileName := keyPairFilename
		if len(arguments) > 0 {
			fileName = arguments[0]
		}

		if util.EnsureFileExists(fileName) {
			fmt.Printf("generate key pair: %q error: %s\n", fileName, fault.ErrAlreadyInitialised)
			exitwithstatus.Exit(1)
		}

		ctx := ecc.New(nil)
		k, err := keypair.New(ctx)
		if nil != err {
			fmt.Printf("generate key pair: %q error: %s\n", fileName, err)
			exitwithstatus.Exit(1)
		}
		if err := keypair.Save(ctx, fileName, k); nil != err {
			fmt.Printf("generate key pair: %q error: %s\n", fileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated key pair: %q  address: %s\n", fileName, k.Address(ctx))

	case "start", "run":
		return false // continue processing

	case "latest", "l", "process", "p", "history", "hist":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  generate-keypair [FILE]    (key)    - create a key pair in: %q\n", keyPairFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  latest ADDRESS             (l)      - show the latest block recorded for an address\n")
		fmt.Printf("\n")

		fmt.Printf("  history ADDRESS [S [N]]    (hist)   - show N blocks from index S for an address\n")
		fmt.Printf("                                        leveldb store only\n")
		fmt.Printf("\n")

		fmt.Printf("  process FILE...            (p)      - validate and record block files then exit\n")
		fmt.Printf("                                        files in the intake directory are moved to\n")
		fmt.Printf("                                        accepted/ or rejected/, others are left in place\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the block store is open so these commands can access and/or change it
func processDataCommand(log *logger.L, arguments []string, store blockstore.Store, theLedger *ledger.Ledger, in *intake.Intake) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "latest", "l":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing address argument")
		}
		a, err := address.FromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("address: %q  error: %s", arguments[0], err)
		}
		block, err := theLedger.Previous(a)
		if nil != err {
			exitwithstatus.Message("address: %s  error: %s", a, err)
		}
		printJson(block)

	case "history", "hist":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing address argument")
		}
		pool, ok := store.(*blockstore.Pool)
		if !ok {
			exitwithstatus.Message("history requires the leveldb store")
		}
		a, err := address.FromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("address: %q  error: %s", arguments[0], err)
		}
		start := uint64(0)
		count := 10
		if len(arguments) > 1 {
			if _, err := fmt.Sscan(arguments[1], &start); nil != err {
				exitwithstatus.Message("start: %q  error: %s", arguments[1], err)
			}
		}
		if len(arguments) > 2 {
			if _, err := fmt.Sscan(arguments[2], &count); nil != err {
				exitwithstatus.Message("count: %q  error: %s", arguments[2], err)
			}
		}
		blocks, err := pool.History(a, start, count)
		if nil != err {
			exitwithstatus.Message("address: %s  error: %s", a, err)
		}
		printJson(blocks)

	case "process", "p":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing file argument")
		}
		rc := 0
		for _, fileName := range arguments {
			result, err := in.ProcessFile(fileName)
			if nil != err {
				log.Errorf("file: %q  error: %s", fileName, err)
			}
			fmt.Printf("%s: %s\n", fileName, result)
			if !result.Accepted {
				rc = 1
			}
		}
		if 0 != rc {
			exitwithstatus.Exit(rc)
		}

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func printJson(message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	fmt.Printf("%s\n", b)
}
