// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/exitwithstatus"
)

// setup command handler
//
// commands that do not need the configuration file, returns true if
// the command was handled here
func processSetupCommand(program string, command string) bool {

	switch command {
	case "run", "start", "keys", "check-config", "check":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  run                        (start)  - run the workload and print the report\n")
		fmt.Printf("                                        same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  keys                                - print the generated keys, one per line\n")
		fmt.Printf("\n")

		fmt.Printf("  check-config               (check)  - print the parsed configuration as JSON\n")
		fmt.Printf("\n")

		if "help" != command && "h" != command && "?" != command {
			exitwithstatus.Exit(1)
		}
	}
	return true
}

// print the configuration in a readable form
func printConfiguration(w io.Writer, conf *Configuration) error {
	b, err := json.MarshalIndent(conf, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
