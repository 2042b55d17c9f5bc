// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/roster/catalog"
	"github.com/bitmark-inc/roster/fault"
	"github.com/bitmark-inc/roster/record"
)

var (
	foundColour    = color.New(color.FgGreen)
	notFoundColour = color.New(color.FgYellow)
	errorColour    = color.New(color.FgRed)
)

// setup command handler
//
// commands that need neither the configuration file nor the catalog;
// returns false for the query commands so they run after the catalog
// is built
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	case "config-test", "cfg":
		return false

	default:
		if isQueryCommand(command) {
			return false
		}
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
		fmt.Printf("  version                    (v)      - display version string\n\n")
		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n\n")
		printQueryHelp(os.Stdout)

		if "help" != command && "h" != command && "?" != command {
			exitwithstatus.Exit(1)
		}
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(out io.Writer, arguments []string, options *Configuration) bool {

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
		var buffer bytes.Buffer
		json.Indent(&buffer, b, "", "  ")
		buffer.WriteString("\n")
		buffer.WriteTo(out)

	default: // unknown commands fall through to query command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func isQueryCommand(command string) bool {
	switch command {
	case "id", "name", "dump-ids", "dump-names", "stats":
		return true
	}
	return false
}

func printQueryHelp(out io.Writer) {
	fmt.Fprintf(out, "  id NUMBER                           - find the record with this id\n")
	fmt.Fprintf(out, "  name FIRST SURNAME                  - find a record with this name\n")
	fmt.Fprintf(out, "  dump-ids [LIMIT]                    - list records in id order\n")
	fmt.Fprintf(out, "  dump-names [LIMIT]                  - list records in name order\n")
	fmt.Fprintf(out, "  stats                               - display catalog statistics\n")
	fmt.Fprintf(out, "\n")
}

// query command handler
// runs against a fully built catalog
func processQueryCommand(out io.Writer, c *catalog.Catalog, arguments []string) error {

	if 0 == len(arguments) {
		return fault.ErrMissingArgument
	}
	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "id":
		if 1 != len(arguments) {
			return fault.ErrMissingArgument
		}
		id, err := strconv.ParseUint(arguments[0], 10, 32)
		if nil != err {
			return fault.ErrInvalidRecordID
		}
		r, found := c.FindByID(uint32(id))
		printResult(out, found, r, "id: "+arguments[0])

	case "name":
		if 0 == len(arguments) {
			return fault.ErrMissingArgument
		}
		name := strings.Join(arguments, " ")
		r, found := c.FindByName(name)
		printResult(out, found, r, fmt.Sprintf("name: %q", name))

	case "dump-ids":
		limit, err := dumpLimit(arguments)
		if nil != err {
			return err
		}
		for i, e := range c.TraverseByID() {
			if i >= limit {
				break
			}
			fmt.Fprintf(out, "%10d  %s\n", e.Key, e.Record)
		}

	case "dump-names":
		limit, err := dumpLimit(arguments)
		if nil != err {
			return err
		}
		for i, e := range c.TraverseByName() {
			if i >= limit {
				break
			}
			fmt.Fprintf(out, "%-30s  %s\n", e.Key, e.Record)
		}

	case "stats":
		s := c.Statistics()
		fmt.Fprintf(out, "records:     %s\n", humanize.Comma(int64(s.Records)))
		fmt.Fprintf(out, "id index:    height: %d  rotations: %s\n", s.ByID.Height, humanize.Comma(int64(s.ByID.Rotations)))
		fmt.Fprintf(out, "name index:  height: %d  rotations: %s\n", s.ByName.Height, humanize.Comma(int64(s.ByName.Rotations)))

	case "help", "h", "?":
		printQueryHelp(out)

	default:
		return fault.ErrInvalidCommand
	}
	return nil
}

func printResult(out io.Writer, found bool, r record.Record, query string) {
	if found {
		foundColour.Fprintf(out, "found: ")
		fmt.Fprintf(out, "%s\n", r)
	} else {
		notFoundColour.Fprintf(out, "not found: ")
		fmt.Fprintf(out, "%s\n", query)
	}
}

// optional positive limit, default is everything
func dumpLimit(arguments []string) (int, error) {
	if 0 == len(arguments) {
		return int(^uint(0) >> 1), nil
	}
	n, err := strconv.Atoi(arguments[0])
	if nil != err || n <= 0 {
		return 0, fault.ErrInvalidCount
	}
	return n, nil
}
