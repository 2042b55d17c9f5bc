// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/roster/catalog"
)

const consolePrompt = "roster> "

// read queries one per line until end of input or quit
//
// the prompt is only shown for an interactive terminal
func runConsole(in io.Reader, out io.Writer, c *catalog.Catalog, interactive bool) {

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, consolePrompt)
		}
		if !scanner.Scan() {
			break
		}

		arguments := strings.Fields(scanner.Text())
		if 0 == len(arguments) {
			continue
		}
		switch arguments[0] {
		case "quit", "exit", "q":
			return
		}

		if err := processQueryCommand(out, c, arguments); nil != err {
			errorColour.Fprintf(out, "error: ")
			fmt.Fprintf(out, "%s: %q\n", err, strings.Join(arguments, " "))
		}
	}
	if err := scanner.Err(); nil != err {
		errorColour.Fprintf(out, "error: ")
		fmt.Fprintf(out, "read input: %s\n", err)
		return
	}
	if interactive {
		fmt.Fprintln(out)
	}
}
