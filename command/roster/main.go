// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/roster/catalog"
	"github.com/bitmark-inc/roster/generator"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(os.Stdout, arguments, theConfiguration) {
		return
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}
	quiet := len(options["quiet"]) > 0

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// name lists
	firstNames, err := generator.LoadNames(theConfiguration.Names.First)
	if nil != err {
		log.Criticalf("first names: %q  error: %s", theConfiguration.Names.First, err)
		exitwithstatus.Message("%s: first names: %q  error: %s", program, theConfiguration.Names.First, err)
	}
	surnames, err := generator.LoadNames(theConfiguration.Names.Surname)
	if nil != err {
		log.Criticalf("surnames: %q  error: %s", theConfiguration.Names.Surname, err)
		exitwithstatus.Message("%s: surnames: %q  error: %s", program, theConfiguration.Names.Surname, err)
	}
	log.Infof("names: first: %d  surnames: %d", len(firstNames), len(surnames))

	source, err := generator.New(generator.Parameters{
		Seed:        theConfiguration.Seed,
		IDLimit:     theConfiguration.IDLimit,
		FirstNames:  firstNames,
		Surnames:    surnames,
		MinimumYear: theConfiguration.BirthYears.Minimum,
		MaximumYear: theConfiguration.BirthYears.Maximum,
	})
	if nil != err {
		log.Criticalf("generator initialise error: %s", err)
		exitwithstatus.Message("%s: generator initialise error: %s", program, err)
	}

	// build the catalog
	theCatalog := catalog.New(logger.New("catalog"))
	start := time.Now()
	err = theCatalog.Populate(source, theConfiguration.Records)
	if nil != err {
		log.Criticalf("populate error: %s", err)
		exitwithstatus.Message("%s: populate error: %s", program, err)
	}
	elapsed := time.Since(start)
	log.Infof("built: %d records in: %s", theCatalog.Count(), elapsed)

	if !quiet {
		fmt.Printf("built %s records in %s\n", humanize.Comma(int64(theCatalog.Count())), elapsed.Round(time.Millisecond))
	}

	// single query from the command line
	if len(arguments) > 0 {
		if err := processQueryCommand(os.Stdout, theCatalog, arguments); nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
		return
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	log.Infof("console: interactive: %v", interactive)
	runConsole(os.Stdin, os.Stdout, theCatalog, interactive)
}
