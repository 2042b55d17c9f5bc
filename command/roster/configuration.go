// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/roster/configuration"
	"github.com/bitmark-inc/roster/fault"
	"github.com/bitmark-inc/roster/generator"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultRecords          = 100000
	defaultFirstNamesFile   = "es.txt"
	defaultSurnamesFile     = "ru.txt"
	defaultLogDirectory     = "log"
	defaultLogFile          = "roster.log"
	defaultLogCount         = 10          //  number of log files retained
	defaultLogSize          = 1024 * 1024 // rotate when <logfile> exceeds this size
	defaultLogConsoleOutput = false
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// NamesType - the two name list files
type NamesType struct {
	First   string `gluamapper:"first" json:"first"`
	Surname string `gluamapper:"surname" json:"surname"`
}

// YearsType - inclusive range of birth years
type YearsType struct {
	Minimum int `gluamapper:"minimum" json:"minimum"`
	Maximum int `gluamapper:"maximum" json:"maximum"`
}

// Configuration - contents of the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Records       int                  `gluamapper:"records" json:"records"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	IDLimit       int                  `gluamapper:"id_limit" json:"id_limit"`
	Names         NamesType            `gluamapper:"names" json:"names"`
	BirthYears    YearsType            `gluamapper:"birth_years" json:"birth_years"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Records:       defaultRecords,
		Seed:          0, // time based
		IDLimit:       generator.DefaultIDLimit,

		Names: NamesType{
			First:   defaultFirstNamesFile,
			Surname: defaultSurnamesFile,
		},

		BirthYears: YearsType{
			Minimum: generator.DefaultMinimumYear,
			Maximum: generator.DefaultMaximumYear,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   defaultLogConsoleOutput,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.Records < 0 {
		return nil, fault.ErrInvalidRecordCount
	}
	if options.Records > options.IDLimit {
		return nil, fmt.Errorf("records: %d exceeds id_limit: %d", options.Records, options.IDLimit)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidDataDirectory
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Names.First,
		&options.Names.Surname,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// the log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// create log directory if it does not already exist
	if fileInfo, err := os.Stat(options.Logging.Directory); nil == err && !fileInfo.IsDir() {
		return nil, fault.ErrLogDirectoryExists
	}
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// if path is not absolute, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
