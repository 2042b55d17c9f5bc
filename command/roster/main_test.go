// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/fatih/color"

	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	logDirectory, err := os.MkdirTemp("", "roster-test-")
	if nil != err {
		panic(fmt.Sprintf("log directory creation failed: %s", err))
	}

	logConfig := logger.Configuration{
		Directory: logDirectory,
		File:      "roster.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err := logger.Initialise(logConfig); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	// plain text so output can be compared
	color.NoColor = true

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(logDirectory)
	os.Exit(rc)
}
