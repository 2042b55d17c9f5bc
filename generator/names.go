// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package generator

import (
	"bufio"
	"os"
	"strings"

	"github.com/bitmark-inc/roster/fault"
)

// LoadNames - read a name list, one name per line
//
// surrounding white space is removed and blank lines are skipped
func LoadNames(fileName string) ([]string, error) {
	f, err := os.Open(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ErrNotFoundNameFile
		}
		return nil, err
	}
	defer f.Close()

	names := make([]string, 0, 1024)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if "" == name {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	if 0 == len(names) {
		return nil, fault.ErrEmptyNameList
	}
	return names, nil
}
