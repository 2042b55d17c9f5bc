// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
)

// Record - one catalog entry
//
// values are copied in and out of the store, so a record cannot be
// changed once added
type Record struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
	BirthDate   string `json:"birthDate"` // YYYY-MM-DD
	Room        string `json:"room"`      // <floor>/<number>
}

// String - single line summary
func (r Record) String() string {
	return fmt.Sprintf("%d: %s born: %s room: %s (%s)", r.ID, r.Name, r.BirthDate, r.Room, r.Affiliation)
}
