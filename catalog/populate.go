// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"github.com/bitmark-inc/roster/fault"
	"github.com/bitmark-inc/roster/record"
)

//go:generate mockgen -destination=mocks/source.go -package=mocks github.com/bitmark-inc/roster/catalog Source

// Source - supplier of finished records
type Source interface {
	Next() (record.Record, error)
}

// number of records between progress messages
const progressInterval = 10000

// Populate - add count records taken from source
//
// stops at the first error from the source, records already added
// stay in the catalog
func (c *Catalog) Populate(source Source, count int) error {
	if count < 0 {
		return fault.ErrInvalidRecordCount
	}

	c.log.Infof("populate: %d records", count)
	for i := 1; i <= count; i += 1 {
		r, err := source.Next()
		if nil != err {
			c.log.Errorf("populate: record: %d  error: %s", i, err)
			return err
		}
		c.AddRecord(r)

		if 0 == i%progressInterval {
			c.log.Infof("populate: %d of %d", i, count)
		}
	}

	s := c.Statistics()
	c.log.Infof("populate: done  records: %d  id height: %d  name height: %d", s.Records, s.ByID.Height, s.ByName.Height)
	return nil
}
