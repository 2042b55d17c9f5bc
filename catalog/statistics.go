// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

// IndexStatistics - shape of one index
type IndexStatistics struct {
	Nodes     int    `json:"nodes"`
	Height    int    `json:"height"`
	Rotations uint64 `json:"rotations"`
}

// Statistics - summary of the catalog
type Statistics struct {
	Records int             `json:"records"`
	ByID    IndexStatistics `json:"byId"`
	ByName  IndexStatistics `json:"byName"`
}

// Statistics - current record count and index shapes
func (c *Catalog) Statistics() Statistics {
	return Statistics{
		Records: c.store.Count(),
		ByID: IndexStatistics{
			Nodes:     c.byID.Count(),
			Height:    c.byID.Height(),
			Rotations: c.byID.Rotations(),
		},
		ByName: IndexStatistics{
			Nodes:     c.byName.Count(),
			Height:    c.byName.Height(),
			Rotations: c.byName.Rotations(),
		},
	}
}
