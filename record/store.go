// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
	"sync/atomic"
)

// source of store identities, zero is never issued
var storeSequence uint32

// Handle - reference to a record in a store
//
// the zero value refers to nothing
type Handle struct {
	store uint32 // identity of the issuing store
	index uint32 // one based position in the store
}

// IsValid - false for the zero handle
func (h Handle) IsValid() bool {
	return 0 != h.store && 0 != h.index
}

// String - printable form for diagnostics
func (h Handle) String() string {
	if !h.IsValid() {
		return "#-"
	}
	return fmt.Sprintf("#%d.%d", h.store, h.index)
}

// Store - owns every record referenced by the indexes built over it
type Store struct {
	identity uint32
	records  []Record
}

// NewStore - create an empty store
func NewStore() *Store {
	return &Store{
		identity: atomic.AddUint32(&storeSequence, 1),
		records:  make([]Record, 0, 1024),
	}
}

// Add - copy a record into the store and return its handle
func (s *Store) Add(r Record) Handle {
	s.records = append(s.records, r)
	return s.handle(len(s.records) - 1)
}

// Get - fetch a copy of the record for a handle
//
// false for the zero handle or one that was not issued by this store
func (s *Store) Get(h Handle) (Record, bool) {
	if h.store != s.identity || 0 == h.index || int(h.index) > len(s.records) {
		return Record{}, false
	}
	return s.records[h.index-1], true
}

// Count - number of records in the store
func (s *Store) Count() int {
	return len(s.records)
}

// Each - call f for every record in the order they were added
func (s *Store) Each(f func(Handle, Record)) {
	for i, r := range s.records {
		f(s.handle(i), r)
	}
}

func (s *Store) handle(position int) Handle {
	return Handle{
		store: s.identity,
		index: uint32(position + 1),
	}
}
