// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/roster/record"
)

func TestStoreAddGet(t *testing.T) {
	s := record.NewStore()
	assert.Equal(t, 0, s.Count(), "new store not empty")

	_, ok := s.Get(record.Handle{})
	assert.False(t, ok, "zero handle resolved")
	assert.False(t, record.Handle{}.IsValid(), "zero handle valid")

	r := record.Record{
		ID:          42,
		Name:        "Ana Ivanova",
		Affiliation: "Physics at the Faculty of Science of ETH Zurich",
		BirthDate:   "1999-04-07",
		Room:        "7/1203",
	}
	h := s.Add(r)
	assert.True(t, h.IsValid(), "handle not valid")
	assert.Equal(t, 1, s.Count(), "wrong count")

	actual, ok := s.Get(h)
	assert.True(t, ok, "handle not resolved")
	assert.Equal(t, r, actual, "wrong record")
}

// the caller's variable can change after Add without affecting the store
func TestStoreCopiesRecord(t *testing.T) {
	s := record.NewStore()
	handles := make([]record.Handle, 0, 3)

	r := record.Record{}
	for i := 1; i <= 3; i += 1 {
		r.ID = uint32(i)
		r.Name = fmt.Sprintf("name-%d", i)
		handles = append(handles, s.Add(r))
	}

	for i, h := range handles {
		actual, ok := s.Get(h)
		assert.True(t, ok, "handle: %s not resolved", h)
		assert.Equal(t, uint32(i+1), actual.ID, "wrong id")
		assert.Equal(t, fmt.Sprintf("name-%d", i+1), actual.Name, "wrong name")
	}
}

// handles issued early remain valid after the store grows
func TestStoreHandleStability(t *testing.T) {
	s := record.NewStore()
	first := s.Add(record.Record{ID: 1, Name: "first"})
	for i := 2; i <= 10000; i += 1 {
		s.Add(record.Record{ID: uint32(i)})
	}
	actual, ok := s.Get(first)
	assert.True(t, ok, "first handle lost")
	assert.Equal(t, "first", actual.Name, "first record changed")
	assert.Equal(t, 10000, s.Count(), "wrong count")
}

func TestStoreForeignHandle(t *testing.T) {
	large := record.NewStore()
	var h record.Handle
	for i := 0; i < 5; i += 1 {
		h = large.Add(record.Record{ID: uint32(i)})
	}

	small := record.NewStore()
	small.Add(record.Record{ID: 99})
	_, ok := small.Get(h)
	assert.False(t, ok, "out of range handle resolved")
}

// a handle in range of another store must still be rejected there
func TestStoreHandleFromOtherStore(t *testing.T) {
	a := record.NewStore()
	b := record.NewStore()
	a.Add(record.Record{ID: 1, Name: "a-first"})
	b.Add(record.Record{ID: 1, Name: "b-first"})
	fromA := a.Add(record.Record{ID: 2, Name: "from-a"})
	b.Add(record.Record{ID: 2, Name: "from-b"})

	actual, ok := b.Get(fromA)
	assert.False(t, ok, "handle of store a resolved in store b to %q", actual.Name)

	actual, ok = a.Get(fromA)
	assert.True(t, ok, "handle not resolved in its own store")
	assert.Equal(t, "from-a", actual.Name, "wrong record")

	b.Each(func(h record.Handle, r record.Record) {
		_, ok := a.Get(h)
		assert.False(t, ok, "handle: %s of store b resolved in store a", h)
	})
}

func TestStoreEach(t *testing.T) {
	s := record.NewStore()
	for i := 1; i <= 4; i += 1 {
		s.Add(record.Record{ID: uint32(i * 10)})
	}

	ids := []uint32{}
	s.Each(func(h record.Handle, r record.Record) {
		actual, ok := s.Get(h)
		assert.True(t, ok, "each handle not resolved")
		assert.Equal(t, r, actual, "each handle mismatch")
		ids = append(ids, r.ID)
	})
	assert.Equal(t, []uint32{10, 20, 30, 40}, ids, "wrong order")
}

func TestRecordString(t *testing.T) {
	r := record.Record{
		ID:          7,
		Name:        "Juan Petrov",
		Affiliation: "Biology at the Faculty of Arts of MSU",
		BirthDate:   "1985-12-01",
		Room:        "3/101",
	}
	assert.Equal(t, "7: Juan Petrov born: 1985-12-01 room: 3/101 (Biology at the Faculty of Arts of MSU)", r.String(), "wrong summary")
	assert.Equal(t, "#-", record.Handle{}.String(), "zero handle string")
}
