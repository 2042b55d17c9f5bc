// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"cmp"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/roster/avl"
	"github.com/bitmark-inc/roster/record"
)

// Catalog - the record store together with its indexes
type Catalog struct {
	log    *logger.L
	store  *record.Store
	byID   *avl.Tree[uint32, record.Handle]
	byName *avl.Tree[string, record.Handle]
}

// Entry - an index key resolved to its record
type Entry[K cmp.Ordered] struct {
	Key    K
	Record record.Record
}

// New - create an empty catalog
func New(log *logger.L) *Catalog {
	return &Catalog{
		log:    log,
		store:  record.NewStore(),
		byID:   avl.New[uint32, record.Handle](),
		byName: avl.New[string, record.Handle](),
	}
}

// AddRecord - store a record and index it by id and by name
func (c *Catalog) AddRecord(r record.Record) record.Handle {
	h := c.store.Add(r)
	c.byID.Insert(r.ID, h)
	c.byName.Insert(r.Name, h)
	c.log.Tracef("add: %s id: %d  name: %q", h, r.ID, r.Name)
	return h
}

// FindByID - the record with the given id
func (c *Catalog) FindByID(id uint32) (record.Record, bool) {
	return find(c.store, c.byID, id)
}

// FindByName - a record with the given name
//
// if several records share the name only one of them is returned
func (c *Catalog) FindByName(name string) (record.Record, bool) {
	return find(c.store, c.byName, name)
}

func find[K cmp.Ordered](store *record.Store, index *avl.Tree[K, record.Handle], key K) (record.Record, bool) {
	node := index.Search(key)
	if nil == node {
		return record.Record{}, false
	}
	return store.Get(node.Value())
}

// TraverseByID - all records in ascending id order
func (c *Catalog) TraverseByID() []Entry[uint32] {
	return traverse(c.store, c.byID)
}

// TraverseByName - all records in ascending name order
func (c *Catalog) TraverseByName() []Entry[string] {
	return traverse(c.store, c.byName)
}

func traverse[K cmp.Ordered](store *record.Store, index *avl.Tree[K, record.Handle]) []Entry[K] {
	nodes := index.Traverse()
	entries := make([]Entry[K], 0, len(nodes))
	for _, n := range nodes {
		r, _ := store.Get(n.Value)
		entries = append(entries, Entry[K]{Key: n.Key, Record: r})
	}
	return entries
}

// Count - number of records in the catalog
func (c *Catalog) Count() int {
	return c.store.Count()
}
