// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a generic height balanced (AVL) tree used as an in
// memory index
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree and is rebalanced on the
// way back up after every insert or delete, so all operations are
// O(log n).
//
// Duplicate keys are allowed: an insert never overwrites, equal keys
// are routed to the right.  Search and Delete both stop at the first
// node with an equal key found by descending from the root.
//
// The value part is whatever the index needs to carry, e.g. a handle
// to a record held elsewhere; a key only tree is created by NewSet.
package avl
