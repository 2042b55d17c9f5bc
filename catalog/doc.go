// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package catalog - a record store with two AVL indexes over it
//
// Records are indexed by id (expected to be unique, but not checked)
// and by name (not unique).  Both indexes refer to the same stored
// record through its handle.  A lookup that finds nothing is a normal
// result, not an error.
//
// Note: a catalog is not thread safe.
package catalog
