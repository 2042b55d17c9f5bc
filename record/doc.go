// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the records held by a catalog and the store that
// owns them
//
// A Store is append only.  Adding a record returns a Handle, which is
// the only way an index refers to a record; a handle stays valid for
// the whole life of its store since records are never moved out or
// freed individually.
package record
