// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package generator - synthetic records for filling a catalog
//
// Names are built from two name lists (first names and surnames) read
// from plain text files, one name per line.  Every other field is
// drawn from fixed tables or ranges.  A generator with a fixed seed
// always produces the same sequence.
package generator
