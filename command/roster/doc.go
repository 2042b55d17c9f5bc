// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// roster - build a catalog of synthetic records and query it
//
// The configuration file (Lua) names the two name lists and the
// number of records to generate.  After the catalog is built a single
// query can be given on the command line, otherwise queries are read
// from standard input one per line.
//
//   roster --config-file=roster.conf
//   roster --config-file=roster.conf id 4711
//   roster --config-file=roster.conf name Ana Ivanova
package main
