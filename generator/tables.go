// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package generator

var courses = []string{
	"Computer Science",
	"Mathematics",
	"Physics",
	"Biology",
	"Chemistry",
}

var faculties = []string{
	"Faculty of Science",
	"Faculty of Arts",
	"Faculty of Engineering",
	"Faculty of Medicine",
}

var universities = []string{
	"Harvard University",
	"Stanford University",
	"Massachusetts Institute of Technology",
	"California Institute of Technology",
	"University of Cambridge",
	"University of Oxford",
	"ETH Zurich",
	"University of Tokyo",
	"SPbU",
	"MSU",
	"HSE",
	"MIPT",
}

// room numbers: <floor>/<number>
const (
	minimumFloor  = 1
	maximumFloor  = 23
	minimumNumber = 101
	maximumNumber = 1499
)
