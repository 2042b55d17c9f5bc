// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/roster/fault"
	"github.com/bitmark-inc/roster/record"
)

// defaults
const (
	DefaultIDLimit     = 1000000
	DefaultMinimumYear = 1960
	DefaultMaximumYear = 2006
)

// Parameters - settings for a generator
type Parameters struct {
	Seed        int64 // zero: seed from the clock
	IDLimit     int   // ids are taken from 1…IDLimit without repeats
	FirstNames  []string
	Surnames    []string
	MinimumYear int // inclusive range of birth years
	MaximumYear int
}

// Generator - source of synthetic records
type Generator struct {
	r           *rand.Rand
	ids         []uint32 // unused ids are ids[used:]
	used        int
	firstNames  []string
	surnames    []string
	minimumYear int
	maximumYear int
}

// New - create a generator
func New(parameters Parameters) (*Generator, error) {
	if parameters.IDLimit <= 0 || uint64(parameters.IDLimit) > 1<<32-1 {
		return nil, fault.ErrInvalidIDLimit
	}
	if 0 == len(parameters.FirstNames) || 0 == len(parameters.Surnames) {
		return nil, fault.ErrEmptyNameList
	}
	if parameters.MinimumYear <= 0 || parameters.MinimumYear > parameters.MaximumYear {
		return nil, fault.ErrInvalidYearRange
	}

	seed := parameters.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}

	ids := make([]uint32, parameters.IDLimit)
	for i := range ids {
		ids[i] = uint32(i + 1)
	}

	return &Generator{
		r:           rand.New(rand.NewSource(seed)),
		ids:         ids,
		used:        0,
		firstNames:  parameters.FirstNames,
		surnames:    parameters.Surnames,
		minimumYear: parameters.MinimumYear,
		maximumYear: parameters.MaximumYear,
	}, nil
}

// Remaining - number of ids not yet issued
func (g *Generator) Remaining() int {
	return len(g.ids) - g.used
}

// Next - produce the next record
func (g *Generator) Next() (record.Record, error) {
	id, err := g.nextID()
	if nil != err {
		return record.Record{}, err
	}
	return record.Record{
		ID:          id,
		Name:        g.name(),
		Affiliation: g.affiliation(),
		BirthDate:   g.birthDate(),
		Room:        g.room(),
	}, nil
}

// one step of a Fisher-Yates shuffle, so ids never repeat
func (g *Generator) nextID() (uint32, error) {
	if g.used >= len(g.ids) {
		return 0, fault.ErrIDsExhausted
	}
	j := g.used + g.r.Intn(len(g.ids)-g.used)
	g.ids[g.used], g.ids[j] = g.ids[j], g.ids[g.used]
	id := g.ids[g.used]
	g.used += 1
	return id, nil
}

func (g *Generator) name() string {
	return g.pick(g.firstNames) + " " + g.pick(g.surnames)
}

func (g *Generator) affiliation() string {
	return g.pick(courses) + " at the " + g.pick(faculties) + " of " + g.pick(universities)
}

// a real calendar date
func (g *Generator) birthDate() string {
	year := g.between(g.minimumYear, g.maximumYear)
	month := time.Month(g.between(1, 12))

	// day zero of the following month is the last day of this one
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := g.between(1, days)
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func (g *Generator) room() string {
	return fmt.Sprintf("%d/%d", g.between(minimumFloor, maximumFloor), g.between(minimumNumber, maximumNumber))
}

func (g *Generator) pick(list []string) string {
	return list[g.r.Intn(len(list))]
}

// inclusive
func (g *Generator) between(low int, high int) int {
	return low + g.r.Intn(high-low+1)
}
