// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package generator_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/roster/fault"
	"github.com/bitmark-inc/roster/generator"
)

var (
	testFirstNames = []string{"Ana", "Juan", "Lucia", "Pablo"}
	testSurnames   = []string{"Ivanov", "Petrova", "Smirnov"}
)

func testParameters(seed int64, limit int) generator.Parameters {
	return generator.Parameters{
		Seed:        seed,
		IDLimit:     limit,
		FirstNames:  testFirstNames,
		Surnames:    testSurnames,
		MinimumYear: generator.DefaultMinimumYear,
		MaximumYear: generator.DefaultMaximumYear,
	}
}

var roomPattern = regexp.MustCompile(`^([0-9]+)/([0-9]+)$`)

func TestRecordFields(t *testing.T) {
	g, err := generator.New(testParameters(1, 1000))
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	for i := 0; i < 500; i += 1 {
		r, err := g.Next()
		if nil != err {
			t.Fatalf("next error: %s", err)
		}

		assert.True(t, r.ID >= 1 && r.ID <= 1000, "id out of range: %d", r.ID)

		parts := strings.SplitN(r.Name, " ", 2)
		if assert.Equal(t, 2, len(parts), "name: %q", r.Name) {
			assert.Contains(t, testFirstNames, parts[0], "first name")
			assert.Contains(t, testSurnames, parts[1], "surname")
		}

		assert.Contains(t, r.Affiliation, " at the Faculty of ", "affiliation: %q", r.Affiliation)

		date, err := time.Parse("2006-01-02", r.BirthDate)
		if assert.Nil(t, err, "birth date: %q", r.BirthDate) {
			assert.True(t, date.Year() >= 1960 && date.Year() <= 2006, "birth year: %d", date.Year())
		}

		m := roomPattern.FindStringSubmatch(r.Room)
		if assert.NotNil(t, m, "room: %q", r.Room) {
			floor, _ := strconv.Atoi(m[1])
			number, _ := strconv.Atoi(m[2])
			assert.True(t, floor >= 1 && floor <= 23, "floor: %d", floor)
			assert.True(t, number >= 101 && number <= 1499, "number: %d", number)
		}
	}
	assert.Equal(t, 500, g.Remaining(), "remaining ids")
}

// every id is issued exactly once, then the generator is exhausted
func TestUniqueIDs(t *testing.T) {
	const limit = 2000
	g, err := generator.New(testParameters(2, limit))
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	seen := make(map[uint32]struct{}, limit)
	for i := 0; i < limit; i += 1 {
		r, err := g.Next()
		if nil != err {
			t.Fatalf("next: %d error: %s", i, err)
		}
		if _, ok := seen[r.ID]; ok {
			t.Fatalf("duplicate id: %d", r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	assert.Equal(t, 0, g.Remaining(), "remaining ids")

	_, err = g.Next()
	assert.Equal(t, fault.ErrIDsExhausted, err, "expected exhaustion")
}

func TestSeedRepeatable(t *testing.T) {
	g1, _ := generator.New(testParameters(99, 100))
	g2, _ := generator.New(testParameters(99, 100))
	for i := 0; i < 50; i += 1 {
		r1, _ := g1.Next()
		r2, _ := g2.Next()
		assert.Equal(t, r1, r2, "record: %d differs", i)
	}
}

func TestInvalidParameters(t *testing.T) {
	p := testParameters(1, 0)
	_, err := generator.New(p)
	assert.Equal(t, fault.ErrInvalidIDLimit, err, "zero id limit")

	p = testParameters(1, 10)
	p.Surnames = nil
	_, err = generator.New(p)
	assert.Equal(t, fault.ErrEmptyNameList, err, "no surnames")

	p = testParameters(1, 10)
	p.MinimumYear = 2010
	_, err = generator.New(p)
	assert.Equal(t, fault.ErrInvalidYearRange, err, "inverted years")
}

func TestLoadNames(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "names.txt")
	content := "\ufeffAna\n  Juan  \n\n\t\nLucia\r\nPablo"
	if err := os.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}

	names, err := generator.LoadNames(fileName)
	assert.Nil(t, err, "load error")
	assert.Equal(t, []string{"Ana", "Juan", "Lucia", "Pablo"}, names, "wrong names")
}

func TestLoadNamesErrors(t *testing.T) {
	directory := t.TempDir()

	_, err := generator.LoadNames(filepath.Join(directory, "missing.txt"))
	assert.Equal(t, fault.ErrNotFoundNameFile, err, "missing file")

	empty := filepath.Join(directory, "empty.txt")
	if err := os.WriteFile(empty, []byte("\n  \n"), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	_, err = generator.LoadNames(empty)
	assert.Equal(t, fault.ErrEmptyNameList, err, "empty file")
}
