// This file is part of Gruesome.
//
// Gruesome is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gruesome is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gruesome.  If not, see <https://www.gnu.org/licenses/>.

package database_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skeptomai/gruesome-sub000/database"
	"github.com/skeptomai/gruesome-sub000/test"
)

type testEntry struct {
	key  int
	name string
}

func (ent *testEntry) ID() string {
	return "test"
}

func (ent *testEntry) String() string {
	return ent.name
}

func (ent *testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.name}, nil
}

func (ent *testEntry) CleanUp() error {
	return nil
}

func (ent *testEntry) SetKey(key int) {
	ent.key = key
}

func (ent *testEntry) GetKey() int {
	return ent.key
}

func deserialiseTestEntry(key int, fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != 1 {
		return nil, fmt.Errorf("wrong number of fields")
	}
	return &testEntry{key: key, name: fields[0]}, nil
}

func registerTestEntry(db *database.Session) error {
	return db.RegisterEntryType("test", deserialiseTestEntry)
}

func TestRoundTrip(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(pth, database.ActivityCreating, registerTestEntry)
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, db.Add(&testEntry{name: "one"}))
	test.ExpectSuccess(t, db.Add(&testEntry{name: "two"}))
	test.ExpectSuccess(t, db.EndSession(true))

	db, err = database.StartSession(pth, database.ActivityReading, registerTestEntry)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 2)

	ent, err := db.Get(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "two")

	output := &strings.Builder{}
	test.ExpectSuccess(t, db.List(output))
	test.ExpectEquality(t, strings.Contains(output.String(), "000 one"), true)
	test.ExpectEquality(t, strings.Contains(output.String(), "Total: 2"), true)

	test.ExpectSuccess(t, db.EndSession(false))
}

func TestDelete(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(pth, database.ActivityCreating, registerTestEntry)
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, db.Add(&testEntry{name: "one"}))
	test.ExpectSuccess(t, db.Delete(0))
	test.ExpectFailure(t, db.Delete(0))
	test.ExpectSuccess(t, db.EndSession(true))

	db, err = database.StartSession(pth, database.ActivityModifying, registerTestEntry)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 0)
}

func TestReadOnlyCommit(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "testDB")

	db, err := database.StartSession(pth, database.ActivityCreating, registerTestEntry)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, db.EndSession(true))

	db, err = database.StartSession(pth, database.ActivityReading, registerTestEntry)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, db.EndSession(true))
}
