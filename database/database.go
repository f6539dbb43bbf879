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

package database

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/skeptomai/gruesome-sub000/curated"
)

// sentinal errors returned by the database package
const (
	DatabaseError = "database: %v"
	KeyError      = "database: key not available (%d)"
)

// arbitrary maximum number of entries
const maxEntries = 1000

const fieldSep = ","
const entrySep = "\n"

// Activity is the requested usage of the database session.
type Activity int

// a list of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session is an open database.
type Session struct {
	dbfile   string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession opens the database file for the specified activity. The init
// callback registers the entry types the session may encounter; it runs
// before the file is read.
func StartSession(pth string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		dbfile:     pth,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if init != nil {
		err := init(db)
		if err != nil {
			return nil, err
		}
	}

	err := db.read()
	if err != nil {
		// a missing file is an empty database, unless we were asked to read
		// an existing one
		if !errors.Is(err, fs.ErrNotExist) || activity == ActivityReading {
			return nil, err
		}
	}

	return db, nil
}

// EndSession closes the database. Changes to the session are written out
// when commit is true, which is only valid for sessions opened for
// modifying or creating.
func (db *Session) EndSession(commit bool) error {
	if commit && db.activity == ActivityReading {
		return curated.Errorf(DatabaseError, "cannot commit a read-only session")
	}

	if commit {
		return db.write()
	}

	return nil
}

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db *Session) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	sort.Ints(keyList)
	return keyList
}

// List the entries in key order.
func (db *Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := fmt.Fprintln(output, "database is empty")
		return err
	}

	for _, key := range db.SortedKeyList() {
		_, err := fmt.Fprintf(output, "%03d %s\n", key, db.entries[key].String())
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
	return err
}

// Add an entry to the database. The entry is given the lowest spare key.
func (db *Session) Add(ent Entry) error {
	var key int

	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}

	if key == maxEntries {
		return curated.Errorf(DatabaseError, fmt.Sprintf("maximum entries exceeded (max %d)", maxEntries))
	}

	ent.SetKey(key)
	db.entries[key] = ent

	return nil
}

// Get returns the entry with the specified key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf(KeyError, key)
	}
	return ent, nil
}

// Delete the entry with the specified key.
func (db *Session) Delete(key int) error {
	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf(KeyError, key)
	}

	err := ent.CleanUp()
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	delete(db.entries, key)

	return nil
}

// SelectAll calls onSelect for every entry in the database, in key order. A
// non-nil return from onSelect ends the selection and is returned as is.
func (db *Session) SelectAll(onSelect func(Entry) error) error {
	for _, key := range db.SortedKeyList() {
		err := onSelect(db.entries[key])
		if err != nil {
			return err
		}
	}
	return nil
}

func (db *Session) read() error {
	d, err := os.ReadFile(db.dbfile)
	if err != nil {
		return err
	}

	for i, line := range strings.Split(string(d), entrySep) {
		if line == "" {
			continue
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) < 2 {
			return curated.Errorf(DatabaseError, fmt.Sprintf("%s: malformed line %d", db.dbfile, i+1))
		}

		key, err := strconv.Atoi(fields[0])
		if err != nil {
			return curated.Errorf(DatabaseError, fmt.Sprintf("%s: invalid key on line %d", db.dbfile, i+1))
		}

		des, ok := db.entryTypes[fields[1]]
		if !ok {
			return curated.Errorf(DatabaseError, fmt.Sprintf("%s: unrecognised entry type (%s)", db.dbfile, fields[1]))
		}

		ent, err := des(key, SerialisedEntry(fields[2:]))
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		db.entries[key] = ent
	}

	return nil
}

func (db *Session) write() error {
	b := &strings.Builder{}

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		ser, err := ent.Serialise()
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		for i := range ser {
			if strings.Contains(ser[i], fieldSep) || strings.Contains(ser[i], entrySep) {
				return curated.Errorf(DatabaseError, fmt.Sprintf("entry %03d contains a field separator", key))
			}
		}

		fields := append([]string{strconv.Itoa(key), ent.ID()}, ser...)
		b.WriteString(strings.Join(fields, fieldSep))
		b.WriteString(entrySep)
	}

	err := os.WriteFile(db.dbfile, []byte(b.String()), 0600)
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}
