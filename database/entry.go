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
	"fmt"

	"github.com/skeptomai/gruesome-sub000/curated"
)

// SerialisedEntry is the fields of an entry as they appear in the database
// file, without the key and ID fields.
type SerialisedEntry []string

// Deserialiser rebuilds an entry of a registered type from its serialised
// fields.
type Deserialiser func(key int, fields SerialisedEntry) (Entry, error)

// Entry represents one record in the database.
type Entry interface {
	// ID identifies the entry type in the database file
	ID() string

	// String returns the entry in a human readable format. the machine
	// readable representation is returned by Serialise()
	String() string

	// the entry fields as they should appear in the database file
	Serialise() (SerialisedEntry, error)

	// CleanUp is called when the entry is deleted from the database.
	// entries that keep resources outside the database file release them
	// here
	CleanUp() error

	SetKey(key int)
	GetKey() int
}

// RegisterEntryType tells the session what entries it may expect in the
// database file and how to rebuild them.
func (db *Session) RegisterEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return curated.Errorf(DatabaseError, fmt.Sprintf("duplicate entry type (%s)", id))
	}
	db.entryTypes[id] = des
	return nil
}
