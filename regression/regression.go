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

package regression

import (
	"fmt"
	"io"
	"strconv"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/database"
	"github.com/skeptomai/gruesome-sub000/resources"
)

// sentinal errors returned by the regression package
const (
	RegressionError = "regression: %v"
)

// name of the database file in the resource directory
const regressionDBFile = "regressionDB"

// Regressor is the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// run the test this entry describes. for a new entry the result of the
	// run becomes the expected result; for an existing entry the result is
	// compared against the stored expectation
	regress(newRegression bool, output io.Writer) (bool, error)
}

// when starting a database session we need to register what entries we will
// find in the database
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(storyEntryID, deserialiseStoryEntry)
}

func dbPath() (string, error) {
	return resources.JoinPath(regressionDBFile)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	pth, err := dbPath()
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	db, err := database.StartSession(pth, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes an entry from the database. The deletion is
// confirmed through the confirmation reader before it happens.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(RegressionError, fmt.Sprintf("invalid key (%s)", key))
	}

	pth, err := dbPath()
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	db, err := database.StartSession(pth, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent.String())

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		err = db.Delete(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "deleted test #%s from regression database\n", key)
	}

	return nil
}

// RegressAdd runs a new test and stores it, with its result, in the
// database.
func RegressAdd(output io.Writer, reg Regressor) error {
	pth, err := dbPath()
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	fmt.Fprintf(output, "adding: %s\n", reg.String())

	ok, err := reg.regress(true, output)
	if err != nil {
		return err
	}
	if !ok {
		return curated.Errorf(RegressionError, "test could not be added")
	}

	return db.Add(reg)
}

// RegressRun runs the tests in the database. An empty filterKeys list means
// that every entry should be tested.
func RegressRun(output io.Writer, filterKeys []string) error {
	filter := make(map[int]bool)
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf(RegressionError, fmt.Sprintf("invalid key (%s)", k))
		}
		filter[v] = true
	}

	pth, err := dbPath()
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	db, err := database.StartSession(pth, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	numSucceed := 0
	numFail := 0
	numError := 0

	err = db.SelectAll(func(ent database.Entry) error {
		if len(filter) > 0 && !filter[ent.GetKey()] {
			return nil
		}

		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf(RegressionError, "database entry is not a regression test")
		}

		ok, err := reg.regress(false, output)
		if err != nil {
			numError++
			fmt.Fprintf(output, "error: %03d %s (%v)\n", ent.GetKey(), ent.String(), err)
			return nil
		}

		if ok {
			numSucceed++
			fmt.Fprintf(output, "succeed: %03d %s\n", ent.GetKey(), ent.String())
		} else {
			numFail++
			fmt.Fprintf(output, "fail: %03d %s\n", ent.GetKey(), ent.String())
		}

		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		fmt.Fprintf(output, " [%d with errors]", numError)
	}
	fmt.Fprintln(output)

	return nil
}
