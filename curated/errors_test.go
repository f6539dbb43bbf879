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

package curated_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/test"
)

const (
	testError      = "test: %v"
	testErrorOuter = "outer: %v"
)

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf(testError, "run out of cheese")
	outer := curated.Errorf(testError, inner)

	// adjacent duplicate parts are removed from the formatted message
	test.ExpectEquality(t, outer.Error(), "test: run out of cheese")
}

func TestIsAndHas(t *testing.T) {
	inner := curated.Errorf(testError, "run out of cheese")
	outer := curated.Errorf(testErrorOuter, inner)

	test.ExpectEquality(t, curated.Is(inner, testError), true)
	test.ExpectEquality(t, curated.Is(outer, testError), false)
	test.ExpectEquality(t, curated.Has(outer, testError), true)
	test.ExpectEquality(t, curated.Has(outer, testErrorOuter), true)
	test.ExpectEquality(t, curated.Has(inner, testErrorOuter), false)
}

func TestUnwrapCurated(t *testing.T) {
	inner := curated.Errorf(testError, "run out of cheese")
	outer := curated.Errorf(testErrorOuter, inner)

	test.ExpectEquality(t, errors.Unwrap(outer), inner)
}

// errors from outside the package are part of the chain too. the prefs
// package relies on this to detect a missing preferences file with
// errors.Is() and fs.ErrNotExist
func TestUnwrapForeign(t *testing.T) {
	_, osErr := os.ReadFile(filepath.Join(t.TempDir(), "no such file"))
	if osErr == nil {
		t.Fatal("expected an error from the read")
	}

	wrapped := curated.Errorf(testError, osErr)
	test.ExpectEquality(t, errors.Is(wrapped, fs.ErrNotExist), true)

	// and through a second level of wrapping
	rewrapped := curated.Errorf(testErrorOuter, wrapped)
	test.ExpectEquality(t, errors.Is(rewrapped, fs.ErrNotExist), true)
}
