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

package digest_test

import (
	"testing"

	"github.com/skeptomai/gruesome-sub000/digest"
	"github.com/skeptomai/gruesome-sub000/test"
)

func TestSameOutputSameHash(t *testing.T) {
	a := digest.NewDisplay()
	b := digest.NewDisplay()

	a.Print("West of House")
	a.ShowStatus("West of House", "0/0")
	b.Print("West of House")
	b.ShowStatus("West of House", "0/0")

	test.ExpectEquality(t, a.Hash(), b.Hash())
}

func TestDirectivesChangeHash(t *testing.T) {
	a := digest.NewDisplay()
	b := digest.NewDisplay()

	// the same text but with a cursor movement between words
	a.Print("West of House")
	b.Print("West of ")
	b.SetCursor(1, 9)
	b.Print("House")

	test.ExpectInequality(t, a.Hash(), b.Hash())
}

func TestResetDigest(t *testing.T) {
	a := digest.NewDisplay()
	empty := a.Hash()

	a.Print("something")
	test.ExpectInequality(t, a.Hash(), empty)

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), empty)
}
