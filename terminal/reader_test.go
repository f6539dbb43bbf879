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

package terminal

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/peripherals"
	"github.com/skeptomai/gruesome-sub000/test"
)

func TestRuneReader(t *testing.T) {
	rr := initRuneReader(strings.NewReader("ab"))

	r, err := rr.readRune(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 'a')

	r, err = rr.readRune(time.Second)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, 'b')

	// the source is exhausted
	_, err = rr.readRune(0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, peripherals.EndOfInput))
}

func TestRuneReaderTimeout(t *testing.T) {
	// a pipe that never delivers
	pr, pw := io.Pipe()
	defer pw.Close()

	rr := initRuneReader(pr)

	_, err := rr.readRune(10 * time.Millisecond)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, peripherals.Timeout))
}
