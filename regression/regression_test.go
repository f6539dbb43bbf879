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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/peripherals"
	"github.com/skeptomai/gruesome-sub000/test"
)

// a story that prints a short word and quits
func makeStory(t *testing.T) string {
	t.Helper()

	data := make([]byte, 0x0300)
	data[header.AddrVersion] = 3
	data[header.AddrRelease+1] = 1
	data[header.AddrHighMemory] = 0x02
	data[header.AddrInitialPC] = 0x02
	data[header.AddrDictionary+1] = 0x90
	data[header.AddrObjectTable+1] = 0x50
	data[header.AddrGlobals+1] = 0x40
	data[header.AddrStaticMemory] = 0x01
	copy(data[header.AddrSerial:], "860101")

	data[0x90] = 0
	data[0x91] = 6

	copy(data[0x0200:], []byte{
		0xb2, 0xb5, 0xc5, // print "hi"
		0xba, // quit
	})

	pth := filepath.Join(t.TempDir(), "story.z3")
	test.ExpectSuccess(t, os.WriteFile(pth, data, 0644))

	return pth
}

func TestStoryRegress(t *testing.T) {
	reg := NewStoryRegression(makeStory(t), 100, "")

	output := &strings.Builder{}

	// the first run records the digest
	ok, err := reg.regress(true, output)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectInequality(t, reg.digest, "")

	// a repeat run matches it
	ok, err = reg.regress(false, output)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)

	// a changed expectation is caught
	reg.digest = "not a digest"
	ok, err = reg.regress(false, output)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ok, false)
}

func TestStorySerialise(t *testing.T) {
	reg := NewStoryRegression("story.z3", 500, "north;get lamp")
	reg.digest = "cafe"
	reg.SetKey(3)

	ser, err := reg.Serialise()
	test.ExpectSuccess(t, err)

	ent, err := deserialiseStoryEntry(3, ser)
	test.ExpectSuccess(t, err)

	reg2, ok := ent.(*StoryRegression)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, *reg2, *reg)
}

func TestScriptedInput(t *testing.T) {
	inp := newScriptedInput("north;open door")

	line, err := inp.ReadLine(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, line, "north")

	line, err = inp.ReadLine(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, line, "open door")

	_, err = inp.ReadLine(0)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, peripherals.EndOfInput), true)
}
