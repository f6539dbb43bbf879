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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skeptomai/gruesome-sub000/environment"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/performance"
	"github.com/skeptomai/gruesome-sub000/prefs"
	"github.com/skeptomai/gruesome-sub000/storyloader"
	"github.com/skeptomai/gruesome-sub000/test"
)

// a story whose main routine is an unconditional jump back to itself. it
// runs until the measurement period expires.
func makeLoopingStory(t *testing.T) string {
	t.Helper()

	data := make([]byte, 0x0300)
	data[header.AddrVersion] = 3
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
		0x8c, 0xff, 0xff, // jump to self
	})

	pth := filepath.Join(t.TempDir(), "loop.z3")
	test.ExpectSuccess(t, os.WriteFile(pth, data, 0644))

	return pth
}

func TestCheck(t *testing.T) {
	p := &prefs.Preferences{}
	p.SetDefaults()
	env, err := environment.NewEnvironment("test", p)
	test.ExpectSuccess(t, err)

	ld := storyloader.NewLoader(makeLoopingStory(t))

	output := &strings.Builder{}
	test.ExpectSuccess(t, performance.Check(env, output, false, &ld, "100ms"))
	test.ExpectEquality(t, strings.Contains(output.String(), "instructions per second"), true)
}

func TestCheckBadDuration(t *testing.T) {
	p := &prefs.Preferences{}
	p.SetDefaults()
	env, err := environment.NewEnvironment("test", p)
	test.ExpectSuccess(t, err)

	ld := storyloader.NewLoader(makeLoopingStory(t))

	output := &strings.Builder{}
	test.ExpectFailure(t, performance.Check(env, output, false, &ld, "not a duration"))
}
