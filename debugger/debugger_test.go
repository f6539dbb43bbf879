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

package debugger

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skeptomai/gruesome-sub000/environment"
	"github.com/skeptomai/gruesome-sub000/machine"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/prefs"
	"github.com/skeptomai/gruesome-sub000/storyloader"
	"github.com/skeptomai/gruesome-sub000/test"
)

func makeDebugger(t *testing.T, script string) (*Debugger, *bytes.Buffer) {
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

	// empty dictionary
	data[0x90] = 0
	data[0x91] = 6

	copy(data[0x0200:], []byte{
		0x0d, 0x10, 0x05, // store g00 5
		0x54, 0x10, 0x03, 0x00, // add g00 3 -> sp
		0xba, // quit
	})

	pth := filepath.Join(t.TempDir(), "story.z3")
	test.ExpectSuccess(t, os.WriteFile(pth, data, 0644))

	p := &prefs.Preferences{}
	p.SetDefaults()
	env, err := environment.NewEnvironment("test", p)
	test.ExpectSuccess(t, err)

	ld := storyloader.NewLoader(pth)
	m, err := machine.NewMachine(env, &ld)
	test.ExpectSuccess(t, err)

	dbg := NewDebugger(env, m)
	output := &bytes.Buffer{}
	dbg.input = bufio.NewScanner(strings.NewReader(script))
	dbg.output = output

	return dbg, output
}

func TestStepAndQuit(t *testing.T) {
	dbg, output := makeDebugger(t, "STEP\nQUIT\n")

	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, dbg.m.CPU.PC, uint32(0x0203))
	test.ExpectEquality(t, strings.Contains(output.String(), "store"), true)
}

func TestBreakpoint(t *testing.T) {
	dbg, output := makeDebugger(t, "BREAK 207\nRUN\nQUIT\n")

	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, dbg.m.CPU.PC, uint32(0x0207))
	test.ExpectEquality(t, dbg.m.CPU.HasQuit(), false)
	test.ExpectEquality(t, strings.Contains(output.String(), "breakpoint at 000207"), true)
}

func TestRunToCompletion(t *testing.T) {
	dbg, _ := makeDebugger(t, "RUN\n")

	test.ExpectSuccess(t, dbg.Start())
	test.ExpectSuccess(t, dbg.m.CPU.HasQuit())
}

func TestList(t *testing.T) {
	dbg, output := makeDebugger(t, "LIST 3\nQUIT\n")

	test.ExpectSuccess(t, dbg.Start())

	// listing does not execute
	test.ExpectEquality(t, dbg.m.CPU.PC, uint32(0x0200))
	test.ExpectEquality(t, strings.Contains(output.String(), "000203: add"), true)
	test.ExpectEquality(t, strings.Contains(output.String(), "000207: quit"), true)
}

func TestUnknownCommand(t *testing.T) {
	dbg, output := makeDebugger(t, "FROTZ\nQUIT\n")

	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, strings.Contains(output.String(), "unknown command"), true)
}
