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

package machine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/environment"
	"github.com/skeptomai/gruesome-sub000/machine"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/prefs"
	"github.com/skeptomai/gruesome-sub000/storyloader"
	"github.com/skeptomai/gruesome-sub000/test"
)

// a version 3 story that stores 5 in the first global, adds 3 to it leaving
// the sum on the stack, and quits
func makeStoryFile(t *testing.T) string {
	t.Helper()

	data := make([]byte, 0x0200)
	data[header.AddrVersion] = 3
	data[header.AddrRelease+1] = 1
	data[header.AddrHighMemory] = 0x01
	data[header.AddrInitialPC] = 0x01
	data[header.AddrDictionary+1] = 0x90
	data[header.AddrObjectTable+1] = 0x50
	data[header.AddrGlobals+1] = 0x40
	data[header.AddrStaticMemory+1] = 0x80
	copy(data[header.AddrSerial:], "860101")

	// dictionary with no separators and no entries
	data[0x90] = 0
	data[0x91] = 6

	program := []byte{
		0x0d, 0x10, 0x05, // store g00 5
		0x54, 0x10, 0x03, 0x00, // add g00 3 -> sp
		0xba, // quit
	}
	copy(data[0x0100:], program)

	pth := filepath.Join(t.TempDir(), "story.z3")
	err := os.WriteFile(pth, data, 0644)
	test.ExpectSuccess(t, err)

	return pth
}

func makeMachine(t *testing.T) *machine.Machine {
	t.Helper()

	p := &prefs.Preferences{}
	p.SetDefaults()

	env, err := environment.NewEnvironment("test", p)
	test.ExpectSuccess(t, err)

	ld := storyloader.NewLoader(makeStoryFile(t))
	m, err := machine.NewMachine(env, &ld)
	test.ExpectSuccess(t, err)

	return m
}

type stubDisplay struct{}

func (d *stubDisplay) Print(_ string)                {}
func (d *stubDisplay) SplitWindow(_ int)             {}
func (d *stubDisplay) SelectWindow(_ int)            {}
func (d *stubDisplay) EraseWindow(_ int)             {}
func (d *stubDisplay) EraseLine()                    {}
func (d *stubDisplay) SetCursor(_ int, _ int)        {}
func (d *stubDisplay) GetCursor() (int, int)         { return 1, 1 }
func (d *stubDisplay) SetTextStyle(_ int)            {}
func (d *stubDisplay) SetBufferMode(_ bool)          {}
func (d *stubDisplay) ShowStatus(_ string, _ string) {}
func (d *stubDisplay) ScreenSize() (int, int)        { return 64, 20 }

func TestChecksumRejection(t *testing.T) {
	pth := makeStoryFile(t)

	// a nonzero checksum field that the file contents do not sum to
	data, err := os.ReadFile(pth)
	test.ExpectSuccess(t, err)
	data[header.AddrChecksum] = 0xde
	data[header.AddrChecksum+1] = 0xad
	test.ExpectSuccess(t, os.WriteFile(pth, data, 0644))

	p := &prefs.Preferences{}
	p.SetDefaults()
	env, err := environment.NewEnvironment("test", p)
	test.ExpectSuccess(t, err)

	ld := storyloader.NewLoader(pth)
	_, err = machine.NewMachine(env, &ld)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, machine.ChecksumFailure))
}

func TestRunToQuit(t *testing.T) {
	m := makeMachine(t)

	err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, m.CPU.HasQuit())

	// first global was stored directly
	g, err := m.Mem.Read16(0x40)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, g, uint16(5))

	// the sum was pushed onto the evaluation stack
	stack := m.CPU.Stack()
	test.ExpectEquality(t, len(stack), 1)
	test.ExpectEquality(t, stack[0], uint16(8))
}

func TestRunCallback(t *testing.T) {
	m := makeMachine(t)

	// count the instructions as they go by
	ct := 0
	err := m.Run(func() error {
		ct++
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ct, 3)
}

func TestRestart(t *testing.T) {
	m := makeMachine(t)

	err := m.Run(nil)
	test.ExpectSuccess(t, err)

	err = m.Restart()
	test.ExpectSuccess(t, err)

	// dynamic memory has reverted and the program counter is back at the
	// first instruction. the quit flag however is owned by the cpu reset
	g, err := m.Mem.Read16(0x40)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, g, uint16(0))
	test.ExpectEquality(t, m.CPU.PC, uint32(0x0100))
	test.ExpectEquality(t, len(m.CPU.Stack()), 0)
}

func TestUndo(t *testing.T) {
	m := makeMachine(t)

	// run the first instruction so the global holds something worth
	// snapshotting
	err := m.Step()
	test.ExpectSuccess(t, err)

	ok, err := m.CPU.Handlers.SaveUndo(m.CPU.PC)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)

	// clobber the global and then unwind
	test.ExpectSuccess(t, m.Mem.Write16(0x40, 0x1234))

	ok, err = m.CPU.Handlers.RestoreUndo()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)

	g, err := m.Mem.Read16(0x40)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, g, uint16(5))

	// the stack is spent
	ok, err = m.CPU.Handlers.RestoreUndo()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ok, false)
}

func TestCapabilities(t *testing.T) {
	m := makeMachine(t)
	m.AttachDisplay(&stubDisplay{})

	w, err := m.Mem.Read8(header.AddrScreenWidth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint8(64))

	h, err := m.Mem.Read8(header.AddrScreenHeight)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h, uint8(20))

	// version 3 interpreters with a working status line clear the
	// unavailability bit and advertise screen splitting
	flags1, err := m.Mem.Read8(header.AddrFlags1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, flags1&header.Flags1StatusUnavailable, uint8(0))
	test.ExpectEquality(t, flags1&header.Flags1ScreenSplitting, uint8(header.Flags1ScreenSplitting))

	rev, err := m.Mem.Read16(header.AddrStandardRev)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rev, uint16(0x0100))
}
