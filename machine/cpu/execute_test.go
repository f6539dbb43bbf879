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

package cpu_test

import (
	"testing"
	"time"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/environment"
	"github.com/skeptomai/gruesome-sub000/machine/cpu"
	"github.com/skeptomai/gruesome-sub000/machine/dictionary"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/memory"
	"github.com/skeptomai/gruesome-sub000/machine/objects"
	"github.com/skeptomai/gruesome-sub000/machine/text"
	"github.com/skeptomai/gruesome-sub000/prefs"
	"github.com/skeptomai/gruesome-sub000/test"
)

// a story with the program at 0x0200 and a routine at 0x0300. globals live
// at 0x00c0 and a small dictionary ("go" and "hello", comma separator) at
// 0x0140. buffers for the read tests live at 0x0100 and 0x0118
func makeTestCPU(t *testing.T, version byte, program []byte, routine []byte) (*cpu.CPU, *memory.Memory) {
	t.Helper()

	data := make([]byte, 0x0400)
	data[header.AddrVersion] = version
	data[header.AddrHighMemory] = 0x02
	data[header.AddrInitialPC] = 0x02
	data[header.AddrDictionary] = 0x01
	data[header.AddrDictionary+1] = 0x40
	data[header.AddrObjectTable] = 0x00
	data[header.AddrObjectTable+1] = 0x40
	data[header.AddrGlobals] = 0x00
	data[header.AddrGlobals+1] = 0xc0
	data[header.AddrStaticMemory] = 0x01
	data[header.AddrStaticMemory+1] = 0x40
	copy(data[header.AddrSerial:], "860101")

	// dictionary header and its two sorted entries
	copy(data[0x0140:], []byte{1, ',', 6, 0x00, 0x02})
	copy(data[0x0145:], []byte{0x32, 0x85, 0x94, 0xa5, 0x00, 0x00}) // go
	copy(data[0x014b:], []byte{0x35, 0x51, 0xc6, 0x85, 0x00, 0x00}) // hello

	copy(data[0x0200:], program)
	copy(data[0x0300:], routine)

	hdr, err := header.Parse(data)
	test.ExpectSuccess(t, err)

	mem, err := memory.NewMemory(data, hdr)
	test.ExpectSuccess(t, err)

	p := &prefs.Preferences{}
	p.SetDefaults()
	env, err := environment.NewEnvironment("test", p)
	test.ExpectSuccess(t, err)

	cdc := text.NewCodec(mem, hdr)
	tab := objects.NewTable(mem, hdr, cdc)
	dict, err := dictionary.NewDictionary(mem, hdr, cdc)
	test.ExpectSuccess(t, err)

	return cpu.NewCPU(env, mem, hdr, cdc, tab, dict), mem
}

// run the supplied cpu until the story quits
func runToQuit(t *testing.T, c *cpu.CPU) {
	t.Helper()

	for i := 0; !c.HasQuit(); i++ {
		test.ExpectSuccess(t, c.ExecuteInstruction())
		if i > 1000 {
			t.Fatal("story did not quit")
		}
	}
}

func global(t *testing.T, mem *memory.Memory, n uint32) uint16 {
	t.Helper()
	v, err := mem.Read16(0xc0 + n*2)
	test.ExpectSuccess(t, err)
	return v
}

func TestArithmetic(t *testing.T) {
	c, mem := makeTestCPU(t, 3, []byte{
		0x14, 0x05, 0x03, 0x10, // add 5 3 -> g00
		0x15, 0x0a, 0x04, 0x11, // sub 10 4 -> g01
		0x16, 0x06, 0x07, 0x12, // mul 6 7 -> g02
		0x17, 0x64, 0x07, 0x13, // div 100 7 -> g03
		0x18, 0x0d, 0x05, 0x14, // mod 13 5 -> g04
		0xba, // quit
	}, nil)

	runToQuit(t, c)
	test.ExpectEquality(t, global(t, mem, 0), uint16(8))
	test.ExpectEquality(t, global(t, mem, 1), uint16(6))
	test.ExpectEquality(t, global(t, mem, 2), uint16(42))
	test.ExpectEquality(t, global(t, mem, 3), uint16(14))
	test.ExpectEquality(t, global(t, mem, 4), uint16(3))
}

func TestDivisionByZero(t *testing.T) {
	c, _ := makeTestCPU(t, 3, []byte{
		0x17, 0x01, 0x00, 0x10, // div 1 0 -> g00
	}, nil)

	err := c.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.DivisionByZero))
}

func TestBranchTaken(t *testing.T) {
	c, mem := makeTestCPU(t, 3, []byte{
		0x01, 0x05, 0x05, 0xc3, // je 5 5 ?+3
		0xba, // quit, skipped by the branch
		0x0d, 0x10, 0x01, // store g00 1
		0xba, // quit
	}, nil)

	runToQuit(t, c)
	test.ExpectEquality(t, global(t, mem, 0), uint16(1))
}

func TestBranchNotTaken(t *testing.T) {
	c, mem := makeTestCPU(t, 3, []byte{
		0x01, 0x05, 0x06, 0xc3, // je 5 6 ?+3. not taken
		0x0d, 0x10, 0x02, // store g00 2
		0xba, // quit
	}, nil)

	runToQuit(t, c)
	test.ExpectEquality(t, global(t, mem, 0), uint16(2))
}

func TestBranchReturn(t *testing.T) {
	// encoded branch offsets zero and one do not branch at all. they return
	// false and true from the current routine
	routines := make([]byte, 0x17)
	copy(routines[0x00:], []byte{
		0x00,
		0x01, 0x05, 0x05, 0xc0, // je 5 5 ?rfalse
		0x9b, 0x07, // ret 7, unreachable
	})
	copy(routines[0x10:], []byte{
		0x00,
		0x01, 0x05, 0x05, 0xc1, // je 5 5 ?rtrue
		0x9b, 0x07, // ret 7, unreachable
	})

	c, mem := makeTestCPU(t, 3, []byte{
		0x0d, 0x10, 0x05, // store g00 5
		0xe0, 0x3f, 0x01, 0x80, 0x10, // call 0x0180 -> g00
		0x0d, 0x11, 0x05, // store g01 5
		0xe0, 0x3f, 0x01, 0x88, 0x11, // call 0x0188 -> g01
		0xba, // quit
	}, routines)

	runToQuit(t, c)
	test.ExpectEquality(t, global(t, mem, 0), uint16(0))
	test.ExpectEquality(t, global(t, mem, 1), uint16(1))
	test.ExpectEquality(t, len(c.Frames()), 0)
}

func TestJump(t *testing.T) {
	c, mem := makeTestCPU(t, 3, []byte{
		0x8c, 0x00, 0x05, // jump +5
		0x0d, 0x10, 0x07, // store g00 7, skipped
		0x0d, 0x10, 0x01, // store g00 1
		0xba, // quit
	}, nil)

	runToQuit(t, c)
	test.ExpectEquality(t, global(t, mem, 0), uint16(1))
}

func TestCallAndReturn(t *testing.T) {
	c, mem := makeTestCPU(t, 3, []byte{
		0xe0, 0x3f, 0x01, 0x80, 0x10, // call 0x0180 -> g00
		0xe0, 0x1f, 0x01, 0x80, 0x09, 0x11, // call 0x0180 9 -> g01
		0xba, // quit
	}, []byte{
		// two locals with defaults 5 and 7. arguments overwrite defaults
		0x02, 0x00, 0x05, 0x00, 0x07,
		0x74, 0x01, 0x02, 0x00, // add local1 local2 -> sp
		0xab, 0x00, // ret sp
	})

	runToQuit(t, c)
	test.ExpectEquality(t, global(t, mem, 0), uint16(12))
	test.ExpectEquality(t, global(t, mem, 1), uint16(16))
	test.ExpectEquality(t, len(c.Frames()), 0)
	test.ExpectEquality(t, len(c.Stack()), 0)
}

func TestCallZero(t *testing.T) {
	// calling routine address zero stores false without calling anything
	c, mem := makeTestCPU(t, 3, []byte{
		0x0d, 0x10, 0x09, // store g00 9
		0xe0, 0x3f, 0x00, 0x00, 0x10, // call 0 -> g00
		0xba, // quit
	}, nil)

	runToQuit(t, c)
	test.ExpectEquality(t, global(t, mem, 0), uint16(0))
}

func TestCallLocalsVersion5(t *testing.T) {
	// from version 5 the routine header carries no default values and
	// locals begin at zero
	c, mem := makeTestCPU(t, 5, []byte{
		0xe0, 0x3f, 0x00, 0xc0, 0x10, // call_vs 0x00c0 -> g00
		0xba, // quit
	}, []byte{
		0x02,
		0x74, 0x01, 0x02, 0x00, // add local1 local2 -> sp
		0xab, 0x00, // ret sp
	})

	runToQuit(t, c)
	test.ExpectEquality(t, global(t, mem, 0), uint16(0))
}

func TestPushPull(t *testing.T) {
	c, mem := makeTestCPU(t, 3, []byte{
		0xe8, 0x7f, 0x2a, // push 42
		0xe9, 0x7f, 0x10, // pull g00
		0xba, // quit
	}, nil)

	runToQuit(t, c)
	test.ExpectEquality(t, global(t, mem, 0), uint16(42))
	test.ExpectEquality(t, len(c.Stack()), 0)
}

func TestIndirectStackWrite(t *testing.T) {
	// storing through variable number zero replaces the top of the stack
	// in place rather than pushing
	c, mem := makeTestCPU(t, 3, []byte{
		0xe8, 0x7f, 0x01, // push 1
		0xe8, 0x7f, 0x02, // push 2
		0x0d, 0x00, 0x63, // store "sp" 99
		0xe9, 0x7f, 0x10, // pull g00
		0xba, // quit
	}, nil)

	runToQuit(t, c)
	test.ExpectEquality(t, global(t, mem, 0), uint16(99))

	stack := c.Stack()
	test.ExpectEquality(t, len(stack), 1)
	test.ExpectEquality(t, stack[0], uint16(1))
}

func TestStream3(t *testing.T) {
	// printing while stream three is open lands in the table, not on the
	// screen. the table receives a count word followed by the characters
	c, mem := makeTestCPU(t, 3, []byte{
		0xf3, 0x4f, 0x03, 0x01, 0x20, // output_stream 3 0x0120
		0xb2, 0xb5, 0xc5, // print "hi"
		0xf3, 0x3f, 0xff, 0xfd, // output_stream -3
		0xba, // quit
	}, nil)

	runToQuit(t, c)

	count, err := mem.Read16(0x0120)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count, uint16(2))

	b1, _ := mem.Read8(0x0122)
	b2, _ := mem.Read8(0x0123)
	test.ExpectEquality(t, b1, uint8('h'))
	test.ExpectEquality(t, b2, uint8('i'))
}

type scriptedInput struct {
	line string
}

func (in *scriptedInput) ReadLine(_ time.Duration) (string, error) {
	return in.line, nil
}

func (in *scriptedInput) ReadChar(_ time.Duration) (rune, error) {
	if len(in.line) == 0 {
		return 0, curated.Errorf("input: end of input")
	}
	r := rune(in.line[0])
	in.line = in.line[1:]
	return r, nil
}

func TestReadAndTokenize(t *testing.T) {
	c, mem := makeTestCPU(t, 3, []byte{
		0xe4, 0x0f, 0x01, 0x00, 0x01, 0x18, // sread text 0x0100 parse 0x0118
		0xba, // quit
	}, nil)

	// buffer capacities
	test.ExpectSuccess(t, mem.Write8(0x0100, 20))
	test.ExpectSuccess(t, mem.Write8(0x0118, 4))

	c.AttachInput(&scriptedInput{line: "hello, go"})
	runToQuit(t, c)

	// the text buffer holds the line from byte one, zero terminated
	b, _ := mem.Read8(0x0101)
	test.ExpectEquality(t, b, uint8('h'))
	b, _ = mem.Read8(0x0109)
	test.ExpectEquality(t, b, uint8('o'))
	b, _ = mem.Read8(0x010a)
	test.ExpectEquality(t, b, uint8(0))

	// three tokens: hello, the comma separator and go
	n, _ := mem.Read8(0x0119)
	test.ExpectEquality(t, n, uint8(3))

	addr, _ := mem.Read16(0x011a)
	test.ExpectEquality(t, addr, uint16(0x014b))
	length, _ := mem.Read8(0x011c)
	test.ExpectEquality(t, length, uint8(5))
	pos, _ := mem.Read8(0x011d)
	test.ExpectEquality(t, pos, uint8(1))

	// the comma is not in the dictionary
	addr, _ = mem.Read16(0x011e)
	test.ExpectEquality(t, addr, uint16(0))
	pos, _ = mem.Read8(0x0121)
	test.ExpectEquality(t, pos, uint8(6))

	addr, _ = mem.Read16(0x0122)
	test.ExpectEquality(t, addr, uint16(0x0145))
	pos, _ = mem.Read8(0x0125)
	test.ExpectEquality(t, pos, uint8(8))
}

func TestQuitStopsExecution(t *testing.T) {
	c, _ := makeTestCPU(t, 3, []byte{0xba}, nil)

	test.ExpectSuccess(t, c.ExecuteInstruction())
	test.ExpectSuccess(t, c.HasQuit())

	err := c.ExecuteInstruction()
	test.ExpectFailure(t, err)
}
