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

package memory_test

import (
	"testing"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/memory"
	"github.com/skeptomai/gruesome-sub000/machine/memory/memorymap"
	"github.com/skeptomai/gruesome-sub000/test"
)

func makeMemory(t *testing.T, version byte) *memory.Memory {
	t.Helper()

	data := make([]byte, 0x0200)
	data[header.AddrVersion] = version
	data[header.AddrStaticMemory] = 0x00
	data[header.AddrStaticMemory+1] = 0x80
	data[header.AddrHighMemory] = 0x01
	data[header.AddrHighMemory+1] = 0x00

	hdr, err := header.Parse(data)
	test.ExpectSuccess(t, err)

	mem, err := memory.NewMemory(data, hdr)
	test.ExpectSuccess(t, err)

	return mem
}

func TestReadWrite(t *testing.T) {
	mem := makeMemory(t, 3)

	test.ExpectSuccess(t, mem.Write8(0x70, 0xab))
	v, err := mem.Read8(0x70)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xab))

	test.ExpectSuccess(t, mem.Write16(0x72, 0x1234))
	w, err := mem.Read16(0x72)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0x1234))

	// words are big-endian
	v, err = mem.Read8(0x72)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x12))
}

func TestProtection(t *testing.T) {
	mem := makeMemory(t, 3)

	// static memory begins at 0x80
	err := mem.Write8(0x80, 0x01)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.ProtectionFault))

	// a word write straddling the boundary is also refused
	err = mem.Write16(0x7f, 0x0101)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.ProtectionFault))

	// the last byte of dynamic memory is writable
	test.ExpectSuccess(t, mem.Write8(0x7f, 0x01))

	// reads beyond the end of the file
	_, err = mem.Read8(0x0200)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))

	// pokes ignore the protection check but not the bounds check
	test.ExpectSuccess(t, mem.Poke8(0x80, 0x01))
	test.ExpectFailure(t, mem.Poke8(0x0200, 0x01))
}

func TestUnpack(t *testing.T) {
	mem := makeMemory(t, 3)

	// version 3 packed addresses are scaled by two
	addr, err := mem.UnpackRoutine(0x0090)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, addr, uint32(0x0120))
	test.ExpectEquality(t, mem.Pack(addr), uint16(0x0090))

	// below the base of high memory
	_, err = mem.UnpackRoutine(0x0010)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.PackedFault))

	// beyond the end of the file
	_, err = mem.UnpackString(0x0100)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.PackedFault))

	// version 5 packed addresses are scaled by four
	mem = makeMemory(t, 5)
	addr, err = mem.UnpackString(0x0048)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, addr, uint32(0x0120))
}

func TestAreas(t *testing.T) {
	mem := makeMemory(t, 3)

	test.ExpectEquality(t, mem.Area(0x0000), memorymap.Dynamic)
	test.ExpectEquality(t, mem.Area(0x007f), memorymap.Dynamic)
	test.ExpectEquality(t, mem.Area(0x0080), memorymap.Static)
	test.ExpectEquality(t, mem.Area(0x0100), memorymap.High)
}

func TestSnapshotCommit(t *testing.T) {
	mem := makeMemory(t, 3)

	test.ExpectSuccess(t, mem.Write8(0x70, 0x55))
	snap := mem.SnapshotDynamic()
	test.ExpectEquality(t, snap[0x70], uint8(0x55))

	test.ExpectSuccess(t, mem.Write8(0x70, 0xaa))
	test.ExpectSuccess(t, mem.CommitDynamic(snap))
	v, _ := mem.Read8(0x70)
	test.ExpectEquality(t, v, uint8(0x55))

	// restart returns dynamic memory to the loaded state
	mem.ResetDynamic()
	v, _ = mem.Read8(0x70)
	test.ExpectEquality(t, v, uint8(0x00))
}
