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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/skeptomai/gruesome-sub000/disassembly"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/memory"
	"github.com/skeptomai/gruesome-sub000/machine/text"
	"github.com/skeptomai/gruesome-sub000/test"
)

func TestLinearSweep(t *testing.T) {
	data := make([]byte, 0x0300)
	data[header.AddrVersion] = 3
	data[header.AddrHighMemory] = 0x02
	data[header.AddrInitialPC] = 0x02
	data[header.AddrStaticMemory] = 0x01

	copy(data[0x0200:], []byte{
		0x14, 0x05, 0x03, 0x10, // add
		0x01, 0x05, 0x05, 0xc3, // je
		0xba, // quit
	})

	hdr, err := header.Parse(data)
	test.ExpectSuccess(t, err)
	mem, err := memory.NewMemory(data, hdr)
	test.ExpectSuccess(t, err)
	cdc := text.NewCodec(mem, hdr)

	dsm, err := disassembly.FromMemory(mem, cdc, 3, 0x0200, 0x0209)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, len(dsm.Entries), 3)
	test.ExpectEquality(t, dsm.Entries[0].Defn.Mnemonic, "add")
	test.ExpectEquality(t, dsm.Entries[1].Defn.Mnemonic, "je")
	test.ExpectEquality(t, dsm.Entries[2].Defn.Mnemonic, "quit")

	b := &strings.Builder{}
	test.ExpectSuccess(t, dsm.Write(b))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	test.ExpectEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "000200: add #05, #03 -> g00")
	test.ExpectEquality(t, strings.HasPrefix(lines[2], "000208: quit"), true)
}

func TestSweepStopsOnBadOpcode(t *testing.T) {
	data := make([]byte, 0x0300)
	data[header.AddrVersion] = 3
	data[header.AddrHighMemory] = 0x02
	data[header.AddrInitialPC] = 0x02
	data[header.AddrStaticMemory] = 0x01

	// a long form instruction with opcode zero does not exist
	copy(data[0x0200:], []byte{
		0xba,
		0x00, 0x00, 0x00,
	})

	hdr, err := header.Parse(data)
	test.ExpectSuccess(t, err)
	mem, err := memory.NewMemory(data, hdr)
	test.ExpectSuccess(t, err)
	cdc := text.NewCodec(mem, hdr)

	dsm, err := disassembly.FromMemory(mem, cdc, 3, 0x0200, 0x0204)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, len(dsm.Entries), 1)
	test.ExpectEquality(t, dsm.StoppedAt, uint32(0x0201))
	test.ExpectInequality(t, dsm.StoppedReason, "")
}
