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

package text_test

import (
	"testing"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/memory"
	"github.com/skeptomai/gruesome-sub000/machine/text"
	"github.com/skeptomai/gruesome-sub000/test"
)

func makeCodec(t *testing.T, version byte) (*text.Codec, *memory.Memory) {
	t.Helper()

	data := make([]byte, 0x0200)
	data[header.AddrVersion] = version
	data[header.AddrStaticMemory+1] = 0x00
	data[header.AddrStaticMemory] = 0x01 // static base 0x0100
	data[header.AddrHighMemory] = 0x01   // high base 0x0100
	data[header.AddrAbbreviations+1] = 0x80

	hdr, err := header.Parse(data)
	test.ExpectSuccess(t, err)

	mem, err := memory.NewMemory(data, hdr)
	test.ExpectSuccess(t, err)

	return text.NewCodec(mem, hdr), mem
}

func pokeWords(t *testing.T, mem *memory.Memory, address uint32, words ...uint16) {
	t.Helper()
	for i, w := range words {
		test.ExpectSuccess(t, mem.Poke16(address+uint32(i)*2, w))
	}
}

func TestDecode(t *testing.T) {
	cdc, mem := makeCodec(t, 3)

	// "hello"
	pokeWords(t, mem, 0x0140, 0x3551, 0xc685)
	s, length, err := cdc.Decode(0x0140)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "hello")
	test.ExpectEquality(t, length, uint32(4))
}

func TestShifts(t *testing.T) {
	cdc, mem := makeCodec(t, 3)

	// shift to A1 for a single character: "Hi"
	pokeWords(t, mem, 0x0140, 0x91ae)
	s, _, err := cdc.Decode(0x0140)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "Hi")

	// shift to A2 for a digit: "0"
	pokeWords(t, mem, 0x0142, 0x9505)
	s, _, err = cdc.Decode(0x0142)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "0")
}

func TestCharacterEscape(t *testing.T) {
	cdc, mem := makeCodec(t, 3)

	// ten bit escape for '@', a character in no alphabet
	pokeWords(t, mem, 0x0140, 0x14c2, 0x80a5)
	s, _, err := cdc.Decode(0x0140)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "@")
}

func TestAbbreviations(t *testing.T) {
	cdc, mem := makeCodec(t, 3)

	// abbreviation 0 expands to "hello". entries in the abbreviations table
	// are word addresses
	pokeWords(t, mem, 0x0140, 0x3551, 0xc685)
	pokeWords(t, mem, 0x0080, 0x00a0)

	// z-characters 1, 0 reference abbreviation 0
	pokeWords(t, mem, 0x0150, 0x8405)
	s, _, err := cdc.Decode(0x0150)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "hello")
}

func TestNestedAbbreviation(t *testing.T) {
	cdc, mem := makeCodec(t, 3)

	// abbreviation 1 contains an abbreviation reference of its own
	pokeWords(t, mem, 0x0160, 0x8405)
	pokeWords(t, mem, 0x0082, 0x00b0)

	// z-characters 1, 1 reference abbreviation 1
	pokeWords(t, mem, 0x0170, 0x8425)
	_, _, err := cdc.Decode(0x0170)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, text.NestedAbbreviation))
}

func TestRunawayString(t *testing.T) {
	cdc, mem := makeCodec(t, 3)

	// a string with no end bit runs off the end of memory
	pokeWords(t, mem, 0x01fe, 0x0000)
	_, _, err := cdc.Decode(0x01fe)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))
}

func TestEncode(t *testing.T) {
	cdc, _ := makeCodec(t, 3)

	// version 3 dictionary words are two words long
	test.ExpectEquality(t, cdc.Resolution(), 2)

	enc := cdc.Encode("hello")
	test.ExpectEquality(t, len(enc), 2)
	test.ExpectEquality(t, enc[0], uint16(0x3551))
	test.ExpectEquality(t, enc[1], uint16(0xc685))

	// short words are padded
	enc = cdc.Encode("hi")
	test.ExpectEquality(t, enc[0], uint16(0x35c5))
	test.ExpectEquality(t, enc[1], uint16(0x94a5))

	// encoding is case-insensitive
	test.ExpectEquality(t, cdc.Encode("HELLO")[0], cdc.Encode("hello")[0])
}

func TestEncodeTruncation(t *testing.T) {
	cdc, _ := makeCodec(t, 3)

	// words longer than the resolution are truncated, meaning long words
	// with a common prefix encode identically
	a := cdc.Encode("applesauce")
	b := cdc.Encode("applesorchard")
	test.ExpectEquality(t, a[0], b[0])
	test.ExpectEquality(t, a[1], b[1])
}

func TestEncodeRoundTrip(t *testing.T) {
	cdc, mem := makeCodec(t, 5)

	// version 5 dictionary words are three words long
	test.ExpectEquality(t, cdc.Resolution(), 3)

	enc := cdc.Encode("xyzzy")
	pokeWords(t, mem, 0x0140, enc...)
	s, _, err := cdc.Decode(0x0140)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "xyzzy")
}
