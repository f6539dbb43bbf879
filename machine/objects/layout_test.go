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

package objects_test

import (
	"testing"

	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/memory"
	"github.com/skeptomai/gruesome-sub000/machine/objects"
	"github.com/skeptomai/gruesome-sub000/machine/text"
	"github.com/skeptomai/gruesome-sub000/test"
)

// builds a version 5 image with a single object whose property table is the
// supplied bytes
func makeExtendedTable(t *testing.T, props []byte) *objects.Table {
	t.Helper()

	data := make([]byte, 0x0400)
	data[header.AddrVersion] = 5
	data[header.AddrStaticMemory] = 0x02
	data[header.AddrHighMemory] = 0x02
	data[header.AddrObjectTable+1] = 0x40

	// the extended defaults table is 63 words so the first entry is at 0xbe.
	// the property table pointer is at offset 12 of the entry
	data[0xbe+12] = 0x01
	data[0xbe+13] = 0x00
	copy(data[0x100:], props)

	hdr, err := header.Parse(data)
	test.ExpectSuccess(t, err)
	mem, err := memory.NewMemory(data, hdr)
	test.ExpectSuccess(t, err)

	return objects.NewTable(mem, hdr, text.NewCodec(mem, hdr))
}

// builds a version 3 image with a single object whose property table is the
// supplied bytes
func makeEarlyTable(t *testing.T, props []byte) *objects.Table {
	t.Helper()

	data := make([]byte, 0x0400)
	data[header.AddrVersion] = 3
	data[header.AddrStaticMemory] = 0x02
	data[header.AddrHighMemory] = 0x02
	data[header.AddrObjectTable+1] = 0x40

	// the early defaults table is 31 words so the first entry is at 0x7e.
	// the property table pointer is at offset 7 of the entry
	data[0x7e+7] = 0x01
	data[0x7e+8] = 0x00
	copy(data[0x100:], props)

	hdr, err := header.Parse(data)
	test.ExpectSuccess(t, err)
	mem, err := memory.NewMemory(data, hdr)
	test.ExpectSuccess(t, err)

	return objects.NewTable(mem, hdr, text.NewCodec(mem, hdr))
}

func TestEarlyPropertySizes(t *testing.T) {
	// the single size byte encodes 32*(size-1)+number, covering data lengths
	// 1 to 8 and property numbers 1 to 31
	for size := 1; size <= 8; size++ {
		for n := uint8(1); n <= 31; n++ {
			props := []byte{0x00, uint8(32*(size-1)) + n}
			props = append(props, make([]byte, size)...)
			props = append(props, 0x00)
			tab := makeEarlyTable(t, props)

			addr, err := tab.PropertyAddress(1, n)
			test.ExpectSuccess(t, err)
			test.ExpectEquality(t, addr, uint16(0x0102))

			length, err := tab.PropertyLength(addr)
			test.ExpectSuccess(t, err)
			test.ExpectEquality(t, length, size)

			next, err := tab.NextProperty(1, 0)
			test.ExpectSuccess(t, err)
			test.ExpectEquality(t, next, n)
		}
	}
}

func TestExtendedPropertySizes(t *testing.T) {
	// a two byte header can describe any data length from 1 to 64. a stored
	// length of zero means 64
	for size := 1; size <= 64; size++ {
		props := []byte{0x00, 0x81, uint8(size & 0x3f)}
		props = append(props, make([]byte, size)...)
		props = append(props, 0x00)
		tab := makeExtendedTable(t, props)

		addr, err := tab.PropertyAddress(1, 1)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, addr, uint16(0x0103))

		length, err := tab.PropertyLength(addr)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, length, size)
	}
}

func TestExtendedShortHeaders(t *testing.T) {
	// single byte headers describe one or two bytes of data via bit 6
	tab := makeExtendedTable(t, []byte{
		0x00,
		0x4a, 0x12, 0x34, // property 10, two bytes
		0x05, 0x56, // property 5, one byte
		0x00,
	})

	v, err := tab.Property(1, 10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x1234))

	v, err = tab.Property(1, 5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x56))

	addr, _ := tab.PropertyAddress(1, 10)
	length, err := tab.PropertyLength(addr)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, length, 2)

	addr, _ = tab.PropertyAddress(1, 5)
	length, err = tab.PropertyLength(addr)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, length, 1)
}

func TestExtendedAttributes(t *testing.T) {
	tab := makeExtendedTable(t, []byte{0x00, 0x00})

	// version 5 stories have 48 attributes
	test.ExpectSuccess(t, tab.SetAttribute(1, 47))
	v, err := tab.TestAttribute(1, 47)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, true)

	test.ExpectFailure(t, tab.SetAttribute(1, 48))
}
