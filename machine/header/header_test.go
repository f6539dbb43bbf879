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

package header_test

import (
	"testing"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/test"
)

func makeImage(version byte) []byte {
	data := make([]byte, 128)
	data[header.AddrVersion] = version
	data[header.AddrRelease+1] = 42
	data[header.AddrHighMemory] = 0x00
	data[header.AddrHighMemory+1] = 0x80
	data[header.AddrInitialPC] = 0x00
	data[header.AddrInitialPC+1] = 0x81
	data[header.AddrStaticMemory] = 0x00
	data[header.AddrStaticMemory+1] = 0x40
	copy(data[header.AddrSerial:], "230815")
	return data
}

func TestParse(t *testing.T) {
	hdr, err := header.Parse(makeImage(3))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hdr.Version, byte(3))
	test.ExpectEquality(t, hdr.Release, uint16(42))
	test.ExpectEquality(t, hdr.HighMemory, uint16(0x0080))
	test.ExpectEquality(t, hdr.InitialPC, uint16(0x0081))
	test.ExpectEquality(t, string(hdr.Serial[:]), "230815")
	test.ExpectEquality(t, hdr.PackedScale(), uint32(2))

	hdr, err = header.Parse(makeImage(5))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, hdr.PackedScale(), uint32(4))
}

func TestUnsupportedVersion(t *testing.T) {
	for _, v := range []byte{0, 1, 2, 6, 7, 8} {
		_, err := header.Parse(makeImage(v))
		test.ExpectFailure(t, err)
		test.ExpectSuccess(t, curated.Is(err, header.UnsupportedVersion))
	}
}

func TestTooShort(t *testing.T) {
	_, err := header.Parse(make([]byte, 32))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, header.TooShort))
}

func TestChecksum(t *testing.T) {
	data := makeImage(3)

	// a zero checksum field always verifies
	hdr, err := header.Parse(data)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, hdr.VerifyChecksum(data))

	// sum of bytes beyond the header
	data[100] = 0x10
	data[101] = 0x24
	data[header.AddrChecksum] = 0x00
	data[header.AddrChecksum+1] = 0x34
	hdr, err = header.Parse(data)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, hdr.VerifyChecksum(data))

	// perturbing the data beyond the header breaks verification
	data[100] = 0x11
	test.ExpectFailure(t, hdr.VerifyChecksum(data))
}
