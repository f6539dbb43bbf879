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

// Package header parses the fixed area at the bottom of a story file. The
// header names the story version and the addresses of the tables that the
// rest of the machine package needs: the dictionary, the object table, the
// global variables and the abbreviations table.
package header

import (
	"encoding/binary"

	"github.com/skeptomai/gruesome-sub000/curated"
)

// sentinal errors returned by the header package
const (
	TooShort           = "header: file too short (%d bytes)"
	UnsupportedVersion = "header: unsupported story version (%d)"
)

// Size of the header area in bytes
const Size = 64

// Addresses of the header fields. Exported for the benefit of the runtime
// writes the interpreter makes to announce its capabilities.
const (
	AddrVersion       = 0x00
	AddrFlags1        = 0x01
	AddrRelease       = 0x02
	AddrHighMemory    = 0x04
	AddrInitialPC     = 0x06
	AddrDictionary    = 0x08
	AddrObjectTable   = 0x0a
	AddrGlobals       = 0x0c
	AddrStaticMemory  = 0x0e
	AddrFlags2        = 0x10
	AddrSerial        = 0x12
	AddrAbbreviations = 0x18
	AddrFileLength    = 0x1a
	AddrChecksum      = 0x1c
	AddrInterpNumber  = 0x1e
	AddrInterpVersion = 0x1f
	AddrScreenHeight  = 0x20
	AddrScreenWidth   = 0x21
	AddrWidthUnits    = 0x22
	AddrHeightUnits   = 0x24
	AddrFontWidth     = 0x26
	AddrFontHeight    = 0x27
	AddrStandardRev   = 0x32
)

// Flags1 bits for version 3 stories
const (
	Flags1StatusUnavailable = 0x10
	Flags1ScreenSplitting   = 0x20
	Flags1VariablePitch     = 0x40
)

// Flags1 bits for version 4 and later stories
const (
	Flags1Bold     = 0x04
	Flags1Italic   = 0x08
	Flags1Fixed    = 0x10
	Flags1Sound    = 0x20
	Flags1Timed    = 0x80
	Flags1Colours  = 0x01
	Flags1Pictures = 0x02
)

// Header is the parsed form of the fixed area at the bottom of the story
// file. The raw bytes remain part of dynamic memory and stories are free to
// read them directly.
type Header struct {
	Version byte
	Flags1  byte
	Release uint16
	Serial  [6]byte

	// address of the base of high memory
	HighMemory uint16

	// address of the first instruction to execute
	InitialPC uint16

	Dictionary    uint16
	ObjectTable   uint16
	Globals       uint16
	StaticMemory  uint16
	Abbreviations uint16

	// length of the story file in bytes. the stored value is scaled and has
	// been expanded during parsing. a value of zero means the field was not
	// filled in by the compiler
	FileLength uint32

	Checksum uint16
}

// Parse the header from the story data. The data slice must cover at least
// the header area.
func Parse(data []byte) (Header, error) {
	if len(data) < Size {
		return Header{}, curated.Errorf(TooShort, len(data))
	}

	hdr := Header{
		Version:       data[AddrVersion],
		Flags1:        data[AddrFlags1],
		Release:       binary.BigEndian.Uint16(data[AddrRelease:]),
		HighMemory:    binary.BigEndian.Uint16(data[AddrHighMemory:]),
		InitialPC:     binary.BigEndian.Uint16(data[AddrInitialPC:]),
		Dictionary:    binary.BigEndian.Uint16(data[AddrDictionary:]),
		ObjectTable:   binary.BigEndian.Uint16(data[AddrObjectTable:]),
		Globals:       binary.BigEndian.Uint16(data[AddrGlobals:]),
		StaticMemory:  binary.BigEndian.Uint16(data[AddrStaticMemory:]),
		Abbreviations: binary.BigEndian.Uint16(data[AddrAbbreviations:]),
		Checksum:      binary.BigEndian.Uint16(data[AddrChecksum:]),
	}

	copy(hdr.Serial[:], data[AddrSerial:AddrSerial+6])

	if hdr.Version < 3 || hdr.Version > 5 {
		return Header{}, curated.Errorf(UnsupportedVersion, hdr.Version)
	}

	// the stored file length is divided by a version dependent scale
	hdr.FileLength = uint32(binary.BigEndian.Uint16(data[AddrFileLength:])) * uint32(hdr.PackedScale())

	return hdr, nil
}

// PackedScale returns the multiplier used when unpacking packed addresses.
func (hdr Header) PackedScale() uint32 {
	if hdr.Version <= 3 {
		return 2
	}
	return 4
}

// TimedGame returns true for version 3 stories that show a time of day on
// the status line rather than a score and turn count.
func (hdr Header) TimedGame() bool {
	return hdr.Version == 3 && hdr.Flags1&0x02 == 0x02
}

// VerifyChecksum sums every byte beyond the header area, modulo 0x10000, and
// compares the result with the checksum field. Story files written before
// the checksum field was defined leave the field at zero and always verify.
func (hdr Header) VerifyChecksum(data []byte) bool {
	if hdr.Checksum == 0 {
		return true
	}

	length := hdr.FileLength
	if length == 0 || length > uint32(len(data)) {
		length = uint32(len(data))
	}

	var sum uint16
	for _, b := range data[Size:length] {
		sum += uint16(b)
	}

	return sum == hdr.Checksum
}
