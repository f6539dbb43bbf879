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

package objects

// layout implementations describe the version specific geometry of the
// object table. the geometry changed once, between versions 3 and 4, so
// there are exactly two implementations. the correct one is selected when
// the table is created and never changes for the life of the story.
type layout interface {
	// number of attribute flags per object
	attributes() int

	// number of bytes per object entry
	entrySize() uint32

	// largest valid object number
	maxObjects() uint16

	// number of entries in the property defaults table
	defaults() int

	// offsets of the parent, sibling and child fields within an entry
	relationOffsets() (parent uint32, sibling uint32, child uint32)

	// number of bytes in an object number field
	idSize() int

	// offset of the property table address within an entry
	propertiesOffset() uint32

	// propertyHeader decodes a property header. b is the first header byte
	// and b2 the byte after it (only examined by the extended layout, and
	// only when b marks a two byte header). returns the property number, the
	// length of the property data and the length of the header itself.
	propertyHeader(b uint8, b2 uint8) (num uint8, length int, header int)

	// propertyLengthFromByte recovers the length of a property's data from
	// the final byte of its header. used by the operation that is handed a
	// property data address with no other context.
	propertyLengthFromByte(b uint8) int
}

// earlyLayout is the object table geometry for version 3 stories.
type earlyLayout struct{}

func (earlyLayout) attributes() int    { return 32 }
func (earlyLayout) entrySize() uint32  { return 9 }
func (earlyLayout) maxObjects() uint16 { return 255 }
func (earlyLayout) defaults() int      { return 31 }
func (earlyLayout) idSize() int        { return 1 }

func (earlyLayout) relationOffsets() (uint32, uint32, uint32) {
	return 4, 5, 6
}

func (earlyLayout) propertiesOffset() uint32 {
	return 7
}

func (earlyLayout) propertyHeader(b uint8, _ uint8) (uint8, int, int) {
	return b & 0x1f, int(b>>5&0x07) + 1, 1
}

func (earlyLayout) propertyLengthFromByte(b uint8) int {
	return int(b>>5&0x07) + 1
}

// extendedLayout is the object table geometry for version 4 and 5 stories.
type extendedLayout struct{}

func (extendedLayout) attributes() int    { return 48 }
func (extendedLayout) entrySize() uint32  { return 14 }
func (extendedLayout) maxObjects() uint16 { return 65535 }
func (extendedLayout) defaults() int      { return 63 }
func (extendedLayout) idSize() int        { return 2 }

func (extendedLayout) relationOffsets() (uint32, uint32, uint32) {
	return 6, 8, 10
}

func (extendedLayout) propertiesOffset() uint32 {
	return 12
}

func (extendedLayout) propertyHeader(b uint8, b2 uint8) (uint8, int, int) {
	if b&0x80 == 0x80 {
		length := int(b2 & 0x3f)
		if length == 0 {
			length = 64
		}
		return b & 0x3f, length, 2
	}
	if b&0x40 == 0x40 {
		return b & 0x3f, 2, 1
	}
	return b & 0x3f, 1, 1
}

func (extendedLayout) propertyLengthFromByte(b uint8) int {
	if b&0x80 == 0x80 {
		length := int(b & 0x3f)
		if length == 0 {
			length = 64
		}
		return length
	}
	if b&0x40 == 0x40 {
		return 2
	}
	return 1
}
