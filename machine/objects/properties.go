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

import (
	"github.com/skeptomai/gruesome-sub000/curated"
)

// address of the object's property table
func (tab *Table) propertiesAddr(obj uint16) (uint32, error) {
	addr, err := tab.entryAddr(obj)
	if err != nil {
		return 0, err
	}
	props, err := tab.mem.Read16(addr + tab.lay.propertiesOffset())
	return uint32(props), err
}

// address of the first property header, beyond the short name
func (tab *Table) firstPropertyAddr(obj uint16) (uint32, error) {
	props, err := tab.propertiesAddr(obj)
	if err != nil {
		return 0, err
	}
	nameLength, err := tab.mem.Read8(props)
	if err != nil {
		return 0, err
	}
	return props + 1 + uint32(nameLength)*2, nil
}

// findProperty walks the property list looking for the numbered property.
// properties are stored in descending order of number so the walk stops
// early on a miss. returns the address and length of the property data, or
// an address of zero if the property is absent.
func (tab *Table) findProperty(obj uint16, n uint8) (uint32, int, error) {
	addr, err := tab.firstPropertyAddr(obj)
	if err != nil {
		return 0, 0, err
	}

	for {
		b, err := tab.mem.Read8(addr)
		if err != nil {
			return 0, 0, err
		}
		if b == 0 {
			return 0, 0, nil
		}

		var b2 uint8
		if b&0x80 == 0x80 {
			b2, err = tab.mem.Read8(addr + 1)
			if err != nil {
				return 0, 0, err
			}
		}

		num, length, hdrLen := tab.lay.propertyHeader(b, b2)
		if num == n {
			return addr + uint32(hdrLen), length, nil
		}
		if num < n {
			return 0, 0, nil
		}

		addr += uint32(hdrLen) + uint32(length)
	}
}

// Property returns the value of the numbered property. Absent properties
// take their value from the defaults table. Properties longer than two
// bytes cannot be read as a value.
func (tab *Table) Property(obj uint16, n uint8) (uint16, error) {
	if n == 0 || int(n) > tab.lay.defaults() {
		return 0, curated.Errorf(InvalidProperty, n)
	}

	addr, length, err := tab.findProperty(obj, n)
	if err != nil {
		return 0, err
	}

	if addr == 0 {
		return tab.mem.Read16(uint32(tab.base) + uint32(n-1)*2)
	}

	switch length {
	case 1:
		v, err := tab.mem.Read8(addr)
		return uint16(v), err
	case 2:
		return tab.mem.Read16(addr)
	}

	return 0, curated.Errorf(OversizeProperty, n, length)
}

// SetProperty writes a value to the numbered property. Writing to a
// property the object does not have is a fault in the story.
func (tab *Table) SetProperty(obj uint16, n uint8, value uint16) error {
	if n == 0 || int(n) > tab.lay.defaults() {
		return curated.Errorf(InvalidProperty, n)
	}

	addr, length, err := tab.findProperty(obj, n)
	if err != nil {
		return err
	}
	if addr == 0 {
		return curated.Errorf(MissingProperty, obj, n)
	}

	switch length {
	case 1:
		return tab.mem.Write8(addr, uint8(value))
	case 2:
		return tab.mem.Write16(addr, value)
	}

	return curated.Errorf(OversizeProperty, n, length)
}

// PropertyAddress returns the address of the numbered property's data. An
// absent property returns zero.
func (tab *Table) PropertyAddress(obj uint16, n uint8) (uint16, error) {
	if n == 0 || int(n) > tab.lay.defaults() {
		return 0, curated.Errorf(InvalidProperty, n)
	}

	addr, _, err := tab.findProperty(obj, n)
	if err != nil {
		return 0, err
	}
	return uint16(addr), nil
}

// PropertyLength returns the length of the property data at the supplied
// address, which must have come from PropertyAddress. An address of zero
// returns zero.
func (tab *Table) PropertyLength(address uint16) (int, error) {
	if address == 0 {
		return 0, nil
	}

	// the final byte of the property header sits immediately before the data
	b, err := tab.mem.Read8(uint32(address) - 1)
	if err != nil {
		return 0, err
	}
	return tab.lay.propertyLengthFromByte(b), nil
}

// NextProperty returns the number of the property following the numbered
// one in the object's property list. An n of zero returns the first
// property number. The last property is followed by zero. Asking for the
// successor of a property the object does not have is a fault in the story.
func (tab *Table) NextProperty(obj uint16, n uint8) (uint8, error) {
	addr, err := tab.firstPropertyAddr(obj)
	if err != nil {
		return 0, err
	}

	if n == 0 {
		b, err := tab.mem.Read8(addr)
		if err != nil {
			return 0, err
		}
		if b == 0 {
			return 0, nil
		}
		num, _, _ := tab.lay.propertyHeader(b, 0)
		return num, nil
	}

	dataAddr, length, err := tab.findProperty(obj, n)
	if err != nil {
		return 0, err
	}
	if dataAddr == 0 {
		return 0, curated.Errorf(MissingProperty, obj, n)
	}

	b, err := tab.mem.Read8(dataAddr + uint32(length))
	if err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, nil
	}
	num, _, _ := tab.lay.propertyHeader(b, 0)
	return num, nil
}
