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

// Package memorymap classifies story addresses into the three regions of the
// story file. Dynamic memory runs from the bottom of the file to the base of
// static memory and is the only region a story may write to. Static memory
// runs from there to the end of the file. High memory begins at the address
// named in the header and may overlap static memory. Packed addresses always
// resolve into high memory.
package memorymap

import "fmt"

// Area represents the different areas of the story address space
type Area int

// The different Area values
const (
	Dynamic Area = iota
	Static
	High
)

func (a Area) String() string {
	switch a {
	case Dynamic:
		return "Dynamic"
	case Static:
		return "Static"
	case High:
		return "High"
	}
	return "unknown"
}

// MapAddress returns the area of the address space the supplied address
// falls in. Because high memory may overlap static memory an address at or
// beyond the high memory base is always classified as High.
func MapAddress(address uint32, staticBase uint16, highBase uint16) Area {
	if address >= uint32(highBase) {
		return High
	}
	if address >= uint32(staticBase) {
		return Static
	}
	return Dynamic
}

// Summary returns a printable description of the memory map.
func Summary(staticBase uint16, highBase uint16, top uint32) string {
	return fmt.Sprintf("dynamic: %#04x to %#04x\nstatic: %#04x to %#06x\nhigh: %#04x to %#06x",
		0, staticBase-1, staticBase, top-1, highBase, top-1)
}
