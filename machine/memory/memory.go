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

// Package memory is the story address space. All reads and writes from the
// rest of the machine package go through the checked access functions in
// this package. Writes are only ever allowed into dynamic memory. The
// unchecked Poke functions exist for the interpreter's own writes to the
// header area and for committing a restored state.
package memory

import (
	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/memory/memorymap"
)

// sentinal errors returned by the memory package
const (
	OutOfBounds     = "memory: address out of bounds (%#06x)"
	ProtectionFault = "memory: write to read-only address (%#06x)"
	PackedFault     = "memory: packed address outside of high memory (%#06x)"
	BadLayout       = "memory: %v"
)

// Memory is the story address space.
type Memory struct {
	data []byte

	// copy of the data exactly as loaded. used for the restart operation and
	// as the reference when compressing dynamic memory into a save file
	pristine []byte

	staticBase uint16
	highBase   uint16
	scale      uint32
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The data slice is copied and the copy is owned by the Memory instance.
func NewMemory(data []byte, hdr header.Header) (*Memory, error) {
	if int(hdr.StaticMemory) > len(data) {
		return nil, curated.Errorf(BadLayout, "static memory base beyond end of file")
	}
	if hdr.StaticMemory < header.Size {
		return nil, curated.Errorf(BadLayout, "static memory base inside the header")
	}
	if int(hdr.HighMemory) > len(data) {
		return nil, curated.Errorf(BadLayout, "high memory base beyond end of file")
	}

	mem := &Memory{
		data:       make([]byte, len(data)),
		pristine:   make([]byte, len(data)),
		staticBase: hdr.StaticMemory,
		highBase:   hdr.HighMemory,
		scale:      hdr.PackedScale(),
	}
	copy(mem.data, data)
	copy(mem.pristine, data)

	return mem, nil
}

// Read8 returns the byte at the supplied address.
func (mem *Memory) Read8(address uint32) (uint8, error) {
	if address >= uint32(len(mem.data)) {
		return 0, curated.Errorf(OutOfBounds, address)
	}
	return mem.data[address], nil
}

// Read16 returns the big-endian word at the supplied address.
func (mem *Memory) Read16(address uint32) (uint16, error) {
	if address+1 >= uint32(len(mem.data)) {
		return 0, curated.Errorf(OutOfBounds, address)
	}
	return uint16(mem.data[address])<<8 | uint16(mem.data[address+1]), nil
}

// Write8 writes a byte to the supplied address. Writes outside of dynamic
// memory fail with a ProtectionFault.
func (mem *Memory) Write8(address uint32, value uint8) error {
	if address >= uint32(len(mem.data)) {
		return curated.Errorf(OutOfBounds, address)
	}
	if address >= uint32(mem.staticBase) {
		return curated.Errorf(ProtectionFault, address)
	}
	mem.data[address] = value
	return nil
}

// Write16 writes a big-endian word to the supplied address. Writes outside
// of dynamic memory fail with a ProtectionFault.
func (mem *Memory) Write16(address uint32, value uint16) error {
	if address+1 >= uint32(len(mem.data)) {
		return curated.Errorf(OutOfBounds, address)
	}
	if address+1 >= uint32(mem.staticBase) {
		return curated.Errorf(ProtectionFault, address)
	}
	mem.data[address] = uint8(value >> 8)
	mem.data[address+1] = uint8(value)
	return nil
}

// Poke8 writes a byte without the dynamic memory protection check. For use
// by the interpreter itself, never on behalf of the running story.
func (mem *Memory) Poke8(address uint32, value uint8) error {
	if address >= uint32(len(mem.data)) {
		return curated.Errorf(OutOfBounds, address)
	}
	mem.data[address] = value
	return nil
}

// Poke16 writes a big-endian word without the dynamic memory protection
// check.
func (mem *Memory) Poke16(address uint32, value uint16) error {
	if address+1 >= uint32(len(mem.data)) {
		return curated.Errorf(OutOfBounds, address)
	}
	mem.data[address] = uint8(value >> 8)
	mem.data[address+1] = uint8(value)
	return nil
}

// UnpackRoutine expands a packed routine address. The expanded address must
// land inside high memory.
func (mem *Memory) UnpackRoutine(packed uint16) (uint32, error) {
	return mem.unpack(packed)
}

// UnpackString expands a packed string address. The expanded address must
// land inside high memory.
func (mem *Memory) UnpackString(packed uint16) (uint32, error) {
	return mem.unpack(packed)
}

func (mem *Memory) unpack(packed uint16) (uint32, error) {
	address := uint32(packed) * mem.scale
	if address >= uint32(len(mem.data)) || address < uint32(mem.highBase) {
		return 0, curated.Errorf(PackedFault, address)
	}
	return address, nil
}

// Pack converts a byte address into a packed address.
func (mem *Memory) Pack(address uint32) uint16 {
	return uint16(address / mem.scale)
}

// Area returns the region of the address space that the address falls in.
func (mem *Memory) Area(address uint32) memorymap.Area {
	return memorymap.MapAddress(address, mem.staticBase, mem.highBase)
}

// DynamicSize returns the number of bytes in dynamic memory.
func (mem *Memory) DynamicSize() int {
	return int(mem.staticBase)
}

// Size returns the number of bytes in the whole address space.
func (mem *Memory) Size() int {
	return len(mem.data)
}

// Pristine returns the story data exactly as loaded. The caller must not
// mutate the returned slice.
func (mem *Memory) Pristine() []byte {
	return mem.pristine
}

// SnapshotDynamic returns a copy of the current contents of dynamic memory.
func (mem *Memory) SnapshotDynamic() []byte {
	snap := make([]byte, mem.staticBase)
	copy(snap, mem.data[:mem.staticBase])
	return snap
}

// CommitDynamic replaces the contents of dynamic memory. The supplied slice
// must be exactly the size of dynamic memory.
func (mem *Memory) CommitDynamic(dynamic []byte) error {
	if len(dynamic) != int(mem.staticBase) {
		return curated.Errorf(BadLayout, "dynamic memory size mismatch")
	}
	copy(mem.data[:mem.staticBase], dynamic)
	return nil
}

// ResetDynamic restores dynamic memory to the pristine loaded state. Used by
// the restart operation.
func (mem *Memory) ResetDynamic() {
	copy(mem.data[:mem.staticBase], mem.pristine[:mem.staticBase])
}
