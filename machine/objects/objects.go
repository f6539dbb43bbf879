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

// Package objects gives structured access to the story's object table. The
// table is a forest of objects, each with a parent, a sibling and a child
// field, a block of attribute flags and a list of sized properties. The
// geometry of the table changed between versions 3 and 4 and the difference
// is captured by the layout interface.
package objects

import (
	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/memory"
	"github.com/skeptomai/gruesome-sub000/machine/text"
)

// sentinal errors returned by the objects package
const (
	InvalidObject    = "objects: invalid object number (%d)"
	InvalidAttribute = "objects: invalid attribute number (%d)"
	InvalidProperty  = "objects: invalid property number (%d)"
	MissingProperty  = "objects: object %d has no property %d"
	OversizeProperty = "objects: property %d is too long for a single read (%d bytes)"
	CorruptTree      = "objects: sibling chain of object %d does not terminate"
)

// Table gives access to the story's object table.
type Table struct {
	mem *memory.Memory
	cdc *text.Codec
	lay layout

	// address of the property defaults table. object entries follow it
	base uint16
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable(mem *memory.Memory, hdr header.Header, cdc *text.Codec) *Table {
	tab := &Table{
		mem:  mem,
		cdc:  cdc,
		base: hdr.ObjectTable,
	}

	if hdr.Version <= 3 {
		tab.lay = earlyLayout{}
	} else {
		tab.lay = extendedLayout{}
	}

	return tab
}

// MaxObjects returns the largest object number the table can hold.
func (tab *Table) MaxObjects() uint16 {
	return tab.lay.maxObjects()
}

// address of the entry for the numbered object. object zero is the absent
// object and is never a valid entry
func (tab *Table) entryAddr(obj uint16) (uint32, error) {
	if obj == 0 || obj > tab.lay.maxObjects() {
		return 0, curated.Errorf(InvalidObject, obj)
	}
	return uint32(tab.base) + uint32(tab.lay.defaults())*2 + uint32(obj-1)*tab.lay.entrySize(), nil
}

func (tab *Table) readID(address uint32) (uint16, error) {
	if tab.lay.idSize() == 1 {
		v, err := tab.mem.Read8(address)
		return uint16(v), err
	}
	return tab.mem.Read16(address)
}

func (tab *Table) writeID(address uint32, obj uint16) error {
	if tab.lay.idSize() == 1 {
		return tab.mem.Write8(address, uint8(obj))
	}
	return tab.mem.Write16(address, obj)
}

// Parent returns the parent of the object. Zero means the object has no
// parent.
func (tab *Table) Parent(obj uint16) (uint16, error) {
	addr, err := tab.entryAddr(obj)
	if err != nil {
		return 0, err
	}
	p, _, _ := tab.lay.relationOffsets()
	return tab.readID(addr + p)
}

// Sibling returns the next sibling of the object. Zero means the object is
// the last child of its parent.
func (tab *Table) Sibling(obj uint16) (uint16, error) {
	addr, err := tab.entryAddr(obj)
	if err != nil {
		return 0, err
	}
	_, s, _ := tab.lay.relationOffsets()
	return tab.readID(addr + s)
}

// Child returns the first child of the object. Zero means the object has no
// children.
func (tab *Table) Child(obj uint16) (uint16, error) {
	addr, err := tab.entryAddr(obj)
	if err != nil {
		return 0, err
	}
	_, _, c := tab.lay.relationOffsets()
	return tab.readID(addr + c)
}

func (tab *Table) setParent(obj uint16, parent uint16) error {
	addr, err := tab.entryAddr(obj)
	if err != nil {
		return err
	}
	p, _, _ := tab.lay.relationOffsets()
	return tab.writeID(addr+p, parent)
}

func (tab *Table) setSibling(obj uint16, sibling uint16) error {
	addr, err := tab.entryAddr(obj)
	if err != nil {
		return err
	}
	_, s, _ := tab.lay.relationOffsets()
	return tab.writeID(addr+s, sibling)
}

func (tab *Table) setChild(obj uint16, child uint16) error {
	addr, err := tab.entryAddr(obj)
	if err != nil {
		return err
	}
	_, _, c := tab.lay.relationOffsets()
	return tab.writeID(addr+c, child)
}

// Remove unlinks the object from its parent. The object keeps its own
// children. Removing an object that has no parent is a no-op.
func (tab *Table) Remove(obj uint16) error {
	parent, err := tab.Parent(obj)
	if err != nil {
		return err
	}
	if parent == 0 {
		return nil
	}

	sibling, err := tab.Sibling(obj)
	if err != nil {
		return err
	}

	// unlink from the parent's child chain. the chain walk is bounded by the
	// maximum object count so that a corrupt, cyclic chain cannot hang the
	// interpreter
	head, err := tab.Child(parent)
	if err != nil {
		return err
	}

	if head == obj {
		err = tab.setChild(parent, sibling)
		if err != nil {
			return err
		}
	} else {
		prev := head
		found := false
		for i := 0; i < int(tab.lay.maxObjects()); i++ {
			next, err := tab.Sibling(prev)
			if err != nil {
				return err
			}
			if next == obj {
				err = tab.setSibling(prev, sibling)
				if err != nil {
					return err
				}
				found = true
				break
			}
			if next == 0 {
				// the object believes it has a parent but the parent does
				// not list it. treat as already removed
				found = true
				break
			}
			prev = next
		}
		if !found {
			return curated.Errorf(CorruptTree, parent)
		}
	}

	err = tab.setParent(obj, 0)
	if err != nil {
		return err
	}
	return tab.setSibling(obj, 0)
}

// Insert moves the object to be the first child of the destination object.
// The object is unlinked from any existing parent first.
func (tab *Table) Insert(obj uint16, dest uint16) error {
	err := tab.Remove(obj)
	if err != nil {
		return err
	}

	head, err := tab.Child(dest)
	if err != nil {
		return err
	}

	err = tab.setSibling(obj, head)
	if err != nil {
		return err
	}
	err = tab.setChild(dest, obj)
	if err != nil {
		return err
	}
	return tab.setParent(obj, dest)
}

// attribute byte address and bit mask
func (tab *Table) attrLocation(obj uint16, attr int) (uint32, uint8, error) {
	if attr < 0 || attr >= tab.lay.attributes() {
		return 0, 0, curated.Errorf(InvalidAttribute, attr)
	}
	addr, err := tab.entryAddr(obj)
	if err != nil {
		return 0, 0, err
	}
	return addr + uint32(attr/8), uint8(0x80 >> (attr % 8)), nil
}

// TestAttribute returns true if the numbered attribute flag is set.
func (tab *Table) TestAttribute(obj uint16, attr int) (bool, error) {
	addr, mask, err := tab.attrLocation(obj, attr)
	if err != nil {
		return false, err
	}
	b, err := tab.mem.Read8(addr)
	if err != nil {
		return false, err
	}
	return b&mask == mask, nil
}

// SetAttribute sets the numbered attribute flag.
func (tab *Table) SetAttribute(obj uint16, attr int) error {
	addr, mask, err := tab.attrLocation(obj, attr)
	if err != nil {
		return err
	}
	b, err := tab.mem.Read8(addr)
	if err != nil {
		return err
	}
	return tab.mem.Write8(addr, b|mask)
}

// ClearAttribute clears the numbered attribute flag.
func (tab *Table) ClearAttribute(obj uint16, attr int) error {
	addr, mask, err := tab.attrLocation(obj, attr)
	if err != nil {
		return err
	}
	b, err := tab.mem.Read8(addr)
	if err != nil {
		return err
	}
	return tab.mem.Write8(addr, b&^mask)
}

// Name returns the short name of the object.
func (tab *Table) Name(obj uint16) (string, error) {
	props, err := tab.propertiesAddr(obj)
	if err != nil {
		return "", err
	}

	length, err := tab.mem.Read8(props)
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}

	name, _, err := tab.cdc.Decode(props + 1)
	return name, err
}
