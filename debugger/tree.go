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

package debugger

import (
	"bytes"
	"fmt"

	"github.com/bradleyjkemp/memviz"

	"github.com/skeptomai/gruesome-sub000/curated"
)

// a snapshot of part of the object tree, in a shape memviz can walk
type objectNode struct {
	Number   uint16
	Name     string
	Children []*objectNode
}

// guards against a corrupt tree with a sibling cycle
const maxTreeNodes = 512

// tree renders the object tree below the given object as a graphviz dot
// document.
func (dbg *Debugger) tree(root uint16) error {
	seen := make(map[uint16]bool)

	node, err := dbg.buildTree(root, seen)
	if err != nil {
		return err
	}

	b := &bytes.Buffer{}
	memviz.Map(b, node)
	fmt.Fprintln(dbg.output, b.String())

	return nil
}

func (dbg *Debugger) buildTree(obj uint16, seen map[uint16]bool) (*objectNode, error) {
	if seen[obj] || len(seen) > maxTreeNodes {
		return nil, curated.Errorf(DebuggerError, "object tree does not terminate")
	}
	seen[obj] = true

	name, err := dbg.m.Objects.Name(obj)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = "(anonymous)"
	}

	node := &objectNode{
		Number: obj,
		Name:   name,
	}

	child, err := dbg.m.Objects.Child(obj)
	if err != nil {
		return nil, err
	}

	for child != 0 {
		sub, err := dbg.buildTree(child, seen)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, sub)

		child, err = dbg.m.Objects.Sibling(child)
		if err != nil {
			return nil, err
		}
	}

	return node, nil
}
