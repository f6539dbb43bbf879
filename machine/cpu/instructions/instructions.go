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

// Package instructions defines the instruction set. Whether an operation
// stores a result, whether it branches and which story versions it exists
// in are static facts about the instruction set and are recorded in the
// definitions table. The decoder never guesses any of this at runtime.
package instructions

import (
	"fmt"

	"github.com/skeptomai/gruesome-sub000/curated"
)

// sentinal errors returned by the instructions package
const (
	UnknownOpcode = "instructions: no operation for %s opcode %#02x in version %d"
)

// Form describes how an instruction's first byte arranges the rest of the
// instruction.
type Form int

// List of instruction forms. The Extended form is a version 5 addition.
const (
	Long Form = iota
	Short
	Variable
	Extended
)

// OperandType describes how a single operand is fetched.
type OperandType int

// List of operand types. The two bit type codes in the instruction encode
// these directly.
const (
	LargeConstant OperandType = iota
	SmallConstant
	VariableRef
	Omitted
)

// Size returns the number of bytes the operand occupies in the instruction.
func (typ OperandType) Size() uint32 {
	if typ == LargeConstant {
		return 2
	}
	if typ == Omitted {
		return 0
	}
	return 1
}

// Table identifies which of the five opcode tables an operation lives in.
type Table int

// The five opcode tables.
const (
	ZeroOp Table = iota
	OneOp
	TwoOp
	VarOp
	ExtOp
)

func (tbl Table) String() string {
	switch tbl {
	case ZeroOp:
		return "0OP"
	case OneOp:
		return "1OP"
	case TwoOp:
		return "2OP"
	case VarOp:
		return "VAR"
	case ExtOp:
		return "EXT"
	}
	return "unknown"
}

// Definition defines each operation in the instruction set.
type Definition struct {
	Opcode   uint8
	Table    Table
	Mnemonic string

	// the instruction ends with a store variable byte
	Store bool

	// the instruction ends with branch information
	Branch bool

	// the instruction is followed by inline packed text
	Text bool

	// the instruction carries two operand type bytes rather than one,
	// allowing up to eight operands
	DoubleTypes bool

	// the versions the operation exists in. a MaxVersion of zero means no
	// upper limit
	MinVersion byte
	MaxVersion byte
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%s:%#02x %s [store=%t branch=%t text=%t]",
		defn.Table, defn.Opcode, defn.Mnemonic, defn.Store, defn.Branch, defn.Text)
}

// lookup key. most opcodes have one definition but a handful changed
// meaning between versions and have two
type key struct {
	tbl    Table
	opcode uint8
}

var lookup map[key][]*Definition

func init() {
	lookup = make(map[key][]*Definition)
	for i := range definitions {
		defn := &definitions[i]
		k := key{tbl: defn.Table, opcode: defn.Opcode}
		lookup[k] = append(lookup[k], defn)
	}
}

// Lookup the definition for an opcode in the context of a story version.
func Lookup(tbl Table, opcode uint8, version byte) (*Definition, error) {
	for _, defn := range lookup[key{tbl: tbl, opcode: opcode}] {
		if version >= defn.MinVersion && (defn.MaxVersion == 0 || version <= defn.MaxVersion) {
			return defn, nil
		}
	}
	return nil, curated.Errorf(UnknownOpcode, tbl, opcode, version)
}
