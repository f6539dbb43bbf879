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

// Package execution tracks the result of decoding a single instruction. The
// Result type is shared by the interpreter itself, the disassembler and the
// debugger.
package execution

import (
	"fmt"
	"strings"

	"github.com/skeptomai/gruesome-sub000/machine/cpu/instructions"
)

// Branch records the branch information at the end of a branching
// instruction.
type Branch struct {
	// branch is taken when the condition matches this value
	OnTrue bool

	// offset from the end of the instruction, less two. the special offsets
	// zero and one mean return false and return true
	Offset int16
}

// Result records the decoding of a single instruction. The length of the
// instruction is established exactly once, during decoding, and is recorded
// in the ByteCount field.
type Result struct {
	// the address the instruction was decoded from
	Address uint32

	Defn *instructions.Definition

	// decoded operands. variable operands have not been resolved
	Operands     []uint16
	OperandTypes []instructions.OperandType

	// valid only when Defn.Store is true
	StoreVariable uint8

	// valid only when Defn.Branch is true. BranchByteCount records whether
	// the branch information was encoded in one byte or two
	Branch          Branch
	BranchByteCount uint32

	// decoded inline text. valid only when Defn.Text is true
	Text string

	// total length of the instruction in bytes
	ByteCount uint32
}

// String returns a single line rendering of the decoded instruction.
func (res Result) String() string {
	if res.Defn == nil {
		return fmt.Sprintf("%06x: undecoded", res.Address)
	}

	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%06x: %s", res.Address, res.Defn.Mnemonic))

	for i, op := range res.Operands {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		switch res.OperandTypes[i] {
		case instructions.LargeConstant:
			b.WriteString(fmt.Sprintf("#%04x", op))
		case instructions.SmallConstant:
			b.WriteString(fmt.Sprintf("#%02x", op))
		case instructions.VariableRef:
			b.WriteString(VariableName(uint8(op)))
		}
	}

	if res.Defn.Store {
		b.WriteString(fmt.Sprintf(" -> %s", VariableName(res.StoreVariable)))
	}

	if res.Defn.Branch {
		switch res.Branch.Offset {
		case 0:
			b.WriteString(fmt.Sprintf(" [%t: rfalse]", res.Branch.OnTrue))
		case 1:
			b.WriteString(fmt.Sprintf(" [%t: rtrue]", res.Branch.OnTrue))
		default:
			b.WriteString(fmt.Sprintf(" [%t: %+d]", res.Branch.OnTrue, res.Branch.Offset))
		}
	}

	if res.Defn.Text {
		b.WriteString(fmt.Sprintf(" %q", res.Text))
	}

	return b.String()
}

// VariableName returns the conventional rendering of a variable number. The
// stack pointer is variable zero, locals run from 1 to 15 and globals from
// 16 to 255.
func VariableName(v uint8) string {
	switch {
	case v == 0:
		return "sp"
	case v < 16:
		return fmt.Sprintf("local%d", v-1)
	}
	return fmt.Sprintf("g%02x", v-16)
}
