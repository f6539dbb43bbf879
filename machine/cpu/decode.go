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

package cpu

import (
	"fmt"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/cpu/execution"
	"github.com/skeptomai/gruesome-sub000/machine/cpu/instructions"
	"github.com/skeptomai/gruesome-sub000/machine/memory"
	"github.com/skeptomai/gruesome-sub000/machine/text"
)

// the byte that introduces an extended form instruction, from version 5
const extendedMarker = 0xbe

// Decode the instruction at the supplied address. Decoding establishes the
// instruction's length exactly once; the ByteCount field of the result is
// the only authority on where the next instruction begins.
//
// Decode is a free function rather than a method so that the disassembler
// can decode instructions without a full cpu.
func Decode(mem *memory.Memory, cdc *text.Codec, version byte, address uint32) (*execution.Result, error) {
	res := &execution.Result{Address: address}

	op, err := mem.Read8(address)
	if err != nil {
		return nil, err
	}
	length := uint32(1)

	var tbl instructions.Table
	var opcode uint8

	// operand types gathered from the form bits or from type bytes
	var types []instructions.OperandType

	// the number of type bytes to read. zero for the long and short forms
	typeBytes := 0

	switch {
	case op == extendedMarker && version >= 5:
		b, err := mem.Read8(address + length)
		if err != nil {
			return nil, err
		}
		length++
		tbl = instructions.ExtOp
		opcode = b
		typeBytes = 1

	case op&0xc0 == 0xc0:
		// variable form. bit 5 selects between the 2OP table and the VAR
		// table. operand types come from a type byte either way
		opcode = op & 0x1f
		if op&0x20 == 0x20 {
			tbl = instructions.VarOp
		} else {
			tbl = instructions.TwoOp
		}
		typeBytes = 1

	case op&0xc0 == 0x80:
		// short form. bits 4 and 5 give the type of the single operand. the
		// omitted type means there is no operand at all
		opcode = op & 0x0f
		typ := instructions.OperandType(op >> 4 & 0x03)
		if typ == instructions.Omitted {
			tbl = instructions.ZeroOp
		} else {
			tbl = instructions.OneOp
			types = append(types, typ)
		}

	default:
		// long form. always 2OP. bits 5 and 6 give the operand types, which
		// can only be small constants or variables
		opcode = op & 0x1f
		if opcode == 0 {
			return nil, curated.Errorf(DecodeFault, fmt.Sprintf("long form opcode zero at %#06x", address))
		}
		tbl = instructions.TwoOp
		if op&0x40 == 0x40 {
			types = append(types, instructions.VariableRef)
		} else {
			types = append(types, instructions.SmallConstant)
		}
		if op&0x20 == 0x20 {
			types = append(types, instructions.VariableRef)
		} else {
			types = append(types, instructions.SmallConstant)
		}
	}

	defn, err := instructions.Lookup(tbl, opcode, version)
	if err != nil {
		return nil, err
	}
	res.Defn = defn

	if defn.DoubleTypes {
		typeBytes = 2
	}

	// decode type bytes, two bits per operand most significant first. the
	// first omitted operand ends the list but every type byte is present in
	// the instruction whether its operands are omitted or not
	ended := false
	for i := 0; i < typeBytes; i++ {
		b, err := mem.Read8(address + length)
		if err != nil {
			return nil, err
		}
		length++

		for shift := 6; shift >= 0; shift -= 2 {
			typ := instructions.OperandType(b >> shift & 0x03)
			if typ == instructions.Omitted {
				ended = true
			} else if !ended {
				types = append(types, typ)
			}
		}
	}

	// fetch operands
	res.OperandTypes = types
	res.Operands = make([]uint16, len(types))
	for i, typ := range types {
		switch typ {
		case instructions.LargeConstant:
			res.Operands[i], err = mem.Read16(address + length)
		default:
			var b uint8
			b, err = mem.Read8(address + length)
			res.Operands[i] = uint16(b)
		}
		if err != nil {
			return nil, err
		}
		length += typ.Size()
	}

	if defn.Store {
		res.StoreVariable, err = mem.Read8(address + length)
		if err != nil {
			return nil, err
		}
		length++
	}

	if defn.Branch {
		b, err := mem.Read8(address + length)
		if err != nil {
			return nil, err
		}
		length++

		res.Branch.OnTrue = b&0x80 == 0x80

		if b&0x40 == 0x40 {
			// single byte form. a six bit unsigned offset
			res.Branch.Offset = int16(b & 0x3f)
			res.BranchByteCount = 1
		} else {
			// two byte form. a fourteen bit signed offset
			b2, err := mem.Read8(address + length)
			if err != nil {
				return nil, err
			}
			length++

			offset := int16(b&0x3f)<<8 | int16(b2)
			if offset&0x2000 == 0x2000 {
				offset -= 0x4000
			}
			res.Branch.Offset = offset
			res.BranchByteCount = 2
		}
	}

	if defn.Text {
		var textLength uint32
		res.Text, textLength, err = cdc.Decode(address + length)
		if err != nil {
			return nil, err
		}
		length += textLength
	}

	res.ByteCount = length
	return res, nil
}
