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
)

func (cpu *CPU) execute1OP(res *execution.Result, ops []uint16) error {
	if err := needOperands(res, ops, 1); err != nil {
		return err
	}

	switch res.Defn.Opcode {
	case 0x00: // jz
		return cpu.branch(res, ops[0] == 0)

	case 0x01: // get_sibling
		sibling, err := cpu.objects.Sibling(ops[0])
		if err != nil {
			return err
		}
		err = cpu.store(res, sibling)
		if err != nil {
			return err
		}
		return cpu.branch(res, sibling != 0)

	case 0x02: // get_child
		child, err := cpu.objects.Child(ops[0])
		if err != nil {
			return err
		}
		err = cpu.store(res, child)
		if err != nil {
			return err
		}
		return cpu.branch(res, child != 0)

	case 0x03: // get_parent
		parent, err := cpu.objects.Parent(ops[0])
		if err != nil {
			return err
		}
		return cpu.store(res, parent)

	case 0x04: // get_prop_len
		length, err := cpu.objects.PropertyLength(ops[0])
		if err != nil {
			return err
		}
		return cpu.store(res, uint16(length))

	case 0x05: // inc
		v := uint8(ops[0])
		value, err := cpu.peekVariable(v)
		if err != nil {
			return err
		}
		return cpu.pokeVariable(v, value+1)

	case 0x06: // dec
		v := uint8(ops[0])
		value, err := cpu.peekVariable(v)
		if err != nil {
			return err
		}
		return cpu.pokeVariable(v, value-1)

	case 0x07: // print_addr
		s, _, err := cpu.cdc.Decode(uint32(ops[0]))
		if err != nil {
			return err
		}
		return cpu.print(s)

	case 0x08: // call_1s
		return cpu.call(ops[0], nil, true, res.StoreVariable, false)

	case 0x09: // remove_obj
		return cpu.objects.Remove(ops[0])

	case 0x0a: // print_obj
		name, err := cpu.objects.Name(ops[0])
		if err != nil {
			return err
		}
		return cpu.print(name)

	case 0x0b: // ret
		return cpu.returnFromRoutine(ops[0])

	case 0x0c: // jump
		cpu.PC = uint32(int64(cpu.PC) + int64(int16(ops[0])) - 2)
		return nil

	case 0x0d: // print_paddr
		address, err := cpu.mem.UnpackString(ops[0])
		if err != nil {
			return err
		}
		s, _, err := cpu.cdc.Decode(address)
		if err != nil {
			return err
		}
		return cpu.print(s)

	case 0x0e: // load
		value, err := cpu.peekVariable(uint8(ops[0]))
		if err != nil {
			return err
		}
		return cpu.store(res, value)

	case 0x0f: // not before version 5, call_1n after
		if res.Defn.Mnemonic == "not" {
			return cpu.store(res, ^ops[0])
		}
		return cpu.call(ops[0], nil, false, 0, false)
	}

	return curated.Errorf(DecodeFault, fmt.Sprintf("no implementation for %s", res.Defn))
}
