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

func (cpu *CPU) execute2OP(res *execution.Result, ops []uint16) error {
	// je accepts up to four operands through the variable form. everything
	// else in the table takes exactly two
	if res.Defn.Opcode == 0x01 {
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
	} else if err := needOperands(res, ops, 2); err != nil {
		return err
	}

	switch res.Defn.Opcode {
	case 0x01: // je
		condition := false
		for _, o := range ops[1:] {
			if o == ops[0] {
				condition = true
				break
			}
		}
		return cpu.branch(res, condition)

	case 0x02: // jl
		return cpu.branch(res, int16(ops[0]) < int16(ops[1]))

	case 0x03: // jg
		return cpu.branch(res, int16(ops[0]) > int16(ops[1]))

	case 0x04: // dec_chk
		v := uint8(ops[0])
		value, err := cpu.peekVariable(v)
		if err != nil {
			return err
		}
		value--
		err = cpu.pokeVariable(v, value)
		if err != nil {
			return err
		}
		return cpu.branch(res, int16(value) < int16(ops[1]))

	case 0x05: // inc_chk
		v := uint8(ops[0])
		value, err := cpu.peekVariable(v)
		if err != nil {
			return err
		}
		value++
		err = cpu.pokeVariable(v, value)
		if err != nil {
			return err
		}
		return cpu.branch(res, int16(value) > int16(ops[1]))

	case 0x06: // jin
		parent, err := cpu.objects.Parent(ops[0])
		if err != nil {
			return err
		}
		return cpu.branch(res, parent == ops[1])

	case 0x07: // test
		return cpu.branch(res, ops[0]&ops[1] == ops[1])

	case 0x08: // or
		return cpu.store(res, ops[0]|ops[1])

	case 0x09: // and
		return cpu.store(res, ops[0]&ops[1])

	case 0x0a: // test_attr
		set, err := cpu.objects.TestAttribute(ops[0], int(ops[1]))
		if err != nil {
			return err
		}
		return cpu.branch(res, set)

	case 0x0b: // set_attr
		return cpu.objects.SetAttribute(ops[0], int(ops[1]))

	case 0x0c: // clear_attr
		return cpu.objects.ClearAttribute(ops[0], int(ops[1]))

	case 0x0d: // store
		return cpu.pokeVariable(uint8(ops[0]), ops[1])

	case 0x0e: // insert_obj
		return cpu.objects.Insert(ops[0], ops[1])

	case 0x0f: // loadw
		value, err := cpu.mem.Read16(uint32(ops[0] + 2*ops[1]))
		if err != nil {
			return err
		}
		return cpu.store(res, value)

	case 0x10: // loadb
		value, err := cpu.mem.Read8(uint32(ops[0] + ops[1]))
		if err != nil {
			return err
		}
		return cpu.store(res, uint16(value))

	case 0x11: // get_prop
		value, err := cpu.objects.Property(ops[0], uint8(ops[1]))
		if err != nil {
			return err
		}
		return cpu.store(res, value)

	case 0x12: // get_prop_addr
		address, err := cpu.objects.PropertyAddress(ops[0], uint8(ops[1]))
		if err != nil {
			return err
		}
		return cpu.store(res, address)

	case 0x13: // get_next_prop
		n, err := cpu.objects.NextProperty(ops[0], uint8(ops[1]))
		if err != nil {
			return err
		}
		return cpu.store(res, uint16(n))

	case 0x14: // add
		return cpu.store(res, uint16(int16(ops[0])+int16(ops[1])))

	case 0x15: // sub
		return cpu.store(res, uint16(int16(ops[0])-int16(ops[1])))

	case 0x16: // mul
		return cpu.store(res, uint16(int16(ops[0])*int16(ops[1])))

	case 0x17: // div
		if ops[1] == 0 {
			return curated.Errorf(DivisionByZero)
		}
		return cpu.store(res, uint16(int16(ops[0])/int16(ops[1])))

	case 0x18: // mod
		if ops[1] == 0 {
			return curated.Errorf(DivisionByZero)
		}
		return cpu.store(res, uint16(int16(ops[0])%int16(ops[1])))

	case 0x19: // call_2s
		return cpu.call(ops[0], ops[1:], true, res.StoreVariable, false)

	case 0x1a: // call_2n
		return cpu.call(ops[0], ops[1:], false, 0, false)

	case 0x1b: // set_colour
		// colour is not part of the screen model this interpreter provides
		return nil

	case 0x1c: // throw
		target := int(ops[1])
		if target < 1 || target > len(cpu.frames) {
			return curated.Errorf(BadFrame, fmt.Sprintf("throw to invalid frame (%d)", target))
		}
		cpu.frames = cpu.frames[:target]
		return cpu.returnFromRoutine(ops[0])
	}

	return curated.Errorf(DecodeFault, fmt.Sprintf("no implementation for %s", res.Defn))
}
