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
	"github.com/skeptomai/gruesome-sub000/curated"
)

// variable zero is the top of the evaluation stack. reading pops and
// writing pushes. variables 1 to 15 are the current routine's locals and
// variables 16 to 255 are the globals

func (cpu *CPU) readVariable(v uint8) (uint16, error) {
	switch {
	case v == 0:
		if len(cpu.stack) <= cpu.stackBase() {
			return 0, curated.Errorf(StackUnderflow)
		}
		value := cpu.stack[len(cpu.stack)-1]
		cpu.stack = cpu.stack[:len(cpu.stack)-1]
		return value, nil

	case v < 16:
		locals := cpu.locals()
		if int(v) > len(locals) {
			return 0, curated.Errorf(InvalidVariable, v)
		}
		return locals[v-1], nil
	}

	return cpu.mem.Read16(cpu.globals + uint32(v-16)*2)
}

func (cpu *CPU) writeVariable(v uint8, value uint16) error {
	switch {
	case v == 0:
		cpu.stack = append(cpu.stack, value)
		return nil

	case v < 16:
		locals := cpu.locals()
		if int(v) > len(locals) {
			return curated.Errorf(InvalidVariable, v)
		}
		locals[v-1] = value
		return nil
	}

	return cpu.mem.Write16(cpu.globals+uint32(v-16)*2, value)
}

// peekVariable is the in-place read used by operations that name a variable
// indirectly. an indirect read of the stack leaves the top in place.
func (cpu *CPU) peekVariable(v uint8) (uint16, error) {
	if v == 0 {
		if len(cpu.stack) <= cpu.stackBase() {
			return 0, curated.Errorf(StackUnderflow)
		}
		return cpu.stack[len(cpu.stack)-1], nil
	}
	return cpu.readVariable(v)
}

// pokeVariable is the in-place write used by operations that name a
// variable indirectly. an indirect write to the stack replaces the top.
func (cpu *CPU) pokeVariable(v uint8, value uint16) error {
	if v == 0 {
		if len(cpu.stack) <= cpu.stackBase() {
			return curated.Errorf(StackUnderflow)
		}
		cpu.stack[len(cpu.stack)-1] = value
		return nil
	}
	return cpu.writeVariable(v, value)
}

// locals of the current routine. the main program has none
func (cpu *CPU) locals() []uint16 {
	if len(cpu.frames) == 0 {
		return nil
	}
	return cpu.frames[len(cpu.frames)-1].Locals
}

// the portion of the evaluation stack below this point belongs to calling
// routines and must not be popped
func (cpu *CPU) stackBase() int {
	if len(cpu.frames) == 0 {
		return 0
	}
	return cpu.frames[len(cpu.frames)-1].StackBase
}
