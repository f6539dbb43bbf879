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

// Frame is one routine activation on the call stack.
type Frame struct {
	// where execution continues when the routine returns
	ReturnPC uint32

	// where the routine's return value goes. HasStore is false for
	// routines called by a call_vn style operation
	StoreVariable uint8
	HasStore      bool

	// the routine's local variables. never more than fifteen
	Locals []uint16

	// the region of the evaluation stack belonging to this routine begins
	// here. truncated back to this point on return
	StackBase int

	// number of arguments the routine was called with
	ArgCount int

	// the frame belongs to an interrupt routine. its return value is
	// captured by the cpu rather than stored to a variable
	Interrupt bool
}

// call a routine at a packed address. a packed address of zero does not
// call anything; such a call returns false immediately
func (cpu *CPU) call(packed uint16, args []uint16, hasStore bool, storeVariable uint8, interrupt bool) error {
	if packed == 0 {
		if hasStore {
			return cpu.writeVariable(storeVariable, 0)
		}
		return nil
	}

	if len(cpu.frames) >= callDepthLimit {
		return curated.Errorf(BadFrame, "call stack overflow")
	}

	address, err := cpu.mem.UnpackRoutine(packed)
	if err != nil {
		return err
	}

	numLocals, err := cpu.mem.Read8(address)
	if err != nil {
		return err
	}
	if numLocals > 15 {
		return curated.Errorf(BadFrame, "routine header claims more than fifteen locals")
	}
	address++

	locals := make([]uint16, numLocals)

	// before version 5 the routine header carries an initial value for each
	// local. from version 5 locals begin at zero
	if cpu.version < 5 {
		for i := range locals {
			locals[i], err = cpu.mem.Read16(address)
			if err != nil {
				return err
			}
			address += 2
		}
	}

	// arguments overwrite the initial values. excess arguments are dropped
	for i, a := range args {
		if i >= len(locals) {
			break
		}
		locals[i] = a
	}

	cpu.frames = append(cpu.frames, Frame{
		ReturnPC:      cpu.PC,
		StoreVariable: storeVariable,
		HasStore:      hasStore,
		Locals:        locals,
		StackBase:     len(cpu.stack),
		ArgCount:      len(args),
		Interrupt:     interrupt,
	})
	cpu.PC = address

	return nil
}

// return from the current routine with the supplied value
func (cpu *CPU) returnFromRoutine(value uint16) error {
	if len(cpu.frames) == 0 {
		return curated.Errorf(BadFrame, "return outside of any routine")
	}

	frame := cpu.frames[len(cpu.frames)-1]
	cpu.frames = cpu.frames[:len(cpu.frames)-1]
	cpu.stack = cpu.stack[:frame.StackBase]
	cpu.PC = frame.ReturnPC

	if frame.Interrupt {
		cpu.interruptResult = value
		return nil
	}

	if frame.HasStore {
		return cpu.writeVariable(frame.StoreVariable, value)
	}
	return nil
}

// callInterrupt runs a routine to completion and returns its result. used
// for the routines named by timed input operations
func (cpu *CPU) callInterrupt(packed uint16) (uint16, error) {
	depth := len(cpu.frames)
	cpu.interruptResult = 0

	err := cpu.call(packed, nil, false, 0, true)
	if err != nil {
		return 0, err
	}

	for len(cpu.frames) > depth && !cpu.quit {
		err = cpu.ExecuteInstruction()
		if err != nil {
			return 0, err
		}
	}

	return cpu.interruptResult, nil
}
