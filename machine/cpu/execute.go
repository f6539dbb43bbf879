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
)

// ExecuteInstruction decodes and executes the instruction at the program
// counter.
func (cpu *CPU) ExecuteInstruction() error {
	if cpu.quit {
		return curated.Errorf(BadFrame, "execution after quit")
	}

	res, err := Decode(cpu.mem, cpu.cdc, cpu.version, cpu.PC)
	if err != nil {
		return err
	}
	cpu.LastResult = *res

	// the program counter steps over the whole instruction before
	// execution. branches and calls work from the stepped value
	cpu.PC = res.Address + res.ByteCount

	// resolve operands. a variable operand is replaced by the value of the
	// named variable, which in the case of the stack means a pop
	ops := make([]uint16, len(res.Operands))
	for i, raw := range res.Operands {
		if res.OperandTypes[i] == instructions.VariableRef {
			ops[i], err = cpu.readVariable(uint8(raw))
			if err != nil {
				return err
			}
		} else {
			ops[i] = raw
		}
	}

	switch res.Defn.Table {
	case instructions.ZeroOp:
		return cpu.execute0OP(res)
	case instructions.OneOp:
		return cpu.execute1OP(res, ops)
	case instructions.TwoOp:
		return cpu.execute2OP(res, ops)
	case instructions.VarOp:
		return cpu.executeVAR(res, ops)
	case instructions.ExtOp:
		return cpu.executeEXT(res, ops)
	}

	return curated.Errorf(DecodeFault, fmt.Sprintf("no dispatch for %s", res.Defn))
}

// store the value according to the instruction's store variable. a no-op
// for instructions that do not store
func (cpu *CPU) store(res *execution.Result, value uint16) error {
	if !res.Defn.Store {
		return nil
	}
	return cpu.writeVariable(res.StoreVariable, value)
}

// branch according to the instruction's branch information. the branch is
// taken when the condition matches the sense bit. offsets zero and one
// return from the current routine instead of branching
func (cpu *CPU) branch(res *execution.Result, condition bool) error {
	if !res.Defn.Branch || condition != res.Branch.OnTrue {
		return nil
	}

	switch res.Branch.Offset {
	case 0:
		return cpu.returnFromRoutine(0)
	case 1:
		return cpu.returnFromRoutine(1)
	}

	cpu.PC = uint32(int64(res.Address+res.ByteCount) + int64(res.Branch.Offset) - 2)
	return nil
}

// operand count guard. a story presenting too few operands is corrupt
func needOperands(res *execution.Result, ops []uint16, n int) error {
	if len(ops) < n {
		return curated.Errorf(DecodeFault, fmt.Sprintf("missing operand for %s", res.Defn.Mnemonic))
	}
	return nil
}

// operand helper for defaulted trailing operands
func operandOr(ops []uint16, i int, def uint16) uint16 {
	if i < len(ops) {
		return ops[i]
	}
	return def
}
