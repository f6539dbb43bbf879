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
	"github.com/skeptomai/gruesome-sub000/logger"
	"github.com/skeptomai/gruesome-sub000/machine/cpu/execution"
)

// the program counter recorded in a saved state points into the middle of
// the save instruction: at its branch information in version 3 and at its
// store variable from version 4. when the state is restored, execution
// picks up by reprocessing that branch or store as if the save had just
// succeeded

// resume address for the save style operation being executed
func (cpu *CPU) resumePC(res *execution.Result) uint32 {
	if res.Defn.Branch {
		return res.Address + res.ByteCount - res.BranchByteCount
	}
	return res.Address + res.ByteCount - 1
}

func (cpu *CPU) saveOp(res *execution.Result) error {
	if cpu.Handlers.Save == nil {
		logger.Log(cpu.env, "cpu", "save requested but no save handler attached")
		return cpu.saveOutcome(res, false)
	}

	ok, err := cpu.Handlers.Save(cpu.resumePC(res))
	if err != nil {
		logger.Logf(cpu.env, "cpu", "save failed: %v", err)
		ok = false
	}
	return cpu.saveOutcome(res, ok)
}

func (cpu *CPU) saveOutcome(res *execution.Result, ok bool) error {
	if res.Defn.Branch {
		return cpu.branch(res, ok)
	}
	if ok {
		return cpu.store(res, 1)
	}
	return cpu.store(res, 0)
}

func (cpu *CPU) restoreOp(res *execution.Result) error {
	if cpu.Handlers.Restore == nil {
		logger.Log(cpu.env, "cpu", "restore requested but no restore handler attached")
		return cpu.saveOutcome(res, false)
	}

	ok, err := cpu.Handlers.Restore()
	if err != nil {
		return err
	}
	if ok {
		// the handler has replaced the cpu's state and the program counter
		// is the resume address recorded by the save
		return cpu.ResumeFromRestore()
	}

	// a failed restore carries on at the restore instruction itself
	return cpu.saveOutcome(res, false)
}

func (cpu *CPU) saveUndoOp(res *execution.Result) error {
	if cpu.Handlers.SaveUndo == nil {
		// minus one tells the story that undo is not available at all
		return cpu.store(res, 0xffff)
	}

	ok, err := cpu.Handlers.SaveUndo(cpu.resumePC(res))
	if err != nil {
		return err
	}
	return cpu.saveOutcome(res, ok)
}

func (cpu *CPU) restoreUndoOp(res *execution.Result) error {
	if cpu.Handlers.RestoreUndo == nil {
		return cpu.store(res, 0)
	}

	ok, err := cpu.Handlers.RestoreUndo()
	if err != nil {
		return err
	}
	if ok {
		return cpu.ResumeFromRestore()
	}
	return cpu.store(res, 0)
}

// ResumeFromRestore finishes a successful restore. The program counter
// holds the resume address recorded by the save that is being restored,
// pointing at that save's branch or store information. The branch or store
// is processed as a success: the branch is taken, or the value two is
// stored to mark the wake from a restore.
func (cpu *CPU) ResumeFromRestore() error {
	if cpu.version <= 3 {
		b, err := cpu.mem.Read8(cpu.PC)
		if err != nil {
			return err
		}
		cpu.PC++

		onTrue := b&0x80 == 0x80
		var offset int16
		if b&0x40 == 0x40 {
			offset = int16(b & 0x3f)
		} else {
			b2, err := cpu.mem.Read8(cpu.PC)
			if err != nil {
				return err
			}
			cpu.PC++
			offset = int16(b&0x3f)<<8 | int16(b2)
			if offset&0x2000 == 0x2000 {
				offset -= 0x4000
			}
		}

		if !onTrue {
			return nil
		}
		switch offset {
		case 0:
			return cpu.returnFromRoutine(0)
		case 1:
			return cpu.returnFromRoutine(1)
		}
		cpu.PC = uint32(int64(cpu.PC) + int64(offset) - 2)
		return nil
	}

	v, err := cpu.mem.Read8(cpu.PC)
	if err != nil {
		return err
	}
	cpu.PC++
	return cpu.writeVariable(v, 2)
}
