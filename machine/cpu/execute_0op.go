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

func (cpu *CPU) execute0OP(res *execution.Result) error {
	switch res.Defn.Opcode {
	case 0x00: // rtrue
		return cpu.returnFromRoutine(1)

	case 0x01: // rfalse
		return cpu.returnFromRoutine(0)

	case 0x02: // print
		return cpu.print(res.Text)

	case 0x03: // print_ret
		err := cpu.print(res.Text + "\n")
		if err != nil {
			return err
		}
		return cpu.returnFromRoutine(1)

	case 0x04: // nop
		return nil

	case 0x05: // save
		return cpu.saveOp(res)

	case 0x06: // restore
		return cpu.restoreOp(res)

	case 0x07: // restart
		if cpu.Handlers.Restart == nil {
			return curated.Errorf(NotAttached, "restart handler")
		}
		return cpu.Handlers.Restart()

	case 0x08: // ret_popped
		value, err := cpu.readVariable(0)
		if err != nil {
			return err
		}
		return cpu.returnFromRoutine(value)

	case 0x09: // pop before version 5, catch after
		if res.Defn.Mnemonic == "pop" {
			_, err := cpu.readVariable(0)
			return err
		}
		return cpu.store(res, uint16(len(cpu.frames)))

	case 0x0a: // quit
		cpu.quit = true
		return nil

	case 0x0b: // new_line
		return cpu.print("\n")

	case 0x0c: // show_status
		return cpu.showStatus()

	case 0x0d: // verify
		return cpu.branch(res, cpu.hdr.VerifyChecksum(cpu.mem.Pristine()))

	case 0x0f: // piracy
		// the interpreter believes every story is genuine
		return cpu.branch(res, true)
	}

	return curated.Errorf(DecodeFault, fmt.Sprintf("no implementation for %s", res.Defn))
}
