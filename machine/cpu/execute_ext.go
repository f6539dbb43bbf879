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
	"github.com/skeptomai/gruesome-sub000/machine/text"
)

func (cpu *CPU) executeEXT(res *execution.Result, ops []uint16) error {
	switch res.Defn.Opcode {
	case 0x00: // save
		// the extended save takes optional table operands for saving a
		// region of memory. that facility is rarely used and unsupported
		if len(ops) > 0 {
			return cpu.store(res, 0)
		}
		return cpu.saveOp(res)

	case 0x01: // restore
		if len(ops) > 0 {
			return cpu.store(res, 0)
		}
		return cpu.restoreOp(res)

	case 0x02: // log_shift
		if err := needOperands(res, ops, 2); err != nil {
			return err
		}
		places := int16(ops[1])
		if places >= 0 {
			return cpu.store(res, ops[0]<<uint(places))
		}
		return cpu.store(res, ops[0]>>uint(-places))

	case 0x03: // art_shift
		if err := needOperands(res, ops, 2); err != nil {
			return err
		}
		places := int16(ops[1])
		if places >= 0 {
			return cpu.store(res, uint16(int16(ops[0])<<uint(places)))
		}
		return cpu.store(res, uint16(int16(ops[0])>>uint(-places)))

	case 0x04: // set_font
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		switch ops[0] {
		case 0:
			return cpu.store(res, cpu.font)
		case 1, 4:
			// the normal font and the fixed pitch font are the same thing
			// on a terminal
			previous := cpu.font
			cpu.font = ops[0]
			return cpu.store(res, previous)
		}
		return cpu.store(res, 0)

	case 0x09: // save_undo
		return cpu.saveUndoOp(res)

	case 0x0a: // restore_undo
		return cpu.restoreUndoOp(res)

	case 0x0b: // print_unicode
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		return cpu.print(string(rune(ops[0])))

	case 0x0c: // check_unicode
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		// bit 0 for printable, bit 1 for receivable from the keyboard
		if text.ToZSCII(rune(ops[0])) != '?' || ops[0] == '?' {
			return cpu.store(res, 3)
		}
		return cpu.store(res, 0)
	}

	return curated.Errorf(DecodeFault, fmt.Sprintf("no implementation for %s", res.Defn))
}
