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
	"strings"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/logger"
	"github.com/skeptomai/gruesome-sub000/machine/cpu/execution"
	"github.com/skeptomai/gruesome-sub000/machine/text"
)

func (cpu *CPU) executeVAR(res *execution.Result, ops []uint16) error {
	switch res.Defn.Opcode {
	case 0x00: // call / call_vs
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		return cpu.call(ops[0], ops[1:], true, res.StoreVariable, false)

	case 0x01: // storew
		if err := needOperands(res, ops, 3); err != nil {
			return err
		}
		return cpu.mem.Write16(uint32(ops[0]+2*ops[1]), ops[2])

	case 0x02: // storeb
		if err := needOperands(res, ops, 3); err != nil {
			return err
		}
		return cpu.mem.Write8(uint32(ops[0]+ops[1]), uint8(ops[2]))

	case 0x03: // put_prop
		if err := needOperands(res, ops, 3); err != nil {
			return err
		}
		return cpu.objects.SetProperty(ops[0], uint8(ops[1]), ops[2])

	case 0x04: // sread / aread
		return cpu.read(res, ops)

	case 0x05: // print_char
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		if r := text.ZSCII(ops[0]); r >= 0 {
			return cpu.print(string(r))
		}
		return nil

	case 0x06: // print_num
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		return cpu.print(fmt.Sprintf("%d", int16(ops[0])))

	case 0x07: // random
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		n := int16(ops[0])
		switch {
		case n > 0:
			return cpu.store(res, cpu.env.Random.Uniform(uint16(n)))
		case n < 0:
			cpu.env.Random.SeedPredictable(uint16(-n))
		default:
			cpu.env.Random.SeedRandom()
		}
		return cpu.store(res, 0)

	case 0x08: // push
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		return cpu.writeVariable(0, ops[0])

	case 0x09: // pull
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		value, err := cpu.readVariable(0)
		if err != nil {
			return err
		}
		return cpu.pokeVariable(uint8(ops[0]), value)

	case 0x0a: // split_window
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		if cpu.display != nil {
			cpu.display.SplitWindow(int(ops[0]))
		}
		return nil

	case 0x0b: // set_window
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		if cpu.display != nil {
			cpu.display.SelectWindow(int(ops[0]))
		}
		return nil

	case 0x0c: // call_vs2
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		return cpu.call(ops[0], ops[1:], true, res.StoreVariable, false)

	case 0x0d: // erase_window
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		if cpu.display != nil {
			cpu.display.EraseWindow(int(int16(ops[0])))
		}
		return nil

	case 0x0e: // erase_line
		if cpu.display != nil && operandOr(ops, 0, 0) == 1 {
			cpu.display.EraseLine()
		}
		return nil

	case 0x0f: // set_cursor
		if err := needOperands(res, ops, 2); err != nil {
			return err
		}
		if cpu.display != nil {
			cpu.display.SetCursor(int(int16(ops[0])), int(ops[1]))
		}
		return nil

	case 0x10: // get_cursor
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		var line, column int
		if cpu.display != nil {
			line, column = cpu.display.GetCursor()
		}
		err := cpu.mem.Write16(uint32(ops[0]), uint16(line))
		if err != nil {
			return err
		}
		return cpu.mem.Write16(uint32(ops[0]+2), uint16(column))

	case 0x11: // set_text_style
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		if cpu.display != nil {
			cpu.display.SetTextStyle(int(ops[0]))
		}
		return nil

	case 0x12: // buffer_mode
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		if cpu.display != nil {
			cpu.display.SetBufferMode(ops[0] == 1)
		}
		return nil

	case 0x13: // output_stream
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		return cpu.outputStream(int16(ops[0]), operandOr(ops, 1, 0))

	case 0x14: // input_stream
		logger.Log(cpu.env, "cpu", "input stream switching is not supported")
		return nil

	case 0x15: // sound_effect
		return cpu.soundEffect(ops)

	case 0x16: // read_char
		return cpu.readChar(res, ops)

	case 0x17: // scan_table
		return cpu.scanTable(res, ops)

	case 0x18: // not
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		return cpu.store(res, ^ops[0])

	case 0x19, 0x1a: // call_vn / call_vn2
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		return cpu.call(ops[0], ops[1:], false, 0, false)

	case 0x1b: // tokenise
		if err := needOperands(res, ops, 2); err != nil {
			return err
		}
		line, err := cpu.textBufferContents(uint32(ops[0]))
		if err != nil {
			return err
		}
		return cpu.tokenizeInto(line, uint32(ops[1]), uint32(operandOr(ops, 2, 0)), operandOr(ops, 3, 0) != 0)

	case 0x1c: // encode_text
		return cpu.encodeText(ops)

	case 0x1d: // copy_table
		return cpu.copyTable(ops)

	case 0x1e: // print_table
		return cpu.printTable(ops)

	case 0x1f: // check_arg_count
		if err := needOperands(res, ops, 1); err != nil {
			return err
		}
		argCount := 0
		if len(cpu.frames) > 0 {
			argCount = cpu.frames[len(cpu.frames)-1].ArgCount
		}
		return cpu.branch(res, int(ops[0]) <= argCount)
	}

	return curated.Errorf(DecodeFault, fmt.Sprintf("no implementation for %s", res.Defn))
}

// the current contents of a text buffer, as stored by a read operation
func (cpu *CPU) textBufferContents(address uint32) (string, error) {
	var b strings.Builder

	if cpu.version <= 4 {
		for i := uint32(1); ; i++ {
			c, err := cpu.mem.Read8(address + i)
			if err != nil {
				return "", err
			}
			if c == 0 {
				break
			}
			if r := text.ZSCII(uint16(c)); r >= 0 {
				b.WriteRune(r)
			}
		}
	} else {
		count, err := cpu.mem.Read8(address + 1)
		if err != nil {
			return "", err
		}
		for i := uint32(0); i < uint32(count); i++ {
			c, err := cpu.mem.Read8(address + 2 + i)
			if err != nil {
				return "", err
			}
			if r := text.ZSCII(uint16(c)); r >= 0 {
				b.WriteRune(r)
			}
		}
	}

	return b.String(), nil
}

func (cpu *CPU) soundEffect(ops []uint16) error {
	number := int(operandOr(ops, 0, 1))
	effect := int(operandOr(ops, 1, 2))

	// the volume operand packs repeats into its high byte
	volume := int(operandOr(ops, 2, 0x08) & 0xff)
	repeats := int(operandOr(ops, 2, 0) >> 8)

	if cpu.audio == nil {
		logger.Log(cpu.env, "cpu", "sound effect requested but no audio attached")
		return nil
	}

	switch effect {
	case 1:
		// prepare. nothing to do, samples are loaded up front
		return nil
	case 2:
		err := cpu.audio.Play(number, volume, repeats)
		if err != nil {
			logger.Logf(cpu.env, "cpu", "sound effect failed: %v", err)
		}
		return nil
	case 3, 4:
		return cpu.audio.Stop(number)
	}

	logger.Logf(cpu.env, "cpu", "unknown sound effect operation (%d)", effect)
	return nil
}

func (cpu *CPU) scanTable(res *execution.Result, ops []uint16) error {
	if err := needOperands(res, ops, 3); err != nil {
		return err
	}

	target := ops[0]
	table := uint32(ops[1])
	length := int(ops[2])

	// the form operand defaults to a word search of two byte entries. bit 7
	// selects a word search and the remaining bits give the entry length
	form := uint8(operandOr(ops, 3, 0x82))
	words := form&0x80 == 0x80
	entryLength := uint32(form & 0x7f)
	if entryLength == 0 {
		return curated.Errorf(DecodeFault, "scan_table with zero entry length")
	}

	for i := 0; i < length; i++ {
		address := table + uint32(i)*entryLength

		var found bool
		if words {
			v, err := cpu.mem.Read16(address)
			if err != nil {
				return err
			}
			found = v == target
		} else {
			v, err := cpu.mem.Read8(address)
			if err != nil {
				return err
			}
			found = uint16(v) == target
		}

		if found {
			err := cpu.store(res, uint16(address))
			if err != nil {
				return err
			}
			return cpu.branch(res, true)
		}
	}

	err := cpu.store(res, 0)
	if err != nil {
		return err
	}
	return cpu.branch(res, false)
}

func (cpu *CPU) encodeText(ops []uint16) error {
	if len(ops) < 4 {
		return curated.Errorf(DecodeFault, "missing operand for encode_text")
	}

	source := uint32(ops[0])
	length := uint32(ops[1])
	from := uint32(ops[2])
	dest := uint32(ops[3])

	var b strings.Builder
	for i := uint32(0); i < length; i++ {
		c, err := cpu.mem.Read8(source + from + i)
		if err != nil {
			return err
		}
		if r := text.ZSCII(uint16(c)); r >= 0 {
			b.WriteRune(r)
		}
	}

	for i, w := range cpu.cdc.Encode(b.String()) {
		err := cpu.mem.Write16(dest+uint32(i)*2, w)
		if err != nil {
			return err
		}
	}
	return nil
}

func (cpu *CPU) copyTable(ops []uint16) error {
	if len(ops) < 3 {
		return curated.Errorf(DecodeFault, "missing operand for copy_table")
	}

	first := uint32(ops[0])
	second := uint32(ops[1])
	size := int(int16(ops[2]))

	// a second table of zero zeroes the first table instead of copying
	if second == 0 {
		for i := 0; i < size; i++ {
			err := cpu.mem.Write8(first+uint32(i), 0)
			if err != nil {
				return err
			}
		}
		return nil
	}

	// a negative size forces a forward copy even when the tables overlap
	forced := size < 0
	if forced {
		size = -size
	}

	if !forced && second > first && second < first+uint32(size) {
		// copy backwards so an overlapping destination is not corrupted
		for i := size - 1; i >= 0; i-- {
			v, err := cpu.mem.Read8(first + uint32(i))
			if err != nil {
				return err
			}
			err = cpu.mem.Write8(second+uint32(i), v)
			if err != nil {
				return err
			}
		}
		return nil
	}

	for i := 0; i < size; i++ {
		v, err := cpu.mem.Read8(first + uint32(i))
		if err != nil {
			return err
		}
		err = cpu.mem.Write8(second+uint32(i), v)
		if err != nil {
			return err
		}
	}
	return nil
}

func (cpu *CPU) printTable(ops []uint16) error {
	if len(ops) < 2 {
		return curated.Errorf(DecodeFault, "missing operand for print_table")
	}

	address := uint32(ops[0])
	width := uint32(ops[1])
	height := uint32(operandOr(ops, 2, 1))
	skip := uint32(operandOr(ops, 3, 0))

	for row := uint32(0); row < height; row++ {
		if row > 0 {
			err := cpu.print("\n")
			if err != nil {
				return err
			}
		}

		var b strings.Builder
		for col := uint32(0); col < width; col++ {
			c, err := cpu.mem.Read8(address)
			if err != nil {
				return err
			}
			address++
			if r := text.ZSCII(uint16(c)); r >= 0 {
				b.WriteRune(r)
			}
		}
		address += skip

		err := cpu.print(b.String())
		if err != nil {
			return err
		}
	}

	return nil
}
