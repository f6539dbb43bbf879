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
	"strings"
	"time"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/cpu/execution"
	"github.com/skeptomai/gruesome-sub000/machine/peripherals"
	"github.com/skeptomai/gruesome-sub000/machine/text"
)

// the time operand of the input operations counts in tenths of a second
const inputTimeUnit = 100 * time.Millisecond

// read a line of input into the story's text buffer and, usually, tokenize
// it into the parse buffer. this is the sread operation before version 5
// and the aread operation after
func (cpu *CPU) read(res *execution.Result, ops []uint16) error {
	if err := needOperands(res, ops, 1); err != nil {
		return err
	}
	if cpu.input == nil {
		return curated.Errorf(NotAttached, "input")
	}

	textAddr := uint32(ops[0])
	parseAddr := uint32(operandOr(ops, 1, 0))
	timeLimit := operandOr(ops, 2, 0)
	routine := operandOr(ops, 3, 0)

	// the status line is redrawn before input is collected
	if cpu.version <= 3 {
		err := cpu.showStatus()
		if err != nil {
			return err
		}
	}

	capacity, err := cpu.mem.Read8(textAddr)
	if err != nil {
		return err
	}
	max := int(capacity)
	if cpu.version <= 4 {
		// before version 5 the buffer holds the text from byte 1 with a
		// zero terminator
		max--
	}
	if max < 0 {
		max = 0
	}

	line, aborted, err := cpu.readLine(timeLimit, routine)
	if err != nil {
		return err
	}

	line = strings.ToLower(line)
	if len(line) > max {
		line = line[:max]
	}

	if cpu.version <= 4 {
		for i, r := range line {
			err = cpu.mem.Write8(textAddr+1+uint32(i), text.ToZSCII(r))
			if err != nil {
				return err
			}
		}
		err = cpu.mem.Write8(textAddr+1+uint32(len(line)), 0)
		if err != nil {
			return err
		}
	} else {
		err = cpu.mem.Write8(textAddr+1, uint8(len(line)))
		if err != nil {
			return err
		}
		for i, r := range line {
			err = cpu.mem.Write8(textAddr+2+uint32(i), text.ToZSCII(r))
			if err != nil {
				return err
			}
		}
	}

	// from version 5 a parse buffer of zero skips tokenization
	if parseAddr != 0 {
		err = cpu.tokenizeInto(line, parseAddr, 0, false)
		if err != nil {
			return err
		}
	}

	// from version 5 the operation stores the terminating character. an
	// input interrupted by its timeout routine stores zero
	if aborted {
		return cpu.store(res, 0)
	}
	return cpu.store(res, 13)
}

// collect a line of input, running the timeout routine as needed. the
// aborted return is true when the timeout routine asked for the input to
// be cut short
func (cpu *CPU) readLine(timeLimit uint16, routine uint16) (string, bool, error) {
	var timeout time.Duration
	if timeLimit > 0 && routine != 0 && cpu.version >= 4 {
		timeout = time.Duration(timeLimit) * inputTimeUnit
	}

	for {
		line, err := cpu.input.ReadLine(timeout)
		if err == nil {
			return line, false, nil
		}
		if !curated.Is(err, peripherals.Timeout) {
			return "", false, err
		}

		ret, err := cpu.callInterrupt(routine)
		if err != nil {
			return "", false, err
		}
		if ret != 0 {
			return "", true, nil
		}
	}
}

// read_char collects a single character
func (cpu *CPU) readChar(res *execution.Result, ops []uint16) error {
	if cpu.input == nil {
		return curated.Errorf(NotAttached, "input")
	}

	timeLimit := operandOr(ops, 1, 0)
	routine := operandOr(ops, 2, 0)

	var timeout time.Duration
	if timeLimit > 0 && routine != 0 {
		timeout = time.Duration(timeLimit) * inputTimeUnit
	}

	for {
		r, err := cpu.input.ReadChar(timeout)
		if err == nil {
			return cpu.store(res, uint16(text.ToZSCII(r)))
		}
		if !curated.Is(err, peripherals.Timeout) {
			return err
		}

		ret, err := cpu.callInterrupt(routine)
		if err != nil {
			return err
		}
		if ret != 0 {
			return cpu.store(res, 0)
		}
	}
}

// tokenizeInto splits a line and writes the result to a parse buffer. a
// dictionary address of zero means the story's main dictionary. when
// skipUnknown is set, entries for words that are not in the dictionary are
// left untouched
func (cpu *CPU) tokenizeInto(line string, parseAddr uint32, dictAddr uint32, skipUnknown bool) error {
	tokens := cpu.dict.Tokenize(line)

	maxWords, err := cpu.mem.Read8(parseAddr)
	if err != nil {
		return err
	}
	if len(tokens) > int(maxWords) {
		tokens = tokens[:maxWords]
	}

	err = cpu.mem.Write8(parseAddr+1, uint8(len(tokens)))
	if err != nil {
		return err
	}

	// positions in the parse buffer are relative to the start of the text
	// buffer, whose layout depends on the version
	positionBase := 1
	if cpu.version >= 5 {
		positionBase = 2
	}

	for i, tok := range tokens {
		var address uint16
		if dictAddr == 0 {
			address, err = cpu.dict.Lookup(tok.Text)
		} else {
			address, err = cpu.dict.LookupIn(dictAddr, tok.Text)
		}
		if err != nil {
			return err
		}

		if address == 0 && skipUnknown {
			continue
		}

		entry := parseAddr + 2 + uint32(i)*4
		err = cpu.mem.Write16(entry, address)
		if err != nil {
			return err
		}
		err = cpu.mem.Write8(entry+2, uint8(len(tok.Text)))
		if err != nil {
			return err
		}
		err = cpu.mem.Write8(entry+3, uint8(tok.Offset+positionBase))
		if err != nil {
			return err
		}
	}

	return nil
}
