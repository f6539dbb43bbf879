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
	"github.com/skeptomai/gruesome-sub000/logger"
	"github.com/skeptomai/gruesome-sub000/machine/text"
)

// stream three redirections can nest this deep
const maxStream3 = 16

// a single stream three redirection. characters land in the table as
// character codes, with the final count written to the table's first word
// when the redirection closes
type stream3Redirect struct {
	table uint32
	count uint32
}

// print sends story text to the selected output streams. While a memory
// redirection is open it swallows the text and nothing reaches the screen
// or the transcript.
func (cpu *CPU) print(s string) error {
	if len(cpu.stream3) > 0 {
		redirect := &cpu.stream3[len(cpu.stream3)-1]
		for _, r := range s {
			err := cpu.mem.Write8(redirect.table+2+redirect.count, text.ToZSCII(r))
			if err != nil {
				return err
			}
			redirect.count++
		}
		return nil
	}

	if cpu.streamScreen {
		if cpu.display == nil {
			return curated.Errorf(NotAttached, "display")
		}
		cpu.display.Print(s)
	}

	if cpu.streamTranscript && cpu.transcript != nil {
		_, err := cpu.transcript.Write([]byte(s))
		if err != nil {
			logger.Logf(cpu.env, "cpu", "transcript write failed: %v", err)
			cpu.streamTranscript = false
		}
	}

	return nil
}

// outputStream processes the output_stream operation. a positive stream
// number enables the stream, a negative number disables it
func (cpu *CPU) outputStream(stream int16, table uint16) error {
	switch stream {
	case 1:
		cpu.streamScreen = true
	case -1:
		cpu.streamScreen = false

	case 2:
		cpu.streamTranscript = true
	case -2:
		cpu.streamTranscript = false

	case 3:
		if len(cpu.stream3) >= maxStream3 {
			return curated.Errorf(BadFrame, "too many nested memory redirections")
		}
		cpu.stream3 = append(cpu.stream3, stream3Redirect{table: uint32(table)})

	case -3:
		if len(cpu.stream3) == 0 {
			return curated.Errorf(BadFrame, "memory redirection closed while none open")
		}
		redirect := cpu.stream3[len(cpu.stream3)-1]
		cpu.stream3 = cpu.stream3[:len(cpu.stream3)-1]
		return cpu.mem.Write16(redirect.table, uint16(redirect.count))

	case 4, -4:
		logger.Log(cpu.env, "cpu", "input stream recording is not supported")

	default:
		logger.Logf(cpu.env, "cpu", "unknown output stream (%d)", stream)
	}

	return nil
}
