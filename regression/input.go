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

package regression

import (
	"strings"
	"time"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/peripherals"
)

// separator between commands in a regression script
const scriptSep = ";"

// scriptedInput implements the peripherals.Input interface, feeding the
// story a fixed list of commands. When the list is spent every read returns
// the EndOfInput sentinel.
type scriptedInput struct {
	lines []string
}

func newScriptedInput(script string) *scriptedInput {
	inp := &scriptedInput{}
	if script != "" {
		inp.lines = strings.Split(script, scriptSep)
	}
	return inp
}

// ReadLine implements the peripherals.Input interface. The timeout is
// ignored; scripted input never waits.
func (inp *scriptedInput) ReadLine(timeout time.Duration) (string, error) {
	if len(inp.lines) == 0 {
		return "", curated.Errorf(peripherals.EndOfInput)
	}

	line := inp.lines[0]
	inp.lines = inp.lines[1:]
	return line, nil
}

// ReadChar implements the peripherals.Input interface. The next scripted
// line is consumed and its first character returned.
func (inp *scriptedInput) ReadChar(timeout time.Duration) (rune, error) {
	if len(inp.lines) == 0 {
		return 0, curated.Errorf(peripherals.EndOfInput)
	}

	line := inp.lines[0]
	inp.lines = inp.lines[1:]

	if line == "" {
		return '\n', nil
	}
	return rune(line[0]), nil
}
