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
)

// showStatus redraws the version 3 status line. The first global holds the
// object the player is in, the second and third hold either the score and
// turn count or the time of day.
func (cpu *CPU) showStatus() error {
	if cpu.display == nil {
		return nil
	}

	location, err := cpu.readVariable(16)
	if err != nil {
		return err
	}

	var name string
	if location != 0 {
		name, err = cpu.objects.Name(location)
		if err != nil {
			return err
		}
	}

	a, err := cpu.readVariable(17)
	if err != nil {
		return err
	}
	b, err := cpu.readVariable(18)
	if err != nil {
		return err
	}

	var right string
	if cpu.hdr.TimedGame() {
		right = fmt.Sprintf("Time: %d:%02d", a, b)
	} else {
		right = fmt.Sprintf("Score: %d  Moves: %d", int16(a), int16(b))
	}

	cpu.display.ShowStatus(name, right)
	return nil
}
