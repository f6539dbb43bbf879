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

package savestate

import (
	"github.com/skeptomai/gruesome-sub000/curated"
)

// the CMem chunk stores dynamic memory XORed against the pristine story
// file and run-length encoded. a zero byte in the XOR stream is written as
// 0x00 followed by the run length less one, so a run can cover at most 256
// bytes. trailing zero runs are omitted entirely

// compressDynamic encodes the difference between current and pristine
// dynamic memory.
func compressDynamic(current []byte, pristine []byte) []byte {
	encoded := make([]byte, 0, 256)

	run := 0
	flushRun := func() {
		for run > 0 {
			n := run
			if n > 256 {
				n = 256
			}
			encoded = append(encoded, 0x00, uint8(n-1))
			run -= n
		}
	}

	for i := range current {
		d := current[i] ^ pristine[i]
		if d == 0 {
			run++
			continue
		}
		flushRun()
		encoded = append(encoded, d)
	}

	// a trailing run of zeroes is implied by the chunk ending early

	return encoded
}

// uncompressDynamic reverses compressDynamic, producing a fresh copy of
// dynamic memory.
func uncompressDynamic(encoded []byte, pristine []byte) ([]byte, error) {
	restored := make([]byte, len(pristine))
	copy(restored, pristine)

	i := 0
	for p := 0; p < len(encoded); p++ {
		if i >= len(restored) {
			return nil, curated.Errorf(Corrupt, "compressed memory overruns dynamic area")
		}

		d := encoded[p]
		if d != 0 {
			restored[i] ^= d
			i++
			continue
		}

		p++
		if p >= len(encoded) {
			return nil, curated.Errorf(Corrupt, "compressed memory ends mid-run")
		}
		i += int(encoded[p]) + 1
	}

	if i > len(restored) {
		return nil, curated.Errorf(Corrupt, "compressed memory overruns dynamic area")
	}

	return restored, nil
}
