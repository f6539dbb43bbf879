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

package text

import "strings"

// the z-character used to pad encoded words out to the full resolution
const padCharacter = 5

// Resolution returns the number of words a dictionary entry's text is
// encoded into.
func (cdc *Codec) Resolution() int {
	if cdc.version <= 3 {
		return 2
	}
	return 3
}

// Encode a single word for dictionary lookup. The result is always exactly
// Resolution() words long. Longer words are truncated, shorter words padded.
func (cdc *Codec) Encode(word string) []uint16 {
	capacity := cdc.Resolution() * 3
	zchars := make([]uint8, 0, capacity+3)

	for _, r := range strings.ToLower(word) {
		if len(zchars) >= capacity {
			break
		}

		if r >= 'a' && r <= 'z' {
			zchars = append(zchars, uint8(r-'a'+6))
			continue
		}

		if idx := strings.IndexRune(alphabetA2, r); idx != -1 {
			zchars = append(zchars, padCharacter, uint8(idx+8))
			continue
		}

		// anything else is encoded as a ten bit character escape
		code := uint16(replacementGlyph)
		if r >= 32 && r <= 126 {
			code = uint16(r)
		} else {
			for i, e := range extraCharacters {
				if e == r {
					code = uint16(155 + i)
					break
				}
			}
		}
		zchars = append(zchars, padCharacter, 6, uint8(code>>5&0x1f), uint8(code&0x1f))
	}

	if len(zchars) > capacity {
		zchars = zchars[:capacity]
	}
	for len(zchars) < capacity {
		zchars = append(zchars, padCharacter)
	}

	words := make([]uint16, cdc.Resolution())
	for i := range words {
		words[i] = uint16(zchars[i*3])<<10 | uint16(zchars[i*3+1])<<5 | uint16(zchars[i*3+2])
	}
	words[len(words)-1] |= 0x8000

	return words
}
