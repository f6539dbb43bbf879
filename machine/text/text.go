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

// Package text encodes and decodes the packed character strings used
// throughout a story file. Three five-bit characters are packed into each
// sixteen bit word. The high bit of the word marks the end of the string.
//
// Decoding works through three alphabets: lowercase letters, uppercase
// letters and a set of digits and punctuation. Shift characters select an
// alphabet for the single character that follows. Abbreviation characters
// splice in a string from the abbreviations table. An abbreviation may not
// itself contain an abbreviation.
package text

import (
	"strings"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/memory"
)

// sentinal errors returned by the text package
const (
	NestedAbbreviation = "text: abbreviation refers to another abbreviation"
)

// the three decoding alphabets. z-characters 6 to 31 index into these.
// positions 6 and 7 of alphabetA2 are special cased: 6 introduces a ten bit
// character escape and 7 is a newline
const (
	alphabetA0 = "abcdefghijklmnopqrstuvwxyz"
	alphabetA1 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphabetA2 = "0123456789.,!?_#'\"/\\-:()"
)

// glyph used in place of characters that have no printable form
const replacementGlyph = '?'

// Codec decodes and encodes packed strings for one loaded story.
type Codec struct {
	mem           *memory.Memory
	version       byte
	abbreviations uint16
}

// NewCodec is the preferred method of initialisation for the Codec type.
func NewCodec(mem *memory.Memory, hdr header.Header) *Codec {
	return &Codec{
		mem:           mem,
		version:       hdr.Version,
		abbreviations: hdr.Abbreviations,
	}
}

// Decode the packed string at the supplied address. Returns the decoded
// string and the number of bytes consumed.
func (cdc *Codec) Decode(address uint32) (string, uint32, error) {
	return cdc.decode(address, false)
}

func (cdc *Codec) decode(address uint32, insideAbbreviation bool) (string, uint32, error) {
	var b strings.Builder
	var length uint32

	// alphabet shift for the next character only. -1 means no shift
	shift := -1

	// a pending ten bit character escape. collect is the number of five bit
	// units still to arrive
	var escape uint16
	collect := 0

	// a pending abbreviation. zero means none
	pendingAbbrev := 0

	for {
		w, err := cdc.mem.Read16(address + length)
		if err != nil {
			return "", 0, err
		}
		length += 2

		for _, z := range []uint8{uint8(w >> 10 & 0x1f), uint8(w >> 5 & 0x1f), uint8(w & 0x1f)} {
			if collect > 0 {
				escape = escape<<5 | uint16(z)
				collect--
				if collect == 0 {
					if r := zscii(escape); r >= 0 {
						b.WriteRune(r)
					}
				}
				continue
			}

			if pendingAbbrev > 0 {
				if insideAbbreviation {
					return "", 0, curated.Errorf(NestedAbbreviation)
				}
				s, err := cdc.abbreviation(32*(pendingAbbrev-1) + int(z))
				if err != nil {
					return "", 0, err
				}
				b.WriteString(s)
				pendingAbbrev = 0
				continue
			}

			switch z {
			case 0:
				b.WriteRune(' ')
			case 1, 2, 3:
				pendingAbbrev = int(z)
			case 4:
				shift = 1
				continue
			case 5:
				shift = 2
				continue
			default:
				switch shift {
				case 1:
					b.WriteByte(alphabetA1[z-6])
				case 2:
					if z == 6 {
						escape = 0
						collect = 2
					} else if z == 7 {
						b.WriteRune('\n')
					} else {
						b.WriteByte(alphabetA2[z-8])
					}
				default:
					b.WriteByte(alphabetA0[z-6])
				}
			}
			shift = -1
		}

		if w&0x8000 == 0x8000 {
			break
		}
	}

	return b.String(), length, nil
}

// expand an entry from the abbreviations table. entries are word addresses,
// meaning they are scaled by two whatever the story version
func (cdc *Codec) abbreviation(index int) (string, error) {
	entry, err := cdc.mem.Read16(uint32(cdc.abbreviations) + uint32(index)*2)
	if err != nil {
		return "", err
	}
	s, _, err := cdc.decode(uint32(entry)*2, true)
	return s, err
}

// ZSCII converts a ten bit character code to a rune. A negative return
// value means the code has no printable form at all, not even the
// replacement glyph.
func ZSCII(code uint16) rune {
	return zscii(code)
}

// ToZSCII converts a rune to a character code. Characters with no code
// become the code for the replacement glyph.
func ToZSCII(r rune) uint8 {
	switch {
	case r == '\n' || r == '\r':
		return 13
	case r >= 32 && r <= 126:
		return uint8(r)
	}
	for i, e := range extraCharacters {
		if e == r {
			return uint8(155 + i)
		}
	}
	return replacementGlyph
}

// zscii converts a ten bit character code to a rune.
func zscii(code uint16) rune {
	switch {
	case code == 0:
		// a null outputs nothing. strip it rather than emit a NUL byte
		return -1
	case code == 13:
		return '\n'
	case code >= 32 && code <= 126:
		return rune(code)
	case code >= 155 && code <= 154+uint16(len(extraCharacters)):
		return extraCharacters[code-155]
	}
	return replacementGlyph
}

// the default extra character table. stories can in principle supply their
// own table but none of the supported versions before 5 do and the facility
// is rare even there
var extraCharacters = []rune{
	'ä', 'ö', 'ü', 'Ä', 'Ö', 'Ü', 'ß', '»', '«', 'ë',
	'ï', 'ÿ', 'Ë', 'Ï', 'á', 'é', 'í', 'ó', 'ú', 'ý',
	'Á', 'É', 'Í', 'Ó', 'Ú', 'Ý', 'à', 'è', 'ì', 'ò',
	'ù', 'À', 'È', 'Ì', 'Ò', 'Ù', 'â', 'ê', 'î', 'ô',
	'û', 'Â', 'Ê', 'Î', 'Ô', 'Û', 'å', 'Å', 'ø', 'Ø',
	'ã', 'ñ', 'õ', 'Ã', 'Ñ', 'Õ', 'æ', 'Æ', 'ç', 'Ç',
	'þ', 'ð', 'Þ', 'Ð', '£', 'œ', 'Œ', '¡', '¿',
}
