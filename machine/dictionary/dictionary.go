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

// Package dictionary splits player input into words and finds those words
// in the story's dictionary. The main dictionary is sorted and is searched
// with a binary chop over the encoded form of the word. Stories can also
// supply their own dictionaries, which may be unsorted, for use with the
// tokenise operation.
package dictionary

import (
	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/memory"
	"github.com/skeptomai/gruesome-sub000/machine/text"
)

// sentinal errors returned by the dictionary package
const (
	BadDictionary = "dictionary: %v"
)

// Token is a single word of player input.
type Token struct {
	// the word as typed, lowercased
	Text string

	// byte offset of the word in the input line
	Offset int
}

// Dictionary searches the story's dictionary.
type Dictionary struct {
	mem *memory.Memory
	cdc *text.Codec

	separators  []byte
	entryLength int
	entryCount  int
	entriesAddr uint32
}

// NewDictionary is the preferred method of initialisation for the
// Dictionary type. The dictionary named in the story header is parsed
// immediately.
func NewDictionary(mem *memory.Memory, hdr header.Header, cdc *text.Codec) (*Dictionary, error) {
	dct := &Dictionary{
		mem: mem,
		cdc: cdc,
	}

	var err error
	dct.separators, dct.entryLength, dct.entryCount, dct.entriesAddr, err = dct.parseHeader(uint32(hdr.Dictionary))
	if err != nil {
		return nil, err
	}

	return dct, nil
}

// parse the dictionary header at the supplied address. the layout is the
// same for the main dictionary and for story supplied dictionaries
func (dct *Dictionary) parseHeader(address uint32) ([]byte, int, int, uint32, error) {
	numSep, err := dct.mem.Read8(address)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	separators := make([]byte, numSep)
	for i := range separators {
		separators[i], err = dct.mem.Read8(address + 1 + uint32(i))
		if err != nil {
			return nil, 0, 0, 0, err
		}
	}

	entryLength, err := dct.mem.Read8(address + 1 + uint32(numSep))
	if err != nil {
		return nil, 0, 0, 0, err
	}

	count, err := dct.mem.Read16(address + 2 + uint32(numSep))
	if err != nil {
		return nil, 0, 0, 0, err
	}

	// a negative count marks an unsorted dictionary
	entryCount := int(int16(count))

	if int(entryLength) < dct.cdc.Resolution()*2 {
		return nil, 0, 0, 0, curated.Errorf(BadDictionary, "entries too short for an encoded word")
	}

	return separators, int(entryLength), entryCount, address + 4 + uint32(numSep), nil
}

// Separators returns the story's word separator characters.
func (dct *Dictionary) Separators() []byte {
	return dct.separators
}

// Lookup finds a word in the main dictionary. A word that is not in the
// dictionary returns zero.
func (dct *Dictionary) Lookup(word string) (uint16, error) {
	return dct.search(word, dct.entryLength, dct.entryCount, dct.entriesAddr)
}

// LookupIn finds a word in a story supplied dictionary at the given
// address.
func (dct *Dictionary) LookupIn(address uint32, word string) (uint16, error) {
	_, entryLength, entryCount, entriesAddr, err := dct.parseHeader(address)
	if err != nil {
		return 0, err
	}
	return dct.search(word, entryLength, entryCount, entriesAddr)
}

func (dct *Dictionary) search(word string, entryLength int, entryCount int, entriesAddr uint32) (uint16, error) {
	encoded := dct.cdc.Encode(word)

	// compares the encoded word against the numbered entry. every word of
	// the encoded form takes part in the comparison
	compare := func(entry int) (int, error) {
		address := entriesAddr + uint32(entry*entryLength)
		for _, w := range encoded {
			e, err := dct.mem.Read16(address)
			if err != nil {
				return 0, err
			}
			if w != e {
				if w < e {
					return -1, nil
				}
				return 1, nil
			}
			address += 2
		}
		return 0, nil
	}

	if entryCount < 0 {
		// unsorted dictionary. linear search
		for i := 0; i < -entryCount; i++ {
			c, err := compare(i)
			if err != nil {
				return 0, err
			}
			if c == 0 {
				return uint16(entriesAddr + uint32(i*entryLength)), nil
			}
		}
		return 0, nil
	}

	lo := 0
	hi := entryCount - 1
	for lo <= hi {
		mid := (lo + hi) / 2
		c, err := compare(mid)
		if err != nil {
			return 0, err
		}
		switch {
		case c == 0:
			return uint16(entriesAddr + uint32(mid*entryLength)), nil
		case c < 0:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}

	return 0, nil
}
