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
	"bytes"
	"math/bits"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/cpu"
)

// the Stks chunk holds one record per routine activation, oldest first,
// beginning with a dummy record for execution outside any routine. each
// record is:
//
//	3 bytes  return address
//	1 byte   flags. bits 0-3 count locals, bit 4 set means no store variable
//	1 byte   store variable, zero when bit 4 of flags is set
//	1 byte   bitmask of arguments supplied
//	2 bytes  count of evaluation stack words belonging to the record
//	n words  locals then evaluation stack words

const noStoreFlag = 0x10

// encodeFrames serializes the call stack and evaluation stack.
func encodeFrames(frames []cpu.Frame, stack []uint16) []byte {
	b := &bytes.Buffer{}

	// the evaluation stack region belonging to each record runs from its
	// own base to the base of the record above it
	regionEnd := func(i int) int {
		if i+1 < len(frames) {
			return frames[i+1].StackBase
		}
		return len(stack)
	}

	writeWords := func(words []uint16) {
		for _, w := range words {
			b.WriteByte(uint8(w >> 8))
			b.WriteByte(uint8(w))
		}
	}

	// dummy record. anything pushed before the first call belongs to it
	dummyEnd := len(stack)
	if len(frames) > 0 {
		dummyEnd = frames[0].StackBase
	}
	b.Write([]byte{0, 0, 0, 0, 0, 0})
	b.WriteByte(uint8(dummyEnd >> 8))
	b.WriteByte(uint8(dummyEnd))
	writeWords(stack[:dummyEnd])

	for i, f := range frames {
		b.WriteByte(uint8(f.ReturnPC >> 16))
		b.WriteByte(uint8(f.ReturnPC >> 8))
		b.WriteByte(uint8(f.ReturnPC))

		flags := uint8(len(f.Locals))
		if !f.HasStore {
			flags |= noStoreFlag
		}
		b.WriteByte(flags)

		if f.HasStore {
			b.WriteByte(f.StoreVariable)
		} else {
			b.WriteByte(0)
		}

		args := f.ArgCount
		if args > 7 {
			args = 7
		}
		b.WriteByte(uint8(1<<args) - 1)

		words := stack[f.StackBase:regionEnd(i)]
		b.WriteByte(uint8(len(words) >> 8))
		b.WriteByte(uint8(len(words)))

		writeWords(f.Locals)
		writeWords(words)
	}

	return b.Bytes()
}

// decodeFrames reverses encodeFrames.
func decodeFrames(data []byte) ([]cpu.Frame, []uint16, error) {
	var frames []cpu.Frame
	var stack []uint16

	p := 0
	need := func(n int) error {
		if p+n > len(data) {
			return curated.Errorf(Corrupt, "truncated stack chunk")
		}
		return nil
	}

	first := true
	for p < len(data) {
		if err := need(8); err != nil {
			return nil, nil, err
		}

		returnPC := uint32(data[p])<<16 | uint32(data[p+1])<<8 | uint32(data[p+2])
		flags := data[p+3]
		storeVariable := data[p+4]
		argMask := data[p+5]
		words := int(data[p+6])<<8 | int(data[p+7])
		p += 8

		numLocals := int(flags & 0x0f)
		hasStore := flags&noStoreFlag == 0

		if err := need((numLocals + words) * 2); err != nil {
			return nil, nil, err
		}

		locals := make([]uint16, numLocals)
		for i := range locals {
			locals[i] = uint16(data[p])<<8 | uint16(data[p+1])
			p += 2
		}

		base := len(stack)
		for i := 0; i < words; i++ {
			stack = append(stack, uint16(data[p])<<8|uint16(data[p+1]))
			p += 2
		}

		if first {
			// the dummy record contributes stack words but no frame
			first = false
			if numLocals != 0 {
				return nil, nil, curated.Errorf(Corrupt, "dummy stack record has locals")
			}
			continue
		}

		frames = append(frames, cpu.Frame{
			ReturnPC:      returnPC,
			StoreVariable: storeVariable,
			HasStore:      hasStore,
			Locals:        locals,
			StackBase:     base,
			ArgCount:      bits.OnesCount8(argMask),
		})
	}

	if first {
		return nil, nil, curated.Errorf(Corrupt, "empty stack chunk")
	}

	return frames, stack, nil
}
