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
	"io"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/cpu"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/memory"
)

// sentinal errors returned by the savestate package
const (
	Corrupt  = "savestate: %v"
	Mismatch = "savestate: saved state is from a different story"
)

// identifies this interpreter in the interpreter data chunk of every state
// it writes. the chunk is informational and ignored on read
const interpreterID = "GRUE"

// State is a fully decoded saved state. Nothing is committed to the machine
// until the caller decides to; a State that fails to decode leaves the
// machine untouched.
type State struct {
	ResumePC uint32
	Frames   []cpu.Frame
	Stack    []uint16
	Dynamic  []byte
}

// Write serializes the machine's current state. The pc argument is the
// resume address the state records, which by convention points back into the
// instruction that requested the save.
func Write(w io.Writer, hdr header.Header, mem *memory.Memory,
	frames []cpu.Frame, stack []uint16, pc uint32) error {

	ifhd := make([]byte, 13)
	ifhd[0] = uint8(hdr.Release >> 8)
	ifhd[1] = uint8(hdr.Release)
	copy(ifhd[2:8], hdr.Serial[:])
	ifhd[8] = uint8(hdr.Checksum >> 8)
	ifhd[9] = uint8(hdr.Checksum)
	ifhd[10] = uint8(pc >> 16)
	ifhd[11] = uint8(pc >> 8)
	ifhd[12] = uint8(pc)

	dynamic := mem.SnapshotDynamic()
	pristine := mem.Pristine()[:len(dynamic)]

	return writeIFF(w, []chunk{
		{id: "IFhd", data: ifhd},
		{id: "CMem", data: compressDynamic(dynamic, pristine)},
		{id: "Stks", data: encodeFrames(frames, stack)},
		{id: "IntD", data: []byte(interpreterID)},
	})
}

// Read decodes a saved state and validates it against the running story.
// The returned State is complete and safe to commit.
func Read(r io.Reader, hdr header.Header, mem *memory.Memory) (*State, error) {
	chunks, err := readIFF(r)
	if err != nil {
		return nil, err
	}

	st := &State{}
	seenIFhd := false
	seenMem := false
	seenStks := false

	for _, c := range chunks {
		switch c.id {
		case "IFhd":
			if len(c.data) < 13 {
				return nil, curated.Errorf(Corrupt, "short story identification chunk")
			}

			release := uint16(c.data[0])<<8 | uint16(c.data[1])
			checksum := uint16(c.data[8])<<8 | uint16(c.data[9])
			serialMatch := string(c.data[2:8]) == string(hdr.Serial[:])

			if release != hdr.Release || !serialMatch || checksum != hdr.Checksum {
				return nil, curated.Errorf(Mismatch)
			}

			st.ResumePC = uint32(c.data[10])<<16 | uint32(c.data[11])<<8 | uint32(c.data[12])
			seenIFhd = true

		case "CMem":
			pristine := mem.Pristine()[:mem.DynamicSize()]
			st.Dynamic, err = uncompressDynamic(c.data, pristine)
			if err != nil {
				return nil, err
			}
			seenMem = true

		case "UMem":
			// an uncompressed memory image. legal in place of CMem
			if len(c.data) != mem.DynamicSize() {
				return nil, curated.Errorf(Corrupt, "memory image is the wrong size")
			}
			st.Dynamic = make([]byte, len(c.data))
			copy(st.Dynamic, c.data)
			seenMem = true

		case "Stks":
			st.Frames, st.Stack, err = decodeFrames(c.data)
			if err != nil {
				return nil, err
			}
			seenStks = true
		}

		// other chunk types, annotations and the like, are skipped
	}

	if !seenIFhd || !seenMem || !seenStks {
		return nil, curated.Errorf(Corrupt, "missing a required chunk")
	}

	return st, nil
}
