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

// Package disassembly turns story files back into readable opcode
// listings. Story files carry no routine directory so the disassembler
// works by linear sweep: decoding one instruction after another from a
// starting address until something refuses to decode. That recovers the
// main instruction stream and is honest about where it loses its footing.
package disassembly

import (
	"fmt"
	"io"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/machine/cpu"
	"github.com/skeptomai/gruesome-sub000/machine/cpu/execution"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/memory"
	"github.com/skeptomai/gruesome-sub000/machine/text"
	"github.com/skeptomai/gruesome-sub000/storyloader"
)

// sentinal errors returned by the disassembly package
const (
	DisasmError = "disassembly: %v"
)

// Disassembly represents the decoded instructions of a story file.
type Disassembly struct {
	Entries []*execution.Result

	// where and why decoding stopped, when the sweep did not reach the
	// end of the requested range cleanly
	StoppedAt     uint32
	StoppedReason string
}

// FromLoader loads a story file and disassembles from its initial program
// counter to the end of the file. Useful for one-shot disassemblies, like
// the DISASM mode.
func FromLoader(ld *storyloader.Loader) (*Disassembly, error) {
	if !ld.HasLoaded() {
		err := ld.Load()
		if err != nil {
			return nil, curated.Errorf(DisasmError, err)
		}
	}

	hdr, err := header.Parse(ld.Data)
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	mem, err := memory.NewMemory(ld.Data, hdr)
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	cdc := text.NewCodec(mem, hdr)

	return FromMemory(mem, cdc, hdr.Version, uint32(hdr.InitialPC), uint32(mem.Size()))
}

// FromMemory disassembles by linear sweep between the two addresses. An
// instruction that fails to decode ends the sweep. The failure is recorded
// in the Disassembly rather than returned; a bad byte sequence is a
// finding, not a fault.
func FromMemory(mem *memory.Memory, cdc *text.Codec, version byte, from uint32, to uint32) (*Disassembly, error) {
	dsm := &Disassembly{
		Entries: make([]*execution.Result, 0),
	}

	address := from
	for address < to {
		res, err := cpu.Decode(mem, cdc, version, address)
		if err != nil {
			dsm.StoppedAt = address
			dsm.StoppedReason = err.Error()
			break
		}

		dsm.Entries = append(dsm.Entries, res)
		address += res.ByteCount
	}

	return dsm, nil
}

// Write the disassembly in the order it was decoded.
func (dsm *Disassembly) Write(w io.Writer) error {
	for _, e := range dsm.Entries {
		_, err := fmt.Fprintf(w, "%s\n", e.String())
		if err != nil {
			return curated.Errorf(DisasmError, err)
		}
	}

	if dsm.StoppedReason != "" {
		_, err := fmt.Fprintf(w, "%06x: sweep ended (%s)\n", dsm.StoppedAt, dsm.StoppedReason)
		if err != nil {
			return curated.Errorf(DisasmError, err)
		}
	}

	return nil
}
