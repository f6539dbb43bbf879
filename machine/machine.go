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

package machine

import (
	"io"
	"os"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/environment"
	"github.com/skeptomai/gruesome-sub000/logger"
	"github.com/skeptomai/gruesome-sub000/machine/cpu"
	"github.com/skeptomai/gruesome-sub000/machine/dictionary"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/memory"
	"github.com/skeptomai/gruesome-sub000/machine/objects"
	"github.com/skeptomai/gruesome-sub000/machine/peripherals"
	"github.com/skeptomai/gruesome-sub000/machine/savestate"
	"github.com/skeptomai/gruesome-sub000/machine/text"
	"github.com/skeptomai/gruesome-sub000/storyloader"
)

// sentinal errors returned by the machine package
const (
	MachineError    = "machine: %v"
	ChecksumFailure = "machine: story file fails its checksum"
)

// interpreter identification written into the header. the interpreter
// number says which of the original Infocom machines we most resemble
const (
	interpreterNumber  = 6
	interpreterVersion = 'G'
)

// Flags2 bits that the story owns and that survive a restore or restart
const flags2Preserved = 0x0003

// Machine is the assembled interpreter: memory and the tables that live in
// it, and the cpu that walks it. The exported fields are entirely public
// and will be of interest to the debugger.
type Machine struct {
	Env *environment.Environment

	Loader  *storyloader.Loader
	Header  header.Header
	Mem     *memory.Memory
	Codec   *text.Codec
	Objects *objects.Table
	Dict    *dictionary.Dictionary
	CPU     *cpu.CPU

	display peripherals.Display
	audio   peripherals.Audio
	saves   peripherals.Saves

	undo []undoState

	// transcript file opened from the preferences. closed by End()
	transcript io.Closer
}

// NewMachine is the preferred method of initialisation for the Machine
// type. The loader is loaded if it has not been already.
func NewMachine(env *environment.Environment, ld *storyloader.Loader) (*Machine, error) {
	if !ld.HasLoaded() {
		err := ld.Load()
		if err != nil {
			return nil, curated.Errorf(MachineError, err)
		}
	}

	hdr, err := header.Parse(ld.Data)
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	// a story that fails its checksum is damaged or truncated and is not
	// safe to run. stories from before the checksum field was defined leave
	// the field at zero and always verify
	if !hdr.VerifyChecksum(ld.Data) {
		return nil, curated.Errorf(ChecksumFailure)
	}

	mem, err := memory.NewMemory(ld.Data, hdr)
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	cdc := text.NewCodec(mem, hdr)

	dict, err := dictionary.NewDictionary(mem, hdr, cdc)
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	m := &Machine{
		Env:     env,
		Loader:  ld,
		Header:  hdr,
		Mem:     mem,
		Codec:   cdc,
		Objects: objects.NewTable(mem, hdr, cdc),
		Dict:    dict,
	}
	m.CPU = cpu.NewCPU(env, mem, hdr, cdc, m.Objects, dict)

	m.CPU.Handlers = cpu.Handlers{
		Save:        m.save,
		Restore:     m.restore,
		SaveUndo:    m.saveUndo,
		RestoreUndo: m.restoreUndo,
		Restart:     m.Restart,
	}

	if env.Prefs.Transcript != "" {
		f, err := os.OpenFile(env.Prefs.Transcript, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			logger.Logf(env, "machine", "transcript unavailable: %v", err)
		} else {
			m.CPU.SetTranscript(f)
			m.transcript = f
		}
	}

	m.applyCapabilities()

	logger.Logf(env, "machine", "%s: version %d, release %d, serial %s",
		ld.ShortName(), hdr.Version, hdr.Release, string(hdr.Serial[:]))

	return m, nil
}

// AttachDisplay connects the display and announces its dimensions to the
// story.
func (m *Machine) AttachDisplay(display peripherals.Display) {
	m.display = display
	m.CPU.AttachDisplay(display)
	m.applyCapabilities()
}

// AttachInput connects the source of player input.
func (m *Machine) AttachInput(input peripherals.Input) {
	m.CPU.AttachInput(input)
}

// AttachAudio connects a sound effect player.
func (m *Machine) AttachAudio(audio peripherals.Audio) {
	m.audio = audio
	m.CPU.AttachAudio(audio)
	m.applyCapabilities()
}

// AttachSaves connects the opener of save file streams. Without it the
// save and restore operations report failure to the story.
func (m *Machine) AttachSaves(saves peripherals.Saves) {
	m.saves = saves
}

// Step executes a single instruction.
func (m *Machine) Step() error {
	return m.CPU.ExecuteInstruction()
}

// Run drives the machine until the story quits or an error occurs. The
// callback is called after every instruction; a non-nil return from the
// callback ends the run and is returned as is.
func (m *Machine) Run(callback func() error) error {
	for !m.CPU.HasQuit() {
		err := m.CPU.ExecuteInstruction()
		if err != nil {
			return err
		}

		if callback != nil {
			err = callback()
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// Restart returns the machine to its freshly loaded state. Dynamic memory
// reverts to the story file with the story-owned header bits preserved.
func (m *Machine) Restart() error {
	preserved, err := m.Mem.Read16(header.AddrFlags2)
	if err != nil {
		return err
	}

	m.Mem.ResetDynamic()
	m.CPU.Reset()
	m.restoreFlags2(preserved)
	m.applyCapabilities()

	return nil
}

// End releases everything the machine holds open.
func (m *Machine) End() error {
	if m.transcript != nil {
		err := m.transcript.Close()
		m.transcript = nil
		if err != nil {
			return curated.Errorf(MachineError, err)
		}
	}
	return nil
}

// save writes a state through the attached saves peripheral.
func (m *Machine) save(pc uint32) (bool, error) {
	if m.saves == nil {
		return false, nil
	}

	w, err := m.saves.OpenSave()
	if err != nil {
		logger.Logf(m.Env, "machine", "save: %v", err)
		return false, nil
	}

	err = savestate.Write(w, m.Header, m.Mem, m.CPU.Frames(), m.CPU.Stack(), pc)
	cerr := w.Close()
	if err != nil {
		return false, err
	}
	if cerr != nil {
		return false, curated.Errorf(MachineError, cerr)
	}

	return true, nil
}

// restore reads a state through the attached saves peripheral and commits
// it. A state that fails to decode or validate leaves the machine exactly
// as it was and the story carries on.
func (m *Machine) restore() (bool, error) {
	if m.saves == nil {
		return false, nil
	}

	r, err := m.saves.OpenRestore()
	if err != nil {
		logger.Logf(m.Env, "machine", "restore: %v", err)
		return false, nil
	}

	st, err := savestate.Read(r, m.Header, m.Mem)
	_ = r.Close()
	if err != nil {
		logger.Logf(m.Env, "machine", "restore: %v", err)
		return false, nil
	}

	return true, m.commit(st.ResumePC, st.Dynamic, st.Frames, st.Stack)
}

// commit replaces the machine's state wholesale. used by restore and by
// the undo operations
func (m *Machine) commit(pc uint32, dynamic []byte, frames []cpu.Frame, stack []uint16) error {
	preserved, err := m.Mem.Read16(header.AddrFlags2)
	if err != nil {
		return err
	}

	err = m.Mem.CommitDynamic(dynamic)
	if err != nil {
		return err
	}

	m.CPU.CommitState(pc, frames, stack)
	m.restoreFlags2(preserved)
	m.applyCapabilities()

	return nil
}

// restoreFlags2 reinstates the story-owned Flags2 bits after dynamic
// memory has been replaced.
func (m *Machine) restoreFlags2(preserved uint16) {
	flags2, err := m.Mem.Read16(header.AddrFlags2)
	if err != nil {
		return
	}
	flags2 = (flags2 &^ flags2Preserved) | (preserved & flags2Preserved)
	_ = m.Mem.Poke16(header.AddrFlags2, flags2)
}

// applyCapabilities writes the interpreter's identity and abilities into
// the header area. Stories read these bytes to decide what they can ask
// for. Called whenever dynamic memory or the attached peripherals change.
func (m *Machine) applyCapabilities() {
	width, height := 80, 24
	if m.display != nil {
		width, height = m.display.ScreenSize()
	}

	flags1, err := m.Mem.Read8(header.AddrFlags1)
	if err != nil {
		return
	}

	if m.Header.Version <= 3 {
		flags1 &^= header.Flags1StatusUnavailable
		flags1 &^= header.Flags1VariablePitch
		flags1 |= header.Flags1ScreenSplitting
	} else {
		flags1 |= header.Flags1Bold | header.Flags1Italic | header.Flags1Fixed
		flags1 |= header.Flags1Timed
		flags1 &^= header.Flags1Colours | header.Flags1Pictures
		if m.audio != nil {
			flags1 |= header.Flags1Sound
		} else {
			flags1 &^= header.Flags1Sound
		}
	}
	_ = m.Mem.Poke8(header.AddrFlags1, flags1)

	_ = m.Mem.Poke8(header.AddrInterpNumber, interpreterNumber)
	_ = m.Mem.Poke8(header.AddrInterpVersion, interpreterVersion)
	_ = m.Mem.Poke8(header.AddrScreenHeight, uint8(height))
	_ = m.Mem.Poke8(header.AddrScreenWidth, uint8(width))

	if m.Header.Version >= 5 {
		// from version 5 the screen is also measured in units. on a
		// terminal a unit is a character cell
		_ = m.Mem.Poke16(header.AddrWidthUnits, uint16(width))
		_ = m.Mem.Poke16(header.AddrHeightUnits, uint16(height))
		_ = m.Mem.Poke8(header.AddrFontWidth, 1)
		_ = m.Mem.Poke8(header.AddrFontHeight, 1)
	}

	_ = m.Mem.Poke16(header.AddrStandardRev, 0x0100)
}
