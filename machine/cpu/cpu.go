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
	"io"

	"github.com/skeptomai/gruesome-sub000/environment"
	"github.com/skeptomai/gruesome-sub000/machine/cpu/execution"
	"github.com/skeptomai/gruesome-sub000/machine/dictionary"
	"github.com/skeptomai/gruesome-sub000/machine/header"
	"github.com/skeptomai/gruesome-sub000/machine/memory"
	"github.com/skeptomai/gruesome-sub000/machine/objects"
	"github.com/skeptomai/gruesome-sub000/machine/peripherals"
	"github.com/skeptomai/gruesome-sub000/machine/text"
)

// sentinal errors returned by the cpu package
const (
	StackUnderflow  = "cpu: evaluation stack underflow"
	InvalidVariable = "cpu: invalid variable (%d)"
	DecodeFault     = "decoder: %v"
	BadFrame        = "cpu: %v"
	DivisionByZero  = "cpu: division by zero"
	NotAttached     = "cpu: %s is not attached"
)

// deep recursion in a story is always a bug in the story
const callDepthLimit = 1024

// Handlers connect the operations that touch the world outside the
// machine's address space to the enclosing machine. A nil handler means the
// facility is unavailable and the operation reports failure to the story.
type Handlers struct {
	// write a saved state. pc is the resume address the state should record
	Save func(pc uint32) (bool, error)

	// read and commit a saved state. on success the cpu's state has been
	// replaced and the program counter holds the resume address
	Restore func() (bool, error)

	// as Save and Restore but against the in-memory undo stack
	SaveUndo    func(pc uint32) (bool, error)
	RestoreUndo func() (bool, error)

	// return the machine to its freshly loaded state
	Restart func() error
}

// CPU decodes and executes instructions.
type CPU struct {
	env *environment.Environment

	mem     *memory.Memory
	cdc     *text.Codec
	objects *objects.Table
	dict    *dictionary.Dictionary

	hdr     header.Header
	version byte

	// address of the global variables table
	globals uint32

	// the program counter
	PC uint32

	// the evaluation stack is shared by all routines. each frame records
	// where its region of the stack begins
	stack  []uint16
	frames []Frame

	// the most recently decoded instruction
	LastResult execution.Result

	// set by the quit operation. once set the cpu refuses to execute
	quit bool

	display peripherals.Display
	input   peripherals.Input
	audio   peripherals.Audio

	Handlers Handlers

	// output stream state
	streamScreen     bool
	streamTranscript bool
	transcript       io.Writer
	stream3          []stream3Redirect

	// current font as set by set_font
	font uint16

	// result of the most recent interrupt routine call
	interruptResult uint16
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(env *environment.Environment, mem *memory.Memory, hdr header.Header,
	cdc *text.Codec, tab *objects.Table, dict *dictionary.Dictionary) *CPU {

	cpu := &CPU{
		env:     env,
		mem:     mem,
		cdc:     cdc,
		objects: tab,
		dict:    dict,
		hdr:     hdr,
		version: hdr.Version,
		globals: uint32(hdr.Globals),
	}
	cpu.Reset()

	return cpu
}

// Reset returns the cpu to its initial state. Dynamic memory is not
// touched; resetting memory as well is the job of the machine's restart.
func (cpu *CPU) Reset() {
	cpu.PC = uint32(cpu.hdr.InitialPC)
	cpu.stack = cpu.stack[:0]
	cpu.frames = cpu.frames[:0]
	cpu.quit = false
	cpu.streamScreen = true
	cpu.streamTranscript = false
	cpu.stream3 = cpu.stream3[:0]
	cpu.font = 1
}

// AttachDisplay connects the display that story output lands on.
func (cpu *CPU) AttachDisplay(display peripherals.Display) {
	cpu.display = display
}

// AttachInput connects the source of player input.
func (cpu *CPU) AttachInput(input peripherals.Input) {
	cpu.input = input
}

// AttachAudio connects a sound effect player. Attaching audio is optional.
func (cpu *CPU) AttachAudio(audio peripherals.Audio) {
	cpu.audio = audio
}

// SetTranscript connects the writer that receives output stream two.
func (cpu *CPU) SetTranscript(w io.Writer) {
	cpu.transcript = w
}

// HasQuit returns true once the story has executed a quit instruction.
func (cpu *CPU) HasQuit() bool {
	return cpu.quit
}

// Frames returns the call stack. The returned slice is the cpu's own and
// must be copied if it is to be kept.
func (cpu *CPU) Frames() []Frame {
	return cpu.frames
}

// Stack returns the evaluation stack. The returned slice is the cpu's own
// and must be copied if it is to be kept.
func (cpu *CPU) Stack() []uint16 {
	return cpu.stack
}

// CommitState replaces the cpu's execution state. Used when a saved state
// is restored.
func (cpu *CPU) CommitState(pc uint32, frames []Frame, stack []uint16) {
	cpu.PC = pc
	cpu.frames = frames
	cpu.stack = stack
}
