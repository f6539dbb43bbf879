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

// Package debugger is a line-driven debugger for story files. It wraps a
// machine and drives it one instruction at a time, with breakpoints on the
// program counter, a disassembling LIST command and an object tree dump.
//
// The debugger reads commands from its input reader, which is stdin in
// normal use but can be any reader, a property the tests make use of.
package debugger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/environment"
	"github.com/skeptomai/gruesome-sub000/machine"
	"github.com/skeptomai/gruesome-sub000/machine/cpu"
	"github.com/skeptomai/gruesome-sub000/machine/cpu/execution"
)

// sentinal errors returned by the debugger package
const (
	DebuggerError = "debugger: %v"
)

// sentinel used to stop the run loop when a breakpoint is reached
const breakpointHit = "debugger: breakpoint"

// Debugger wraps a machine in a command loop.
type Debugger struct {
	env *environment.Environment
	m   *machine.Machine

	input  *bufio.Scanner
	output io.Writer

	// breakpoints on the program counter
	breakpoints map[uint32]bool

	// set by the QUIT command
	ended bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(env *environment.Environment, m *machine.Machine) *Debugger {
	return &Debugger{
		env:         env,
		m:           m,
		input:       bufio.NewScanner(os.Stdin),
		output:      os.Stdout,
		breakpoints: make(map[uint32]bool),
	}
}

// Start the command loop. Returns when the player quits the debugger or
// the story quits the machine.
func (dbg *Debugger) Start() error {
	fmt.Fprintf(dbg.output, "%s\n", dbg.m.Loader.ShortName())
	fmt.Fprintf(dbg.output, "version %d, release %d\n", dbg.m.Header.Version, dbg.m.Header.Release)

	for !dbg.ended && !dbg.m.CPU.HasQuit() {
		fmt.Fprintf(dbg.output, "[ %06x ] ", dbg.m.CPU.PC)

		if !dbg.input.Scan() {
			return nil
		}

		err := dbg.dispatch(dbg.input.Text())
		if err != nil {
			// command errors are reported and the loop continues. anything
			// else has broken the machine
			if !curated.IsAny(err) {
				return err
			}
			fmt.Fprintf(dbg.output, "error: %v\n", err)
		}
	}

	return nil
}

func (dbg *Debugger) dispatch(line string) error {
	fields := strings.Fields(strings.ToUpper(line))
	if len(fields) == 0 {
		// an empty line repeats the most useful command
		return dbg.step(1)
	}

	args := fields[1:]

	switch fields[0] {
	case "STEP", "S":
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil {
				return curated.Errorf(DebuggerError, "STEP wants a count")
			}
		}
		return dbg.step(n)

	case "RUN", "R":
		return dbg.run()

	case "BREAK", "B":
		return dbg.breakCommand(args)

	case "DROP":
		return dbg.dropCommand(args)

	case "LIST", "L":
		n := 10
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil {
				return curated.Errorf(DebuggerError, "LIST wants a count")
			}
		}
		return dbg.list(n)

	case "STATE":
		return dbg.state()

	case "TREE":
		root := uint16(1)
		if len(args) > 0 {
			v, err := strconv.ParseUint(args[0], 10, 16)
			if err != nil {
				return curated.Errorf(DebuggerError, "TREE wants an object number")
			}
			root = uint16(v)
		}
		return dbg.tree(root)

	case "QUIT", "Q":
		dbg.ended = true
		return nil
	}

	return curated.Errorf(DebuggerError, fmt.Sprintf("unknown command (%s)", fields[0]))
}

// step executes n instructions, showing each as it goes.
func (dbg *Debugger) step(n int) error {
	for i := 0; i < n && !dbg.m.CPU.HasQuit(); i++ {
		err := dbg.m.Step()
		if err != nil {
			return err
		}
		fmt.Fprintf(dbg.output, "%s\n", dbg.m.CPU.LastResult.String())
	}
	return nil
}

// run executes until the story quits or a breakpoint is reached.
func (dbg *Debugger) run() error {
	err := dbg.m.Run(func() error {
		if dbg.breakpoints[dbg.m.CPU.PC] {
			return curated.Errorf(breakpointHit)
		}
		return nil
	})

	if err != nil {
		if !curated.Is(err, breakpointHit) {
			return err
		}
		fmt.Fprintf(dbg.output, "breakpoint at %06x\n", dbg.m.CPU.PC)
	}

	return nil
}

func (dbg *Debugger) breakCommand(args []string) error {
	if len(args) == 0 {
		if len(dbg.breakpoints) == 0 {
			fmt.Fprintln(dbg.output, "no breakpoints")
		}
		for pc := range dbg.breakpoints {
			fmt.Fprintf(dbg.output, "break at %06x\n", pc)
		}
		return nil
	}

	pc, err := strconv.ParseUint(args[0], 16, 32)
	if err != nil {
		return curated.Errorf(DebuggerError, "BREAK wants a hex address")
	}

	dbg.breakpoints[uint32(pc)] = true
	return nil
}

func (dbg *Debugger) dropCommand(args []string) error {
	if len(args) == 0 {
		dbg.breakpoints = make(map[uint32]bool)
		return nil
	}

	pc, err := strconv.ParseUint(args[0], 16, 32)
	if err != nil {
		return curated.Errorf(DebuggerError, "DROP wants a hex address")
	}

	delete(dbg.breakpoints, uint32(pc))
	return nil
}

// list disassembles the next n instructions without executing them.
func (dbg *Debugger) list(n int) error {
	address := dbg.m.CPU.PC

	for i := 0; i < n; i++ {
		res, err := dbg.decodeAt(address)
		if err != nil {
			fmt.Fprintf(dbg.output, "%06x: undecodable (%v)\n", address, err)
			return nil
		}
		fmt.Fprintf(dbg.output, "%s\n", res.String())
		address += res.ByteCount
	}

	return nil
}

// decodeAt decodes a single instruction without touching the cpu.
func (dbg *Debugger) decodeAt(address uint32) (*execution.Result, error) {
	return cpu.Decode(dbg.m.Mem, dbg.m.Codec, dbg.m.Header.Version, address)
}

// state summarises the machine.
func (dbg *Debugger) state() error {
	c := dbg.m.CPU

	fmt.Fprintf(dbg.output, "pc: %06x\n", c.PC)
	fmt.Fprintf(dbg.output, "stack: %d words\n", len(c.Stack()))
	fmt.Fprintf(dbg.output, "call depth: %d\n", len(c.Frames()))

	for i, f := range c.Frames() {
		fmt.Fprintf(dbg.output, "  frame %d: return %06x, %d locals %v\n",
			i, f.ReturnPC, len(f.Locals), f.Locals)
	}

	return nil
}
