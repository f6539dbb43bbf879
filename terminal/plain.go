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

package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/environment"
	"github.com/skeptomai/gruesome-sub000/machine/peripherals"
)

// sentinal errors returned by the terminal package
const (
	TerminalError = "terminal: %v"
)

// assumed dimensions when the terminal cannot be asked
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// PlainTerminal is the simplest terminal: line-buffered input from stdin
// and output to stdout. Screen model directives that need cursor control
// are dropped, which loses the upper window but keeps every story playable
// from a pipe.
type PlainTerminal struct {
	env *environment.Environment

	input  *bufio.Reader
	output io.Writer

	// output while the upper window is selected is discarded. without
	// cursor control there is nowhere to put it
	window int
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type.
func NewPlainTerminal(env *environment.Environment) *PlainTerminal {
	return &PlainTerminal{
		env:    env,
		input:  bufio.NewReader(os.Stdin),
		output: os.Stdout,
	}
}

// Print implements the peripherals.Display interface.
func (term *PlainTerminal) Print(s string) {
	if term.window != peripherals.LowerWindow {
		return
	}
	fmt.Fprint(term.output, s)
}

// SplitWindow implements the peripherals.Display interface.
func (term *PlainTerminal) SplitWindow(_ int) {
}

// SelectWindow implements the peripherals.Display interface.
func (term *PlainTerminal) SelectWindow(window int) {
	term.window = window
}

// EraseWindow implements the peripherals.Display interface.
func (term *PlainTerminal) EraseWindow(_ int) {
}

// EraseLine implements the peripherals.Display interface.
func (term *PlainTerminal) EraseLine() {
}

// SetCursor implements the peripherals.Display interface.
func (term *PlainTerminal) SetCursor(_ int, _ int) {
}

// GetCursor implements the peripherals.Display interface.
func (term *PlainTerminal) GetCursor() (int, int) {
	return 1, 1
}

// SetTextStyle implements the peripherals.Display interface.
func (term *PlainTerminal) SetTextStyle(_ int) {
}

// SetBufferMode implements the peripherals.Display interface.
func (term *PlainTerminal) SetBufferMode(_ bool) {
}

// ShowStatus implements the peripherals.Display interface. The status line
// is printed inline, bracketed so it stands apart from story text.
func (term *PlainTerminal) ShowStatus(left string, right string) {
	width := defaultWidth
	gap := width - len(left) - len(right) - 4
	if gap < 1 {
		gap = 1
	}
	fmt.Fprintf(term.output, "[ %s%s%s ]\n", left, strings.Repeat(" ", gap), right)
}

// ScreenSize implements the peripherals.Display interface.
func (term *PlainTerminal) ScreenSize() (int, int) {
	return defaultWidth, defaultHeight
}

// ReadLine implements the peripherals.Input interface. The timeout is
// ignored; buffered terminals cannot interrupt the operating system's line
// editing.
func (term *PlainTerminal) ReadLine(_ time.Duration) (string, error) {
	s, err := term.input.ReadString('\n')
	if err != nil {
		if err == io.EOF && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		if err == io.EOF {
			return "", curated.Errorf(peripherals.EndOfInput)
		}
		return "", curated.Errorf(TerminalError, err)
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// ReadChar implements the peripherals.Input interface. A line-buffered
// terminal cannot deliver single keystrokes so the first character of a
// line stands in for one.
func (term *PlainTerminal) ReadChar(_ time.Duration) (rune, error) {
	s, err := term.ReadLine(0)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return '\n', nil
	}
	return rune(s[0]), nil
}

// OpenSave implements the peripherals.Saves interface.
func (term *PlainTerminal) OpenSave() (io.WriteCloser, error) {
	pth, err := term.promptFilename("Save to file: ")
	if err != nil {
		return nil, err
	}

	f, err := os.Create(pth)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	return f, nil
}

// OpenRestore implements the peripherals.Saves interface.
func (term *PlainTerminal) OpenRestore() (io.ReadCloser, error) {
	pth, err := term.promptFilename("Restore from file: ")
	if err != nil {
		return nil, err
	}

	f, err := os.Open(pth)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	return f, nil
}

// prompt for a save filename, resolved against the save directory from the
// preferences
func (term *PlainTerminal) promptFilename(prompt string) (string, error) {
	fmt.Fprint(term.output, prompt)

	s, err := term.ReadLine(0)
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", curated.Errorf(TerminalError, "no filename given")
	}

	return filepath.Join(term.env.Prefs.SaveDir, s), nil
}
