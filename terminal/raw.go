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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/environment"
	"github.com/skeptomai/gruesome-sub000/machine/peripherals"
	"github.com/skeptomai/gruesome-sub000/terminal/easyterm"
)

// RawTerminal puts the controlling terminal into cbreak mode so that
// keystrokes arrive as they are typed. That unlocks read_char, timed
// input, the upper window and the reverse video status line.
type RawTerminal struct {
	easyterm.Terminal

	env    *environment.Environment
	reader *runeReader

	window int
	style  int
}

// NewRawTerminal is the preferred method of initialisation for the
// RawTerminal type.
func NewRawTerminal(env *environment.Environment) (*RawTerminal, error) {
	term := &RawTerminal{env: env}

	err := term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	term.CBreakMode()
	term.reader = initRuneReader(os.Stdin)

	return term, nil
}

// CleanUp restores the terminal to canonical mode.
func (term *RawTerminal) CleanUp() {
	term.TermPrint("\x1b[0m\n")
	term.Terminal.CleanUp()
}

// Print implements the peripherals.Display interface.
func (term *RawTerminal) Print(s string) {
	term.TermPrint(s)
}

// SplitWindow implements the peripherals.Display interface. The upper
// window is an area of the screen the story addresses by cursor position;
// no scrolling region bookkeeping is needed beyond leaving it alone.
func (term *RawTerminal) SplitWindow(_ int) {
}

// SelectWindow implements the peripherals.Display interface. Moving to the
// upper window saves the cursor; returning to the lower window restores
// it.
func (term *RawTerminal) SelectWindow(window int) {
	if window == term.window {
		return
	}
	term.window = window

	if window == peripherals.UpperWindow {
		term.TermPrint("\x1b7\x1b[1;1H")
	} else {
		term.TermPrint("\x1b8")
	}
}

// EraseWindow implements the peripherals.Display interface.
func (term *RawTerminal) EraseWindow(window int) {
	// negative window numbers clear the whole screen
	if window < 0 {
		term.TermPrint("\x1b[2J\x1b[H")
	}
}

// EraseLine implements the peripherals.Display interface.
func (term *RawTerminal) EraseLine() {
	term.TermPrint("\x1b[K")
}

// SetCursor implements the peripherals.Display interface.
func (term *RawTerminal) SetCursor(line int, column int) {
	term.TermPrint(fmt.Sprintf("\x1b[%d;%dH", line, column))
}

// GetCursor implements the peripherals.Display interface. The terminal is
// not interrogated; stories only ask so they can restore the position
// later, which the window selection already handles.
func (term *RawTerminal) GetCursor() (int, int) {
	return 1, 1
}

// SetTextStyle implements the peripherals.Display interface.
func (term *RawTerminal) SetTextStyle(style int) {
	term.style = style

	term.TermPrint("\x1b[0m")
	if style&peripherals.StyleReverse == peripherals.StyleReverse {
		term.TermPrint("\x1b[7m")
	}
	if style&peripherals.StyleBold == peripherals.StyleBold {
		term.TermPrint("\x1b[1m")
	}
	if style&peripherals.StyleItalic == peripherals.StyleItalic {
		term.TermPrint("\x1b[3m")
	}
}

// SetBufferMode implements the peripherals.Display interface.
func (term *RawTerminal) SetBufferMode(_ bool) {
}

// ShowStatus implements the peripherals.Display interface. The status line
// sits on the top row in reverse video.
func (term *RawTerminal) ShowStatus(left string, right string) {
	width, _ := term.ScreenSize()

	gap := width - len(left) - len(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := fmt.Sprintf(" %s%s%s ", left, strings.Repeat(" ", gap), right)

	term.TermPrint("\x1b7\x1b[1;1H\x1b[7m")
	term.TermPrint(line)
	term.TermPrint("\x1b[0m\x1b8")
}

// ScreenSize implements the peripherals.Display interface.
func (term *RawTerminal) ScreenSize() (int, int) {
	geo := term.CurrentGeometry()
	if geo.Cols == 0 || geo.Rows == 0 {
		return defaultWidth, defaultHeight
	}
	return int(geo.Cols), int(geo.Rows)
}

// ReadLine implements the peripherals.Input interface. Line editing is
// done by hand: the terminal is in cbreak mode so backspace and enter
// arrive like any other keystroke. The timeout covers the whole line, with
// whatever was typed before expiry discarded.
func (term *RawTerminal) ReadLine(timeout time.Duration) (string, error) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	var b strings.Builder
	for {
		remaining := time.Duration(0)
		if !deadline.IsZero() {
			remaining = time.Until(deadline)
			if remaining <= 0 {
				return "", curated.Errorf(peripherals.Timeout)
			}
		}

		r, err := term.reader.readRune(remaining)
		if err != nil {
			return "", err
		}

		switch r {
		case '\r', '\n':
			term.TermPrint("\n")
			return b.String(), nil

		case '\b', 0x7f:
			s := b.String()
			if len(s) > 0 {
				b.Reset()
				b.WriteString(s[:len(s)-1])
				term.TermPrint("\b \b")
			}

		default:
			if r >= 32 {
				b.WriteRune(r)
				term.TermPrint(string(r))
			}
		}
	}
}

// ReadChar implements the peripherals.Input interface.
func (term *RawTerminal) ReadChar(timeout time.Duration) (rune, error) {
	r, err := term.reader.readRune(timeout)
	if err != nil {
		return 0, err
	}
	if r == '\r' {
		r = '\n'
	}
	return r, nil
}

// OpenSave implements the peripherals.Saves interface.
func (term *RawTerminal) OpenSave() (io.WriteCloser, error) {
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
func (term *RawTerminal) OpenRestore() (io.ReadCloser, error) {
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

func (term *RawTerminal) promptFilename(prompt string) (string, error) {
	term.TermPrint(prompt)

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
