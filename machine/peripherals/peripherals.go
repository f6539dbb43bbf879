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

// Package peripherals defines the interfaces between the interpreter core
// and the outside world. The core emits text and screen directives through
// the Display interface and collects player input through the Input
// interface. Implementations live in the terminal package.
package peripherals

import (
	"io"
	"time"
)

// sentinal errors returned by Input implementations
const (
	Timeout    = "input: timed out"
	EndOfInput = "input: end of input"
)

// Window numbers for the Display interface. The lower window is the main
// scrolling text window.
const (
	LowerWindow = 0
	UpperWindow = 1
)

// Text style bits accepted by SetTextStyle. A style argument of zero
// returns to roman.
const (
	StyleReverse = 0x01
	StyleBold    = 0x02
	StyleItalic  = 0x04
	StyleFixed   = 0x08
)

// Display is where all story output lands. Implementations are pure sinks.
// A directive that an implementation cannot honour is simply dropped.
type Display interface {
	Print(s string)

	// screen model directives
	SplitWindow(lines int)
	SelectWindow(window int)
	EraseWindow(window int)
	EraseLine()
	SetCursor(line int, column int)
	GetCursor() (line int, column int)
	SetTextStyle(style int)
	SetBufferMode(buffered bool)

	// the version 3 status line. left is the current location. right is
	// the score/turns or time rendering
	ShowStatus(left string, right string)

	ScreenSize() (width int, height int)
}

// Input collects player input. A zero timeout means wait indefinitely.
// When the timeout expires implementations return an error matching the
// Timeout sentinel, along with any input collected so far.
type Input interface {
	ReadLine(timeout time.Duration) (string, error)
	ReadChar(timeout time.Duration) (rune, error)
}

// Audio plays sound effects. Effect numbers 1 and 2 are the high and low
// bleeps and are always available. Higher numbers name sampled sounds
// supplied alongside the story file.
type Audio interface {
	Play(number int, volume int, repeats int) error
	Stop(number int) error
}

// Saves opens the byte streams that saved states are written to and read
// from. Implementations typically prompt for a filename.
type Saves interface {
	OpenSave() (io.WriteCloser, error)
	OpenRestore() (io.ReadCloser, error)
}
