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

package digest

import (
	"crypto/sha1"
	"fmt"
	"hash"
)

// fixed screen dimensions. a digest must not depend on the terminal the
// test happens to run in
const (
	screenWidth  = 80
	screenHeight = 24
)

// Display implements the peripherals.Display interface, reducing all story
// output to a SHA-1 sum.
type Display struct {
	digest hash.Hash
}

// NewDisplay is the preferred method of initialisation for the Display
// type.
func NewDisplay() *Display {
	return &Display{
		digest: sha1.New(),
	}
}

// Hash returns the current digest value as a hex string.
func (dig *Display) Hash() string {
	return fmt.Sprintf("%x", dig.digest.Sum(nil))
}

// ResetDigest resets the current digest value.
func (dig *Display) ResetDigest() {
	dig.digest.Reset()
}

// fold a screen model directive into the digest. directives are hashed as
// well as text because a story that moves the cursor differently has
// changed, even if it prints the same words
func (dig *Display) directive(format string, args ...interface{}) {
	fmt.Fprintf(dig.digest, format, args...)
}

// Print implements the peripherals.Display interface.
func (dig *Display) Print(s string) {
	dig.digest.Write([]byte(s))
}

// SplitWindow implements the peripherals.Display interface.
func (dig *Display) SplitWindow(lines int) {
	dig.directive("[split %d]", lines)
}

// SelectWindow implements the peripherals.Display interface.
func (dig *Display) SelectWindow(window int) {
	dig.directive("[window %d]", window)
}

// EraseWindow implements the peripherals.Display interface.
func (dig *Display) EraseWindow(window int) {
	dig.directive("[erase %d]", window)
}

// EraseLine implements the peripherals.Display interface.
func (dig *Display) EraseLine() {
	dig.directive("[eraseline]")
}

// SetCursor implements the peripherals.Display interface.
func (dig *Display) SetCursor(line int, column int) {
	dig.directive("[cursor %d %d]", line, column)
}

// GetCursor implements the peripherals.Display interface.
func (dig *Display) GetCursor() (int, int) {
	return 1, 1
}

// SetTextStyle implements the peripherals.Display interface.
func (dig *Display) SetTextStyle(style int) {
	dig.directive("[style %d]", style)
}

// SetBufferMode implements the peripherals.Display interface.
func (dig *Display) SetBufferMode(buffered bool) {
	dig.directive("[buffer %v]", buffered)
}

// ShowStatus implements the peripherals.Display interface.
func (dig *Display) ShowStatus(left string, right string) {
	dig.directive("[status %s | %s]", left, right)
}

// ScreenSize implements the peripherals.Display interface.
func (dig *Display) ScreenSize() (int, int) {
	return screenWidth, screenHeight
}
