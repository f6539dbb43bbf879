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

// Package machine assembles the complete interpreter from the packages
// below it: memory, the text codec, the object table, the dictionary and
// the cpu. It owns everything that sits outside the story's address space,
// meaning saved states, the in-memory undo stack, the transcript file and
// the header bytes that announce the interpreter's capabilities.
//
// A machine on its own is deaf and mute. The Attach functions connect the
// peripherals that give it a screen, a keyboard, a speaker and somewhere
// to keep save files.
package machine
