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

// Package terminal implements the peripherals interfaces on top of a
// character terminal.
//
// Two implementations are provided. PlainTerminal does buffered line input
// through stdin and makes no attempt to control the terminal, which makes
// it suitable for piped input and for the debugger. RawTerminal puts the
// controlling terminal into raw mode for the benefit of the read_char
// operation and of timed input, and renders the status line and the upper
// window with cursor addressing.
package terminal
