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

// Package savestate reads and writes saved machine states in the portable
// Quetzal format. A state is an IFF container holding the story
// identification, dynamic memory compressed against the pristine story
// file, and the call and evaluation stacks.
//
// Reading a state never touches the machine. The Read() function decodes
// and validates everything up front and returns a State; committing the
// State to the machine is the caller's decision. A state written by one
// interpreter should be readable by any other, so nothing
// implementation-specific is stored.
package savestate
