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

// Package regression facilitates the regression testing of the interpreter
// against real story files.
//
// A story entry names a story file, a command script and an instruction
// budget. Adding the entry runs the story in a normalised environment with
// its output reduced to a digest; re-running the entry repeats the run and
// compares digests. Any change in what the story prints, however small, is
// caught.
//
// Entries are kept in a database file in the resource directory, so tests
// added on one day remain useful on another. The REGRESS sub-mode of the
// main program is the front-end for everything in this package.
package regression
