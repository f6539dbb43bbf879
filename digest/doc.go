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

// Package digest is used to capture a hash of story output. The Display
// type implements the peripherals.Display interface and folds everything a
// story prints, including screen model directives, into a SHA-1 sum.
//
// Two runs of the same story with the same input and a normalised
// environment produce the same digest. The regression package relies on
// this.
package digest
