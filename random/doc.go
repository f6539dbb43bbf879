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

// Package random provides the random number source for a running story. The
// generator has two modes. In the default random mode numbers are drawn from
// a time-seeded source. In predictable mode the generator is seeded with a
// known value and, for small seeds, cycles through the values 1 to S. Stories
// switch between the modes at runtime and test harnesses can force the
// predictable mode from the outset.
package random
