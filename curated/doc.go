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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like Errorf() in the fmt
// package, and returns an error. The pattern string is also the identity of
// the error: the Is() function checks whether an error was created with a
// specific pattern, and the Has() function checks whether the pattern occurs
// anywhere in the error chain.
//
// Sentinel patterns used throughout the interpreter are stored as const
// strings in the package that raises them. For example, writing to protected
// memory produces an error for which
//
//	curated.Has(err, memory.ProtectionFault)
//
// is true. This is how the interpreter distinguishes fatal faults from
// recoverable conditions without a parallel type hierarchy.
//
// The Error() function normalises the message chain, removing duplicate
// adjacent parts. The practical advantage is that wrapping at every level of
// the call stack does not produce messages like "error: error: not
// implemented".
package curated
