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

// Package cpu decodes and executes story instructions. The package deals
// with the program counter, the call stack, the evaluation stack and the
// three kinds of variable. Output and input go through the interfaces in
// the peripherals package. Saved states, undo and restarts are delegated to
// handler functions wired up by the enclosing machine.
//
// Faults raised by this package are not recoverable. A fault means either
// the story file is corrupt or the story has done something the machine
// cannot honour, and in both cases the interpreter stops.
package cpu
