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

// Package performance contains helper functions relating to performance.
//
// Check() is a quick way of running the interpreter for a fixed duration of
// time with all peripherals disconnected. It reports instruction throughput
// and will optionally generate profiling information.
//
// ProfileCPU() and ProfileMem() can be used on their own to generate
// profiles of other modes. They do not limit the amount of time the program
// runs for, which makes them useful in more real-world situations.
package performance
