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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides support for program modes and sub-modes, allowing
// different flags for each mode in the mode hierarchy.
//
// The basic shape of a program using modalflag:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("RUN", "DISASM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help has already been printed
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		...
//	case "DISASM":
//		...
//	}
//
// Each mode function can then call NewMode() again, add flags with the Add*
// functions, and Parse() the next layer of the command line. Arguments that
// are not flags and not sub-modes are available through RemainingArgs() and
// GetArg().
//
// The first sub-mode given to AddSubModes() is the default and is selected
// when the command line names no mode at all. Sub-mode matching is case
// insensitive.
package modalflag
