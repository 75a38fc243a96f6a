// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes to command line handling, with each mode
// having its own set of flags.
//
// Arguments are given to NewArgs() and then parsed with Parse(). Flags are
// added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubMode("RUN", "open a window")
//	md.AddSubMode("TERM", "draw in the terminal")
//	verbose := md.AddBool("verbose", false, "echo log to stderr")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode added is the default. Sub-mode comparisons are case
// insensitive and the result of Mode() is always upper case.
//
// After a mode has been selected NewMode() starts a new set of flags for the
// remaining arguments. The series of modes selected is returned by Path().
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		fullScreen := md.AddBool("fullscreen", false, "start full screen")
//		...
//	}
//
// Help is printed to the Output writer when the -help flag is found. The help
// text includes the flags and sub-modes of the current mode and any text
// given to AdditionalHelp().
package modalflag
