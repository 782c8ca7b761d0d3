// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package in the standard library and adds
// the concept of modes to the command line. A mode is a non-flag argument
// that selects how the rest of the command line is interpreted. Each mode can
// have its own set of flags.
//
// Arguments are set with NewArgs() and parsed with Parse(). Sub-modes for
// the next Parse() are added with AddSubModes(). The first sub-mode in the
// list is the default and is selected if the next argument does not match a
// listed sub-mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "RUN")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		cycles := md.AddInt("cycles", 1000, "number of cycles to run")
//		...
//	}
//
// Sub-mode comparison is case insensitive. Modes are always reported in upper
// case.
//
// The help flag (-help or -h) causes Parse() to print a summary of the flags
// and sub-modes for the current mode to the Output writer.
package modalflag
