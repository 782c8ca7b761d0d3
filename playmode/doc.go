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

// Package playmode is the main entry point for playing ROMs. The emulation
// runs at the speed set by the hardware.clockspeed preference and is shown by
// a GUI implementation.
//
// Keys that are not mapped to the keypad control the emulation:
//
//	Escape       quit
//	F1           reset
//	F2 / Pause   pause and resume
//	F12          screenshot
package playmode
