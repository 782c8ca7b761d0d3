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

// Package terminal is a GUI implementation that draws the framebuffer in a
// text terminal. Each character cell shows two pixels, one above the other,
// using the upper half block character and 24 bit colour.
//
// Terminals do not report key releases. A key is released automatically when
// it has not been seen for HoldDuration. The terminal's own key repeat keeps a
// held key pressed.
//
// Audio is provided by the otoaudio package.
package terminal
