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

// Package display implements the 64x32 monochrome framebuffer and the sprite
// drawing operation.
//
// Sprites are XORed onto the framebuffer. Coordinates wrap around the edges
// of the framebuffer. A collision occurs when a lit pixel is turned off by the
// sprite.
//
// The framebuffer tracks whether it has been changed since the redraw flag was
// last cleared. The Snapshot() function returns a copy of the framebuffer as a
// value of type Frame. Frame values can be safely handed to another goroutine.
package display
