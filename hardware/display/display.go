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

package display

import (
	"strings"
)

// Dimensions of the framebuffer.
const (
	Width  = 64
	Height = 32
)

// Frame is a copy of the framebuffer. Each pixel is either 0 (unlit) or 1
// (lit). Indexed by row and then column.
type Frame [Height][Width]uint8

// String renders the frame as text. A lit pixel is a hash and an unlit pixel
// is a full stop. Each row is terminated with a newline.
func (f Frame) String() string {
	var s strings.Builder
	s.Grow((Width + 1) * Height)
	for y := range f {
		for x := range f[y] {
			if f[y][x] == 0 {
				s.WriteRune('.')
			} else {
				s.WriteRune('#')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Lit returns the number of lit pixels in the frame.
func (f Frame) Lit() int {
	var n int
	for y := range f {
		for x := range f[y] {
			n += int(f[y][x])
		}
	}
	return n
}

// Framebuffer is the display memory.
type Framebuffer struct {
	pixels Frame
	redraw bool
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Clear all pixels. The redraw flag is set.
func (fb *Framebuffer) Clear() {
	fb.pixels = Frame{}
	fb.redraw = true
}

// Draw sprite at position x, y. Each byte of the sprite is a row of eight
// pixels, most significant bit first. Returns true if any lit pixel was turned
// off. The redraw flag is always set, even if no pixel changes.
func (fb *Framebuffer) Draw(x, y uint8, sprite []uint8) bool {
	var collision bool

	for r, row := range sprite {
		py := (int(y) + r) % Height
		for b := range 8 {
			if row&(0x80>>b) == 0 {
				continue
			}
			px := (int(x) + b) % Width
			if fb.pixels[py][px] == 1 {
				collision = true
			}
			fb.pixels[py][px] ^= 1
		}
	}

	fb.redraw = true

	return collision
}

// Pixel returns true if the pixel at x, y is lit. Coordinates wrap around.
func (fb *Framebuffer) Pixel(x, y int) bool {
	return fb.pixels[y%Height][x%Width] == 1
}

// Snapshot returns a copy of the framebuffer.
func (fb *Framebuffer) Snapshot() Frame {
	return fb.pixels
}

// Redraw returns true if the framebuffer has changed since the last call to
// ClearRedraw().
func (fb *Framebuffer) Redraw() bool {
	return fb.redraw
}

// ClearRedraw clears the redraw flag. Should be called once the frame has been
// consumed.
func (fb *Framebuffer) ClearRedraw() {
	fb.redraw = false
}
