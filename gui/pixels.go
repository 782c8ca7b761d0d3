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

package gui

import (
	"image/color"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// PixelDepth is the number of bytes used for each pixel by Pixels().
const PixelDepth = 4

// PixelsSize is the length of the slice required by Pixels().
const PixelsSize = display.Width * display.Height * PixelDepth

// Pixels converts the frame into RGBA pixel data. The data is written to dst
// which must be PixelsSize in length.
func Pixels(dst []uint8, frame display.Frame, fg color.RGBA, bg color.RGBA) {
	i := 0
	for y := range display.Height {
		for x := range display.Width {
			c := bg
			if frame[y][x] == 1 {
				c = fg
			}
			dst[i] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = 255
			i += PixelDepth
		}
	}
}
