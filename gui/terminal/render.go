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

package terminal

import (
	"image/color"
	"strings"

	"github.com/jetsetilly/gopher8/gui/terminal/easyterm"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// the character used to draw two pixels in one cell. the pen colour is used
// for the upper pixel and the paper colour for the lower pixel
const halfBlock = '▀'

// Rows is the number of terminal rows required to show the framebuffer.
const Rows = display.Height / 2

// render the frame to the string builder. changes of colour are only written
// when the colour differs from the previous cell.
func render(s *strings.Builder, frame display.Frame, fg color.RGBA, bg color.RGBA) {
	colour := func(v uint8) color.RGBA {
		if v == 1 {
			return fg
		}
		return bg
	}

	s.WriteString(easyterm.CursorHome)

	for y := 0; y < display.Height; y += 2 {
		var pen, paper color.RGBA
		for x := range display.Width {
			top := colour(frame[y][x])
			bottom := colour(frame[y+1][x])
			if x == 0 || top != pen {
				pen = top
				s.WriteString(easyterm.Pen(pen))
			}
			if x == 0 || bottom != paper {
				paper = bottom
				s.WriteString(easyterm.Paper(paper))
			}
			s.WriteRune(halfBlock)
		}
		s.WriteString(easyterm.NormalPen)
		s.WriteString("\r\n")
	}
}
