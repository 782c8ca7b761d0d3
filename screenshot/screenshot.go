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

// Package screenshot converts frames from the display package into images
// and saves them as PNG files.
package screenshot

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/resources"
	"golang.org/x/image/draw"
)

// Palette is the pair of colours used to convert a frame into an image.
type Palette struct {
	Foreground color.RGBA
	Background color.RGBA
}

// Image creates an image of the frame at its native size. Lit pixels are
// drawn in the foreground colour.
func Image(frame display.Frame, pal Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, display.Width, display.Height))
	for y := range display.Height {
		for x := range display.Width {
			if frame[y][x] == 1 {
				img.SetRGBA(x, y, pal.Foreground)
			} else {
				img.SetRGBA(x, y, pal.Background)
			}
		}
	}
	return img
}

// Scaled creates an image of the frame with every pixel scaled by the scale
// value. A scale of less than one is treated as one.
func Scaled(frame display.Frame, pal Palette, scale int) *image.RGBA {
	src := Image(frame, pal)
	if scale <= 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, display.Width*scale, display.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Save the frame as a PNG file with the given filename.
func Save(filename string, frame display.Frame, pal Palette, scale int) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("screenshot: %v", err)
		}
	}()

	err = png.Encode(f, Scaled(frame, pal, scale))
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	return nil
}

// SaveUnique saves the frame in the resources directory with a filename
// based on the ROM name and the current time. Returns the filename used.
func SaveUnique(romName string, frame display.Frame, pal Palette, scale int) (string, error) {
	fn, err := resources.JoinPath("screenshots", resources.UniqueFilename("screenshot", romName)+".png")
	if err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}
	return fn, Save(fn, frame, pal, scale)
}
