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
	"sync/atomic"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// FrameStore holds the most recent frame. One goroutine can set frames while
// another takes them. Frames that are not taken before the next frame is set
// are dropped.
//
// FrameStore implements the hardware.FrameSink interface.
type FrameStore struct {
	latest atomic.Pointer[display.Frame]

	// the number of frames that were replaced before they were taken
	dropped atomic.Uint64
}

// SetFrame implements the hardware.FrameSink interface.
func (fs *FrameStore) SetFrame(frame display.Frame) error {
	if fs.latest.Swap(&frame) != nil {
		fs.dropped.Add(1)
	}
	return nil
}

// Take returns the most recent frame. Returns false if there has been no new
// frame since the last call to Take().
func (fs *FrameStore) Take() (display.Frame, bool) {
	f := fs.latest.Swap(nil)
	if f == nil {
		return display.Frame{}, false
	}
	return *f, true
}

// Dropped returns the number of frames that were never taken.
func (fs *FrameStore) Dropped() uint64 {
	return fs.dropped.Load()
}
