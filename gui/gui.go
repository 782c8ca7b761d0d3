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
	"io"

	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/userinput"
)

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// GUI implementations receive frames from the emulation goroutine.
	// SetFrame() must be safe to call from any goroutine.
	hardware.FrameSink

	// EventChannel returns the channel on which user input events are sent.
	// The channel is given to the GUI when it is created and never changes.
	EventChannel() chan userinput.Event

	// Service() should not pause or loop longer than necessary (if at all).
	// It MUST ONLY be called as part of a larger loop from the main thread.
	// It should service all gui events that are not safe to do in
	// sub-threads.
	Service()

	// End indicates that no more frames will be sent and the GUI should stop
	// servicing events. It can be called from any goroutine.
	End()

	// Destroy cleans up resources used by the GUI. Main thread only.
	Destroy(io.Writer)
}

// AudioGUI is implemented by GUIs that can play the output of the beeper.
type AudioGUI interface {
	GUI

	// AudioMixer returns the mixer for the GUI's audio output. The mixer will
	// be nil if audio is not available.
	AudioMixer() beeper.Mixer
}
