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

package hardware

import (
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// FrameSink receives a copy of the framebuffer whenever it has changed.
type FrameSink interface {
	SetFrame(display.Frame) error
}

// KeypadSource provides the state of the keypad at the start of every cycle.
type KeypadSource interface {
	Keypad() keypad.State
}

// AudioSink is told the state of the sound timer at the end of every cycle.
type AudioSink interface {
	Beep(active bool) error
}
