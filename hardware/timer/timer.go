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

// Package timer implements the delay and sound timers. Both timers count down
// toward zero by one on every call to Step(), which the machine calls once per
// cycle. A timer at zero stays at zero.
//
// The sound timer being non-zero is the only signal the beeper needs to
// decide whether to make a sound.
package timer

import "fmt"

// Timers contains the delay and sound timers.
type Timers struct {
	Delay uint8
	Sound uint8
}

func (tmr Timers) String() string {
	return fmt.Sprintf("DT=%d ST=%d", tmr.Delay, tmr.Sound)
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

// Step decrements each non-zero timer by one.
func (tmr *Timers) Step() {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
}

// SoundActive returns true if the sound timer is non-zero.
func (tmr Timers) SoundActive() bool {
	return tmr.Sound > 0
}
