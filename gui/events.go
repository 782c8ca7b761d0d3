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
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// EventQueueLength is the number of user input events that can be waiting for
// the emulation before further events are dropped.
const EventQueueLength = 64

// NewEventChannel returns a channel suitable for giving to a GUI on creation.
func NewEventChannel() chan userinput.Event {
	return make(chan userinput.Event, EventQueueLength)
}

// SendEvent forwards the event to the channel without blocking. If the channel
// is nil or full the event is dropped and false is returned.
//
// GUI implementations should use this function rather than sending on the
// channel directly. The main thread must never wait for the emulation.
func SendEvent(ch chan userinput.Event, ev userinput.Event) bool {
	if ch == nil {
		return false
	}
	select {
	case ch <- ev:
		return true
	default:
		logger.Logf(logger.Allow, "gui", "dropped event: %T", ev)
		return false
	}
}
