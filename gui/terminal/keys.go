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
	"time"

	"github.com/jetsetilly/gopher8/gui/terminal/easyterm"
	"github.com/jetsetilly/gopher8/userinput"
)

// HoldDuration is the time a key is held down after it was last seen in the
// input. It should be longer than the key repeat delay of most terminals.
const HoldDuration = 600 * time.Millisecond

// keys tracks the keys that are currently held down.
type keys struct {
	held map[string]time.Time
}

func newKeys() *keys {
	return &keys{
		held: make(map[string]time.Time),
	}
}

// input converts raw terminal input into events. the time is the time the
// input was received.
func (k *keys) input(data []byte, now time.Time) []userinput.Event {
	var events []userinput.Event

	for len(data) > 0 {
		name, n := easyterm.KeyName(data)
		data = data[n:]

		switch name {
		case "":
			continue
		case "Interrupt":
			events = append(events, userinput.EventQuit{})
			continue
		case "Suspend":
			continue
		}

		_, repeat := k.held[name]
		k.held[name] = now
		events = append(events, userinput.EventKeyboard{
			Key:    name,
			Down:   true,
			Repeat: repeat,
		})
	}

	return events
}

// release returns key up events for the keys that have been held longer than
// HoldDuration.
func (k *keys) release(now time.Time) []userinput.Event {
	var events []userinput.Event
	for name, t := range k.held {
		if now.Sub(t) >= HoldDuration {
			delete(k.held, name)
			events = append(events, userinput.EventKeyboard{
				Key:  name,
				Down: false,
			})
		}
	}
	return events
}
