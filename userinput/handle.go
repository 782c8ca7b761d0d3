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

package userinput

// Action is returned by HandleUserInput() for events that are not consumed by
// the keypad.
type Action int

// List of valid actions.
const (
	ActionNone Action = iota
	ActionQuit
	ActionReset
	ActionPause
	ActionScreenshot
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionReset:
		return "reset"
	case ActionPause:
		return "pause"
	case ActionScreenshot:
		return "screenshot"
	}
	return ""
}

func keyboard(ev EventKeyboard, kp *Keypad) Action {
	if ev.Repeat {
		return ActionNone
	}

	if k, ok := KeypadKey(ev.Key); ok {
		if ev.Down {
			kp.Press(k)
		} else {
			kp.Release(k)
		}
		return ActionNone
	}

	if !ev.Down {
		return ActionNone
	}

	switch ev.Key {
	case "Escape":
		return ActionQuit
	case "F1":
		return ActionReset
	case "F2", "Pause":
		return ActionPause
	case "F12":
		return ActionScreenshot
	}

	return ActionNone
}

// HandleUserInput deciphers the Event and forwards keypad input to the
// Keypad. Events that are not for the keypad are returned as an Action.
func HandleUserInput(ev Event, kp *Keypad) Action {
	switch ev := ev.(type) {
	case EventQuit:
		return ActionQuit
	case EventKeyboard:
		return keyboard(ev, kp)
	}
	return ActionNone
}
