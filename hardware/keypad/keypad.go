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

// Package keypad defines the state of the sixteen key keypad. The keys are
// labelled 0 to F.
//
// The keypad state is supplied to the machine once per cycle by whatever is
// responsible for user input. The machine only ever reads the state.
package keypad

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// InvalidKey is returned by ParseKeys() for a key label that is not a single
// hexadecimal digit.
const InvalidKey = "keypad: invalid key: %q"

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Key is a key on the keypad. Valid values are 0 to 15.
type Key uint8

func (k Key) String() string {
	return fmt.Sprintf("%X", uint8(k))
}

// State is a snapshot of the keypad. A true value means the key is pressed.
type State [NumKeys]bool

func (st State) String() string {
	var s strings.Builder
	for k, p := range st {
		if p {
			s.WriteString(Key(k).String())
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// IsPressed returns true if the key is pressed. Keys outside of the valid
// range are never pressed.
func (st State) IsPressed(k uint8) bool {
	if int(k) >= NumKeys {
		return false
	}
	return st[k]
}

// Lowest returns the lowest numbered key that is pressed. Returns false if no
// key is pressed.
func (st State) Lowest() (Key, bool) {
	for k, p := range st {
		if p {
			return Key(k), true
		}
	}
	return 0, false
}

// ParseKeys creates a State from a comma separated list of hexadecimal key
// labels. For example, "0,5,A".
func ParseKeys(s string) (State, error) {
	var st State
	for _, k := range strings.Split(s, ",") {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		var v uint8
		_, err := fmt.Sscanf(k, "%x", &v)
		if err != nil || len(k) != 1 {
			return st, curated.Errorf(InvalidKey, k)
		}
		st[v] = true
	}
	return st, nil
}
