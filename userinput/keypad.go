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

import (
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// the physical keys and the keypad keys they map to
var keyMap = map[string]keypad.Key{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// KeypadKey returns the keypad key for the named keyboard key. Returns false
// if the keyboard key is not mapped to the keypad.
func KeypadKey(name string) (keypad.Key, bool) {
	k, ok := keyMap[strings.ToUpper(name)]
	return k, ok
}

// Keypad records the state of the keypad. It is safe to update the keypad
// from one goroutine and read it from another.
//
// Keypad implements the hardware.KeypadSource interface.
type Keypad struct {
	bits atomic.Uint32
}

// Press a key on the keypad.
func (kp *Keypad) Press(k keypad.Key) {
	kp.bits.Or(1 << (k & 0x0f))
}

// Release a key on the keypad.
func (kp *Keypad) Release(k keypad.Key) {
	kp.bits.And(^uint32(1 << (k & 0x0f)))
}

// Clear releases all keys.
func (kp *Keypad) Clear() {
	kp.bits.Store(0)
}

// Keypad returns a snapshot of the keypad.
func (kp *Keypad) Keypad() keypad.State {
	var st keypad.State
	b := kp.bits.Load()
	for i := range st {
		st[i] = b&(1<<i) != 0
	}
	return st
}
