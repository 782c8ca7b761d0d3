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

package userinput_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestKeypadKey(t *testing.T) {
	layout := []struct {
		name string
		key  keypad.Key
	}{
		{"1", 0x1}, {"2", 0x2}, {"3", 0x3}, {"4", 0xc},
		{"Q", 0x4}, {"W", 0x5}, {"E", 0x6}, {"R", 0xd},
		{"A", 0x7}, {"S", 0x8}, {"D", 0x9}, {"F", 0xe},
		{"Z", 0xa}, {"X", 0x0}, {"C", 0xb}, {"V", 0xf},
	}

	seen := make(map[keypad.Key]bool)
	for _, l := range layout {
		k, ok := userinput.KeypadKey(l.name)
		test.ExpectSuccess(t, ok, l.name)
		test.ExpectEquality(t, k, l.key, l.name)
		seen[k] = true
	}
	test.ExpectEquality(t, len(seen), keypad.NumKeys)

	// lower case names are accepted
	k, ok := userinput.KeypadKey("v")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, keypad.Key(0xf))

	_, ok = userinput.KeypadKey("5")
	test.ExpectFailure(t, ok)
}

func TestKeypad(t *testing.T) {
	var kp userinput.Keypad
	test.ExpectEquality(t, kp.Keypad(), keypad.State{})

	kp.Press(0x0)
	kp.Press(0xf)
	st := kp.Keypad()
	test.ExpectSuccess(t, st[0x0])
	test.ExpectSuccess(t, st[0xf])
	test.ExpectFailure(t, st[0x1])

	kp.Release(0x0)
	st = kp.Keypad()
	test.ExpectFailure(t, st[0x0])
	test.ExpectSuccess(t, st[0xf])

	kp.Clear()
	test.ExpectEquality(t, kp.Keypad(), keypad.State{})
}

func TestKeypadConcurrency(t *testing.T) {
	var kp userinput.Keypad

	var wg sync.WaitGroup
	for i := range keypad.NumKeys {
		wg.Go(func() {
			kp.Press(keypad.Key(i))
		})
	}
	wg.Wait()

	for i, pressed := range kp.Keypad() {
		test.ExpectSuccess(t, pressed, i)
	}
}

func TestHandleUserInput(t *testing.T) {
	var kp userinput.Keypad

	a := userinput.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true}, &kp)
	test.ExpectEquality(t, a, userinput.ActionNone)
	test.ExpectSuccess(t, kp.Keypad()[0x5])

	// repeated key events are ignored
	a = userinput.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: false, Repeat: true}, &kp)
	test.ExpectEquality(t, a, userinput.ActionNone)
	test.ExpectSuccess(t, kp.Keypad()[0x5])

	a = userinput.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: false}, &kp)
	test.ExpectEquality(t, a, userinput.ActionNone)
	test.ExpectFailure(t, kp.Keypad()[0x5])

	actions := []struct {
		key    string
		action userinput.Action
	}{
		{"Escape", userinput.ActionQuit},
		{"F1", userinput.ActionReset},
		{"F2", userinput.ActionPause},
		{"Pause", userinput.ActionPause},
		{"F12", userinput.ActionScreenshot},
		{"Space", userinput.ActionNone},
	}
	for _, ac := range actions {
		a = userinput.HandleUserInput(userinput.EventKeyboard{Key: ac.key, Down: true}, &kp)
		test.ExpectEquality(t, a, ac.action, ac.key)

		// actions happen on key down only
		a = userinput.HandleUserInput(userinput.EventKeyboard{Key: ac.key, Down: false}, &kp)
		test.ExpectEquality(t, a, userinput.ActionNone, ac.key)
	}

	a = userinput.HandleUserInput(userinput.EventQuit{}, &kp)
	test.ExpectEquality(t, a, userinput.ActionQuit)
	test.ExpectEquality(t, a.String(), "quit")
}
