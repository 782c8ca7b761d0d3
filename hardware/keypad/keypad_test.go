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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestLowest(t *testing.T) {
	var st keypad.State
	_, ok := st.Lowest()
	test.ExpectFailure(t, ok)

	st[0xc] = true
	st[0x5] = true
	k, ok := st.Lowest()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, keypad.Key(5))
	test.ExpectEquality(t, st.String(), "-----5------C---")
}

func TestIsPressed(t *testing.T) {
	var st keypad.State
	st[0xf] = true
	test.ExpectSuccess(t, st.IsPressed(0xf))
	test.ExpectFailure(t, st.IsPressed(0xe))
	test.ExpectFailure(t, st.IsPressed(0x10))
}

func TestParseKeys(t *testing.T) {
	st, err := keypad.ParseKeys("0, 5,A")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, st[0x0])
	test.ExpectSuccess(t, st[0x5])
	test.ExpectSuccess(t, st[0xa])
	test.ExpectFailure(t, st[0x1])

	st, err = keypad.ParseKeys("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st, keypad.State{})

	_, err = keypad.ParseKeys("G")
	test.ExpectSuccess(t, curated.Is(err, keypad.InvalidKey))
	_, err = keypad.ParseKeys("10")
	test.ExpectFailure(t, err)
}
