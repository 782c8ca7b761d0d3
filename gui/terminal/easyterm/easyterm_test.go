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

package easyterm_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/gopher8/gui/terminal/easyterm"
	"github.com/jetsetilly/gopher8/test"
)

func TestKeyName(t *testing.T) {
	check := func(data string, name string, n int) {
		t.Helper()
		k, l := easyterm.KeyName([]byte(data))
		test.ExpectEquality(t, k, name, data)
		test.ExpectEquality(t, l, n, data)
	}

	check("", "", 0)
	check("q", "Q", 1)
	check("Qw", "Q", 1)
	check("4", "4", 1)
	check(" ", "Space", 1)
	check("\x03", "Interrupt", 1)
	check("\x1b", "Escape", 1)
	check("\x1bOP", "F1", 3)
	check("\x1bOQ", "F2", 3)
	check("\x1b[24~", "F12", 5)
	check("\x1b[11~x", "F1", 5)
	check("\x1b[A", "", 3)
	check("\x1bq", "Escape", 1)
	check("\x7f", "", 1)
}

func TestANSI(t *testing.T) {
	c := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	test.ExpectEquality(t, easyterm.Pen(c), "\033[38;2;1;2;3m")
	test.ExpectEquality(t, easyterm.Paper(c), "\033[48;2;1;2;3m")
	test.ExpectEquality(t, easyterm.CursorMove(4, 10), "\033[4;10H")
}
