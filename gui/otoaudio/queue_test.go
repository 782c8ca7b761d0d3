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

package otoaudio

import (
	"testing"

	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/test"
)

func TestQueue(t *testing.T) {
	q := newQueue(8)

	p := make([]uint8, 4)
	n, err := q.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, [4]uint8(p), [4]uint8{beeper.Silence, beeper.Silence, beeper.Silence, beeper.Silence})

	// an empty queue is not counted as an underrun
	test.ExpectEquality(t, q.underrun, 0)

	q.push([]uint8{1, 2, 3})
	test.ExpectEquality(t, q.len(), 3)

	_, err = q.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, [4]uint8(p), [4]uint8{1, 2, 3, beeper.Silence})
	test.ExpectEquality(t, q.underrun, 1)
	test.ExpectEquality(t, q.len(), 0)

	q.push([]uint8{1, 2, 3, 4, 5, 6})
	_, err = q.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, [4]uint8(p), [4]uint8{1, 2, 3, 4})
	test.ExpectEquality(t, q.len(), 2)
}

func TestQueueOverrun(t *testing.T) {
	q := newQueue(4)
	q.push([]uint8{1, 2, 3})
	q.push([]uint8{4, 5, 6})
	test.ExpectEquality(t, q.len(), 4)
	test.ExpectEquality(t, q.overrun, 1)

	p := make([]uint8, 4)
	_, err := q.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, [4]uint8(p), [4]uint8{3, 4, 5, 6})
}
