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
	"sync"

	"github.com/jetsetilly/gopher8/beeper"
)

// queue holds samples between the emulation and the audio device. oto reads
// from the queue in its own goroutine.
type queue struct {
	crit sync.Mutex
	data []uint8

	// the maximum number of samples held by the queue. older samples are
	// dropped to keep the audio in step with the emulation
	limit int

	underrun int
	overrun  int
}

func newQueue(limit int) *queue {
	return &queue{
		data:  make([]uint8, 0, limit),
		limit: limit,
	}
}

func (q *queue) push(samples []uint8) {
	q.crit.Lock()
	defer q.crit.Unlock()

	q.data = append(q.data, samples...)
	if len(q.data) > q.limit {
		n := copy(q.data, q.data[len(q.data)-q.limit:])
		q.data = q.data[:n]
		q.overrun++
	}
}

// Read implements the io.Reader interface. The buffer is always filled. Missing
// samples are filled with silence.
func (q *queue) Read(p []uint8) (int, error) {
	q.crit.Lock()
	defer q.crit.Unlock()

	n := copy(p, q.data)
	q.data = q.data[:copy(q.data, q.data[n:])]

	if n < len(p) {
		if n > 0 {
			q.underrun++
		}
		for i := n; i < len(p); i++ {
			p[i] = beeper.Silence
		}
	}

	return len(p), nil
}

func (q *queue) len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.data)
}
