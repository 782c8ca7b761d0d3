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

package limiter

import (
	"time"

	"github.com/jetsetilly/gopher8/curated"
)

// TicksPerSecond is the number of times per second that the Limiter releases
// a batch of events.
const TicksPerSecond = 60

// InvalidRate is returned when the limiter is created with, or set to, a
// rate less than one.
const InvalidRate = "limiter: invalid rate: %d"

// this is a really rough attempt at rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// Limiter will allow a fixed number of events every second.
type Limiter struct {
	rate int

	// the number of events allowed for every tick. the fractional part is
	// accumulated in acc
	perTick float64
	acc     float64

	// the number of events that can happen before the next tick
	count int

	tick chan bool
	done chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(rate int) (*Limiter, error) {
	lmtr := &Limiter{
		tick: make(chan bool),
		done: make(chan bool),
	}

	if err := lmtr.SetLimit(rate); err != nil {
		return nil, err
	}

	// run ticker concurrently
	go func() {
		secondsPerTick := time.Second / TicksPerSecond
		adjusted := secondsPerTick
		t := time.Now()
		for {
			select {
			case lmtr.tick <- true:
			case <-lmtr.done:
				return
			}
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - secondsPerTick
			adjusted = max(0, min(adjusted, secondsPerTick*2))
			t = nt
		}
	}()

	return lmtr, nil
}

// End stops the limiter. Wait() must not be called after End().
func (lmtr *Limiter) End() {
	close(lmtr.done)
}

// SetLimit changes the number of events allowed every second. Should be
// called from the same goroutine as Wait().
func (lmtr *Limiter) SetLimit(rate int) error {
	if rate < 1 {
		return curated.Errorf(InvalidRate, rate)
	}
	lmtr.rate = rate
	lmtr.perTick = float64(rate) / TicksPerSecond
	return nil
}

// Rate returns the current limit.
func (lmtr *Limiter) Rate() int {
	return lmtr.rate
}

// Wait will block until the event is allowed.
func (lmtr *Limiter) Wait() {
	for lmtr.count <= 0 {
		<-lmtr.tick
		lmtr.acc += lmtr.perTick
		n := int(lmtr.acc)
		lmtr.acc -= float64(n)
		lmtr.count += n
	}
	lmtr.count--
}

// HasWaited will return true if the event is allowed without waiting, and
// false if the event is yet to be allowed. If HasWaited() returns true then
// the event is counted as if Wait() had been called.
func (lmtr *Limiter) HasWaited() bool {
	if lmtr.count > 0 {
		lmtr.count--
		return true
	}
	select {
	case <-lmtr.tick:
		lmtr.acc += lmtr.perTick
		n := int(lmtr.acc)
		lmtr.acc -= float64(n)
		lmtr.count += n
		if lmtr.count > 0 {
			lmtr.count--
			return true
		}
		return false
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}
