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

package random

import (
	"math/rand/v2"
	"time"
)

// Clock reports how far the emulation has progressed.
type Clock interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to the progress of
// the emulation.
type Random struct {
	clock Clock

	// the seed that was chosen when the Random instance was created or
	// reseeded
	seed uint64

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	rnd := &Random{
		clock: clock,
	}
	rnd.Reseed(0)
	return rnd
}

// SetClock changes the clock used to vary the random numbers. Used when the
// emulation is created after the environment.
func (rnd *Random) SetClock(clock Clock) {
	rnd.clock = clock
}

// Reseed the generator. A seed of zero will cause the generator to be seeded
// with the current time.
func (rnd *Random) Reseed(seed int64) {
	if seed == 0 {
		rnd.seed = uint64(time.Now().UnixNano())
	} else {
		rnd.seed = uint64(seed)
	}
}

// Seed returns the current seed value.
func (rnd *Random) Seed() uint64 {
	if rnd.ZeroSeed {
		return 0
	}
	return rnd.seed
}

// new RNG for the current point in the emulation
func (rnd *Random) rand() *rand.Rand {
	var c uint64
	if rnd.clock != nil {
		c = rnd.clock.Cycles()
	}
	return rand.New(rand.NewPCG(rnd.Seed(), c))
}

// Byte returns a random value in the range 0 to 255.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rand().UintN(256))
}

// IntN returns a random value in the range 0 to n-1.
func (rnd *Random) IntN(n int) int {
	return rnd.rand().IntN(n)
}
