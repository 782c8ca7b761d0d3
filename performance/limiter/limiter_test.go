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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/test"
)

func TestInvalidRate(t *testing.T) {
	_, err := limiter.NewLimiter(0)
	test.ExpectSuccess(t, curated.Is(err, limiter.InvalidRate))

	lmtr, err := limiter.NewLimiter(10)
	test.DemandSuccess(t, err)
	defer lmtr.End()

	test.ExpectSuccess(t, curated.Is(lmtr.SetLimit(-1), limiter.InvalidRate))
	test.ExpectEquality(t, lmtr.Rate(), 10)
}

func TestWait(t *testing.T) {
	// ten events per tick
	lmtr, err := limiter.NewLimiter(limiter.TicksPerSecond * 10)
	test.DemandSuccess(t, err)
	defer lmtr.End()

	// forty events require four ticks. the first tick is immediate
	start := time.Now()
	for range 40 {
		lmtr.Wait()
	}
	elapsed := time.Since(start)

	tick := time.Second / limiter.TicksPerSecond
	if elapsed < tick*2 {
		t.Errorf("limiter was too quick: %v", elapsed)
	}
	if elapsed > time.Second {
		t.Errorf("limiter was too slow: %v", elapsed)
	}
}

func TestHasWaited(t *testing.T) {
	lmtr, err := limiter.NewLimiter(limiter.TicksPerSecond * 2)
	test.DemandSuccess(t, err)
	defer lmtr.End()

	// two events per tick
	lmtr.Wait()
	test.ExpectSuccess(t, lmtr.HasWaited())
	test.ExpectFailure(t, lmtr.HasWaited())

	time.Sleep(time.Second / limiter.TicksPerSecond * 3)
	test.ExpectSuccess(t, lmtr.HasWaited())
}
