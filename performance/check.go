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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/romloader"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the time allowed for the emulation to settle before measurement begins
var leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied ROM.
//
// Emulation will run for the specified duration and will create a cpu,
// memory and trace profile (or a combination of those) as defined by the
// Profile argument.
//
// If uncapped is false then the emulation is limited to the clock speed in
// the preferences and the accuracy value in the report shows how well the
// emulation keeps to that speed.
func Check(output io.Writer, profile Profile, rl romloader.Loader, prefs *preferences.Preferences, uncapped bool, duration string) error {
	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil, prefs)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	c8, err := hardware.NewChip8(env)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = c8.AttachROM(rl)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	clockSpeed := env.Prefs.ClockSpeed.Get().(int)

	var lmtr *limiter.Limiter
	if !uncapped {
		lmtr, err = limiter.NewLimiter(clockSpeed)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer lmtr.End()
	}

	var startCycle uint64

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool, 2)

		// force a leadtime to allow the emulation to settle down and then
		// restart timer for the specified duration
		go func() {
			time.AfterFunc(leadTime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check for end of measurement period every PerformanceBrake
		// cycles. checking the timerChan is relatively expensive
		performanceBrake := 0

		// run until specified time elapses
		return c8.Run(func() (govern.State, error) {
			if lmtr != nil {
				lmtr.Wait()
			}

			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}

				// leadtime has concluded and the measurement has begun
				startCycle = c8.Cycles()
			default:
			}

			return govern.Running, nil
		})
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numCycles := c8.Cycles() - startCycle
	cps, accuracy := CalcCPS(clockSpeed, numCycles, dur.Seconds())
	fmt.Fprintf(output, "%.2f cps (%d cycles in %.2f seconds) %.1f%%\n", cps, numCycles, dur.Seconds(), accuracy)

	return nil
}
