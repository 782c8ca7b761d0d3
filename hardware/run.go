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

package hardware

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// It can be expensive to do a full continue check every cycle.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// UnsupportedState is returned by Run() when continueCheck returns a state
// that Run() does not understand.
const UnsupportedState = "chip8: unsupported emulation state (%s) in Run() function"

func (c *Chip8) keypad() keypad.State {
	if c.keys == nil {
		return keypad.State{}
	}
	return c.keys.Keypad()
}

// Run sets the emulation running. The continueCheck function is called after
// every cycle and the emulation continues for as long as it returns
// govern.Running or govern.Paused. No cycles are executed while paused.
// Returning govern.EmulatorStart is an UnsupportedState error.
//
// The emulation runs as quickly as possible. Pacing the emulation is the
// responsibility of the continueCheck function.
func (c *Chip8) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			if err := c.Cycle(c.keypad()); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycleCount runs the emulation for the specified number of cycles.
// Useful for performance tests and headless emulation. The continueCheck
// function can end the emulation early.
func (c *Chip8) RunForCycleCount(numCycles uint64, continueCheck func(cycle uint64) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ uint64) (govern.State, error) { return govern.Running, nil }
	}

	target := c.cycles + numCycles

	state := govern.Running
	for c.cycles < target && state != govern.Ending {
		if err := c.Cycle(c.keypad()); err != nil {
			return err
		}

		var err error
		state, err = continueCheck(c.cycles)
		if err != nil {
			return err
		}
	}

	return nil
}
