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
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romloader"
)

// Sentinal errors returned by the Chip8 type.
const (
	Halted        = "chip8: halted: %v"
	NoROM         = "chip8: no rom attached"
	NoEnvironment = "chip8: no environment"
)

// Chip8 is the root of the emulation.
type Chip8 struct {
	Env *environment.Environment

	CPU    *cpu.CPU
	Mem    *memory.Memory
	FB     *display.Framebuffer
	Timers timer.Timers

	// the currently attached ROM
	ROM romloader.Loader

	sink  FrameSink
	keys  KeypadSource
	audio AudioSink

	// the number of cycles since the last reset
	cycles uint64

	// the error that stopped the machine. the machine will not run again
	// until it is reset
	halted error
}

// NewChip8 creates a new machine and everything associated with the hardware.
// The Random instance in the environment is set to use the machine as its
// clock.
func NewChip8(env *environment.Environment) (*Chip8, error) {
	if env == nil {
		return nil, curated.Errorf(NoEnvironment)
	}

	c := &Chip8{
		Env: env,
		Mem: memory.NewMemory(),
		FB:  display.NewFramebuffer(),
	}
	c.CPU = cpu.NewCPU(env, c.Mem, c.FB, &c.Timers, env.Random)
	env.Random.SetClock(c)

	if err := c.Reset(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Chip8) String() string {
	return fmt.Sprintf("%s %s", c.CPU, c.Timers)
}

// AttachFrameSink sets the destination for the framebuffer. A nil value
// removes any existing sink.
func (c *Chip8) AttachFrameSink(sink FrameSink) {
	c.sink = sink
}

// AttachKeypad sets the source of the keypad state. A nil value means that
// no key is ever pressed.
func (c *Chip8) AttachKeypad(keys KeypadSource) {
	c.keys = keys
}

// AttachAudio sets the destination for the sound timer signal. A nil value
// removes any existing sink.
func (c *Chip8) AttachAudio(audio AudioSink) {
	c.audio = audio
}

// AttachROM loads the ROM and resets the machine. If the ROM cannot be loaded
// then the machine is left without a ROM.
func (c *Chip8) AttachROM(rl romloader.Loader) error {
	if err := rl.Load(); err != nil {
		c.ROM = romloader.Loader{}
		_ = c.Reset()
		return err
	}

	c.ROM = rl
	if err := c.Reset(); err != nil {
		c.ROM = romloader.Loader{}
		_ = c.Reset()
		return err
	}

	logger.Logf(c.Env, "chip8", "attached %s", c.ROM.ShortName())

	return nil
}

// Reset the machine to its initial state and reload the ROM, if there is
// one. A halted machine can be run again after a reset.
func (c *Chip8) Reset() error {
	c.Mem.Reset()
	if c.ROM.HasLoaded() {
		if err := c.Mem.LoadProgram(c.ROM.Data); err != nil {
			return err
		}
	}

	c.CPU.Reset()
	c.Timers.Reset()
	c.FB.Clear()
	c.cycles = 0
	c.halted = nil

	return nil
}

// Cycles implements the random.Clock interface.
func (c *Chip8) Cycles() uint64 {
	return c.cycles
}

// IsHalted returns the error that halted the machine or nil if the machine
// has not halted.
func (c *Chip8) IsHalted() error {
	return c.halted
}

// Cycle executes one instruction and then steps the timers. The keypad state
// is the state that is presented to the CPU for the duration of the cycle.
//
// Any error is fatal and the machine will refuse to cycle until it is reset.
func (c *Chip8) Cycle(keys keypad.State) error {
	if c.halted != nil {
		return curated.Errorf(Halted, c.halted)
	}

	if !c.ROM.HasLoaded() {
		return curated.Errorf(NoROM)
	}

	if err := c.CPU.ExecuteInstruction(keys); err != nil {
		c.halted = err
		logger.Log(c.Env, "chip8", err)
		logger.Logf(c.Env, "chip8", "halted with %s", c.CPU)
		return err
	}

	c.Timers.Step()
	c.cycles++

	if c.sink != nil && c.FB.Redraw() {
		if err := c.sink.SetFrame(c.FB.Snapshot()); err != nil {
			return err
		}
		c.FB.ClearRedraw()
	}

	if c.audio != nil {
		if err := c.audio.Beep(c.Timers.SoundActive()); err != nil {
			return err
		}
	}

	return nil
}

// Frame returns a copy of the framebuffer. The boolean return value is true if
// the framebuffer has changed since the last call to Frame(). For use when no
// FrameSink is attached.
func (c *Chip8) Frame() (display.Frame, bool) {
	redraw := c.FB.Redraw()
	c.FB.ClearRedraw()
	return c.FB.Snapshot(), redraw
}

// SoundActive returns true if the sound timer is non-zero.
func (c *Chip8) SoundActive() bool {
	return c.Timers.SoundActive()
}
