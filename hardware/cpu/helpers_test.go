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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

// fixedRandom always returns the same value.
type fixedRandom uint8

func (r fixedRandom) Byte() uint8 {
	return uint8(r)
}

type harness struct {
	mem *memory.Memory
	fb  *display.Framebuffer
	tmr timer.Timers
	mc  *cpu.CPU
}

// newHarness creates a CPU with the program loaded at the program origin.
func newHarness(t *testing.T, program ...uint16) *harness {
	t.Helper()

	h := &harness{
		mem: memory.NewMemory(),
		fb:  display.NewFramebuffer(),
	}
	h.mc = cpu.NewCPU(logger.Allow, h.mem, h.fb, &h.tmr, fixedRandom(0xa5))

	data := make([]uint8, 0, len(program)*2)
	for _, op := range program {
		data = append(data, uint8(op>>8), uint8(op))
	}
	if len(data) > 0 {
		test.DemandSuccess(t, h.mem.LoadProgram(data))
	}

	return h
}

// step executes one instruction with no keys pressed. any error is fatal
func (h *harness) step(t *testing.T) {
	t.Helper()
	test.DemandSuccess(t, h.mc.ExecuteInstruction(keypad.State{}))
}

// steps executes n instructions with no keys pressed
func (h *harness) steps(t *testing.T, n int) {
	t.Helper()
	for range n {
		h.step(t)
	}
}

// keys creates a keypad state with the listed keys pressed
func keys(k ...int) keypad.State {
	var st keypad.State
	for _, v := range k {
		st[v] = true
	}
	return st
}

func (h *harness) expectPC(t *testing.T, pc uint16) {
	t.Helper()
	test.ExpectEquality(t, h.mc.PC.Address(), pc, "PC")
}

func (h *harness) expectV(t *testing.T, reg int, v uint8) {
	t.Helper()
	test.ExpectEquality(t, h.mc.V[reg].Value(), v, h.mc.V[reg].Label())
}
