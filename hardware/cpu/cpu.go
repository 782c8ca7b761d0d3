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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory/bus"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/logger"
)

// MemoryOverrun is returned when an instruction accesses memory relative to
// the I register and the access would go beyond the end of memory or, for
// instructions that write, into the font area.
const MemoryOverrun = "cpu: memory overrun: %s: I=%#04x length=%d"

// DecodeError wraps errors from the instructions package with the address of
// the opcode.
const DecodeError = "cpu: %v: PC=%#04x"

// FlagRegister is the index of the VF register.
const FlagRegister = 0xf

// Random is the source of random numbers for the RND instruction.
type Random interface {
	Byte() uint8
}

// CPU implements the instruction set.
type CPU struct {
	perm logger.Permission

	mem bus.CPUBus
	fb  *display.Framebuffer
	tmr *timer.Timers
	rnd Random

	V     [16]registers.Register
	I     registers.Index
	PC    registers.ProgramCounter
	Stack Stack

	state State

	// the register to receive the key when state is AwaitingKey
	awaitRegister uint8

	// the most recently executed instruction
	LastInstruction instructions.Instruction
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// is reset before being returned.
func NewCPU(perm logger.Permission, mem bus.CPUBus, fb *display.Framebuffer, tmr *timer.Timers, rnd Random) *CPU {
	mc := &CPU{
		perm: perm,
		mem:  mem,
		fb:   fb,
		tmr:  tmr,
		rnd:  rnd,
	}
	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("PC=%s I=%s SP=%d", mc.PC, mc.I, mc.Stack.Depth()))
	if ret, ok := mc.Stack.Peek(); ok {
		s.WriteString(fmt.Sprintf(" RET=%#04x", ret))
	}
	for i := range mc.V {
		s.WriteString(" ")
		s.WriteString(mc.V[i].String())
	}
	return s.String()
}

// Reset the CPU. Registers are zeroed, the stack is emptied and the program
// counter is set to the origin of the program area.
func (mc *CPU) Reset() {
	for i := range mc.V {
		mc.V[i].Load(0)
	}
	mc.I.Load(0)
	mc.PC.Load(memorymap.OriginProgram)
	mc.Stack.Reset()
	mc.state = Executing
	mc.awaitRegister = 0
	mc.LastInstruction = instructions.Instruction{}
}

// State returns the current state of the CPU.
func (mc *CPU) State() State {
	return mc.state
}

// ExecuteInstruction fetches, decodes and executes the instruction at the
// program counter. If the CPU is in the AwaitingKey state then no instruction
// is fetched.
func (mc *CPU) ExecuteInstruction(keys keypad.State) error {
	if mc.state == AwaitingKey {
		mc.awaitKey(keys)
		return nil
	}

	opcode, err := mc.mem.Fetch(mc.PC.Address())
	if err != nil {
		return err
	}

	ins, err := instructions.Decode(opcode)
	if err != nil {
		return curated.Errorf(DecodeError, err, mc.PC.Address())
	}
	mc.LastInstruction = ins

	return mc.execute(ins, keys)
}

// commit the lowest pressed key to the waiting register. does nothing if no
// key is pressed
func (mc *CPU) awaitKey(keys keypad.State) {
	k, ok := keys.Lowest()
	if !ok {
		return
	}
	mc.V[mc.awaitRegister].Load(uint8(k))
	mc.PC.Add(2)
	mc.state = Executing
}

// skip the next instruction if the condition is true.
func (mc *CPU) skipIf(cond bool) {
	if cond {
		mc.PC.Add(4)
	} else {
		mc.PC.Add(2)
	}
}

// setFlag is always called after the result of an operation has been stored.
func (mc *CPU) setFlag(v uint8) {
	mc.V[FlagRegister].Load(v)
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// check that the memory range starting at I is inside memory. if write is
// true then the range must also be outside of the font area
func (mc *CPU) checkRange(ins instructions.Instruction, length int, write bool) error {
	if length == 0 {
		return nil
	}
	start := int(mc.I.Value())
	end := start + length - 1
	if end > int(memorymap.Memtop) {
		return curated.Errorf(MemoryOverrun, ins.Operator, mc.I.Value(), length)
	}
	if write && start <= int(memorymap.MemtopFont) {
		return curated.Errorf(MemoryOverrun, ins.Operator, mc.I.Value(), length)
	}
	return nil
}

func (mc *CPU) execute(ins instructions.Instruction, keys keypad.State) error {
	vx := &mc.V[ins.X]
	vy := &mc.V[ins.Y]

	switch ins.Operator {
	case instructions.CLS:
		mc.fb.Clear()
		mc.PC.Add(2)

	case instructions.RET:
		address, err := mc.Stack.pop(mc.PC.Address())
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.JP:
		mc.PC.Load(ins.NNN)

	case instructions.CALL:
		err := mc.Stack.push(mc.PC.Address()+2, mc.PC.Address())
		if err != nil {
			return err
		}
		mc.PC.Load(ins.NNN)

	case instructions.SEImm:
		mc.skipIf(vx.Value() == ins.KK)

	case instructions.SNEImm:
		mc.skipIf(vx.Value() != ins.KK)

	case instructions.SEReg:
		mc.skipIf(vx.Value() == vy.Value())

	case instructions.SNEReg:
		mc.skipIf(vx.Value() != vy.Value())

	case instructions.LDImm:
		vx.Load(ins.KK)
		mc.PC.Add(2)

	case instructions.ADDImm:
		vx.Add(ins.KK)
		mc.PC.Add(2)

	case instructions.LDReg:
		vx.Load(vy.Value())
		mc.PC.Add(2)

	case instructions.OR:
		vx.OR(vy.Value())
		mc.PC.Add(2)

	case instructions.AND:
		vx.AND(vy.Value())
		mc.PC.Add(2)

	case instructions.XOR:
		vx.XOR(vy.Value())
		mc.PC.Add(2)

	case instructions.ADDReg:
		carry := vx.Add(vy.Value())
		mc.setFlag(boolToFlag(carry))
		mc.PC.Add(2)

	case instructions.SUB:
		noBorrow := vx.Subtract(vy.Value())
		mc.setFlag(boolToFlag(noBorrow))
		mc.PC.Add(2)

	case instructions.SUBN:
		noBorrow := vx.SubtractFrom(vy.Value())
		mc.setFlag(boolToFlag(noBorrow))
		mc.PC.Add(2)

	case instructions.SHR:
		bit := vx.LSR()
		mc.setFlag(bit)
		mc.PC.Add(2)

	case instructions.SHL:
		bit := vx.ASL()
		mc.setFlag(bit)
		mc.PC.Add(2)

	case instructions.LDI:
		mc.I.Load(ins.NNN)
		mc.PC.Add(2)

	case instructions.JPV0:
		mc.PC.Load(uint16(mc.V[0].Value()) + ins.NNN)

	case instructions.RND:
		vx.Load(mc.rnd.Byte() & ins.KK)
		mc.PC.Add(2)

	case instructions.DRW:
		n := int(ins.N)
		if err := mc.checkRange(ins, n, false); err != nil {
			return err
		}
		sprite := make([]uint8, n)
		for r := range sprite {
			v, err := mc.mem.Read(mc.I.Value() + uint16(r))
			if err != nil {
				return err
			}
			sprite[r] = v
		}
		collision := mc.fb.Draw(vx.Value(), vy.Value(), sprite)
		mc.setFlag(boolToFlag(collision))
		mc.PC.Add(2)

	case instructions.SKP:
		mc.skipIf(keys.IsPressed(vx.Value()))

	case instructions.SKNP:
		mc.skipIf(!keys.IsPressed(vx.Value()))

	case instructions.LDVxDT:
		vx.Load(mc.tmr.Delay)
		mc.PC.Add(2)

	case instructions.LDVxK:
		mc.state = AwaitingKey
		mc.awaitRegister = ins.X
		mc.awaitKey(keys)

	case instructions.LDDTVx:
		mc.tmr.Delay = vx.Value()
		mc.PC.Add(2)

	case instructions.LDSTVx:
		mc.tmr.Sound = vx.Value()
		mc.PC.Add(2)

	case instructions.ADDI:
		if mc.I.Add(uint16(vx.Value())) {
			logger.Logf(mc.perm, "cpu", "I register beyond address space (%#04x) at %#04x", mc.I.Value(), mc.PC.Address())
		}
		mc.PC.Add(2)

	case instructions.LDF:
		mc.I.Load(uint16(vx.Value()) * memorymap.FontGlyphSize)
		if vx.Value() > 0x0f {
			logger.Logf(mc.perm, "cpu", "font glyph for %#02x is outside the font area at %#04x", vx.Value(), mc.PC.Address())
		}
		mc.PC.Add(2)

	case instructions.LDB:
		if err := mc.checkRange(ins, 3, true); err != nil {
			return err
		}
		v := vx.Value()
		for i, d := range []uint8{v / 100, (v / 10) % 10, v % 10} {
			if err := mc.mem.Write(mc.I.Value()+uint16(i), d); err != nil {
				return err
			}
		}
		mc.PC.Add(2)

	case instructions.LDIVx:
		n := int(ins.X) + 1
		if err := mc.checkRange(ins, n, true); err != nil {
			return err
		}
		for r := range n {
			if err := mc.mem.Write(mc.I.Value()+uint16(r), mc.V[r].Value()); err != nil {
				return err
			}
		}
		mc.PC.Add(2)

	case instructions.LDVxI:
		n := int(ins.X) + 1
		if err := mc.checkRange(ins, n, false); err != nil {
			return err
		}
		for r := range n {
			v, err := mc.mem.Read(mc.I.Value() + uint16(r))
			if err != nil {
				return err
			}
			mc.V[r].Load(v)
		}
		mc.PC.Add(2)

	default:
		return curated.Errorf(instructions.UnknownOpcode, ins.Opcode)
	}

	return nil
}
