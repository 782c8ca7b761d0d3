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

// Package cpu executes instructions decoded by the instructions package. The
// CPU type holds the sixteen V registers, the I register, the program counter
// and the call stack. Memory is accessed through the bus.CPUBus interface.
// The framebuffer, the timers and the random number generator are supplied
// when the CPU is created.
//
// The ExecuteInstruction() function performs one fetch, decode and execute.
// The keypad state for the instruction is passed as the only argument.
//
//	mc := cpu.NewCPU(env, mem, fb, &tmr, env.Random)
//	mc.Reset()
//
//	for {
//		err := mc.ExecuteInstruction(keys)
//		if err != nil {
//			return err
//		}
//	}
//
// The program counter advances by two after every instruction unless the
// instruction is a jump, a call or a return (which load the program counter
// directly) or a skip (which advances by four).
//
// Instructions that use the flag register (VF) write the flag after the
// result. If the destination register is VF then the flag is the final value.
//
// Instructions that access memory relative to the I register check the entire
// range of the access before changing anything. An access beyond the end of
// memory is a MemoryOverrun error.
//
// The Fx0A instruction waits for a key press. Rather than blocking, the CPU
// moves into the AwaitingKey state. In that state ExecuteInstruction() does
// nothing except check the keypad. When a key is pressed the key is stored in
// the register and execution continues with the next instruction.
//
// All errors returned by ExecuteInstruction() are fatal. The CPU should be
// reset before execution continues.
package cpu
