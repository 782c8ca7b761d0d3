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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/bus"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/test"
)

func TestImplementsBus(t *testing.T) {
	test.DemandImplements[bus.CPUBus](t, memory.NewMemory())
}

func TestReset(t *testing.T) {
	mem := memory.NewMemory()

	// font is in place after reset
	for i, b := range memory.Font {
		test.ExpectEquality(t, mem.Peek(uint16(i)), b, i)
	}

	test.DemandSuccess(t, mem.LoadProgram([]uint8{0x12, 0x34}))
	test.ExpectEquality(t, mem.Peek(0x200), uint8(0x12))

	// reset clears the program but restores the font
	mem.Reset()
	test.ExpectEquality(t, mem.Peek(0x200), uint8(0x00))
	test.ExpectEquality(t, mem.Peek(0x000), memory.Font[0])
}

func TestLoadProgram(t *testing.T) {
	mem := memory.NewMemory()

	prg := []uint8{0x60, 0x05, 0x70, 0x01}
	test.DemandSuccess(t, mem.LoadProgram(prg))
	for i, b := range prg {
		v, err := mem.Read(memorymap.OriginProgram + uint16(i))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, b)
	}
}

func TestLoadProgramCapacity(t *testing.T) {
	mem := memory.NewMemory()

	// program that exactly fills the program area
	full := make([]uint8, memorymap.ProgramCapacity)
	for i := range full {
		full[i] = 0xaa
	}
	test.DemandSuccess(t, mem.LoadProgram(full))
	test.ExpectEquality(t, mem.Peek(memorymap.MemtopProgram), uint8(0xaa))

	mem.Reset()

	// one byte too many is rejected and memory is untouched
	over := make([]uint8, memorymap.ProgramCapacity+1)
	for i := range over {
		over[i] = 0xbb
	}
	err := mem.LoadProgram(over)
	test.ExpectSuccess(t, curated.Is(err, memory.ProgramTooLarge))
	test.ExpectEquality(t, mem.Peek(memorymap.OriginProgram), uint8(0x00))
	test.ExpectEquality(t, mem.Peek(memorymap.MemtopProgram), uint8(0x00))

	err = mem.LoadProgram(nil)
	test.ExpectSuccess(t, curated.Is(err, memory.ProgramEmpty))
}

func TestFetch(t *testing.T) {
	mem := memory.NewMemory()
	test.DemandSuccess(t, mem.LoadProgram([]uint8{0xa2, 0x2a}))

	// opcodes are big-endian
	op, err := mem.Fetch(0x200)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, op, uint16(0xa22a))

	// last legal fetch address
	_, err = mem.Fetch(0xffe)
	test.ExpectSuccess(t, err)

	// fetch beyond end of memory
	_, err = mem.Fetch(0xfff)
	test.ExpectSuccess(t, curated.Is(err, memory.FetchOutOfRange))
	_, err = mem.Fetch(0x1000)
	test.ExpectSuccess(t, curated.Is(err, memory.FetchOutOfRange))
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectSuccess(t, mem.Write(0x300, 0x42))
	v, err := mem.Read(0x300)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))

	// top of memory
	test.ExpectSuccess(t, mem.Write(0xfff, 0x01))

	// out of range
	err = mem.Write(0x1000, 0x01)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange))
	_, err = mem.Read(0x1000)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfRange))

	// font can be read but not written
	v, err = mem.Read(0x004f)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, memory.Font[0x4f])
	err = mem.Write(0x004f, 0x00)
	test.ExpectSuccess(t, curated.Is(err, memory.FontWrite))
	test.ExpectEquality(t, mem.Peek(0x004f), memory.Font[0x4f])

	// the reserved area is writable
	test.ExpectSuccess(t, mem.Write(0x0050, 0x01))
}
