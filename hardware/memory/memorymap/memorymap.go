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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case Font:
		return "Font"
	case Reserved:
		return "Reserved"
	case Program:
		return "Program"
	}

	return "undefined"
}

// The different memory areas.
const (
	Undefined Area = iota
	Font
	Reserved
	Program
)

// The origin and memory top for each area of memory.
const (
	OriginFont     = uint16(0x0000)
	MemtopFont     = uint16(0x004f)
	OriginReserved = uint16(0x0050)
	MemtopReserved = uint16(0x01ff)
	OriginProgram  = uint16(0x0200)
	MemtopProgram  = uint16(0x0fff)
)

// Memtop is the highest address in memory. MemorySize is the number of bytes
// in memory.
const (
	Memtop     = MemtopProgram
	MemorySize = int(Memtop) + 1
)

// ProgramCapacity is the maximum size of a program.
const ProgramCapacity = int(MemtopProgram-OriginProgram) + 1

// FontGlyphSize is the number of bytes in each glyph of the font. Glyph n
// starts at address n * FontGlyphSize.
const FontGlyphSize = 5

// MemtopFetch is the highest address from which an opcode can be fetched.
// The second byte of the opcode is at MemtopFetch+1.
const MemtopFetch = Memtop - 1

// MapAddress returns the area of memory the address falls in. Addresses
// beyond Memtop are in the Undefined area.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopFont:
		return Font
	case address <= MemtopReserved:
		return Reserved
	case address <= MemtopProgram:
		return Program
	}
	return Undefined
}
