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

package memory

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
)

// Sentinal errors returned by the memory package.
const (
	FetchOutOfRange   = "memory: fetch out of range: %#04x"
	AddressOutOfRange = "memory: address out of range: %#04x"
	FontWrite         = "memory: write to font area: %#04x"
	ProgramTooLarge   = "memory: program too large: %d bytes (maximum %d)"
	ProgramEmpty      = "memory: program is empty"
)

// Memory is the entire address space of the machine.
type Memory struct {
	data [memorymap.MemorySize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The memory is reset before being returned.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset zeroes memory and loads the font.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	copy(mem.data[memorymap.OriginFont:], Font[:])
}

// LoadProgram copies data into memory at the origin of the program area.
// Memory is not changed if the program is empty or too large.
func (mem *Memory) LoadProgram(data []uint8) error {
	if len(data) == 0 {
		return curated.Errorf(ProgramEmpty)
	}
	if len(data) > memorymap.ProgramCapacity {
		return curated.Errorf(ProgramTooLarge, len(data), memorymap.ProgramCapacity)
	}
	copy(mem.data[memorymap.OriginProgram:], data)
	return nil
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address > memorymap.Memtop {
		return 0, curated.Errorf(AddressOutOfRange, address)
	}
	return mem.data[address], nil
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	if address > memorymap.Memtop {
		return curated.Errorf(AddressOutOfRange, address)
	}
	if address <= memorymap.MemtopFont {
		return curated.Errorf(FontWrite, address)
	}
	mem.data[address] = data
	return nil
}

// Fetch implements the bus.CPUBus interface.
func (mem *Memory) Fetch(address uint16) (uint16, error) {
	if address > memorymap.MemtopFetch {
		return 0, curated.Errorf(FetchOutOfRange, address)
	}
	return uint16(mem.data[address])<<8 | uint16(mem.data[address+1]), nil
}

// Peek returns the contents of memory without any checks other than the
// address being in range. Addresses out of range return zero. For use by
// tests and tools that inspect memory.
func (mem *Memory) Peek(address uint16) uint8 {
	if address > memorymap.Memtop {
		return 0
	}
	return mem.data[address]
}
