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

// Package bus defines the memory operations required by the CPU. The CPU is
// not given direct access to the Memory type but to an implementation of the
// CPUBus interface.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. All addresses are checked and an error returned if the access is
// illegal.
type CPUBus interface {
	// Read a single byte from memory
	Read(address uint16) (uint8, error)

	// Write a single byte to memory
	Write(address uint16, data uint8) error

	// Fetch the big-endian 16 bit opcode starting at address
	Fetch(address uint16) (uint16, error)
}
