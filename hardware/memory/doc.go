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

// Package memory implements the 4096 byte memory of the machine. The font is
// loaded into the lowest 80 bytes of memory when the Memory is reset and
// programs are loaded at the origin of the program area.
//
// See the memorymap package for the layout of memory.
//
// The Memory type implements the bus.CPUBus interface. Reads and writes
// outside of the address space fail, as do writes to the font area and
// fetches that would read beyond the end of memory. These are all fatal
// errors for the emulation.
//
// Programs larger than the program area are rejected by LoadProgram(). They
// are never truncated.
package memory
