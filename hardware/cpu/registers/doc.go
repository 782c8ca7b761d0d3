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

// Package registers implements the three types of register found in the CPU.
//
// The Register type is an 8 bit register. There are sixteen of these, labelled
// V0 to VF. Arithmetic is modulo 256 and the arithmetic functions return the
// value that should be placed in the flag register (VF). It is the
// responsibility of the CPU to write the flag, because the order in which the
// result and the flag are written matters when the destination register is VF
// itself.
//
// The Index type is the 16 bit I register. Only the lower 12 bits are
// meaningful when addressing memory.
//
// The ProgramCounter type is the 16 bit PC register.
package registers
