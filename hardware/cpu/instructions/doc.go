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

// Package instructions decodes 16 bit opcodes into a value of the Instruction
// type. The Instruction type names the operation to be performed and carries
// the operand fields already extracted from the opcode.
//
// Opcodes are grouped into families by their most significant nibble. Most
// families contain a single instruction but families 0x0, 0x8, 0xE and 0xF
// examine further nibbles to select the instruction. An opcode that matches
// no instruction is an error and is never silently ignored.
//
// The mnemonics returned by Operator.String() are for log and error messages.
// There is no disassembler.
package instructions
