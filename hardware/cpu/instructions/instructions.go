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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// UnknownOpcode is returned by Decode() when the opcode does not match any
// instruction.
const UnknownOpcode = "instructions: unknown opcode: %#04x"

// Instruction is a decoded opcode.
type Instruction struct {
	// the opcode that was decoded
	Opcode uint16

	Operator Operator

	// register indices. always in the range 0 to 15
	X uint8
	Y uint8

	// the lowest nibble
	N uint8

	// the lowest byte
	KK uint8

	// the lowest 12 bits
	NNN uint16
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%04x %s", ins.Opcode, ins.Operator)
}

// Decode an opcode into an Instruction.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode>>8) & 0x0f,
		Y:      uint8(opcode>>4) & 0x0f,
		N:      uint8(opcode) & 0x0f,
		KK:     uint8(opcode),
		NNN:    opcode & 0x0fff,
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			ins.Operator = CLS
		case 0x00ee:
			ins.Operator = RET
		}
	case 0x1:
		ins.Operator = JP
	case 0x2:
		ins.Operator = CALL
	case 0x3:
		ins.Operator = SEImm
	case 0x4:
		ins.Operator = SNEImm
	case 0x5:
		if ins.N == 0x0 {
			ins.Operator = SEReg
		}
	case 0x6:
		ins.Operator = LDImm
	case 0x7:
		ins.Operator = ADDImm
	case 0x8:
		switch ins.N {
		case 0x0:
			ins.Operator = LDReg
		case 0x1:
			ins.Operator = OR
		case 0x2:
			ins.Operator = AND
		case 0x3:
			ins.Operator = XOR
		case 0x4:
			ins.Operator = ADDReg
		case 0x5:
			ins.Operator = SUB
		case 0x6:
			ins.Operator = SHR
		case 0x7:
			ins.Operator = SUBN
		case 0xe:
			ins.Operator = SHL
		}
	case 0x9:
		if ins.N == 0x0 {
			ins.Operator = SNEReg
		}
	case 0xa:
		ins.Operator = LDI
	case 0xb:
		ins.Operator = JPV0
	case 0xc:
		ins.Operator = RND
	case 0xd:
		ins.Operator = DRW
	case 0xe:
		switch ins.KK {
		case 0x9e:
			ins.Operator = SKP
		case 0xa1:
			ins.Operator = SKNP
		}
	case 0xf:
		switch ins.KK {
		case 0x07:
			ins.Operator = LDVxDT
		case 0x0a:
			ins.Operator = LDVxK
		case 0x15:
			ins.Operator = LDDTVx
		case 0x18:
			ins.Operator = LDSTVx
		case 0x1e:
			ins.Operator = ADDI
		case 0x29:
			ins.Operator = LDF
		case 0x33:
			ins.Operator = LDB
		case 0x55:
			ins.Operator = LDIVx
		case 0x65:
			ins.Operator = LDVxI
		}
	}

	if ins.Operator == Undefined {
		return ins, curated.Errorf(UnknownOpcode, opcode)
	}

	return ins, nil
}
