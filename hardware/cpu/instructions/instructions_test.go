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

package instructions_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode   uint16
		operator instructions.Operator
	}{
		{0x00e0, instructions.CLS},
		{0x00ee, instructions.RET},
		{0x1234, instructions.JP},
		{0x2345, instructions.CALL},
		{0x3a10, instructions.SEImm},
		{0x4a10, instructions.SNEImm},
		{0x5ab0, instructions.SEReg},
		{0x6a10, instructions.LDImm},
		{0x7a10, instructions.ADDImm},
		{0x8ab0, instructions.LDReg},
		{0x8ab1, instructions.OR},
		{0x8ab2, instructions.AND},
		{0x8ab3, instructions.XOR},
		{0x8ab4, instructions.ADDReg},
		{0x8ab5, instructions.SUB},
		{0x8ab6, instructions.SHR},
		{0x8ab7, instructions.SUBN},
		{0x8abe, instructions.SHL},
		{0x9ab0, instructions.SNEReg},
		{0xa123, instructions.LDI},
		{0xb123, instructions.JPV0},
		{0xca0f, instructions.RND},
		{0xdab5, instructions.DRW},
		{0xea9e, instructions.SKP},
		{0xeaa1, instructions.SKNP},
		{0xfa07, instructions.LDVxDT},
		{0xfa0a, instructions.LDVxK},
		{0xfa15, instructions.LDDTVx},
		{0xfa18, instructions.LDSTVx},
		{0xfa1e, instructions.ADDI},
		{0xfa29, instructions.LDF},
		{0xfa33, instructions.LDB},
		{0xfa55, instructions.LDIVx},
		{0xfa65, instructions.LDVxI},
	}

	for _, tt := range tests {
		tag := fmt.Sprintf("%04x", tt.opcode)
		ins, err := instructions.Decode(tt.opcode)
		test.ExpectSuccess(t, err, tag)
		test.ExpectEquality(t, ins.Operator, tt.operator, tag)
		test.ExpectEquality(t, ins.Opcode, tt.opcode, tag)
		test.ExpectInequality(t, ins.Operator.String(), "undefined", tag)
	}
}

func TestOperands(t *testing.T) {
	ins, err := instructions.Decode(0xd7a5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.X, uint8(0x7))
	test.ExpectEquality(t, ins.Y, uint8(0xa))
	test.ExpectEquality(t, ins.N, uint8(0x5))
	test.ExpectEquality(t, ins.KK, uint8(0xa5))
	test.ExpectEquality(t, ins.NNN, uint16(0x7a5))
	test.ExpectEquality(t, ins.String(), "d7a5 DRW Vx, Vy, n")
}

func TestUnknownOpcodes(t *testing.T) {
	unknown := []uint16{
		0x0000, // SYS calls are not supported
		0x0123,
		0x00e1,
		0x5ab1,
		0x8ab8,
		0x8abf,
		0x9ab1,
		0xea9f,
		0xeaa2,
		0xfa00,
		0xfa66,
		0xffff,
	}

	for _, op := range unknown {
		tag := fmt.Sprintf("%04x", op)
		_, err := instructions.Decode(op)
		test.ExpectSuccess(t, curated.Is(err, instructions.UnknownOpcode), tag)
	}
}

// every opcode either decodes to a defined operator or returns the
// UnknownOpcode error
func TestDecodeTotal(t *testing.T) {
	var decoded int
	for op := 0; op <= 0xffff; op++ {
		ins, err := instructions.Decode(uint16(op))
		if err != nil {
			test.DemandSuccess(t, curated.Is(err, instructions.UnknownOpcode))
			continue
		}
		test.DemandSuccess(t, ins.Operator != instructions.Undefined)
		test.DemandSuccess(t, ins.X < 16 && ins.Y < 16)
		decoded++
	}

	// 1nnn, 2nnn, 3xkk, 4xkk, 6xkk, 7xkk, Annn, Bnnn, Cxkk and Dxyn are each
	// 4096 opcodes. 5xy0, 9xy0 and each 8xy? are 256 opcodes. Ex?? and Fx??
	// are 16 opcodes each. plus 00E0 and 00EE
	expected := 10*4096 + 2*256 + 9*256 + 2*16 + 9*16 + 2
	test.ExpectEquality(t, decoded, expected)
}
