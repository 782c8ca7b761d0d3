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

// Operator identifies the operation of an instruction.
type Operator int

// List of valid Operator values. The comment for each value shows the opcode
// pattern.
const (
	Undefined Operator = iota
	CLS                // 00E0
	RET                // 00EE
	JP                 // 1nnn
	CALL               // 2nnn
	SEImm              // 3xkk
	SNEImm             // 4xkk
	SEReg              // 5xy0
	LDImm              // 6xkk
	ADDImm             // 7xkk
	LDReg              // 8xy0
	OR                 // 8xy1
	AND                // 8xy2
	XOR                // 8xy3
	ADDReg             // 8xy4
	SUB                // 8xy5
	SHR                // 8xy6
	SUBN               // 8xy7
	SHL                // 8xyE
	SNEReg             // 9xy0
	LDI                // Annn
	JPV0               // Bnnn
	RND                // Cxkk
	DRW                // Dxyn
	SKP                // Ex9E
	SKNP               // ExA1
	LDVxDT             // Fx07
	LDVxK              // Fx0A
	LDDTVx             // Fx15
	LDSTVx             // Fx18
	ADDI               // Fx1E
	LDF                // Fx29
	LDB                // Fx33
	LDIVx              // Fx55
	LDVxI              // Fx65
)

func (op Operator) String() string {
	switch op {
	case CLS:
		return "CLS"
	case RET:
		return "RET"
	case JP:
		return "JP nnn"
	case CALL:
		return "CALL nnn"
	case SEImm:
		return "SE Vx, kk"
	case SNEImm:
		return "SNE Vx, kk"
	case SEReg:
		return "SE Vx, Vy"
	case LDImm:
		return "LD Vx, kk"
	case ADDImm:
		return "ADD Vx, kk"
	case LDReg:
		return "LD Vx, Vy"
	case OR:
		return "OR Vx, Vy"
	case AND:
		return "AND Vx, Vy"
	case XOR:
		return "XOR Vx, Vy"
	case ADDReg:
		return "ADD Vx, Vy"
	case SUB:
		return "SUB Vx, Vy"
	case SHR:
		return "SHR Vx"
	case SUBN:
		return "SUBN Vx, Vy"
	case SHL:
		return "SHL Vx"
	case SNEReg:
		return "SNE Vx, Vy"
	case LDI:
		return "LD I, nnn"
	case JPV0:
		return "JP V0, nnn"
	case RND:
		return "RND Vx, kk"
	case DRW:
		return "DRW Vx, Vy, n"
	case SKP:
		return "SKP Vx"
	case SKNP:
		return "SKNP Vx"
	case LDVxDT:
		return "LD Vx, DT"
	case LDVxK:
		return "LD Vx, K"
	case LDDTVx:
		return "LD DT, Vx"
	case LDSTVx:
		return "LD ST, Vx"
	case ADDI:
		return "ADD I, Vx"
	case LDF:
		return "LD F, Vx"
	case LDB:
		return "LD B, Vx"
	case LDIVx:
		return "LD [I], Vx"
	case LDVxI:
		return "LD Vx, [I]"
	}
	return "undefined"
}
