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

package cpu

// State of the CPU.
type State int

// List of valid CPU states.
const (
	// Executing is the normal state. Every call to ExecuteInstruction() will
	// fetch, decode and execute an instruction.
	Executing State = iota

	// AwaitingKey is the state after an Fx0A instruction when no key was
	// pressed. No instruction is fetched until a key is pressed.
	AwaitingKey
)

func (s State) String() string {
	switch s {
	case Executing:
		return "Executing"
	case AwaitingKey:
		return "AwaitingKey"
	}
	return ""
}
