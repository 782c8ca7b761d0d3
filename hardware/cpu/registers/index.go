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

package registers

import (
	"fmt"
)

// AddressMask selects the bits of a 16 bit value that address memory.
const AddressMask = uint16(0x0fff)

// Index is the 16 bit I register.
type Index struct {
	value uint16
}

// Label returns an identifying string for the I register.
func (i Index) Label() string {
	return "I"
}

func (i Index) String() string {
	return fmt.Sprintf("%#04x", i.value)
}

// Value returns the full 16 bit value of the register.
func (i Index) Value() uint16 {
	return i.value
}

// Address returns the value of the register masked to the address space.
func (i Index) Address() uint16 {
	return i.value & AddressMask
}

// Load a value into the register.
func (i *Index) Load(val uint16) {
	i.value = val
}

// Add a value to the register. The addition is modulo 65536. Returns true if
// the result is outside of the address space.
func (i *Index) Add(val uint16) (overflow bool) {
	i.value += val
	return i.value > AddressMask
}
