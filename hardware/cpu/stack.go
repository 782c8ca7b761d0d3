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

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal errors for stack operations.
const (
	StackOverflow  = "cpu: stack overflow: call at %#04x"
	StackUnderflow = "cpu: stack underflow: return at %#04x"
)

// StackDepth is the number of return addresses the stack can hold.
const StackDepth = 16

// Stack of return addresses.
type Stack struct {
	slots [StackDepth]uint16

	// the number of addresses on the stack. the next push will be to
	// slots[sp]
	sp int
}

// Reset empties the stack.
func (st *Stack) Reset() {
	clear(st.slots[:])
	st.sp = 0
}

// Depth returns the number of addresses on the stack.
func (st *Stack) Depth() int {
	return st.sp
}

// Push address onto the stack. The pc argument is used only for the error
// message if the stack is full.
func (st *Stack) push(address uint16, pc uint16) error {
	if st.sp >= StackDepth {
		return curated.Errorf(StackOverflow, pc)
	}
	st.slots[st.sp] = address
	st.sp++
	return nil
}

// Pop address from the stack. The pc argument is used only for the error
// message if the stack is empty.
func (st *Stack) pop(pc uint16) (uint16, error) {
	if st.sp == 0 {
		return 0, curated.Errorf(StackUnderflow, pc)
	}
	st.sp--
	return st.slots[st.sp], nil
}

// Peek returns the most recently pushed address. Returns false if the stack is
// empty.
func (st *Stack) Peek() (uint16, bool) {
	if st.sp == 0 {
		return 0, false
	}
	return st.slots[st.sp-1], true
}
