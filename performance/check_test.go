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

package performance

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func loader(data ...uint8) romloader.Loader {
	rl := romloader.NewLoader("test.ch8")
	rl.Data = data
	return rl
}

func TestCheck(t *testing.T) {
	leadTime = 10 * time.Millisecond
	t.Cleanup(func() { leadTime = 2 * time.Second })

	var out strings.Builder
	err := Check(&out, ProfileNone, loader(0x12, 0x00), nil, true, "50ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), " cps ("))
	test.ExpectSuccess(t, strings.Contains(out.String(), "in 0.05 seconds"))
}

func TestCheckErrors(t *testing.T) {
	leadTime = 10 * time.Millisecond
	t.Cleanup(func() { leadTime = 2 * time.Second })

	var out strings.Builder

	err := Check(&out, ProfileNone, loader(0x12, 0x00), nil, true, "not a duration")
	test.ExpectFailure(t, err)

	// the machine halts on an unknown opcode
	err = Check(&out, ProfileNone, loader(0x00, 0x00), nil, true, "50ms")
	test.ExpectSuccess(t, curated.Has(err, instructions.UnknownOpcode))

	err = Check(&out, ProfileNone, romloader.NewLoader(""), nil, true, "50ms")
	test.ExpectSuccess(t, curated.Has(err, romloader.NoFilename))

	test.ExpectEquality(t, out.Len(), 0)
}
