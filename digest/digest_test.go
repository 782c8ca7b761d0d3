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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

const zeroHash = "0000000000000000000000000000000000000000"

func TestVideo(t *testing.T) {
	a := digest.NewVideo()
	b := digest.NewVideo()
	_ = test.DemandImplements[hardware.FrameSink](t, a)
	_ = test.DemandImplements[digest.Digest](t, a)

	test.ExpectEquality(t, a.Hash(), zeroHash)

	var f display.Frame
	f[10][10] = 1

	test.ExpectSuccess(t, a.SetFrame(f))
	test.ExpectSuccess(t, b.SetFrame(f))
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), zeroHash)

	// the same frame again gives a different hash because the digests are
	// chained
	h := a.Hash()
	test.ExpectSuccess(t, a.SetFrame(f))
	test.ExpectInequality(t, a.Hash(), h)
	test.ExpectEquality(t, a.Frames(), 2)

	// a different frame gives a different hash
	f[10][11] = 1
	test.ExpectSuccess(t, b.SetFrame(f))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), zeroHash)
	test.ExpectEquality(t, a.Frames(), 0)
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()
	_ = test.DemandImplements[beeper.Mixer](t, a)
	_ = test.DemandImplements[digest.Digest](t, a)

	samples := make([]uint8, 3000)
	for i := range samples {
		samples[i] = uint8(i)
	}

	// the same data in different sized chunks produces the same digest
	test.ExpectSuccess(t, a.SetAudio(samples))
	test.ExpectSuccess(t, a.EndMixing())
	for i := 0; i < len(samples); i += 100 {
		test.ExpectSuccess(t, b.SetAudio(samples[i:i+100]))
	}
	test.ExpectSuccess(t, b.EndMixing())
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), zeroHash)

	// ending again with nothing buffered does not change the digest
	h := a.Hash()
	test.ExpectSuccess(t, a.EndMixing())
	test.ExpectEquality(t, a.Hash(), h)

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), zeroHash)
}
