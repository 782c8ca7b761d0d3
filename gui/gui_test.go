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

package gui_test

import (
	"image/color"
	"sync"
	"testing"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestFrameStore(t *testing.T) {
	var fs gui.FrameStore
	_ = test.DemandImplements[hardware.FrameSink](t, &fs)

	_, ok := fs.Take()
	test.ExpectFailure(t, ok)

	var a, b display.Frame
	a[0][0] = 1
	b[1][1] = 1

	test.ExpectSuccess(t, fs.SetFrame(a))
	test.ExpectSuccess(t, fs.SetFrame(b))

	f, ok := fs.Take()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, b)
	test.ExpectEquality(t, fs.Dropped(), uint64(1))

	_, ok = fs.Take()
	test.ExpectFailure(t, ok)
}

func TestFrameStoreConcurrency(t *testing.T) {
	var fs gui.FrameStore

	var wg sync.WaitGroup
	wg.Go(func() {
		for i := range 1000 {
			var f display.Frame
			f[0][i%display.Width] = 1
			_ = fs.SetFrame(f)
		}
	})

	var taken int
	wg.Go(func() {
		for range 1000 {
			if f, ok := fs.Take(); ok {
				test.ExpectEquality(t, f.Lit(), 1)
				taken++
			}
		}
	})
	wg.Wait()

	if _, ok := fs.Take(); ok {
		taken++
	}
	test.ExpectEquality(t, uint64(taken)+fs.Dropped(), uint64(1000))
}

func TestPixels(t *testing.T) {
	fg := color.RGBA{R: 0, G: 0, B: 250, A: 255}
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	var f display.Frame
	f[0][1] = 1
	f[31][63] = 1

	dst := make([]uint8, gui.PixelsSize)
	gui.Pixels(dst, f, fg, bg)

	test.ExpectEquality(t, [4]uint8(dst[0:4]), [4]uint8{10, 20, 30, 255})
	test.ExpectEquality(t, [4]uint8(dst[4:8]), [4]uint8{0, 0, 250, 255})
	test.ExpectEquality(t, [4]uint8(dst[gui.PixelsSize-4:]), [4]uint8{0, 0, 250, 255})
}

func TestSendEvent(t *testing.T) {
	test.ExpectFailure(t, gui.SendEvent(nil, userinput.EventQuit{}))

	ch := make(chan userinput.Event, 1)
	test.ExpectSuccess(t, gui.SendEvent(ch, userinput.EventQuit{}))
	test.ExpectFailure(t, gui.SendEvent(ch, userinput.EventQuit{}))

	ev := <-ch
	_, ok := ev.(userinput.EventQuit)
	test.ExpectSuccess(t, ok)
}

func TestNewEventChannel(t *testing.T) {
	ch := gui.NewEventChannel()
	test.ExpectEquality(t, cap(ch), gui.EventQueueLength)

	for range gui.EventQueueLength {
		test.ExpectSuccess(t, gui.SendEvent(ch, userinput.EventQuit{}))
	}
	test.ExpectFailure(t, gui.SendEvent(ch, userinput.EventQuit{}))
}
