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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.ClockSpeed.Get().(int), preferences.DefaultClockSpeed)
	test.ExpectEquality(t, p.Scale.Get().(int), preferences.DefaultScale)
	test.ExpectEquality(t, p.Foreground.String(), preferences.DefaultForeground)

	fg := p.ForegroundColour()
	test.ExpectEquality(t, fg.R, uint8(0x00))
	test.ExpectEquality(t, fg.G, uint8(0x00))
	test.ExpectEquality(t, fg.B, uint8(0xfa))
	test.ExpectEquality(t, fg.A, uint8(0xff))

	// saving and loading without a disk is not an error
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())
}

func TestValidation(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)

	err = p.ClockSpeed.Set(0)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidValue))
	test.ExpectEquality(t, p.ClockSpeed.Get().(int), preferences.DefaultClockSpeed)

	err = p.Scale.Set(100)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidValue))

	err = p.BeepVolume.Set(1.5)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidValue))

	err = p.Foreground.Set("blue")
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidColour))
	test.ExpectEquality(t, p.Foreground.String(), preferences.DefaultForeground)

	test.ExpectSuccess(t, p.Background.Set("#102030"))
	bg := p.BackgroundColour()
	test.ExpectEquality(t, bg.R, uint8(0x10))
	test.ExpectEquality(t, bg.G, uint8(0x20))
	test.ExpectEquality(t, bg.B, uint8(0x30))
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), preferences.DefaultPrefsFile)

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.ClockSpeed.Set(700))
	test.DemandSuccess(t, p.Save())

	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)

	q, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.ClockSpeed.Get().(int), 700)

	// command line overrides the value on disk
	prefs.PushCommandLineStack("hardware.clockspeed::900")
	defer prefs.PopCommandLineStack()
	r, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.ClockSpeed.Get().(int), 900)
}
