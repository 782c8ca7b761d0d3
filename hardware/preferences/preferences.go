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

package preferences

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/prefs"
)

// DefaultPrefsFile is the filename of the preferences file in the resources
// directory.
const DefaultPrefsFile = "preferences"

// Sentinal errors returned by hook functions when an invalid value is set.
const (
	InvalidValue  = "preferences: invalid value for %s: %v"
	InvalidColour = "preferences: invalid colour: %s"
)

// Default values.
const (
	DefaultClockSpeed = 500
	DefaultScale      = 10
	DefaultForeground = "#0000fa"
	DefaultBackground = "#000000"
	DefaultBeepFreq   = 440
	DefaultBeepVolume = 0.25
)

// Preferences defines and collates all the preference values used by the
// emulation and the frontends.
type Preferences struct {
	dsk *prefs.Disk

	// the number of cycles executed per second. the timers are decremented
	// once per cycle so this value also determines the speed of the timers
	ClockSpeed prefs.Int

	// the seed for the random number generator. a value of zero means that
	// the seed is based on the current time
	RandSeed prefs.Int

	// the size of each framebuffer pixel on screen
	Scale prefs.Int

	// colours of lit and unlit pixels, in the form #rrggbb
	Foreground prefs.String
	Background prefs.String

	// the beeper tone. if BeepSample is not empty it is the filename of a WAV
	// or MP3 file which is used instead of the square wave at BeepFreq
	BeepFreq   prefs.Int
	BeepVolume prefs.Float
	BeepSample prefs.String
}

func (p *Preferences) String() string {
	return fmt.Sprintf("clock=%dHz scale=%d fg=%s bg=%s beep=%dHz vol=%.2f",
		p.ClockSpeed.Get().(int), p.Scale.Get().(int),
		p.Foreground.String(), p.Background.String(),
		p.BeepFreq.Get().(int), p.BeepVolume.Get().(float64))
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If path is empty the preferences will not be stored on disk.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.ClockSpeed.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(InvalidValue, "clock speed", v)
		}
		return nil
	})
	p.Scale.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 || v.(int) > 40 {
			return curated.Errorf(InvalidValue, "scale", v)
		}
		return nil
	})
	p.BeepFreq.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 20 || v.(int) > 20000 {
			return curated.Errorf(InvalidValue, "beep frequency", v)
		}
		return nil
	})
	p.BeepVolume.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 0.0 || v.(float64) > 1.0 {
			return curated.Errorf(InvalidValue, "beep volume", v)
		}
		return nil
	})
	colourHook := func(v prefs.Value) error {
		_, err := ParseColour(v.(string))
		return err
	}
	p.Foreground.SetHookPre(colourHook)
	p.Background.SetHookPre(colourHook)

	if path == "" {
		return p, nil
	}

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.clockspeed", &p.ClockSpeed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randseed", &p.RandSeed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.scale", &p.Scale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.foreground", &p.Foreground)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.background", &p.Background)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("beeper.freq", &p.BeepFreq)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("beeper.volume", &p.BeepVolume)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("beeper.sample", &p.BeepSample)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.ClockSpeed.Set(DefaultClockSpeed)
	p.RandSeed.Set(0)
	p.Scale.Set(DefaultScale)
	p.Foreground.Set(DefaultForeground)
	p.Background.Set(DefaultBackground)
	p.BeepFreq.Set(DefaultBeepFreq)
	p.BeepVolume.Set(DefaultBeepVolume)
	p.BeepSample.Set("")
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// ParseColour converts a string of the form #rrggbb to a color.RGBA value.
func ParseColour(s string) (color.RGBA, error) {
	var c color.RGBA
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return c, curated.Errorf(InvalidColour, s)
	}
	_, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	if err != nil {
		return c, curated.Errorf(InvalidColour, s)
	}
	c.A = 0xff
	return c, nil
}

// ForegroundColour returns the Foreground preference as a color.RGBA value.
func (p *Preferences) ForegroundColour() color.RGBA {
	c, _ := ParseColour(p.Foreground.String())
	return c
}

// BackgroundColour returns the Background preference as a color.RGBA value.
func (p *Preferences) BackgroundColour() color.RGBA {
	c, _ := ParseColour(p.Background.String())
	return c
}
