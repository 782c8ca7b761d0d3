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

package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// Sentinal error returned by Play().
const PlayError = "playmode: %v"

type playmode struct {
	c8  *hardware.Chip8
	scr gui.GUI

	keypad *userinput.Keypad

	// the current emulation state. Running or Paused until the user quits
	state govern.State

	lmtr *limiter.Limiter

	userinput chan userinput.Event
	intChan   chan os.Signal
}

// Play creates the emulation for the ROM and runs it until the user quits.
// Frames are sent to the GUI and user input is received on the GUI's event
// channel. The GUI's
// End() function is called before Play() returns.
//
// If wav is not empty then the audio is also recorded to the named file.
func Play(rl romloader.Loader, prefs *preferences.Preferences, scr gui.GUI, wav string) (rerr error) {
	defer scr.End()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil, prefs)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	c8, err := hardware.NewChip8(env)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	err = c8.AttachROM(rl)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	pl := &playmode{
		c8:        c8,
		scr:       scr,
		keypad:    &userinput.Keypad{},
		state:     govern.Running,
		userinput: scr.EventChannel(),
		intChan:   make(chan os.Signal, 1),
	}

	bp, err := beeper.NewBeeper(env.Prefs)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	if ag, ok := scr.(gui.AudioGUI); ok {
		if m := ag.AudioMixer(); m != nil {
			bp.AddMixer(m)
		}
	}
	if wav != "" {
		ww, err := wavwriter.New(wav)
		if err != nil {
			return curated.Errorf(PlayError, err)
		}
		bp.AddMixer(ww)
	}
	defer func() {
		if err := bp.EndMixing(); err != nil && rerr == nil {
			rerr = curated.Errorf(PlayError, err)
		}
	}()

	pl.lmtr, err = limiter.NewLimiter(env.Prefs.ClockSpeed.Get().(int))
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer pl.lmtr.End()

	c8.AttachKeypad(pl.keypad)
	c8.AttachFrameSink(scr)
	c8.AttachAudio(bp)

	// the interrupt signal ends the emulation in an orderly fashion so that
	// the audio is completed
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	logger.Logf(logger.Allow, "playmode", "playing %s at %dHz", rl.ShortName(), pl.lmtr.Rate())

	err = c8.Run(pl.continueCheck)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	return nil
}

func (pl *playmode) continueCheck() (govern.State, error) {
	// the limiter paces the emulation while paused too. the event handler
	// would otherwise be called in a tight loop
	pl.lmtr.Wait()
	return pl.eventHandler()
}
