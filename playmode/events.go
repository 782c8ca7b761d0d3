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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/screenshot"
	"github.com/jetsetilly/gopher8/userinput"
)

func (pl *playmode) eventHandler() (govern.State, error) {
	select {
	case <-pl.intChan:
		logger.Log(logger.Allow, "playmode", "interrupted")
		return govern.Ending, nil

	case ev := <-pl.userinput:
		return pl.userInputHandler(ev)

	default:
	}

	return pl.state, nil
}

func (pl *playmode) userInputHandler(ev userinput.Event) (govern.State, error) {
	action := userinput.HandleUserInput(ev, pl.keypad)

	switch action {
	case userinput.ActionQuit:
		return govern.Ending, nil

	case userinput.ActionReset:
		pl.keypad.Clear()
		if err := pl.c8.Reset(); err != nil {
			return govern.Ending, curated.Errorf(PlayError, err)
		}
		pl.state = govern.Running
		logger.Log(logger.Allow, "playmode", "reset")

	case userinput.ActionPause:
		if pl.state == govern.Paused {
			pl.state = govern.Running
		} else {
			pl.state = govern.Paused
		}
		logger.Logf(logger.Allow, "playmode", "emulation state: %s", pl.state)

	case userinput.ActionScreenshot:
		prefs := pl.c8.Env.Prefs
		pal := screenshot.Palette{
			Foreground: prefs.ForegroundColour(),
			Background: prefs.BackgroundColour(),
		}
		fn, err := screenshot.SaveUnique(pl.c8.ROM.ShortName(), pl.c8.FB.Snapshot(), pal, prefs.Scale.Get().(int))
		if err != nil {
			logger.Log(logger.Allow, "playmode", err)
		} else {
			logger.Logf(logger.Allow, "playmode", "screenshot saved: %s", fn)
		}
	}

	return pl.state, nil
}
