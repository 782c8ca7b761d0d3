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

package sdl

import (
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

func keyMod() userinput.KeyMod {
	mod := sdl.GetModState()
	if mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
		return userinput.KeyModAlt
	}
	if mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		return userinput.KeyModShift
	}
	if mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

// Service implements the gui.GUI interface.
func (scr *SDL) Service() {
	if scr.ended.Load() {
		return
	}

	// loop until there are no more events to retrieve. the timeout of the
	// wait stops the main thread from spinning when there is nothing to do
	empty := false
	for !empty {
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			gui.SendEvent(scr.eventChannel, userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			gui.SendEvent(scr.eventChannel, userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
				Mod:    keyMod(),
			})

		case nil:
			empty = true
		}
	}

	frame, ok := scr.Take()
	if !ok {
		return
	}

	gui.Pixels(scr.pixels, frame, scr.prefs.ForegroundColour(), scr.prefs.BackgroundColour())
	if err := scr.present(); err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
}
