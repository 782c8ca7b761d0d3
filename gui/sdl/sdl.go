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
	"fmt"
	"io"
	"sync/atomic"

	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error returned by NewSDL().
const SDLError = "sdl: %v"

// SDL is a window showing the framebuffer.
type SDL struct {
	gui.FrameStore

	prefs *preferences.Preferences

	// connects SDL Service() with the emulation. set on creation only
	eventChannel chan userinput.Event

	// set by End()
	ended atomic.Bool

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying to
	// the renderer
	pixels []uint8

	// nil if audio could not be initialised
	audio *sdlaudio.Audio
}

// NewSDL is the preferred method of initialisation for the SDL type. The
// title is added to the window's title bar. User input is sent on the events
// channel.
//
// MUST ONLY be called from the main thread.
func NewSDL(prefs *preferences.Preferences, title string, events chan userinput.Event) (*SDL, error) {
	scr := &SDL{
		prefs:        prefs,
		eventChannel: events,
		pixels:       make([]uint8, gui.PixelsSize),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// MOUSEMOTION events fill up the event queue pretty quickly and we have no
	// use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	if title != "" {
		title = fmt.Sprintf("%s - %s", version.ApplicationName, title)
	} else {
		title = version.ApplicationName
	}

	scale := int32(prefs.Scale.Get().(int))

	scr.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		display.Width*scale, display.Height*scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// the texture is the same size as the framebuffer. scaling is applied
	// when the texture is copied to the renderer
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Width, display.Height)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// start with a blank screen in the background colour
	gui.Pixels(scr.pixels, display.Frame{}, prefs.ForegroundColour(), prefs.BackgroundColour())
	if err := scr.present(); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// no audio is not a fatal error
	scr.audio, err = sdlaudio.NewAudio()
	if err != nil {
		logger.Log(logger.Allow, "sdl", err)
		scr.audio = nil
	}

	return scr, nil
}

// EventChannel implements the gui.GUI interface.
func (scr *SDL) EventChannel() chan userinput.Event {
	return scr.eventChannel
}

// AudioMixer implements the gui.AudioGUI interface.
func (scr *SDL) AudioMixer() beeper.Mixer {
	if scr.audio == nil {
		return nil
	}
	return scr.audio
}

// End implements the gui.GUI interface.
func (scr *SDL) End() {
	scr.ended.Store(true)
}

// Destroy implements the gui.GUI interface.
func (scr *SDL) Destroy(output io.Writer) {
	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			output.Write([]byte(err.Error()))
		}
	}
	if scr.renderer != nil {
		if err := scr.renderer.Destroy(); err != nil {
			output.Write([]byte(err.Error()))
		}
	}
	if scr.window != nil {
		if err := scr.window.Destroy(); err != nil {
			output.Write([]byte(err.Error()))
		}
	}
	sdl.Quit()
}

func (scr *SDL) present() error {
	err := scr.texture.Update(nil, scr.pixels, display.Width*gui.PixelDepth)
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}
