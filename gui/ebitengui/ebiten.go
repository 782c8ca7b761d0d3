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

package ebitengui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/otoaudio"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Ebiten is a window showing the framebuffer. It implements the ebiten.Game
// interface.
type Ebiten struct {
	gui.FrameStore

	prefs *preferences.Preferences

	eventChannel chan userinput.Event

	end     chan struct{}
	endOnce sync.Once

	// RunGame() has been called. main thread only
	running bool

	pixels []uint8

	// reused by Update() every frame
	keys []ebiten.Key

	audio *otoaudio.Audio
}

// NewEbiten is the preferred method of initialisation for the Ebiten type.
// User input is sent on the events channel.
func NewEbiten(prefs *preferences.Preferences, title string, events chan userinput.Event) (*Ebiten, error) {
	eb := &Ebiten{
		prefs:        prefs,
		eventChannel: events,
		end:          make(chan struct{}),
		pixels:       make([]uint8, gui.PixelsSize),
		keys:         make([]ebiten.Key, 0, 16),
	}

	gui.Pixels(eb.pixels, display.Frame{}, prefs.ForegroundColour(), prefs.BackgroundColour())

	if title != "" {
		title = fmt.Sprintf("%s - %s", version.ApplicationName, title)
	} else {
		title = version.ApplicationName
	}

	scale := prefs.Scale.Get().(int)
	ebiten.SetWindowSize(display.Width*scale, display.Height*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)

	// no audio is not a fatal error
	var err error
	eb.audio, err = otoaudio.NewAudio()
	if err != nil {
		logger.Log(logger.Allow, "ebiten", err)
		eb.audio = nil
	}

	return eb, nil
}

// EventChannel implements the gui.GUI interface.
func (eb *Ebiten) EventChannel() chan userinput.Event {
	return eb.eventChannel
}

// AudioMixer implements the gui.AudioGUI interface.
func (eb *Ebiten) AudioMixer() beeper.Mixer {
	if eb.audio == nil {
		return nil
	}
	return eb.audio
}

// End implements the gui.GUI interface.
func (eb *Ebiten) End() {
	eb.endOnce.Do(func() {
		close(eb.end)
	})
}

// Destroy implements the gui.GUI interface.
func (eb *Ebiten) Destroy(_ io.Writer) {
	eb.End()
}

// Service implements the gui.GUI interface.
func (eb *Ebiten) Service() {
	if !eb.running {
		eb.running = true
		if err := ebiten.RunGame(eb); err != nil {
			logger.Log(logger.Allow, "ebiten", err)
		}

		// the window has closed but the emulation may not know that yet
		gui.SendEvent(eb.eventChannel, userinput.EventQuit{})
		return
	}

	// RunGame() can not be called more than once so there is nothing for
	// Service() to do other than to stop the main thread from spinning
	select {
	case <-eb.end:
	case <-time.After(10 * time.Millisecond):
	}
}

func keyName(k ebiten.Key) string {
	return strings.TrimPrefix(k.String(), "Digit")
}

func keyMod() userinput.KeyMod {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyAlt):
		return userinput.KeyModAlt
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		return userinput.KeyModShift
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

// Update implements the ebiten.Game interface.
func (eb *Ebiten) Update() error {
	select {
	case <-eb.end:
		return ebiten.Termination
	default:
	}

	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	mod := keyMod()

	eb.keys = inpututil.AppendJustPressedKeys(eb.keys[:0])
	for _, k := range eb.keys {
		gui.SendEvent(eb.eventChannel, userinput.EventKeyboard{Key: keyName(k), Down: true, Mod: mod})
	}

	eb.keys = inpututil.AppendJustReleasedKeys(eb.keys[:0])
	for _, k := range eb.keys {
		gui.SendEvent(eb.eventChannel, userinput.EventKeyboard{Key: keyName(k), Down: false, Mod: mod})
	}

	if frame, ok := eb.Take(); ok {
		gui.Pixels(eb.pixels, frame, eb.prefs.ForegroundColour(), eb.prefs.BackgroundColour())
	}

	return nil
}

// Draw implements the ebiten.Game interface.
func (eb *Ebiten) Draw(screen *ebiten.Image) {
	screen.WritePixels(eb.pixels)
}

// Layout implements the ebiten.Game interface. The screen is always the size
// of the framebuffer. Ebitengine scales it to fit the window.
func (eb *Ebiten) Layout(_, _ int) (int, int) {
	return display.Width, display.Height
}
