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

package terminal

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/otoaudio"
	"github.com/jetsetilly/gopher8/gui/terminal/easyterm"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// Sentinal error returned by NewTerminal().
const TerminalError = "terminal: %v"

// Terminal draws the framebuffer in a text terminal.
type Terminal struct {
	gui.FrameStore

	easyterm.Terminal

	prefs *preferences.Preferences

	eventChannel chan userinput.Event

	// raw input from the input goroutine
	input chan []byte

	end     chan struct{}
	endOnce sync.Once

	keys *keys

	// reused by Service() for every frame
	s strings.Builder

	audio *otoaudio.Audio
}

// NewTerminal is the preferred method of initialisation for the Terminal type.
// Both files must be terminals. User input is sent on the events channel.
func NewTerminal(prefs *preferences.Preferences, input *os.File, output *os.File, events chan userinput.Event) (*Terminal, error) {
	trm := &Terminal{
		prefs:        prefs,
		eventChannel: events,
		input:        make(chan []byte, 16),
		end:          make(chan struct{}),
		keys:         newKeys(),
	}

	err := trm.Initialise(input, output)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	geom := trm.Geometry()
	if geom.Cols < display.Width || geom.Rows < Rows {
		logger.Logf(logger.Allow, "terminal", "terminal too small (%dx%d). %dx%d required",
			geom.Cols, geom.Rows, display.Width, Rows)
	}

	trm.RawMode()
	trm.Print("%s%s", easyterm.ClearScreen, easyterm.HideCursor)

	go func() {
		for {
			b := make([]byte, 32)
			n, err := trm.Read(b)
			if err != nil {
				return
			}
			select {
			case trm.input <- b[:n]:
			case <-trm.end:
				return
			}
		}
	}()

	// no audio is not a fatal error
	trm.audio, err = otoaudio.NewAudio()
	if err != nil {
		logger.Log(logger.Allow, "terminal", err)
		trm.audio = nil
	}

	return trm, nil
}

// EventChannel implements the gui.GUI interface.
func (trm *Terminal) EventChannel() chan userinput.Event {
	return trm.eventChannel
}

// AudioMixer implements the gui.AudioGUI interface.
func (trm *Terminal) AudioMixer() beeper.Mixer {
	if trm.audio == nil {
		return nil
	}
	return trm.audio
}

// End implements the gui.GUI interface.
func (trm *Terminal) End() {
	trm.endOnce.Do(func() {
		close(trm.end)
	})
}

// Destroy implements the gui.GUI interface.
func (trm *Terminal) Destroy(_ io.Writer) {
	trm.End()
	trm.Print("%s%s%s", easyterm.NormalPen, easyterm.ShowCursor, easyterm.CursorMove(Rows+1, 1))
	trm.CleanUp()
}

func (trm *Terminal) send(events []userinput.Event) {
	for _, ev := range events {
		gui.SendEvent(trm.eventChannel, ev)
	}
}

// Service implements the gui.GUI interface.
func (trm *Terminal) Service() {
	select {
	case <-trm.end:
		return
	case data := <-trm.input:
		trm.send(trm.keys.input(data, time.Now()))
	case <-time.After(5 * time.Millisecond):
	}

	trm.send(trm.keys.release(time.Now()))

	frame, ok := trm.Take()
	if !ok {
		return
	}

	trm.s.Reset()
	render(&trm.s, frame, trm.prefs.ForegroundColour(), trm.prefs.BackgroundColour())
	trm.Print("%s", trm.s.String())
}
