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

package playmode_test

import (
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

type mockGUI struct {
	gui.FrameStore
	events chan userinput.Event
	ended  atomic.Bool
}

func newMockGUI() *mockGUI {
	return &mockGUI{
		events: gui.NewEventChannel(),
	}
}

func (m *mockGUI) EventChannel() chan userinput.Event {
	return m.events
}

func (m *mockGUI) Service() {}

func (m *mockGUI) End() {
	m.ended.Store(true)
}

func (m *mockGUI) Destroy(_ io.Writer) {}

func rom(program ...uint16) romloader.Loader {
	rl := romloader.NewLoader("test.ch8")
	for _, op := range program {
		rl.Data = append(rl.Data, uint8(op>>8), uint8(op))
	}
	return rl
}

func play(t *testing.T, rl romloader.Loader, m *mockGUI) chan error {
	t.Helper()

	prefs, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.ClockSpeed.Set(1000))

	result := make(chan error, 1)
	go func() {
		result <- playmode.Play(rl, prefs, m, "")
	}()
	return result
}

func wait(t *testing.T, result chan error) error {
	t.Helper()
	select {
	case err := <-result:
		return err
	case <-time.After(5 * time.Second):
		t.Fatalf("playmode did not end")
	}
	return nil
}

func TestQuit(t *testing.T) {
	m := newMockGUI()

	// clear the screen and loop forever
	result := play(t, rom(0x00e0, 0x1202), m)

	ch := m.events
	ch <- userinput.EventKeyboard{Key: "F2", Down: true}
	ch <- userinput.EventKeyboard{Key: "F2", Down: false}
	ch <- userinput.EventKeyboard{Key: "F2", Down: true}
	ch <- userinput.EventKeyboard{Key: "F1", Down: true}
	ch <- userinput.EventQuit{}

	test.ExpectSuccess(t, wait(t, result))
	test.ExpectSuccess(t, m.ended.Load())

	// the frame is sent by the first cycle after reset
	_, ok := m.Take()
	test.ExpectSuccess(t, ok)
}

func TestEscape(t *testing.T) {
	m := newMockGUI()
	result := play(t, rom(0x1200), m)

	ch := m.events
	ch <- userinput.EventKeyboard{Key: "Escape", Down: true}

	test.ExpectSuccess(t, wait(t, result))
	test.ExpectSuccess(t, m.ended.Load())
}

// the event channel belongs to the GUI from creation so events sent before
// the emulation starts are not lost
func TestEventsBeforePlay(t *testing.T) {
	m := newMockGUI()
	test.ExpectSuccess(t, gui.SendEvent(m.EventChannel(), userinput.EventQuit{}))

	result := play(t, rom(0x1200), m)
	test.ExpectSuccess(t, wait(t, result))
	test.ExpectSuccess(t, m.ended.Load())
	test.ExpectEquality(t, len(m.events), 0)
}

func TestHalt(t *testing.T) {
	m := newMockGUI()

	// SYS instructions are not supported
	result := play(t, rom(0x0123), m)

	err := wait(t, result)
	test.ExpectSuccess(t, curated.Is(err, playmode.PlayError))
	test.ExpectSuccess(t, curated.Has(err, instructions.UnknownOpcode))
	test.ExpectSuccess(t, m.ended.Load())
}

func TestNoROM(t *testing.T) {
	m := newMockGUI()
	result := play(t, romloader.NewLoader(""), m)

	err := wait(t, result)
	test.ExpectSuccess(t, curated.Is(err, playmode.PlayError))
	test.ExpectSuccess(t, m.ended.Load())
}
