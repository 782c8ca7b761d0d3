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

package beeper

import (
	"math"
	"sync/atomic"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/prefs"
)

// the number of samples that are collected before being sent to the mixers.
// a short buffer reduces the lag between video and audio
const bufferLength = 512

// Beeper converts the state of the sound timer into audio samples.
type Beeper struct {
	prefs *preferences.Preferences

	mixers []Mixer

	// the number of samples to produce every cycle. this is unlikely to be a
	// whole number so the fractional part is accumulated in the acc field
	samplesPerCycle float64
	acc             float64

	// the square wave period in samples
	period float64

	// amplitude of the tone. taken from the BeepVolume preference
	amplitude float64

	// if tone is not nil then it is used instead of the square wave. the
	// values are in the range -1.0 to 1.0 at SampleFreq
	tone []float32

	// position in the square wave or tone
	phase int

	buffer []uint8

	// set by the preference hooks. the preferences can be changed from any
	// goroutine but the beeper is only reconfigured by Beep()
	changed atomic.Bool
}

// NewBeeper is the preferred method of initialisation for the Beeper type.
// The beeper is reconfigured whenever the clock speed or beep preferences are
// changed. The change takes effect on the next call to Beep().
func NewBeeper(prefs *preferences.Preferences) (*Beeper, error) {
	bp := &Beeper{
		prefs:  prefs,
		buffer: make([]uint8, 0, bufferLength),
	}

	bp.configure()

	prefs.ClockSpeed.SetHookPost(bp.prefsChanged)
	prefs.BeepFreq.SetHookPost(bp.prefsChanged)
	prefs.BeepVolume.SetHookPost(bp.prefsChanged)

	if fn := prefs.BeepSample.Get().(string); fn != "" {
		if err := bp.LoadTone(fn); err != nil {
			return nil, err
		}
	}

	return bp, nil
}

// configure the beeper using the current preference values
func (bp *Beeper) configure() {
	bp.samplesPerCycle = float64(SampleFreq) / float64(bp.prefs.ClockSpeed.Get().(int))
	bp.period = float64(SampleFreq) / float64(bp.prefs.BeepFreq.Get().(int))
	bp.amplitude = math.Min(1.0, math.Max(0.0, bp.prefs.BeepVolume.Get().(float64)))
}

// AddMixer adds a destination for the audio.
func (bp *Beeper) AddMixer(m Mixer) {
	bp.mixers = append(bp.mixers, m)
}

// SamplesPerCycle returns the number of samples produced by each call to
// Beep(). The value is an average.
func (bp *Beeper) SamplesPerCycle() float64 {
	return bp.samplesPerCycle
}

func (bp *Beeper) prefsChanged(_ prefs.Value) error {
	bp.changed.Store(true)
	return nil
}

// Reconfigure reads the preferences again. Beep() calls it after a change to
// the clock speed or beep preferences. It must not be called at the same time
// as Beep().
func (bp *Beeper) Reconfigure() {
	bp.configure()
	bp.acc = 0
	bp.phase = 0
}

// Beep implements the hardware.AudioSink interface. It produces the samples
// for one cycle of the emulation.
func (bp *Beeper) Beep(active bool) error {
	if bp.changed.CompareAndSwap(true, false) {
		bp.Reconfigure()
	}

	bp.acc += bp.samplesPerCycle
	n := int(bp.acc)
	bp.acc -= float64(n)

	for range n {
		bp.buffer = append(bp.buffer, bp.sample(active))
		if len(bp.buffer) >= bufferLength {
			if err := bp.Flush(); err != nil {
				return err
			}
		}
	}

	return nil
}

// the next sample. the tone always starts at the beginning when the beeper
// becomes active
func (bp *Beeper) sample(active bool) uint8 {
	if !active {
		bp.phase = 0
		return Silence
	}

	var v float64

	if bp.tone != nil {
		v = float64(bp.tone[bp.phase])
		bp.phase++
		if bp.phase >= len(bp.tone) {
			bp.phase = 0
		}
	} else {
		if float64(bp.phase) < bp.period/2 {
			v = 1.0
		} else {
			v = -1.0
		}
		bp.phase++
		if float64(bp.phase) >= bp.period {
			bp.phase = 0
		}
	}

	return uint8(Silence + math.Round(v*bp.amplitude*127))
}

// Flush sends any buffered samples to the mixers.
func (bp *Beeper) Flush() error {
	if len(bp.buffer) == 0 {
		return nil
	}
	for _, m := range bp.mixers {
		if err := m.SetAudio(bp.buffer); err != nil {
			return curated.Errorf("beeper: %v", err)
		}
	}
	bp.buffer = bp.buffer[:0]
	return nil
}

// EndMixing flushes any buffered samples and then ends mixing for every
// mixer. All mixers have EndMixing() called even if an earlier one fails.
// The first error is returned.
func (bp *Beeper) EndMixing() error {
	err := bp.Flush()
	for _, m := range bp.mixers {
		if e := m.EndMixing(); e != nil {
			logger.Log(logger.Allow, "beeper", e)
			if err == nil {
				err = curated.Errorf("beeper: %v", e)
			}
		}
	}
	return err
}
