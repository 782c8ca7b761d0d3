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

package sdlaudio

import (
	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error returned by NewAudio().
const OpenError = "sdlaudio: %v"

// the number of samples requested from the audio device for each callback. the
// same value as the chunk size of the beeper is a good choice
const bufferLength = 512

// if the queue grows beyond this number of bytes then the audio is lagging the
// emulation and the queue is cleared
const maxQueueLength = bufferLength * 8

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// the most recent chunk. queued again when the device runs dry so that
	// there is no click caused by the device falling back to silence
	last []uint8

	// number of times the queue was cleared because of lag and the number of
	// times the last chunk was repeated because of an underrun
	lagged   int
	repeated int
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// SDL audio subsystem must have been initialised.
func NewAudio() (*Audio, error) {
	aud := &Audio{
		last: make([]uint8, bufferLength),
	}

	spec := &sdl.AudioSpec{
		Freq:     beeper.SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf(OpenError, err)
	}
	aud.spec = actualSpec

	for i := range aud.last {
		aud.last[i] = aud.spec.Silence
	}

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the beeper.Mixer interface.
func (aud *Audio) SetAudio(samples []uint8) error {
	queued := sdl.GetQueuedAudioSize(aud.id)

	if queued > maxQueueLength {
		sdl.ClearQueuedAudio(aud.id)
		aud.lagged++
	} else if queued == 0 {
		if err := sdl.QueueAudio(aud.id, aud.last); err != nil {
			return curated.Errorf(OpenError, err)
		}
		aud.repeated++
	}

	if err := sdl.QueueAudio(aud.id, samples); err != nil {
		return curated.Errorf(OpenError, err)
	}

	aud.last = append(aud.last[:0], samples...)

	return nil
}

// EndMixing implements the beeper.Mixer interface.
func (aud *Audio) EndMixing() error {
	sdl.PauseAudioDevice(aud.id, true)
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	logger.Logf(logger.Allow, "sdlaudio", "lagged %d times, repeated %d times", aud.lagged, aud.repeated)
	return nil
}
