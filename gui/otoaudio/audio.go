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

package otoaudio

import (
	"time"

	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/ebitengine/oto/v3"
)

// Sentinal error returned by NewAudio().
const OtoError = "otoaudio: %v"

// the amount of audio buffered by the device
const bufferDuration = 50 * time.Millisecond

// the maximum amount of audio held in the queue. about a tenth of a second
const queueLimit = beeper.SampleFreq / 10

// Audio outputs sound using the oto library.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player
	queue  *queue
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() (*Audio, error) {
	op := &oto.NewContextOptions{
		SampleRate:   beeper.SampleFreq,
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
		BufferSize:   bufferDuration,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf(OtoError, err)
	}
	<-ready

	aud := &Audio{
		ctx:   ctx,
		queue: newQueue(queueLimit),
	}

	aud.player = ctx.NewPlayer(aud.queue)
	aud.player.Play()

	logger.Logf(logger.Allow, "otoaudio", "frequency: %d samples/sec", beeper.SampleFreq)

	return aud, nil
}

// SetAudio implements the beeper.Mixer interface.
func (aud *Audio) SetAudio(samples []uint8) error {
	aud.queue.push(samples)
	return nil
}

// EndMixing implements the beeper.Mixer interface.
func (aud *Audio) EndMixing() error {
	logger.Logf(logger.Allow, "otoaudio", "underrun %d times, overrun %d times", aud.queue.underrun, aud.queue.overrun)
	if err := aud.player.Close(); err != nil {
		return curated.Errorf(OtoError, err)
	}
	return nil
}
