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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the length of the buffer used to create the audio digest. the first
// sha1.Size bytes are the previous digest value
const audioBufferLength = 1024 + sha1.Size

// Audio is a fingerprint of the audio sent to it.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: sha1.Size,
	}
}

// Hash implements the digest.Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = sha1.Size
}

// SetAudio implements the beeper.Mixer interface.
func (dig *Audio) SetAudio(samples []uint8) error {
	for len(samples) > 0 {
		n := copy(dig.buffer[dig.bufferCt:], samples)
		samples = samples[n:]
		dig.bufferCt += n
		if dig.bufferCt >= len(dig.buffer) {
			dig.flush()
		}
	}
	return nil
}

func (dig *Audio) flush() {
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = sha1.Size
}

// EndMixing implements the beeper.Mixer interface. Any buffered samples are
// included in the digest.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt > sha1.Size {
		dig.flush()
	}
	return nil
}
