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

// SampleFreq is the sample rate of the audio produced by the Beeper.
const SampleFreq = 44100

// Silence is the sample value that represents silence.
const Silence = 128

// Mixer implementations receive the audio produced by the Beeper.
type Mixer interface {
	// SetAudio receives a chunk of samples. The slice should not be retained
	// after the function returns.
	SetAudio(samples []uint8) error

	// EndMixing is called when no more audio will be produced.
	EndMixing() error
}
