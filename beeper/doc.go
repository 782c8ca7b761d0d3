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

// Package beeper turns the sound timer signal into audio.
//
// The machine has only one sound. While the sound timer is non-zero a tone is
// played, otherwise there is silence. The Beeper type receives the state of the
// sound timer once per cycle, through the Beep() function, and produces the
// correct number of samples for the duration of that cycle.
//
// Samples are unsigned 8 bit mono PCM at SampleFreq. The value 128 is silence.
// Samples are sent to any number of Mixer implementations in chunks.
//
// The tone is a square wave by default. A recorded sample can be used instead
// with LoadTone(). WAV and MP3 files are supported.
package beeper
