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

// Package digest is used to create fingerprints of the emulation output. The
// Video type implements the hardware.FrameSink interface and the Audio type
// implements the beeper.Mixer interface.
//
// Digests are chained. Each new value is calculated from the data and the
// previous value. Two emulations that produce the same sequence of frames (or
// samples) will have the same digest.
//
// The digest values are SHA-1 hashes. This is not a cryptographic task.
package digest

// Digest implementations compute a fingerprint of the output they receive.
type Digest interface {
	Hash() string
	ResetDigest()
}
