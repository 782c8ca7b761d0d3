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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal errors returned by LoadTone().
const (
	UnsupportedTone = "beeper: unsupported tone file: %s"
	ToneError       = "beeper: tone: %v"
	EmptyTone       = "beeper: tone is empty: %s"
)

// LoadTone replaces the square wave with the recorded sample in the named
// file. The file can be a WAV or an MP3 file. Only the first channel of a
// stereo file is used. The sample is resampled to SampleFreq.
//
// The tone loops for as long as the sound timer is active.
func (bp *Beeper) LoadTone(filename string) error {
	var data []float32
	var rate float64
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		data, rate, err = loadWAV(filename)
	case ".mp3":
		data, rate, err = loadMP3(filename)
	default:
		return curated.Errorf(UnsupportedTone, filename)
	}
	if err != nil {
		return curated.Errorf(ToneError, err)
	}

	data = resample(data, rate, SampleFreq)
	if len(data) == 0 {
		return curated.Errorf(EmptyTone, filename)
	}

	bp.tone = data
	bp.phase = 0

	logger.Logf(logger.Allow, "beeper", "tone loaded from %s (%d samples)", filepath.Base(filename), len(data))

	return nil
}

// ClearTone reverts to the square wave.
func (bp *Beeper) ClearTone() {
	bp.tone = nil
	bp.phase = 0
}

func loadWAV(filename string) ([]float32, float64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, curated.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	// 8 bit wav data is unsigned. all other bit depths are signed
	var offset, scale float32
	if dec.BitDepth == 8 {
		offset = 128
		scale = 128
	} else {
		scale = float32(int(1) << (dec.BitDepth - 1))
	}

	// copy first channel only of data stream
	data := make([]float32, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		data = append(data, (float32(buf.Data[i])-offset)/scale)
	}

	return data, float64(dec.SampleRate), nil
}

func loadMP3(filename string) ([]float32, float64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, err
	}

	// the decoded stream is always 16 bit little endian with two channels
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, err
	}

	// left channel only
	data := make([]float32, 0, len(raw)/4)
	for i := 0; i+1 < len(raw); i += 4 {
		s := int16(uint16(raw[i]) | uint16(raw[i+1])<<8)
		data = append(data, float32(s)/32768)
	}

	return data, float64(dec.SampleRate()), nil
}

// resample data using the nearest sample
func resample(data []float32, from float64, to float64) []float32 {
	if from <= 0 || from == to {
		return data
	}
	n := int(float64(len(data)) * to / from)
	out := make([]float32, n)
	for i := range out {
		j := int(float64(i) * from / to)
		if j >= len(data) {
			j = len(data) - 1
		}
		out[i] = data[j]
	}
	return out
}
