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

package main

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/beeper"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/screenshot"
)

// heldKeys is a keypad with the same keys held down for the entire run.
type heldKeys keypad.State

func (k heldKeys) Keypad() keypad.State {
	return keypad.State(k)
}

// headless runs the ROM for the number of cycles without a GUI. The final
// frame is written to output as text, or saved as a PNG if pngFile is not
// empty.
//
// If dig is true then digests of the video and audio output are also written.
// The digests are a quick way of comparing the output of two runs.
//
// An error that halts the machine does not prevent the frame being written.
// The error is returned afterwards.
func headless(output io.Writer, rl romloader.Loader, prefs *preferences.Preferences, cycles uint64, keys keypad.State, pngFile string, dig bool) error {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, prefs)
	if err != nil {
		return err
	}

	c8, err := hardware.NewChip8(env)
	if err != nil {
		return err
	}

	err = c8.AttachROM(rl)
	if err != nil {
		return err
	}

	c8.AttachKeypad(heldKeys(keys))

	var video *digest.Video
	var audio *digest.Audio
	var bp *beeper.Beeper

	if dig {
		video = digest.NewVideo()
		audio = digest.NewAudio()
		bp, err = beeper.NewBeeper(prefs)
		if err != nil {
			return err
		}
		bp.AddMixer(audio)
		c8.AttachFrameSink(video)
		c8.AttachAudio(bp)
	}

	runErr := c8.RunForCycleCount(cycles, nil)

	if bp != nil {
		if err := bp.EndMixing(); err != nil {
			return err
		}
	}

	frame, _ := c8.Frame()

	if pngFile != "" {
		pal := screenshot.Palette{
			Foreground: prefs.ForegroundColour(),
			Background: prefs.BackgroundColour(),
		}
		err = screenshot.Save(pngFile, frame, pal, prefs.Scale.Get().(int))
		if err != nil {
			return err
		}
	} else {
		fmt.Fprint(output, frame.String())
	}

	fmt.Fprintf(output, "%d cycles\n", c8.Cycles())

	if dig {
		fmt.Fprintf(output, "video: %s (%d frames)\n", video.Hash(), video.Frames())
		fmt.Fprintf(output, "audio: %s\n", audio.Hash())
	}

	return runErr
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	cycles := md.AddInt("cycles", 1000, "number of cycles to run")
	png := md.AddString("screenshot", "", "save final frame to PNG file rather than printing it")
	keys := md.AddString("keys", "", "keypad keys held down for the entire run. for example \"0,5,A\"")
	dig := md.AddBool("digest", false, "print digests of the video and audio output")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsArg := md.AddString("prefs", "", "preferences to override")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogging(md, *log)

	rl, err := romArg(md)
	if err != nil {
		return err
	}

	if *cycles < 0 {
		return fmt.Errorf("cycles must not be negative: %d", *cycles)
	}

	held, err := keypad.ParseKeys(*keys)
	if err != nil {
		return err
	}

	prf, err := loadPreferences(*prefsArg)
	if err != nil {
		return err
	}

	return headless(md.Output, rl, prf, uint64(*cycles), held, *png, *dig)
}
