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
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/ebitengui"
	"github.com/jetsetilly/gopher8/gui/sdl"
	"github.com/jetsetilly/gopher8/gui/terminal"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/resources"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

// GUIs are created and serviced on the main thread. the main goroutine must
// stay on the main OS thread for that to be true.
func init() {
	runtime.LockOSThread()
}

type stateReq string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the playmode package provides its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// the creator function returns a nil pointer of a concrete
				// type on error. the interface value would not be nil
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "RUN":
		err = run(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// preferences are loaded from the resources directory. command line
// preferences take priority over those on disk.
func loadPreferences(cmdline string) (*preferences.Preferences, error) {
	if cmdline != "" {
		prefs.PushCommandLineStack(cmdline)
		defer popPreferences()
	}

	pth, err := resources.JoinPath(preferences.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	return preferences.NewPreferences(pth)
}

// popPreferences forgets the command line preferences. any that were not used
// are probably misspelt so they are logged.
func popPreferences() {
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
	}
}

// romArg returns the loader for the single remaining argument of the mode.
func romArg(md *modalflag.Modes) (romloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return romloader.Loader{}, fmt.Errorf("rom required for %s mode", md)
	case 1:
		return romloader.NewLoader(md.GetArg(0)), nil
	}
	return romloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

func setLogging(md *modalflag.Modes, echo bool) {
	if echo {
		logger.SetEcho(md.Output, true)
	} else {
		logger.SetEcho(nil, false)
	}
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	guiType := md.AddString("gui", "SDL", "gui to use: SDL, EBITEN, TERM")
	scale := md.AddInt("scale", 0, "size of each framebuffer pixel (SDL and EBITEN only)")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsArg := md.AddString("prefs", "", "preferences to override. for example \"hardware.clockspeed::700\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	rl, err := romArg(md)
	if err != nil {
		return err
	}

	// the scale flag is a command line preference like any other. it is not
	// saved to disk
	cmdline := *prefsArg
	if *scale > 0 {
		cmdline = fmt.Sprintf("display.scale::%d; %s", *scale, cmdline)
	}

	prf, err := loadPreferences(cmdline)
	if err != nil {
		return err
	}

	// the terminal gui draws over the log so echoing is only allowed for the
	// window guis
	gt := strings.ToUpper(*guiType)
	setLogging(md, *log && gt != "TERM")

	// the event channel is created here and given to the gui on the main
	// thread. it never changes after that
	events := gui.NewEventChannel()

	sync.creator <- func() (GuiCreator, error) {
		switch gt {
		case "SDL":
			return sdl.NewSDL(prf, rl.ShortName(), events)
		case "EBITEN":
			return ebitengui.NewEbiten(prf, rl.ShortName(), events)
		case "TERM":
			return terminal.NewTerminal(prf, os.Stdin, os.Stdout, events)
		}
		return nil, fmt.Errorf("unknown gui: %s", *guiType)
	}

	var scr gui.GUI
	select {
	case g := <-sync.creation:
		scr = g.(gui.GUI)
	case err := <-sync.creationError:
		return err
	}

	// playmode handles the interrupt signal itself
	sync.state <- stateRequest{req: reqNoIntSig}

	err = playmode.Play(rl, prf, scr, *wav)
	if err != nil {
		return err
	}

	return prf.Save()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	uncapped := md.AddBool("uncapped", true, "run the emulation as fast as possible")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsArg := md.AddString("prefs", "", "preferences to override")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogging(md, *log)

	rl, err := romArg(md)
	if err != nil {
		return err
	}

	prf, err := loadPreferences(*prefsArg)
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	return performance.Check(md.Output, prof, rl, prf, *uncapped, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(md.Output, version.Build())
	if *revision {
		_, rev, _ := version.Version()
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}

