// This file is part of Gruesome.
//
// Gruesome is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gruesome is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gruesome.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/skeptomai/gruesome-sub000/debugger"
	"github.com/skeptomai/gruesome-sub000/disassembly"
	"github.com/skeptomai/gruesome-sub000/environment"
	"github.com/skeptomai/gruesome-sub000/logger"
	"github.com/skeptomai/gruesome-sub000/machine"
	"github.com/skeptomai/gruesome-sub000/modalflag"
	"github.com/skeptomai/gruesome-sub000/performance"
	"github.com/skeptomai/gruesome-sub000/regression"
	"github.com/skeptomai/gruesome-sub000/sound"
	"github.com/skeptomai/gruesome-sub000/statsview"
	"github.com/skeptomai/gruesome-sub000/storyloader"
	"github.com/skeptomai/gruesome-sub000/terminal"
	"github.com/skeptomai/gruesome-sub000/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE", "REGRESS")
	md.AdditionalHelp(fmt.Sprintf("%s (%s)", version.ApplicationName, version.Version))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "REGRESS":
		err = regress(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// newEnvironment prepares the environment shared by every mode: the
// preferences with any command line overrides applied and the random number
// source.
func newEnvironment(predictable bool, soundDir string, saveDir string, transcript string) (*environment.Environment, error) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}

	if soundDir != "" {
		env.Prefs.SoundDir = soundDir
	}
	if saveDir != "" {
		env.Prefs.SaveDir = saveDir
	}
	if transcript != "" {
		env.Prefs.Transcript = transcript
	}

	if predictable {
		env.Random.ZeroSeed = true
		env.Random.SeedRandom()
	}

	return env, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	plain := md.AddBool("plain", false, "use the plain line-based terminal")
	predictable := md.AddBool("predictable", false, "seed the random number generator with zero")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	soundDir := md.AddString("sounds", "", "directory of sampled sound effects")
	saveDir := md.AddString("saves", "", "directory for saved states")
	transcript := md.AddString("transcript", "", "append story output to file")
	stats := md.AddBool("stats", false, "launch statistics server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Println("! statsview not available. build with statsview tag")
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("story file required for %s mode", md)
	case 1:
		env, err := newEnvironment(*predictable, *soundDir, *saveDir, *transcript)
		if err != nil {
			return err
		}

		ld := storyloader.NewLoader(md.GetArg(0))

		m, err := machine.NewMachine(env, &ld)
		if err != nil {
			return err
		}
		defer m.End()

		m.AttachAudio(sound.NewEffects(env))

		if *plain {
			pt := terminal.NewPlainTerminal(env)
			m.AttachDisplay(pt)
			m.AttachInput(pt)
			m.AttachSaves(pt)
			return m.Run(nil)
		}

		rt, err := terminal.NewRawTerminal(env)
		if err != nil {
			// no controllable terminal. a plain terminal still works on a
			// dumb pipe so fall back rather than fail
			logger.Logf(env, "terminal", "falling back to plain terminal: %v", err)
			pt := terminal.NewPlainTerminal(env)
			m.AttachDisplay(pt)
			m.AttachInput(pt)
			m.AttachSaves(pt)
			return m.Run(nil)
		}
		defer rt.CleanUp()

		// the raw terminal must be returned to canonical mode however the
		// program ends
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		go func() {
			<-intChan
			rt.CleanUp()
			fmt.Print("\r\n")
			os.Exit(10)
		}()

		m.AttachDisplay(rt)
		m.AttachInput(rt)
		m.AttachSaves(rt)

		return m.Run(nil)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	predictable := md.AddBool("predictable", false, "seed the random number generator with zero")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	saveDir := md.AddString("saves", "", "directory for saved states")
	profile := md.AddBool("profile", false, "run debugger through cpu profiler")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("story file required for %s mode", md)
	case 1:
		env, err := newEnvironment(*predictable, "", *saveDir, "")
		if err != nil {
			return err
		}

		ld := storyloader.NewLoader(md.GetArg(0))

		m, err := machine.NewMachine(env, &ld)
		if err != nil {
			return err
		}
		defer m.End()

		// the debugger interleaves its own prompts with story output so the
		// plain terminal is the only one that makes sense
		pt := terminal.NewPlainTerminal(env)
		m.AttachDisplay(pt)
		m.AttachInput(pt)
		m.AttachSaves(pt)

		dbg := debugger.NewDebugger(env, m)

		dbgRun := func() error {
			return dbg.Start()
		}

		// if profile generation has been requested then pass the dbgRun()
		// function prepared above through the ProfileCPU() command
		if *profile {
			err := performance.ProfileCPU("debug.cpu.profile", dbgRun)
			if err != nil {
				return err
			}
			return performance.ProfileMem("debug.mem.profile")
		}

		return dbgRun()

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("story file required for %s mode", md)
	case 1:
		ld := storyloader.NewLoader(md.GetArg(0))

		dsm, err := disassembly.FromLoader(&ld)
		if err != nil {
			return err
		}

		return dsm.Write(os.Stdout)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRun(md.Output, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(md.Output)

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless the "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		md.NewMode()

		instructions := md.AddInt("instructions", 10000, "number of instructions to execute")
		script := md.AddString("script", "", "input lines separated by semicolons")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("story file required for %s mode", md)
		case 1:
			reg := regression.NewStoryRegression(md.GetArg(0), *instructions, *script)
			return regression.RegressAdd(md.Output, reg)
		default:
			return fmt.Errorf("too many arguments for %s mode", md)
		}
	}

	return nil
}

// yesReader always reads 'y'. used for confirmation bypass.
type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "perform cpu and memory profiling")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("story file required for %s mode", md)
	case 1:
		env, err := newEnvironment(false, "", "", "")
		if err != nil {
			return err
		}

		ld := storyloader.NewLoader(md.GetArg(0))

		return performance.Check(env, md.Output, *profile, &ld, *duration)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}
