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

// Package sound implements the peripherals.Audio interface. Sound effects
// one and two are the standard high and low bleeps and come out as the
// terminal bell. Higher numbered effects are sampled sounds supplied
// alongside the story file as wav or mp3, decoded up front and keyed by
// their effect number.
package sound

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/skeptomai/gruesome-sub000/environment"
	"github.com/skeptomai/gruesome-sub000/logger"
)

// sentinal errors returned by the sound package
const (
	SoundError = "sound: %v"
)

// tag string used in calls to Log()
const soundLogTag = "sound"

// Effects implements the peripherals.Audio interface.
type Effects struct {
	env *environment.Environment

	// where the bell character goes
	bell io.Writer

	// decoded samples keyed by effect number
	samples map[int]pcmData
}

// NewEffects is the preferred method of initialisation for the Effects
// type. The sample directory from the preferences is scanned for files
// named after their effect number.
func NewEffects(env *environment.Environment) *Effects {
	efx := &Effects{
		env:     env,
		bell:    os.Stdout,
		samples: make(map[int]pcmData),
	}

	if env.Prefs.SoundDir == "" {
		return efx
	}

	entries, err := os.ReadDir(env.Prefs.SoundDir)
	if err != nil {
		logger.Logf(env, soundLogTag, "sample directory: %v", err)
		return efx
	}

	for _, e := range entries {
		name := e.Name()
		ext := filepath.Ext(name)
		number, err := strconv.Atoi(strings.TrimSuffix(name, ext))
		if err != nil {
			continue
		}

		p, err := loadPCM(env, filepath.Join(env.Prefs.SoundDir, name))
		if err != nil {
			logger.Logf(env, soundLogTag, "%s: %v", name, err)
			continue
		}

		efx.samples[number] = p
		logger.Logf(env, soundLogTag, "effect %d loaded from %s", number, name)
	}

	return efx
}

// Play implements the peripherals.Audio interface.
func (efx *Effects) Play(number int, volume int, repeats int) error {
	// the standard bleeps
	if number == 1 || number == 2 {
		fmt.Fprint(efx.bell, "\a")
		return nil
	}

	p, ok := efx.samples[number]
	if !ok {
		logger.Logf(efx.env, soundLogTag, "no sample for effect %d", number)
		return nil
	}

	// there is no sample playback device on a terminal. the bell rings in
	// its place, once per requested repeat
	n := repeats
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		fmt.Fprint(efx.bell, "\a")
	}

	logger.Logf(efx.env, soundLogTag, "effect %d (%.02fs at volume %d)", number, p.totalTime, volume)
	return nil
}

// Stop implements the peripherals.Audio interface.
func (efx *Effects) Stop(number int) error {
	logger.Logf(efx.env, soundLogTag, "stop effect %d", number)
	return nil
}
