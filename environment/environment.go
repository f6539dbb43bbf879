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

package environment

import (
	"github.com/skeptomai/gruesome-sub000/prefs"
	"github.com/skeptomai/gruesome-sub000/random"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label used for the main interpreter instance in the
// application. Other instances (disassembly previews, undo staging, etc.)
// carry their own labels.
const MainEmulation = Label("")

// Environment is used to provide context for an interpreter instance.
// Particularly useful when more than one instance is running.
type Environment struct {
	Label Label

	// any randomisation required by the interpreter should be retrieved
	// through this structure
	Random *random.Random

	// the application preferences
	Prefs *prefs.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance
// will be created. Providing a non-nil value allows the preferences of more
// than one interpreter instance to be synchronised.
func NewEnvironment(label Label, p *prefs.Preferences) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(),
	}

	var err error

	if p == nil {
		p, err = prefs.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = p

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Random.SeedRandom()
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is intended for the main
// interpreter instance in the application
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the environment label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// interpreter instance may create log entries.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
