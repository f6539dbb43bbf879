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

package regression

import (
	"fmt"
	"io"
	"strconv"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/database"
	"github.com/skeptomai/gruesome-sub000/digest"
	"github.com/skeptomai/gruesome-sub000/environment"
	"github.com/skeptomai/gruesome-sub000/machine"
	"github.com/skeptomai/gruesome-sub000/machine/peripherals"
	"github.com/skeptomai/gruesome-sub000/prefs"
	"github.com/skeptomai/gruesome-sub000/storyloader"
)

const storyEntryID = "story"

// label for the environment regression tests run in. not the main
// interpreter instance, so nothing is logged
const regressionLabel = environment.Label("regression")

// sentinel used to end the run when the instruction budget is spent
const budgetExhausted = "regression: instruction budget exhausted"

const (
	storyFieldStory int = iota
	storyFieldInstructions
	storyFieldScript
	storyFieldDigest
	numStoryFields
)

// StoryRegression runs a story file for a fixed number of instructions with
// a scripted set of commands, reducing everything the story prints to a
// digest.
type StoryRegression struct {
	key int

	// path to the story file
	Story string

	// the maximum number of instructions to execute. stories that wait for
	// input when the script is spent end their run early
	Instructions int

	// input lines separated by semicolons
	Script string

	digest string
}

// NewStoryRegression is the preferred method of initialisation for the
// StoryRegression type.
func NewStoryRegression(story string, instructions int, script string) *StoryRegression {
	return &StoryRegression{
		Story:        story,
		Instructions: instructions,
		Script:       script,
	}
}

func deserialiseStoryEntry(key int, fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numStoryFields {
		return nil, curated.Errorf(RegressionError, "wrong number of fields in story entry")
	}

	reg := &StoryRegression{
		key:    key,
		Story:  fields[storyFieldStory],
		Script: fields[storyFieldScript],
		digest: fields[storyFieldDigest],
	}

	var err error
	reg.Instructions, err = strconv.Atoi(fields[storyFieldInstructions])
	if err != nil {
		return nil, curated.Errorf(RegressionError, fmt.Sprintf("invalid instructions field (%s)", fields[storyFieldInstructions]))
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg *StoryRegression) ID() string {
	return storyEntryID
}

// String implements the database.Entry interface.
func (reg *StoryRegression) String() string {
	return fmt.Sprintf("[%s] %s instructions=%d", reg.ID(), reg.Story, reg.Instructions)
}

// Serialise implements the database.Entry interface.
func (reg *StoryRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.Story,
		strconv.Itoa(reg.Instructions),
		reg.Script,
		reg.digest,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg *StoryRegression) CleanUp() error {
	return nil
}

// SetKey implements the database.Entry interface.
func (reg *StoryRegression) SetKey(key int) {
	reg.key = key
}

// GetKey implements the database.Entry interface.
func (reg *StoryRegression) GetKey() int {
	return reg.key
}

func (reg *StoryRegression) regress(newRegression bool, output io.Writer) (bool, error) {
	// the user's own preferences must not leak into the test so the
	// environment is built on defaults and then normalised
	p := &prefs.Preferences{}
	p.SetDefaults()

	env, err := environment.NewEnvironment(regressionLabel, p)
	if err != nil {
		return false, curated.Errorf(RegressionError, err)
	}

	// identical runs must start from identical state
	env.Normalise()

	ld := storyloader.NewLoader(reg.Story)

	m, err := machine.NewMachine(env, &ld)
	if err != nil {
		return false, curated.Errorf(RegressionError, err)
	}
	defer m.End()

	dig := digest.NewDisplay()
	m.AttachDisplay(dig)
	m.AttachInput(newScriptedInput(reg.Script))

	count := 0
	err = m.Run(func() error {
		count++
		if count >= reg.Instructions {
			return curated.Errorf(budgetExhausted)
		}
		return nil
	})

	if err != nil {
		// the budget running out and the script running out are both normal
		// ways for the measured portion of the story to end
		if !curated.Is(err, budgetExhausted) && !curated.Is(err, peripherals.EndOfInput) {
			return false, curated.Errorf(RegressionError, err)
		}
	}

	if newRegression {
		reg.digest = dig.Hash()
		return true, nil
	}

	return dig.Hash() == reg.digest, nil
}
