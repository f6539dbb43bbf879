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

// Package prefs handles the loading and saving of user preferences. The
// preferences file is a TOML document stored in the user's config directory.
package prefs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/skeptomai/gruesome-sub000/curated"
	"github.com/skeptomai/gruesome-sub000/resources"
)

// sentinal errors returned by the prefs package
const (
	FileError = "prefs: %v"
)

// name of the preferences file in the config directory
const prefsFile = "gruesome.toml"

// Preferences for the interpreter. Fields are read from and written to the
// preferences file verbatim.
type Preferences struct {
	// directory containing sound effect samples for the running story
	SoundDir string `toml:"sound_dir"`

	// directory used for save files. empty means the working directory
	SaveDir string `toml:"save_dir"`

	// file to append the transcript output stream to
	Transcript string `toml:"transcript"`

	// number of undo states to retain
	UndoDepth int `toml:"undo_depth"`

	// whether the interpreter announces itself on startup
	Banner bool `toml:"banner"`
}

// SetDefaults revert all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.SoundDir = ""
	p.SaveDir = ""
	p.Transcript = ""
	p.UndoDepth = 16
	p.Banner = true
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Loads the preferences file if one exists, otherwise the
// defaults are used.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := defaultPath()
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	err = p.Load(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return nil, err
	}

	return p, nil
}

// Load preferences from the TOML file at the given path.
func (p *Preferences) Load(pth string) error {
	d, err := os.ReadFile(pth)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	err = toml.Unmarshal(d, p)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	return nil
}

// Save preferences to the TOML file at the given path. Missing directories
// are created.
func (p *Preferences) Save(pth string) error {
	err := os.MkdirAll(filepath.Dir(pth), 0700)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	f, err := os.Create(pth)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	defer f.Close()

	err = toml.NewEncoder(f).Encode(p)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	return nil
}

// the path of the preferences file in the resource directory
func defaultPath() (string, error) {
	return resources.JoinPath(prefsFile)
}
