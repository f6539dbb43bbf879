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

// Package resources contains functions to prepare paths for program
// resources: the preferences file, the regression database, etc.
//
// The JoinPath() function returns the correct path to the resource
// specified in the arguments. It handles the creation of directories as
// required but does not otherwise touch or create files.
//
// The base path is the user's configuration directory. On modern Linux
// systems the full path would be something like:
//
//	/home/user/.config/gruesome/
//
// If a directory named ".gruesome" exists in the current working directory
// then that is used instead. During development it is more convenient to
// have the resources close to hand.
package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// the portable base path. used in preference to the user's configuration
// directory when it exists in the current working directory
const portablePath = ".gruesome"

// the directory below the user's configuration directory
const baseDir = "gruesome"

// JoinPath prepends the supplied path with the correct base path. The
// function creates all folders necessary to reach the end of the sub-path.
// It does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	b, err := basePath()
	if err != nil {
		return "", err
	}

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}

func basePath() (string, error) {
	if fi, err := os.Stat(portablePath); err == nil && fi.IsDir() {
		return portablePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, baseDir), nil
}
