// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// the name of the resource directory when it is found in the current working
// directory
const localPath = ".osdwidgets"

// the name of the resource directory when it is rooted in the user's
// configuration directory
const configPath = "osdwidgets"

func basePath() (string, error) {
	if _, err := os.Stat(localPath); err == nil {
		return localPath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return filepath.Join(cnf, configPath), nil
}

// JoinPath prepends the supplied path with the base resource path.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file. The last element of path is
// considered to be a file if it has an extension.
func JoinPath(path ...string) (string, error) {
	b, err := basePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(path...)

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	dir := p
	if filepath.Ext(p) != "" {
		dir = filepath.Dir(p)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	return p, nil
}

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this. Used to generate screenshot filenames.
//
// Format of returned string is:
//
//	prepend_YYYYMMDD_HHMMSS
//
// or if a label is supplied:
//
//	prepend_label_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, label string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	l := strings.TrimSpace(label)
	if len(l) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, l, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
