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

package scripting

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Addon is a single entry in the addon manifest.
type Addon struct {
	Name     string `yaml:"name"`
	Engine   string `yaml:"engine"`
	Script   string `yaml:"script"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Manifest lists the addons to load.
type Manifest struct {
	Addons []Addon `yaml:"addons"`

	// directory containing the manifest. scripts are relative to this
	// directory
	dir string
}

// LoadManifest reads the manifest from a file.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	defer f.Close()

	return ParseManifest(f, filepath.Dir(path))
}

// ParseManifest reads the manifest from an io.Reader. Scripts are relative to
// the directory.
func ParseManifest(r io.Reader, dir string) (*Manifest, error) {
	m := &Manifest{dir: dir}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && err != io.EOF {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	names := make(map[string]bool)
	for i, a := range m.Addons {
		if strings.TrimSpace(a.Name) == "" {
			return nil, fmt.Errorf("manifest: addon %d has no name", i)
		}
		if names[a.Name] {
			return nil, fmt.Errorf("manifest: duplicate addon %s", a.Name)
		}
		names[a.Name] = true
		if a.Engine == "" {
			return nil, fmt.Errorf("manifest: addon %s has no engine", a.Name)
		}
		if a.Script == "" {
			return nil, fmt.Errorf("manifest: addon %s has no script", a.Name)
		}
	}

	return m, nil
}

// For returns the enabled addons for the engine in manifest order.
func (m *Manifest) For(engine string) []Addon {
	var a []Addon
	for _, e := range m.Addons {
		if !e.Disabled && e.Engine == engine {
			a = append(a, e)
		}
	}
	return a
}

// Path returns the path to the addon's script.
func (m *Manifest) Path(a Addon) string {
	if filepath.IsAbs(a.Script) {
		return a.Script
	}
	return filepath.Join(m.dir, a.Script)
}
