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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while osdwidgets is running ***"

// Sentinel errors returned by the Disk type.
var (
	ErrNoPrefsFile = errors.New("prefs: no prefs file")
	ErrNoKey       = errors.New("prefs: no such key")
)

// the separator between key and value in the preferences file
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// sorted list of keys. must be called from inside the critical section
func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the preference in the file. Keys must not contain
// the key separator or a newline. Adding a key that already exists is an
// error.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if strings.Contains(key, keySep) || strings.ContainsAny(key, "\n") {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key %q already added", key)
	}
	dsk.entries[key] = p

	// command line overrides are applied to new entries immediately
	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}

	return nil
}

// Set the value of the preference identified by key. This is a convenient way
// of setting a preference when only the key is known.
func (dsk *Disk) Set(key string, v Value) error {
	dsk.crit.Lock()
	p, ok := dsk.entries[key]
	dsk.crit.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNoKey, key)
	}
	return p.Set(v)
}

// Get the value of the preference identified by key.
func (dsk *Disk) Get(key string) (Value, error) {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	p, ok := dsk.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoKey, key)
	}
	return p.Get(), nil
}

// Reset all entries to their zero value. The file on disk is not touched.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// Save current preference values to disk. Values in the file that are not
// part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	// load existing file so that we can preserve entries that do not belong
	// to this instance
	data := make(map[string]string)
	if f, err := os.Open(dsk.path); err == nil {
		err = parse(f, func(k, v string) error {
			data[k] = v
			return nil
		})
		f.Close()
		if err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("prefs: %w", err)
	}

	dsk.crit.Lock()
	for k, p := range dsk.entries {
		data[k] = p.String()
	}
	dsk.crit.Unlock()

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, data[k])
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values in the file that are not part of
// this Disk instance are ignored.
//
// If saveOnFail is true and the file does not exist then the current values
// are saved and the function returns without error. Otherwise ErrNoPrefsFile
// is returned.
//
// Command line overrides are applied after the file has been loaded.
func (dsk *Disk) Load(saveOnFail bool) error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if saveOnFail {
				return dsk.Save()
			}
			return fmt.Errorf("%w: %s", ErrNoPrefsFile, dsk.path)
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	err = parse(f, func(k, v string) error {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}

// parse a preferences file, calling the supplied function for every key/value
// pair found. lines without a key separator are ignored
func parse(r io.Reader, f func(key string, value string) error) error {
	scanner := bufio.NewScanner(r)

	// the boilerplate line is optional
	if !scanner.Scan() {
		return scanner.Err()
	}
	if line := scanner.Text(); line != WarningBoilerPlate {
		if err := parseLine(line, f); err != nil {
			return err
		}
	}

	for scanner.Scan() {
		if err := parseLine(scanner.Text(), f); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return nil
}

func parseLine(line string, f func(key string, value string) error) error {
	k, v, ok := strings.Cut(line, keySep)
	if !ok {
		return nil
	}
	return f(k, v)
}
