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

package resources_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/osdwidgets/resources"
	"github.com/jetsetilly/osdwidgets/test"
)

func TestJoinPath(t *testing.T) {
	dir := t.TempDir()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	// the local resource directory takes priority if it exists
	test.DemandSuccess(t, os.Mkdir(".osdwidgets", 0700))

	pth, err := resources.JoinPath("themes", "ozone.toml")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".osdwidgets", "themes", "ozone.toml"))

	// the directory is created but the file is not
	_, err = os.Stat(filepath.Join(".osdwidgets", "themes"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	pth, err = resources.JoinPath(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".osdwidgets", "themes", "ozone.toml"))
}

func TestUniqueFilename(t *testing.T) {
	fn := resources.UniqueFilename("screenshot", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_"))
	test.ExpectEquality(t, len(fn), len("screenshot_YYYYMMDD_HHMMSS"))

	fn = resources.UniqueFilename("screenshot", " menu ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_menu_"))
}
