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

package main

import (
	"context"
	"encoding/binary"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/osdwidgets/gfxwidgets"
	"github.com/jetsetilly/osdwidgets/ozone"
	"github.com/jetsetilly/osdwidgets/test"
)

func TestDemoCore(t *testing.T) {
	c := demoCore{start: time.Now().Add(-time.Second)}
	test.ExpectSuccess(t, c.Running())
	test.ExpectEquality(t, c.Memory(0) == nil, true)

	mem := c.Memory(memorySystemRAM)
	test.ExpectEquality(t, len(mem), 128)
	test.ExpectApproximate(t, int(binary.LittleEndian.Uint32(mem)), 60, 0.2)
}

func TestSelectTheme(t *testing.T) {
	theme, err := selectTheme("basic white")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, theme.Name, ozone.BasicWhite.Name)

	theme, err = selectTheme("BASIC BLACK")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, theme.Name, ozone.BasicBlack.Name)

	_, err = selectTheme("no such theme.toml")
	test.ExpectFailure(t, err)
}

func TestRunScript(t *testing.T) {
	osd := gfxwidgets.NewContext(nil)
	osd.SetCore(demoCore{start: time.Now()})

	w := &test.CompareWriter{}
	err := runScript(context.Background(), osd, 100, 5, w)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "5 frames\n"), w.String())
}

func TestRunScriptCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &test.CompareWriter{}
	err := runScript(ctx, gfxwidgets.NewContext(nil), 60, 1000, w)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "0 frames\n"), w.String())
}

func TestAttachAddonsMissingManifest(t *testing.T) {
	_, err := attachAddons(context.Background(), gfxwidgets.NewContext(nil), "does/not/exist.yaml")
	test.ExpectFailure(t, err)
}
