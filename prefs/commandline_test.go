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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/osdwidgets/prefs"
	"github.com/jetsetilly/osdwidgets/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	for _, c := range []struct {
		push   string
		unused string
	}{
		{"osd.fontsize::24", "osd.fontsize::24"},
		{"  osd.fontsize ::  24 ", "osd.fontsize::24"},
		{"osd.scale::2.0; osd.fontsize::24", "osd.fontsize::24; osd.scale::2.0"},
		{"osd.fontsize", ""},
		{"osd.fontsize;osd.fps.show::true", "osd.fps.show::true"},
		{"", ""},
	} {
		prefs.PushCommandLineStack(c.push)
		test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1, c.push)
		test.ExpectEquality(t, prefs.PopCommandLineStack(), c.unused, c.push)
	}
}

func TestCommandLineValueConsumed(t *testing.T) {
	prefs.PushCommandLineStack("osd.fontsize::24; osd.helpmsg_width")

	ok, v := prefs.GetCommandLinePref("osd.fontsize")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("24"))

	// a value is only given once
	ok, _ = prefs.GetCommandLinePref("osd.fontsize")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("osd.helpmsg_width")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("osd.fontsize::24")
	prefs.PushCommandLineStack("osd.scale::1.5")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the most recent group is visible
	ok, _ := prefs.GetCommandLinePref("osd.fontsize")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "osd.scale::1.5")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "osd.fontsize::24")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
