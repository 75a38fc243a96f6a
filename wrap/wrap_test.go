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

package wrap_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/osdwidgets/test"
	"github.com/jetsetilly/osdwidgets/wrap"
)

func TestWidth(t *testing.T) {
	test.ExpectEquality(t, wrap.Width(""), 0)
	test.ExpectEquality(t, wrap.Width("hello"), 5)
	test.ExpectEquality(t, wrap.Width("\x1b[1mbold\x1b[0m"), 4)
}

func TestLimit(t *testing.T) {
	test.ExpectEquality(t, wrap.Limit("hello", 0), "hello")
	test.ExpectEquality(t, wrap.Limit("hello", 10), "hello")
	test.ExpectEquality(t, wrap.Limit("hello", 3), "hel")

	// the euro sign is three bytes long and is not cut in half
	test.ExpectEquality(t, wrap.Limit("a€", 3), "a")
	test.ExpectEquality(t, wrap.Limit("a€", 4), "a€")
	test.ExpectEquality(t, wrap.Limit("a€", 2), "a")

	// an invalid byte early in the string does not affect the crop
	invalid := "\xff" + strings.Repeat("a", 300)
	test.ExpectEquality(t, len(wrap.Limit(invalid, 256)), 256)
	test.ExpectEquality(t, wrap.Limit("\xffabc\xe2\x82\xac", 5), "\xffabc")
}

func TestFit(t *testing.T) {
	test.ExpectEquality(t, wrap.Fit("Update", 60, 100), "Update")
	test.ExpectEquality(t, wrap.Fit("Update", 60, 30), "Upd")
	test.ExpectEquality(t, wrap.Fit("Update", 60, 0), "")
}

func TestWrap(t *testing.T) {
	s := wrap.Wrap("A new version is available", 10, 0)
	for _, l := range wrap.Lines(s) {
		test.ExpectSuccess(t, wrap.Width(l) <= 10, l)
	}
	test.ExpectEquality(t, strings.Join(strings.Fields(s), " "), "A new version is available")

	// long words are broken
	s = wrap.Wrap(strings.Repeat("x", 25), 10, 0)
	test.ExpectEquality(t, wrap.CountLines(s), 3)

	// maximum number of lines
	s = wrap.Wrap(strings.Repeat("word ", 20), 10, 2)
	test.ExpectEquality(t, wrap.CountLines(s), 2)

	// no wrapping
	test.ExpectEquality(t, wrap.Wrap("hello world", 0, 0), "hello world")
}

func TestCountLines(t *testing.T) {
	test.ExpectEquality(t, wrap.CountLines(""), 0)
	test.ExpectEquality(t, wrap.CountLines("a"), 1)
	test.ExpectEquality(t, wrap.CountLines("a\n"), 1)
	test.ExpectEquality(t, wrap.CountLines("a\nb"), 2)
	test.ExpectEquality(t, wrap.CountLines("a\n\nb"), 3)
	test.ExpectEquality(t, len(wrap.Lines("a\nb\n")), 2)
}

// wrapping and then counting lines must be consistent with the number of
// lines required to show the text at the given width
func TestWrapLineCount(t *testing.T) {
	const width = 20
	const limit = 200

	for _, n := range []int{0, 1, width, limit, limit * 2} {
		msg := wrap.Limit(strings.Repeat("y", n), limit)
		w := wrap.Wrap(msg, width, 0)

		expected := (len(msg) + width - 1) / width
		test.ExpectEquality(t, wrap.CountLines(w), expected, n)
	}
}
