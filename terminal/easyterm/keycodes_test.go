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

package easyterm_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/osdwidgets/terminal/easyterm"
	"github.com/jetsetilly/osdwidgets/test"
)

func TestReadKey(t *testing.T) {
	keys := []struct {
		input    string
		expected easyterm.Key
	}{
		{"p", easyterm.Key{Rune: 'p'}},
		{"\t", easyterm.Key{Rune: easyterm.KeyTab}},
		{"\x1b", easyterm.Key{Special: easyterm.SpecialEsc}},
		{"\x1b[A", easyterm.Key{Special: easyterm.SpecialUp}},
		{"\x1b[B", easyterm.Key{Special: easyterm.SpecialDown}},
		{"\x1b[C", easyterm.Key{Special: easyterm.SpecialRight}},
		{"\x1b[D", easyterm.Key{Special: easyterm.SpecialLeft}},
		{"\x1bOP", easyterm.Key{Special: easyterm.SpecialF1}},
		{"\x1b[11~", easyterm.Key{Special: easyterm.SpecialF1}},
		{"\x1b[24~", easyterm.Key{Special: easyterm.SpecialF12}},
		{"\x1b[99~", easyterm.Key{Special: easyterm.SpecialUnknown}},
	}

	for _, k := range keys {
		key, err := easyterm.ReadKey(strings.NewReader(k.input))
		test.ExpectSuccess(t, err, k.input)
		test.ExpectEquality(t, key, k.expected, k.input)
	}

	_, err := easyterm.ReadKey(strings.NewReader(""))
	test.ExpectFailure(t, err)
}
