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

// Package wrap contains the text layout helpers used by the on-screen widgets.
// Text is measured in character cells. Conversion to pixels is the job of the
// caller, usually by multiplying by the glyph width of the font.
package wrap

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Width returns the number of character cells required to display the
// string. Wide characters count as two cells.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Limit crops a string so that it is no longer than max bytes. The string is
// never cut in the middle of a UTF-8 sequence. Invalid bytes before the cut
// are kept as they are. A max value of zero or less means no limit.
func Limit(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	s = s[:max]

	// back off over a partial rune at the end of the cropped string
	for i := len(s) - 1; i >= 0 && i >= len(s)-utf8.UTFMax; i-- {
		if utf8.RuneStart(s[i]) {
			if !utf8.FullRuneInString(s[i:]) {
				s = s[:i]
			}
			break
		}
	}
	return s
}

// Truncate crops a string so that it fits in the number of cells specified.
func Truncate(s string, cells int) string {
	if cells <= 0 {
		return ""
	}
	return ansi.Truncate(s, cells, "")
}

// Fit crops a string so that it fits inside the available pixel width. The
// measured argument is the pixel width of the entire string. The number of
// characters kept is proportional to the ratio of available width to measured
// width, which is accurate for fixed width fonts and a fair estimate for
// proportional fonts.
func Fit(s string, measured float32, available float32) string {
	if measured <= available || measured <= 0 {
		return s
	}
	if available <= 0 {
		return ""
	}
	n := int(float32(utf8.RuneCountInString(s)) * available / measured)
	r := []rune(s)
	if n > len(r) {
		n = len(r)
	}
	return string(r[:n])
}

// Wrap breaks a string into lines that are no longer than lineWidth cells.
// Lines are broken at spaces and hyphens where possible. Words longer than
// lineWidth are broken wherever necessary.
//
// If maxLines is greater than zero then the result will have no more than
// that many lines. Any remaining text is dropped.
func Wrap(s string, lineWidth int, maxLines int) string {
	if lineWidth <= 0 {
		return s
	}

	w := ansi.Wrap(s, lineWidth, "-")

	// trailing spaces at the end of a wrapped line are never visible
	lines := strings.Split(w, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	return strings.Join(lines, "\n")
}

// CountLines returns the number of lines in a string. An empty string has no
// lines. A trailing newline does not start a new line.
func CountLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(s, "\n"), "\n") + 1
}

// Lines returns the string split into lines. An empty string returns an
// empty slice.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
