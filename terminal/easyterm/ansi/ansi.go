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

// Package ansi defines the ANSI control sequences used to position the
// cursor and clear the terminal. Colours and styles are applied with lipgloss.
package ansi

import "fmt"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// ClearScreen is the CSI sequence to clear the entire screen.
const ClearScreen = "\033[2J"

// CursorHome is the CSI sequence to move the cursor to the top left corner of
// the screen.
const CursorHome = "\033[H"

// CursorHide and CursorShow are the CSI sequences that control the visibility
// of the cursor.
const (
	CursorHide = "\033[?25l"
	CursorShow = "\033[?25h"
)

// AltScreen and MainScreen are the CSI sequences that switch to and from the
// alternative screen buffer.
const (
	AltScreen  = "\033[?1049h"
	MainScreen = "\033[?1049l"
)

// NormalPen is the CSI sequence that resets all colours and attributes.
const NormalPen = "\033[0m"

// CursorStore if the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore if the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

// CursorPosition is the CSI sequence to move the cursor to the row and
// column. The top left corner of the screen is row one, column one.
func CursorPosition(row int, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}
