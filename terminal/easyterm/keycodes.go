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

package easyterm

import (
	"fmt"
	"io"
)

// List of ASCII control codes.
const (
	KeyInterrupt      = 3  // end-of-text character
	KeySuspend        = 26 // substitute character
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyBackspace      = 127
)

// List of characters that follow KeyEsc in an escape sequence.
const (
	EscCursor = '['
	EscSS3    = 'O'
)

// List of cursor keys. Each follows EscCursor.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// Special identifies a key that does not produce a character.
type Special int

// List of valid Special values.
const (
	NotSpecial Special = iota
	SpecialUp
	SpecialDown
	SpecialLeft
	SpecialRight
	SpecialEsc
	SpecialF1
	SpecialF12
	SpecialUnknown
)

func (s Special) String() string {
	switch s {
	case NotSpecial:
		return "not special"
	case SpecialUp:
		return "Up"
	case SpecialDown:
		return "Down"
	case SpecialLeft:
		return "Left"
	case SpecialRight:
		return "Right"
	case SpecialEsc:
		return "Escape"
	case SpecialF1:
		return "F1"
	case SpecialF12:
		return "F12"
	}
	return "unknown"
}

// Key is a single key press read from a terminal in raw mode.
type Key struct {
	// the character for the key. zero if the key is special
	Rune byte

	Special Special
}

func (k Key) String() string {
	if k.Special != NotSpecial {
		return k.Special.String()
	}
	return fmt.Sprintf("%q", k.Rune)
}

// ReadKey reads the next key from the terminal. Escape sequences are
// recognised if the bytes of the sequence arrive together, as they do when
// the sequence is generated by the terminal. A lone escape byte is returned as
// SpecialEsc.
func ReadKey(r io.Reader) (Key, error) {
	// the escape sequence is expected to be read in a single call to Read()
	var b [8]byte
	n, err := r.Read(b[:])
	if err != nil {
		return Key{}, err
	}
	if n == 0 {
		return Key{}, io.ErrNoProgress
	}
	return parseKey(b[:n]), nil
}

func parseKey(b []byte) Key {
	if b[0] != KeyEsc {
		return Key{Rune: b[0]}
	}
	if len(b) == 1 {
		return Key{Special: SpecialEsc}
	}

	switch b[1] {
	case EscCursor:
		if len(b) < 3 {
			return Key{Special: SpecialUnknown}
		}
		switch b[2] {
		case CursorUp:
			return Key{Special: SpecialUp}
		case CursorDown:
			return Key{Special: SpecialDown}
		case CursorForward:
			return Key{Special: SpecialRight}
		case CursorBackward:
			return Key{Special: SpecialLeft}
		}

		// function keys with a numeric parameter. F12 is "ESC [ 2 4 ~"
		if string(b[2:]) == "24~" {
			return Key{Special: SpecialF12}
		}
		if string(b[2:]) == "11~" {
			return Key{Special: SpecialF1}
		}

	case EscSS3:
		if len(b) == 3 && b[2] == 'P' {
			return Key{Special: SpecialF1}
		}
	}

	return Key{Special: SpecialUnknown}
}
