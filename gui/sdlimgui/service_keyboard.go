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

package sdlimgui

import (
	"github.com/jetsetilly/osdwidgets/gui"
	"github.com/veandco/go-sdl2/sdl"
)

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat != 0 {
		return
	}

	key := keyName(ev.Keysym.Scancode)
	if key == "" {
		return
	}

	img.dispatch.Key(gui.EventKeyboard{
		Key:  key,
		Down: ev.Type == sdl.KEYDOWN,
	})
}

// keyName returns the gui name for the key. Printable keys are named by the
// character they produce with the current keyboard layout. The empty string is
// returned for keys that the gui has no use for.
func keyName(scancode sdl.Scancode) gui.Key {
	switch scancode {
	case sdl.SCANCODE_UP:
		return gui.KeyUp
	case sdl.SCANCODE_DOWN:
		return gui.KeyDown
	case sdl.SCANCODE_LEFT:
		return gui.KeyLeft
	case sdl.SCANCODE_RIGHT:
		return gui.KeyRight
	case sdl.SCANCODE_RETURN, sdl.SCANCODE_KP_ENTER:
		return gui.KeyReturn
	case sdl.SCANCODE_ESCAPE:
		return gui.KeyEscape
	case sdl.SCANCODE_TAB:
		return gui.KeyTab
	case sdl.SCANCODE_F1:
		return gui.KeyF1
	case sdl.SCANCODE_F12:
		return gui.KeyF12
	case sdl.SCANCODE_KP_PLUS, sdl.SCANCODE_EQUALS:
		return "+"
	case sdl.SCANCODE_KP_MINUS, sdl.SCANCODE_MINUS:
		return "-"
	}

	k := sdl.GetKeyFromScancode(scancode)
	if k > 0x20 && k < 0x7f {
		return gui.Key(string(rune(k)))
	}

	return ""
}
