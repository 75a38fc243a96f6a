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

package scripting

import (
	"errors"

	"github.com/jetsetilly/osdwidgets/animation"
	"github.com/jetsetilly/osdwidgets/display"
)

// Errors returned by a Host when reading core memory.
var (
	ErrCoreNotRunning = errors.New("core is not running")
	ErrNoMemory       = errors.New("memory not available")
	ErrAddressRange   = errors.New("address out of range")
)

// Animation is a request from a script to animate a value. The animation is
// run by the host on the UI goroutine. Tick and Done are called on the UI
// goroutine and must not touch the interpreter directly.
type Animation struct {
	Initial  float32
	Target   float32
	Duration float32
	Easing   animation.Easing

	// called with the current value of the animation every update
	Tick func(v float32)

	// called once when the animation has completed
	Done func()
}

// Host is the environment in which scripts run. All methods must be safe to
// call from the scripting goroutine.
type Host interface {
	FontRegular() display.Font
	FontBold() display.Font

	CoreRunning() bool
	ReadByte(memory int, address int) (uint8, error)

	// PushAnimation queues the animation. The animation is started on the
	// next iteration of the host.
	PushAnimation(a Animation)
}
