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

// Package animation contains the animation engine and the timer engine used
// by the on-screen display.
//
// An animation moves a float32 subject towards a target value over a
// duration, using an easing function to shape the movement. A completion
// callback can be attached and is called once the subject reaches the target.
// Animations are grouped by Tag so that all the animations belonging to a
// single object can be cancelled with one call to KillByTag().
//
// Tags are handles issued by the Engine. A tag is released by Release() and
// any later use of a released tag is a no-op. This means that a stale tag held
// by a freed object can never cancel the animations of a newer object, even if
// the newer object occupies the same arena slot.
//
// Timers are one-shot animations with no visible subject. They share the
// tag scheme and are driven by the same call to Update().
//
// The engine is not safe for concurrent use. It should only ever be advanced
// and modified from the UI goroutine. Work originating on other goroutines
// should be funnelled through a queue that is drained by the UI goroutine.
package animation
