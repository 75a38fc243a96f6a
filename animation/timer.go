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

package animation

// Timer is a one-shot delayed callback. The zero value is ready to use.
//
// A timer is implemented as an animation with a private subject so timers
// are advanced by the same call to Engine.Update() as the animations.
type Timer struct {
	current float32
	tag     Tag
}

// Running returns true if the timer has been started and has not yet fired or
// been killed.
func (t *Timer) Running() bool {
	return t.tag != NoTag
}

// Elapsed returns the number of milliseconds since the timer was started.
func (t *Timer) Elapsed() float32 {
	return t.current
}

// StartTimer starts (or restarts) the timer. The callback is called once after
// duration milliseconds. A timer that is already running is killed first and
// its callback will not be called.
func (e *Engine) StartTimer(t *Timer, duration float32, callback func()) {
	e.KillTimer(t)

	t.current = 0
	t.tag = e.NewTag()
	tag := t.tag

	e.Push(Entry{
		Subject:  &t.current,
		Target:   duration,
		Duration: duration,
		Easing:   Linear,
		Tag:      tag,
		Callback: func() {
			// the tag is released before the callback so that the callback
			// can restart the timer
			if t.tag == tag {
				t.tag = NoTag
			}
			e.tags.release(tag)
			if callback != nil {
				callback()
			}
		},
	})
}

// KillTimer stops the timer without calling its callback. Killing a timer
// that is not running does nothing.
func (e *Engine) KillTimer(t *Timer) {
	if t.tag == NoTag {
		return
	}
	e.Release(t.tag)
	t.tag = NoTag
}
