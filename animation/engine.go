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

import (
	"time"

	"github.com/jetsetilly/osdwidgets/assert"
	"github.com/jetsetilly/osdwidgets/logger"
)

// Entry describes a single animation to be pushed onto the Engine.
type Entry struct {
	// the value being animated. the value of Subject when the entry is pushed
	// is the starting point of the animation
	Subject *float32

	// the value the subject will have when the animation has completed
	Target float32

	// duration of animation in milliseconds
	Duration float32

	Easing Easing

	// tag used to group this animation with others. an animation pushed with
	// a stale tag is ignored
	Tag Tag

	// called once when the animation has completed
	Callback func()

	// called every time Subject is updated, including the final update
	Tick func()
}

type active struct {
	Entry
	initial float32
	elapsed float32
	deleted bool
}

// Engine drives all animations and timers.
type Engine struct {
	owner *assert.Owner

	tags tags

	entries []*active

	// entries pushed during Update() are added to the main list once the
	// update has completed
	updating bool
	pending  []*active

	// the time of the most recent call to Tick()
	lastTick time.Time
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine() *Engine {
	return &Engine{
		owner: assert.NewOwner("animation engine"),
	}
}

// NewTag issues a new Tag. Tags should be released with Release() when the
// object they belong to is freed.
func (e *Engine) NewTag() Tag {
	e.owner.Check()
	return e.tags.issue()
}

// Live returns true if the tag has been issued and not yet released.
func (e *Engine) Live(tag Tag) bool {
	return e.tags.live(tag)
}

// Release kills all animations with the tag and then releases the tag. Once
// released the tag can not be used to push or kill animations.
func (e *Engine) Release(tag Tag) {
	e.owner.Check()
	e.KillByTag(tag)
	e.tags.release(tag)
}

// Push adds a new animation to the engine. Returns false if the animation was
// not added. The subject must not be nil.
func (e *Engine) Push(entry Entry) bool {
	e.owner.Check()

	if entry.Subject == nil {
		logger.Log(logger.Allow, "anim", "animation pushed without a subject")
		return false
	}
	if entry.Tag != NoTag && !e.tags.live(entry.Tag) {
		return false
	}

	a := &active{
		Entry:   entry,
		initial: *entry.Subject,
	}

	if e.updating {
		e.pending = append(e.pending, a)
	} else {
		e.entries = append(e.entries, a)
	}

	return true
}

// KillByTag removes all animations with the tag. Callbacks for the killed
// animations are not called. Killing with NoTag or a stale tag does nothing.
func (e *Engine) KillByTag(tag Tag) {
	e.owner.Check()

	if tag == NoTag || !e.tags.live(tag) {
		return
	}

	e.kill(func(a *active) bool {
		return a.Tag == tag
	})
}

// KillBySubject removes all animations for the subject. Callbacks for the
// killed animations are not called.
func (e *Engine) KillBySubject(subject *float32) {
	e.owner.Check()

	if subject == nil {
		return
	}

	e.kill(func(a *active) bool {
		return a.Subject == subject
	})
}

func (e *Engine) kill(match func(a *active) bool) {
	// entries are only marked during an update. they are removed from the
	// list when the update completes
	for _, a := range e.entries {
		if match(a) {
			a.deleted = true
		}
	}
	for _, a := range e.pending {
		if match(a) {
			a.deleted = true
		}
	}
	if !e.updating {
		e.compact()
	}
}

func (e *Engine) compact() {
	n := 0
	for _, a := range e.entries {
		if !a.deleted {
			e.entries[n] = a
			n++
		}
	}
	for i := n; i < len(e.entries); i++ {
		e.entries[i] = nil
	}
	e.entries = e.entries[:n]
}

// Active returns true if there are any animations or timers in progress.
func (e *Engine) Active() bool {
	return len(e.entries) > 0 || len(e.pending) > 0
}

// Count returns the number of animations and timers in progress.
func (e *Engine) Count() int {
	return len(e.entries) + len(e.pending)
}

// Tick advances the engine by the time that has passed since the previous call
// to Tick(). The first call to Tick() does not advance the engine.
func (e *Engine) Tick(now time.Time) {
	if e.lastTick.IsZero() {
		e.lastTick = now
		return
	}
	delta := now.Sub(e.lastTick)
	e.lastTick = now
	e.Update(float32(delta.Microseconds()) / 1000)
}

// Update advances all animations by delta milliseconds. Callbacks are called in
// the order the animations were pushed. A callback may push new animations or
// kill existing animations.
//
// Animations pushed during the update are not advanced until the next call
// to Update().
func (e *Engine) Update(delta float32) {
	e.owner.Check()

	e.updating = true

	for _, a := range e.entries {
		if a.deleted {
			continue
		}

		a.elapsed += delta

		if a.elapsed >= a.Duration {
			*a.Subject = a.Target
			a.deleted = true
			if a.Tick != nil {
				a.Tick()
			}
			if a.Callback != nil {
				a.Callback()
			}
			continue
		}

		p := a.Easing.Ease(a.elapsed / a.Duration)
		*a.Subject = a.initial + (a.Target-a.initial)*p
		if a.Tick != nil {
			a.Tick()
		}
	}

	e.updating = false

	e.compact()
	for _, a := range e.pending {
		if !a.deleted {
			e.entries = append(e.entries, a)
		}
	}
	e.pending = e.pending[:0]
}
