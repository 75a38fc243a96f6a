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

package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/jetsetilly/osdwidgets/animation"
	"github.com/jetsetilly/osdwidgets/test"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.0001
}

func TestEasing(t *testing.T) {
	for e := animation.Linear; e <= animation.OutInBounce; e++ {
		test.ExpectSuccess(t, e.Valid(), e)
		test.ExpectSuccess(t, near(e.Ease(0), 0), e)
		test.ExpectSuccess(t, near(e.Ease(1), 1), e)

		// progress is clamped
		test.ExpectSuccess(t, near(e.Ease(-1), 0), e)
		test.ExpectSuccess(t, near(e.Ease(2), 1), e)
	}

	test.ExpectFailure(t, animation.Easing(-1).Valid())
	test.ExpectFailure(t, (animation.OutInBounce + 1).Valid())

	test.ExpectApproximate(t, animation.Linear.Ease(0.5), 0.5, 0.0001)
	test.ExpectApproximate(t, animation.InQuad.Ease(0.5), 0.25, 0.0001)
	test.ExpectApproximate(t, animation.OutQuad.Ease(0.5), 0.75, 0.0001)
	test.ExpectApproximate(t, animation.InOutQuad.Ease(0.5), 0.5, 0.0001)
	test.ExpectApproximate(t, animation.InCubic.Ease(0.5), 0.125, 0.0001)
	test.ExpectApproximate(t, animation.OutCubic.Ease(0.5), 0.875, 0.0001)

	test.ExpectEquality(t, animation.OutQuad.String(), "out quad")
}

func TestPush(t *testing.T) {
	eng := animation.NewEngine()

	var v float32
	var done int

	ok := eng.Push(animation.Entry{
		Subject:  &v,
		Target:   100,
		Duration: 100,
		Easing:   animation.Linear,
		Callback: func() {
			done++
		},
	})
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, eng.Active())

	eng.Update(50)
	test.ExpectApproximate(t, v, 50, 0.0001)
	test.ExpectEquality(t, done, 0)

	eng.Update(60)
	test.ExpectEquality(t, v, 100)
	test.ExpectEquality(t, done, 1)
	test.ExpectFailure(t, eng.Active())

	// no more callbacks
	eng.Update(100)
	test.ExpectEquality(t, done, 1)

	// pushing without a subject fails
	test.ExpectFailure(t, eng.Push(animation.Entry{Target: 1}))
}

func TestTick(t *testing.T) {
	eng := animation.NewEngine()

	var v float32
	var ticks int

	eng.Push(animation.Entry{
		Subject:  &v,
		Target:   1,
		Duration: 30,
		Tick: func() {
			ticks++
		},
	})

	eng.Update(10)
	eng.Update(10)
	eng.Update(10)
	test.ExpectEquality(t, ticks, 3)
	test.ExpectEquality(t, v, 1)
}

func TestKillByTag(t *testing.T) {
	eng := animation.NewEngine()

	tagA := eng.NewTag()
	tagB := eng.NewTag()

	var a, b float32
	var called bool

	eng.Push(animation.Entry{Subject: &a, Target: 1, Duration: 100, Tag: tagA, Callback: func() { called = true }})
	eng.Push(animation.Entry{Subject: &b, Target: 1, Duration: 100, Tag: tagB})
	test.ExpectEquality(t, eng.Count(), 2)

	eng.KillByTag(tagA)
	test.ExpectEquality(t, eng.Count(), 1)

	eng.Update(100)
	test.ExpectEquality(t, a, 0)
	test.ExpectEquality(t, b, 1)
	test.ExpectFailure(t, called)
}

func TestStaleTag(t *testing.T) {
	eng := animation.NewEngine()

	old := eng.NewTag()
	eng.Release(old)
	test.ExpectFailure(t, eng.Live(old))

	// the released slot is reused but the new tag is distinct from the old
	tag := eng.NewTag()
	test.ExpectInequality(t, tag, old)
	test.ExpectSuccess(t, eng.Live(tag))

	var v float32
	eng.Push(animation.Entry{Subject: &v, Target: 1, Duration: 100, Tag: tag})

	// the stale tag cannot kill the animation of the new tag
	eng.KillByTag(old)
	test.ExpectEquality(t, eng.Count(), 1)

	// and cannot be used to push new animations
	test.ExpectFailure(t, eng.Push(animation.Entry{Subject: &v, Target: 1, Duration: 100, Tag: old}))

	// NoTag can never be killed
	var w float32
	eng.Push(animation.Entry{Subject: &w, Target: 1, Duration: 100})
	eng.KillByTag(animation.NoTag)
	test.ExpectEquality(t, eng.Count(), 2)
}

func TestCallbackChaining(t *testing.T) {
	eng := animation.NewEngine()

	tag := eng.NewTag()

	var v float32
	var second bool

	eng.Push(animation.Entry{
		Subject:  &v,
		Target:   1,
		Duration: 10,
		Tag:      tag,
		Callback: func() {
			// pushed during the update. will not be advanced until the next
			// update
			eng.Push(animation.Entry{
				Subject:  &v,
				Target:   0,
				Duration: 10,
				Tag:      tag,
				Callback: func() {
					second = true
				},
			})
		},
	})

	eng.Update(10)
	test.ExpectEquality(t, v, 1)
	test.ExpectEquality(t, eng.Count(), 1)
	test.ExpectFailure(t, second)

	eng.Update(10)
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, second)
}

func TestKillDuringUpdate(t *testing.T) {
	eng := animation.NewEngine()

	tag := eng.NewTag()

	var a, b float32
	eng.Push(animation.Entry{
		Subject:  &a,
		Target:   1,
		Duration: 10,
		Callback: func() {
			eng.KillByTag(tag)
		},
	})
	eng.Push(animation.Entry{Subject: &b, Target: 1, Duration: 100, Tag: tag})

	eng.Update(10)
	test.ExpectEquality(t, a, 1)
	test.ExpectEquality(t, b, 0)
	test.ExpectFailure(t, eng.Active())
}

func TestTimer(t *testing.T) {
	eng := animation.NewEngine()

	var tmr animation.Timer
	var fired int

	test.ExpectFailure(t, tmr.Running())

	eng.StartTimer(&tmr, 100, func() {
		fired++
	})
	test.ExpectSuccess(t, tmr.Running())

	eng.Update(50)
	test.ExpectApproximate(t, tmr.Elapsed(), 50, 0.0001)
	test.ExpectEquality(t, fired, 0)

	eng.Update(50)
	test.ExpectEquality(t, fired, 1)
	test.ExpectFailure(t, tmr.Running())

	// killed timers do not fire
	eng.StartTimer(&tmr, 100, func() {
		fired++
	})
	eng.KillTimer(&tmr)
	eng.Update(100)
	test.ExpectEquality(t, fired, 1)
	test.ExpectFailure(t, eng.Active())
}

func TestTimerRestart(t *testing.T) {
	eng := animation.NewEngine()

	var tmr animation.Timer
	var fired int

	// a timer that restarts itself from its own callback
	var f func()
	f = func() {
		fired++
		if fired < 3 {
			eng.StartTimer(&tmr, 10, f)
		}
	}
	eng.StartTimer(&tmr, 10, f)

	for i := 0; i < 10; i++ {
		eng.Update(10)
	}
	test.ExpectEquality(t, fired, 3)
	test.ExpectFailure(t, tmr.Running())

	// restarting a running timer replaces the callback
	var first, second bool
	eng.StartTimer(&tmr, 10, func() { first = true })
	eng.StartTimer(&tmr, 10, func() { second = true })
	eng.Update(10)
	test.ExpectFailure(t, first)
	test.ExpectSuccess(t, second)
}

func TestEngineTick(t *testing.T) {
	eng := animation.NewEngine()

	var v float32
	eng.Push(animation.Entry{Subject: &v, Target: 100, Duration: 100})

	now := time.Now()
	eng.Tick(now)
	test.ExpectEquality(t, v, 0)

	eng.Tick(now.Add(25 * time.Millisecond))
	test.ExpectApproximate(t, v, 25, 0.0001)
}
