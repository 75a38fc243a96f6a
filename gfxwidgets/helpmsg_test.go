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

package gfxwidgets_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/osdwidgets/gfxwidgets"
	"github.com/jetsetilly/osdwidgets/test"
)

func TestHelpMessageLifecycle(t *testing.T) {
	ctx, _ := newContext(t, 8, 4)
	defer ctx.Free()

	test.ExpectEquality(t, ctx.HelpMessageLookup(gfxwidgets.HelpTopRight), nil)

	ctx.HelpMessagePush(gfxwidgets.HelpTopRight, "Update", "A new version is available", true, 4000)

	s := ctx.HelpMessageLookup(gfxwidgets.HelpTopRight)
	test.DemandInequality(t, s, nil)
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpSlidingIn)
	test.ExpectEquality(t, s.Slide(), float32(1.0))
	test.ExpectEquality(t, s.Width(), float32(325))
	test.ExpectEquality(t, s.Title(), "Update")

	ctx.Update(330)
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpIdle)
	test.ExpectEquality(t, s.Slide(), float32(0.0))

	ctx.Update(3000)
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpIdle)

	// the timeout starts the slide out. the slot is still reachable until
	// the slide out has completed
	ctx.Update(670)
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpSlidingOut)
	test.ExpectEquality(t, ctx.HelpMessageLookup(gfxwidgets.HelpTopRight), s)

	ctx.Update(100)
	test.ExpectEquality(t, ctx.HelpMessageLookup(gfxwidgets.HelpTopRight), s)

	ctx.Update(230)
	test.ExpectEquality(t, ctx.HelpMessageLookup(gfxwidgets.HelpTopRight), nil)
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpNone)
	test.ExpectEquality(t, ctx.Animation().Count(), 0)
}

func TestHelpMessageNotAnimated(t *testing.T) {
	ctx, _ := newContext(t, 8, 4)
	defer ctx.Free()

	ctx.HelpMessagePush(gfxwidgets.HelpBottomLeft, "Hint", "Press start", false, 0)
	s := ctx.HelpMessageLookup(gfxwidgets.HelpBottomLeft)
	test.DemandInequality(t, s, nil)
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpIdle)
	test.ExpectEquality(t, s.Slide(), float32(0.0))

	// no timeout
	ctx.Update(100000)
	test.ExpectEquality(t, ctx.HelpMessageLookup(gfxwidgets.HelpBottomLeft), s)

	ctx.HelpMessageDismiss(gfxwidgets.HelpBottomLeft, false)
	test.ExpectEquality(t, ctx.HelpMessageLookup(gfxwidgets.HelpBottomLeft), nil)
}

func TestHelpMessageQueueAsNext(t *testing.T) {
	ctx, _ := newContext(t, 8, 4)
	defer ctx.Free()

	ctx.HelpMessagePush(gfxwidgets.HelpTopLeft, "First", "first message", true, 0)
	ctx.Update(330)

	s := ctx.HelpMessageLookup(gfxwidgets.HelpTopLeft)
	test.DemandInequality(t, s, nil)

	ctx.HelpMessagePush(gfxwidgets.HelpTopLeft, "Second", "second message", true, 0)
	test.ExpectEquality(t, ctx.HelpMessageLookup(gfxwidgets.HelpTopLeft), s)
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpTextChanging)
	test.ExpectSuccess(t, s.HasNext())
	test.ExpectEquality(t, s.Title(), "First")

	ctx.Update(165)
	test.ExpectEquality(t, s.Title(), "Second")
	test.ExpectFailure(t, s.HasNext())
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpTextChanging)

	ctx.Update(165)
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpIdle)
}

func TestHelpMessagePushDuringFadeIn(t *testing.T) {
	ctx, _ := newContext(t, 8, 4)
	defer ctx.Free()

	ctx.HelpMessagePush(gfxwidgets.HelpTopLeft, "First", "first message", true, 0)
	ctx.Update(330)

	s := ctx.HelpMessageLookup(gfxwidgets.HelpTopLeft)
	test.DemandInequality(t, s, nil)

	// the fade out of the first message completes and the second message
	// starts to fade in
	ctx.HelpMessagePush(gfxwidgets.HelpTopLeft, "Second", "second message", true, 0)
	ctx.Update(200)
	test.ExpectEquality(t, s.Title(), "Second")
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpTextChanging)

	ctx.HelpMessagePush(gfxwidgets.HelpTopLeft, "Third", "third message", true, 0)
	test.ExpectSuccess(t, s.HasNext())

	// the fade in completes and a new text change begins
	ctx.Update(165)
	test.ExpectEquality(t, s.Title(), "Second")
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpTextChanging)
	test.ExpectSuccess(t, s.HasNext())

	ctx.Update(165)
	test.ExpectEquality(t, s.Title(), "Third")
	test.ExpectFailure(t, s.HasNext())

	ctx.Update(165)
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpIdle)
	test.ExpectEquality(t, s.Title(), "Third")
}

func TestHelpMessagePushDuringSlideOut(t *testing.T) {
	ctx, _ := newContext(t, 8, 4)
	defer ctx.Free()

	ctx.HelpMessagePush(gfxwidgets.HelpMiddleRight, "First", "first message", true, 0)
	ctx.Update(330)

	s := ctx.HelpMessageLookup(gfxwidgets.HelpMiddleRight)
	ctx.HelpMessageDismiss(gfxwidgets.HelpMiddleRight, true)
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpSlidingOut)

	ctx.HelpMessagePush(gfxwidgets.HelpMiddleRight, "Second", "second message", true, 0)
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpSlidingOut)

	// the slot is reused for the second message
	ctx.Update(330)
	test.ExpectEquality(t, ctx.HelpMessageLookup(gfxwidgets.HelpMiddleRight), s)
	test.ExpectEquality(t, s.State(), gfxwidgets.HelpSlidingIn)
	test.ExpectEquality(t, s.Title(), "Second")
}

func TestHelpMessageDismissAll(t *testing.T) {
	ctx, _ := newContext(t, 8, 4)
	defer ctx.Free()

	positions := []gfxwidgets.HelpPosition{
		gfxwidgets.HelpTopLeft, gfxwidgets.HelpTopMiddle, gfxwidgets.HelpTopRight,
		gfxwidgets.HelpMiddleLeft, gfxwidgets.HelpMiddleRight,
		gfxwidgets.HelpBottomLeft, gfxwidgets.HelpBottomMiddle, gfxwidgets.HelpBottomRight,
	}

	for _, p := range positions {
		ctx.HelpMessagePush(p, p.String(), "message", true, 0)
	}
	for _, p := range positions {
		test.ExpectInequality(t, ctx.HelpMessageLookup(p), nil, p)
	}

	ctx.HelpMessageDismissAll(true)
	ctx.Update(330)
	for _, p := range positions {
		test.ExpectEquality(t, ctx.HelpMessageLookup(p), nil, p)
	}
	test.ExpectEquality(t, ctx.Animation().Count(), 0)
}

func TestHelpMessageEmpty(t *testing.T) {
	ctx, _ := newContext(t, 8, 4)
	defer ctx.Free()

	ctx.HelpMessagePush(gfxwidgets.HelpTopLeft, " ", "", true, 0)
	test.ExpectEquality(t, ctx.HelpMessageLookup(gfxwidgets.HelpTopLeft), nil)

	// invalid positions are ignored
	ctx.HelpMessagePush(gfxwidgets.HelpPosition(100), "title", "message", true, 0)
	test.ExpectEquality(t, ctx.HelpMessageLookup(gfxwidgets.HelpPosition(100)), nil)
}

func TestHelpMessageWrap(t *testing.T) {
	ctx, _ := newContext(t, 8, 4)
	defer ctx.Free()

	// the recorder uses a fixed width font with a line height of 1.25 times
	// the font size
	lineHeight := float32(32 * 1.25)

	for _, n := range []int{0, 1, 20, 409, 410, 2000} {
		message := strings.Repeat("word ", n)

		ctx.HelpMessagePush(gfxwidgets.HelpTopLeft, "Title", message, false, 0)
		s := ctx.HelpMessageLookup(gfxwidgets.HelpTopLeft)
		test.DemandInequality(t, s, nil)

		lines := 0
		if msg := strings.TrimSuffix(s.Message(), "\n"); msg != "" {
			lines = strings.Count(msg, "\n") + 1
		}
		test.ExpectEquality(t, s.Lines(), lines, n)
		test.ExpectEquality(t, s.MessageHeight(), lineHeight*float32(lines), n)
		test.ExpectSuccess(t, len(s.Message()) <= 2048, n)

		ctx.HelpMessageDismiss(gfxwidgets.HelpTopLeft, false)
	}
}
