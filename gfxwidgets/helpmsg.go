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

package gfxwidgets

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/osdwidgets/animation"
	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/logger"
	"github.com/jetsetilly/osdwidgets/wrap"
)

// maximum length in bytes of help message text. the message limit applies
// after word wrapping
const (
	helpTitleMaxLength   = 256
	helpMessageMaxLength = 2048
)

// HelpPosition is the screen position of a help message slot.
type HelpPosition int

// List of valid HelpPosition values.
const (
	HelpTopLeft HelpPosition = iota
	HelpTopMiddle
	HelpTopRight
	HelpMiddleLeft
	HelpMiddleRight
	HelpBottomLeft
	HelpBottomMiddle
	HelpBottomRight

	numHelpPositions
)

func (p HelpPosition) String() string {
	switch p {
	case HelpTopLeft:
		return "top left"
	case HelpTopMiddle:
		return "top middle"
	case HelpTopRight:
		return "top right"
	case HelpMiddleLeft:
		return "middle left"
	case HelpMiddleRight:
		return "middle right"
	case HelpBottomLeft:
		return "bottom left"
	case HelpBottomMiddle:
		return "bottom middle"
	case HelpBottomRight:
		return "bottom right"
	}
	return fmt.Sprintf("position %d", int(p))
}

func (p HelpPosition) valid() bool {
	return p >= HelpTopLeft && p < numHelpPositions
}

// HelpState is the state of a help message slot.
type HelpState int

// List of valid HelpState values.
const (
	HelpNone HelpState = iota
	HelpSlidingIn
	HelpIdle
	HelpTextChanging
	HelpSlidingOut
)

func (s HelpState) String() string {
	switch s {
	case HelpNone:
		return "none"
	case HelpSlidingIn:
		return "sliding in"
	case HelpIdle:
		return "idle"
	case HelpTextChanging:
		return "text changing"
	case HelpSlidingOut:
		return "sliding out"
	}
	return fmt.Sprintf("state %d", int(s))
}

// the text of a help message and its layout
type helpText struct {
	title   string
	message string

	// text as displayed
	truncatedTitle string
	wrappedMessage string
	lines          int

	timeout float32
}

// HelpSlot is a help message at one of the fixed screen positions. There is
// at most one slot for each position.
type HelpSlot struct {
	position HelpPosition
	state    HelpState

	// tag for all animations of the slot
	tag animation.Tag

	// slide is 1.0 when the slot is off screen and 0.0 when it is fully on
	// screen
	slide float32

	// alpha of the text. animated when the text changes
	textAlpha float32

	current helpText

	// the message pushed while the slot was occupied
	next    helpText
	hasNext bool

	timer animation.Timer

	// dimensions
	x             float32
	y             float32
	width         float32
	headerHeight  float32
	messageHeight float32
}

// Position of the slot on the screen.
func (s *HelpSlot) Position() HelpPosition {
	return s.position
}

// State of the slot.
func (s *HelpSlot) State() HelpState {
	return s.state
}

// Slide returns the position of the slide animation. 1.0 is fully off screen
// and 0.0 is fully on screen.
func (s *HelpSlot) Slide() float32 {
	return s.slide
}

// Title returns the title as displayed.
func (s *HelpSlot) Title() string {
	return s.current.truncatedTitle
}

// Message returns the message as displayed.
func (s *HelpSlot) Message() string {
	return s.current.wrappedMessage
}

// Lines returns the number of lines in the displayed message.
func (s *HelpSlot) Lines() int {
	return s.current.lines
}

// HasNext returns true if there is a message waiting to replace the current
// message.
func (s *HelpSlot) HasNext() bool {
	return s.hasNext
}

// Width of the slot in pixels.
func (s *HelpSlot) Width() float32 {
	return s.width
}

// HeaderHeight is the height of the title area in pixels.
func (s *HelpSlot) HeaderHeight() float32 {
	return s.headerHeight
}

// MessageHeight is the height of the message area in pixels.
func (s *HelpSlot) MessageHeight() float32 {
	return s.messageHeight
}

func (s *HelpSlot) String() string {
	return fmt.Sprintf("%s: %s (%s)", s.position, s.current.title, s.state)
}

// the help message widget
type helpMessages struct {
	ctx   *Context
	slots [numHelpPositions]*HelpSlot
}

func (h *helpMessages) Init(ctx *Context) error {
	h.ctx = ctx
	return nil
}

func (h *helpMessages) Free() {
	for _, s := range h.slots {
		if s != nil {
			h.free(s)
		}
	}
}

func (h *helpMessages) ContextReset() {
}

func (h *helpMessages) ContextDestroy() {
}

func (h *helpMessages) Layout() {
	for _, s := range h.slots {
		if s != nil {
			h.layout(s)
		}
	}
}

func (h *helpMessages) Iterate() {
}

func (h *helpMessages) wrapText(t *helpText) {
	m := h.ctx.metrics
	innerWidth := h.width() - m.padding*2

	t.truncatedTitle = wrap.Fit(t.title, m.bold.TextWidth(t.title), innerWidth)

	cells := 1
	if m.regular.GlyphWidth > 0 {
		cells = max(1, int(innerWidth/m.regular.GlyphWidth))
	}
	t.wrappedMessage = wrap.Limit(wrap.Wrap(t.message, cells, 0), helpMessageMaxLength)
	t.lines = wrap.CountLines(t.wrappedMessage)
}

func (h *helpMessages) width() float32 {
	return float32(h.ctx.Prefs.HelpWidth.Get().(int)) * h.ctx.metrics.scale
}

// layout calculates the dimensions and position of the slot
func (h *helpMessages) layout(s *HelpSlot) {
	m := h.ctx.metrics

	h.wrapText(&s.current)
	if s.hasNext {
		h.wrapText(&s.next)
	}

	s.width = h.width()
	s.headerHeight = m.regular.LineHeight * 2
	s.messageHeight = m.regular.LineHeight * float32(s.current.lines)

	height := s.headerHeight + s.messageHeight
	if s.current.lines > 0 {
		height += m.padding
	}

	switch s.position {
	case HelpTopLeft, HelpMiddleLeft, HelpBottomLeft:
		s.x = m.padding
	case HelpTopMiddle, HelpBottomMiddle:
		s.x = (h.ctx.width - s.width) / 2
	case HelpTopRight, HelpMiddleRight, HelpBottomRight:
		s.x = h.ctx.width - s.width - m.padding
	}

	switch s.position {
	case HelpTopLeft, HelpTopMiddle, HelpTopRight:
		s.y = m.padding
	case HelpMiddleLeft, HelpMiddleRight:
		s.y = (h.ctx.height - height) / 2
	case HelpBottomLeft, HelpBottomMiddle, HelpBottomRight:
		s.y = h.ctx.height - height - m.padding
	}
}

// the offset of the slot caused by the slide animation
func (h *helpMessages) slideOffset(s *HelpSlot) (float32, float32) {
	m := h.ctx.metrics
	height := s.headerHeight + s.messageHeight + m.padding

	switch s.position {
	case HelpTopLeft, HelpMiddleLeft, HelpBottomLeft:
		return -s.slide * (s.width + m.padding), 0
	case HelpTopRight, HelpMiddleRight, HelpBottomRight:
		return s.slide * (s.width + m.padding), 0
	case HelpTopMiddle:
		return 0, -s.slide * (height + m.padding)
	case HelpBottomMiddle:
		return 0, s.slide * (height + m.padding)
	}
	return 0, 0
}

func (h *helpMessages) Frame(r display.Renderer) {
	m := h.ctx.metrics

	for _, s := range h.slots {
		if s == nil || s.state == HelpNone {
			continue
		}

		dx, dy := h.slideOffset(s)
		x := s.x + dx
		y := s.y + dy

		r.DrawQuad(x, y, s.width, s.headerHeight, colTaskProgress2)
		r.DrawText(m.bold, s.current.truncatedTitle, x+m.padding, y+(s.headerHeight-m.bold.LineHeight)/2,
			display.White.WithAlpha(s.textAlpha), display.AlignLeft)

		if s.current.lines == 0 {
			continue
		}

		y += s.headerHeight
		r.DrawQuad(x, y, s.width, s.messageHeight+m.padding, colBackground)
		r.DrawText(m.regular, s.current.wrappedMessage, x+m.padding, y+m.padding/2,
			colTextInfo.WithAlpha(s.textAlpha), display.AlignLeft)
	}
}

// HelpMessagePush shows a help message at the position. If the slot at the
// position is occupied the message replaces the current message once the
// current text has faded out.
//
// The timeout is in milliseconds. A timeout of zero means the message will be
// shown until it is dismissed. A negative timeout means the default timeout
// from the preferences.
func (ctx *Context) HelpMessagePush(position HelpPosition, title string, message string, animated bool, timeout int) {
	ctx.owner.Check()

	if !position.valid() {
		logger.Logf(logger.Allow, "helpmsg", "invalid position (%d)", position)
		return
	}

	if strings.TrimSpace(title) == "" && strings.TrimSpace(message) == "" {
		return
	}

	if timeout < 0 {
		timeout = ctx.Prefs.HelpTimeout.Get().(int)
	}

	t := helpText{
		title:   wrap.Limit(title, helpTitleMaxLength),
		message: message,
		timeout: float32(timeout),
	}

	h := ctx.help
	s := h.slots[position]

	if s == nil {
		s = &HelpSlot{
			position:  position,
			tag:       ctx.anim.NewTag(),
			current:   t,
			textAlpha: 1.0,
		}
		h.slots[position] = s
		h.layout(s)
		h.slideIn(s, animated)
		h.armTimeout(s)
		return
	}

	s.next = t
	s.hasNext = true
	h.wrapText(&s.next)

	switch s.state {
	case HelpSlidingOut:
		// the next message is shown when the slide out has completed
	case HelpTextChanging:
		// the text change in progress will pick up the new message. if the
		// fade out has already completed the change is repeated once the fade
		// in has completed
		h.armTimeout(s)
	default:
		h.changeText(s, animated)
	}
}

func (h *helpMessages) slideIn(s *HelpSlot, animated bool) {
	if !animated {
		s.slide = 0.0
		s.state = HelpIdle
		return
	}

	s.slide = 1.0
	s.state = HelpSlidingIn
	h.ctx.anim.Push(animation.Entry{
		Subject:  &s.slide,
		Target:   0.0,
		Duration: h.ctx.Prefs.animationDuration(),
		Easing:   animation.OutQuad,
		Tag:      s.tag,
		Callback: func() {
			s.state = HelpIdle
		},
	})
}

// armTimeout starts the timeout timer for the current message. a message
// without a timeout stops any running timer
func (h *helpMessages) armTimeout(s *HelpSlot) {
	t := s.current.timeout
	if s.hasNext {
		t = s.next.timeout
	}

	if t <= 0 {
		h.ctx.anim.KillTimer(&s.timer)
		return
	}

	h.ctx.anim.StartTimer(&s.timer, t, func() {
		h.dismiss(s, true)
	})
}

// changeText fades out the current text and fades in the next text
func (h *helpMessages) changeText(s *HelpSlot, animated bool) {
	// a slide in that is interrupted is completed immediately
	h.ctx.anim.KillByTag(s.tag)
	s.slide = 0.0

	h.armTimeout(s)

	if !animated {
		h.promoteNext(s)
		s.textAlpha = 1.0
		s.state = HelpIdle
		return
	}

	s.state = HelpTextChanging
	half := h.ctx.Prefs.animationDuration() / 2

	h.ctx.anim.Push(animation.Entry{
		Subject:  &s.textAlpha,
		Target:   0.0,
		Duration: half,
		Easing:   animation.OutQuad,
		Tag:      s.tag,
		Callback: func() {
			h.promoteNext(s)
			h.ctx.anim.Push(animation.Entry{
				Subject:  &s.textAlpha,
				Target:   1.0,
				Duration: half,
				Easing:   animation.InQuad,
				Tag:      s.tag,
				Callback: func() {
					// a message pushed after the fade out completed
					if s.hasNext {
						h.changeText(s, true)
						return
					}
					s.state = HelpIdle
				},
			})
		},
	})
}

func (h *helpMessages) promoteNext(s *HelpSlot) {
	if !s.hasNext {
		return
	}
	s.current = s.next
	s.next = helpText{}
	s.hasNext = false
	h.layout(s)
}

// dismiss starts the slide out of the slot. the slot is freed when the slide
// out completes
func (h *helpMessages) dismiss(s *HelpSlot, animated bool) {
	if s.state == HelpSlidingOut {
		return
	}

	h.ctx.anim.KillTimer(&s.timer)
	h.ctx.anim.KillByTag(s.tag)
	s.next = helpText{}
	s.hasNext = false
	s.textAlpha = 1.0

	if !animated {
		h.free(s)
		return
	}

	s.state = HelpSlidingOut
	h.ctx.anim.Push(animation.Entry{
		Subject:  &s.slide,
		Target:   1.0,
		Duration: h.ctx.Prefs.animationDuration(),
		Easing:   animation.OutQuad,
		Tag:      s.tag,
		Callback: func() {
			h.slideOutEnd(s)
		},
	})
}

func (h *helpMessages) slideOutEnd(s *HelpSlot) {
	// a message pushed during the slide out reuses the slot
	if s.hasNext {
		h.promoteNext(s)
		h.slideIn(s, true)
		h.armTimeout(s)
		return
	}
	h.free(s)
}

// free the slot. all animations and the timer are cancelled before the slot
// is removed
func (h *helpMessages) free(s *HelpSlot) {
	h.ctx.anim.KillTimer(&s.timer)
	h.ctx.anim.Release(s.tag)
	s.tag = animation.NoTag
	s.state = HelpNone
	if h.slots[s.position] == s {
		h.slots[s.position] = nil
	}
}

// HelpMessageDismiss removes the help message at the position.
func (ctx *Context) HelpMessageDismiss(position HelpPosition, animated bool) {
	ctx.owner.Check()

	if !position.valid() {
		logger.Logf(logger.Allow, "helpmsg", "invalid position (%d)", position)
		return
	}

	if s := ctx.help.slots[position]; s != nil {
		ctx.help.dismiss(s, animated)
	}
}

// HelpMessageDismissAll removes all help messages.
func (ctx *Context) HelpMessageDismissAll(animated bool) {
	ctx.owner.Check()

	for _, s := range ctx.help.slots {
		if s != nil {
			ctx.help.dismiss(s, animated)
		}
	}
}

// HelpMessageLookup returns the help message slot at the position. Returns nil
// if there is no help message at the position.
func (ctx *Context) HelpMessageLookup(position HelpPosition) *HelpSlot {
	ctx.owner.Check()

	if !position.valid() {
		return nil
	}
	return ctx.help.slots[position]
}
