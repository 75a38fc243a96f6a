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
	"math"
	"strings"

	"github.com/jetsetilly/osdwidgets/animation"
	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/logger"
	"github.com/jetsetilly/osdwidgets/task"
	"github.com/jetsetilly/osdwidgets/wrap"
)

// durations in milliseconds
const (
	taskFinishedDuration = 3000
	hourglassInterval    = 5000
	hourglassDuration    = 1000
)

// Category of a message. The category decides the icon and the colour of the
// icon.
type Category int

// List of valid Category values.
const (
	CategoryInfo Category = iota
	CategorySuccess
	CategoryWarning
	CategoryError
)

func (c Category) String() string {
	switch c {
	case CategoryInfo:
		return "info"
	case CategorySuccess:
		return "success"
	case CategoryWarning:
		return "warning"
	case CategoryError:
		return "error"
	}
	return fmt.Sprintf("category %d", int(c))
}

func (c Category) icon() (display.Icon, display.Color) {
	switch c {
	case CategorySuccess:
		return display.IconCheck, colTextSuccess
	case CategoryWarning:
		return display.IconInfo, colWarning
	case CategoryError:
		return display.IconInfo, colTextError
	}
	return display.IconInfo, colInfo
}

// Message is a notification request. Only one of Text or Title needs to be
// set. The Title is used when the Text is empty.
type Message struct {
	Text  string
	Title string

	// duration in milliseconds for which the message will be displayed. a
	// value of zero or less means the default duration
	Duration int

	Category Category

	// flush removes all messages waiting to be displayed before adding the
	// new message. messages already on screen are not affected
	Flush bool
}

// the parts of a notification that can be changed by a call to PushTask()
// from another goroutine. guarded by Context.crit
type notificationText struct {
	text       string
	width      float32
	textHeight float32

	// the task title is compared with the current title of the task to
	// detect a change of title
	title     string
	progress  int
	finished  bool
	failed    bool
	cancelled bool
}

type notification struct {
	shared notificationText

	// true once the notification has been freed. guarded by Context.crit
	freed bool

	// the queue that owns the notification
	queue *msgQueue

	// the text of a regular notification before it was wrapped
	original string

	// the task associated with the notification. nil for a regular
	// notification
	task *task.Task

	category Category
	duration float32

	// tag for all animations of the notification. issued when the
	// notification is dequeued
	tag animation.Tag

	offsetY float32
	alpha   float32

	dying   bool
	expired bool

	expiration      animation.Timer
	expirationArmed bool

	unfolded  bool
	unfolding bool
	unfold    float32

	hourglassRotation float32
	hourglass         animation.Timer
}

// the message queue widget
type msgQueue struct {
	ctx *Context

	// on screen notifications. the most recent notification is at the end of
	// the list and is drawn at the bottom of the stack
	onscreen []*notification

	// true while a notification is entering or leaving. only one
	// notification is ever in motion at a time
	moving bool
}

// Push adds a notification to the message queue. Push is safe to call from
// any goroutine. If the queue of pending notifications is full then the
// notification is dropped.
func (ctx *Context) Push(msg Message) {
	text := msg.Text
	if strings.TrimSpace(text) == "" {
		text = msg.Title
	}
	if strings.TrimSpace(text) == "" {
		return
	}

	duration := float32(msg.Duration)
	if duration <= 0 {
		duration = ctx.Prefs.messageDuration()
	}

	ctx.crit.Lock()
	defer ctx.crit.Unlock()

	if !ctx.initialised {
		return
	}

	if msg.Flush {
		ctx.releasePending()
	}

	if ctx.pending.full() {
		ctx.dropped++
		return
	}

	n := &notification{
		original: text,
		queue:    ctx.msgQueue,
		category: msg.Category,
		duration: duration,
		alpha:    1.0,
	}
	n.shared = ctx.shared.measureMessage(text)
	ctx.pending.push(n)
}

// PushMessage is a convenience function for Push() with the default duration.
func (ctx *Context) PushMessage(text string) {
	ctx.Push(Message{Text: text})
}

// measureMessage lays out the text of a regular notification. long text is
// wrapped over two lines
func (m metrics) measureMessage(text string) notificationText {
	s := notificationText{
		text:       text,
		textHeight: m.msg.LineHeight,
	}

	textWidth := m.msg.TextWidth(text)
	width := m.defaultRectWidth

	if textWidth > width {
		if textWidth/2 > width {
			width = textWidth/2 + m.msgGlyphWidth*10
		}
		cells := wrap.Width(text)/2 + 10
		s.text = wrap.Wrap(text, cells, 2)
		s.textHeight = m.msg.LineHeight * float32(wrap.CountLines(s.text))
	} else {
		width = textWidth
	}

	s.width = width + m.padding/2
	return s
}

// PushTask adds a notification for the task or updates the existing
// notification for the task. PushTask is safe to call from any goroutine.
//
// Tasks with an empty title or with the mute flag set are ignored.
func (ctx *Context) PushTask(t *task.Task) {
	if t == nil {
		return
	}

	st := t.State()
	if strings.TrimSpace(st.Title) == "" || st.Mute {
		return
	}

	ctx.crit.Lock()
	defer ctx.crit.Unlock()

	if !ctx.initialised {
		return
	}

	// update an existing notification in place
	if n, ok := t.FrontendData().(*notification); ok && n != nil && n.queue == ctx.msgQueue && !n.freed {
		n.refresh(st, ctx.shared)
		return
	}

	if ctx.pending.full() {
		ctx.dropped++
		return
	}

	n := &notification{
		queue:    ctx.msgQueue,
		task:     t,
		category: CategoryInfo,
		duration: taskFinishedDuration,
		alpha:    1.0,
		unfolded: true,
		unfold:   1.0,
	}
	n.refresh(st, ctx.shared)
	ctx.pending.push(n)

	t.SetFrontendData(n)
}

// refresh the task fields of the notification. must be called with
// Context.crit held
func (n *notification) refresh(st task.State, m metrics) {
	if st.Title != n.shared.title {
		n.shared.title = st.Title
		n.shared.text = st.Title
		n.shared.width = m.msg.TextWidth(st.Title) + m.padding/2
		n.shared.textHeight = m.msg.LineHeight
	}
	n.shared.progress = st.Progress
	n.shared.finished = st.Finished
	n.shared.cancelled = st.Cancelled
	n.shared.failed = st.Error
}

func (q *msgQueue) Init(ctx *Context) error {
	q.ctx = ctx
	return nil
}

func (q *msgQueue) Free() {
	q.ctx.logDropped()

	for len(q.onscreen) > 0 {
		q.free(q.onscreen[0])
	}
	q.moving = false

	q.ctx.crit.Lock()
	defer q.ctx.crit.Unlock()
	q.ctx.releasePending()
}

// releasePending empties the pending queue. tasks attached to a discarded
// notification are detached so that a later PushTask() creates a new one.
// must be called with Context.crit held
func (ctx *Context) releasePending() {
	for {
		n, ok := ctx.pending.pop()
		if !ok {
			return
		}
		n.freed = true
		if n.task != nil && n.task.FrontendData() == n {
			n.task.SetFrontendData(nil)
		}
	}
}

func (q *msgQueue) ContextReset() {
}

func (q *msgQueue) ContextDestroy() {
}

func (q *msgQueue) Layout() {
	q.ctx.crit.Lock()
	for _, n := range q.onscreen {
		if n.task == nil {
			n.shared = q.ctx.shared.measureMessage(n.original)
		} else {
			n.shared.width = q.ctx.shared.msg.TextWidth(n.shared.title) + q.ctx.shared.padding/2
			n.shared.textHeight = q.ctx.shared.msg.LineHeight
		}
	}
	q.ctx.crit.Unlock()

	// stacked positions depend on the font height
	if !q.moving {
		q.move()
	}
}

func (q *msgQueue) Iterate() {
	ctx := q.ctx

	ctx.crit.Lock()

	// dequeue at most one notification
	var n *notification
	if !q.moving && len(q.onscreen) < ctx.Prefs.OnscreenMax.Get().(int) {
		n, _ = ctx.pending.pop()
	}

	// task fields are sampled once per iteration
	for _, m := range q.onscreen {
		if m.task != nil {
			m.refresh(m.task.State(), ctx.shared)
		}
	}
	if n != nil && n.task != nil {
		n.refresh(n.task.State(), ctx.shared)
	}

	ctx.crit.Unlock()

	if n != nil {
		n.tag = ctx.anim.NewTag()
		q.onscreen = append(q.onscreen, n)

		if n.task == nil {
			q.armExpiration(n, ctx.Prefs.animationDuration()+n.duration)
		} else {
			q.hourglassEnd(n)
		}

		q.move()
	}

	for i := 0; i < len(q.onscreen); i++ {
		m := q.onscreen[i]

		if m.task != nil {
			ctx.crit.Lock()
			done := m.shared.finished || m.shared.cancelled
			ctx.crit.Unlock()
			if done {
				q.armExpiration(m, taskFinishedDuration)
			}
		}

		// at most one notification is killed per iteration
		if m.expired && !m.dying && !q.moving {
			q.kill(m)
			break
		}
	}
}

func (q *msgQueue) armExpiration(n *notification, duration float32) {
	if n.expirationArmed {
		return
	}
	n.expirationArmed = true
	q.ctx.anim.StartTimer(&n.expiration, duration, func() {
		n.expired = true
	})
}

func (q *msgQueue) hourglassEnd(n *notification) {
	n.hourglassRotation = 0
	q.ctx.anim.StartTimer(&n.hourglass, hourglassInterval, func() {
		q.ctx.anim.Push(animation.Entry{
			Subject:  &n.hourglassRotation,
			Target:   -2 * math.Pi,
			Duration: hourglassDuration,
			Easing:   animation.OutQuad,
			Tag:      n.tag,
			Callback: func() {
				q.hourglassEnd(n)
			},
		})
	})
}

// height of a notification in the stack
func (q *msgQueue) height(n *notification) float32 {
	if n.task != nil {
		return q.ctx.metrics.msgQueueHeight / 2
	}
	return q.ctx.metrics.msgQueueHeight
}

// move retargets the vertical offset of every notification so that the stack
// is compacted. once the stack is in place any folded notification is
// unfolded
func (q *msgQueue) move() {
	var y float32
	var unfold *notification
	var entries []animation.Entry

	for i := len(q.onscreen) - 1; i >= 0; i-- {
		n := q.onscreen[i]
		if n.dying {
			continue
		}

		y += q.height(n) + q.ctx.metrics.spacing

		if !n.unfolded {
			unfold = n
		}

		if n.offsetY != y {
			entries = append(entries, animation.Entry{
				Subject:  &n.offsetY,
				Target:   y,
				Duration: q.ctx.Prefs.animationDuration(),
				Easing:   animation.OutQuad,
				Tag:      n.tag,
			})
		}
	}

	if len(entries) == 0 {
		q.moveEnd(unfold)
		return
	}

	entries[len(entries)-1].Callback = func() {
		q.moveEnd(unfold)
	}

	q.moving = true
	for _, e := range entries {
		q.ctx.anim.Push(e)
	}
}

func (q *msgQueue) moveEnd(unfold *notification) {
	if unfold == nil || !q.ctx.anim.Live(unfold.tag) {
		q.moving = false
		return
	}

	unfold.unfolded = true
	unfold.unfolding = true
	q.moving = true

	q.ctx.anim.Push(animation.Entry{
		Subject:  &unfold.unfold,
		Target:   1.0,
		Duration: q.ctx.Prefs.animationDuration(),
		Easing:   animation.OutQuad,
		Tag:      unfold.tag,
		Callback: func() {
			unfold.unfolding = false
			q.moving = false
		},
	})
}

// kill starts the exit animation of the notification. the notification is
// freed when the animation completes
func (q *msgQueue) kill(n *notification) {
	n.dying = true
	q.moving = true

	q.ctx.anim.Push(animation.Entry{
		Subject:  &n.offsetY,
		Target:   n.offsetY - q.ctx.metrics.msgQueueHeight/4,
		Duration: q.ctx.Prefs.animationDuration(),
		Easing:   animation.OutQuad,
		Tag:      n.tag,
	})

	q.ctx.anim.Push(animation.Entry{
		Subject:  &n.alpha,
		Target:   0,
		Duration: q.ctx.Prefs.animationDuration(),
		Easing:   animation.OutQuad,
		Tag:      n.tag,
		Callback: func() {
			q.free(n)
			q.move()
		},
	})
}

// free cancels all animations and timers of the notification and removes it
// from the on screen list
func (q *msgQueue) free(n *notification) {
	q.ctx.anim.KillTimer(&n.expiration)
	q.ctx.anim.KillTimer(&n.hourglass)
	q.ctx.anim.Release(n.tag)
	n.tag = animation.NoTag

	for i, m := range q.onscreen {
		if m == n {
			q.onscreen = append(q.onscreen[:i], q.onscreen[i+1:]...)
			break
		}
	}

	q.ctx.crit.Lock()
	n.freed = true
	if n.task != nil && n.task.FrontendData() == n {
		n.task.SetFrontendData(nil)
	}
	q.ctx.crit.Unlock()

	q.moving = false
}

func (q *msgQueue) Frame(r display.Renderer) {
	for _, n := range q.onscreen {
		q.ctx.crit.Lock()
		s := n.shared
		q.ctx.crit.Unlock()

		if n.task != nil {
			q.frameTask(r, n, s)
		} else {
			q.frameRegular(r, n, s)
		}
	}
}

// the text shown to the right of a task notification
func taskPercentage(s notificationText) string {
	switch {
	case s.failed:
		return "Task failed"
	case s.cancelled:
		return "Cancelled"
	case s.finished:
		return ""
	case s.progress >= 0 && s.progress <= 100:
		return fmt.Sprintf("%d%%", s.progress)
	}
	return ""
}

func (q *msgQueue) frameTask(r display.Renderer, n *notification, s notificationText) {
	m := q.ctx.metrics
	height := m.msgQueueHeight / 2

	percentage := taskPercentage(s)
	var percentageOffset float32
	if s.failed {
		percentageOffset = m.msgGlyphWidth*12 + m.padding*1.25
	} else {
		percentageOffset = m.msgGlyphWidth*5 + m.padding*1.25
	}

	rectX := m.rectStartX - m.iconSizeX
	rectY := q.ctx.height - n.offsetY
	rectWidth := m.padding + s.width + percentageOffset

	if s.finished {
		r.DrawQuad(rectX, rectY, rectWidth, height, colTaskProgress1.WithAlpha(n.alpha))
	} else {
		r.DrawQuad(rectX, rectY, rectWidth, height, colBackground.WithAlpha(n.alpha))
		if s.progress >= 0 && s.progress <= 100 {
			barWidth := rectWidth * float32(s.progress) / 100
			col := colTaskProgress2
			if s.failed {
				col = colTextError
			}
			r.DrawQuad(rectX, rectY, barWidth, height, col.WithAlpha(n.alpha))
		}
	}

	icon := display.IconHourglass
	if s.finished {
		icon = display.IconCheck
	}
	r.DrawIcon(icon, rectX, rectY, height, height, n.hourglassRotation, display.White.WithAlpha(n.alpha))

	textY := rectY + (height-m.msg.LineHeight)/2
	r.DrawText(m.msg, s.text, rectX+m.taskTextStartX, textY, colTextInfo.WithAlpha(n.alpha), display.AlignLeft)

	if percentage != "" {
		col := colTextInfo
		if s.failed {
			col = colTextError
		}
		r.DrawText(m.msg, percentage, rectX+rectWidth-m.msgGlyphWidth, textY, col.WithAlpha(n.alpha), display.AlignRight)
	}
}

func (q *msgQueue) frameRegular(r display.Renderer, n *notification, s notificationText) {
	m := q.ctx.metrics
	y := q.ctx.height - n.offsetY

	scissor := !n.unfolded || n.unfolding
	if scissor {
		r.Scissor(m.scissorStartX, 0, (m.scissorStartX+s.width-m.padding*2)*n.unfold, q.ctx.height)
	}

	r.DrawQuad(m.rectStartX, y, m.padding+s.width, m.msgQueueHeight, colBackground.WithAlpha(n.alpha))

	textX := m.rectStartX + m.padding/2 - (1.0-n.unfold)*(s.width+m.padding)/2
	textY := y + (m.msgQueueHeight-s.textHeight)/2
	r.DrawText(m.msg, s.text, textX, textY, display.White.WithAlpha(n.alpha), display.AlignLeft)

	if scissor {
		r.ScissorEnd()
	}

	// the icon is drawn over the folded message
	icon, col := n.category.icon()
	r.DrawQuad(m.spacing, y-m.iconOffsetY, m.iconSizeX, m.iconSizeY, colBackground.WithAlpha(n.alpha))
	r.DrawIcon(icon, m.spacing, y-m.iconOffsetY, m.iconSizeX, m.iconSizeY, 0, col.WithAlpha(n.alpha))
}

// Onscreen returns the text of each notification currently on screen, in the
// order they were pushed.
func (ctx *Context) Onscreen() []string {
	ctx.owner.Check()

	ctx.crit.Lock()
	defer ctx.crit.Unlock()

	s := make([]string, 0, len(ctx.msgQueue.onscreen))
	for _, n := range ctx.msgQueue.onscreen {
		s = append(s, n.shared.text)
	}
	return s
}

// Moving returns true if a notification is entering or leaving the screen.
func (ctx *Context) Moving() bool {
	ctx.owner.Check()
	return ctx.msgQueue.moving
}

// logDropped writes the number of dropped notifications to the log
func (ctx *Context) logDropped() {
	ctx.crit.Lock()
	dropped := ctx.dropped
	ctx.crit.Unlock()
	if dropped > 0 {
		logger.Logf(logger.Allow, "osd", "%d notifications dropped", dropped)
	}
}
