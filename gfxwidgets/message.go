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
	"github.com/jetsetilly/osdwidgets/animation"
	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/wrap"
)

const (
	genericMessageDuration = 3000
	messageMaxLength       = 256
)

// a single line message that fades out after a delay. used by the generic
// message widget and the libretro message widget
type fadeMessage struct {
	ctx   *Context
	tag   animation.Tag
	text  string
	alpha float32
	timer animation.Timer
}

func (f *fadeMessage) Init(ctx *Context) error {
	f.ctx = ctx
	f.tag = ctx.anim.NewTag()
	return nil
}

func (f *fadeMessage) Free() {
	f.ctx.anim.KillTimer(&f.timer)
	f.ctx.anim.Release(f.tag)
	f.tag = animation.NoTag
	f.text = ""
	f.alpha = 0
}

func (f *fadeMessage) ContextReset() {
}

func (f *fadeMessage) ContextDestroy() {
}

func (f *fadeMessage) Layout() {
}

func (f *fadeMessage) Iterate() {
}

func (f *fadeMessage) set(text string, duration float32) {
	f.ctx.anim.KillByTag(f.tag)
	f.text = wrap.Limit(text, messageMaxLength)
	f.alpha = 1.0

	f.ctx.anim.StartTimer(&f.timer, duration, func() {
		f.ctx.anim.Push(animation.Entry{
			Subject:  &f.alpha,
			Target:   0.0,
			Duration: f.ctx.Prefs.animationDuration(),
			Easing:   animation.OutQuad,
			Tag:      f.tag,
		})
	})
}

func (f *fadeMessage) box() (w float32, h float32) {
	m := f.ctx.metrics
	return m.regular.TextWidth(f.text) + m.padding*2, m.simpleHeight
}

func (f *fadeMessage) draw(r display.Renderer, x, y float32) {
	m := f.ctx.metrics
	w, h := f.box()
	r.DrawQuad(x, y, w, h, colBackground.WithAlpha(f.alpha))
	r.DrawText(m.regular, f.text, x+m.padding, y+(h-m.regular.LineHeight)/2, display.White.WithAlpha(f.alpha), display.AlignLeft)
}

// the generic message is shown at the top of the screen in the middle
type genericMessage struct {
	fadeMessage
}

func (g *genericMessage) Frame(r display.Renderer) {
	if g.alpha <= 0 || g.text == "" {
		return
	}
	w, _ := g.box()
	g.draw(r, (g.ctx.width-w)/2, 0)
}

// SetMessage shows a single line message at the top of the screen. The
// message replaces any existing message.
func (ctx *Context) SetMessage(text string) {
	ctx.owner.Check()
	ctx.generic.set(text, genericMessageDuration)
}

// the libretro message is shown at the bottom left of the screen for a
// duration chosen by the core
type libretroMessage struct {
	fadeMessage
}

func (l *libretroMessage) Frame(r display.Renderer) {
	if l.alpha <= 0 || l.text == "" {
		return
	}
	_, h := l.box()
	l.draw(r, 0, l.ctx.height-h)
}

// SetLibretroMessage shows a message on behalf of the core for the duration
// in milliseconds.
func (ctx *Context) SetLibretroMessage(text string, duration int) {
	ctx.owner.Check()
	if duration <= 0 {
		duration = genericMessageDuration
	}
	ctx.libretro.set(text, float32(duration))
}
