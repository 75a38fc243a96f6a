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
	"github.com/jetsetilly/osdwidgets/logger"
	"github.com/jetsetilly/osdwidgets/wrap"
)

// durations in milliseconds
const (
	screenshotDurationIn           = 66
	screenshotDurationOut          = screenshotDurationIn * 10
	screenshotNotificationDuration = 6000
)

type pendingScreenshot struct {
	shotname string
	filename string
}

type screenshot struct {
	ctx *Context
	tag animation.Tag

	// the white flash
	flash float32

	// the thumbnail banner
	shotname string
	filename string
	showing  bool
	texture  display.Texture
	texW     int
	texH     int
	y        float32
	timer    animation.Timer
}

func (s *screenshot) Init(ctx *Context) error {
	s.ctx = ctx
	s.tag = ctx.anim.NewTag()
	return nil
}

func (s *screenshot) Free() {
	s.ctx.anim.KillTimer(&s.timer)
	s.ctx.anim.Release(s.tag)
	s.tag = animation.NoTag
	s.unload()
	s.showing = false
	s.flash = 0
}

func (s *screenshot) ContextReset() {
	if s.showing && s.texture == display.NoTexture {
		s.load()
	}
}

func (s *screenshot) ContextDestroy() {
	s.unload()
}

func (s *screenshot) Layout() {
}

func (s *screenshot) height() float32 {
	return s.ctx.metrics.fontSize * 4
}

func (s *screenshot) load() bool {
	if s.ctx.renderer == nil {
		return false
	}
	var err error
	s.texture, s.texW, s.texH, err = s.ctx.renderer.LoadTexture(s.filename)
	if err != nil {
		logger.Logf(logger.Allow, "osd", "screenshot thumbnail: %v", err)
		s.texture = display.NoTexture
		return false
	}
	return true
}

func (s *screenshot) unload() {
	if s.texture != display.NoTexture && s.ctx.renderer != nil {
		s.ctx.renderer.UnloadTexture(s.texture)
	}
	s.texture = display.NoTexture
}

func (s *screenshot) Iterate() {
	s.ctx.crit.Lock()
	p := s.ctx.shot
	s.ctx.shot = nil
	s.ctx.crit.Unlock()

	if p == nil {
		return
	}

	s.ctx.anim.KillTimer(&s.timer)
	s.ctx.anim.KillBySubject(&s.y)
	s.unload()

	s.shotname = p.shotname
	s.filename = p.filename
	if !s.load() {
		s.showing = false
		return
	}
	s.showing = true

	s.y = -s.height()
	s.ctx.anim.Push(animation.Entry{
		Subject:  &s.y,
		Target:   0,
		Duration: s.ctx.Prefs.animationDuration(),
		Easing:   animation.OutQuad,
		Tag:      s.tag,
	})

	s.ctx.anim.StartTimer(&s.timer, screenshotNotificationDuration, func() {
		s.ctx.anim.Push(animation.Entry{
			Subject:  &s.y,
			Target:   -s.height(),
			Duration: s.ctx.Prefs.animationDuration(),
			Easing:   animation.OutQuad,
			Tag:      s.tag,
			Callback: func() {
				s.unload()
				s.showing = false
			},
		})
	})
}

// TakeScreenshot flashes the screen.
func (ctx *Context) TakeScreenshot() {
	ctx.owner.Check()

	s := ctx.screenshot
	ctx.anim.KillBySubject(&s.flash)

	s.flash = 0
	ctx.anim.Push(animation.Entry{
		Subject:  &s.flash,
		Target:   1.0,
		Duration: screenshotDurationIn,
		Easing:   animation.InQuad,
		Tag:      s.tag,
		Callback: func() {
			ctx.anim.Push(animation.Entry{
				Subject:  &s.flash,
				Target:   0.0,
				Duration: screenshotDurationOut,
				Easing:   animation.OutQuad,
				Tag:      s.tag,
			})
		},
	})
}

// ScreenshotTaken shows a thumbnail of the screenshot. Safe to call from any
// goroutine. The thumbnail is loaded by the next call to Iterate().
func (ctx *Context) ScreenshotTaken(shotname string, filename string) {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	if !ctx.initialised {
		return
	}
	ctx.shot = &pendingScreenshot{
		shotname: shotname,
		filename: filename,
	}
}

func (s *screenshot) Frame(r display.Renderer) {
	m := s.ctx.metrics

	if s.showing && s.texture != display.NoTexture {
		height := s.height()

		var thumbW, thumbH float32
		if s.texH > 0 {
			scale := height / float32(s.texH)
			thumbW = float32(s.texW) * scale
			thumbH = height
		}

		r.DrawQuad(0, s.y, s.ctx.width, height, display.Hex(0x3a3a3a).WithAlpha(defaultBackdrop))
		r.DrawTexture(s.texture, 0, s.y, thumbW, thumbH, display.White)

		x := thumbW + m.padding
		r.DrawText(m.regular, "Screenshot saved", x, s.y+m.fontSize*0.9, colTextFaint, display.AlignLeft)

		cells := 0
		if m.regular.GlyphWidth > 0 {
			cells = int((s.ctx.width - thumbW - m.padding*2) / m.regular.GlyphWidth)
		}
		r.DrawText(m.regular, wrap.Truncate(s.shotname, cells), x, s.y+m.fontSize*1.9, display.White, display.AlignLeft)
	}

	if s.flash > 0 {
		r.DrawQuad(0, 0, s.ctx.width, s.ctx.height, display.White.WithAlpha(s.flash))
	}
}
