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
	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/wrap"
)

const fpsTextMaxLength = 255

// the fps counter and the status indicators. indicators are stacked leftwards
// from the top right corner, below the fps counter if it is shown
type status struct {
	ctx *Context

	fpsText string

	paused      bool
	fastForward bool
	rewinding   bool
	slowMotion  bool
}

func (s *status) Init(ctx *Context) error {
	s.ctx = ctx
	s.fpsText = "n/a"
	return nil
}

func (s *status) Free() {
	s.paused = false
	s.fastForward = false
	s.rewinding = false
	s.slowMotion = false
}

func (s *status) ContextReset() {
}

func (s *status) ContextDestroy() {
}

func (s *status) Layout() {
}

func (s *status) Iterate() {
}

// SetFPSText sets the text shown by the fps counter.
func (ctx *Context) SetFPSText(text string) {
	ctx.owner.Check()
	if text == "" {
		text = "n/a"
	}
	ctx.status.fpsText = wrap.Limit(text, fpsTextMaxLength)
}

func (s *status) showFPS() bool {
	return s.ctx.Prefs.ShowFPS.Get().(bool) || s.ctx.Prefs.ShowFrameCount.Get().(bool)
}

type indicator struct {
	icon  display.Icon
	label string
}

// the indicators that are active in display order
func (s *status) indicators() []indicator {
	var ind []indicator
	if s.paused {
		ind = append(ind, indicator{icon: display.IconPaused, label: "Paused"})
	}
	if s.fastForward {
		ind = append(ind, indicator{icon: display.IconFastForward, label: "Fast-forward"})
	}
	if s.rewinding {
		ind = append(ind, indicator{icon: display.IconRewind, label: "Rewinding"})
	}
	if s.slowMotion {
		ind = append(ind, indicator{icon: display.IconSlowMotion, label: "Slow motion"})
	}
	return ind
}

func (s *status) Frame(r display.Renderer) {
	m := s.ctx.metrics
	var y float32

	if s.showFPS() {
		w := m.regular.TextWidth(s.fpsText) + m.padding*2
		fx := s.ctx.width - w
		r.DrawQuad(fx, 0, w, m.simpleHeight, colBackground)
		r.DrawText(m.regular, s.fpsText, fx+m.padding, (m.simpleHeight-m.regular.LineHeight)/2, display.White, display.AlignLeft)
		y = m.simpleHeight
	}

	// indicators are drawn as a square icon with the label to the left
	x := s.ctx.width
	for _, ind := range s.indicators() {
		size := m.simpleHeight * 2
		x -= size
		r.DrawQuad(x, y, size, size, colBackground)
		r.DrawIcon(ind.icon, x, y, size, size, 0, display.White)

		w := m.regular.TextWidth(ind.label) + m.padding*2
		x -= w
		r.DrawQuad(x, y, w, size, colBackground)
		r.DrawText(m.regular, ind.label, x+m.padding, y+(size-m.regular.LineHeight)/2, display.White, display.AlignLeft)
	}
}
