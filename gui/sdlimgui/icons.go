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

package sdlimgui

import (
	"math"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/osdwidgets/display"
)

// the icons are drawn with primitives rather than from an image so that they
// scale with the widgets and can be rotated

// pen draws shapes relative to the centre of an icon. points are rotated
// around the centre
type pen struct {
	dl     imgui.DrawList
	cx, cy float32
	sin    float32
	cos    float32
	col    imgui.PackedColor
}

func (p pen) pt(x, y float32) imgui.Vec2 {
	return imgui.Vec2{
		X: p.cx + x*p.cos - y*p.sin,
		Y: p.cy + x*p.sin + y*p.cos,
	}
}

func (p pen) triangle(x1, y1, x2, y2, x3, y3 float32) {
	p.dl.AddTriangleFilled(p.pt(x1, y1), p.pt(x2, y2), p.pt(x3, y3), p.col)
}

// a rectangle in icon coordinates. drawn as two triangles so that it can be
// rotated
func (p pen) rect(x1, y1, x2, y2 float32) {
	p.triangle(x1, y1, x2, y1, x2, y2)
	p.triangle(x1, y1, x2, y2, x1, y2)
}

// a line of thickness t
func (p pen) line(x1, y1, x2, y2, t float32) {
	dx, dy := x2-x1, y2-y1
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*t/2, dx/l*t/2
	p.triangle(x1+nx, y1+ny, x2+nx, y2+ny, x2-nx, y2-ny)
	p.triangle(x1+nx, y1+ny, x2-nx, y2-ny, x1-nx, y1-ny)
}

func (p pen) speaker(s float32) {
	p.rect(-s, -s*0.3, -s*0.5, s*0.3)
	p.triangle(-s*0.5, -s*0.3, 0, -s*0.8, 0, s*0.8)
	p.triangle(-s*0.5, -s*0.3, 0, s*0.8, -s*0.5, s*0.3)
}

// DrawIcon implements the display.Renderer interface.
func (d *drawer) DrawIcon(icon display.Icon, x, y, w, h float32, rotation float32, col display.Color) {
	if col.A <= 0 {
		return
	}

	sin, cos := math.Sincos(float64(rotation))
	p := pen{
		dl:  d.dl,
		cx:  x + w/2,
		cy:  y + h/2,
		sin: float32(sin),
		cos: float32(cos),
		col: packed(col),
	}

	// half the size of the icon
	s := min(w, h) / 2 * 0.8
	t := max(1, s/5)

	switch icon {
	case display.IconHourglass:
		p.rect(-s*0.7, -s, s*0.7, -s+t)
		p.rect(-s*0.7, s-t, s*0.7, s)
		p.triangle(-s*0.55, -s+t, s*0.55, -s+t, 0, 0)
		p.triangle(-s*0.55, s-t, 0, 0, s*0.55, s-t)

	case display.IconCheck:
		p.line(-s*0.7, 0, -s*0.2, s*0.5, t)
		p.line(-s*0.2, s*0.5, s*0.7, -s*0.6, t)

	case display.IconInfo:
		d.dl.AddCircleFilled(p.pt(0, -s*0.65), t*0.8, p.col)
		p.rect(-t/2, -s*0.3, t/2, s)

	case display.IconVolumeMin, display.IconVolumeMed, display.IconVolumeMax:
		p.speaker(s)
		bars := 1
		switch icon {
		case display.IconVolumeMed:
			bars = 2
		case display.IconVolumeMax:
			bars = 3
		}
		for i := 0; i < bars; i++ {
			bx := s*0.2 + float32(i)*s*0.3
			bh := s * 0.3 * float32(i+1)
			p.rect(bx, -bh, bx+t, bh)
		}

	case display.IconMute:
		p.speaker(s)
		p.line(s*0.2, -s*0.4, s, s*0.4, t)
		p.line(s*0.2, s*0.4, s, -s*0.4, t)

	case display.IconPaused:
		p.rect(-s*0.6, -s*0.8, -s*0.15, s*0.8)
		p.rect(s*0.15, -s*0.8, s*0.6, s*0.8)

	case display.IconFastForward:
		p.triangle(-s, -s*0.7, 0, 0, -s, s*0.7)
		p.triangle(0, -s*0.7, s, 0, 0, s*0.7)

	case display.IconRewind:
		p.triangle(s, -s*0.7, s, s*0.7, 0, 0)
		p.triangle(0, -s*0.7, 0, s*0.7, -s, 0)

	case display.IconSlowMotion:
		p.rect(-s, -s*0.7, -s+t, s*0.7)
		p.triangle(-s*0.5, -s*0.7, s*0.6, 0, -s*0.5, s*0.7)
	}
}
