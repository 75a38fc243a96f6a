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
	"strings"
	"sync"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/osdwidgets/display"
)

// drawer implements the display.Renderer interface by adding to the imgui
// background draw list. The draw list is valid between calls to begin() and
// imgui.Render().
type drawer struct {
	img *SdlImgui
	dl  imgui.DrawList

	// Size() can be called from any goroutine
	crit          sync.Mutex
	width, height float32

	clipping bool
}

// begin must be called after imgui.NewFrame() and before any drawing.
func (d *drawer) begin(width float32, height float32) {
	d.crit.Lock()
	d.width = width
	d.height = height
	d.crit.Unlock()

	d.dl = imgui.BackgroundDrawList()
	d.clipping = false
}

// end must be called before imgui.Render().
func (d *drawer) end() {
	if d.clipping {
		d.dl.PopClipRect()
		d.clipping = false
	}
}

func packed(c display.Color) imgui.PackedColor {
	return imgui.PackedColorFromVec4(imgui.Vec4{X: c.R, Y: c.G, Z: c.B, W: c.A})
}

// Size implements the display.Renderer interface.
func (d *drawer) Size() (float32, float32) {
	d.crit.Lock()
	defer d.crit.Unlock()
	return d.width, d.height
}

// Font implements the display.Renderer interface.
func (d *drawer) Font(size float32, bold bool) display.Font {
	return fontMetrics(size, bold)
}

// DrawQuad implements the display.Renderer interface.
func (d *drawer) DrawQuad(x, y, w, h float32, col display.Color) {
	if col.A <= 0 || w <= 0 || h <= 0 {
		return
	}
	d.dl.AddRectFilled(imgui.Vec2{X: x, Y: y}, imgui.Vec2{X: x + w, Y: y + h}, packed(col))
}

// DrawText implements the display.Renderer interface. The default imgui font
// has no bold variant so bold text is drawn twice with a small offset.
func (d *drawer) DrawText(font display.Font, s string, x, y float32, col display.Color, align display.Align) {
	if col.A <= 0 || s == "" {
		return
	}

	f := d.img.fonts.nearest(font.Size)
	if f.font == 0 {
		return
	}
	imgui.PushFont(f.font)
	defer imgui.PopFont()

	metrics := fontMetrics(font.Size, font.Bold)
	c := packed(col)

	for i, line := range strings.Split(s, "\n") {
		lx := x
		switch align {
		case display.AlignCenter:
			lx -= metrics.TextWidth(line) / 2
		case display.AlignRight:
			lx -= metrics.TextWidth(line)
		}
		pos := imgui.Vec2{X: lx, Y: y + float32(i)*metrics.LineHeight}
		d.dl.AddText(pos, c, line)
		if font.Bold {
			pos.X += max(1, metrics.Size/24)
			d.dl.AddText(pos, c, line)
		}
	}
}

// DrawTexture implements the display.Renderer interface.
func (d *drawer) DrawTexture(tex display.Texture, x, y, w, h float32, col display.Color) {
	if tex == display.NoTexture || col.A <= 0 {
		return
	}
	d.dl.AddImageV(imgui.TextureID(tex),
		imgui.Vec2{X: x, Y: y}, imgui.Vec2{X: x + w, Y: y + h},
		imgui.Vec2{X: 0, Y: 0}, imgui.Vec2{X: 1, Y: 1},
		packed(col))
}

// Scissor implements the display.Renderer interface.
func (d *drawer) Scissor(x, y, w, h float32) {
	if d.clipping {
		d.dl.PopClipRect()
	}
	d.dl.PushClipRectV(imgui.Vec2{X: x, Y: y}, imgui.Vec2{X: x + w, Y: y + h}, true)
	d.clipping = true
}

// ScissorEnd implements the display.Renderer interface.
func (d *drawer) ScissorEnd() {
	if !d.clipping {
		return
	}
	d.dl.PopClipRect()
	d.clipping = false
}

// LoadTexture implements the display.Renderer interface.
func (d *drawer) LoadTexture(path string) (display.Texture, int, int, error) {
	id, w, h, err := d.img.rnd.loadTexture(path)
	if err != nil {
		return display.NoTexture, 0, 0, err
	}
	return display.Texture(id), w, h, nil
}

// UnloadTexture implements the display.Renderer interface.
func (d *drawer) UnloadTexture(tex display.Texture) {
	d.img.rnd.unloadTexture(uint32(tex))
}
