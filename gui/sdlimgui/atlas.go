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

// the sizes at which the font is rasterised. the widgets ask for fonts of any
// size and are given the nearest
var fontSizes = []float32{13, 16, 20, 24, 28, 32, 40, 48, 56, 64, 80, 96}

// the proportions of the default imgui font (ProggyClean), which is a fixed
// width font designed for 13 pixels
const (
	proggySize    = 13.0
	proggyAdvance = 7.0
	proggyAscent  = 10.0
)

type atlasFont struct {
	font imgui.Font
	size float32
}

// fontAtlas holds the imgui fonts for every size in fontSizes.
type fontAtlas struct {
	fonts []atlasFont
}

// loadFonts adds the default imgui font to the atlas once for every size and
// creates the font texture. Must be called before the first imgui.NewFrame().
func (atlas *fontAtlas) loadFonts(rnd *gl21) {
	fnts := imgui.CurrentIO().Fonts()

	atlas.fonts = atlas.fonts[:0]
	for _, sz := range fontSizes {
		cfg := imgui.NewFontConfig()
		cfg.SetSize(sz)
		f := fnts.AddFontDefaultV(cfg)
		cfg.Delete()
		atlas.fonts = append(atlas.fonts, atlasFont{font: f, size: sz})
	}

	rnd.addFontTexture(fnts)
}

// nearest returns the loaded font closest to the requested size.
func (atlas *fontAtlas) nearest(size float32) atlasFont {
	sz := nearestSize(size)
	for _, f := range atlas.fonts {
		if f.size == sz {
			return f
		}
	}
	return atlasFont{size: sz}
}

// fontMetrics returns the display.Font for the requested size. The metrics are
// those of the nearest loaded size because that is the font that is drawn.
func fontMetrics(size float32, bold bool) display.Font {
	sz := nearestSize(size)
	return display.Font{
		Size:       sz,
		LineHeight: sz,
		GlyphWidth: sz * proggyAdvance / proggySize,
		Ascender:   sz * proggyAscent / proggySize,
		Bold:       bold,
	}
}

// nearestSize does not require the fonts to have been loaded and so can be
// called from any goroutine.
func nearestSize(size float32) float32 {
	best := fontSizes[0]
	for _, sz := range fontSizes {
		if math.Abs(float64(sz-size)) < math.Abs(float64(best-size)) {
			best = sz
		}
	}
	return best
}
