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

package display

import (
	"fmt"

	"github.com/jetsetilly/osdwidgets/wrap"
)

// Color is a non-premultiplied RGBA color. Each component is in the range 0
// to 1.
type Color struct {
	R, G, B, A float32
}

// Hex returns an opaque Color from a 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return Color{
		R: float32((rgb>>16)&0xff) / 255,
		G: float32((rgb>>8)&0xff) / 255,
		B: float32(rgb&0xff) / 255,
		A: 1.0,
	}
}

// WithAlpha returns a copy of the color with the alpha component multiplied by
// the value.
func (c Color) WithAlpha(a float32) Color {
	c.A *= a
	return c
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", uint8(c.R*255), uint8(c.G*255), uint8(c.B*255), uint8(c.A*255))
}

// Common colors.
var (
	White = Hex(0xffffff)
	Black = Hex(0x000000)
)

// Align specifies the horizontal alignment of text relative to the x
// coordinate of a DrawText() call.
type Align int

// List of valid Align values.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font describes the metrics of a font. The measurement is only an estimate
// for proportional fonts but it is exact for fixed width fonts.
//
// Fonts are plain values and are safe to copy between goroutines.
type Font struct {
	Size       float32
	LineHeight float32
	GlyphWidth float32
	Ascender   float32
	Bold       bool
}

// FixedFont returns the metrics of a fixed width font of the specified size.
func FixedFont(size float32, bold bool) Font {
	return Font{
		Size:       size,
		LineHeight: size * 1.25,
		GlyphWidth: size * 0.5,
		Ascender:   size * 0.8,
		Bold:       bold,
	}
}

// TextWidth returns the width in pixels of the string.
func (f Font) TextWidth(s string) float32 {
	return float32(wrap.Width(s)) * f.GlyphWidth
}

// Icon identifies one of the images that the widgets use.
type Icon int

// List of valid Icon values.
const (
	IconHourglass Icon = iota
	IconCheck
	IconInfo
	IconVolumeMin
	IconVolumeMed
	IconVolumeMax
	IconMute
	IconPaused
	IconFastForward
	IconRewind
	IconSlowMotion
)

// Texture is a handle to an image loaded by the renderer. NoTexture is never
// a valid handle.
type Texture uint32

// NoTexture is the zero value of the Texture type.
const NoTexture Texture = 0

// Renderer is the rendering backend used by widgets. With the exception of
// Size() and Font() it should only be called from the UI goroutine.
type Renderer interface {
	// the dimensions of the display in pixels
	Size() (width float32, height float32)

	// the metrics of the font that will be used for the size
	Font(size float32, bold bool) Font

	DrawQuad(x, y, w, h float32, col Color)
	DrawText(font Font, s string, x, y float32, col Color, align Align)
	DrawIcon(icon Icon, x, y, w, h float32, rotation float32, col Color)
	DrawTexture(tex Texture, x, y, w, h float32, col Color)

	// drawing outside of the scissor rectangle is clipped. scissor regions do
	// not nest
	Scissor(x, y, w, h float32)
	ScissorEnd()

	LoadTexture(path string) (tex Texture, width int, height int, err error)
	UnloadTexture(tex Texture)
}
