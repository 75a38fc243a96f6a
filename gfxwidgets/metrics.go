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
)

// the scale applied to the regular font for notification text
const msgQueueTextScale = 0.69

// colours shared by the widgets
var (
	colBackground    = display.Hex(0x3a3a3a).WithAlpha(defaultBackdrop)
	colInfo          = display.Hex(0x12acf8)
	colTaskProgress1 = display.Hex(0x55ae99)
	colTaskProgress2 = display.Hex(0x388bbd)
	colTextInfo      = display.Hex(0xd8eeff)
	colTextSuccess   = display.Hex(0x22b14c)
	colTextError     = display.Hex(0xc23b22)
	colTextFaint     = display.Hex(0x878787)
	colWarning       = display.Hex(0xf5dd19)
)

const defaultBackdrop = 0.75

// metrics are the layout dimensions derived from the font size. they are
// recalculated whenever the font or display size changes.
type metrics struct {
	fontSize float32
	scale    float32

	regular display.Font
	bold    display.Font
	msg     display.Font

	padding      float32
	simpleHeight float32

	msgQueueHeight   float32
	spacing          float32
	rectStartX       float32
	scissorStartX    float32
	iconSizeX        float32
	iconSizeY        float32
	iconOffsetY      float32
	internalIconSize float32
	defaultRectWidth float32
	msgGlyphWidth    float32
	taskTextStartX   float32
}

func newMetrics(r display.Renderer, fontSize float32, scale float32) metrics {
	if fontSize <= 0 {
		fontSize = 1
	}

	m := metrics{
		fontSize: fontSize,
		scale:    scale,
	}

	if r != nil {
		m.regular = r.Font(fontSize, false)
		m.bold = r.Font(fontSize, true)
		m.msg = r.Font(fontSize*msgQueueTextScale, false)
	} else {
		m.regular = display.FixedFont(fontSize, false)
		m.bold = display.FixedFont(fontSize, true)
		m.msg = display.FixedFont(fontSize*msgQueueTextScale, false)
	}

	m.padding = m.regular.LineHeight * 2.0 / 3.0
	m.simpleHeight = m.regular.LineHeight + m.padding

	m.msgQueueHeight = m.msg.LineHeight * 2.5
	m.spacing = m.msgQueueHeight / 3
	m.iconSizeY = m.msgQueueHeight
	m.iconSizeX = m.msgQueueHeight
	m.iconOffsetY = (m.msgQueueHeight - m.iconSizeY) / 2
	m.internalIconSize = m.iconSizeY
	m.msgGlyphWidth = m.msg.GlyphWidth
	if m.msgGlyphWidth <= 0 {
		m.msgGlyphWidth = m.msg.TextWidth("a")
	}

	m.rectStartX = m.spacing + m.iconSizeX
	m.scissorStartX = m.rectStartX + m.padding/2
	m.defaultRectWidth = m.msgGlyphWidth * 40
	m.taskTextStartX = m.msgQueueHeight / 2

	return m
}
