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

package ozone

// the layout is designed for a display of this width
const referenceWidth = 1920.0

// font sizes in points. these are not scaled
const (
	FontSizeFooter          = 27
	FontSizeTitle           = 54
	FontSizeTime            = 33
	FontSizeEntriesLabel    = 36
	FontSizeEntriesSublabel = 27
	FontSizeSidebar         = 36
)

const (
	headerHorizontalPadding = 70
	headerHeight            = 130
	headerSeparatorPadding  = 45
	headerIconSize          = 90
	headerTimeIconSize      = 138
	headerTimeIconY         = 3
	headerTimeIconSpacing   = 22
	headerTimedateOffset    = 142
	entriesVerticalPadding  = 60
	sidebarVerticalPadding  = 45
)

// Fonts lists the font sizes used by the menu.
type Fonts struct {
	Footer          float32
	Title           float32
	Time            float32
	EntriesLabel    float32
	EntriesSublabel float32
	Sidebar         float32
}

// Header is the geometry of the menu header.
type Header struct {
	HorizontalPadding float32
	Height            float32
	SeparatorPadding  float32

	IconSize float32
	IconY    float32

	TitleY float32

	TimeIconSize    float32
	TimeIconY       float32
	TimeIconSpacing float32
	TimeIconOffset  float32
	TimeY           float32

	TimedateOffset float32
}

// Metrics is the pixel geometry of the menu for a scale factor.
type Metrics struct {
	Font   Fonts
	Header Header

	EntriesStartY float32
	SidebarStartY float32

	ScaleFactor float32
}

// ScaleFactor returns the scale factor for a display of the specified size.
func ScaleFactor(width float32, height float32) float32 {
	return width / referenceWidth
}

// NewMetrics computes the metrics for the scale factor.
func NewMetrics(scale float32) Metrics {
	m := Metrics{
		Font: Fonts{
			Footer:          FontSizeFooter,
			Title:           FontSizeTitle,
			Time:            FontSizeTime,
			EntriesLabel:    FontSizeEntriesLabel,
			EntriesSublabel: FontSizeEntriesSublabel,
			Sidebar:         FontSizeSidebar,
		},
		ScaleFactor: scale,
	}

	m.Header.HorizontalPadding = headerHorizontalPadding * scale
	m.Header.Height = headerHeight * scale
	m.Header.SeparatorPadding = headerSeparatorPadding * scale

	m.Header.IconSize = headerIconSize * scale
	m.Header.IconY = (headerHeight - headerIconSize) / 2 * scale

	m.Header.TitleY = (headerHeight - FontSizeTitle) / 2.5 * scale

	m.Header.TimeIconSize = headerTimeIconSize * scale
	m.Header.TimeIconY = headerTimeIconY * scale
	m.Header.TimeIconSpacing = headerTimeIconSpacing * scale
	m.Header.TimeIconOffset = m.Header.HorizontalPadding*2 + m.Header.TimeIconSize/4
	m.Header.TimeY = (headerHeight - FontSizeTime) / 2.2 * scale
	m.Header.TimedateOffset = headerTimedateOffset * scale

	m.EntriesStartY = (headerHeight + entriesVerticalPadding) * scale
	m.SidebarStartY = (headerHeight + sidebarVerticalPadding) * scale

	return m
}
