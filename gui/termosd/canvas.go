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

package termosd

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/osdwidgets/display"
)

// The size of a character cell in display pixels. The widgets are laid out in
// pixels so the terminal is presented to them as a display of CellWidth
// pixels for every column and CellHeight pixels for every row.
const (
	CellWidth  = 16
	CellHeight = 32
)

// text drawn with less alpha than this is not drawn at all
const minTextAlpha = 0.25

// quads drawn with more alpha than this erase the text underneath
const eraseAlpha = 0.5

type cell struct {
	ch   rune
	fg   display.Color
	bg   display.Color
	bold bool
}

// the style of a cell without the character. used to group cells into runs
// that can be rendered with a single lipgloss style
type cellStyle struct {
	fg   display.Color
	bg   display.Color
	bold bool
}

func (c cell) style() cellStyle {
	if c.ch == ' ' {
		return cellStyle{bg: c.bg}
	}
	return cellStyle{fg: c.fg, bg: c.bg, bold: c.bold}
}

// half open rectangle of cells
type rect struct {
	col0, row0 int
	col1, row1 int
}

func (r rect) intersect(o rect) rect {
	return rect{
		col0: max(r.col0, o.col0),
		row0: max(r.row0, o.row0),
		col1: min(r.col1, o.col1),
		row1: min(r.row1, o.row1),
	}
}

type texture struct {
	path          string
	width, height int
}

// Canvas implements the display.Renderer interface with a grid of character
// cells. The contents of the canvas are turned into styled text by the
// Lines() function.
type Canvas struct {
	// Size() can be called from any goroutine
	crit       sync.Mutex
	cols, rows int

	cells      []cell
	background display.Color
	clip       *rect

	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style

	textures    map[display.Texture]texture
	nextTexture display.Texture
}

// NewCanvas is the preferred method of initialisation for the Canvas type. If
// renderer is nil then the lipgloss default renderer is used.
func NewCanvas(cols int, rows int, renderer *lipgloss.Renderer) *Canvas {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	c := &Canvas{
		background: display.Black,
		renderer:   renderer,
		styles:     make(map[cellStyle]lipgloss.Style),
		textures:   make(map[display.Texture]texture),
	}
	c.Resize(cols, rows)
	return c
}

// Resize the canvas. The contents of the canvas are cleared.
func (c *Canvas) Resize(cols int, rows int) {
	c.crit.Lock()
	c.cols = max(cols, 1)
	c.rows = max(rows, 1)
	c.crit.Unlock()

	c.cells = make([]cell, c.cols*c.rows)
	c.Clear(c.background)
}

// Clear all cells to the background color.
func (c *Canvas) Clear(background display.Color) {
	c.background = background
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', bg: background}
	}
	c.clip = nil
}

// Size implements the display.Renderer interface.
func (c *Canvas) Size() (float32, float32) {
	c.crit.Lock()
	defer c.crit.Unlock()
	return float32(c.cols * CellWidth), float32(c.rows * CellHeight)
}

// Font implements the display.Renderer interface. Every size of font has the
// dimensions of a character cell.
func (c *Canvas) Font(size float32, bold bool) display.Font {
	return display.Font{
		Size:       size,
		LineHeight: CellHeight,
		GlyphWidth: CellWidth,
		Ascender:   CellHeight * 0.8,
		Bold:       bold,
	}
}

// the rectangle of cells covered by the display rectangle. every rectangle
// with a positive width and height covers at least one cell
func (c *Canvas) cellRect(x, y, w, h float32) rect {
	r := rect{
		col0: int(math.Round(float64(x / CellWidth))),
		row0: int(math.Round(float64(y / CellHeight))),
		col1: int(math.Round(float64((x + w) / CellWidth))),
		row1: int(math.Round(float64((y + h) / CellHeight))),
	}
	if w > 0 && r.col1 <= r.col0 {
		r.col1 = r.col0 + 1
	}
	if h > 0 && r.row1 <= r.row0 {
		r.row1 = r.row0 + 1
	}
	return r
}

// the visible part of the rectangle
func (c *Canvas) visible(r rect) rect {
	r = r.intersect(rect{col1: c.cols, row1: c.rows})
	if c.clip != nil {
		r = r.intersect(*c.clip)
	}
	return r
}

func (c *Canvas) inside(col, row int) bool {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return false
	}
	if c.clip != nil {
		return col >= c.clip.col0 && col < c.clip.col1 && row >= c.clip.row0 && row < c.clip.row1
	}
	return true
}

func blend(dst display.Color, src display.Color) display.Color {
	a := src.A
	return display.Color{
		R: dst.R*(1-a) + src.R*a,
		G: dst.G*(1-a) + src.G*a,
		B: dst.B*(1-a) + src.B*a,
		A: 1.0,
	}
}

// DrawQuad implements the display.Renderer interface.
func (c *Canvas) DrawQuad(x, y, w, h float32, col display.Color) {
	if col.A <= 0 {
		return
	}
	r := c.visible(c.cellRect(x, y, w, h))
	for row := r.row0; row < r.row1; row++ {
		for cl := r.col0; cl < r.col1; cl++ {
			p := &c.cells[row*c.cols+cl]
			p.bg = blend(p.bg, col)
			if col.A > eraseAlpha {
				p.ch = ' '
			}
		}
	}
}

func (c *Canvas) put(col, row int, ch rune, fg display.Color, bold bool) {
	if !c.inside(col, row) {
		return
	}
	p := &c.cells[row*c.cols+col]
	p.ch = ch
	p.fg = blend(p.bg, fg)
	p.bold = bold
}

// DrawText implements the display.Renderer interface. The y coordinate is the
// top of the first line of text. Each line of text is aligned separately.
func (c *Canvas) DrawText(font display.Font, s string, x, y float32, col display.Color, align display.Align) {
	if col.A < minTextAlpha || s == "" {
		return
	}

	row := int(math.Round(float64(y / CellHeight)))
	for i, line := range strings.Split(s, "\n") {
		runes := []rune(line)

		lx := x
		switch align {
		case display.AlignCenter:
			lx -= float32(len(runes)*CellWidth) / 2
		case display.AlignRight:
			lx -= float32(len(runes) * CellWidth)
		}

		col0 := int(math.Round(float64(lx / CellWidth)))
		for j, r := range runes {
			if r == '\t' {
				r = ' '
			}
			c.put(col0+j, row+i, r, col, font.Bold)
		}
	}
}

func iconGlyph(icon display.Icon, rotation float32) rune {
	switch icon {
	case display.IconHourglass:
		// the hourglass turns over as it rotates
		if int(rotation/(math.Pi/2))%2 == 1 {
			return '⧖'
		}
		return '⧗'
	case display.IconCheck:
		return '✓'
	case display.IconInfo:
		return 'i'
	case display.IconVolumeMin:
		return '♪'
	case display.IconVolumeMed:
		return '♫'
	case display.IconVolumeMax:
		return '♬'
	case display.IconMute:
		return '×'
	case display.IconPaused:
		return '‖'
	case display.IconFastForward:
		return '»'
	case display.IconRewind:
		return '«'
	case display.IconSlowMotion:
		return '~'
	}
	return '?'
}

// DrawIcon implements the display.Renderer interface. The icon is drawn as a
// single character in the middle of the rectangle.
func (c *Canvas) DrawIcon(icon display.Icon, x, y, w, h float32, rotation float32, col display.Color) {
	if col.A < minTextAlpha {
		return
	}
	cl := int(math.Floor(float64((x + w/2) / CellWidth)))
	row := int(math.Floor(float64((y + h/2) / CellHeight)))
	c.put(cl, row, iconGlyph(icon, rotation), col, false)
}

// DrawTexture implements the display.Renderer interface. The texture is
// drawn as a shaded block.
func (c *Canvas) DrawTexture(tex display.Texture, x, y, w, h float32, col display.Color) {
	if _, ok := c.textures[tex]; !ok || col.A < minTextAlpha {
		return
	}
	r := c.visible(c.cellRect(x, y, w, h))
	for row := r.row0; row < r.row1; row++ {
		for cl := r.col0; cl < r.col1; cl++ {
			c.put(cl, row, '▒', col, false)
		}
	}
}

// Scissor implements the display.Renderer interface.
func (c *Canvas) Scissor(x, y, w, h float32) {
	r := c.cellRect(x, y, w, h)
	c.clip = &r
}

// ScissorEnd implements the display.Renderer interface.
func (c *Canvas) ScissorEnd() {
	c.clip = nil
}

// LoadTexture implements the display.Renderer interface. Only the dimensions
// of the image are read.
func (c *Canvas) LoadTexture(path string) (display.Texture, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return display.NoTexture, 0, 0, fmt.Errorf("termosd: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return display.NoTexture, 0, 0, fmt.Errorf("termosd: %s: %w", path, err)
	}

	c.nextTexture++
	c.textures[c.nextTexture] = texture{
		path:   path,
		width:  cfg.Width,
		height: cfg.Height,
	}
	return c.nextTexture, cfg.Width, cfg.Height, nil
}

// UnloadTexture implements the display.Renderer interface.
func (c *Canvas) UnloadTexture(tex display.Texture) {
	delete(c.textures, tex)
}

func hex(col display.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", uint8(col.R*255), uint8(col.G*255), uint8(col.B*255)))
}

func (c *Canvas) lipglossStyle(s cellStyle) lipgloss.Style {
	if st, ok := c.styles[s]; ok {
		return st
	}
	st := c.renderer.NewStyle().Background(hex(s.bg))
	if s != (cellStyle{bg: s.bg}) {
		st = st.Foreground(hex(s.fg)).Bold(s.bold)
	}
	c.styles[s] = st
	return st
}

// Lines returns the rows of the canvas as styled text. Cells with the same
// style are rendered together.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.rows)

	var line strings.Builder
	var run strings.Builder
	for row := 0; row < c.rows; row++ {
		line.Reset()
		run.Reset()

		cells := c.cells[row*c.cols : (row+1)*c.cols]
		style := cells[0].style()
		for _, p := range cells {
			if s := p.style(); s != style {
				line.WriteString(c.lipglossStyle(style).Render(run.String()))
				run.Reset()
				style = s
			}
			run.WriteRune(p.ch)
		}
		line.WriteString(c.lipglossStyle(style).Render(run.String()))

		lines[row] = line.String()
	}

	return lines
}

// String returns the characters of the canvas without any styling. Trailing
// spaces are removed from each row.
func (c *Canvas) String() string {
	var s strings.Builder
	for row := 0; row < c.rows; row++ {
		var line strings.Builder
		for _, p := range c.cells[row*c.cols : (row+1)*c.cols] {
			line.WriteRune(p.ch)
		}
		s.WriteString(strings.TrimRight(line.String(), " "))
		s.WriteString("\n")
	}
	return s.String()
}
