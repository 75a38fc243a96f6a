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
	"sync"
)

// Op is the type of a recorded draw command.
type Op int

// List of valid Op values.
const (
	OpQuad Op = iota
	OpText
	OpIcon
	OpTexture
	OpScissor
	OpScissorEnd
)

func (o Op) String() string {
	switch o {
	case OpQuad:
		return "quad"
	case OpText:
		return "text"
	case OpIcon:
		return "icon"
	case OpTexture:
		return "texture"
	case OpScissor:
		return "scissor"
	case OpScissorEnd:
		return "scissor end"
	}
	return "unknown op"
}

// Command is a single recorded draw call. Only the fields relevant to the Op
// are set.
type Command struct {
	Op       Op
	X, Y     float32
	W, H     float32
	Rotation float32
	Color    Color
	Text     string
	Font     Font
	Align    Align
	Icon     Icon
	Texture  Texture
}

func (c Command) String() string {
	switch c.Op {
	case OpText:
		return fmt.Sprintf("%s %q at %.1f,%.1f", c.Op, c.Text, c.X, c.Y)
	case OpScissorEnd:
		return c.Op.String()
	}
	return fmt.Sprintf("%s %.1f,%.1f %.1fx%.1f", c.Op, c.X, c.Y, c.W, c.H)
}

// Recorder implements the Renderer interface by recording draw commands. Fonts
// are fixed width. It is safe to record from more than one goroutine.
type Recorder struct {
	crit sync.Mutex

	width  float32
	height float32

	commands []Command

	// the dimensions of every texture loaded by the recorder
	TextureWidth  int
	TextureHeight int

	nextTexture Texture
	textures    map[Texture]string
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
func NewRecorder(width float32, height float32) *Recorder {
	return &Recorder{
		width:         width,
		height:        height,
		TextureWidth:  320,
		TextureHeight: 240,
		textures:      make(map[Texture]string),
	}
}

// Resize changes the dimensions reported by Size().
func (r *Recorder) Resize(width float32, height float32) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.width = width
	r.height = height
}

func (r *Recorder) record(c Command) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.commands = append(r.commands, c)
}

// Size implements the Renderer interface.
func (r *Recorder) Size() (float32, float32) {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.width, r.height
}

// Font implements the Renderer interface.
func (r *Recorder) Font(size float32, bold bool) Font {
	return FixedFont(size, bold)
}

// DrawQuad implements the Renderer interface.
func (r *Recorder) DrawQuad(x, y, w, h float32, col Color) {
	r.record(Command{Op: OpQuad, X: x, Y: y, W: w, H: h, Color: col})
}

// DrawText implements the Renderer interface.
func (r *Recorder) DrawText(font Font, s string, x, y float32, col Color, align Align) {
	r.record(Command{Op: OpText, Font: font, Text: s, X: x, Y: y, Color: col, Align: align})
}

// DrawIcon implements the Renderer interface.
func (r *Recorder) DrawIcon(icon Icon, x, y, w, h float32, rotation float32, col Color) {
	r.record(Command{Op: OpIcon, Icon: icon, X: x, Y: y, W: w, H: h, Rotation: rotation, Color: col})
}

// DrawTexture implements the Renderer interface.
func (r *Recorder) DrawTexture(tex Texture, x, y, w, h float32, col Color) {
	r.record(Command{Op: OpTexture, Texture: tex, X: x, Y: y, W: w, H: h, Color: col})
}

// Scissor implements the Renderer interface.
func (r *Recorder) Scissor(x, y, w, h float32) {
	r.record(Command{Op: OpScissor, X: x, Y: y, W: w, H: h})
}

// ScissorEnd implements the Renderer interface.
func (r *Recorder) ScissorEnd() {
	r.record(Command{Op: OpScissorEnd})
}

// LoadTexture implements the Renderer interface. No file is read. The texture
// has the dimensions specified by the TextureWidth and TextureHeight fields.
func (r *Recorder) LoadTexture(path string) (Texture, int, int, error) {
	r.crit.Lock()
	defer r.crit.Unlock()
	if path == "" {
		return NoTexture, 0, 0, fmt.Errorf("recorder: empty texture path")
	}
	r.nextTexture++
	r.textures[r.nextTexture] = path
	return r.nextTexture, r.TextureWidth, r.TextureHeight, nil
}

// UnloadTexture implements the Renderer interface.
func (r *Recorder) UnloadTexture(tex Texture) {
	r.crit.Lock()
	defer r.crit.Unlock()
	delete(r.textures, tex)
}

// Textures returns the number of textures currently loaded.
func (r *Recorder) Textures() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return len(r.textures)
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	r.crit.Lock()
	defer r.crit.Unlock()
	c := make([]Command, len(r.commands))
	copy(c, r.commands)
	return c
}

// Reset forgets all recorded commands. Loaded textures are unaffected.
func (r *Recorder) Reset() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.commands = r.commands[:0]
}

// Texts returns the text of every OpText command in the order they were
// recorded.
func (r *Recorder) Texts() []string {
	r.crit.Lock()
	defer r.crit.Unlock()
	var t []string
	for _, c := range r.commands {
		if c.Op == OpText {
			t = append(t, c.Text)
		}
	}
	return t
}

// FindText returns the first OpText command with the text.
func (r *Recorder) FindText(s string) (Command, bool) {
	r.crit.Lock()
	defer r.crit.Unlock()
	for _, c := range r.commands {
		if c.Op == OpText && c.Text == s {
			return c, true
		}
	}
	return Command{}, false
}

// Count returns the number of commands with the Op.
func (r *Recorder) Count(op Op) int {
	r.crit.Lock()
	defer r.crit.Unlock()
	n := 0
	for _, c := range r.commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Replay the recorded commands onto another renderer. The recorded commands
// are not forgotten. Textures are not replayed.
func (r *Recorder) Replay(dst Renderer) {
	for _, c := range r.Commands() {
		switch c.Op {
		case OpQuad:
			dst.DrawQuad(c.X, c.Y, c.W, c.H, c.Color)
		case OpText:
			dst.DrawText(c.Font, c.Text, c.X, c.Y, c.Color, c.Align)
		case OpIcon:
			dst.DrawIcon(c.Icon, c.X, c.Y, c.W, c.H, c.Rotation, c.Color)
		case OpTexture:
			dst.DrawTexture(c.Texture, c.X, c.Y, c.W, c.H, c.Color)
		case OpScissor:
			dst.Scissor(c.X, c.Y, c.W, c.H)
		case OpScissorEnd:
			dst.ScissorEnd()
		}
	}
}
