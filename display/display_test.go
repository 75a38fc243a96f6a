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

package display_test

import (
	"testing"

	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/test"
)

func TestColor(t *testing.T) {
	c := display.Hex(0xff8000)
	test.ExpectEquality(t, c.R, 1.0)
	test.ExpectApproximate(t, c.G, 128.0/255.0, 0.0001)
	test.ExpectEquality(t, c.B, 0.0)
	test.ExpectEquality(t, c.A, 1.0)

	test.ExpectEquality(t, c.WithAlpha(0.5).A, 0.5)
	test.ExpectEquality(t, display.White.String(), "#ffffffff")
}

func TestFont(t *testing.T) {
	f := display.FixedFont(32, false)
	test.ExpectEquality(t, f.GlyphWidth, 16)
	test.ExpectEquality(t, f.TextWidth("hello"), 80)
	test.ExpectEquality(t, f.TextWidth(""), 0)
}

func TestRecorder(t *testing.T) {
	rec := display.NewRecorder(1920, 1080)

	w, h := rec.Size()
	test.ExpectEquality(t, w, 1920)
	test.ExpectEquality(t, h, 1080)

	f := rec.Font(32, true)
	test.ExpectSuccess(t, f.Bold)

	rec.DrawQuad(0, 0, 10, 10, display.White)
	rec.DrawText(f, "hello", 5, 5, display.Black, display.AlignCenter)
	rec.Scissor(0, 0, 100, 100)
	rec.ScissorEnd()

	test.ExpectEquality(t, len(rec.Commands()), 4)
	test.ExpectEquality(t, rec.Count(display.OpText), 1)

	c, ok := rec.FindText("hello")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c.Align, display.AlignCenter)

	_, ok = rec.FindText("goodbye")
	test.ExpectFailure(t, ok)

	// replay onto another recorder
	dst := display.NewRecorder(1920, 1080)
	rec.Replay(dst)
	test.ExpectEquality(t, len(dst.Commands()), 4)
	test.ExpectEquality(t, dst.Texts()[0], "hello")

	rec.Reset()
	test.ExpectEquality(t, len(rec.Commands()), 0)
}

func TestRecorderTextures(t *testing.T) {
	rec := display.NewRecorder(640, 480)

	_, _, _, err := rec.LoadTexture("")
	test.ExpectFailure(t, err)

	tex, w, h, err := rec.LoadTexture("shot.png")
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, tex, display.NoTexture)
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 240)
	test.ExpectEquality(t, rec.Textures(), 1)

	rec.UnloadTexture(tex)
	test.ExpectEquality(t, rec.Textures(), 0)
}
