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

package kraken

import (
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/osdwidgets/animation"
	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/logger"
	"github.com/jetsetilly/osdwidgets/scripting"
)

// argument kinds checked by the natives
type kind int

const (
	kindNumber kind = iota
	kindInteger
	kindString
	kindBool
	kindFont
	kindFrame

	// a string or nil
	kindOptString
)

func (k kind) match(v lua.LValue) bool {
	switch k {
	case kindNumber:
		return v.Type() == lua.LTNumber
	case kindInteger:
		n, ok := v.(lua.LNumber)
		return ok && float64(n) == math.Trunc(float64(n))
	case kindString:
		return v.Type() == lua.LTString
	case kindBool:
		return v.Type() == lua.LTBool
	case kindFont:
		ud, ok := v.(*lua.LUserData)
		if !ok {
			return false
		}
		_, ok = ud.Value.(display.Font)
		return ok
	case kindFrame:
		ud, ok := v.(*lua.LUserData)
		if !ok {
			return false
		}
		_, ok = ud.Value.(display.Renderer)
		return ok
	case kindOptString:
		return v.Type() == lua.LTString || v.Type() == lua.LTNil
	}
	return false
}

// checks the arguments on the stack. logs an error if they do not match
func valid(L *lua.LState, fn string, kinds ...kind) bool {
	if L.GetTop() != len(kinds) {
		logger.Logf(logger.Allow, "kraken", "%s: invalid arguments", fn)
		return false
	}
	for i, k := range kinds {
		if !k.match(L.Get(i + 1)) {
			logger.Logf(logger.Allow, "kraken", "%s: invalid arguments", fn)
			return false
		}
	}
	return true
}

func number(L *lua.LState, n int) float32 {
	return float32(L.Get(n).(lua.LNumber))
}

func integer(L *lua.LState, n int) int {
	return int(L.Get(n).(lua.LNumber))
}

func font(L *lua.LState, n int) display.Font {
	return L.Get(n).(*lua.LUserData).Value.(display.Font)
}

func frame(L *lua.LState, n int) display.Renderer {
	return L.Get(n).(*lua.LUserData).Value.(display.Renderer)
}

func (k *Kraken) newFont(f display.Font) *lua.LUserData {
	ud := k.L.NewUserData()
	ud.Value = f
	return ud
}

// register the native functions required by the module
func (k *Kraken) register(module string) {
	var natives map[string]lua.LGFunction

	switch module {
	case "retroarch":
		natives = map[string]lua.LGFunction{
			"RARCH_LOG": k.log,
			"RARCH_ERR": k.err,
		}
	case "display":
		natives = map[string]lua.LGFunction{
			"display_draw_quad":  k.drawQuad,
			"display_cache_text": k.cacheText,
		}
	case "widgets":
		natives = map[string]lua.LGFunction{
			"widgets_get_font_regular": k.fontRegular,
			"widgets_get_font_bold":    k.fontBold,
			"widgets_flush_font":       k.flushFont,
		}
	case "core":
		natives = map[string]lua.LGFunction{
			"core_is_running": k.coreRunning,
			"core_read_byte":  k.readByte,
		}
	case "animations":
		natives = map[string]lua.LGFunction{
			"animations_push": k.pushAnimation,
		}
	}

	for n, f := range natives {
		k.L.SetGlobal(n, k.L.NewFunction(f))
	}
}

func (k *Kraken) log(L *lua.LState) int {
	if !valid(L, "RARCH_LOG", kindString) {
		return 0
	}
	logger.Log(logger.Allow, "addon", L.ToString(1))
	return 0
}

func (k *Kraken) err(L *lua.LState) int {
	if !valid(L, "RARCH_ERR", kindString) {
		return 0
	}
	logger.Log(logger.Allow, "addon error", L.ToString(1))
	return 0
}

// display_draw_quad(x, y, width, height, color, alpha, frame)
func (k *Kraken) drawQuad(L *lua.LState) int {
	if !valid(L, "display_draw_quad",
		kindNumber, kindNumber, kindNumber, kindNumber, kindInteger, kindNumber, kindFrame) {
		return 0
	}

	col := display.Hex(uint32(integer(L, 5))).WithAlpha(number(L, 6))
	frame(L, 7).DrawQuad(number(L, 1), number(L, 2), number(L, 3), number(L, 4), col)

	return 0
}

// display_cache_text(font, text, x, y, color, alignment, scale, shadow,
// shadow_offset, draw_outside, frame)
func (k *Kraken) cacheText(L *lua.LState) int {
	if !valid(L, "display_cache_text",
		kindFont, kindString, kindNumber, kindNumber, kindInteger, kindInteger,
		kindNumber, kindBool, kindNumber, kindBool, kindFrame) {
		return 0
	}

	align := display.Align(integer(L, 6))
	if align < display.AlignLeft || align > display.AlignRight {
		logger.Logf(logger.Allow, "kraken", "display_cache_text: invalid arguments")
		return 0
	}

	r := frame(L, 11)
	f := font(L, 1)
	if scale := number(L, 7); scale != 1.0 {
		f = r.Font(f.Size*scale, f.Bold)
	}

	text := L.ToString(2)
	x := number(L, 3)
	y := number(L, 4)

	// text that starts outside of the display is dropped unless requested
	if !lua.LVAsBool(L.Get(10)) {
		w, h := r.Size()
		if x < 0 || y < 0 || x > w || y > h {
			return 0
		}
	}

	if lua.LVAsBool(L.Get(8)) {
		off := number(L, 9)
		r.DrawText(f, text, x+off, y+off, display.Black.WithAlpha(0.5), align)
	}
	r.DrawText(f, text, x, y, display.Hex(uint32(integer(L, 5))), align)

	return 0
}

func (k *Kraken) fontRegular(L *lua.LState) int {
	if !valid(L, "widgets_get_font_regular") {
		return 0
	}
	L.Push(k.newFont(k.env.FontRegular()))
	return 1
}

func (k *Kraken) fontBold(L *lua.LState) int {
	if !valid(L, "widgets_get_font_bold") {
		return 0
	}
	L.Push(k.newFont(k.env.FontBold()))
	return 1
}

// text is drawn as soon as it is cached so there is nothing to flush
func (k *Kraken) flushFont(L *lua.LState) int {
	valid(L, "widgets_flush_font", kindFont, kindFrame)
	return 0
}

func (k *Kraken) coreRunning(L *lua.LState) int {
	if !valid(L, "core_is_running") {
		return 0
	}
	L.Push(lua.LBool(k.env.CoreRunning()))
	return 1
}

// core_read_byte(type, address) returns nil if the byte can not be read
func (k *Kraken) readByte(L *lua.LState) int {
	if !valid(L, "core_read_byte", kindInteger, kindInteger) {
		return 0
	}

	v, err := k.env.ReadByte(integer(L, 1), integer(L, 2))
	if err != nil {
		logger.Logf(logger.Allow, "kraken error", "core_read_byte: %v", err)
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(v))
	return 1
}

// animations_push(subject, target, duration, easing, callback). the subject
// is the name of a global number and the callback is the name of a global
// function or nil
func (k *Kraken) pushAnimation(L *lua.LState) int {
	if !valid(L, "animations_push",
		kindString, kindNumber, kindInteger, kindInteger, kindOptString) {
		return 0
	}

	subject := L.ToString(1)
	initial, ok := L.GetGlobal(subject).(lua.LNumber)
	if !ok {
		logger.Logf(logger.Allow, "kraken", "animations_push: %s is not a number", subject)
		return 0
	}

	easing := animation.Easing(integer(L, 4))
	if !easing.Valid() {
		logger.Logf(logger.Allow, "kraken", "animations_push: invalid easing (%d)", easing)
		return 0
	}

	var cb string
	if L.Get(5).Type() == lua.LTString {
		cb = L.ToString(5)
		if _, ok := L.GetGlobal(cb).(*lua.LFunction); !ok {
			logger.Logf(logger.Allow, "kraken", "animations_push: %s is not a function", cb)
			return 0
		}
	}

	// callbacks from an animation started in an earlier session are ignored
	env := k.env
	session := k.L
	a := scripting.Animation{
		Initial:  float32(initial),
		Target:   number(L, 2),
		Duration: float32(integer(L, 3)),
		Easing:   easing,

		// the animation is driven by the host. changes to the interpreter
		// state are posted back to the interpreter goroutine
		Tick: func(v float32) {
			env.Post(func() {
				if k.L != nil && k.L == session {
					k.L.SetGlobal(subject, lua.LNumber(v))
				}
			})
		},
	}

	if cb != "" {
		a.Done = func() {
			env.Post(func() {
				if k.L == nil || k.L != session {
					return
				}
				if err := k.CallGlobal(cb); err != nil {
					logger.Log(logger.Allow, "kraken error", err)
				}
			})
		}
	}

	env.PushAnimation(a)
	L.Push(lua.LTrue)

	return 1
}
