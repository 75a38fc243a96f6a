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

// Package lichen is the JavaScript engine for addon scripts. It is intended
// to be used through a scripting.Bridge.
//
// Scripts can call RARCH_LOG() and RARCH_ERR() and define any of the
// kraken_widgets_* hook functions. The frame hook is called with a frame
// object that has drawQuad() and drawText() methods.
package lichen

import (
	"errors"
	"fmt"
	"time"

	"github.com/dop251/goja"

	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/logger"
	"github.com/jetsetilly/osdwidgets/scripting"
)

// a script that takes longer than this to return from a call is interrupted
const callTimeout = time.Second

// ErrTimeout is returned when a call to a script is interrupted.
var ErrTimeout = errors.New("lichen: script timed out")

// Lichen implements the scripting.Engine interface for JavaScript.
type Lichen struct {
	env scripting.Env
	vm  *goja.Runtime

	timeout time.Duration
}

// New is the preferred method of initialisation for the Lichen type.
func New() *Lichen {
	return &Lichen{
		timeout: callTimeout,
	}
}

// SetTimeout changes how long a script can run before being interrupted.
func (l *Lichen) SetTimeout(timeout time.Duration) {
	l.timeout = timeout
}

func (l *Lichen) Name() string {
	return "lichen"
}

func (l *Lichen) Init(env scripting.Env) error {
	l.env = env
	l.vm = goja.New()

	natives := map[string]func(goja.FunctionCall) goja.Value{
		"RARCH_LOG": l.log,
		"RARCH_ERR": l.err,
	}
	for n, f := range natives {
		if err := l.vm.Set(n, f); err != nil {
			l.vm = nil
			return fmt.Errorf("lichen: %w", err)
		}
	}

	return nil
}

func (l *Lichen) Close() {
	if l.vm == nil {
		return
	}
	l.vm.Interrupt("closed")
	l.vm = nil
}

// run the function with the interrupt timer
func (l *Lichen) run(f func() error) error {
	vm := l.vm
	t := time.AfterFunc(l.timeout, func() {
		vm.Interrupt(ErrTimeout)
	})
	defer func() {
		t.Stop()
		vm.ClearInterrupt()
	}()

	err := f()

	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		if v, ok := interrupted.Value().(error); ok {
			return v
		}
	}

	return err
}

func (l *Lichen) Load(name string, src []byte) error {
	if l.vm == nil {
		return scripting.ErrNotInitialised
	}

	p, err := goja.Compile(name, string(src), false)
	if err != nil {
		return fmt.Errorf("lichen: %w", err)
	}

	err = l.run(func() error {
		_, err := l.vm.RunProgram(p)
		return err
	})
	if err != nil {
		return fmt.Errorf("lichen: %s: %w", name, err)
	}

	return nil
}

func (l *Lichen) CallHook(hook string, frame display.Renderer) error {
	if l.vm == nil {
		return scripting.ErrNotInitialised
	}

	fn, ok := goja.AssertFunction(l.vm.Get(scripting.HookPrefix + hook))
	if !ok {
		return nil
	}

	var args []goja.Value
	if frame != nil {
		args = append(args, l.newFrame(frame))
	}

	err := l.run(func() error {
		_, err := fn(goja.Undefined(), args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("lichen: %s: %w", hook, err)
	}

	return nil
}

func (l *Lichen) SetGlobalNumber(name string, v float64) error {
	if l.vm == nil {
		return scripting.ErrNotInitialised
	}
	return l.vm.Set(name, v)
}

func (l *Lichen) CallGlobal(name string) error {
	if l.vm == nil {
		return scripting.ErrNotInitialised
	}

	fn, ok := goja.AssertFunction(l.vm.Get(name))
	if !ok {
		return fmt.Errorf("lichen: %s is not a function", name)
	}

	return l.run(func() error {
		_, err := fn(goja.Undefined())
		return err
	})
}

func invalid(fn string) goja.Value {
	logger.Logf(logger.Allow, "lichen", "%s: invalid arguments", fn)
	return goja.Undefined()
}

func (l *Lichen) log(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) != 1 {
		return invalid("RARCH_LOG")
	}
	logger.Log(logger.Allow, "addon", call.Argument(0).String())
	return goja.Undefined()
}

func (l *Lichen) err(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) != 1 {
		return invalid("RARCH_ERR")
	}
	logger.Log(logger.Allow, "addon error", call.Argument(0).String())
	return goja.Undefined()
}

// the frame object passed to the frame hook
func (l *Lichen) newFrame(r display.Renderer) *goja.Object {
	obj := l.vm.NewObject()
	w, h := r.Size()
	_ = obj.Set("width", w)
	_ = obj.Set("height", h)

	// drawQuad(x, y, width, height, color, alpha)
	_ = obj.Set("drawQuad", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) != 6 {
			return invalid("drawQuad")
		}
		a := call.Arguments
		col := display.Hex(uint32(a[4].ToInteger())).WithAlpha(float32(a[5].ToFloat()))
		r.DrawQuad(float32(a[0].ToFloat()), float32(a[1].ToFloat()),
			float32(a[2].ToFloat()), float32(a[3].ToFloat()), col)
		return goja.Undefined()
	})

	// drawText(text, x, y, color, bold)
	_ = obj.Set("drawText", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) != 5 {
			return invalid("drawText")
		}
		a := call.Arguments
		font := l.env.FontRegular()
		if a[4].ToBoolean() {
			font = l.env.FontBold()
		}
		r.DrawText(font, a[0].String(), float32(a[1].ToFloat()), float32(a[2].ToFloat()),
			display.Hex(uint32(a[3].ToInteger())), display.AlignLeft)
		return goja.Undefined()
	})

	return obj
}
