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

// Names of the widget hooks forwarded to scripts.
const (
	HookInit             = "init"
	HookFree             = "free"
	HookContextReset     = "context_reset"
	HookContextDestroyed = "context_destroyed"
	HookLayout           = "layout"
	HookIterate          = "iterate"
	HookFrame            = "frame"
)

// Script receives the widget hooks. The renderer is nil for every hook except
// HookFrame.
type Script interface {
	Hook(name string, r display.Renderer)
}

type scriptWidget struct {
	script Script
}

// AttachScript adds a widget that forwards the widget hooks to the script.
func (ctx *Context) AttachScript(s Script) error {
	return ctx.AddWidget(&scriptWidget{script: s})
}

func (w *scriptWidget) Init(_ *Context) error {
	w.script.Hook(HookInit, nil)
	return nil
}

func (w *scriptWidget) Free() {
	w.script.Hook(HookFree, nil)
}

func (w *scriptWidget) ContextReset() {
	w.script.Hook(HookContextReset, nil)
}

func (w *scriptWidget) ContextDestroy() {
	w.script.Hook(HookContextDestroyed, nil)
}

func (w *scriptWidget) Layout() {
	w.script.Hook(HookLayout, nil)
}

func (w *scriptWidget) Iterate() {
	w.script.Hook(HookIterate, nil)
}

func (w *scriptWidget) Frame(r display.Renderer) {
	w.script.Hook(HookFrame, r)
}
