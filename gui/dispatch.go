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

package gui

import (
	"fmt"
	"math"

	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/gfxwidgets"
	"github.com/jetsetilly/osdwidgets/logger"
	"github.com/jetsetilly/osdwidgets/notifications"
	"github.com/jetsetilly/osdwidgets/ozone"
	"github.com/jetsetilly/osdwidgets/task"
)

// volume limits in decibels
const (
	minVolume = -80.0
	maxVolume = 12.0
)

// Dispatcher applies feature requests and keyboard events to the widget
// context and the menu. It is shared by all hosts and must only be used from
// the UI goroutine.
type Dispatcher struct {
	osd  *gfxwidgets.Context
	menu *ozone.Menu

	menuVisible bool

	volume float64
	mute   bool

	quit bool
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type. The menu may be nil.
func NewDispatcher(osd *gfxwidgets.Context, menu *ozone.Menu) *Dispatcher {
	return &Dispatcher{
		osd:  osd,
		menu: menu,
	}
}

// MenuVisible returns true if the menu should be drawn.
func (d *Dispatcher) MenuVisible() bool {
	return d.menu != nil && d.menuVisible
}

// Quit returns true if ReqQuit has been received.
func (d *Dispatcher) Quit() bool {
	return d.quit
}

// Volume returns the current volume in decibels and the mute state.
func (d *Dispatcher) Volume() (float64, bool) {
	return d.volume, d.mute
}

// Iterate the widget context and the menu. Should be called once per frame.
func (d *Dispatcher) Iterate() {
	d.osd.Iterate()
	if d.MenuVisible() {
		d.menu.Iterate()
	}
}

// Frame draws the menu, if it is visible, and then the widgets.
func (d *Dispatcher) Frame(r display.Renderer) {
	if d.MenuVisible() {
		d.menu.Layout(r)
		d.menu.Frame(r)
	}
	d.osd.Frame(r)
}

// SetFeature applies the request immediately. Returns ErrUnsupportedFeature if
// the request must be handled by the host.
func (d *Dispatcher) SetFeature(request FeatureReq, args ...FeatureReqData) (returnErr error) {
	// a type assertion error caused by the wrong argument type is turned into
	// an error rather than crashing the UI loop
	defer func() {
		if r := recover(); r != nil {
			returnErr = fmt.Errorf("gui: %v: %v", request, r)
		}
	}()

	switch request {
	case ReqPushMessage:
		d.osd.Push(args[0].(gfxwidgets.Message))

	case ReqPushTask:
		d.osd.PushTask(args[0].(*task.Task))

	case ReqNotify:
		notice := args[0].(notifications.Notice)
		switch notice {
		case notifications.NotifyMute:
			d.mute = true
		case notifications.NotifyUnmute:
			d.mute = false
		}
		return d.osd.Notify(notice)

	case ReqHelpMessage:
		h := args[0].(HelpMessage)
		timeout := h.Timeout
		if timeout < 0 {
			timeout = d.osd.Prefs.HelpTimeout.Get().(int)
		}
		d.osd.HelpMessagePush(h.Position, h.Title, h.Message, true, timeout)

	case ReqHelpMessageDismiss:
		d.osd.HelpMessageDismiss(args[0].(gfxwidgets.HelpPosition), true)

	case ReqVolume:
		d.volume = math.Max(minVolume, math.Min(maxVolume, d.volume+args[0].(float64)))
		d.osd.VolumeUpdateAndShow(d.volume, d.mute)

	case ReqFPS:
		d.osd.SetFPSText(args[0].(string))

	case ReqSetMessage:
		d.osd.SetMessage(args[0].(string))

	case ReqMenu:
		d.showMenu(args[0].(bool))

	case ReqMessagebox:
		if d.menu == nil {
			return nil
		}
		msg := args[0].(string)
		if msg == "" {
			d.menu.HideMessagebox()
		} else {
			d.menu.ShowMessagebox(msg)
		}

	case ReqQuit:
		d.quit = true

	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFeature, request)
	}

	return nil
}

func (d *Dispatcher) showMenu(show bool) {
	if d.menu == nil || show == d.menuVisible {
		return
	}
	d.menuVisible = show
	if show {
		d.menu.ListOpen(d.menu.Depth())
	}
	logger.Logf(logger.Allow, "ozone", "menu visible: %v", show)
}

// Key applies the keyboard event. Returns false if the key has no binding.
func (d *Dispatcher) Key(ev EventKeyboard) bool {
	if !ev.Down {
		return false
	}

	if ev.Key == KeyTab && d.menu != nil {
		d.showMenu(!d.menuVisible)
		return true
	}

	if d.MenuVisible() {
		if action, ok := menuBindings[ev.Key]; ok {
			d.navigate(action)
			return true
		}
	}

	b, ok := bindings[ev.Key]
	if !ok {
		return false
	}

	err := d.SetFeature(b.request, b.args...)
	if err != nil {
		logger.Log(logger.Allow, "osd", err)
	}
	return true
}

// navigate applies the action to the menu. Actions not consumed by the
// sidebar open and close lists.
func (d *Dispatcher) navigate(action ozone.Action) {
	if d.menu.Navigate(action) {
		return
	}

	switch action {
	case ozone.ActionOK, ozone.ActionRight:
		d.menu.ListOpen(d.menu.Depth() + 1)
	case ozone.ActionCancel, ozone.ActionLeft:
		if d.menu.Depth() > 1 {
			d.menu.ListOpen(d.menu.Depth() - 1)
		} else if action == ozone.ActionCancel {
			d.showMenu(false)
		}
	}
}
