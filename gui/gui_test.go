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

package gui_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/osdwidgets/display"
	"github.com/jetsetilly/osdwidgets/gfxwidgets"
	"github.com/jetsetilly/osdwidgets/gui"
	"github.com/jetsetilly/osdwidgets/ozone"
	"github.com/jetsetilly/osdwidgets/test"
)

func newDispatcher(t *testing.T) (*gui.Dispatcher, *gfxwidgets.Context, *ozone.Menu, *display.Recorder) {
	t.Helper()
	rec := display.NewRecorder(1280, 720)
	osd := gfxwidgets.NewContext(nil)
	test.DemandSuccess(t, osd.Init(rec))
	menu := ozone.NewMenu(osd.Animation(), ozone.BasicBlack)
	t.Cleanup(func() {
		menu.Free()
		osd.Free()
	})
	return gui.NewDispatcher(osd, menu), osd, menu, rec
}

func TestRequests(t *testing.T) {
	d, osd, _, _ := newDispatcher(t)
	r := gui.NewRequests()

	result := make(chan error)
	go func() {
		result <- r.SetFeature(gui.ReqPushMessage, gfxwidgets.Message{Text: "from another goroutine"})
	}()

	// SetFeature() waits until the UI goroutine services the queue
	var err error
	for done := false; !done; {
		r.Service(d, nil)
		select {
		case err = <-result:
			done = true
		default:
		}
	}
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, osd.Pending(), 1)

	// requests that the dispatcher does not handle are passed to the host
	go func() {
		result <- r.SetFeature(gui.ReqFullScreen, true)
	}()
	var fullscreen bool
	fallback := func(req gui.FeatureReq, args ...gui.FeatureReqData) error {
		if req != gui.ReqFullScreen {
			return gui.ErrUnsupportedFeature
		}
		fullscreen = args[0].(bool)
		return nil
	}
	for done := false; !done; {
		r.Service(d, fallback)
		select {
		case err = <-result:
			done = true
		default:
		}
	}
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, fullscreen)

	err = d.SetFeature(gui.ReqFullScreen, true)
	test.ExpectSuccess(t, errors.Is(err, gui.ErrUnsupportedFeature))
}

func TestBadArguments(t *testing.T) {
	d, _, _, _ := newDispatcher(t)
	test.ExpectFailure(t, d.SetFeature(gui.ReqFPS, 60))
	test.ExpectFailure(t, d.SetFeature(gui.ReqPushMessage))
	test.ExpectSuccess(t, d.SetFeature(gui.ReqFPS, "60.0 fps"))
}

func TestVolume(t *testing.T) {
	d, _, _, rec := newDispatcher(t)

	test.ExpectSuccess(t, d.SetFeature(gui.ReqVolume, -6.0))
	db, mute := d.Volume()
	test.ExpectEquality(t, db, -6.0)
	test.ExpectFailure(t, mute)

	d.Frame(rec)
	_, ok := rec.FindText("-6.0 dB")
	test.ExpectSuccess(t, ok)

	// volume is clamped
	test.ExpectSuccess(t, d.SetFeature(gui.ReqVolume, 100.0))
	db, _ = d.Volume()
	test.ExpectEquality(t, db, 12.0)

	test.ExpectSuccess(t, d.Key(gui.EventKeyboard{Key: "m", Down: true}))
	_, mute = d.Volume()
	test.ExpectSuccess(t, mute)
}

func TestKeys(t *testing.T) {
	d, _, _, rec := newDispatcher(t)

	// key releases are ignored
	test.ExpectFailure(t, d.Key(gui.EventKeyboard{Key: "p"}))
	test.ExpectFailure(t, d.Key(gui.EventKeyboard{Key: "z", Down: true}))

	test.ExpectSuccess(t, d.Key(gui.EventKeyboard{Key: "p", Down: true}))
	rec.Reset()
	d.Frame(rec)
	_, ok := rec.FindText("Paused")
	test.ExpectSuccess(t, ok)

	test.ExpectFailure(t, d.Quit())
	test.ExpectSuccess(t, d.Key(gui.EventKeyboard{Key: "q", Down: true}))
	test.ExpectSuccess(t, d.Quit())
}

func TestMenu(t *testing.T) {
	d, osd, menu, rec := newDispatcher(t)

	test.ExpectFailure(t, d.MenuVisible())
	test.ExpectSuccess(t, d.Key(gui.EventKeyboard{Key: gui.KeyTab, Down: true}))
	test.ExpectSuccess(t, d.MenuVisible())

	// arrow keys go to the menu while it is visible
	test.ExpectFailure(t, menu.InSidebar())
	test.ExpectSuccess(t, d.Key(gui.EventKeyboard{Key: gui.KeyLeft, Down: true}))
	test.ExpectSuccess(t, menu.InSidebar())
	test.ExpectSuccess(t, d.Key(gui.EventKeyboard{Key: gui.KeyDown, Down: true}))
	test.ExpectEquality(t, menu.Selection(), 1)

	test.ExpectSuccess(t, d.SetFeature(gui.ReqMessagebox, "are you sure?"))
	d.Iterate()
	osd.Update(166)
	rec.Reset()
	d.Frame(rec)
	_, ok := rec.FindText("are you sure?")
	test.ExpectSuccess(t, ok)

	test.ExpectSuccess(t, d.Key(gui.EventKeyboard{Key: gui.KeyTab, Down: true}))
	test.ExpectFailure(t, d.MenuVisible())

	// without a menu the tab key is not bound
	d = gui.NewDispatcher(osd, nil)
	test.ExpectFailure(t, d.Key(gui.EventKeyboard{Key: gui.KeyTab, Down: true}))
	test.ExpectSuccess(t, d.SetFeature(gui.ReqMessagebox, "ignored"))
}
