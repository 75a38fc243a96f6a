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
	"github.com/jetsetilly/osdwidgets/gfxwidgets"
	"github.com/jetsetilly/osdwidgets/notifications"
	"github.com/jetsetilly/osdwidgets/ozone"
)

// Key is the name of a key, independent of the host. Printable keys are
// named by the character they produce.
type Key string

// List of non-printable keys understood by the Dispatcher.
const (
	KeyUp     Key = "Up"
	KeyDown   Key = "Down"
	KeyLeft   Key = "Left"
	KeyRight  Key = "Right"
	KeyReturn Key = "Return"
	KeyEscape Key = "Escape"
	KeyF1     Key = "F1"
	KeyF12    Key = "F12"
	KeyTab    Key = "Tab"
)

// EventKeyboard is sent by the host when a key is pressed or released.
type EventKeyboard struct {
	Key  Key
	Down bool
}

type binding struct {
	request FeatureReq
	args    []FeatureReqData
}

// key bindings when the menu is not taking input
var bindings = map[Key]binding{
	"p":    {ReqNotify, []FeatureReqData{notifications.NotifyPause}},
	"r":    {ReqNotify, []FeatureReqData{notifications.NotifyRun}},
	"f":    {ReqNotify, []FeatureReqData{notifications.NotifyFastForward}},
	"w":    {ReqNotify, []FeatureReqData{notifications.NotifyRewind}},
	"s":    {ReqNotify, []FeatureReqData{notifications.NotifySlowMotion}},
	"m":    {ReqNotify, []FeatureReqData{notifications.NotifyMute}},
	"u":    {ReqNotify, []FeatureReqData{notifications.NotifyUnmute}},
	"+":    {ReqVolume, []FeatureReqData{1.0}},
	"-":    {ReqVolume, []FeatureReqData{-1.0}},
	"q":    {ReqQuit, nil},
	KeyF12: {ReqNotify, []FeatureReqData{notifications.NotifyScreenshot}},
	KeyF1: {ReqHelpMessage, []FeatureReqData{HelpMessage{
		Position: gfxwidgets.HelpTopRight,
		Title:    "Keys",
		Message:  "P pause, R run, F fast forward, W rewind, S slow motion. M mute, U unmute, +/- volume. Tab toggles the menu. Q quits.",
		Timeout:  -1,
	}}},
	KeyEscape: {ReqHelpMessageDismiss, []FeatureReqData{gfxwidgets.HelpTopRight}},
}

// key bindings when the menu is visible
var menuBindings = map[Key]ozone.Action{
	KeyUp:     ozone.ActionUp,
	KeyDown:   ozone.ActionDown,
	KeyLeft:   ozone.ActionLeft,
	KeyRight:  ozone.ActionRight,
	KeyReturn: ozone.ActionOK,
	KeyEscape: ozone.ActionCancel,
}
