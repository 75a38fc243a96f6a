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

package notifications

// Notice describes events that somehow change the presentation of the
// on-screen display.
type Notice string

// List of defined notifications.
const (
	// the core has been paused or resumed. running clears all the
	// transport indicators
	NotifyPause Notice = "NotifyPause"
	NotifyRun   Notice = "NotifyRun"

	// transport indicators. each clears the other transport indicators
	NotifyFastForward Notice = "NotifyFastForward"
	NotifyRewind      Notice = "NotifyRewind"
	NotifySlowMotion  Notice = "NotifySlowMotion"

	// a screen shot is taking place. the widget context flashes the screen
	NotifyScreenshot Notice = "NotifyScreenshot"

	// audio has been muted or unmuted
	NotifyMute   Notice = "NotifyMute"
	NotifyUnmute Notice = "NotifyUnmute"
)

// Notify is used for direct communication between the frontend and the widget
// context.
type Notify interface {
	Notify(notice Notice) error
}
