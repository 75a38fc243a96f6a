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

// Package gui defines the interface to the hosts that display the on-screen
// display. The sdlimgui host draws the OSD in an SDL window and the termosd
// host draws it in a terminal.
//
// The host owns the UI goroutine. Requests from other goroutines are queued
// with SetFeature() and applied at the start of the next frame by the
// Dispatcher type.
package gui

import "context"

// GUI defines the operations that can be performed on a host.
type GUI interface {
	// Send a request to set a GUI feature. Waits for the request to be
	// applied. Must not be called from the UI goroutine.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Same as SetFeature() but not waiting for the result. Useful in time
	// critical situations when you are absolutely sure there will be no
	// errors that need handling.
	SetFeatureNoError(request FeatureReq, args ...FeatureReqData)

	// Service runs the UI loop until the context is cancelled or the user
	// quits. Must be called from the main goroutine.
	Service(ctx context.Context) error

	// Destroy releases the resources of the host.
	Destroy()
}
