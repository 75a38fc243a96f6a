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

// Package gfxwidgets implements the on-screen display. The Context type owns
// a fixed set of widgets, the message queue being the most important. Other
// widgets show help messages, the volume, the fps counter, status indicators
// and screenshots. Scripts can add their own widgets with AttachScript().
//
// Messages can be pushed from any goroutine with Push() and PushTask(). The
// messages wait in a bounded queue until there is room for them on screen. A
// message pushed when the queue is full is dropped.
//
// Every other function of the Context, including Iterate() and Frame(), must
// be called from the same goroutine. This is usually the goroutine that owns
// the rendering context. When built with the "assertions" tag the rule is
// checked at runtime.
//
// Only one message is ever entering or leaving the screen at any one time.
// Messages waiting in the queue are shown in the order they were pushed.
package gfxwidgets
