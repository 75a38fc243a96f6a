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

// Package notifications allow communication from the frontend to the widget
// context. This is useful, for example, for the frontend to indicate that
// the core has been paused or that fast-forward has been engaged.
//
// Notifications are presented to the user by the widget context as on-screen
// indicators. Some notifications are sticky (eg. paused) and remain visible
// until a counterpart notification is received (eg. running).
package notifications
