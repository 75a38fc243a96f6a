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

// Package display defines the contract between the on-screen widgets and the
// rendering backend. Widgets never draw directly. Instead they are given a
// Renderer during their frame call.
//
// The Recorder type implements Renderer by recording the draw calls. It is
// used by tests and as a command buffer for draw calls made by scripts from
// outside the UI goroutine. Recorded commands can be replayed onto another
// Renderer.
package display
