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

// Package scripting runs addon scripts. An addon is written for one of the
// supported script engines. The kraken engine runs Lua and the lichen engine
// runs JavaScript.
//
// The Bridge type owns exactly one Engine. The engine runs on a goroutine of
// its own and all calls to the engine are made on that goroutine. Callers on
// other goroutines either wait for the result of a call with Call() or queue
// a function with Post(). In addition, every call into the interpreter is made
// with the bridge lock held.
//
// The Bridge implements the Script interface of the gfxwidgets package. The
// widget hooks of an addon are called with a display.Recorder and the
// recorded drawing is replayed onto the real renderer by the calling
// goroutine. This means that the addon never touches the rendering context
// directly.
//
// Addons are listed in a YAML manifest. For example:
//
//	addons:
//	  - name: clock
//	    engine: kraken
//	    script: clock.lua
//	  - name: hello
//	    engine: lichen
//	    script: hello.js
//	    disabled: true
//
// The script path is relative to the directory containing the manifest.
package scripting
