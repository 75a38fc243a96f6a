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

// Package kraken is the Lua engine for addon scripts. It is intended to be
// used through a scripting.Bridge.
//
// Modules are loaded on demand with require(). The available modules are
// retroarch, display, widgets, core and animations. A script only receives
// the kraken_widgets_* hook calls once it has required the widgets module.
//
// Native functions check their arguments. A native called with the wrong
// number or type of arguments logs "invalid arguments" and returns nothing.
package kraken
