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

// Package ozone contains the layout metrics, the colour themes and the
// animated state of the ozone menu.
//
// Themes can be loaded from TOML files. For example:
//
//	name = "midnight"
//
//	[colors]
//	background = "#1b1b2f"
//	background_libretro_running = "#1b1b2fe6"
//	...
//
// Every colour named by the Theme type must be present in the file.
package ozone
