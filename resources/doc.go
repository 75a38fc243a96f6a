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

// Package resources contains functions to prepare paths for osdwidgets
// resources. The preferences file, saved themes, addon manifests and
// screenshots are all found relative to the resource path.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required but does not otherwise touch or create files.
//
// The base path is the ".osdwidgets" directory in the current working
// directory if it exists. Otherwise it is rooted in the user's configuration
// directory. On modern Linux systems the full path would be something like:
//
//	/home/user/.config/osdwidgets/
package resources
