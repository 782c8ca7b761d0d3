// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package resources contains functions to prepare paths for Gopher8
// resources (the preferences file, screenshots, audio recordings).
//
// The JoinPath() function returns the path to the resource specified in the
// arguments. It creates any directories as required but does not otherwise
// touch or create files.
//
// For builds with the "release" build tag, the path returned by JoinPath() is
// rooted in the user's configuration directory. On modern Linux systems the
// full path would be something like:
//
//	/home/user/.config/gopher8/
//
// For non-"release" builds, the path is rooted in the current working
// directory:
//
//	.gopher8
//
// The UniqueFilename() function creates a filename that should not collide
// with an existing file.
package resources
