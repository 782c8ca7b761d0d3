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

// Package romloader is used to specify and load the ROM that is to be
// attached to the emulated machine.
//
// ROMs can be loaded from the local filesystem or from an HTTP server. The
// data is checked for size before being handed to the machine. The SHA1 hash
// of every ROM is recorded in the Hash field of the Loader and can be used to
// check that the data is what was expected.
package romloader
