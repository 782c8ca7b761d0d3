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

// Package logger is the central log for Gopher8. Log entries are made with
// the Log() and Logf() functions, and are tagged with a short string that
// identifies the part of the emulation that made the entry.
//
// Every log request must be accompanied by a Permission. The emulation
// environment implements the Permission interface and will refuse logging
// for emulations that are not the main emulation (eg. a headless run made
// to create a screenshot for a test).
//
// Repeated entries are collapsed into a single entry with a repeat count.
//
// The central log can be echoed to an io.Writer with SetEcho(). This is
// useful for the terminal based interface and for the -log option on the
// command line.
package logger
