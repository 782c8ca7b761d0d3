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

// Package prefs facilitates the storage of preferences to disk. Preference
// values are represented by the Bool, String, Int and Float types. Values are
// added to a Disk instance with the Add() function and are then saved and
// loaded together.
//
//	var p preferences
//
//	dsk, err := prefs.NewDisk(filename)
//	dsk.Add("hardware.clockspeed", &p.clockSpeed)
//	err = dsk.Load()
//
// Each type is safe to read and write from different goroutines. Callback
// functions can be set for each value. The SetHookPre() callback is called
// before the value is changed and can veto the change by returning an
// error. The SetHookPost() callback is called after the change.
//
// The file format is a plain text file with one "key :: value" entry per
// line. The file may contain entries that are not known to the Disk instance
// doing the saving. These entries are preserved.
//
// Values on disk can be overridden for the duration of a session by the
// command line stack. See PushCommandLineStack() for details.
package prefs
