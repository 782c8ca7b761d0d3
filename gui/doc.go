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

// Package gui is an abstraction layer for real GUI implementations. It
// defines the GUI interface that all implementations must satisfy and provides
// the helpers that are common to all of them.
//
// The emulation runs in its own goroutine. GUI implementations receive frames
// from that goroutine through the SetFrame() function. Frames are handed over
// as complete values through the FrameStore type and never shared.
//
// Many GUI solutions (notably SDL) require event handling to happen on the
// main thread. The Service() function should only ever be called from the
// main thread.
package gui
