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

// Package hardware is the base package for the emulated machine. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Chip8 type is the root of the emulation and contains references to all
// the sub-systems. It does not render, read the keyboard or make sounds. For
// those purposes the FrameSink, KeypadSource and AudioSink interfaces can be
// attached to it.
//
// The Chip8 type exposes the Run() and RunForCycleCount() functions for
// running the emulation. The Cycle() function is provided for callers that
// want finer control.
package hardware
