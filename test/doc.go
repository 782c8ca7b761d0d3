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

// Package test bundles helper functions that remove common boilerplate from
// the tests in Gopher8. They are intended to be used with the standard go
// test harness.
//
// The Expect functions report a failed test but allow the test to continue.
// The Demand functions are the same except that a failure is fatal. The
// Demand functions should be used when a value is needed by subsequent
// tests, for example a length of a slice before iterating over it.
//
// ExpectSuccess() and ExpectFailure() interpret a value according to its
// type. Currently supported types:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> is success
//
// The nil value is treated as success because that is how a nil error is
// normally interpreted.
//
// All test functions take an optional list of tags. The tags are added to
// the failure message to help identify which test in a table of tests has
// failed.
//
// The CompareWriter and RingWriter types implement io.Writer and are useful
// for capturing output for later comparison.
package test
