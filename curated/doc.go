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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf() which takes a pattern string and
// a list of values, in the same way as fmt.Errorf().
//
// The pattern string is retained by the error and can be tested for with the
// Is() and Has() functions. Packages in Gopher8 therefore define the pattern
// as an exported constant so that callers can identify the error without
// comparing the formatted message:
//
//	const StackOverflow = "cpu: stack overflow: call at %#04x"
//
//	err := curated.Errorf(StackOverflow, pc)
//
//	if curated.Is(err, StackOverflow) {
//		...
//	}
//
// Is() matches only the outermost error. Has() searches the values of the
// error for another curated error with the pattern.
//
//	err := curated.Errorf("hardware: %v", curated.Errorf(StackOverflow, pc))
//
//	curated.Is(err, StackOverflow)  // false
//	curated.Has(err, StackOverflow) // true
//
// The Error() function removes duplicate adjacent parts of the message. This
// means that an error can be wrapped with a prefix that it already carries
// without the message stuttering. For example, "cpu: cpu: stack overflow"
// will be normalised to "cpu: stack overflow".
//
// Curated errors also implement Unwrap() so that the standard library's
// errors.Is() and errors.As() functions can see through them to any
// uncurated error in the chain (eg. an io.EOF from a file read).
package curated
