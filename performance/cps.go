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

package performance

// CalcCPS takes the number of cycles and duration (in seconds) and returns
// the cycles-per-second and the accuracy of that value as a percentage of the
// requested clock speed.
func CalcCPS(clockSpeed int, numCycles uint64, duration float64) (cps float64, accuracy float64) {
	if duration <= 0 || clockSpeed <= 0 {
		return 0, 0
	}
	cps = float64(numCycles) / duration
	accuracy = 100 * cps / float64(clockSpeed)
	return cps, accuracy
}
