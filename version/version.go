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

// Package version reports the name and version of the application. Version
// information comes from the linker, if the number variable has been set, or
// from the build information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8"

// set by the linker for release builds. for example:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher8/version.number=v0.1.0"
var number string

// Info describes the build of the running program.
type Info struct {
	// the version number. "unreleased" if the program was built from a
	// repository without a version number and "local" if there is no
	// version control information at all
	Number string

	// the vcs revision. suffixed with "+dirty" if the source was modified
	Revision string

	// the Go version used to build the program
	GoVersion string

	// true if Number came from the linker or from a tagged module version
	Release bool
}

func (inf Info) String() string {
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Number, inf.GoVersion)
}

var info Info

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return info.Number, info.Revision, info.Release
}

// Build returns information about the build of the running program.
func Build() Info {
	return info
}

func readBuildInfo(bi *debug.BuildInfo, ok bool, linked string) Info {
	var inf Info

	var vcs bool
	var modified bool

	if ok {
		inf.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	switch {
	case linked != "":
		inf.Number = linked
		inf.Release = true
	case ok && strings.HasPrefix(bi.Main.Version, "v"):
		// installed with "go install" from a tagged module version
		inf.Number = bi.Main.Version
		inf.Release = true
	case vcs:
		inf.Number = "unreleased"
	default:
		inf.Number = "local"
	}

	return inf
}

func init() {
	bi, ok := debug.ReadBuildInfo()
	info = readBuildInfo(bi, ok, number)
}
