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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal errors returned by the Load() function.
const (
	EmptyROM      = "romloader: rom is empty: %s"
	ReadError     = "romloader: %v"
	ROMTooLarge   = "romloader: rom is too large: %s (%d bytes)"
	UnexpectedSum = "romloader: unexpected hash value: %s"
	NoFilename    = "romloader: no filename"
)

// Loader is used to specify the ROM to use when attaching to the machine.
type Loader struct {
	// filename of the ROM to load. can be a URL with an http or https scheme
	Filename string

	// expected hash of the loaded ROM. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename. The path and
// the file extension are removed.
func (rl Loader) ShortName() string {
	name := filepath.Base(rl.Filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// HasLoaded returns true if Load() has been successfully called.
func (rl Loader) HasLoaded() bool {
	return len(rl.Data) > 0
}

// Load the ROM data. Filenames with a scheme of http or https will be
// retrieved over the network. All other filenames are treated as local
// files.
//
// The data is rejected if it is empty or if it is too large to fit in the
// program area of memory. The data is never truncated.
func (rl *Loader) Load() error {
	if rl.HasLoaded() {
		return nil
	}

	if rl.Filename == "" {
		return curated.Errorf(NoFilename)
	}

	var data []uint8
	var err error

	scheme := ""
	if u, err := url.Parse(rl.Filename); err == nil {
		scheme = strings.ToLower(u.Scheme)
	}

	switch scheme {
	case "http", "https":
		data, err = loadHTTP(rl.Filename)
	default:
		data, err = os.ReadFile(rl.Filename)
	}
	if err != nil {
		return curated.Errorf(ReadError, err)
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyROM, rl.Filename)
	}

	if len(data) > memorymap.ProgramCapacity {
		return curated.Errorf(ROMTooLarge, rl.Filename, len(data))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if rl.Hash != "" && rl.Hash != hash {
		return curated.Errorf(UnexpectedSum, hash)
	}

	rl.Hash = hash
	rl.Data = data

	logger.Logf(logger.Allow, "romloader", "%s (%d bytes) sha1 %s", rl.ShortName(), len(rl.Data), rl.Hash)

	return nil
}

func loadHTTP(filename string) ([]uint8, error) {
	resp, err := http.Get(filename)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", filename, resp.Status)
	}

	// read no more than one byte beyond the capacity of the program area.
	// that is enough to detect a ROM that is too large
	return io.ReadAll(io.LimitReader(resp.Body, int64(memorymap.ProgramCapacity)+1))
}
