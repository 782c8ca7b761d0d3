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

package romloader_test

import (
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func writeROM(t *testing.T, name string, data []uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestShortName(t *testing.T) {
	rl := romloader.NewLoader("/roms/games/PONG.ch8")
	test.ExpectEquality(t, rl.ShortName(), "PONG")
	test.ExpectFailure(t, rl.HasLoaded())
}

func TestLoadFile(t *testing.T) {
	fn := writeROM(t, "test.ch8", []uint8{0x00, 0xe0, 0x12, 0x00})

	rl := romloader.NewLoader(fn)
	test.ExpectSuccess(t, rl.Load())
	test.ExpectSuccess(t, rl.HasLoaded())
	test.ExpectEquality(t, len(rl.Data), 4)
	test.ExpectEquality(t, rl.Hash, "2cdd5bd3f4e30a4d56d9a8841ffcd5fbc2d0f735")

	// loading a second time does nothing
	test.ExpectSuccess(t, rl.Load())
	test.ExpectEquality(t, len(rl.Data), 4)
}

func TestExpectedHash(t *testing.T) {
	fn := writeROM(t, "test.ch8", []uint8{0x00, 0xe0})

	rl := romloader.NewLoader(fn)
	rl.Hash = "not a real hash"
	err := rl.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.UnexpectedSum))
	test.ExpectFailure(t, rl.HasLoaded())
}

func TestLoadErrors(t *testing.T) {
	rl := romloader.NewLoader("")
	test.ExpectSuccess(t, curated.Is(rl.Load(), romloader.NoFilename))

	rl = romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := rl.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.ReadError))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))

	rl = romloader.NewLoader(writeROM(t, "empty.ch8", []uint8{}))
	test.ExpectSuccess(t, curated.Is(rl.Load(), romloader.EmptyROM))
	test.ExpectFailure(t, rl.HasLoaded())
}

func TestLoadCapacity(t *testing.T) {
	rl := romloader.NewLoader(writeROM(t, "full.ch8", make([]uint8, memorymap.ProgramCapacity)))
	test.ExpectSuccess(t, rl.Load())
	test.ExpectEquality(t, len(rl.Data), memorymap.ProgramCapacity)

	rl = romloader.NewLoader(writeROM(t, "big.ch8", make([]uint8, memorymap.ProgramCapacity+1)))
	test.ExpectSuccess(t, curated.Is(rl.Load(), romloader.ROMTooLarge))
	test.ExpectFailure(t, rl.HasLoaded())
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/test.ch8":
			_, _ = w.Write([]uint8{0x00, 0xe0, 0x12, 0x00})
		case "/big.ch8":
			_, _ = w.Write(make([]uint8, memorymap.ProgramCapacity*2))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	rl := romloader.NewLoader(srv.URL + "/test.ch8")
	test.ExpectSuccess(t, rl.Load())
	test.ExpectEquality(t, len(rl.Data), 4)
	test.ExpectEquality(t, rl.ShortName(), "test")

	rl = romloader.NewLoader(srv.URL + "/big.ch8")
	test.ExpectSuccess(t, curated.Is(rl.Load(), romloader.ROMTooLarge))

	rl = romloader.NewLoader(srv.URL + "/missing.ch8")
	test.ExpectSuccess(t, curated.Is(rl.Load(), romloader.ReadError))
}
