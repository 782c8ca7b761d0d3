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

package easyterm

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt = 3  // end-of-text character
	KeySuspend   = 26 // substitute character
	KeyEsc       = 27
)

// list of ASCII codes that can follow KeyEsc
const (
	EscCursor = '['
	EscSS3    = 'O'
)

// KeyName returns the name of the key for the key sequence at the start of
// the data, along with the number of bytes in the sequence. Names follow the
// convention of the userinput package. An empty name is returned for sequences
// that are not recognised.
func KeyName(data []byte) (string, int) {
	if len(data) == 0 {
		return "", 0
	}

	switch data[0] {
	case KeyInterrupt:
		return "Interrupt", 1
	case KeySuspend:
		return "Suspend", 1
	case KeyEsc:
		if len(data) == 1 {
			return "Escape", 1
		}
		return escapeSequence(data)
	}

	c := data[0]
	switch {
	case c >= 'a' && c <= 'z':
		return string(c - 'a' + 'A'), 1
	case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return string(c), 1
	case c == ' ':
		return "Space", 1
	}

	return "", 1
}

// function keys sent by most terminals as "ESC [ n ~"
var tildeKeys = map[string]string{
	"11": "F1", "12": "F2", "13": "F3", "14": "F4",
	"15": "F5", "17": "F6", "18": "F7", "19": "F8",
	"20": "F9", "21": "F10", "23": "F11", "24": "F12",
}

func escapeSequence(data []byte) (string, int) {
	switch data[1] {
	case EscSS3:
		if len(data) < 3 {
			return "", len(data)
		}
		switch data[2] {
		case 'P':
			return "F1", 3
		case 'Q':
			return "F2", 3
		case 'R':
			return "F3", 3
		case 'S':
			return "F4", 3
		}
		return "", 3

	case EscCursor:
		// final byte of a control sequence is in the range 0x40 to 0x7e
		for i := 2; i < len(data); i++ {
			if data[i] >= 0x40 && data[i] <= 0x7e {
				if data[i] == '~' {
					return tildeKeys[string(data[2:i])], i + 1
				}
				return "", i + 1
			}
		}
		return "", len(data)
	}

	// escape followed by an unrelated key. the escape is a key press in its
	// own right
	return "Escape", 1
}
