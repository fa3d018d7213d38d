package term

import (
	"time"

	"github.com/massung/chip-8/chip8"
)

// HoldTime is how long a key counts as down after its last byte arrived.
// Terminals only send key presses, so a held key is seen through the
// keyboard auto repeat.
const HoldTime = 150 * time.Millisecond

// keyMap maps the left hand block of a QWERTY keyboard onto the hex pad.
var keyMap = map[byte]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// lookup maps a typed byte to a pad key, ignoring case.
func lookup(b byte) (byte, bool) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}

	key, ok := keyMap[b]
	return key, ok
}

// holds tracks when each pad key was last typed.
type holds struct {
	last [16]time.Time
	hold time.Duration
}

func (h *holds) press(key byte, now time.Time) {
	h.last[key&0xF] = now
}

// keypad returns every key typed within the hold time.
func (h *holds) keypad(now time.Time) chip8.Keypad {
	var k chip8.Keypad

	for key, t := range h.last {
		if !t.IsZero() && now.Sub(t) < h.hold {
			k = k.Press(byte(key))
		}
	}

	return k
}
