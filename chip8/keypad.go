package chip8

import "math/bits"

/// Keypad is the state of the 16 key hex pad. Bit i is set while key i
/// is held down. The layout of the original COSMAC VIP pad is:
///
///   1 2 3 C
///   4 5 6 D
///   7 8 9 E
///   A 0 B F
///
type Keypad uint16

/// Pressed is true if key (0-F) is down. Only the low nibble is used.
///
func (k Keypad) Pressed(key byte) bool {
	return k&(1<<(key&0xF)) != 0
}

/// Press returns the keypad with key held down.
///
func (k Keypad) Press(key byte) Keypad {
	return k | 1<<(key&0xF)
}

/// Lowest returns the smallest pressed key, or false if no key is down.
///
func (k Keypad) Lowest() (byte, bool) {
	if k == 0 {
		return 0, false
	}

	return byte(bits.TrailingZeros16(uint16(k))), true
}

/// waitState gates instruction fetch while LD Vx, K is pending.
///
type waitState struct {
	waiting bool

	// register that receives the key once one is pressed
	reg byte
}

/// wait enters the WaitingForKey(r) state.
///
func (w *waitState) wait(r byte) {
	w.waiting = true
	w.reg = r
}

/// resolve checks the keypad while waiting. It returns the register and
/// key to store when a key is down, leaving the wait state.
///
func (w *waitState) resolve(keys Keypad) (reg, key byte, ok bool) {
	if key, ok = keys.Lowest(); !ok {
		return 0, 0, false
	}

	reg = w.reg
	*w = waitState{}

	return reg, key, true
}
