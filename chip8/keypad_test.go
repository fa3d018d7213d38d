package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeypad(t *testing.T) {
	assert := assert.New(t)

	k := Keypad(0).Press(0x3).Press(0xE)
	assert.True(k.Pressed(0x3))
	assert.True(k.Pressed(0xE))
	assert.False(k.Pressed(0x0))

	// only the low nibble selects a key
	assert.True(k.Pressed(0x13))
	assert.True(k.Pressed(0xFE))
}

func TestKeypadLowest(t *testing.T) {
	assert := assert.New(t)

	_, ok := Keypad(0).Lowest()
	assert.False(ok)

	key, ok := Keypad(0).Press(0xF).Press(0x9).Lowest()
	assert.True(ok)
	assert.Equal(byte(0x9), key)

	key, ok = Keypad(0xFFFF).Lowest()
	assert.True(ok)
	assert.Equal(byte(0), key)
}

func TestWaitState(t *testing.T) {
	assert := assert.New(t)

	var w waitState
	w.wait(0xC)
	assert.True(w.waiting)

	_, _, ok := w.resolve(0)
	assert.False(ok)
	assert.True(w.waiting)

	reg, key, ok := w.resolve(Keypad(0).Press(0xB))
	assert.True(ok)
	assert.Equal(byte(0xC), reg)
	assert.Equal(byte(0xB), key)
	assert.False(w.waiting)
}

func TestStack(t *testing.T) {
	assert := assert.New(t)

	var s Stack
	_, ok := s.Pop()
	assert.False(ok)

	for i := 0; i < StackDepth; i++ {
		assert.True(s.Push(uint16(i)))
	}
	assert.False(s.Push(0xFFF))
	assert.Equal(StackDepth, s.SP)

	addr, ok := s.Pop()
	assert.True(ok)
	assert.Equal(uint16(StackDepth-1), addr)
}
