package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlitXor(t *testing.T) {
	assert := assert.New(t)
	var fb Framebuffer

	assert.False(fb.Blit([]byte{0b10100000}, 0, 0))
	assert.True(fb.Pixel(0, 0))
	assert.False(fb.Pixel(1, 0))
	assert.True(fb.Pixel(2, 0))

	// overlapping only at column 2
	assert.True(fb.Blit([]byte{0b01100000}, 0, 0))
	assert.True(fb.Pixel(0, 0))
	assert.True(fb.Pixel(1, 0))
	assert.False(fb.Pixel(2, 0))
}

func TestBlitTwiceRestores(t *testing.T) {
	var fb Framebuffer
	sprite := font[0x8*GlyphSize : 0x9*GlyphSize]

	fb.Blit(sprite, 33, 17)
	before := fb
	assert.True(t, fb.Blit(sprite, 33, 17))
	assert.Equal(t, Framebuffer{}, fb)
	assert.NotEqual(t, Framebuffer{}, before)
}

func TestBlitWraps(t *testing.T) {
	assert := assert.New(t)
	var fb Framebuffer

	fb.Blit([]byte{0xFF, 0x81}, 62, 31)

	// first row at the bottom, split across both edges
	assert.True(fb.Pixel(62, 31))
	assert.True(fb.Pixel(63, 31))
	assert.True(fb.Pixel(0, 31))
	assert.True(fb.Pixel(5, 31))
	assert.False(fb.Pixel(6, 31))
	assert.False(fb.Pixel(61, 31))

	// second row wrapped to the top
	assert.True(fb.Pixel(62, 0))
	assert.False(fb.Pixel(63, 0))
	assert.True(fb.Pixel(5, 0))
}

func TestBlitCoordinatesModulo(t *testing.T) {
	var a, b Framebuffer

	a.Blit([]byte{0xF0}, 3, 4)
	b.Blit([]byte{0xF0}, 3+Width, 4+Height)

	assert.Equal(t, a, b)
}

func TestPixelWraps(t *testing.T) {
	var fb Framebuffer
	fb[0] = 1

	assert.True(t, fb.Pixel(Width-1, 0))
	assert.True(t, fb.Pixel(-1, Height))
}

func TestClear(t *testing.T) {
	fb := Framebuffer{1, 2, 3}
	fb.Clear()

	assert.Equal(t, Framebuffer{}, fb)
}
