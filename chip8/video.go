package chip8

import "math/bits"

/// Display resolution. Width matches the bit size of a row word.
///
const (
	Width  = 64
	Height = 32
)

/// Framebuffer is the 64x32 monochrome display. Each row is packed
/// MSB first: column 0 is bit 63 and column 63 is bit 0, which is the
/// same order as the bits of a sprite byte.
///
type Framebuffer [Height]uint64

/// Clear turns off every pixel.
///
func (fb *Framebuffer) Clear() {
	*fb = Framebuffer{}
}

/// Pixel returns true if the pixel at <x,y> is lit. Coordinates wrap.
///
func (fb *Framebuffer) Pixel(x, y int) bool {
	x, y = wrap(x, Width), wrap(y, Height)

	return fb[y]>>(Width-1-x)&1 != 0
}

/// Blit XORs a sprite onto the display with its top-left corner at
/// <x,y>. Each byte is one 8 pixel wide row. Rows wrap to the top and
/// columns wrap to the left edge. Returns true if any lit pixel was
/// touched by a set sprite bit.
///
func (fb *Framebuffer) Blit(sprite []byte, x, y byte) bool {
	col := int(x) % Width
	collision := false

	for i, b := range sprite {
		row := (int(y) + i) % Height

		// place the MSB at col, rotating anything past the edge around
		mask := bits.RotateLeft64(uint64(b)<<(Width-8), -col)

		if fb[row]&mask != 0 {
			collision = true
		}

		fb[row] ^= mask
	}

	return collision
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
