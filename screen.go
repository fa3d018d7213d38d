package main

import (
	"fmt"

	"github.com/massung/chip-8/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	Screen *sdl.Texture
)

/// InitScreen creates the render target for the CHIP-8 video memory.
///
func InitScreen() error {
	var err error

	// create a render target for the display
	Screen, err = Renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, chip8.Width, chip8.Height)
	if err != nil {
		return fmt.Errorf("creating screen texture: %w", err)
	}

	return nil
}

/// RefreshScreen with the CHIP-8 video memory.
///
func RefreshScreen(fb *chip8.Framebuffer) {
	if err := Renderer.SetRenderTarget(Screen); err != nil {
		return
	}

	// the background color for the screen
	Renderer.SetDrawColor(143, 145, 133, 255)
	Renderer.Clear()

	// set the pixel color
	Renderer.SetDrawColor(17, 29, 43, 255)

	// draw all the lit pixels
	for y := 0; y < chip8.Height; y++ {
		if fb[y] == 0 {
			continue
		}

		for x := 0; x < chip8.Width; x++ {
			if fb.Pixel(x, y) {
				Renderer.DrawPoint(int32(x), int32(y))
			}
		}
	}

	// restore the render target
	Renderer.SetRenderTarget(nil)
}

/// CopyScreen to the window, each CHIP-8 pixel scale pixels wide.
///
func CopyScreen(x, y, scale int32) {
	src := sdl.Rect{W: chip8.Width, H: chip8.Height}
	dst := sdl.Rect{X: x, Y: y, W: chip8.Width * scale, H: chip8.Height * scale}

	// stretch the render target to fit
	Renderer.Copy(Screen, &src, &dst)
}
