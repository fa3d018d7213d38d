package main

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Texture containing a predefined font for debugging, etc.
	///
	Font *sdl.Texture
)

/// InitFont loads the bitmap surface with font on it.
///
func InitFont() error {
	surface, err := sdl.LoadBMP("font.bmp")
	if err != nil {
		return err
	}
	defer surface.Free()

	// get the magenta color
	mask := sdl.MapRGB(surface.Format, 255, 0, 255)

	// set the mask color key
	if err = surface.SetColorKey(true, mask); err != nil {
		return err
	}

	// create the texture
	Font, err = Renderer.CreateTextureFromSurface(surface)
	return err
}

/// DrawText using the loaded font. The font only has upper case glyphs.
///
func DrawText(s string, x, y int32) {
	if Font == nil {
		return
	}

	src := sdl.Rect{W: 5, H: 7}
	dst := sdl.Rect{
		X: x,
		Y: y,
		W: 5,
		H: 7,
	}

	// loop over all the characters in the string
	for _, c := range strings.ToUpper(s) {
		if c > 32 && c < 94 {
			src.X = (c - 33) * 6

			// draw the character to the renderer
			Renderer.Copy(Font, &src, &dst)
		}

		// advance
		dst.X += 7
	}
}
