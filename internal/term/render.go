package term

import (
	"io"
	"strings"

	"github.com/massung/chip-8/chip8"
)

const (
	cursorHome = "\x1b[H"
	clearAll   = "\x1b[2J"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

// cells are indexed by top<<1 | bottom pixel.
var cells = [4]string{" ", "▄", "▀", "█"}

// render writes the framebuffer two pixel rows per text line, with a
// border around it.
func render(w io.Writer, fb *chip8.Framebuffer, status string) error {
	var b strings.Builder

	b.WriteString(cursorHome)
	b.WriteString("┌" + strings.Repeat("─", chip8.Width) + "┐\r\n")

	for y := 0; y < chip8.Height; y += 2 {
		b.WriteString("│")

		for x := 0; x < chip8.Width; x++ {
			i := 0
			if fb.Pixel(x, y) {
				i |= 2
			}
			if fb.Pixel(x, y+1) {
				i |= 1
			}
			b.WriteString(cells[i])
		}

		b.WriteString("│\r\n")
	}

	b.WriteString("└" + strings.Repeat("─", chip8.Width) + "┘\r\n")
	b.WriteString(status)
	b.WriteString("\x1b[K")

	_, err := io.WriteString(w, b.String())
	return err
}
