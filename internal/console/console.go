/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

// Package console is a scrolling text log shown in the debugger view.
package console

import (
	"fmt"
	"strings"
)

// DefaultLimit is the number of lines kept before the oldest are dropped.
const DefaultLimit = 500

// Console holds logged lines and the position the user has scrolled to.
type Console struct {
	// buf contains each line of logged text.
	buf []string

	// pos is the current user read position within the log.
	pos int

	// limit is the maximum number of lines kept.
	limit int
}

// New creates an empty console keeping at most limit lines.
func New(limit int) *Console {
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &Console{
		buf:   make([]string, 0, 100),
		limit: limit,
	}
}

// Print outputs a new line to the console.
func (c *Console) Print(s ...string) {
	c.append(strings.Join(s, " "))
}

// Printf outputs a formatted line to the console.
func (c *Console) Printf(format string, args ...any) {
	c.append(fmt.Sprintf(format, args...))
}

// Println outputs a new line with an empty line before it.
func (c *Console) Println(s ...string) {
	c.append("", strings.Join(s, " "))
}

func (c *Console) append(lines ...string) {
	scroll := c.pos == len(c.buf)

	c.buf = append(c.buf, lines...)

	// drop the oldest lines, keeping the read position on the same text
	if over := len(c.buf) - c.limit; over > 0 {
		c.buf = append(c.buf[:0], c.buf[over:]...)
		c.pos = max(c.pos-over, 0)
	}

	if scroll {
		c.pos = len(c.buf)
	}
}

// Len is the number of lines held.
func (c *Console) Len() int {
	return len(c.buf)
}

// Window returns up to n lines ending at the read position.
func (c *Console) Window(n int) []string {
	start := max(c.pos-n, 0)

	if start+n >= len(c.buf) {
		return c.buf[start:]
	}

	return c.buf[start : start+n]
}

// Home scrolls the console to the beginning.
func (c *Console) Home() {
	c.pos = 0
}

// End scrolls the console to the end.
func (c *Console) End() {
	c.pos = len(c.buf)
}

// ScrollUp scrolls the console back one line.
func (c *Console) ScrollUp() {
	c.pos--

	// clamp to home
	if c.pos < 0 {
		c.Home()
	}
}

// ScrollDown scrolls the console forward one line.
func (c *Console) ScrollDown(windowSize int) {
	c.pos++

	// if less than the window size, drop to it
	if c.pos <= windowSize {
		c.pos = windowSize + 1
	}

	// clamp to end
	if c.pos >= len(c.buf) {
		c.End()
	}
}
