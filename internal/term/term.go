// Package term runs CHIP-8 programs in a text terminal. The display is
// drawn with half block characters and the keypad is read from raw stdin.
package term

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/massung/chip-8/chip8"
	"github.com/massung/chip-8/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const (
	ctrlC  = 0x03
	escape = 0x1B
)

// Frontend is a runner.Frontend on a terminal.
type Frontend struct {
	logger *log.Logger
	name   string

	in  chan []byte
	out io.Writer

	keys  holds
	now   func() time.Time
	quit  bool
	drawn bool

	beeper *Beeper

	fd       int
	oldState *term.State
}

// New puts stdin into raw mode and starts reading keys. Sound is skipped
// with a warning if no audio device can be opened. Close must be called
// to restore the terminal.
func New(logger *log.Logger, name string) (*Frontend, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal")
	}

	if w, h, err := term.GetSize(fd); err == nil && (w < chip8.Width+2 || h < chip8.Height/2+3) {
		logger.Warn("Terminal is smaller than the display",
			log.Int("columns", w),
			log.Int("rows", h))
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting raw mode: %w", err)
	}

	fe := newFrontend(logger, name, os.Stdin, os.Stdout)
	fe.fd = fd
	fe.oldState = oldState

	if fe.beeper, err = NewBeeper(); err != nil {
		logger.Warn("No audio, running silent", log.Err(err))
	}

	_, _ = io.WriteString(fe.out, clearAll+hideCursor)

	return fe, nil
}

func newFrontend(logger *log.Logger, name string, in io.Reader, out io.Writer) *Frontend {
	fe := &Frontend{
		logger: logger,
		name:   name,
		in:     make(chan []byte, 64),
		out:    out,
		keys:   holds{hold: HoldTime},
		now:    time.Now,
	}

	go fe.read(in)

	return fe
}

// read forwards input until the reader fails. Bytes from one read stay
// together so escape sequences are never split. The goroutine is left
// blocked in Read when the program exits.
func (fe *Frontend) read(r io.Reader) {
	for {
		buf := make([]byte, 16)

		n, err := r.Read(buf)
		if n > 0 {
			fe.in <- buf[:n]
		}
		if err != nil {
			close(fe.in)
			return
		}
	}
}

// Poll drains typed bytes and returns the keys held down.
func (fe *Frontend) Poll() (chip8.Keypad, runner.Signal) {
	now := fe.now()

drain:
	for !fe.quit {
		select {
		case chunk, ok := <-fe.in:
			if !ok {
				fe.quit = true
				break drain
			}
			fe.handle(chunk, now)
		default:
			break drain
		}
	}

	if fe.quit {
		return 0, runner.Stop
	}

	return fe.keys.keypad(now), runner.Continue
}

// handle typed bytes. A lone ESC quits, ESC followed by more bytes is an
// arrow or function key and is skipped.
func (fe *Frontend) handle(chunk []byte, now time.Time) {
	for i := 0; i < len(chunk); i++ {
		b := chunk[i]

		switch {
		case b == ctrlC:
			fe.quit = true
			return
		case b == escape && i == len(chunk)-1:
			fe.quit = true
			return
		case b == escape:
			i = skipSequence(chunk, i+1)
		default:
			if key, ok := lookup(b); ok {
				fe.keys.press(key, now)
			}
		}
	}
}

// skipSequence returns the index of the last byte of the escape sequence
// starting after ESC at i.
func skipSequence(chunk []byte, i int) int {
	if chunk[i] != '[' && chunk[i] != 'O' {
		// ESC x is an alt modified key
		return i
	}

	// parameter and intermediate bytes, then one final byte
	for i++; i < len(chunk); i++ {
		if chunk[i] >= 0x40 && chunk[i] <= 0x7E {
			return i
		}
	}

	return len(chunk) - 1
}

// Frame redraws the display when it changed and sets the tone.
func (fe *Frontend) Frame(out chip8.Output) {
	if fe.beeper != nil {
		fe.beeper.Set(out.Beep)
	}

	if !out.Changed && fe.drawn {
		return
	}

	status := fmt.Sprintf("%s  [ESC quits]", fe.name)
	if err := render(fe.out, &out.Video, status); err != nil {
		fe.logger.Error("Drawing failed", log.Err(err))
		fe.quit = true
		return
	}

	fe.drawn = true
}

// Close silences the tone and gives the terminal back.
func (fe *Frontend) Close() error {
	var err error

	if fe.beeper != nil {
		err = fe.beeper.Close()
	}

	_, _ = io.WriteString(fe.out, showCursor+"\r\n")

	if fe.oldState != nil {
		err = errors.Join(err, term.Restore(fe.fd, fe.oldState))
		fe.oldState = nil
	}

	return err
}
