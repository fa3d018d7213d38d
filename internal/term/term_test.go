package term

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/massung/chip-8/chip8"
	"github.com/massung/chip-8/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in  byte
		key byte
	}{
		{'1', 0x1}, {'4', 0xC}, {'q', 0x4}, {'R', 0xD},
		{'a', 0x7}, {'F', 0xE}, {'z', 0xA}, {'x', 0x0},
		{'c', 0xB}, {'V', 0xF},
	}

	for _, tt := range tests {
		key, ok := lookup(tt.in)
		assert.True(t, ok, "%q", tt.in)
		assert.Equal(t, tt.key, key, "%q", tt.in)
	}

	_, ok := lookup('p')
	assert.False(t, ok)
}

func TestHolds(t *testing.T) {
	assert := assert.New(t)

	t0 := time.Unix(1000, 0)
	h := holds{hold: HoldTime}
	assert.Equal(chip8.Keypad(0), h.keypad(t0))

	h.press(0x5, t0)
	h.press(0xA, t0.Add(100*time.Millisecond))

	k := h.keypad(t0.Add(HoldTime - time.Millisecond))
	assert.True(k.Pressed(0x5))
	assert.True(k.Pressed(0xA))

	k = h.keypad(t0.Add(HoldTime))
	assert.False(k.Pressed(0x5))
	assert.True(k.Pressed(0xA))
}

func TestRender(t *testing.T) {
	assert := assert.New(t)

	var fb chip8.Framebuffer
	fb.Blit([]byte{0x80, 0x80, 0x40}, 0, 0)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, &fb, "PONG"))

	lines := strings.Split(buf.String(), "\r\n")
	require.Len(t, lines, chip8.Height/2+3)

	assert.True(strings.HasPrefix(lines[0], cursorHome+"┌"))
	assert.True(strings.HasPrefix(lines[1], "│█"))
	assert.True(strings.HasPrefix(lines[2], "│ ▀"))
	assert.Equal("│"+strings.Repeat(" ", chip8.Width)+"│", lines[3])
	assert.True(strings.HasPrefix(lines[len(lines)-1], "PONG"))
}

func TestSquareWave(t *testing.T) {
	assert := assert.New(t)

	w := newSquareWave(8, 2) // period of 4 samples
	p := make([]byte, 8*4)

	n, err := w.Read(p)
	require.NoError(t, err)
	assert.Equal(len(p), n)
	assert.Equal(make([]byte, len(p)), p)

	w.on.Store(true)
	_, err = w.Read(p)
	require.NoError(t, err)

	var samples []float32
	for i := 0; i < len(p); i += 4 {
		samples = append(samples, math.Float32frombits(binary.LittleEndian.Uint32(p[i:])))
	}

	// phase carried on from the silent read
	assert.Equal([]float32{volume, volume, -volume, -volume, volume, volume, -volume, -volume}, samples)
}

func newTestFrontend(t *testing.T) (*Frontend, *io.PipeWriter, *bytes.Buffer) {
	t.Helper()

	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })

	var out bytes.Buffer
	fe := newFrontend(log.NewTestLogger(t), "TEST", r, &out)

	t0 := time.Unix(1000, 0)
	fe.now = func() time.Time { return t0 }

	return fe, w, &out
}

func TestFrontendKeys(t *testing.T) {
	fe, w, _ := newTestFrontend(t)

	_, err := w.Write([]byte("wV"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		keys, sig := fe.Poll()
		return sig == runner.Continue && keys.Pressed(0x5) && keys.Pressed(0xF)
	}, time.Second, time.Millisecond)
}

func TestFrontendQuit(t *testing.T) {
	fe, w, _ := newTestFrontend(t)

	_, err := w.Write([]byte{escape})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, sig := fe.Poll()
		return sig == runner.Stop
	}, time.Second, time.Millisecond)

	_, sig := fe.Poll()
	assert.Equal(t, runner.Stop, sig)
}

func TestFrontendInputClosed(t *testing.T) {
	fe, w, _ := newTestFrontend(t)
	require.NoError(t, w.Close())

	require.Eventually(t, func() bool {
		_, sig := fe.Poll()
		return sig == runner.Stop
	}, time.Second, time.Millisecond)
}

func TestFrontendFrame(t *testing.T) {
	assert := assert.New(t)
	fe, _, out := newTestFrontend(t)

	fe.Frame(chip8.Output{})
	assert.Contains(out.String(), "TEST")

	out.Reset()
	fe.Frame(chip8.Output{})
	assert.Empty(out.String())

	fe.Frame(chip8.Output{Changed: true})
	assert.NotEmpty(out.String())
}

func TestHandleEscapeSequences(t *testing.T) {
	assert := assert.New(t)
	fe, _, _ := newTestFrontend(t)
	now := fe.now()

	// up arrow, F1, F5 and alt-x between pad keys
	fe.handle([]byte("\x1b[Aq\x1bOPw\x1b[15~e\x1bxr"), now)
	assert.False(fe.quit)

	keys := fe.keys.keypad(now)
	assert.True(keys.Pressed(0x4))
	assert.True(keys.Pressed(0x5))
	assert.True(keys.Pressed(0x6))
	assert.True(keys.Pressed(0xD))
	assert.False(keys.Pressed(0x0), "x after ESC is not a pad key")

	fe.handle([]byte{'a', escape}, now)
	assert.True(fe.quit)
}

func TestFrontendArrowKeyDoesNotQuit(t *testing.T) {
	fe, w, _ := newTestFrontend(t)

	_, err := w.Write([]byte("\x1b[B"))
	require.NoError(t, err)
	_, err = w.Write([]byte("s"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		keys, sig := fe.Poll()
		return sig == runner.Continue && keys.Pressed(0x8)
	}, time.Second, time.Millisecond)
}
