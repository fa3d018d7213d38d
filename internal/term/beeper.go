package term

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate = 44100
	toneHz     = 240
	volume     = 0.25
)

// squareWave is an endless mono float32 stream that is silent until
// switched on.
type squareWave struct {
	on     atomic.Bool
	period int
	phase  int
}

func newSquareWave(rate, hz int) *squareWave {
	return &squareWave{period: rate / hz}
}

// Read fills p with little endian float32 samples.
func (s *squareWave) Read(p []byte) (int, error) {
	n := len(p) / 4
	on := s.on.Load()

	for i := 0; i < n; i++ {
		var v float32

		if on {
			v = volume
			if s.phase >= s.period/2 {
				v = -volume
			}
		}

		s.phase = (s.phase + 1) % s.period
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}

	return n * 4, nil
}

// Beeper plays the CHIP-8 tone through the default audio device.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player
	wave   *squareWave
}

// NewBeeper opens the audio device and starts a silent tone.
func NewBeeper() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	b := &Beeper{
		ctx:  ctx,
		wave: newSquareWave(sampleRate, toneHz),
	}

	b.player = ctx.NewPlayer(b.wave)
	b.player.Play()

	return b, nil
}

// Set turns the tone on or off.
func (b *Beeper) Set(on bool) {
	b.wave.on.Store(on)
}

// Close stops playback.
func (b *Beeper) Close() error {
	return b.player.Close()
}
