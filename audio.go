package main

// typedef unsigned char byte;
// void Tone(void *data, byte *stream, int len);
import "C"
import (
	"sync/atomic"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	audioFreq  = 22050
	toneHz     = 240
	toneVolume = 0.25
)

var (
	/// beep is set while the sound timer is running.
	///
	beep atomic.Bool

	/// tonePhase is only touched by the audio thread.
	///
	tonePhase int

	audioOpen bool
)

/// InitAudio opens an audio device for the CHIP-8 virtual machine.
///
func InitAudio() error {
	spec := &sdl.AudioSpec{
		Freq:     audioFreq,
		Format:   sdl.AUDIO_F32,
		Channels: 1,
		Samples:  512,
		Callback: sdl.AudioCallback(C.Tone),
	}

	// open the device and start playing it
	if err := sdl.OpenAudio(spec, nil); err != nil {
		return err
	}
	audioOpen = true

	// the tone is silent until the sound timer is set
	sdl.PauseAudio(false)

	return nil
}

/// CloseAudio stops the tone and releases the device.
///
func CloseAudio() {
	if audioOpen {
		sdl.CloseAudio()
		audioOpen = false
	}
}

/// SetBeep turns the tone on or off.
///
func SetBeep(on bool) {
	beep.Store(on)
}

//export Tone
func Tone(_ unsafe.Pointer, stream *C.byte, length C.int) {
	buf := unsafe.Slice((*float32)(unsafe.Pointer(stream)), int(length)/4)

	on := beep.Load()
	period := audioFreq / toneHz

	// fill in the data with a square wave
	for i := range buf {
		buf[i] = 0

		if on {
			if tonePhase < period/2 {
				buf[i] = toneVolume
			} else {
				buf[i] = -toneVolume
			}
		}

		tonePhase = (tonePhase + 1) % period
	}
}
