package main

import (
	"errors"

	"github.com/massung/chip-8/internal/cartridge"
	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Mapping of modern keyboard to CHIP-8 keys.
	///
	KeyMap = map[sdl.Scancode]byte{
		sdl.SCANCODE_X: 0x0,
		sdl.SCANCODE_1: 0x1,
		sdl.SCANCODE_2: 0x2,
		sdl.SCANCODE_3: 0x3,
		sdl.SCANCODE_Q: 0x4,
		sdl.SCANCODE_W: 0x5,
		sdl.SCANCODE_E: 0x6,
		sdl.SCANCODE_A: 0x7,
		sdl.SCANCODE_S: 0x8,
		sdl.SCANCODE_D: 0x9,
		sdl.SCANCODE_Z: 0xA,
		sdl.SCANCODE_C: 0xB,
		sdl.SCANCODE_4: 0xC,
		sdl.SCANCODE_R: 0xD,
		sdl.SCANCODE_F: 0xE,
		sdl.SCANCODE_V: 0xF,
	}
)

/// ProcessEvents from SDL and map keys to the CHIP-8 keypad.
///
func (h *Host) ProcessEvents() {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			h.quit = true
		case *sdl.KeyboardEvent:
			key, ok := KeyMap[ev.Keysym.Scancode]

			switch {
			case ok && ev.Type == sdl.KEYDOWN:
				h.keys = h.keys.Press(key)
			case ok && ev.Type == sdl.KEYUP:
				h.keys &^= 1 << key
			case ev.Type == sdl.KEYDOWN && ev.Repeat == 0:
				h.control(ev.Keysym)
			}
		}
	}
}

/// control handles the emulation keys.
///
func (h *Host) control(sym sdl.Keysym) {
	switch sym.Scancode {
	case sdl.SCANCODE_ESCAPE:
		h.quit = true
	case sdl.SCANCODE_BACKSPACE:
		h.reset()

		// holding control during reset will reboot paused
		if sym.Mod&sdl.KMOD_CTRL != 0 {
			h.paused = true
		}
	case sdl.SCANCODE_UP, sdl.SCANCODE_PAGEUP:
		h.log.ScrollUp()
	case sdl.SCANCODE_DOWN, sdl.SCANCODE_PAGEDOWN:
		h.log.ScrollDown(logLines)
	case sdl.SCANCODE_HOME:
		h.log.Home()
	case sdl.SCANCODE_END:
		h.log.End()
	case sdl.SCANCODE_F2:
		if h.rom != "" {
			h.Load(h.rom)
		}
	case sdl.SCANCODE_F3:
		h.LoadDialog()
	case sdl.SCANCODE_H, sdl.SCANCODE_F1:
		h.DebugHelp()
	case sdl.SCANCODE_F5, sdl.SCANCODE_SPACE:
		h.paused = !h.paused
		if h.paused {
			h.log.Print("Paused")
		}
	case sdl.SCANCODE_F6, sdl.SCANCODE_F10:
		if h.paused {
			h.step = true
		}
	}
}

/// reset the VM back to the start of the loaded program.
///
func (h *Host) reset() {
	h.vm.Reset()
	h.fault = nil
	h.out.Video.Clear()

	SetBeep(false)
	h.log.Print("Reset")
}

/// Load a ROM from disk into the VM.
///
func (h *Host) Load(path string) {
	cart, err := cartridge.Load(path)
	if err != nil {
		h.logger.Error("Loading ROM failed", log.Err(err))
		h.log.Println("Load failed:", err.Error())
		return
	}

	load(h.logger, h.vm, cart)
	h.Loaded(path, cart)
	SetBeep(false)
}

/// LoadDialog asks for a ROM file and loads it.
///
func (h *Host) LoadDialog() {
	path, err := dialog.File().Title("Load CHIP-8 ROM").Load()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			h.logger.Error("File dialog failed", log.Err(err))
		}
		return
	}

	h.Load(path)
}
