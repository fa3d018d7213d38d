package main

import (
	"fmt"
	"time"

	"github.com/massung/chip-8/chip8"
	"github.com/massung/chip-8/internal/cartridge"
	"github.com/massung/chip-8/internal/console"
	"github.com/massung/chip-8/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

/// refreshRate caps how often the window is redrawn.
///
const refreshRate = time.Second / 60

/// Host is the SDL debugger frontend. It shows the display next to the
/// disassembly, the registers and a log, and can pause, step and reset
/// the VM.
///
type Host struct {
	vm     *chip8.VM
	logger *log.Logger
	log    *console.Console

	/// rom is the path of the loaded program, F2 reloads it.
	///
	rom string

	/// keys is the keypad state built from key down/up events.
	///
	keys chip8.Keypad

	/// out is the last output of the VM.
	///
	out chip8.Output

	paused bool
	step   bool
	quit   bool

	fault *chip8.Fault

	scale   int32
	address uint16
	refresh time.Time
}

/// NewHost opens the window and all SDL resources.
///
func NewHost(logger *log.Logger, vm *chip8.VM, scale int) (*Host, error) {
	var err error

	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	h := &Host{
		vm:     vm,
		logger: logger,
		log:    console.New(console.DefaultLimit),
		scale:  int32(scale),
	}

	// create the main window and renderer
	w, ht := h.layout()
	flags := sdl.WINDOW_OPENGL | sdl.WINDOWPOS_CENTERED
	if Window, Renderer, err = sdl.CreateWindowAndRenderer(w, ht, uint32(flags)); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	// set the icon
	if icon, err := sdl.LoadBMP("data/chip_8.bmp"); err == nil {
		mask := sdl.MapRGB(icon.Format, 255, 0, 255)

		// create the mask color key and set the icon
		_ = icon.SetColorKey(true, mask)
		Window.SetIcon(icon)
		icon.Free()
	}

	Window.SetTitle("CHIP-8")

	// initialize subsystems
	if err = InitScreen(); err != nil {
		h.Close()
		return nil, err
	}
	if err = InitAudio(); err != nil {
		logger.Warn("No audio, running silent", log.Err(err))
	}
	if err = InitFont(); err != nil {
		logger.Warn("No debug font, text is hidden", log.Err(err))
	}

	h.log.Print("CHIP-8, press H for help")
	if scale < 2 {
		h.log.Print("Scale is too small for the debug panes")
	}

	return h, nil
}

/// Close releases everything NewHost created.
///
func (h *Host) Close() {
	CloseAudio()

	if Font != nil {
		_ = Font.Destroy()
	}
	if Screen != nil {
		_ = Screen.Destroy()
	}
	if Renderer != nil {
		_ = Renderer.Destroy()
	}
	if Window != nil {
		_ = Window.Destroy()
	}

	sdl.Quit()
}

/// Loaded shows a newly loaded ROM in the title and log.
///
func (h *Host) Loaded(path string, cart *cartridge.Cartridge) {
	h.rom = path
	h.fault = nil
	h.out = chip8.Output{}

	Window.SetTitle("CHIP-8 - " + cart.Name)

	h.log.Println("Loaded", cart.Name)
	h.log.Printf("%d bytes", len(cart.Data))
	if cart.Truncated {
		h.log.Print("ROM too large, end dropped")
	}
}

/// Faulted pauses on a fault so it can be inspected.
///
func (h *Host) Faulted(f *chip8.Fault) {
	if h.fault != f {
		h.log.Println("FAULT:", f.Err.Error())
		h.log.Printf("PC #%04X OP #%04X", f.PC, f.Opcode)
		h.log.Print("BS resets")
	}

	h.fault = f
	h.paused = true
}

/// Poll handles SDL events and redraws the window, then returns the keypad
/// for the next tick.
///
func (h *Host) Poll() (chip8.Keypad, runner.Signal) {
	h.ProcessEvents()

	if now := time.Now(); now.Sub(h.refresh) >= refreshRate {
		h.refresh = now
		h.Refresh()
	}

	switch {
	case h.quit:
		return 0, runner.Stop
	case h.paused && !h.step:
		return h.keys, runner.Hold
	}

	h.step = false
	return h.keys, runner.Continue
}

/// Frame keeps the output of a tick for the next refresh.
///
func (h *Host) Frame(out chip8.Output) {
	SetBeep(out.Beep)

	h.out = out
}

/// layout returns the window size for the pixel scale.
///
func (h *Host) layout() (int32, int32) {
	sw, sh := chip8.Width*h.scale, chip8.Height*h.scale

	return sw + 230, max(sh, 162) + 190
}

/// Refresh redraws the whole window.
///
func (h *Host) Refresh() {
	Renderer.SetDrawColor(32, 42, 53, 255)
	Renderer.Clear()

	sw, sh := chip8.Width*h.scale, chip8.Height*h.scale
	top := max(sh, 162) + 16

	// frame various portions of the app
	Frame(8, 8, sw+2, sh+2)
	Frame(sw+18, 8, 204, 162)
	Frame(8, top, 146, 164)
	Frame(162, top, sw+58, 164)

	// update the video screen and copy it
	RefreshScreen(&h.out.Video)
	CopyScreen(10, 10, h.scale)

	// debug assembly, virtual registers and log
	h.DebugAssembly(sw+22, 12)
	h.DebugRegisters(12, top+4)
	h.DebugLog(166, top+4)

	// show the new frame
	Renderer.Present()
}

/// Frame draws a beveled border.
///
func Frame(x, y, w, h int32) {
	Renderer.SetDrawColor(0, 0, 0, 255)
	Renderer.DrawLine(x, y, x+w, y)
	Renderer.DrawLine(x, y, x, y+h)

	// highlight
	Renderer.SetDrawColor(95, 112, 120, 255)
	Renderer.DrawLine(x+w, y, x+w, y+h)
	Renderer.DrawLine(x, y+h, x+w, y+h)
}
