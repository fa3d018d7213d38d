package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

/// logLines is the height of the log pane in lines of text.
///
const logLines = 16

/// DebugHelp shows the help text in the log.
///
func (h *Host) DebugHelp() {
	h.log.Println("Virtual keys:")
	h.log.Print("  1-2-3-4")
	h.log.Print("  Q-W-E-R")
	h.log.Print("  A-S-D-F")
	h.log.Print("  Z-X-C-V")
	h.log.Print("")
	h.log.Print("Emulation keys:")
	h.log.Print("  ESC      - Quit")
	h.log.Print("  BS       - Reset")
	h.log.Print("  Up/Down  - Scroll log")
	h.log.Print("  F2       - Reload ROM")
	h.log.Print("  F3       - Load ROM")
	h.log.Print("  F5/SPACE - Pause")
	h.log.Print("  F6/F10   - Step")
}

/// DebugAssembly renders the disassembled instructions around
/// the CHIP-8 program counter.
///
func (h *Host) DebugAssembly(x, y int32) {
	pc := h.vm.State().PC

	// keep the window still until the PC leaves it
	if h.address+2 > pc || h.address+30 <= pc || (h.address^pc)&1 == 1 {
		h.address = max(pc, 2) - 2
	}

	for i := int32(0); i < 32; i += 2 {
		address := h.address + uint16(i)

		if address == pc {
			if h.paused {
				Renderer.SetDrawColor(176, 32, 57, 255)
			} else {
				Renderer.SetDrawColor(57, 102, 176, 255)
			}

			// highlight the current instruction
			Renderer.FillRect(&sdl.Rect{
				X: x,
				Y: y + i*5 - 1,
				W: 200,
				H: 10,
			})
		}

		DrawText(h.vm.Disassemble(address), x, y+i*5)
	}
}

/// DebugRegisters shows the current value of all the CHIP-8 registers.
///
func (h *Host) DebugRegisters(x, y int32) {
	s := h.vm.State()

	for i := int32(0); i < 16; i++ {
		DrawText(fmt.Sprintf("  V%X - #%02X", i, s.V[i]), x, y+i*10)
	}

	// shift over for the other registers
	x += 70

	DrawText(fmt.Sprintf("PC - #%04X", s.PC), x, y)
	DrawText(fmt.Sprintf("SP - #%02X", s.Stack.SP), x, y+10)
	DrawText(fmt.Sprintf("I  - #%04X", s.I), x, y+30)
	DrawText(fmt.Sprintf("DT - #%02X", s.DT), x, y+50)
	DrawText(fmt.Sprintf("ST - #%02X", s.ST), x, y+60)

	if s.Waiting {
		DrawText(fmt.Sprintf("K  - V%X", s.WaitRegister), x, y+80)
	}
	if h.fault != nil {
		DrawText("FAULT", x, y+100)
	}
}

/// DebugLog shows the visible part of the log.
///
func (h *Host) DebugLog(x, y int32) {
	for _, line := range h.log.Window(logLines) {
		if len(line) >= 45 {
			line = line[:42] + "..."
		}

		DrawText(line, x, y)

		// advance to the next line
		y += 10
	}
}
