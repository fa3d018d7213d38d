// Package runner drives a CHIP-8 VM at a fixed tick rate against a
// frontend that supplies input and presents output.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/massung/chip-8/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Signal is what a frontend asks the runner to do with the next tick.
type Signal uint8

const (
	// Continue runs the tick.
	Continue Signal = iota

	// Hold skips the tick.
	Hold

	// Stop ends Run without an error.
	Stop
)

// Frontend is a host for the VM.
type Frontend interface {
	// Poll returns the keypad state for the next tick.
	Poll() (chip8.Keypad, Signal)

	// Frame presents the output of a tick. It is not called for held
	// ticks.
	Frame(out chip8.Output)
}

// Machine is the part of *chip8.VM the runner needs.
type Machine interface {
	Tick(keys chip8.Keypad) (chip8.Output, error)
}

// Run ticks vm hz times a second until the context is done, the frontend
// stops or the VM faults. A fault is returned as the error.
func Run(ctx context.Context, logger *log.Logger, vm Machine, fe Frontend, hz int) error {
	if hz <= 0 {
		return fmt.Errorf("invalid tick rate %d", hz)
	}

	clock := time.NewTicker(time.Second / time.Duration(hz))
	defer clock.Stop()

	logger.Debug("Running", log.Int("hz", hz))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-clock.C:
			keys, sig := fe.Poll()

			switch sig {
			case Stop:
				logger.Debug("Frontend stopped")
				return nil

			case Hold:
				continue
			}

			out, err := vm.Tick(keys)
			fe.Frame(out)

			if err != nil {
				return err
			}
		}
	}
}
