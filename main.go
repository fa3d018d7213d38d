package main

import (
	"context"
	"errors"
	"os"
	"runtime"

	"github.com/massung/chip-8/chip8"
	"github.com/massung/chip-8/internal/cartridge"
	"github.com/massung/chip-8/internal/config"
	"github.com/massung/chip-8/internal/runner"
	"github.com/massung/chip-8/internal/term"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// The SDL Window and Renderer.
	///
	Window   *sdl.Window
	Renderer *sdl.Renderer
)

func init() {
	runtime.LockOSThread()
}

func main() {
	ctx := app.Context()

	cfg, err := config.ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		logger := config.CreateLogger(cfg.Debug, cfg.Quiet)
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage(os.Stderr)
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(cfg.Debug, cfg.Quiet)

	opts := []chip8.Option{
		chip8.WithLogger(logger),
		chip8.WithQuirks(chip8.Quirks{AddIndexOverflow: cfg.QuirkAddIndex}),
	}
	if cfg.Seed != 0 {
		opts = append(opts, chip8.WithSeed(cfg.Seed))
	}

	vm := chip8.New(opts...)

	if err := run(ctx, logger, cfg, vm); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Interrupted")
			return
		}

		logger.Error("Emulation stopped", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, cfg config.Config, vm *chip8.VM) error {
	var cart *cartridge.Cartridge

	if cfg.ROM != "" {
		var err error
		if cart, err = cartridge.Load(cfg.ROM); err != nil {
			return err
		}

		load(logger, vm, cart)
	}

	if cfg.Frontend == config.FrontendTerm {
		fe, err := term.New(logger, cart.Name)
		if err != nil {
			return err
		}
		defer func() { _ = fe.Close() }()

		return runner.Run(ctx, logger, vm, fe, cfg.Hz)
	}

	host, err := NewHost(logger, vm, cfg.Scale)
	if err != nil {
		return err
	}
	defer host.Close()

	if cart != nil {
		host.Loaded(cfg.ROM, cart)
	}

	// a fault pauses the debugger, the user can reset or load another ROM
	for {
		err := runner.Run(ctx, logger, vm, host, cfg.Hz)

		var fault *chip8.Fault
		if !errors.As(err, &fault) {
			return err
		}

		host.Faulted(fault)
	}
}

/// load a cartridge into a fresh VM.
///
func load(logger *log.Logger, vm *chip8.VM, cart *cartridge.Cartridge) {
	vm.Load(make([]byte, chip8.ProgramSize))
	vm.Load(cart.Data)
	vm.Reset()

	logger.Info("Loaded ROM",
		log.String("name", cart.Name),
		log.Int("size", len(cart.Data)))

	if cart.Truncated {
		logger.Warn("ROM is larger than memory, the end was dropped")
	}
}
