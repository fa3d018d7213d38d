// Package config parses the command line and builds the logger.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Frontends that can host the emulator.
const (
	FrontendSDL  = "sdl"
	FrontendTerm = "term"
)

// Config is everything the command line controls.
type Config struct {
	ROM      string
	Frontend string

	// Hz is the number of ticks per second. Each tick runs one opcode
	// and counts the timers down once.
	Hz    int
	Scale int

	// Seed makes RND repeatable, 0 picks a random seed.
	Seed uint64

	QuirkAddIndex bool

	Debug bool
	Quiet bool
}

// ParseFlags parses the arguments following the program name.
func ParseFlags(args []string, output io.Writer) (Config, error) {
	flags := flag.NewFlagSet("chip-8", flag.ContinueOnError)
	flags.SetOutput(output)

	var cfg Config
	readFlags(flags, &cfg)

	if err := flags.Parse(args); err != nil {
		return cfg, &UsageError{flags: flags, msg: err.Error()}
	}

	rest := flags.Args()
	if err := validateArgs(rest); err != nil {
		return cfg, err
	}
	if len(rest) == 1 {
		cfg.ROM = rest[0]
	}

	if err := normalize(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// UsageError is returned for a bad invocation.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the command synopsis and flag defaults.
func (e *UsageError) ShowUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: chip-8 [options] <rom>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(w)
		e.flags.PrintDefaults()
	}
	fmt.Fprintln(w)
}

func readFlags(flags *flag.FlagSet, cfg *Config) {
	flags.StringVar(&cfg.Frontend, "frontend", FrontendSDL, "frontend to run in (sdl, term)")
	flags.IntVar(&cfg.Hz, "hz", 60, "instructions per second, the timers count down once per instruction")
	flags.IntVar(&cfg.Scale, "scale", 8, "size of a CHIP-8 pixel in the SDL window")
	flags.Uint64Var(&cfg.Seed, "seed", 0, "seed for the random number generator, 0 for a random seed")
	flags.BoolVar(&cfg.QuirkAddIndex, "quirk-addi", false, "ADD I, Vx sets VF when I goes above 0xF00")
	flags.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&cfg.Quiet, "q", false, "only log errors")
}

func validateArgs(args []string) error {
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("unexpected argument %s after the ROM file, options go before the ROM", args[1]),
		}
	}
	return nil
}

func normalize(cfg *Config) error {
	cfg.Frontend = strings.ToLower(cfg.Frontend)

	switch cfg.Frontend {
	case FrontendSDL:
	case FrontendTerm:
		if cfg.ROM == "" {
			return fmt.Errorf("the %s frontend needs a ROM file", FrontendTerm)
		}
	default:
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s, %s",
			cfg.Frontend, FrontendSDL, FrontendTerm)
	}

	if cfg.Hz <= 0 {
		return fmt.Errorf("invalid tick rate %d", cfg.Hz)
	}
	if cfg.Scale <= 0 {
		return fmt.Errorf("invalid scale %d", cfg.Scale)
	}

	return nil
}

// CreateLogger creates a logger with appropriate settings.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
