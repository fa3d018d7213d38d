package chip8

import (
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

/// Option configures a VM at construction.
///
type Option func(*VM)

/// Quirks toggles non-standard behaviors seen in some interpreters.
///
type Quirks struct {
	/// AddIndexOverflow makes ADD I, Vx set VF to 1 when the result is
	/// above 0x0F00 and to 0 otherwise (Amiga interpreter behavior).
	///
	AddIndexOverflow bool
}

/// WithLogger sets the logger used for soft errors and faults.
///
func WithLogger(logger *log.Logger) Option {
	return func(vm *VM) {
		vm.log = logger
	}
}

/// WithSeed makes RND deterministic.
///
func WithSeed(seed uint64) Option {
	return func(vm *VM) {
		vm.rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	}
}

/// WithQuirks enables interpreter quirks.
///
func WithQuirks(q Quirks) Option {
	return func(vm *VM) {
		vm.quirks = q
	}
}

func defaultLogger() *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	return log.NewWithConfig(cfg)
}
