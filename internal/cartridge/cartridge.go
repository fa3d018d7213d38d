// Package cartridge reads CHIP-8 program images from disk.
package cartridge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/massung/chip-8/chip8"
)

// ErrEmpty is returned for a file with no program bytes.
var ErrEmpty = errors.New("empty program")

// Cartridge is a program image ready to be handed to the VM.
type Cartridge struct {
	Name string
	Data []byte

	// Truncated is set when the file held more than fits in memory.
	Truncated bool
}

// Load reads the program stored at path.
func Load(path string) (*Cartridge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	cart, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	cart.Name = filepath.Base(path)
	return cart, nil
}

// Read a program image, keeping at most chip8.ProgramSize bytes.
func Read(r io.Reader) (*Cartridge, error) {
	// one extra byte tells a full image from an oversized one
	data, err := io.ReadAll(io.LimitReader(r, chip8.ProgramSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	cart := &Cartridge{Data: data}
	if len(data) > chip8.ProgramSize {
		cart.Data = data[:chip8.ProgramSize]
		cart.Truncated = true
	}

	return cart, nil
}
