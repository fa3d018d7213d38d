package chip8

import (
	"errors"
	"fmt"
)

/// Fatal fault kinds. A VM that faults stops executing until Reset.
///
var (
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrAddress        = errors.New("address out of range")
)

/// Fault is returned by Tick when the program does something the
/// machine cannot continue from. Err is one of the fault kinds above.
///
type Fault struct {
	Err error

	/// PC is the address of the faulting instruction.
	///
	PC uint16

	/// Opcode is the faulting instruction, if one was fetched.
	///
	Opcode uint16
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%v at %04X (opcode %04X)", f.Err, f.PC, f.Opcode)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
