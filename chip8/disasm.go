package chip8

import (
	"fmt"
	"strings"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

/// Disassemble the CHIP-8 instruction at an address.
///
func (vm *VM) Disassemble(address uint16) string {
	if !inRange(address, InstructionSize) {
		return ""
	}

	// fetch the instruction at this location
	inst := uint16(vm.memory[address])<<8 | uint16(vm.memory[address+1])

	// end of program memory?
	if inst == 0 {
		return fmt.Sprintf("%04X -", address)
	}

	d := Decode(inst)
	if d.Op == OpUnknown {
		return fmt.Sprintf("%04X - ??", address)
	}

	ops := operands(d)
	if ops == "" {
		return fmt.Sprintf("%04X - %s", address, mnemonic(d))
	}

	return fmt.Sprintf("%04X - %-6s %s", address, mnemonic(d), ops)
}

/// mnemonic looks up the assembler name of an instruction in the
/// retrogolib opcode table, falling back to the operation name.
///
func mnemonic(d Instruction) string {
	for _, op := range chip8cpu.Opcodes[int(d.Opcode>>12)] {
		if op.Instruction != nil && op.Info.Mask&d.Opcode == op.Info.Value {
			return strings.ToUpper(op.Instruction.Name)
		}
	}

	return strings.ToUpper(d.Op.String())
}

/// operands formats the operand list of a decoded instruction.
///
func operands(d Instruction) string {
	switch d.Op {
	case OpJump, OpCall:
		return fmt.Sprintf("#%03X", d.Addr)
	case OpJumpV0:
		return fmt.Sprintf("V0, #%03X", d.Addr)
	case OpLoadI:
		return fmt.Sprintf("I, #%03X", d.Addr)
	case OpSkipEqImm, OpSkipNeImm, OpLoadImm, OpAddImm, OpRand:
		return fmt.Sprintf("V%X, #%02X", d.X, d.Byte)
	case OpSkipEqReg, OpSkipNeReg, OpLoadReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpSubn:
		return fmt.Sprintf("V%X, V%X", d.X, d.Y)
	case OpShr, OpShl, OpSkipKey, OpSkipNotKey:
		return fmt.Sprintf("V%X", d.X)
	case OpDraw:
		return fmt.Sprintf("V%X, V%X, %d", d.X, d.Y, d.N)
	case OpLoadDelay:
		return fmt.Sprintf("V%X, DT", d.X)
	case OpWaitKey:
		return fmt.Sprintf("V%X, K", d.X)
	case OpSetDelay:
		return fmt.Sprintf("DT, V%X", d.X)
	case OpSetSound:
		return fmt.Sprintf("ST, V%X", d.X)
	case OpAddI:
		return fmt.Sprintf("I, V%X", d.X)
	case OpFont:
		return fmt.Sprintf("F, V%X", d.X)
	case OpBCD:
		return fmt.Sprintf("B, V%X", d.X)
	case OpStore:
		return fmt.Sprintf("[I], V%X", d.X)
	case OpRestore:
		return fmt.Sprintf("V%X, [I]", d.X)
	}

	return ""
}
