package chip8

import "fmt"

/// Op identifies the operation encoded by an opcode.
///
type Op uint8

const (
	OpUnknown Op = iota
	OpCls
	OpRet
	OpJump
	OpCall
	OpSkipEqImm
	OpSkipNeImm
	OpSkipEqReg
	OpLoadImm
	OpAddImm
	OpLoadReg
	OpOr
	OpAnd
	OpXor
	OpAddReg
	OpSub
	OpShr
	OpSubn
	OpShl
	OpSkipNeReg
	OpLoadI
	OpJumpV0
	OpRand
	OpDraw
	OpSkipKey
	OpSkipNotKey
	OpLoadDelay
	OpWaitKey
	OpSetDelay
	OpSetSound
	OpAddI
	OpFont
	OpBCD
	OpStore
	OpRestore

	opCount
)

var opNames = [opCount]string{
	OpUnknown:    "unknown",
	OpCls:        "cls",
	OpRet:        "ret",
	OpJump:       "jump",
	OpCall:       "call",
	OpSkipEqImm:  "skip-eq-imm",
	OpSkipNeImm:  "skip-neq-imm",
	OpSkipEqReg:  "skip-eq-reg",
	OpLoadImm:    "load-imm",
	OpAddImm:     "add-imm",
	OpLoadReg:    "load-reg",
	OpOr:         "or",
	OpAnd:        "and",
	OpXor:        "xor",
	OpAddReg:     "add-reg",
	OpSub:        "sub",
	OpShr:        "shr",
	OpSubn:       "subn",
	OpShl:        "shl",
	OpSkipNeReg:  "skip-neq-reg",
	OpLoadI:      "load-i",
	OpJumpV0:     "jump-v0",
	OpRand:       "rand",
	OpDraw:       "draw",
	OpSkipKey:    "skip-key-pressed",
	OpSkipNotKey: "skip-key-not-pressed",
	OpLoadDelay:  "read-delay",
	OpWaitKey:    "wait-key",
	OpSetDelay:   "set-delay",
	OpSetSound:   "set-sound",
	OpAddI:       "add-i",
	OpFont:       "font-addr",
	OpBCD:        "bcd",
	OpStore:      "store-regs",
	OpRestore:    "load-regs",
}

func (op Op) String() string {
	if op < opCount {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

/// Instruction is a decoded opcode with all of its operand fields
/// extracted. Which fields are meaningful depends on Op.
///
type Instruction struct {
	Opcode uint16
	Op     Op

	/// Addr is the 12-bit address operand (nnn).
	///
	Addr uint16

	/// Byte is the 8-bit immediate operand (kk).
	///
	Byte byte

	/// X and Y are register operands, N is the low nibble.
	///
	X, Y, N byte
}

/// Decode an opcode. Every 16-bit value decodes; patterns that are not
/// part of the instruction set get OpUnknown.
///
func Decode(inst uint16) Instruction {
	d := Instruction{
		Opcode: inst,
		Addr:   inst & 0xFFF,
		Byte:   byte(inst & 0xFF),
		X:      byte(inst >> 8 & 0xF),
		Y:      byte(inst >> 4 & 0xF),
		N:      byte(inst & 0xF),
	}

	switch {
	case inst == 0x00E0:
		d.Op = OpCls
	case inst == 0x00EE:
		d.Op = OpRet
	case inst&0xF000 == 0x1000:
		d.Op = OpJump
	case inst&0xF000 == 0x2000:
		d.Op = OpCall
	case inst&0xF000 == 0x3000:
		d.Op = OpSkipEqImm
	case inst&0xF000 == 0x4000:
		d.Op = OpSkipNeImm
	case inst&0xF00F == 0x5000:
		d.Op = OpSkipEqReg
	case inst&0xF000 == 0x6000:
		d.Op = OpLoadImm
	case inst&0xF000 == 0x7000:
		d.Op = OpAddImm
	case inst&0xF00F == 0x8000:
		d.Op = OpLoadReg
	case inst&0xF00F == 0x8001:
		d.Op = OpOr
	case inst&0xF00F == 0x8002:
		d.Op = OpAnd
	case inst&0xF00F == 0x8003:
		d.Op = OpXor
	case inst&0xF00F == 0x8004:
		d.Op = OpAddReg
	case inst&0xF00F == 0x8005:
		d.Op = OpSub
	case inst&0xF00F == 0x8006:
		d.Op = OpShr
	case inst&0xF00F == 0x8007:
		d.Op = OpSubn
	case inst&0xF00F == 0x800E:
		d.Op = OpShl
	case inst&0xF00F == 0x9000:
		d.Op = OpSkipNeReg
	case inst&0xF000 == 0xA000:
		d.Op = OpLoadI
	case inst&0xF000 == 0xB000:
		d.Op = OpJumpV0
	case inst&0xF000 == 0xC000:
		d.Op = OpRand
	case inst&0xF000 == 0xD000:
		d.Op = OpDraw
	case inst&0xF0FF == 0xE09E:
		d.Op = OpSkipKey
	case inst&0xF0FF == 0xE0A1:
		d.Op = OpSkipNotKey
	case inst&0xF0FF == 0xF007:
		d.Op = OpLoadDelay
	case inst&0xF0FF == 0xF00A:
		d.Op = OpWaitKey
	case inst&0xF0FF == 0xF015:
		d.Op = OpSetDelay
	case inst&0xF0FF == 0xF018:
		d.Op = OpSetSound
	case inst&0xF0FF == 0xF01E:
		d.Op = OpAddI
	case inst&0xF0FF == 0xF029:
		d.Op = OpFont
	case inst&0xF0FF == 0xF033:
		d.Op = OpBCD
	case inst&0xF0FF == 0xF055:
		d.Op = OpStore
	case inst&0xF0FF == 0xF065:
		d.Op = OpRestore
	default:
		d.Op = OpUnknown
	}

	return d
}
