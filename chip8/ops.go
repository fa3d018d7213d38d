package chip8

import "github.com/retroenv/retrogolib/log"

/// pcKind is how an instruction moves the program counter.
///
type pcKind uint8

const (
	pcNext pcKind = iota
	pcSkip
	pcJump
)

/// pcAction is returned by every instruction handler. The VM applies it
/// once the handler is done; handlers never write PC themselves.
///
type pcAction struct {
	kind   pcKind
	target uint16
}

var next = pcAction{kind: pcNext}

func skipWhen(cond bool) pcAction {
	if cond {
		return pcAction{kind: pcSkip}
	}
	return next
}

func jumpTo(address uint16) pcAction {
	return pcAction{kind: pcJump, target: address}
}

type handler func(vm *VM, d Instruction) (pcAction, error)

/// handlers maps each decoded operation to its implementation.
///
var handlers = [opCount]handler{
	OpUnknown:    (*VM).unknown,
	OpCls:        (*VM).cls,
	OpRet:        (*VM).ret,
	OpJump:       (*VM).jump,
	OpCall:       (*VM).call,
	OpSkipEqImm:  (*VM).skipIf,
	OpSkipNeImm:  (*VM).skipIfNot,
	OpSkipEqReg:  (*VM).skipIfXY,
	OpLoadImm:    (*VM).loadX,
	OpAddImm:     (*VM).addX,
	OpLoadReg:    (*VM).loadXY,
	OpOr:         (*VM).or,
	OpAnd:        (*VM).and,
	OpXor:        (*VM).xor,
	OpAddReg:     (*VM).addXY,
	OpSub:        (*VM).subXY,
	OpShr:        (*VM).shr,
	OpSubn:       (*VM).subYX,
	OpShl:        (*VM).shl,
	OpSkipNeReg:  (*VM).skipIfNotXY,
	OpLoadI:      (*VM).loadI,
	OpJumpV0:     (*VM).jumpV0,
	OpRand:       (*VM).rnd,
	OpDraw:       (*VM).drw,
	OpSkipKey:    (*VM).skipIfPressed,
	OpSkipNotKey: (*VM).skipIfNotPressed,
	OpLoadDelay:  (*VM).loadXDT,
	OpWaitKey:    (*VM).loadXK,
	OpSetDelay:   (*VM).loadDTX,
	OpSetSound:   (*VM).loadSTX,
	OpAddI:       (*VM).addIX,
	OpFont:       (*VM).loadF,
	OpBCD:        (*VM).loadB,
	OpStore:      (*VM).saveRegs,
	OpRestore:    (*VM).loadRegs,
}

/// unknown instructions are reported and skipped over.
///
func (vm *VM) unknown(d Instruction) (pcAction, error) {
	vm.log.Warn("Unknown opcode",
		log.Hex("pc", vm.pc),
		log.Hex("opcode", d.Opcode))

	return next, nil
}

/// clear the video display memory.
///
func (vm *VM) cls(_ Instruction) (pcAction, error) {
	vm.video.Clear()
	vm.changed = true

	return next, nil
}

/// return from subroutine.
///
func (vm *VM) ret(_ Instruction) (pcAction, error) {
	address, ok := vm.stack.Pop()
	if !ok {
		return next, ErrStackUnderflow
	}

	return jumpTo(address), nil
}

/// jump to address.
///
func (vm *VM) jump(d Instruction) (pcAction, error) {
	return jumpTo(d.Addr), nil
}

/// call a subroutine at address.
///
func (vm *VM) call(d Instruction) (pcAction, error) {
	if !vm.stack.Push(vm.pc + InstructionSize) {
		return next, ErrStackOverflow
	}

	return jumpTo(d.Addr), nil
}

/// skip next instruction if vx == n.
///
func (vm *VM) skipIf(d Instruction) (pcAction, error) {
	return skipWhen(vm.v[d.X] == d.Byte), nil
}

/// skip next instruction if vx != n.
///
func (vm *VM) skipIfNot(d Instruction) (pcAction, error) {
	return skipWhen(vm.v[d.X] != d.Byte), nil
}

/// skip next instruction if vx == vy.
///
func (vm *VM) skipIfXY(d Instruction) (pcAction, error) {
	return skipWhen(vm.v[d.X] == vm.v[d.Y]), nil
}

/// skip next instruction if vx != vy.
///
func (vm *VM) skipIfNotXY(d Instruction) (pcAction, error) {
	return skipWhen(vm.v[d.X] != vm.v[d.Y]), nil
}

/// skip next instruction if key(vx) is pressed.
///
func (vm *VM) skipIfPressed(d Instruction) (pcAction, error) {
	return skipWhen(vm.keys.Pressed(vm.v[d.X])), nil
}

/// skip next instruction if key(vx) is not pressed.
///
func (vm *VM) skipIfNotPressed(d Instruction) (pcAction, error) {
	return skipWhen(!vm.keys.Pressed(vm.v[d.X])), nil
}

/// load n into vx.
///
func (vm *VM) loadX(d Instruction) (pcAction, error) {
	vm.v[d.X] = d.Byte

	return next, nil
}

/// load y into vx.
///
func (vm *VM) loadXY(d Instruction) (pcAction, error) {
	vm.v[d.X] = vm.v[d.Y]

	return next, nil
}

/// load delay timer into vx.
///
func (vm *VM) loadXDT(d Instruction) (pcAction, error) {
	vm.v[d.X] = vm.dt

	return next, nil
}

/// load vx into delay timer.
///
func (vm *VM) loadDTX(d Instruction) (pcAction, error) {
	vm.dt = vm.v[d.X]

	return next, nil
}

/// load vx into sound timer.
///
func (vm *VM) loadSTX(d Instruction) (pcAction, error) {
	vm.st = vm.v[d.X]

	return next, nil
}

/// load vx with next key hit. The VM stops fetching until a key is down.
///
func (vm *VM) loadXK(d Instruction) (pcAction, error) {
	vm.w.wait(d.X)

	return next, nil
}

/// load address register.
///
func (vm *VM) loadI(d Instruction) (pcAction, error) {
	vm.i = d.Addr

	return next, nil
}

/// load address with BCD of vx.
///
func (vm *VM) loadB(d Instruction) (pcAction, error) {
	if !inRange(vm.i, 3) {
		return next, ErrAddress
	}

	n := uint16(vm.v[d.X])
	b := uint16(0)

	// double dabble: perform 8 shifts
	for i := uint(0); i < 8; i++ {
		if (b>>0)&0xF >= 5 {
			b += 3
		}
		if (b>>4)&0xF >= 5 {
			b += 3 << 4
		}
		if (b>>8)&0xF >= 5 {
			b += 3 << 8
		}

		// apply shift, pull next bit
		b = (b << 1) | (n >> (7 - i) & 1)
	}

	vm.memory[vm.i+0] = byte(b>>8) & 0xF
	vm.memory[vm.i+1] = byte(b>>4) & 0xF
	vm.memory[vm.i+2] = byte(b>>0) & 0xF

	return next, nil
}

/// load font sprite for vx into I.
///
func (vm *VM) loadF(d Instruction) (pcAction, error) {
	vm.i = uint16(vm.v[d.X]) * GlyphSize

	return next, nil
}

/// or vx with vy into vx.
///
func (vm *VM) or(d Instruction) (pcAction, error) {
	vm.v[d.X] |= vm.v[d.Y]

	return next, nil
}

/// and vx with vy into vx.
///
func (vm *VM) and(d Instruction) (pcAction, error) {
	vm.v[d.X] &= vm.v[d.Y]

	return next, nil
}

/// xor vx with vy into vx.
///
func (vm *VM) xor(d Instruction) (pcAction, error) {
	vm.v[d.X] ^= vm.v[d.Y]

	return next, nil
}

/// shl vx 1 bit, set carry to MSB of vx before shift.
///
func (vm *VM) shl(d Instruction) (pcAction, error) {
	msb := vm.v[d.X] >> 7
	vm.v[d.X] <<= 1
	vm.v[0xF] = msb

	return next, nil
}

/// shr vx 1 bit, set carry to LSB of vx before shift.
///
func (vm *VM) shr(d Instruction) (pcAction, error) {
	lsb := vm.v[d.X] & 1
	vm.v[d.X] >>= 1
	vm.v[0xF] = lsb

	return next, nil
}

/// add n to vx. The carry flag is not touched.
///
func (vm *VM) addX(d Instruction) (pcAction, error) {
	vm.v[d.X] += d.Byte

	return next, nil
}

/// add vy to vx and set carry.
///
func (vm *VM) addXY(d Instruction) (pcAction, error) {
	sum := uint16(vm.v[d.X]) + uint16(vm.v[d.Y])

	vm.v[d.X] = byte(sum)
	vm.v[0xF] = byte(sum >> 8)

	return next, nil
}

/// add vx to i.
///
func (vm *VM) addIX(d Instruction) (pcAction, error) {
	vm.i += uint16(vm.v[d.X])

	if vm.quirks.AddIndexOverflow {
		vm.v[0xF] = flag(vm.i > 0x0F00)
	}

	return next, nil
}

/// subtract vy from vx, set carry if no borrow.
///
func (vm *VM) subXY(d Instruction) (pcAction, error) {
	carry := flag(vm.v[d.X] >= vm.v[d.Y])

	vm.v[d.X] -= vm.v[d.Y]
	vm.v[0xF] = carry

	return next, nil
}

/// subtract vx from vy and store in vx, set carry if no borrow.
///
func (vm *VM) subYX(d Instruction) (pcAction, error) {
	carry := flag(vm.v[d.Y] >= vm.v[d.X])

	vm.v[d.X] = vm.v[d.Y] - vm.v[d.X]
	vm.v[0xF] = carry

	return next, nil
}

/// load a random number & n into vx.
///
func (vm *VM) rnd(d Instruction) (pcAction, error) {
	vm.v[d.X] = byte(vm.rng.Uint32()) & d.Byte

	return next, nil
}

/// draw a sprite at I to video memory at vx, vy.
///
func (vm *VM) drw(d Instruction) (pcAction, error) {
	n := int(d.N)

	if !inRange(vm.i, n) {
		return next, ErrAddress
	}

	sprite := vm.memory[vm.i : int(vm.i)+n]

	vm.v[0xF] = 0
	if vm.video.Blit(sprite, vm.v[d.X], vm.v[d.Y]) {
		vm.v[0xF] = 1
	}

	vm.changed = true

	return next, nil
}

/// jump to address + v0.
///
func (vm *VM) jumpV0(d Instruction) (pcAction, error) {
	return jumpTo(d.Addr + uint16(vm.v[0])), nil
}

/// save registers v0..vx to I.
///
func (vm *VM) saveRegs(d Instruction) (pcAction, error) {
	if !inRange(vm.i, int(d.X)+1) {
		return next, ErrAddress
	}

	copy(vm.memory[vm.i:], vm.v[:d.X+1])

	return next, nil
}

/// load registers v0..vx from I.
///
func (vm *VM) loadRegs(d Instruction) (pcAction, error) {
	if !inRange(vm.i, int(d.X)+1) {
		return next, ErrAddress
	}

	copy(vm.v[:d.X+1], vm.memory[vm.i:])

	return next, nil
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
