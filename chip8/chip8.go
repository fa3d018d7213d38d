package chip8

import (
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

/// VM is a CHIP-8 virtual machine. It is advanced one instruction at a
/// time by Tick and owns all of its state; any number of VMs can exist
/// side by side.
///
type VM struct {
	/// rom is the pristine memory image (font and loaded program) that
	/// Reset copies back into memory.
	///
	rom [MemorySize]byte

	/// memory addressable by CHIP-8. The first 512 bytes hold the font.
	///
	memory [MemorySize]byte

	/// video is the display, one 64-bit word per scan line.
	///
	video Framebuffer

	/// changed is set when CLS or DRW ran during the current tick.
	///
	changed bool

	/// v are the 16 virtual registers. VF doubles as the flag register.
	///
	v [16]byte

	/// i is the address register.
	///
	i uint16

	/// pc is the program counter. All programs begin at 0x200.
	///
	pc uint16

	stack Stack

	/// dt and st are the delay and sound timers. Both count down once
	/// per tick while nonzero.
	///
	dt, st byte

	/// keys is the keypad snapshot handed to the current tick.
	///
	keys Keypad

	/// w is set while LD Vx, K is waiting for a key press.
	///
	w waitState

	/// fault is the fatal fault that halted the VM, if any.
	///
	fault *Fault

	quirks Quirks
	rng    *rand.Rand
	log    *log.Logger
}

/// Output is what a single tick produces for the host.
///
type Output struct {
	/// Video is a copy of the display after the tick.
	///
	Video Framebuffer

	/// Changed is true if CLS or DRW executed this tick.
	///
	Changed bool

	/// Beep is true while the sound timer is nonzero.
	///
	Beep bool
}

/// State is a copy of the machine registers for debuggers and tests.
///
type State struct {
	V       [16]byte
	I       uint16
	PC      uint16
	Stack   Stack
	DT      byte
	ST      byte
	Keys    Keypad
	Waiting bool

	/// WaitRegister is the register LD Vx, K will write, if Waiting.
	///
	WaitRegister byte
}

/// New creates a VM with the font installed and nothing loaded.
///
func New(opts ...Option) *VM {
	vm := &VM{}

	// the font sprites live at the bottom of memory
	copy(vm.rom[:], font[:])

	for _, opt := range opts {
		opt(vm)
	}

	if vm.log == nil {
		vm.log = defaultLogger()
	}
	if vm.rng == nil {
		vm.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	vm.Reset()

	return vm
}

/// Load copies a program into memory at 0x200. Bytes that do not fit
/// are dropped. No other state is touched. Returns the number of bytes
/// copied.
///
func (vm *VM) Load(program []byte) int {
	copy(vm.rom[ProgramStart:], program)
	n := copy(vm.memory[ProgramStart:], program)

	if n < len(program) {
		vm.log.Debug("Program truncated",
			log.Int("size", len(program)),
			log.Int("loaded", n))
	}

	return n
}

/// Reset the VM back to the state right after Load, clearing any fault.
///
func (vm *VM) Reset() {
	vm.memory = vm.rom
	vm.video.Clear()
	vm.changed = false

	// reset registers, program counter and stack
	vm.v = [16]byte{}
	vm.i = 0
	vm.pc = ProgramStart
	vm.stack = Stack{}

	// reset timers and input
	vm.dt = 0
	vm.st = 0
	vm.keys = 0
	vm.w = waitState{}

	vm.fault = nil
}

/// Tick advances the VM by one step with the given keypad state. A step
/// is one instruction, or one key check while LD Vx, K is pending. The
/// timers count down on every tick.
///
/// Fatal faults are returned as *Fault. Once faulted every later tick
/// returns the same fault without changing anything.
///
func (vm *VM) Tick(keys Keypad) (Output, error) {
	if vm.fault != nil {
		return vm.output(), vm.fault
	}

	vm.keys = keys
	vm.changed = false

	if vm.dt > 0 {
		vm.dt--
	}
	if vm.st > 0 {
		vm.st--
	}

	if vm.w.waiting {
		if r, key, ok := vm.w.resolve(keys); ok {
			vm.v[r] = key
		}

		return vm.output(), nil
	}

	if err := vm.step(); err != nil {
		return vm.output(), err
	}

	return vm.output(), nil
}

/// State returns a copy of the registers.
///
func (vm *VM) State() State {
	return State{
		V:            vm.v,
		I:            vm.i,
		PC:           vm.pc,
		Stack:        vm.stack,
		DT:           vm.dt,
		ST:           vm.st,
		Keys:         vm.keys,
		Waiting:      vm.w.waiting,
		WaitRegister: vm.w.reg,
	}
}

/// Fault returns the fault that halted the VM, or nil.
///
func (vm *VM) Fault() *Fault {
	return vm.fault
}

func (vm *VM) output() Output {
	return Output{
		Video:   vm.video,
		Changed: vm.changed,
		Beep:    vm.st > 0,
	}
}

/// step fetches, decodes and executes the instruction at PC, then
/// moves PC according to what the instruction asked for.
///
func (vm *VM) step() error {
	pc := vm.pc

	if !inRange(pc, InstructionSize) {
		return vm.halt(&Fault{Err: ErrAddress, PC: pc})
	}

	// fetch the next 16-bit instruction
	inst := uint16(vm.memory[pc])<<8 | uint16(vm.memory[pc+1])

	d := Decode(inst)

	act, err := handlers[d.Op](vm, d)
	if err != nil {
		return vm.halt(&Fault{Err: err, PC: pc, Opcode: inst})
	}

	switch act.kind {
	case pcNext:
		vm.pc += InstructionSize
	case pcSkip:
		vm.pc += 2 * InstructionSize
	case pcJump:
		vm.pc = act.target
	}

	return nil
}

/// halt stops the VM on a fault. The fault is returned to the caller,
/// which decides how to report it.
///
func (vm *VM) halt(f *Fault) error {
	vm.fault = f

	vm.log.Debug("CHIP-8 fault",
		log.Err(f.Err),
		log.Hex("pc", f.PC),
		log.Hex("opcode", f.Opcode))

	return f
}
