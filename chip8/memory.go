package chip8

/// Address space and machine limits.
///
const (
	MemorySize      = 0x1000
	ProgramStart    = 0x200
	ProgramSize     = MemorySize - ProgramStart
	StackDepth      = 16
	InstructionSize = 2

	/// GlyphSize is the number of bytes in a font sprite.
	///
	GlyphSize = 5
)

/// font holds the 16 hexadecimal digit sprites. Digit d lives at
/// address d*GlyphSize once copied into memory.
///
var font = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

/// Stack is the fixed 16 entry call stack. SP is the number of
/// return addresses currently pushed.
///
type Stack struct {
	Data [StackDepth]uint16
	SP   int
}

/// Push a return address. Returns false if the stack is full.
///
func (s *Stack) Push(address uint16) bool {
	if s.SP == StackDepth {
		return false
	}

	s.Data[s.SP] = address
	s.SP++

	return true
}

/// Pop the most recent return address. Returns false if the stack is empty.
///
func (s *Stack) Pop() (uint16, bool) {
	if s.SP == 0 {
		return 0, false
	}

	s.SP--

	return s.Data[s.SP], true
}

/// inRange is true if the n bytes starting at address are all addressable.
///
func inRange(address uint16, n int) bool {
	return int(address)+n <= MemorySize
}
