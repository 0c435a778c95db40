// Package interpreter implements the CHIP-8 virtual machine: its memory,
// registers, call stack and timers, and the fetch-decode-execute step.
//
// Memory map (4KB total):
//
//	0x000-0x04F: font glyphs for the hexadecimal digits
//	0x050-0x1FF: unused, reserved for the original interpreter
//	0x200-0xFFF: program and scratch memory
//
// The interpreter is single threaded and never blocks. The host calls Step to
// execute instructions and TickTimers at a fixed 60 Hz cadence, independent of
// the number of steps per frame.
package interpreter

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keyboard"
)

const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// ProgramStart is the address where programs are loaded and execution starts.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// flag is the index of the VF register that holds carry, borrow and
	// collision results.
	flag = 0xF
)

// Interpreter holds the state of a CHIP-8 virtual machine.
type Interpreter struct {
	memory [MemorySize]byte
	v      [RegisterCount]uint8
	i      uint16
	pc     uint16
	dt     uint8
	st     uint8

	stack      []uint16
	stackLimit int

	display  *display.Display
	keyboard Keyboard
	random   RandomSource

	fault error // set once execution faulted, cleared by Reset
}

// New returns a new interpreter with the font loaded and the program counter
// at the program start address.
func New(options ...Option) *Interpreter {
	in := &Interpreter{
		display:  display.New(),
		keyboard: keyboard.New(),
		random:   defaultRandom,
	}
	for _, opt := range options {
		opt(in)
	}

	in.reset()
	return in
}

// Reset restores the power-on state. The display, registers, timers, call
// stack and program memory are cleared, the font is kept. A fault is cleared
// as well. The program has to be loaded again after a reset.
func (in *Interpreter) Reset() {
	in.display.Clear()
	in.reset()
}

func (in *Interpreter) reset() {
	in.memory = [MemorySize]byte{}
	copy(in.memory[:], font[:])

	in.v = [RegisterCount]uint8{}
	in.i = 0
	in.pc = ProgramStart
	in.dt = 0
	in.st = 0
	in.stack = in.stack[:0]
	in.fault = nil
}

// Load copies a program into memory at the program start address.
// It does not change the program counter.
func (in *Interpreter) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, %d available", ErrProgramTooLarge, len(program), MaxProgramSize)
	}
	copy(in.memory[ProgramStart:], program)
	return nil
}

// TickTimers decrements the delay and sound timers if they are non-zero.
// It should be called at 60 Hz.
func (in *Interpreter) TickTimers() {
	if in.dt > 0 {
		in.dt--
	}
	if in.st > 0 {
		in.st--
	}
}

// PC returns the program counter.
func (in *Interpreter) PC() uint16 { return in.pc }

// I returns the index register.
func (in *Interpreter) I() uint16 { return in.i }

// V returns the value of register Vx. x is masked to the register range.
func (in *Interpreter) V(x uint8) uint8 { return in.v[x&0x0F] }

// Registers returns a copy of the registers V0-VF.
func (in *Interpreter) Registers() [RegisterCount]uint8 { return in.v }

// DT returns the delay timer.
func (in *Interpreter) DT() uint8 { return in.dt }

// ST returns the sound timer.
func (in *Interpreter) ST() uint8 { return in.st }

// SoundActive returns whether a tone should be playing, which is the case as
// long as the sound timer is non-zero.
func (in *Interpreter) SoundActive() bool { return in.st != 0 }

// Stack returns a copy of the call stack, the most recent return address last.
func (in *Interpreter) Stack() []uint16 {
	stack := make([]uint16, len(in.stack))
	copy(stack, in.stack)
	return stack
}

// Display returns the display, to read its content or change the wrap mode.
func (in *Interpreter) Display() *display.Display { return in.display }

// Screen returns a snapshot of the display.
func (in *Interpreter) Screen() display.Screen { return in.display.Screen() }

// Fault returns the error that halted the interpreter, or nil.
func (in *Interpreter) Fault() error { return in.fault }

// Memory returns a copy of n bytes of memory starting at the given address.
func (in *Interpreter) Memory(address uint16, n int) ([]byte, error) {
	if err := checkRange(int(address), n); err != nil {
		return nil, err
	}
	data := make([]byte, n)
	copy(data, in.memory[address:])
	return data, nil
}

// Word returns the instruction word at the program counter.
func (in *Interpreter) Word() (uint16, error) {
	if err := checkRange(int(in.pc), 2); err != nil {
		return 0, err
	}
	return uint16(in.memory[in.pc])<<8 | uint16(in.memory[in.pc+1]), nil
}

// String returns formatted information about the state of the interpreter.
func (in *Interpreter) String() string {
	return fmt.Sprintf("Interpreter{V: [% 02X], I: %04X, PC: %04X, Stack: % 04X, DT: %02X, ST: %02X}",
		in.v, in.i, in.pc, in.stack, in.dt, in.st)
}

// checkRange validates that the n bytes starting at address are inside memory.
func checkRange(address, n int) error {
	if address < 0 || n < 0 || address+n > MemorySize {
		return &MemoryAccessError{Address: address, Length: n}
	}
	return nil
}
