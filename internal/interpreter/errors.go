package interpreter

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

var (
	// ErrUnknownInstruction is matched by every *UnknownInstructionError.
	ErrUnknownInstruction = errors.New("unknown instruction")
	// ErrStackUnderflow is returned when a return executes with an empty call stack.
	ErrStackUnderflow = chip8.ErrStackUnderflow
	// ErrStackOverflow is returned when a call exceeds the configured stack limit.
	ErrStackOverflow = chip8.ErrStackOverflow
	// ErrMemoryAccess is matched by every *MemoryAccessError.
	ErrMemoryAccess = chip8.ErrMemoryOutOfBounds
	// ErrInvalidKey is returned when a key instruction references a key outside the keypad.
	ErrInvalidKey = chip8.ErrKeyIndexOutOfBounds
	// ErrProgramTooLarge is returned when a program does not fit into program memory.
	ErrProgramTooLarge = errors.New("program too large")
)

// UnknownInstructionError is returned for an instruction word without a
// defined operation. Address is only set for words fetched by Step.
type UnknownInstructionError struct {
	Address uint16
	Word    uint16
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("unknown instruction %04X", e.Word)
}

// Is reports whether target is ErrUnknownInstruction.
func (e *UnknownInstructionError) Is(target error) bool {
	return target == ErrUnknownInstruction
}

// MemoryAccessError is returned when an instruction accesses memory outside
// of the address space.
type MemoryAccessError struct {
	Address int
	Length  int
}

func (e *MemoryAccessError) Error() string {
	return fmt.Sprintf("memory access of %d bytes at %04X is out of range", e.Length, e.Address)
}

// Is reports whether target is ErrMemoryAccess.
func (e *MemoryAccessError) Is(target error) bool {
	return target == ErrMemoryAccess
}

// FaultError is the fatal error that halts the interpreter. It records the
// address and word of the failing instruction. Word is not set if the
// instruction could not be fetched.
type FaultError struct {
	PC      uint16
	Word    uint16
	Fetched bool
	Err     error
}

func (e *FaultError) Error() string {
	if !e.Fetched {
		return fmt.Sprintf("fault at %04X fetching instruction: %v", e.PC, e.Err)
	}
	return fmt.Sprintf("fault at %04X executing %04X: %v", e.PC, e.Word, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}
