package interpreter

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Op identifies one of the operations of the CHIP-8 instruction set.
// The zero value is not a valid operation.
type Op uint8

// CHIP-8 operations, named after their instruction word pattern.
const (
	OpInvalid Op = iota
	Op00E0       // CLS
	Op00EE       // RET
	Op1NNN       // JP addr
	Op2NNN       // CALL addr
	Op3XNN       // SE Vx, byte
	Op4XNN       // SNE Vx, byte
	Op5XY0       // SE Vx, Vy
	Op6XNN       // LD Vx, byte
	Op7XNN       // ADD Vx, byte
	Op8XY0       // LD Vx, Vy
	Op8XY1       // OR Vx, Vy
	Op8XY2       // AND Vx, Vy
	Op8XY3       // XOR Vx, Vy
	Op8XY4       // ADD Vx, Vy
	Op8XY5       // SUB Vx, Vy
	Op8XY6       // SHR Vx
	Op8XY7       // SUBN Vx, Vy
	Op8XYE       // SHL Vx
	Op9XY0       // SNE Vx, Vy
	OpANNN       // LD I, addr
	OpBNNN       // JP V0, addr
	OpCXNN       // RND Vx, byte
	OpDXYN       // DRW Vx, Vy, nibble
	OpEX9E       // SKP Vx
	OpEXA1       // SKNP Vx
	OpFX07       // LD Vx, DT
	OpFX0A       // LD Vx, K
	OpFX15       // LD DT, Vx
	OpFX18       // LD ST, Vx
	OpFX1E       // ADD I, Vx
	OpFX29       // LD F, Vx
	OpFX33       // LD B, Vx
	OpFX55       // LD [I], Vx
	OpFX65       // LD Vx, [I]

	opCount
)

type opInfo struct {
	pattern     string
	opcode      chip8.OpcodeInfo
	instruction *chip8.Instruction
}

var ops = [opCount]opInfo{
	OpInvalid: {pattern: "????"},
	Op00E0:    {"00E0", chip8.Opcode00E0, chip8.ClsInst},
	Op00EE:    {"00EE", chip8.Opcode00EE, chip8.RetInst},
	Op1NNN:    {"1NNN", chip8.Opcode1000, chip8.JpInst},
	Op2NNN:    {"2NNN", chip8.Opcode2000, chip8.CallInst},
	Op3XNN:    {"3XNN", chip8.Opcode3000, chip8.SeInst},
	Op4XNN:    {"4XNN", chip8.Opcode4000, chip8.SneInst},
	Op5XY0:    {"5XY0", chip8.Opcode5000, chip8.SeInst},
	Op6XNN:    {"6XNN", chip8.Opcode6000, chip8.LdInst},
	Op7XNN:    {"7XNN", chip8.Opcode7000, chip8.AddInst},
	Op8XY0:    {"8XY0", chip8.Opcode8000, chip8.LdInst},
	Op8XY1:    {"8XY1", chip8.Opcode8001, chip8.OrInst},
	Op8XY2:    {"8XY2", chip8.Opcode8002, chip8.AndInst},
	Op8XY3:    {"8XY3", chip8.Opcode8003, chip8.XorInst},
	Op8XY4:    {"8XY4", chip8.Opcode8004, chip8.AddInst},
	Op8XY5:    {"8XY5", chip8.Opcode8005, chip8.SubInst},
	Op8XY6:    {"8XY6", chip8.Opcode8006, chip8.ShrInst},
	Op8XY7:    {"8XY7", chip8.Opcode8007, chip8.SubnInst},
	Op8XYE:    {"8XYE", chip8.Opcode800E, chip8.ShlInst},
	Op9XY0:    {"9XY0", chip8.Opcode9000, chip8.SneInst},
	OpANNN:    {"ANNN", chip8.OpcodeA000, chip8.LdInst},
	OpBNNN:    {"BNNN", chip8.OpcodeB000, chip8.JpInst},
	OpCXNN:    {"CXNN", chip8.OpcodeC000, chip8.RndInst},
	OpDXYN:    {"DXYN", chip8.OpcodeD000, chip8.DrwInst},
	OpEX9E:    {"EX9E", chip8.OpcodeE09E, chip8.SkpInst},
	OpEXA1:    {"EXA1", chip8.OpcodeE0A1, chip8.SknpInst},
	OpFX07:    {"FX07", chip8.OpcodeF007, chip8.LdInst},
	OpFX0A:    {"FX0A", chip8.OpcodeF00A, chip8.LdInst},
	OpFX15:    {"FX15", chip8.OpcodeF015, chip8.LdInst},
	OpFX18:    {"FX18", chip8.OpcodeF018, chip8.LdInst},
	OpFX1E:    {"FX1E", chip8.OpcodeF01E, chip8.AddInst},
	OpFX29:    {"FX29", chip8.OpcodeF029, chip8.LdInst},
	OpFX33:    {"FX33", chip8.OpcodeF033, chip8.LdInst},
	OpFX55:    {"FX55", chip8.OpcodeF055, chip8.LdInst},
	OpFX65:    {"FX65", chip8.OpcodeF065, chip8.LdInst},
}

// opsByValue maps the opcode value of the instruction set table to the operation.
var opsByValue = func() map[uint16]Op {
	m := make(map[uint16]Op, opCount)
	for op := Op00E0; op < opCount; op++ {
		m[ops[op].opcode.Value] = op
	}
	return m
}()

// String returns the instruction word pattern of the operation, for example "8XY4".
func (o Op) String() string {
	if o >= opCount {
		return ops[OpInvalid].pattern
	}
	return ops[o].pattern
}

// Instruction returns the instruction set definition of the operation, nil
// for an invalid operation.
func (o Op) Instruction() *chip8.Instruction {
	if o >= opCount {
		return nil
	}
	return ops[o].instruction
}

// Instruction is a decoded instruction word with its extracted fields.
type Instruction struct {
	Op   Op
	Word uint16

	X   uint8  // second nibble, register index
	Y   uint8  // third nibble, register index
	N   uint8  // lowest nibble
	NN  uint8  // low byte
	NNN uint16 // low 12 bits, address
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	ins := i.Op.Instruction()
	if ins == nil {
		return ""
	}
	return ins.Name
}

// IsJump returns true if the instruction jumps to a fixed address.
func (i Instruction) IsJump() bool {
	return i.Op == Op1NNN
}

// IsCall returns true if the instruction calls a subroutine.
func (i Instruction) IsCall() bool {
	return i.Op == Op2NNN
}

// IsReturn returns true if the instruction returns from a subroutine.
func (i Instruction) IsReturn() bool {
	return i.Op == Op00EE
}

// IsSkip returns true if the instruction conditionally skips the next instruction.
func (i Instruction) IsSkip() bool {
	ins := i.Op.Instruction()
	if ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(ins.Name)
}

// IsDataReference returns true if the instruction loads an address into I.
func (i Instruction) IsDataReference() bool {
	return i.Op == OpANNN
}

// Decode decodes an instruction word. An unknown word returns an
// *UnknownInstructionError.
func Decode(word uint16) (Instruction, error) {
	ins := Instruction{
		Word: word,
		X:    uint8(word>>8) & 0x0F,
		Y:    uint8(word>>4) & 0x0F,
		N:    uint8(word) & 0x0F,
		NN:   uint8(word),
		NNN:  word & 0x0FFF,
	}

	ins.Op = decodeOp(word)
	if ins.Op == OpInvalid {
		return ins, &UnknownInstructionError{Word: word}
	}
	return ins, nil
}

// decodeOp looks up the operation in the opcode table of the instruction
// word's first nibble. The 0 family only checks the low byte and the 5 and
// 9 families ignore the low nibble.
func decodeOp(word uint16) Op {
	firstNibble := (word & 0xF000) >> 12
	switch firstNibble {
	case 0x0:
		word &= 0x00FF
	case 0x5, 0x9:
		word &= 0xFFF0
	}

	for _, opcode := range chip8.Opcodes[int(firstNibble)] {
		if opcode.Info.Mask&word == opcode.Info.Value {
			return opsByValue[opcode.Info.Value]
		}
	}
	return OpInvalid
}

// String returns the instruction word and its operation pattern.
func (i Instruction) String() string {
	return fmt.Sprintf("%04X (%s)", i.Word, i.Op)
}
