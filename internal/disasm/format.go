// Package disasm formats CHIP-8 instructions as assembly code.
package disasm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/interpreter"
)

// Format returns the assembly code of a decoded instruction, for example
// "se V2, $34".
func Format(ins interpreter.Instruction) string {
	name := ins.Name()
	if name == "" {
		return formatData(ins.Word)
	}
	if params := formatParams(ins); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// FormatWord decodes an instruction word and returns its assembly code.
// Unknown words are formatted as data.
func FormatWord(word uint16) string {
	ins, err := interpreter.Decode(word)
	if err != nil {
		return formatData(word)
	}
	return Format(ins)
}

func formatData(word uint16) string {
	return fmt.Sprintf(".word $%04X", word)
}

// formatParams formats the parameters of an instruction.
func formatParams(ins interpreter.Instruction) string {
	switch ins.Op {
	case interpreter.Op00E0, interpreter.Op00EE:
		return "" // No parameters
	case interpreter.Op1NNN, interpreter.Op2NNN:
		return formatAddress(ins.NNN)
	case interpreter.OpBNNN:
		return "V0, " + formatAddress(ins.NNN)
	case interpreter.Op3XNN, interpreter.Op4XNN, interpreter.Op6XNN, interpreter.Op7XNN, interpreter.OpCXNN:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case interpreter.Op5XY0, interpreter.Op9XY0,
		interpreter.Op8XY0, interpreter.Op8XY1, interpreter.Op8XY2, interpreter.Op8XY3,
		interpreter.Op8XY4, interpreter.Op8XY5, interpreter.Op8XY7:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case interpreter.Op8XY6, interpreter.Op8XYE, interpreter.OpEX9E, interpreter.OpEXA1:
		return fmt.Sprintf("V%X", ins.X)
	case interpreter.OpANNN:
		return "I, " + formatAddress(ins.NNN)
	case interpreter.OpDXYN:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
	default:
		return formatMisc(ins)
	}
}

// formatMisc formats the timer, keypad and memory transfer instructions.
func formatMisc(ins interpreter.Instruction) string {
	x := ins.X
	switch ins.Op {
	case interpreter.OpFX07:
		return fmt.Sprintf("V%X, DT", x)
	case interpreter.OpFX0A:
		return fmt.Sprintf("V%X, K", x)
	case interpreter.OpFX15:
		return fmt.Sprintf("DT, V%X", x)
	case interpreter.OpFX18:
		return fmt.Sprintf("ST, V%X", x)
	case interpreter.OpFX1E:
		return fmt.Sprintf("I, V%X", x)
	case interpreter.OpFX29:
		return fmt.Sprintf("F, V%X", x)
	case interpreter.OpFX33:
		return fmt.Sprintf("B, V%X", x)
	case interpreter.OpFX55:
		return fmt.Sprintf("[I], V%X", x)
	case interpreter.OpFX65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

func formatAddress(address uint16) string {
	return fmt.Sprintf("$%03X", address)
}
