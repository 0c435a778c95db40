package disasm

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/retroenv/retrochip8/internal/interpreter"
)

// Line is a single entry of a program listing.
type Line struct {
	Address uint16
	Data    []byte
	Code    string
	Label   string // set if the address is referenced by another instruction
	Comment string
}

// Disassemble converts a program into a listing. The program is assumed to be
// loaded at the program start address. Words are decoded linearly, every
// word that is not a known instruction is output as data.
func Disassemble(program []byte) []Line {
	lines := make([]Line, 0, len(program)/2+1)

	for offset := 0; offset < len(program); offset += 2 {
		address := uint16(interpreter.ProgramStart + offset)

		if offset+1 >= len(program) {
			lines = append(lines, Line{
				Address: address,
				Data:    program[offset : offset+1],
				Code:    fmt.Sprintf(".byte $%02X", program[offset]),
			})
			break
		}

		data := program[offset : offset+2]
		word := uint16(data[0])<<8 | uint16(data[1])
		line := Line{
			Address: address,
			Data:    data,
			Code:    formatData(word),
		}

		if ins, err := interpreter.Decode(word); err == nil {
			line.Code = Format(ins)
			line.Comment = comment(ins)
		}
		lines = append(lines, line)
	}

	assignLabels(lines, len(program))
	return lines
}

// comment returns a description of the control flow effect of an instruction.
func comment(ins interpreter.Instruction) string {
	switch {
	case ins.IsSkip():
		return "conditional skip"
	case ins.IsReturn():
		return "return"
	case ins.Op == interpreter.OpBNNN:
		return "computed jump"
	case ins.Op == interpreter.OpFX0A:
		return "wait for key press"
	}
	return ""
}

// assignLabels names all addresses inside the program that are the target of
// a jump, a call or an index register load.
func assignLabels(lines []Line, size int) {
	index := make(map[uint16]int, len(lines))
	for i, line := range lines {
		index[line.Address] = i
	}
	if len(lines) > 0 {
		lines[0].Label = "Start"
	}

	for _, line := range lines {
		if len(line.Data) < 2 {
			continue
		}
		word := uint16(line.Data[0])<<8 | uint16(line.Data[1])
		ins, err := interpreter.Decode(word)
		if err != nil {
			continue
		}

		var prefix string
		switch {
		case ins.IsCall():
			prefix = "sub"
		case ins.IsJump():
			prefix = "jump"
		case ins.IsDataReference():
			prefix = "data"
		default:
			continue
		}

		target := ins.NNN
		if target < interpreter.ProgramStart || int(target) >= interpreter.ProgramStart+size {
			continue
		}
		i, ok := index[target]
		if !ok || lines[i].Label != "" {
			continue
		}
		lines[i].Label = fmt.Sprintf("%s_%03X", prefix, target)
	}
}

// Write outputs a listing in columns of address, opcode bytes, code and comment.
func Write(w io.Writer, lines []Line) error {
	tw := tabwriter.NewWriter(w, 8, 8, 1, ' ', 0)

	for _, line := range lines {
		if line.Label != "" {
			if _, err := fmt.Fprintf(tw, "%s:\n", line.Label); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		comment := ""
		if line.Comment != "" {
			comment = "; " + line.Comment
		}
		if _, err := fmt.Fprintf(tw, "  %04X\t% X\t%s\t%s\n", line.Address, line.Data, line.Code, comment); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing listing: %w", err)
	}
	return nil
}
