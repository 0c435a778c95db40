package interpreter

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/keyboard"
)

// Step fetches, decodes and executes the instruction at the program counter.
// The program counter is advanced by 2 before the instruction executes.
//
// Any error is fatal: the interpreter state is left as it was before the
// failing instruction and every following call returns the same *FaultError
// until Reset is called.
func (in *Interpreter) Step() error {
	if in.fault != nil {
		return in.fault
	}

	address := in.pc
	word, err := in.Word()
	if err != nil {
		return in.halt(&FaultError{PC: address, Err: err})
	}
	in.pc += 2

	ins, err := Decode(word)
	if err == nil {
		err = in.execute(ins)
	} else {
		var unknown *UnknownInstructionError
		if errors.As(err, &unknown) {
			unknown.Address = address
		}
	}
	if err != nil {
		in.pc = address
		return in.halt(&FaultError{PC: address, Word: word, Fetched: true, Err: err})
	}
	return nil
}

func (in *Interpreter) halt(fault *FaultError) error {
	in.fault = fault
	return fault
}

// execute runs a decoded instruction. Instructions validate all memory
// accesses before changing any state.
func (in *Interpreter) execute(ins Instruction) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case Op00E0:
		in.display.Clear()
	case Op00EE:
		return in.ret()
	case Op1NNN:
		in.pc = ins.NNN
	case Op2NNN:
		return in.call(ins.NNN)
	case Op3XNN:
		in.skipIf(in.v[x] == ins.NN)
	case Op4XNN:
		in.skipIf(in.v[x] != ins.NN)
	case Op5XY0:
		in.skipIf(in.v[x] == in.v[y])
	case Op6XNN:
		in.v[x] = ins.NN
	case Op7XNN:
		in.v[x] += ins.NN
	case Op8XY0, Op8XY1, Op8XY2, Op8XY3, Op8XY4, Op8XY5, Op8XY6, Op8XY7, Op8XYE:
		in.arithmetic(ins.Op, x, y)
	case Op9XY0:
		in.skipIf(in.v[x] != in.v[y])
	case OpANNN:
		in.i = ins.NNN
	case OpBNNN:
		in.pc = ins.NNN + uint16(in.v[0])
	case OpCXNN:
		in.v[x] = in.random.Byte() & ins.NN
	case OpDXYN:
		return in.draw(x, y, ins.N)
	case OpEX9E, OpEXA1:
		return in.skipKey(ins.Op, x)
	case OpFX07, OpFX0A, OpFX15, OpFX18, OpFX1E, OpFX29, OpFX33, OpFX55, OpFX65:
		return in.misc(ins.Op, x)
	default:
		return &UnknownInstructionError{Word: ins.Word}
	}
	return nil
}

func (in *Interpreter) skipIf(condition bool) {
	if condition {
		in.pc += 2
	}
}

func (in *Interpreter) call(address uint16) error {
	if in.stackLimit > 0 && len(in.stack) >= in.stackLimit {
		return fmt.Errorf("%w: limit of %d nested calls reached", ErrStackOverflow, in.stackLimit)
	}
	in.stack = append(in.stack, in.pc)
	in.pc = address
	return nil
}

func (in *Interpreter) ret() error {
	if len(in.stack) == 0 {
		return ErrStackUnderflow
	}
	last := len(in.stack) - 1
	in.pc = in.stack[last]
	in.stack = in.stack[:last]
	return nil
}

// arithmetic executes the register to register operations of the 8 family.
// The flag register is written before the result, so a result targeting VF
// overwrites the flag.
func (in *Interpreter) arithmetic(op Op, x, y uint8) {
	vx, vy := in.v[x], in.v[y]

	switch op {
	case Op8XY0:
		in.v[x] = vy
	case Op8XY1:
		in.v[x] = vx | vy
	case Op8XY2:
		in.v[x] = vx & vy
	case Op8XY3:
		in.v[x] = vx ^ vy
	case Op8XY4:
		sum := uint16(vx) + uint16(vy)
		in.v[flag] = boolToFlag(sum > 0xFF)
		in.v[x] = uint8(sum)
	case Op8XY5:
		in.v[flag] = boolToFlag(vx >= vy)
		in.v[x] = vx - vy
	case Op8XY6:
		in.v[flag] = vx & 0x01
		in.v[x] = vx >> 1
	case Op8XY7:
		in.v[flag] = boolToFlag(vy >= vx)
		in.v[x] = vy - vx
	case Op8XYE:
		in.v[flag] = vx >> 7
		in.v[x] = vx << 1
	}
}

// draw renders an n byte sprite from memory at I to the position Vx, Vy.
// VF is set to 1 if any lit pixel was turned off.
func (in *Interpreter) draw(x, y, n uint8) error {
	// a sprite of zero rows reads no memory, so I is not checked
	var sprite []byte
	if n > 0 {
		if err := checkRange(int(in.i), int(n)); err != nil {
			return err
		}
		sprite = in.memory[in.i : int(in.i)+int(n)]
	}

	posX, posY := int(in.v[x]), int(in.v[y])

	collided := false
	for row, b := range sprite {
		if in.display.DrawByte(b, posX, posY+row) {
			collided = true
		}
	}

	in.v[flag] = boolToFlag(collided)
	return nil
}

func (in *Interpreter) skipKey(op Op, x uint8) error {
	key := in.v[x]
	if int(key) >= keyboard.KeyCount {
		return fmt.Errorf("%w: V%X holds %02X", ErrInvalidKey, x, key)
	}

	down := in.keyboard.IsDown(key)
	if op == OpEX9E {
		in.skipIf(down)
	} else {
		in.skipIf(!down)
	}
	return nil
}

// misc executes the timer, keypad, index register and memory transfer
// operations of the F family.
func (in *Interpreter) misc(op Op, x uint8) error {
	switch op {
	case OpFX07:
		in.v[x] = in.dt
	case OpFX0A:
		in.waitKey(x)
	case OpFX15:
		in.dt = in.v[x]
	case OpFX18:
		in.st = in.v[x]
	case OpFX1E:
		in.i += uint16(in.v[x])
	case OpFX29:
		in.i = uint16(in.v[x]) * glyphSize
	case OpFX33:
		return in.storeBCD(x)
	case OpFX55:
		if err := checkRange(int(in.i), int(x)+1); err != nil {
			return err
		}
		copy(in.memory[in.i:], in.v[:x+1])
	case OpFX65:
		if err := checkRange(int(in.i), int(x)+1); err != nil {
			return err
		}
		copy(in.v[:x+1], in.memory[in.i:])
	}
	return nil
}

// waitKey stores a newly pressed key in Vx. Without a new key press the
// program counter is rewound, so the instruction executes again on the next
// step.
func (in *Interpreter) waitKey(x uint8) {
	key, ok := in.keyboard.JustPressed()
	if !ok {
		in.pc -= 2
		return
	}
	in.v[x] = key
}

// storeBCD stores the hundreds, tens and ones digits of Vx at I, I+1 and I+2.
func (in *Interpreter) storeBCD(x uint8) error {
	if err := checkRange(int(in.i), 3); err != nil {
		return err
	}

	value := in.v[x]
	in.memory[in.i] = value / 100
	in.memory[in.i+1] = value / 10 % 10
	in.memory[in.i+2] = value % 10
	return nil
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
