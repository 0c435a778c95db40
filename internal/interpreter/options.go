package interpreter

import (
	"math/rand/v2"
)

// Keyboard provides the keypad state to the interpreter.
type Keyboard interface {
	// IsDown returns whether the given key is currently pressed.
	IsDown(key uint8) bool
	// JustPressed returns the key that was newly pressed in the current frame.
	JustPressed() (uint8, bool)
}

// RandomSource provides uniformly distributed random bytes.
type RandomSource interface {
	Byte() uint8
}

// RandomFunc adapts a function to the RandomSource interface.
type RandomFunc func() uint8

// Byte returns the next random byte.
func (f RandomFunc) Byte() uint8 {
	return f()
}

// NewRandom returns a deterministic random source for the given seed.
func NewRandom(seed uint64) RandomSource {
	r := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	return RandomFunc(func() uint8 {
		return uint8(r.UintN(256))
	})
}

var defaultRandom = RandomFunc(func() uint8 {
	return uint8(rand.UintN(256))
})

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithKeyboard sets the keypad the interpreter reads key state from.
func WithKeyboard(kb Keyboard) Option {
	return func(i *Interpreter) {
		i.keyboard = kb
	}
}

// WithRandom sets the random source used by the RND instruction.
func WithRandom(src RandomSource) Option {
	return func(i *Interpreter) {
		i.random = src
	}
}

// WithStackLimit limits the number of nested subroutine calls. The original
// hardware supports 16 levels, a limit of 0 leaves the stack unbounded.
func WithStackLimit(limit int) Option {
	return func(i *Interpreter) {
		i.stackLimit = limit
	}
}

// WithWrap sets the initial wrap mode of the display.
func WithWrap(wrap bool) Option {
	return func(i *Interpreter) {
		i.display.SetWrap(wrap)
	}
}
