// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file to run
	Keys  string // scripted key presses as frame:KEY pairs, for example "30:W,31:W"
}

// Flags contains behavior options.
type Flags struct {
	Disassemble bool // output a listing of the ROM instead of running it
	NoWrap      bool // clip sprites at the screen edges instead of wrapping them
	Debug       bool
	Quiet       bool
}

// Execution contains options that control the interpreter loop.
type Execution struct {
	Frames     int    // number of frames to run
	Speed      int    // instructions executed per frame
	StackLimit int    // maximum nested calls, 0 for unbounded
	Seed       uint64 // random seed, 0 for a non deterministic source
	ResetFrame int    // frame at which the machine is reset and the program reloaded, 0 for never
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	Execution
}

// Default values of the execution options.
const (
	DefaultFrames = 600
	DefaultSpeed  = 10
)

// NewProgram returns a new options instance with default options.
func NewProgram() Program {
	return Program{
		Execution: Execution{
			Frames: DefaultFrames,
			Speed:  DefaultSpeed,
		},
	}
}
