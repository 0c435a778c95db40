// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	opts := options.NewProgram()
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return opts, &UsageError{flags: flags}
	}
	if err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	args := flags.Args()
	if len(args) == 0 && opts.Input == "" {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	if err := validateOptions(opts); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <file to run>\n\n")
	e.flags.SetOutput(os.Stdout)
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after file to run, please pass the file to run as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions checks the value ranges of the execution options
func validateOptions(opts options.Program) error {
	switch {
	case opts.Frames <= 0:
		return fmt.Errorf("frames must be positive, got %d", opts.Frames)
	case opts.Speed <= 0:
		return fmt.Errorf("speed must be positive, got %d", opts.Speed)
	case opts.StackLimit < 0:
		return fmt.Errorf("stack limit must not be negative, got %d", opts.StackLimit)
	case opts.ResetFrame < 0:
		return fmt.Errorf("reset frame must not be negative, got %d", opts.ResetFrame)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Keys, "keys", "", "scripted key presses as frame:KEY pairs, for example 30:W,31:W")
	flags.IntVar(&opts.Frames, "frames", options.DefaultFrames, "number of 60 Hz frames to run")
	flags.IntVar(&opts.Speed, "speed", options.DefaultSpeed, "instructions executed per frame")
	flags.IntVar(&opts.StackLimit, "stack", 0, "maximum nested subroutine calls, 16 on original hardware, 0 for unbounded")
	flags.IntVar(&opts.ResetFrame, "reset", 0, "frame at which the machine is reset and the program reloaded, 0 for never")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for the random number generator, 0 for a random seed")
	flags.BoolVar(&opts.NoWrap, "nowrap", false, "clip sprites at the screen edges instead of wrapping them around")
	flags.BoolVar(&opts.Disassemble, "disasm", false, "print a listing of the ROM instead of running it")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
