// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// InterpreterOptions returns the interpreter options matching the program
// options. The keypad is passed separately as it is owned by the host loop.
func InterpreterOptions(opts options.Program, kb interpreter.Keyboard) []interpreter.Option {
	options := []interpreter.Option{
		interpreter.WithKeyboard(kb),
		interpreter.WithWrap(!opts.NoWrap),
		interpreter.WithStackLimit(opts.StackLimit),
	}
	if opts.Seed != 0 {
		options = append(options, interpreter.WithRandom(interpreter.NewRandom(opts.Seed)))
	}
	return options
}
