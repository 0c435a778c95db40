// Package runner runs a Chip-8 program headless for a number of frames.
package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/keyboard"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Runner loads a program and drives the interpreter the way a host at
// 60 Hz would: a number of steps per frame followed by one timer tick.
type Runner struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new runner.
func New(logger *log.Logger) *Runner {
	return &Runner{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute loads the input program and either writes a listing of it or runs
// it for the configured number of frames and writes the final screen.
func (r *Runner) Execute(ctx context.Context, opts options.Program, writer io.Writer) error {
	system := r.detector.Detect(opts.Input)
	if system != arch.CHIP8System {
		return fmt.Errorf("unsupported system '%s'", system)
	}

	program, err := r.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	if opts.Disassemble {
		if err := disasm.Write(writer, disasm.Disassemble(program)); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
		return nil
	}

	script, err := ParseKeyScript(opts.Keys)
	if err != nil {
		return fmt.Errorf("parsing key script: %w", err)
	}

	kb := keyboard.New()
	in := interpreter.New(config.InterpreterOptions(opts, kb)...)
	if err := in.Load(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	r.printInfo(opts, system, len(program))

	if err := r.run(ctx, in, kb, opts, program, script); err != nil {
		return err
	}

	screen := in.Screen()
	if _, err := io.WriteString(writer, screen.String()); err != nil {
		return fmt.Errorf("writing screen: %w", err)
	}
	return nil
}

// run executes all frames. The key snapshot of a frame is applied before its
// first step.
func (r *Runner) run(ctx context.Context, in *interpreter.Interpreter, kb *keyboard.State,
	opts options.Program, program []byte, script map[int][keyboard.KeyCount]bool) error {

	sound := false
	for frame := range opts.Frames {
		select {
		case <-ctx.Done():
			return fmt.Errorf("running frame %d: %w", frame, ctx.Err())
		default:
		}

		if opts.ResetFrame > 0 && frame == opts.ResetFrame {
			if err := r.reset(in, kb, program); err != nil {
				return fmt.Errorf("resetting in frame %d: %w", frame, err)
			}
		}

		keys := script[frame]
		kb.Set(keys)
		if opts.Debug {
			r.logKeys(frame, keys)
		}

		for range opts.Speed {
			if opts.Debug {
				r.trace(in)
			}
			if err := in.Step(); err != nil {
				r.logFault(in)
				return fmt.Errorf("executing frame %d: %w", frame, err)
			}
		}
		in.TickTimers()

		if active := in.SoundActive(); active != sound {
			sound = active
			state := "off"
			if active {
				state = "on"
			}
			r.logger.Debug("Sound signal changed",
				log.Int("frame", frame),
				log.String("state", state))
		}
	}

	r.logger.Debug("Execution finished",
		log.Int("frames", opts.Frames),
		log.Int("lit_pixels", in.Screen().Lit()))
	return nil
}

// reset restores the power-on state of the machine and the keypad and
// reloads the program.
func (r *Runner) reset(in *interpreter.Interpreter, kb *keyboard.State, program []byte) error {
	in.Reset()
	kb.Reset()
	if err := in.Load(program); err != nil {
		return fmt.Errorf("reloading program: %w", err)
	}
	r.logger.Info("Machine reset, program reloaded")
	return nil
}

// logKeys logs the physical keys held down in a frame.
func (r *Runner) logKeys(frame int, keys [keyboard.KeyCount]bool) {
	var names []string
	for i, down := range keys {
		if down {
			names = append(names, keyboard.Name(uint8(i)))
		}
	}
	if len(names) == 0 {
		return
	}
	r.logger.Debug("Keys pressed",
		log.Int("frame", frame),
		log.Strings("keys", names))
}

// logFault logs the machine state at the instruction that halted it.
func (r *Runner) logFault(in *interpreter.Interpreter) {
	r.logger.Debug("Machine halted",
		log.Hex("pc", in.PC()),
		log.Hex("index", in.I()),
		log.String("registers", fmt.Sprintf("% 02X", in.Registers())),
		log.Int("stack_depth", len(in.Stack())),
		log.Err(in.Fault()))
}

// trace logs the instruction that is executed next.
func (r *Runner) trace(in *interpreter.Interpreter) {
	word, err := in.Word()
	if err != nil {
		// the following step reports the fault
		return
	}
	r.logger.Debug("Step",
		log.Hex("pc", in.PC()),
		log.Hex("index", in.I()),
		log.String("code", disasm.FormatWord(word)))
}

// printInfo prints information about the program being run.
func (r *Runner) printInfo(opts options.Program, system arch.System, size int) {
	if opts.Quiet {
		return
	}

	r.logger.Info("Processing Chip-8 ROM",
		log.String("file", opts.Input),
		log.Stringer("system", system),
		log.Int("size", size),
		log.Int("frames", opts.Frames),
		log.Int("speed", opts.Speed),
	)
	if opts.NoWrap {
		r.logger.Info("Sprites are clipped at the screen edges")
	}
}
