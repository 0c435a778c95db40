// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/interpreter"
)

// ErrEmptyProgram is returned for a ROM file without content.
var ErrEmptyProgram = errors.New("empty program")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a CHIP-8 ROM file. The file content is returned as is, it has to
// fit into the program memory of the interpreter.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.Read(file)
}

// Read reads a CHIP-8 program from a reader.
func (l *Loader) Read(r io.Reader) ([]byte, error) {
	// read one byte past the limit to detect oversized programs
	data, err := io.ReadAll(io.LimitReader(r, interpreter.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	switch {
	case len(data) == 0:
		return nil, ErrEmptyProgram
	case len(data) > interpreter.MaxProgramSize:
		return nil, fmt.Errorf("%w: more than %d bytes", interpreter.ErrProgramTooLarge, interpreter.MaxProgramSize)
	}
	return data, nil
}
