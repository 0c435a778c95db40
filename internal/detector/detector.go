// Package detector handles system architecture detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles system architecture detection from file extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system architecture of a ROM from its filename
// extension. Files with an unknown extension are assumed to be Chip-8
// programs, as the format has no header that could be checked.
func (d *Detector) Detect(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8", ".c8", ".rom":
		return arch.CHIP8System
	case ".nes":
		return arch.NES
	default:
		d.logger.Debug("Unknown file extension, assuming Chip-8 program",
			log.String("file", filename))
		return arch.CHIP8System
	}
}
