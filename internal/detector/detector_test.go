package detector

import (
	"testing"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		inputFile  string
		wantSystem arch.System
	}{
		{
			name:       "detect from .ch8 extension",
			inputFile:  "pong.ch8",
			wantSystem: arch.CHIP8System,
		},
		{
			name:       "detect from .c8 extension",
			inputFile:  "pong.c8",
			wantSystem: arch.CHIP8System,
		},
		{
			name:       "detect from uppercase .ROM extension",
			inputFile:  "PONG.ROM",
			wantSystem: arch.CHIP8System,
		},
		{
			name:       "detect from .nes extension",
			inputFile:  "game.nes",
			wantSystem: arch.NES,
		},
		{
			name:       "unknown extension defaults to CHIP8",
			inputFile:  "pong.bin",
			wantSystem: arch.CHIP8System,
		},
		{
			name:       "no extension defaults to CHIP8",
			inputFile:  "roms/PONG",
			wantSystem: arch.CHIP8System,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSystem, d.Detect(tt.inputFile))
		})
	}
}
