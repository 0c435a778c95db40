// Package display implements the CHIP-8 monochrome framebuffer.
// Sprites are composited by XOR-ing their bits onto the grid, and a draw reports
// a collision whenever it turns an already lit pixel off.
package display

import "strings"

// CHIP-8 screen dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Screen is a snapshot of the framebuffer, rows outer and columns inner.
// A non-zero cell is a lit pixel.
type Screen [Height][Width]uint8

// Display holds the pixel grid and the addressing policy used when drawing.
type Display struct {
	screen Screen
	wrap   bool
}

// New returns a cleared display with wrap mode enabled.
func New() *Display {
	return &Display{
		wrap: true,
	}
}

// Clear turns all pixels off.
func (d *Display) Clear() {
	d.screen = Screen{}
}

// SetWrap sets the addressing policy for following draws. With wrap mode
// enabled, pixels outside the grid wrap around to the opposite edge, otherwise
// they are clipped.
func (d *Display) SetWrap(wrap bool) {
	d.wrap = wrap
}

// Wrap returns whether wrap mode is enabled.
func (d *Display) Wrap() bool {
	return d.wrap
}

// DrawByte draws one sprite row at the given position, most significant bit
// first. It returns true if any lit pixel was turned off.
func (d *Display) DrawByte(b byte, x, y int) bool {
	collided := false

	for i := range 8 {
		if b&(0x80>>i) == 0 {
			continue
		}

		col, row, ok := d.cell(x+i, y)
		if !ok {
			continue
		}

		if d.screen[row][col] != 0 {
			collided = true
		}
		d.screen[row][col] ^= 1
	}

	return collided
}

// cell maps a candidate coordinate to a grid cell based on the wrap mode.
func (d *Display) cell(x, y int) (int, int, bool) {
	if d.wrap {
		return mod(x, Width), mod(y, Height), true
	}
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, 0, false
	}
	return x, y, true
}

// Screen returns a copy of the current framebuffer.
func (d *Display) Screen() Screen {
	return d.screen
}

// Lit returns the number of lit pixels.
func (s Screen) Lit() int {
	count := 0
	for _, row := range s {
		for _, cell := range row {
			if cell != 0 {
				count++
			}
		}
	}
	return count
}

// String renders the screen as text, one line per row.
func (s Screen) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width*3 + 1))

	for y := range Height {
		for x := range Width {
			if s.Pixel(x, y) {
				sb.WriteRune('█')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Pixel returns whether the pixel at the given position is lit.
// Coordinates outside the grid report an unlit pixel.
func (s Screen) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return s[y][x] != 0
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
