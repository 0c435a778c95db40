package keyboard

import (
	"fmt"
	"strings"
)

// layout maps keypad indexes to the physical keys of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var layout = [KeyCount]string{
	"X", "1", "2", "3",
	"Q", "W", "E", "A",
	"S", "D", "Z", "C",
	"4", "R", "F", "V",
}

var indexes = func() map[string]uint8 {
	m := make(map[string]uint8, KeyCount)
	for i, name := range layout {
		m[name] = uint8(i)
	}
	return m
}()

// Index returns the keypad index of a physical key name.
func Index(name string) (uint8, bool) {
	idx, ok := indexes[strings.ToUpper(strings.TrimSpace(name))]
	return idx, ok
}

// Name returns the physical key name of a keypad index.
func Name(index uint8) string {
	if int(index) >= KeyCount {
		return ""
	}
	return layout[index]
}

// Keys returns a keypad snapshot with the given physical keys pressed.
func Keys(names ...string) ([KeyCount]bool, error) {
	var keys [KeyCount]bool
	for _, name := range names {
		idx, ok := Index(name)
		if !ok {
			return keys, fmt.Errorf("unsupported key '%s'", name)
		}
		keys[idx] = true
	}
	return keys, nil
}
