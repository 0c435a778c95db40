// Package keyboard implements the 16 key hexadecimal keypad state of the CHIP-8.
package keyboard

// KeyCount is the number of keys on the hexadecimal keypad.
const KeyCount = 16

// State is the keypad state as reported by the host once per frame.
// It is replaced as a whole and tracks the key that changed to the pressed
// state with the latest snapshot.
type State struct {
	keys        [KeyCount]bool
	justPressed int // -1 if no key was newly pressed
}

// New returns a keypad state with all keys released.
func New() *State {
	return &State{
		justPressed: -1,
	}
}

// Set replaces the keypad state with a new snapshot. The lowest indexed key
// that was released in the previous snapshot and is down now becomes the
// just pressed key.
func (s *State) Set(keys [KeyCount]bool) {
	s.justPressed = -1
	for i, down := range keys {
		if down && !s.keys[i] {
			s.justPressed = i
			break
		}
	}
	s.keys = keys
}

// Keys returns the current snapshot.
func (s *State) Keys() [KeyCount]bool {
	return s.keys
}

// IsDown returns whether the given key is currently pressed.
// Indexes outside the keypad are reported as released.
func (s *State) IsDown(key uint8) bool {
	if int(key) >= KeyCount {
		return false
	}
	return s.keys[key]
}

// JustPressed returns the key that changed to the pressed state with the
// latest snapshot.
func (s *State) JustPressed() (uint8, bool) {
	if s.justPressed < 0 {
		return 0, false
	}
	return uint8(s.justPressed), true
}

// Reset releases all keys.
func (s *State) Reset() {
	s.keys = [KeyCount]bool{}
	s.justPressed = -1
}
