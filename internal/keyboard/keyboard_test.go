package keyboard

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestState_IsDown(t *testing.T) {
	s := New()
	var keys [KeyCount]bool
	keys[0x5] = true
	keys[0xF] = true
	s.Set(keys)

	assert.True(t, s.IsDown(0x5))
	assert.True(t, s.IsDown(0xF))
	assert.False(t, s.IsDown(0x0))
	assert.False(t, s.IsDown(0x10))
	assert.Equal(t, keys, s.Keys())
}

func TestState_JustPressed(t *testing.T) {
	s := New()

	_, ok := s.JustPressed()
	assert.False(t, ok)

	var keys [KeyCount]bool
	keys[0xA] = true
	s.Set(keys)

	key, ok := s.JustPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xA), key)

	// holding the key is not a new press
	s.Set(keys)
	_, ok = s.JustPressed()
	assert.False(t, ok)

	// the lowest newly pressed key wins
	keys[0x3] = true
	keys[0x7] = true
	s.Set(keys)
	key, ok = s.JustPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x3), key)

	s.Set([KeyCount]bool{})
	_, ok = s.JustPressed()
	assert.False(t, ok)
}

func TestState_Reset(t *testing.T) {
	s := New()
	var keys [KeyCount]bool
	keys[1] = true
	s.Set(keys)

	s.Reset()
	assert.False(t, s.IsDown(1))
	_, ok := s.JustPressed()
	assert.False(t, ok)
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name  string
		index uint8
		valid bool
	}{
		{"X", 0x0, true},
		{"1", 0x1, true},
		{"q", 0x4, true},
		{"A", 0x7, true},
		{"Z", 0xA, true},
		{"4", 0xC, true},
		{" v ", 0xF, true},
		{"P", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := Index(tt.name)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.index, index)
		})
	}
}

func TestName(t *testing.T) {
	for i := range uint8(KeyCount) {
		index, ok := Index(Name(i))
		assert.True(t, ok)
		assert.Equal(t, i, index)
	}
	assert.Equal(t, "", Name(KeyCount))
}

func TestKeys(t *testing.T) {
	keys, err := Keys("W", "r")
	assert.NoError(t, err)
	assert.True(t, keys[0x5])
	assert.True(t, keys[0xD])

	_, err = Keys("W", "?")
	assert.ErrorContains(t, err, "unsupported key")
}
