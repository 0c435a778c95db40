package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/keyboard"
)

// ParseKeyScript parses a comma separated list of frame:KEY pairs into the
// keypad snapshot of every listed frame. Keys listed for the same frame are
// pressed together, all keys are up in frames that are not listed.
func ParseKeyScript(script string) (map[int][keyboard.KeyCount]bool, error) {
	frames := map[int][]string{}

	for entry := range strings.SplitSeq(script, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		frameText, key, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("invalid key script entry '%s', expected frame:KEY", entry)
		}
		frame, err := strconv.Atoi(strings.TrimSpace(frameText))
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("invalid frame number in key script entry '%s'", entry)
		}
		frames[frame] = append(frames[frame], key)
	}

	snapshots := make(map[int][keyboard.KeyCount]bool, len(frames))
	for frame, names := range frames {
		keys, err := keyboard.Keys(names...)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", frame, err)
		}
		snapshots[frame] = keys
	}
	return snapshots, nil
}
