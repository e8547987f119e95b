package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDropInterval(t *testing.T) {
	tests := []struct {
		level  int
		frames int
	}{
		{-3, 48},
		{0, 48},
		{1, 43},
		{8, 8},
		{9, 6},
		{12, 5},
		{15, 4},
		{18, 3},
		{19, 2},
		{28, 2},
		{29, 1},
		{99, 1},
	}

	for _, tt := range tests {
		assert.InDelta(t, float64(tt.frames)/60, DropInterval(tt.level), 1e-9, "level %d", tt.level)
	}
}

func TestFramesPerDropNeverSpeedsDown(t *testing.T) {
	for i := 1; i < len(FramesPerDrop); i++ {
		assert.LessOrEqual(t, FramesPerDrop[i], FramesPerDrop[i-1], "level %d", i)
	}
}
