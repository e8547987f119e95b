package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsForClear(t *testing.T) {
	tests := []struct {
		level, lines, want int
	}{
		{0, 1, 40},
		{0, 2, 100},
		{0, 3, 300},
		{0, 4, 1200},
		{5, 4, 7200},
		{9, 1, 400},
		{0, 0, 0},
		{3, 5, 0},
		{3, -1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PointsForClear(tt.level, tt.lines), "level=%d lines=%d", tt.level, tt.lines)
	}
}

func TestLinesToNextLevel(t *testing.T) {
	tests := []struct {
		start, level, want int
	}{
		{0, 0, 10},
		{0, 1, 20},
		{0, 5, 60},
		{5, 5, 60},
		{5, 6, 70},
		{9, 9, 100},
		{10, 10, 100},
		{15, 15, 100},
		{16, 16, 110},
		{20, 20, 150},
		{20, 21, 160},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LinesToNextLevel(tt.start, tt.level), "start=%d level=%d", tt.start, tt.level)
	}
}
