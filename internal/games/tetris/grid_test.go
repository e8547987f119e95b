package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSet(t *testing.T) {
	cells := make([]uint8, 3*4)
	Set(cells, 4, 2, 1, 7)

	assert.Equal(t, uint8(7), Get(cells, 4, 2, 1))
	assert.Equal(t, uint8(7), cells[2*4+1])
	assert.Equal(t, uint8(0), Get(cells, 4, 1, 2))
}

func TestRowFilledAndEmpty(t *testing.T) {
	tests := []struct {
		name       string
		row        []uint8
		wantFilled bool
		wantEmpty  bool
	}{
		{"all zero", []uint8{0, 0, 0, 0}, false, true},
		{"all set", []uint8{1, 2, 3, 4}, true, false},
		{"mixed", []uint8{1, 0, 3, 0}, false, false},
		{"one hole", []uint8{1, 1, 0, 1}, false, false},
		{"one block", []uint8{0, 0, 5, 0}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFilled, RowFilled(tt.row, 4, 0))
			assert.Equal(t, tt.wantEmpty, RowEmpty(tt.row, 4, 0))
			assert.False(t, RowFilled(tt.row, 4, 0) && RowEmpty(tt.row, 4, 0),
				"a row of non-zero width cannot be both filled and empty")
		})
	}
}

func TestRowPredicatesZeroWidth(t *testing.T) {
	assert.True(t, RowFilled(nil, 0, 0))
	assert.True(t, RowEmpty(nil, 0, 0))
}

func TestGetOutOfRangePanics(t *testing.T) {
	cells := make([]uint8, 4)
	assert.Panics(t, func() { Get(cells, 2, 2, 0) })
}
