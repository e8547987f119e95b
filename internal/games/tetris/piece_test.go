package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesHoldTheirID(t *testing.T) {
	for i, tmpl := range Templates {
		require.Len(t, tmpl.Cells, tmpl.Side*tmpl.Side, KindNames[i])
		occupied := 0
		for _, v := range tmpl.Cells {
			if v != 0 {
				assert.Equal(t, uint8(i+1), v, KindNames[i])
				occupied++
			}
		}
		assert.Equal(t, 4, occupied, KindNames[i])
	}
}

func TestRotationCycleCloses(t *testing.T) {
	for i, tmpl := range Templates {
		for rot := -4; rot < 8; rot++ {
			for row := 0; row < tmpl.Side; row++ {
				for col := 0; col < tmpl.Side; col++ {
					assert.Equal(t, tmpl.At(row, col, rot), tmpl.At(row, col, rot+4),
						"%s rot=%d (%d,%d)", KindNames[i], rot, row, col)
				}
			}
		}
	}
}

// shape renders a template at a rotation as rows of '#' and '.'.
func shape(tmpl Template, rotation int) []string {
	rows := make([]string, tmpl.Side)
	for row := 0; row < tmpl.Side; row++ {
		line := make([]byte, tmpl.Side)
		for col := 0; col < tmpl.Side; col++ {
			line[col] = '.'
			if tmpl.At(row, col, rotation) != 0 {
				line[col] = '#'
			}
		}
		rows[row] = string(line)
	}
	return rows
}

func TestRotationMappings(t *testing.T) {
	tests := []struct {
		name     string
		kind     int
		rotation int
		want     []string
	}{
		{"T spawn", 2, 0, []string{"...", "###", ".#."}},
		{"T quarter", 2, 1, []string{".#.", "##.", ".#."}},
		{"T half", 2, 2, []string{".#.", "###", "..."}},
		{"T three quarters", 2, 3, []string{".#.", ".##", ".#."}},
		{"I spawn", 0, 0, []string{"....", "####", "....", "...."}},
		{"I quarter", 0, 1, []string{"..#.", "..#.", "..#.", "..#."}},
		{"O any", 1, 3, []string{"##", "##"}},
		{"J quarter", 5, 1, []string{".##", ".#.", ".#."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shape(Templates[tt.kind], tt.rotation))
		})
	}
}

func TestPieceHelpers(t *testing.T) {
	p := Piece{Kind: 2, Rotation: 3, Row: 4, Col: 5}

	assert.Equal(t, uint8(3), p.ID())
	assert.Equal(t, Piece{Kind: 2, Rotation: 3, Row: 5, Col: 4}, p.Moved(1, -1))
	assert.Equal(t, 0, p.Rotated().Rotation)
	assert.Equal(t, 4, p.Row, "Moved and Rotated must not modify the receiver")

	var cells [][2]int
	p.Cells(func(row, col int, v uint8) {
		assert.Equal(t, p.ID(), v)
		cells = append(cells, [2]int{row, col})
	})
	assert.ElementsMatch(t, [][2]int{{4, 6}, {5, 6}, {5, 7}, {6, 6}}, cells)
}
