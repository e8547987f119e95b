package tetris

// Board dimensions are fixed. The top HiddenRows rows are a spawn buffer that
// is never drawn.
const (
	Width         = 10
	Height        = 22
	VisibleHeight = 20
	HiddenRows    = Height - VisibleHeight
)

// Board is the well of locked cells in row-major order.
// 0 is empty; 1..7 is the id of the piece that left the cell.
type Board [Width * Height]uint8

// At returns the cell at (row, col).
func (b *Board) At(row, col int) uint8 {
	return Get(b[:], Width, row, col)
}

// Put writes the cell at (row, col).
func (b *Board) Put(row, col int, v uint8) {
	Set(b[:], Width, row, col, v)
}

// RowFilled reports whether the row has no empty cell.
func (b *Board) RowFilled(row int) bool {
	return RowFilled(b[:], Width, row)
}

// RowEmpty reports whether the row has no occupied cell.
func (b *Board) RowEmpty(row int) bool {
	return RowEmpty(b[:], Width, row)
}

// Clear empties every cell.
func (b *Board) Clear() {
	*b = Board{}
}

// IsValid reports whether every occupied cell of the piece lies inside the
// board on an empty cell. It never mutates anything.
func IsValid(p Piece, b *Board) bool {
	t := p.Template()
	for row := 0; row < t.Side; row++ {
		for col := 0; col < t.Side; col++ {
			if t.At(row, col, p.Rotation) == 0 {
				continue
			}
			boardRow := p.Row + row
			boardCol := p.Col + col
			if boardRow < 0 || boardRow >= Height {
				return false
			}
			if boardCol < 0 || boardCol >= Width {
				return false
			}
			if b.At(boardRow, boardCol) != 0 {
				return false
			}
		}
	}
	return true
}

// Merge bakes the piece into the board. The piece must be valid where it is;
// Merge overwrites whatever it covers without checking.
func Merge(b *Board, p Piece) {
	p.Cells(func(row, col int, v uint8) {
		b.Put(row, col, v)
	})
}

// Ghost returns the piece moved straight down as far as it stays valid.
// A piece that is already invalid is returned unchanged.
func Ghost(p Piece, b *Board) Piece {
	if !IsValid(p, b) {
		return p
	}
	for IsValid(p.Moved(1, 0), b) {
		p = p.Moved(1, 0)
	}
	return p
}
