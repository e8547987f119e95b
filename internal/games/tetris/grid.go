package tetris

// Flat row-major byte matrices. Callers keep indices in range; a bad index
// panics through the slice bounds check.

// Get returns the cell at (row, col) of a matrix with the given width.
func Get(cells []uint8, width, row, col int) uint8 {
	return cells[row*width+col]
}

// Set writes the cell at (row, col) of a matrix with the given width.
func Set(cells []uint8, width, row, col int, v uint8) {
	cells[row*width+col] = v
}

// RowFilled reports whether every cell of the row is non-zero.
func RowFilled(cells []uint8, width, row int) bool {
	for col := 0; col < width; col++ {
		if Get(cells, width, row, col) == 0 {
			return false
		}
	}
	return true
}

// RowEmpty reports whether every cell of the row is zero.
func RowEmpty(cells []uint8, width, row int) bool {
	for col := 0; col < width; col++ {
		if Get(cells, width, row, col) != 0 {
			return false
		}
	}
	return true
}
