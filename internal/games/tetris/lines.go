package tetris

// RowMarker flags rows that are waiting to be cleared.
type RowMarker [Height]bool

// Count returns the number of flagged rows.
func (m *RowMarker) Count() int {
	n := 0
	for _, marked := range m {
		if marked {
			n++
		}
	}
	return n
}

// FindFullRows flags every completely filled row and returns how many there are.
func FindFullRows(b *Board) (RowMarker, int) {
	var marker RowMarker
	count := 0
	for row := 0; row < Height; row++ {
		if b.RowFilled(row) {
			marker[row] = true
			count++
		}
	}
	return marker, count
}

// ClearRows removes the flagged rows in place. Rows above a removed row fall by
// the number of removed rows below them and the vacated top rows become empty.
//
// Two cursors walk up from the bottom: dst visits every row once, src skips
// flagged rows. Since src never runs below dst, copying src into dst never
// overwrites a row that still has to be read.
func ClearRows(b *Board, marker *RowMarker) {
	src := Height - 1
	for dst := Height - 1; dst >= 0; dst-- {
		for src >= 0 && marker[src] {
			src--
		}

		if src < 0 {
			clear(b[dst*Width : (dst+1)*Width])
			continue
		}
		if src != dst {
			copy(b[dst*Width:(dst+1)*Width], b[src*Width:(src+1)*Width])
		}
		src--
	}
}
