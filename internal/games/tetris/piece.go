package tetris

// KindCount is the number of piece shapes in the catalog.
const KindCount = 7

// Template is an immutable square shape. Occupied cells hold the piece id,
// empty cells hold 0.
type Template struct {
	Cells []uint8
	Side  int
}

// Templates is the piece catalog. Template i holds the value i+1.
var Templates = [KindCount]Template{
	{Side: 4, Cells: []uint8{ // I
		0, 0, 0, 0,
		1, 1, 1, 1,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}},
	{Side: 2, Cells: []uint8{ // O
		2, 2,
		2, 2,
	}},
	{Side: 3, Cells: []uint8{ // T
		0, 0, 0,
		3, 3, 3,
		0, 3, 0,
	}},
	{Side: 3, Cells: []uint8{ // S
		0, 4, 4,
		4, 4, 0,
		0, 0, 0,
	}},
	{Side: 3, Cells: []uint8{ // Z
		5, 5, 0,
		0, 5, 5,
		0, 0, 0,
	}},
	{Side: 3, Cells: []uint8{ // J
		6, 0, 0,
		6, 6, 6,
		0, 0, 0,
	}},
	{Side: 3, Cells: []uint8{ // L
		0, 0, 7,
		7, 7, 7,
		0, 0, 0,
	}},
}

// KindNames are the conventional letters of the catalog entries.
var KindNames = [KindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// At samples the template at local (row, col) as seen after rotating it
// clockwise by rotation quarter turns. No rotated copy is built.
func (t Template) At(row, col, rotation int) uint8 {
	side := t.Side
	switch normalizeRotation(rotation) {
	case 0:
		return t.Cells[row*side+col]
	case 1:
		return t.Cells[(side-col-1)*side+row]
	case 2:
		return t.Cells[(side-row-1)*side+(side-col-1)]
	default:
		return t.Cells[col*side+(side-row-1)]
	}
}

func normalizeRotation(rotation int) int {
	return ((rotation % 4) + 4) % 4
}

// Piece is the active, player-controlled shape.
type Piece struct {
	Kind     uint8 // Index into Templates
	Rotation int   // Quarter turns clockwise, 0..3
	Row      int   // Board row of the template's top-left corner
	Col      int   // Board column of the template's top-left corner
}

// Template returns the catalog shape of the piece.
func (p Piece) Template() Template {
	return Templates[p.Kind]
}

// ID returns the board value the piece leaves behind when it locks.
func (p Piece) ID() uint8 {
	return p.Kind + 1
}

// Cells calls fn with the board position and value of every occupied cell.
func (p Piece) Cells(fn func(row, col int, v uint8)) {
	t := p.Template()
	for row := 0; row < t.Side; row++ {
		for col := 0; col < t.Side; col++ {
			if v := t.At(row, col, p.Rotation); v != 0 {
				fn(p.Row+row, p.Col+col, v)
			}
		}
	}
}

// Moved returns a copy of the piece shifted by the given offsets.
func (p Piece) Moved(dRow, dCol int) Piece {
	p.Row += dRow
	p.Col += dCol
	return p
}

// Rotated returns a copy of the piece turned one quarter clockwise.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % 4
	return p
}
