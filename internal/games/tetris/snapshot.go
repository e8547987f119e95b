package tetris

// Snapshot captures the complete engine state for determinism testing.
type Snapshot struct {
	Phase      Phase
	Board      Board
	Piece      Piece
	StartLevel int
	Level      int
	Lines      int
	Points     int
	NextDrop   float64
	Pending    int // Rows awaiting removal
}

// Snapshot returns the current engine snapshot.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Phase:      s.phase,
		Board:      s.board,
		Piece:      s.piece,
		StartLevel: s.startLevel,
		Level:      s.level,
		Lines:      s.lines,
		Points:     s.points,
		NextDrop:   s.nextDrop,
		Pending:    s.marked,
	}
}

// Snapshot returns the snapshot of the wrapped engine.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}
