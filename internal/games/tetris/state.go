package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Phase is the top-level mode of a round.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlay
	PhaseLineClear
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlay:
		return "play"
	case PhaseLineClear:
		return "line_clear"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// HighlightDuration is how long completed rows stay on screen before removal.
const HighlightDuration = 0.5

// State is the whole engine aggregate. It is only mutated by Tick and never
// reads a clock: time arrives as an argument.
type State struct {
	board  Board
	marker RowMarker
	marked int
	piece  Piece
	phase  Phase

	startLevel int
	level      int
	lines      int
	points     int

	now          float64
	nextDrop     float64
	highlightEnd float64

	rng    *rand.Rand
	events []core.Event
}

// NewState creates an engine in PhaseStart with an empty board.
func NewState(seed int64, startLevel int) *State {
	return &State{
		phase:      PhaseStart,
		startLevel: max(0, startLevel),
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Board returns a pointer to the board. Callers must treat it as read-only.
func (s *State) Board() *Board { return &s.board }

// Piece returns the active piece.
func (s *State) Piece() Piece { return s.piece }

// Ghost returns the landing position of the active piece.
func (s *State) Ghost() Piece { return Ghost(s.piece, &s.board) }

// Phase returns the current phase.
func (s *State) Phase() Phase { return s.phase }

// StartLevel returns the level selected on the start screen.
func (s *State) StartLevel() int { return s.startLevel }

// Level returns the current level.
func (s *State) Level() int { return s.level }

// Lines returns the rows cleared this round.
func (s *State) Lines() int { return s.lines }

// Points returns the score of this round.
func (s *State) Points() int { return s.points }

// Now returns the time passed to the last Tick.
func (s *State) Now() float64 { return s.now }

// NextDrop returns when gravity moves the piece next.
func (s *State) NextDrop() float64 { return s.nextDrop }

// HighlightEnd returns when the pending rows get removed.
func (s *State) HighlightEnd() float64 { return s.highlightEnd }

// PendingRows returns the rows waiting to be cleared. Only meaningful in
// PhaseLineClear.
func (s *State) PendingRows() (RowMarker, int) { return s.marker, s.marked }

// Events returns what happened during the last Tick.
func (s *State) Events() []core.Event { return s.events }

// Tick advances the engine to time now. Only +1 edges of in are acted on.
func (s *State) Tick(now float64, in core.InputEdges) {
	s.now = now
	s.events = s.events[:0]

	switch s.phase {
	case PhaseStart:
		s.updateStart(in)
	case PhasePlay:
		s.updatePlay(in)
	case PhaseLineClear:
		s.updateLineClear()
	case PhaseGameOver:
		s.updateGameOver(in)
	}
}

func (s *State) emit(t core.EventType, value int) {
	s.events = append(s.events, core.Event{Type: t, Value: value, Time: s.now})
}

func (s *State) updateStart(in core.InputEdges) {
	if in.Pressed(core.ActionRotate) {
		s.startLevel++
		s.emit(core.EventStartLevel, s.startLevel)
	}
	if in.Pressed(core.ActionSoftDrop) && s.startLevel > 0 {
		s.startLevel--
		s.emit(core.EventStartLevel, s.startLevel)
	}
	if in.Pressed(core.ActionConfirm) {
		s.board.Clear()
		s.marker = RowMarker{}
		s.marked = 0
		s.level = s.startLevel
		s.lines = 0
		s.points = 0
		s.spawn()
		s.phase = PhasePlay
		s.emit(core.EventGameStart, s.startLevel)
	}
}

func (s *State) updatePlay(in core.InputEdges) {
	dCol := 0
	if in.Pressed(core.ActionLeft) {
		dCol--
	}
	if in.Pressed(core.ActionRight) {
		dCol++
	}
	if dCol != 0 {
		if moved := s.piece.Moved(0, dCol); IsValid(moved, &s.board) {
			s.piece = moved
		}
	}
	if in.Pressed(core.ActionRotate) {
		if turned := s.piece.Rotated(); IsValid(turned, &s.board) {
			s.piece = turned
		}
	}

	if in.Pressed(core.ActionSoftDrop) {
		s.softDrop()
	}
	if in.Pressed(core.ActionConfirm) {
		for s.softDrop() {
		}
	}
	for s.now >= s.nextDrop {
		s.softDrop()
	}

	s.marker, s.marked = FindFullRows(&s.board)
	if s.marked > 0 {
		s.phase = PhaseLineClear
		s.highlightEnd = s.now + HighlightDuration
		return
	}
	if !s.board.RowEmpty(0) {
		s.phase = PhaseGameOver
		s.emit(core.EventGameOver, s.points)
	}
}

func (s *State) updateLineClear() {
	if s.now < s.highlightEnd {
		return
	}

	ClearRows(&s.board, &s.marker)
	s.lines += s.marked
	s.points += PointsForClear(s.level, s.marked)
	s.emit(core.EventLinesCleared, s.marked)

	if s.lines >= LinesToNextLevel(s.startLevel, s.level) {
		s.level++
		s.emit(core.EventLevelUp, s.level)
	}

	s.marker = RowMarker{}
	s.marked = 0
	s.phase = PhasePlay
}

func (s *State) updateGameOver(in core.InputEdges) {
	if in.Pressed(core.ActionConfirm) {
		s.phase = PhaseStart
	}
}

// softDrop moves the piece one row down. It returns false when the piece could
// not move and was locked in place, in which case a new piece is spawned.
func (s *State) softDrop() bool {
	moved := s.piece.Moved(1, 0)
	if !IsValid(moved, &s.board) {
		Merge(&s.board, s.piece)
		s.emit(core.EventLock, int(s.piece.ID()))
		s.spawn()
		return false
	}
	s.piece = moved
	s.nextDrop = s.now + DropInterval(s.level)
	return true
}

func (s *State) spawn() {
	s.piece = Piece{
		Kind: uint8(s.rng.Intn(KindCount)),
		Col:  Width / 2,
	}
	s.nextDrop = s.now + DropInterval(s.level)
}
