package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Game adapts the engine State to the registry.Game interface.
type Game struct {
	state     *State
	showGhost bool
}

// New creates a Tetris game. Reset must be called before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset discards the current round and returns to the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.state = NewState(cfg.Seed, cfg.StartLevel)
	g.showGhost = cfg.ShowGhost
}

// Step advances the engine to the given game time.
func (g *Game) Step(now float64, in core.InputEdges) core.StepResult {
	g.state.Tick(now, in)

	var events []core.Event
	if ev := g.state.Events(); len(ev) > 0 {
		events = make([]core.Event, len(ev))
		copy(events, ev)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Points(),
		Level:    g.state.Level(),
		Lines:    g.state.Lines(),
		GameOver: g.state.Phase() == PhaseGameOver,
	}
}

// Engine exposes the underlying state for inspection.
func (g *Game) Engine() *State {
	return g.state
}
