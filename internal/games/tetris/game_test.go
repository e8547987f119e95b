package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func newGame(t *testing.T, ghost bool) *Game {
	t.Helper()
	g, err := registry.Create("tetris")
	require.NoError(t, err)

	cfg := core.DefaultConfig()
	cfg.Seed = 42
	cfg.ShowGhost = ghost
	g.Reset(cfg)
	return g.(*Game)
}

func TestRegistered(t *testing.T) {
	g := newGame(t, true)

	assert.Equal(t, "tetris", g.ID())
	assert.Equal(t, "Tetris", g.Title())
	assert.Contains(t, registry.List(), registry.GameInfo{ID: "tetris", Title: "Tetris"})
}

func TestStepReportsStateAndEvents(t *testing.T) {
	g := newGame(t, true)

	res := g.Step(0, core.PressEdges(core.ActionRotate))
	require.Len(t, res.Events, 1)
	assert.Equal(t, core.Event{Type: core.EventStartLevel, Value: 1}, res.Events[0])

	res = g.Step(0.1, core.PressEdges(core.ActionConfirm))
	assert.Equal(t, core.GameState{Level: 1}, res.State)
	assert.Equal(t, core.EventGameStart, res.Events[0].Type)

	// Events from an earlier step must not change under the caller.
	first := res.Events[0]
	g.Step(0.2, core.PressEdges(core.ActionConfirm))
	assert.Equal(t, first, res.Events[0])
}

func TestRenderStartScreen(t *testing.T) {
	g := newGame(t, true)
	g.Step(0, core.PressEdges(core.ActionRotate))

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	assert.Contains(t, out, "PRESS START")
	assert.Contains(t, out, "STARTING LEVEL: 1")
	assert.Contains(t, out, "LEVEL")
	assert.Contains(t, out, "POINTS")
	assert.Contains(t, out, "┌")
}

func TestRenderPlay(t *testing.T) {
	tests := []struct {
		name      string
		ghost     bool
		wantGhost bool
	}{
		{"with ghost", true, true},
		{"without ghost", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, tt.ghost)
			g.Step(0, core.PressEdges(core.ActionConfirm))
			g.Step(0.01, core.PressEdges(core.ActionSoftDrop))
			g.Step(0.02, core.PressEdges(core.ActionSoftDrop))

			scr := core.NewScreen(80, 24)
			g.Render(scr)
			out := scr.String()

			assert.NotContains(t, out, "PRESS START")
			assert.Contains(t, out, "██")
			assert.Equal(t, tt.wantGhost, strings.Contains(out, "░░"))
		})
	}
}

func TestRenderGameOverAndHighlight(t *testing.T) {
	g := newGame(t, true)
	g.Step(0, core.PressEdges(core.ActionConfirm))

	s := g.Engine()
	fillRow(&s.board, 21, 6, 0, 1, 2, 3)
	s.piece = Piece{Kind: 0, Col: 0}
	g.Step(1, core.PressEdges(core.ActionConfirm))
	require.Equal(t, PhaseLineClear, s.Phase())

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	bottom := (24-wellH)/2 + wellH - 2
	ox := (80 - layoutW) / 2
	for col := 0; col < Width; col++ {
		cell := scr.GetCell(ox+1+col*cellW, bottom)
		assert.Equal(t, '█', cell.Rune, "col %d", col)
		assert.Equal(t, core.ColorBrightWhite, cell.Color, "col %d", col)
	}

	s.phase = PhaseGameOver
	g.Render(scr)
	assert.Contains(t, scr.String(), "GAME OVER")
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, true)

	scr := core.NewScreen(20, 10)
	g.Render(scr)

	assert.Contains(t, scr.String(), "Window too small")
}
