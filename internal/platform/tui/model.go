package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// helpHeight is the number of terminal rows reserved for the key help line.
const helpHeight = 1

// Model is the Bubble Tea model that drives a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	held      core.InputFrame
	edges     core.EdgeDetector
	start     time.Time
	now       float64
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset here so the first tick sees a fresh round.
func NewModel(game registry.Game, cfg core.RuntimeConfig, keys KeyMap, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	logger.Debug("game reset", "game", game.ID(), "seed", cfg.Seed, "start_level", cfg.StartLevel)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpHeight)),
		config:    cfg,
		keys:      keys,
		help:      help.New(),
		logger:    logger,
		held:      core.NewInputFrame(),
		start:     time.Now(),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey marks the bound button as held until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit",
			"points", m.gameState.Score, "lines", m.gameState.Lines, "level", m.gameState.Level)
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.held.Set(action)
	return m, nil
}

// handleResize resizes the screen buffer. The round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-helpHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game clock and runs one simulation step.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	// The engine requires a clock that never goes backwards.
	m.now = max(m.now, at.Sub(m.start).Seconds())

	edges := m.edges.Next(m.held)
	// Terminals never report releases, so every key message is a fresh press
	// even when the same key was down on the previous tick.
	for a, held := range m.held.Actions {
		if held {
			edges.Press(a)
		}
	}
	result := m.game.Step(m.now, edges)
	m.gameState = result.State
	m.logEvents(result.Events)

	// A key press counts as held for exactly one tick.
	m.held.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logEvents reports notable engine events.
func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Type {
		case core.EventGameStart:
			m.logger.Info("round started", "level", e.Value, "t", e.Time)
		case core.EventStartLevel:
			m.logger.Debug("start level selected", "level", e.Value)
		case core.EventLock:
			m.logger.Debug("piece locked", "id", e.Value, "t", e.Time)
		case core.EventLinesCleared:
			m.logger.Info("lines cleared", "count", e.Value, "total", m.gameState.Lines, "points", m.gameState.Score)
		case core.EventLevelUp:
			m.logger.Info("level up", "level", e.Value)
		case core.EventGameOver:
			m.logger.Info("game over", "points", e.Value, "lines", m.gameState.Lines, "level", m.gameState.Level)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, keys KeyMap, logger *log.Logger) error {
	model := NewModel(game, cfg, keys, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
