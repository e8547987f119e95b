package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagStartLevel int
	flagNoGhost    bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a round",
	Long: `Start the game. The start screen lets you pick the starting level.

Controls (default keys):
  Left/H/A        - Move left
  Right/L/D       - Move right
  Up/K/W          - Rotate (start screen: raise starting level)
  Down/J/S        - Soft drop (start screen: lower starting level)
  Space/Enter     - Start / hard drop / back to start after game over
  Q/Esc/Ctrl+C    - Quit

Difficulty options select the starting level:
  easy   - level 0
  normal - level 5
  hard   - level 10

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --start-level 12 --no-ghost
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagStartLevel, "start-level", 0, "Initial starting level (overrides difficulty)")
	playCmd.Flags().BoolVar(&flagNoGhost, "no-ghost", false, "Do not draw the landing position")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(settings.Log.File, settings.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   settings.Display.TickRate,
		Seed:       flagSeed,
		StartLevel: settings.Game.StartLevel,
		ShowGhost:  settings.Game.Ghost,
	}

	logger.Info("starting", "game", gameID, "fps", cfg.TickRate, "start_level", cfg.StartLevel)
	runErr := tui.Run(game, cfg, tui.NewKeyMap(settings.Keys), logger)
	if runErr != nil {
		logger.Error("run failed", "err", runErr)
	}

	//nolint:errcheck // Best-effort close, nothing left to report to
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadSettings loads the config file and applies command-line overrides.
// Explicit flags win over the difficulty preset, which wins over the file.
func loadSettings(cmd *cobra.Command) (config.TetrisConfig, error) {
	settings, err := config.LoadTetris(flagConfig)
	if err != nil {
		return settings, err
	}

	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			return settings, presetErr
		}
		config.ApplyPreset(&settings, preset)
	}
	if cmd.Flags().Changed("start-level") {
		settings.Game.StartLevel = flagStartLevel
	}
	if flagNoGhost {
		settings.Game.Ghost = false
	}
	if flagFPS != 0 {
		settings.Display.TickRate = flagFPS
	}
	if flagLogFile != "" {
		settings.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		settings.Log.Level = flagLogLevel
	}

	return settings, settings.Validate()
}
