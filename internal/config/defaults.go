package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded default configuration.
// It matches defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Game: GameConfig{
			StartLevel: 0,
			Ghost:      true,
		},
		Display: DisplayConfig{
			TickRate: 60,
		},
		Keys: KeyConfig{
			Left:     []string{"left", "h", "a"},
			Right:    []string{"right", "l", "d"},
			Rotate:   []string{"up", "k", "w"},
			SoftDrop: []string{"down", "j", "s"},
			Confirm:  []string{" ", "enter"},
			Quit:     []string{"q", "ctrl+c", "esc"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
