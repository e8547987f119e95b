// Package config provides YAML-based configuration loading and difficulty
// presets for the tetris host.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// TetrisConfig contains all configuration for the game and its host.
type TetrisConfig struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Keys    KeyConfig     `yaml:"keys"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines gameplay parameters.
type GameConfig struct {
	StartLevel int  `yaml:"start_level"` // Initial value of the start screen selector
	Ghost      bool `yaml:"ghost"`       // Draw the landing position of the piece
}

// DisplayConfig defines how often the host drives the engine.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"` // Frames per second
}

// KeyConfig lists the key names bound to each action.
// Names follow bubbletea's KeyMsg.String(), e.g. "left", "ctrl+c", " ".
type KeyConfig struct {
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	Rotate   []string `yaml:"rotate"`
	SoftDrop []string `yaml:"soft_drop"`
	Confirm  []string `yaml:"confirm"`
	Quit     []string `yaml:"quit"`
}

// LogConfig defines where diagnostic logs go.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty disables logging while the TUI runs
}

// Tick rate bounds accepted by Validate.
const (
	MinTickRate = 1
	MaxTickRate = 240
)

// Validation errors.
var (
	ErrNegativeStartLevel = errors.New("start level must not be negative")
	ErrTickRate           = fmt.Errorf("tick rate must be within %d..%d", MinTickRate, MaxTickRate)
	ErrNoKeys             = errors.New("action has no key bound")
	ErrDuplicateKey       = errors.New("key bound to more than one action")
)

// Bindings returns the key lists in a fixed action order, named as in YAML.
func (k KeyConfig) Bindings() []Binding {
	return []Binding{
		{"left", k.Left},
		{"right", k.Right},
		{"rotate", k.Rotate},
		{"soft_drop", k.SoftDrop},
		{"confirm", k.Confirm},
		{"quit", k.Quit},
	}
}

// Binding is one action's key list.
type Binding struct {
	Action string
	Keys   []string
}

// Validate checks the configuration for values the game cannot run with.
func (c TetrisConfig) Validate() error {
	if c.Game.StartLevel < 0 {
		return fmt.Errorf("config: game.start_level %d: %w", c.Game.StartLevel, ErrNegativeStartLevel)
	}
	if c.Display.TickRate < MinTickRate || c.Display.TickRate > MaxTickRate {
		return fmt.Errorf("config: display.tick_rate %d: %w", c.Display.TickRate, ErrTickRate)
	}

	owner := make(map[string]string)
	for _, b := range c.Keys.Bindings() {
		if len(b.Keys) == 0 {
			return fmt.Errorf("config: keys.%s: %w", b.Action, ErrNoKeys)
		}
		for _, key := range b.Keys {
			if prev, ok := owner[key]; ok && prev != b.Action {
				return fmt.Errorf("config: key %q in keys.%s and keys.%s: %w", key, prev, b.Action, ErrDuplicateKey)
			}
			owner[key] = b.Action
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}
