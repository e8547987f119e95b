package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	TickRate   int   // Host frames per second (default 60)
	Seed       int64 // RNG seed for deterministic gameplay
	StartLevel int   // Initial value of the start level selector
	ShowGhost  bool  // Draw the landing position of the active piece
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		Seed:      0, // 0 means use current time in platform layer
		ShowGhost: true,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level
	Lines    int  // Lines cleared this round
	GameOver bool // Whether the round has ended
}

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventGameStart    EventType = iota // Value: start level
	EventStartLevel                    // Value: newly selected start level
	EventLock                          // Value: id of the locked piece
	EventLinesCleared                  // Value: number of rows removed
	EventLevelUp                       // Value: new level
	EventGameOver                      // Value: final points
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventGameStart:
		return "game_start"
	case EventStartLevel:
		return "start_level"
	case EventLock:
		return "lock"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single notable occurrence, reported to the platform for logging.
type Event struct {
	Type  EventType
	Value int
	Time  float64 // Game clock in seconds when it happened
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
