package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games simulate in their own canvas pixel space; the screen size is only
// used by frontends that rasterise the canvas.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal frontends)
	ScreenH  int   // Screen height in characters (terminal frontends)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome describes how a finished game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota // Still playing
	OutcomeWin                 // Player cleared the game
	OutcomeLoss                // Player ran out of lives
)

// String returns the storage name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return ""
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Lives    int     // Remaining lives
	GameOver bool    // Whether the game has ended
	Outcome  Outcome // How the game ended, once GameOver is set
	Paused   bool    // Whether the game is paused
}

// Event is something notable that happened during a tick.
type Event interface {
	EventName() string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
