package core

// ScoreKeeper persists finished-session scores and answers high-score queries.
// The platform passes one in; games hand it to their session state.
type ScoreKeeper interface {
	SaveScore(gameID string, score int) (int64, error)
	HighScore(gameID string) (int, error)
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int         // Screen width in characters
	ScreenH  int         // Screen height in characters
	TickRate int         // Simulation ticks per second (default 60)
	Seed     int64       // RNG seed for deterministic gameplay
	Scores   ScoreKeeper // Optional high-score persistence, nil disables it
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

// Seconds converts a tick count to seconds at this config's tick rate.
func (c RuntimeConfig) Seconds(ticks uint64) float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return float64(ticks) / float64(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best persisted score for this game
	Lives     int  // Remaining lives (or health for games without lives)
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
