// Package session holds the score, lives and coins of one play-through and
// the tap-to-play / playing / game-over state machine around them.
//
// A State is created once per game instance and reset in place. Games own
// their State and pass it to whatever needs it; there is no shared global.
package session

import "fmt"

// Mode is the phase of a session.
type Mode int

const (
	ModeTapToPlay Mode = iota // intro screen, waiting for the first tap
	ModePlaying
	ModeGameOver
)

// String returns a short name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeTapToPlay:
		return "tap-to-play"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Keeper persists scores. It is opaque to the session: save a finished
// score, load the best one.
type Keeper interface {
	SaveScore(gameID string, score int) (int64, error)
	HighScore(gameID string) (int, error)
}

// Defaults are the values a session starts with and returns to on Reset.
type Defaults struct {
	Lives int
}

// State is the mutable record of one session.
type State struct {
	gameID   string
	defaults Defaults
	keeper   Keeper

	mode           Mode
	score          int
	lives          int
	coinsCollected int
	coinsBanked    int
	highScore      int
}

// New creates a session in tap-to-play mode. keeper may be nil.
// The stored high score is loaded best-effort; a failed load leaves it at zero.
func New(gameID string, d Defaults, keeper Keeper) *State {
	s := &State{gameID: gameID, defaults: d, keeper: keeper}
	s.Reset()
	//nolint:errcheck // A missing high score only affects the HUD
	s.LoadState()
	return s
}

// Mode returns the current mode.
func (s *State) Mode() Mode { return s.mode }

// Playing reports whether the session is in playing mode.
func (s *State) Playing() bool { return s.mode == ModePlaying }

// Score returns the current score.
func (s *State) Score() int { return s.score }

// Lives returns the remaining lives, never below zero.
func (s *State) Lives() int { return s.lives }

// CoinsCollected returns the coins carried but not yet banked.
func (s *State) CoinsCollected() int { return s.coinsCollected }

// CoinsBanked returns the coins banked since the last reset.
func (s *State) CoinsBanked() int { return s.coinsBanked }

// HighScore returns the best score seen, persisted or from this session.
func (s *State) HighScore() int { return s.highScore }

// Defaults returns the values Reset restores.
func (s *State) Defaults() Defaults { return s.defaults }

// Start moves tap-to-play to playing. It reports whether the transition happened.
func (s *State) Start() bool {
	if s.mode != ModeTapToPlay {
		return false
	}
	s.mode = ModePlaying
	return true
}

// End moves playing to game-over and persists the score.
// Outside of playing mode it does nothing.
func (s *State) End() error {
	if s.mode != ModePlaying {
		return nil
	}
	s.mode = ModeGameOver
	return s.SaveState()
}

// Reset restores the initial score, lives and coins and returns to
// tap-to-play. The high score survives.
func (s *State) Reset() {
	s.mode = ModeTapToPlay
	s.score = 0
	s.lives = s.defaults.Lives
	s.coinsCollected = 0
	s.coinsBanked = 0
}

// AddScore adds n points. Non-positive amounts are ignored, so the score
// never goes down between resets.
func (s *State) AddScore(n int) {
	if n <= 0 {
		return
	}
	s.score += n
	if s.score > s.highScore {
		s.highScore = s.score
	}
}

// LoseLife takes one life and reports whether none are left.
// Lives stop at zero.
func (s *State) LoseLife() bool {
	if s.lives > 0 {
		s.lives--
	}
	return s.lives == 0
}

// SetLives overrides the current lives, clamped at zero. Games with a
// health meter use it to mirror health into the HUD.
func (s *State) SetLives(n int) {
	s.lives = max(n, 0)
}

// CollectCoin adds one carried coin.
func (s *State) CollectCoin() {
	s.coinsCollected++
}

// BankCoins moves every carried coin into the bank and onto the score.
// With nothing carried the attempt fails and nothing changes.
func (s *State) BankCoins() bool {
	if s.coinsCollected == 0 {
		return false
	}
	s.coinsBanked += s.coinsCollected
	s.AddScore(s.coinsCollected)
	s.coinsCollected = 0
	return true
}

// SaveState records the current score as a candidate high score.
func (s *State) SaveState() error {
	if s.score > s.highScore {
		s.highScore = s.score
	}
	if s.keeper == nil || s.score == 0 {
		return nil
	}
	if _, err := s.keeper.SaveScore(s.gameID, s.score); err != nil {
		return fmt.Errorf("session: save %s score: %w", s.gameID, err)
	}
	return nil
}

// LoadState reads the persisted high score.
func (s *State) LoadState() error {
	if s.keeper == nil {
		return nil
	}
	hs, err := s.keeper.HighScore(s.gameID)
	if err != nil {
		return fmt.Errorf("session: load %s high score: %w", s.gameID, err)
	}
	s.highScore = max(s.highScore, hs)
	return nil
}
