package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/storage"
)

// scoreKeeper hands the store to games and logs what happens to their scores.
type scoreKeeper struct {
	store  *storage.Store
	logger *log.Logger
}

// NewScoreKeeper wraps store for use as RuntimeConfig.Scores.
// A nil store disables persistence and yields a nil keeper.
func NewScoreKeeper(store *storage.Store, logger *log.Logger) core.ScoreKeeper {
	if store == nil {
		return nil
	}
	if logger == nil {
		logger = log.Default()
	}
	return &scoreKeeper{store: store, logger: logger}
}

func (k *scoreKeeper) SaveScore(gameID string, score int) (int64, error) {
	id, err := k.store.SaveScore(gameID, score)
	if err != nil {
		k.logger.Warn("could not save score", "game", gameID, "score", score, "error", err)
		return 0, err
	}
	k.logger.Debug("score saved", "game", gameID, "score", score, "id", id)
	return id, nil
}

func (k *scoreKeeper) HighScore(gameID string) (int, error) {
	high, err := k.store.HighScore(gameID)
	if err != nil {
		k.logger.Warn("could not load high score", "game", gameID, "error", err)
	}
	return high, err
}
