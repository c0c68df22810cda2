package main

import (
	"github.com/vovakirdan/scene-arcade/internal/games/breaker"
	"github.com/vovakirdan/scene-arcade/internal/games/geometryfighter"
	"github.com/vovakirdan/scene-arcade/internal/games/marblemaze"
	"github.com/vovakirdan/scene-arcade/internal/games/mrpig"
)

// gameOptions are the per-game CLI hooks, applied before a game is created.
type gameOptions struct {
	configPath func(string)
	difficulty func(string)
}

var gameHooks = map[string]gameOptions{
	"breaker":         {breaker.SetConfigPath, breaker.SetDifficultyPreset},
	"geometryfighter": {geometryfighter.SetConfigPath, geometryfighter.SetDifficultyPreset},
	"marblemaze":      {marblemaze.SetConfigPath, marblemaze.SetDifficultyPreset},
	"mrpig":           {mrpig.SetConfigPath, mrpig.SetDifficultyPreset},
}

// configureGame passes --config and --difficulty to the game's package.
func configureGame(gameID string) {
	if h, ok := gameHooks[gameID]; ok {
		h.configPath(flagConfig)
		h.difficulty(flagDifficulty)
	}
}
