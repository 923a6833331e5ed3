package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seal-arcade/internal/assets"
	"github.com/vovakirdan/seal-arcade/internal/games/breakout"
	"github.com/vovakirdan/seal-arcade/internal/games/shooter"
)

var (
	flagConfig     string
	flagDifficulty string
)

// configureGames applies the CLI config path and difficulty to a game
// before it is created, and routes sprite loading logs to logger.
func configureGames(gameID string, logger *log.Logger) {
	switch gameID {
	case "shooter":
		shooter.SetConfigPath(flagConfig)
		shooter.SetDifficultyPreset(flagDifficulty)
		shooter.SetAssetLoader(assets.NewLoader(logger.WithPrefix("assets")))
	case "breakout":
		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(flagDifficulty)
	}
}
