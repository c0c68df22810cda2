package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/scene-arcade/internal/core"
	"github.com/vovakirdan/scene-arcade/internal/platform/tui"
	"github.com/vovakirdan/scene-arcade/internal/registry"
	"github.com/vovakirdan/scene-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space        - Start / launch / slice
  Arrows/WASD  - Move, hop or roll
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Leave (while paused or after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, slower start
  normal - Default progression
  hard   - Fewer lives, faster start
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play mrpig
  arcade play breaker --difficulty easy
  arcade play geometryfighter --difficulty hard
  arcade play marblemaze --config ./my-maze.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closer := newFileLogger("arcade")
	defer closer.Close()

	configureGame(gameID)
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}

	cfg := terminalConfig()
	cfg.Scores = tui.NewScoreKeeper(store, logger)

	_, runErr := tui.Run(game, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
