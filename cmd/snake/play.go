package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start the game. A title screen waits for any key, then a round begins.

Controls:
  Arrows/WASD/HJKL - Steer
  Space/P          - Pause
  Esc              - Back to title (while paused)
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play --tick-rate 12
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	def := core.DefaultConfig()
	width, height := def.ScreenW, def.ScreenH
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		width, height = w, h
	}

	hsPath, err := cfg.HighScore.Path()
	if err != nil {
		return err
	}
	logger.Debug("high score file", "path", hsPath)

	// Round history is optional; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.TickRate,
			Seed:     flagSeed,
		},
		Scores:  highscore.NewFileStore(hsPath),
		History: store,
		Logger:  logger,
	})
}
