// Package config provides YAML-based configuration loading for the snake
// game: grid size, tick rate, food safe margin, starting snake and the
// location of the persisted high score.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid       GridConfig      `yaml:"grid"`
	TickRate   int             `yaml:"tick_rate"`   // Ticks per second
	SafeMargin int             `yaml:"safe_margin"` // Cells from each edge where food never spawns
	Food       FoodConfig      `yaml:"food"`
	Start      StartConfig     `yaml:"start"`
	HighScore  HighScoreConfig `yaml:"high_score"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FoodConfig tunes food placement.
type FoodConfig struct {
	// MaxAttempts bounds rejection sampling before falling back to a scan
	// of the free cells.
	MaxAttempts int `yaml:"max_attempts"`
}

// StartConfig describes the snake at the start of a round.
// The head is placed at the grid center.
type StartConfig struct {
	Length  int    `yaml:"length"`
	Heading string `yaml:"heading"` // "up", "down", "left" or "right"
}

// HighScoreConfig locates the persisted high score record.
type HighScoreConfig struct {
	File string `yaml:"file"`
	Dir  string `yaml:"dir"` // "~" expands to the home directory
}

// Path returns the full high score file path with "~" expanded.
func (h HighScoreConfig) Path() (string, error) {
	dir, err := ExpandHome(h.Dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, h.File), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Validate reports whether the configuration can run a round.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate %d must be positive", ErrInvalid, c.TickRate)
	}
	if c.SafeMargin < 0 {
		return fmt.Errorf("%w: safe_margin %d must not be negative", ErrInvalid, c.SafeMargin)
	}
	innerW := c.Grid.Width - 2*c.SafeMargin
	innerH := c.Grid.Height - 2*c.SafeMargin
	if innerW <= 0 || innerH <= 0 {
		return fmt.Errorf("%w: safe_margin %d leaves no room for food on a %dx%d grid",
			ErrInvalid, c.SafeMargin, c.Grid.Width, c.Grid.Height)
	}
	if c.Food.MaxAttempts < 0 {
		return fmt.Errorf("%w: food.max_attempts %d must not be negative", ErrInvalid, c.Food.MaxAttempts)
	}
	if c.Start.Length < 1 {
		return fmt.Errorf("%w: start.length %d must be at least 1", ErrInvalid, c.Start.Length)
	}
	dc, dr, ok := headingDelta(c.Start.Heading)
	if !ok {
		return fmt.Errorf("%w: unknown start.heading %q", ErrInvalid, c.Start.Heading)
	}
	// The body trails behind the head, opposite to the heading.
	tailCol := c.Grid.Width/2 - dc*(c.Start.Length-1)
	tailRow := c.Grid.Height/2 - dr*(c.Start.Length-1)
	if tailCol < 0 || tailCol >= c.Grid.Width || tailRow < 0 || tailRow >= c.Grid.Height {
		return fmt.Errorf("%w: start.length %d does not fit on a %dx%d grid",
			ErrInvalid, c.Start.Length, c.Grid.Width, c.Grid.Height)
	}
	if c.HighScore.File == "" {
		return fmt.Errorf("%w: high_score.file must be set", ErrInvalid)
	}
	return nil
}

// headingDelta maps a heading name to its unit offset.
func headingDelta(heading string) (dc, dr int, ok bool) {
	switch strings.ToLower(heading) {
	case "up":
		return 0, -1, true
	case "down":
		return 0, 1, true
	case "left":
		return -1, 0, true
	case "right":
		return 1, 0, true
	}
	return 0, 0, false
}
