package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  30,
			Height: 20,
		},
		TickRate:   8,
		SafeMargin: 3,
		Food: FoodConfig{
			MaxAttempts: 256,
		},
		Start: StartConfig{
			Length:  1,
			Heading: "right",
		},
		HighScore: HighScoreConfig{
			File: "snake_highscore.json",
			Dir:  "~/.snake",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
