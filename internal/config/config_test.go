package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestParseOverridesOnlyNamedFields(t *testing.T) {
	cfg, err := Parse([]byte("grid:\n  width: 40\ntick_rate: 12\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Grid.Width != 40 || cfg.TickRate != 12 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Grid.Height != 20 || cfg.SafeMargin != 3 || cfg.HighScore.File != "snake_highscore.json" {
		t.Errorf("unnamed fields should keep defaults: %+v", cfg)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("grid: [not, a, map")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("safe_margin: 1\nstart:\n  length: 4\n  heading: up\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.SafeMargin != 1 || cfg.Start.Length != 4 || cfg.Start.Heading != "up" {
		t.Errorf("custom config not applied: %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 6\n  height: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SnakeConfig)
		errMsg string // empty means valid
	}{
		{"defaults", func(*SnakeConfig) {}, ""},
		{"zero width", func(c *SnakeConfig) { c.Grid.Width = 0 }, "grid"},
		{"zero tick rate", func(c *SnakeConfig) { c.TickRate = 0 }, "tick_rate"},
		{"negative margin", func(c *SnakeConfig) { c.SafeMargin = -1 }, "safe_margin"},
		{"margin leaves no interior", func(c *SnakeConfig) { c.SafeMargin = 10 }, "no room"},
		{"smallest interior", func(c *SnakeConfig) { c.Grid = GridConfig{Width: 7, Height: 7} }, ""},
		{"negative attempts", func(c *SnakeConfig) { c.Food.MaxAttempts = -1 }, "max_attempts"},
		{"zero length", func(c *SnakeConfig) { c.Start.Length = 0 }, "start.length"},
		{"unknown heading", func(c *SnakeConfig) { c.Start.Heading = "north" }, "start.heading"},
		{"heading case insensitive", func(c *SnakeConfig) { c.Start.Heading = "LEFT" }, ""},
		{"snake fits exactly", func(c *SnakeConfig) { c.Start.Length = 16 }, ""},
		{"snake too long", func(c *SnakeConfig) { c.Start.Length = 17 }, "does not fit"},
		{"missing file name", func(c *SnakeConfig) { c.HighScore.File = "" }, "high_score.file"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.modify(&cfg)
			err := cfg.Validate()

			if tc.errMsg == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, expected ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("Validate() = %q, expected it to mention %q", err, tc.errMsg)
			}
		})
	}
}

func TestHighScorePath(t *testing.T) {
	h := HighScoreConfig{File: "hs.json", Dir: "/tmp/snake"}
	path, err := h.Path()
	if err != nil {
		t.Fatalf("Path() failed: %v", err)
	}
	if path != filepath.Join("/tmp/snake", "hs.json") {
		t.Errorf("Path() = %q", path)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	h.Dir = "~/.snake"
	path, err = h.Path()
	if err != nil {
		t.Fatalf("Path() failed: %v", err)
	}
	if path != filepath.Join(home, ".snake", "hs.json") {
		t.Errorf("Path() = %q, expected home expansion", path)
	}
}

func TestMarshalRoundTripKeepsValues(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.TickRate = 15

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "tick_rate: 15") {
		t.Errorf("Marshal() output missing tick_rate:\n%s", data)
	}
}
