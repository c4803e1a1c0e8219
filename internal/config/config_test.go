package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults differ from DefaultSnakeConfig():\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("rules:\n  initial_score: 0\ninput:\n  unknown: reject\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Rules.InitialScore != 0 {
		t.Errorf("InitialScore = %d, expected 0", cfg.Rules.InitialScore)
	}
	if cfg.Input.Unknown != "reject" {
		t.Errorf("Unknown = %q, expected reject", cfg.Input.Unknown)
	}
	// Untouched keys keep their defaults
	if cfg.Input.Up != "w" || cfg.Board.MaxSize != 50 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"max size zero", func(c *SnakeConfig) { c.Board.MaxSize = 0 }},
		{"max size too big", func(c *SnakeConfig) { c.Board.MaxSize = core.MaxBoardSize + 1 }},
		{"size above max", func(c *SnakeConfig) { c.Board.MaxSize = 10; c.Board.Size = 11 }},
		{"negative size", func(c *SnakeConfig) { c.Board.Size = -2 }},
		{"negative score", func(c *SnakeConfig) { c.Rules.InitialScore = -1 }},
		{"negative attempts", func(c *SnakeConfig) { c.Rules.AppleAttempts = -1 }},
		{"empty binding", func(c *SnakeConfig) { c.Input.Left = "" }},
		{"long binding", func(c *SnakeConfig) { c.Input.Up = "up" }},
		{"duplicate binding", func(c *SnakeConfig) { c.Input.Down = "w" }},
		{"bad policy", func(c *SnakeConfig) { c.Input.Unknown = "down" }},
		{"long glyph", func(c *SnakeConfig) { c.Glyphs.Apple = "()" }},
		{"duplicate glyph", func(c *SnakeConfig) { c.Glyphs.Snake = "-" }},
		{"bad log level", func(c *SnakeConfig) { c.Log.Level = "loud" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if got := cfg.LogLevel(); got != log.WarnLevel {
		t.Errorf("LogLevel() = %v, expected warn", got)
	}
	cfg.Log.Level = "debug"
	if got := cfg.LogLevel(); got != log.DebugLevel {
		t.Errorf("LogLevel() = %v, expected debug", got)
	}
}

func TestKeymapFromConfig(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Input = InputConfig{Up: "k", Right: "l", Down: "j", Left: "h", Unknown: "reject"}

	km := cfg.Keymap()
	for r, want := range map[rune]core.Action{'k': core.ActionUp, 'l': core.ActionRight, 'j': core.ActionDown, 'h': core.ActionLeft} {
		if got, ok := km.Resolve(r); !ok || got != want {
			t.Errorf("Resolve(%q) = (%v, %v), expected %v", r, got, ok, want)
		}
	}
	if _, ok := km.Resolve('w'); ok {
		t.Error("unbound key should be rejected")
	}
}

func TestRuntimeFromConfig(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Rules.InitialScore = 0
	cfg.Glyphs.Snake = "@"

	rc := cfg.Runtime(12, 99)
	if rc.Size != 12 || rc.Seed != 99 || rc.InitialScore != 0 {
		t.Errorf("Runtime() = %+v", rc)
	}
	if rc.Glyphs != (core.Glyphs{Empty: '-', Apple: '*', Snake: '@'}) {
		t.Errorf("Glyphs = %+v", rc.Glyphs)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("board:\n  size: 7\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, src, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if src != Source(path) {
		t.Errorf("source = %q, expected %q", src, path)
	}
	if cfg.Board.Size != 7 {
		t.Errorf("Board.Size = %d, expected 7", cfg.Board.Size)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("input:\n  up: [1, 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, _, err := LoadSnake(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  max_size: 99\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, _, err := LoadSnake(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadSnake() = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadSnakeFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("fallback config = %+v", cfg)
	}
}

func TestLoadSnakeLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("rules:\n  variant: snake_tailchase\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, src, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if src != Source(localConfigPath) {
		t.Errorf("source = %q, expected %q", src, localConfigPath)
	}
	if cfg.Rules.Variant != "snake_tailchase" {
		t.Errorf("Variant = %q, expected snake_tailchase", cfg.Rules.Variant)
	}
}
