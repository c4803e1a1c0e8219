// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board  BoardConfig `yaml:"board"`
	Rules  RulesConfig `yaml:"rules"`
	Input  InputConfig `yaml:"input"`
	Glyphs GlyphConfig `yaml:"glyphs"`
	Log    LogConfig   `yaml:"log"`
}

// BoardConfig defines the accepted table sizes.
type BoardConfig struct {
	MaxSize int `yaml:"max_size"`
	Size    int `yaml:"size"` // 0 = prompt at startup
}

// RulesConfig defines gameplay rules.
type RulesConfig struct {
	Variant       string `yaml:"variant"`
	InitialScore  int    `yaml:"initial_score"`
	AppleAttempts int    `yaml:"apple_attempts"`
}

// InputConfig defines the single-character key bindings.
type InputConfig struct {
	Up      string `yaml:"up"`
	Right   string `yaml:"right"`
	Down    string `yaml:"down"`
	Left    string `yaml:"left"`
	Unknown string `yaml:"unknown"` // "up" or "reject"
}

// GlyphConfig defines the characters drawn for board cells.
type GlyphConfig struct {
	Empty string `yaml:"empty"`
	Apple string `yaml:"apple"`
	Snake string `yaml:"snake"`
}

// LogConfig defines the logging level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks the configuration and reports every problem found.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.MaxSize < 1 || c.Board.MaxSize > core.MaxBoardSize {
		errs = append(errs, fmt.Errorf("%w: board.max_size %d out of range [1, %d]", ErrInvalidConfig, c.Board.MaxSize, core.MaxBoardSize))
	}
	if c.Board.Size != 0 && (c.Board.Size < 1 || c.Board.Size > c.Board.MaxSize) {
		errs = append(errs, fmt.Errorf("%w: board.size %d out of range [1, %d]", ErrInvalidConfig, c.Board.Size, c.Board.MaxSize))
	}
	if c.Rules.InitialScore < 0 {
		errs = append(errs, fmt.Errorf("%w: rules.initial_score must not be negative", ErrInvalidConfig))
	}
	if c.Rules.AppleAttempts < 0 {
		errs = append(errs, fmt.Errorf("%w: rules.apple_attempts must not be negative", ErrInvalidConfig))
	}

	keys := map[string]string{
		"input.up":    c.Input.Up,
		"input.right": c.Input.Right,
		"input.down":  c.Input.Down,
		"input.left":  c.Input.Left,
	}
	seen := make(map[rune]string, len(keys))
	for _, name := range []string{"input.up", "input.right", "input.down", "input.left"} {
		r, err := singleRune(name, keys[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if other, dup := seen[r]; dup {
			errs = append(errs, fmt.Errorf("%w: %s and %s share key %q", ErrInvalidConfig, other, name, r))
		}
		seen[r] = name
	}
	if !core.UnknownKeyPolicy(c.Input.Unknown).Valid() {
		errs = append(errs, fmt.Errorf("%w: input.unknown %q must be %q or %q", ErrInvalidConfig, c.Input.Unknown, core.UnknownKeyUp, core.UnknownKeyReject))
	}

	glyphs := map[string]string{
		"glyphs.empty": c.Glyphs.Empty,
		"glyphs.apple": c.Glyphs.Apple,
		"glyphs.snake": c.Glyphs.Snake,
	}
	seenGlyph := make(map[rune]string, len(glyphs))
	for _, name := range []string{"glyphs.empty", "glyphs.apple", "glyphs.snake"} {
		r, err := singleRune(name, glyphs[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if other, dup := seenGlyph[r]; dup {
			errs = append(errs, fmt.Errorf("%w: %s and %s share glyph %q", ErrInvalidConfig, other, name, r))
		}
		seenGlyph[r] = name
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level %q: %w", ErrInvalidConfig, c.Log.Level, err))
	}

	return errors.Join(errs...)
}

// LogLevel returns the configured log level.
// Call Validate first; an unknown level falls back to warn.
func (c SnakeConfig) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

func singleRune(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s must be exactly one character, got %q", ErrInvalidConfig, name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Keymap builds the key table for the configured bindings.
// Call Validate first; malformed bindings are skipped.
func (c SnakeConfig) Keymap() core.Keymap {
	bindings := make(map[rune]core.Action, 4)
	for s, a := range map[string]core.Action{
		c.Input.Up:    core.ActionUp,
		c.Input.Right: core.ActionRight,
		c.Input.Down:  core.ActionDown,
		c.Input.Left:  core.ActionLeft,
	} {
		if utf8.RuneCountInString(s) == 1 {
			bindings[firstRune(s)] = a
		}
	}
	return core.NewKeymap(bindings, core.UnknownKeyPolicy(c.Input.Unknown))
}

// CellGlyphs returns the configured glyphs; unset ones fall back to defaults.
func (c SnakeConfig) CellGlyphs() core.Glyphs {
	return core.Glyphs{
		Empty: firstRune(c.Glyphs.Empty),
		Apple: firstRune(c.Glyphs.Apple),
		Snake: firstRune(c.Glyphs.Snake),
	}.OrDefault()
}

// Runtime builds the game runtime config for a board size and seed.
func (c SnakeConfig) Runtime(size int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Size:          size,
		Seed:          seed,
		InitialScore:  c.Rules.InitialScore,
		AppleAttempts: c.Rules.AppleAttempts,
		Glyphs:        c.CellGlyphs(),
	}
}
