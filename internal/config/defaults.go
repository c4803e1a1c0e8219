package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			MaxSize: 50,
			Size:    0,
		},
		Rules: RulesConfig{
			Variant:       "snake",
			InitialScore:  1,
			AppleAttempts: 0,
		},
		Input: InputConfig{
			Up:      "w",
			Right:   "d",
			Down:    "s",
			Left:    "a",
			Unknown: "up",
		},
		Glyphs: GlyphConfig{
			Empty: "-",
			Apple: "*",
			Snake: "#",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
