// snake is the terminal Snake game.
//
// Usage:
//
//	snake                    - Play with the classic text protocol (same as 'snake classic')
//	snake classic            - Classic stdin/stdout game
//	snake play [variant]     - Full-screen game; shows a variant picker without an argument
//	snake list               - List rule variants
//
// Global flags:
//
//	--size <n>          - Board size; skips the size prompt
//	--seed <value>      - Set RNG seed for reproducible games
//	--config <path>     - Path to a snake.yaml
//	--log-level <lvl>   - debug, info, warn or error (overrides config)
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagSize     int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake on a square board. Steer with w/a/s/d, eat apples to grow,
and avoid the walls and your own body.

Available commands:
  classic  - Classic text game on stdin/stdout (default)
  play     - Full-screen game with colours and restart
  list     - Show rule variants

Examples:
  snake
  snake classic --size 10 --seed 42
  snake play snake_tailchase
  snake list`,
	Args:          cobra.NoArgs,
	RunE:          runClassic,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size (0 = ask)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(classicCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
}

// app is the state shared by the game commands.
type app struct {
	cfg    config.SnakeConfig
	logger *log.Logger
	close  func() error
}

// setup loads the configuration and builds the logger. stderrOK reports
// whether logs may go to stderr when no log file is set.
func setup(stderrOK bool) (*app, error) {
	cfg, source, cfgErr := config.LoadSnake(flagConfig)
	if cfgErr != nil {
		return nil, cfgErr
	}

	level := cfg.LogLevel()
	if flagLogLevel != "" {
		parsed, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		level = parsed
	}

	var out io.Writer = io.Discard
	closeFn := func() error { return nil }
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	case stderrOK:
		out = os.Stderr
	}

	logger := newLogger(out, level)
	logger.Debug("config loaded", "source", source)

	return &app{cfg: cfg, logger: logger, close: closeFn}, nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
}

// boardSize resolves the size from --size, then the config. Zero means the
// player is asked.
func boardSize(cfg config.SnakeConfig) (int, error) {
	size := cfg.Board.Size
	if flagSize != 0 {
		size = flagSize
	}
	if size != 0 && (size < 1 || size > cfg.Board.MaxSize) {
		return 0, fmt.Errorf("board size %d out of range [1, %d]", size, cfg.Board.MaxSize)
	}
	return size, nil
}

func unknownVariantError(id string) error {
	return fmt.Errorf("unknown variant %q (run 'snake list' to see available variants)", id)
}

// sessionID returns the per-game session ID when the variant has one.
func sessionID(g any) string {
	if s, ok := g.(interface{ SessionID() string }); ok {
		return s.SessionID()
	}
	return ""
}
