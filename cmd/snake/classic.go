package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/stdio"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var flagVariant string

var classicCmd = &cobra.Command{
	Use:   "classic",
	Short: "Play using the classic text protocol",
	Long: `Play on standard input and output. Each frame shows the score banner
and the board; type one key per move (w/a/s/d by default) and press Enter
if your terminal is line buffered.

Examples:
  snake classic
  snake classic --size 8 --seed 1
  echo "8 dddsss" | snake classic`,
	Args: cobra.NoArgs,
	RunE: runClassic,
}

func init() {
	classicCmd.Flags().StringVar(&flagVariant, "variant", "", "Rule variant (default from config)")
}

func runClassic(cmd *cobra.Command, args []string) (err error) {
	a, err := setup(true)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.close(); err == nil {
			err = closeErr
		}
	}()

	variant := a.cfg.Rules.Variant
	if flagVariant != "" {
		variant = flagVariant
	}
	if !registry.Exists(variant) {
		a.logger.Error("unknown variant", "variant", variant)
		return unknownVariantError(variant)
	}

	size, err := boardSize(a.cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	clearScreen := false
	if f, ok := out.(*os.File); ok {
		clearScreen = term.IsTerminal(int(f.Fd()))
	}
	console := stdio.NewConsole(cmd.InOrStdin(), out, stdio.Options{
		Keymap:  a.cfg.Keymap(),
		MaxSize: a.cfg.Board.MaxSize,
		Clear:   clearScreen,
		Logger:  a.logger,
	})

	if size == 0 {
		if size, err = console.PromptSize(); err != nil {
			return err
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := registry.Create(variant, a.logger)
	if err != nil {
		return err
	}

	a.logger.Info("game started", "variant", variant, "size", size, "seed", seed)
	state, err := console.Play(game, a.cfg.Runtime(size, seed))
	logger := a.logger.With("session", sessionID(game), "variant", variant)
	if err != nil {
		logger.Error("game aborted", "err", err, "score", state.Score)
		return err
	}
	logger.Info("game over", "cause", state.Cause, "score", state.Score, "length", state.Length)
	return nil
}
