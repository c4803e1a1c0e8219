package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in full-screen mode",
	Long: `Start the full-screen game. Without a variant a picker is shown.

Controls:
  w/a/s/d, arrows  - Steer (one key, one move)
  R                - Restart (after game over)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play snake
  snake play snake_tailchase --size 12`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) (err error) {
	// Logs on stderr would tear the alternate screen.
	a, err := setup(!term.IsTerminal(int(os.Stderr.Fd())))
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.close(); err == nil {
			err = closeErr
		}
	}()

	size, err := boardSize(a.cfg)
	if err != nil {
		return err
	}

	var variant string
	if len(args) == 1 {
		variant = args[0]
	} else {
		if variant, err = tui.RunVariantMenu(); err != nil {
			return err
		}
		// User quit the picker
		if variant == "" {
			return nil
		}
	}
	if !registry.Exists(variant) {
		return unknownVariantError(variant)
	}

	game, err := registry.Create(variant, a.logger)
	if err != nil {
		return err
	}

	res, err := tui.Run(game, tui.Options{
		Config:  a.cfg.Runtime(size, flagSeed),
		Keymap:  a.cfg.Keymap(),
		MaxSize: a.cfg.Board.MaxSize,
		Logger:  a.logger,
	})
	if err != nil {
		a.logger.Error("game aborted", "err", err)
		return err
	}
	a.logger.Info("session ended", "games", res.Games, "last_score", res.State.Score)
	return nil
}
