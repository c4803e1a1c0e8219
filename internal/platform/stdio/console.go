// Package stdio runs the game over plain standard input and output using the
// classic text protocol: a score banner, one row of glyphs per board row, one
// keystroke per move and a final GAME OVER line.
package stdio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ErrNoInput is returned when input ends before the game does.
var ErrNoInput = errors.New("stdio: input closed")

const (
	banner      = "----------------------------"
	clearScreen = "\033[H\033[2J"
	sizePrompt  = "Enter table size: "
	gameOverMsg = "GAME OVER!"
)

// Options configures a Console.
type Options struct {
	Keymap  core.Keymap // Zero value means core.DefaultKeymap
	MaxSize int         // Largest accepted table size
	Clear   bool        // Clear the terminal between frames
	Logger  *log.Logger // Optional; nil discards
}

// Console drives a game over a reader and a writer.
type Console struct {
	in     *bufio.Reader
	out    *bufio.Writer
	opts   Options
	logger *log.Logger
}

// NewConsole creates a console reading keys from r and writing frames to w.
func NewConsole(r io.Reader, w io.Writer, opts Options) *Console {
	if opts.MaxSize <= 0 {
		opts.MaxSize = core.MaxBoardSize
	}
	if opts.Keymap.Policy() == "" {
		opts.Keymap = core.DefaultKeymap()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Console{
		in:     bufio.NewReader(r),
		out:    bufio.NewWriter(w),
		opts:   opts,
		logger: logger,
	}
}

// PromptSize asks for the table size until a value in [1, MaxSize] is entered.
// Only the number is consumed; whatever follows it stays buffered for
// ReadAction, so "8 dddsss" sets the size and then plays three moves right.
func (c *Console) PromptSize() (int, error) {
	for {
		if _, err := c.out.WriteString(sizePrompt); err != nil {
			return 0, err
		}
		if err := c.out.Flush(); err != nil {
			return 0, err
		}

		token, err := c.readNumber()
		if err != nil {
			return 0, err
		}
		size, convErr := strconv.Atoi(token)
		if convErr == nil && size >= 1 && size <= c.opts.MaxSize {
			return size, nil
		}
		c.logger.Debug("rejected table size", "input", token)
	}
}

// readNumber skips whitespace and reads an optionally signed run of digits,
// unreading the rune that ends it. A token with no digits is discarded up to
// the next whitespace and returned as is so the caller rejects it.
func (c *Console) readNumber() (string, error) {
	r, err := c.skipSpace()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if r == '-' || r == '+' {
		b.WriteRune(r)
		r, _, err = c.in.ReadRune()
	}

	digits := 0
	for err == nil && r >= '0' && r <= '9' {
		b.WriteRune(r)
		digits++
		r, _, err = c.in.ReadRune()
	}

	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("stdio: read table size: %w", err)
		}
		if digits == 0 && b.Len() == 0 {
			return "", ErrNoInput
		}
		return b.String(), nil
	}

	if digits > 0 {
		if err := c.in.UnreadRune(); err != nil {
			return "", fmt.Errorf("stdio: read table size: %w", err)
		}
		return b.String(), nil
	}

	for !unicode.IsSpace(r) {
		b.WriteRune(r)
		if r, _, err = c.in.ReadRune(); err != nil {
			break
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("stdio: read table size: %w", err)
	}
	return b.String(), nil
}

func (c *Console) skipSpace() (rune, error) {
	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, ErrNoInput
			}
			return 0, fmt.Errorf("stdio: read table size: %w", err)
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

// ReadAction blocks until a key resolves to an action. Whitespace, and
// unbound keys under the reject policy, are skipped.
func (c *Console) ReadAction() (core.Action, error) {
	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return core.ActionNone, ErrNoInput
			}
			return core.ActionNone, fmt.Errorf("stdio: read key: %w", err)
		}
		if action, ok := c.opts.Keymap.Resolve(r); ok {
			return action, nil
		}
		if r > ' ' {
			c.logger.Debug("ignored key", "key", string(r))
		}
	}
}

// WriteFrame prints the score banner followed by the board rows.
func (c *Console) WriteFrame(score int, board *core.Screen) error {
	fmt.Fprintf(c.out, "%s\n", banner)
	fmt.Fprintf(c.out, "- CURRENT SCORE : %d        -\n", score)
	fmt.Fprintf(c.out, "%s\n\n", banner)
	for y := range board.Height() {
		c.out.WriteString(board.Row(y))
		c.out.WriteByte('\n')
	}
	return c.out.Flush()
}

func (c *Console) clear() error {
	if !c.opts.Clear {
		return nil
	}
	if _, err := c.out.WriteString(clearScreen); err != nil {
		return err
	}
	return c.out.Flush()
}

// Play resets game with cfg and runs it to the end: draw, read one key,
// step, clear, repeat. The final state is returned; GAME OVER has been
// printed when the error is nil.
func (c *Console) Play(game registry.Game, cfg core.RuntimeConfig) (core.GameState, error) {
	if err := game.Reset(cfg); err != nil {
		return core.GameState{}, err
	}
	board := core.NewScreen(cfg.Size, cfg.Size)

	if err := c.clear(); err != nil {
		return game.State(), err
	}

	for {
		game.Render(board)
		if err := c.WriteFrame(game.State().Score, board); err != nil {
			return game.State(), err
		}
		if game.State().GameOver {
			break
		}

		action, err := c.ReadAction()
		if err != nil {
			return game.State(), err
		}
		res, err := game.Step(action)
		if err != nil {
			return res.State, err
		}
		if res.State.GameOver {
			break
		}

		if err := c.clear(); err != nil {
			return game.State(), err
		}
	}

	fmt.Fprintln(c.out, gameOverMsg)
	return game.State(), c.out.Flush()
}
