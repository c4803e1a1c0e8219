// Package snake implements the classic grid Snake engine: a square board, a
// ring-buffer body, random apple placement and a single-step movement rule.
package snake

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Direction represents a movement direction. The order matches the delta table.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// deltas holds the unit offset for each Direction.
var deltas = [...]core.Coord{
	DirUp:    core.NewCoord(-1, 0),
	DirRight: core.NewCoord(0, 1),
	DirDown:  core.NewCoord(1, 0),
	DirLeft:  core.NewCoord(0, -1),
}

// Delta returns the unit offset for d.
func (d Direction) Delta() core.Coord {
	return deltas[d]
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// DirectionFromAction converts a movement action to a Direction.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	default:
		return 0, false
	}
}

// Rule selects how a move onto the current tail cell is judged.
type Rule string

const (
	// RuleClassic: the tail has not moved yet when the head arrives, so
	// entering it is a collision.
	RuleClassic Rule = "classic"
	// RuleTailChase: the tail cell counts as free unless the move eats an apple.
	RuleTailChase Rule = "tailchase"
)

// Describe explains the rule in one line for variant listings.
func (r Rule) Describe() string {
	switch r {
	case RuleClassic:
		return "moving onto the tail cell ends the game"
	case RuleTailChase:
		return "the tail cell is free while it moves away"
	default:
		return "unknown rule"
	}
}

// Game is the complete state of one Snake game.
type Game struct {
	rule   Rule
	logger *log.Logger

	id       string
	rng      *rand.Rand
	size     int
	attempts int
	glyphs   core.Glyphs

	grid      *Grid
	body      Body
	apple     core.Coord
	hasApple  bool
	score     int
	steps     uint64
	direction Direction

	gameOver bool
	cause    core.EndCause
	phantom  bool // Body holds an unrendered head from the losing move
}

// New creates a Snake game with the classic tail rule.
func New(logger *log.Logger) *Game {
	return newGame(RuleClassic, logger)
}

// NewTailChase creates a Snake game where the vacating tail cell is free.
func NewTailChase(logger *log.Logger) *Game {
	return newGame(RuleTailChase, logger)
}

func newGame(rule Rule, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{rule: rule, logger: logger}
}

func init() {
	registry.Register("snake", func(logger *log.Logger) registry.Game {
		return New(logger)
	})
	registry.Register("snake_tailchase", func(logger *log.Logger) registry.Game {
		return NewTailChase(logger)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.rule == RuleTailChase {
		return "snake_tailchase"
	}
	return "snake"
}

// Rule returns the tail rule this game was created with.
func (g *Game) Rule() Rule { return g.rule }

// Title returns the display name.
func (g *Game) Title() string {
	if g.rule == RuleTailChase {
		return "Snake (Tail Chase)"
	}
	return "Snake"
}

// SessionID identifies the current game in logs. It changes on every Reset.
func (g *Game) SessionID() string {
	return g.id
}

// Reset starts a new game: empty board, a one-segment snake at (0,0) and
// one apple. A board with no room for the apple starts already over.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	grid, err := NewGrid(cfg.Size)
	if err != nil {
		return err
	}
	g.grid = grid

	g.id = uuid.NewString()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.size = cfg.Size
	g.attempts = cfg.AppleAttempts
	g.glyphs = cfg.Glyphs.OrDefault()
	g.score = cfg.InitialScore
	g.steps = 0
	g.direction = DirRight
	g.gameOver = false
	g.cause = core.CauseNone
	g.phantom = false
	g.hasApple = false

	start := core.NewCoord(0, 0)
	g.body.Reset()
	if err := g.body.PushHead(start); err != nil {
		return err
	}
	g.grid.Set(start, CellSnake)

	if err := g.spawnApple(); err != nil {
		g.end(core.CauseBoardFull)
	}

	snap := g.Snapshot()
	g.logger.Debug("game reset", "session", snap.Session, "rule", snap.Rule, "size", snap.Size, "seed", cfg.Seed, "apple", snap.Apple)
	return nil
}

func (g *Game) spawnApple() error {
	c, err := PlaceApple(g.grid, g.rng, g.attempts)
	if err != nil {
		g.hasApple = false
		return err
	}
	g.apple = c
	g.hasApple = true
	return nil
}

// Step applies one player input. Non-movement actions and input after the
// game is over leave the state unchanged. The only error is a body overflow,
// which correct sizing makes unreachable.
func (g *Game) Step(a core.Action) (core.StepResult, error) {
	if g.gameOver || g.size == 0 {
		return core.StepResult{State: g.State()}, nil
	}
	dir, ok := DirectionFromAction(a)
	if !ok {
		return core.StepResult{State: g.State()}, nil
	}

	g.steps++
	g.direction = dir
	newHead := g.body.Head().Add(dir.Delta())

	// Append before validating; a losing move is never rolled back.
	if err := g.body.PushHead(newHead); err != nil {
		return core.StepResult{State: g.State()}, fmt.Errorf("snake: step %d: %w", g.steps, err)
	}

	if !g.grid.Contains(newHead) {
		g.phantom = true
		g.end(core.CauseWall)
		return core.StepResult{State: g.State()}, nil
	}

	target := g.grid.Get(newHead)
	if target == CellSnake && !g.tailIsFree(newHead) {
		g.phantom = true
		g.end(core.CauseSelf)
		return core.StepResult{State: g.State()}, nil
	}

	ate := target == CellApple
	if ate {
		g.score++
		g.hasApple = false
		if err := g.spawnApple(); err != nil {
			g.grid.Set(newHead, CellSnake)
			g.end(core.CauseBoardFull)
			return core.StepResult{State: g.State(), Ate: true}, nil
		}
	} else {
		g.grid.Set(g.body.Tail(), CellEmpty)
		if _, err := g.body.PopTail(); err != nil {
			return core.StepResult{State: g.State()}, fmt.Errorf("snake: step %d: %w", g.steps, err)
		}
	}

	g.grid.Set(newHead, CellSnake)
	return core.StepResult{State: g.State(), Ate: ate}, nil
}

// tailIsFree reports whether moving onto c is allowed because c is the tail
// that this move retires.
func (g *Game) tailIsFree(c core.Coord) bool {
	return g.rule == RuleTailChase && c == g.body.Tail()
}

func (g *Game) end(cause core.EndCause) {
	g.gameOver = true
	g.cause = cause
	snap := g.Snapshot()
	g.logger.Debug("game over",
		"session", snap.Session,
		"cause", snap.Cause,
		"score", snap.Score,
		"length", snap.Length,
		"steps", snap.Steps,
		"head", snap.Head,
		"dir", snap.Dir,
	)
}

// Length returns the number of segments drawn on the board.
func (g *Game) Length() int {
	n := g.body.Len()
	if g.phantom {
		n--
	}
	return n
}

// Body returns the segments from tail to head as drawn on the board.
func (g *Game) Body() []core.Coord {
	coords := g.body.Coords()
	if g.phantom {
		coords = coords[:len(coords)-1]
	}
	return coords
}

// Apple returns the apple position; ok is false when there is none.
func (g *Game) Apple() (core.Coord, bool) {
	return g.apple, g.hasApple
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Length:   g.Length(),
		GameOver: g.gameOver,
		Cause:    g.cause,
	}
}
