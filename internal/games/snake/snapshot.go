package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning    GameStateType = "running"
	StateTerminated GameStateType = "terminated"
)

// Snapshot captures the observable game state for logging, status lines and
// determinism checks. It is comparable.
type Snapshot struct {
	Session  string
	Rule     Rule
	Steps    uint64
	Size     int
	Score    int
	Length   int
	Free     int // Empty cells left on the board
	Head     core.Coord
	Apple    core.Coord
	HasApple bool
	Dir      Direction
	State    GameStateType
	Cause    core.EndCause
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	if g.gameOver {
		state = StateTerminated
	}

	var head core.Coord
	if body := g.Body(); len(body) > 0 {
		head = body[len(body)-1]
	}

	free := 0
	if g.grid != nil {
		free = g.grid.Count(CellEmpty)
	}

	apple, hasApple := g.Apple()
	return Snapshot{
		Session:  g.id,
		Rule:     g.rule,
		Steps:    g.steps,
		Size:     g.size,
		Score:    g.score,
		Length:   g.Length(),
		Free:     free,
		Head:     head,
		Apple:    apple,
		HasApple: hasApple,
		Dir:      g.direction,
		State:    state,
		Cause:    g.cause,
	}
}
