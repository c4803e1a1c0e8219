package core

// MaxBoardSize is the largest supported board side length.
const MaxBoardSize = 50

// RuntimeConfig contains configuration passed to games at initialization.
// Size is fixed for the lifetime of a game.
type RuntimeConfig struct {
	Size          int   // Board side length in cells
	Seed          int64 // RNG seed for deterministic gameplay
	InitialScore  int   // Score shown before any apple is eaten
	AppleAttempts int   // Random probes before apple placement scans the board (0 = size*size*4)
	Glyphs        Glyphs
}

// Glyphs are the characters drawn for each kind of board cell.
type Glyphs struct {
	Empty rune
	Apple rune
	Snake rune
}

// DefaultGlyphs returns the classic '-', '*', '#' set.
func DefaultGlyphs() Glyphs {
	return Glyphs{Empty: '-', Apple: '*', Snake: '#'}
}

// OrDefault fills unset glyphs from DefaultGlyphs.
func (g Glyphs) OrDefault() Glyphs {
	d := DefaultGlyphs()
	if g.Empty == 0 {
		g.Empty = d.Empty
	}
	if g.Apple == 0 {
		g.Apple = d.Apple
	}
	if g.Snake == 0 {
		g.Snake = d.Snake
	}
	return g
}

// EndCause explains why a game stopped running.
type EndCause string

const (
	CauseNone      EndCause = ""
	CauseWall      EndCause = "wall"       // Head left the board
	CauseSelf      EndCause = "self"       // Head entered a body cell
	CauseBoardFull EndCause = "board_full" // No empty cell left for an apple
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int      // Current score
	Length   int      // Snake body length
	GameOver bool     // Whether the game has ended
	Cause    EndCause // Set once GameOver is true
}

// StepResult is returned by Game.Step() after each accepted input.
type StepResult struct {
	State GameState
	Ate   bool // An apple was eaten on this step
}
