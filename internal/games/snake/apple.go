package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrGridFull is returned when no empty cell is left for an apple.
var ErrGridFull = errors.New("snake: no empty cell for apple")

// PlaceApple marks a uniformly random empty cell as an apple and returns it.
// It probes random cells up to attempts times (0 means size*size*4); if that
// misses it picks among the remaining empty cells directly.
func PlaceApple(g *Grid, rng *rand.Rand, attempts int) (core.Coord, error) {
	size := g.Size()
	if attempts <= 0 {
		attempts = size * size * 4
	}

	for range attempts {
		c := core.Coord{Row: rng.Intn(size), Col: rng.Intn(size)}
		if g.Get(c) == CellEmpty {
			g.Set(c, CellApple)
			return c, nil
		}
	}

	empties := g.Empties()
	if len(empties) == 0 {
		return core.Coord{}, ErrGridFull
	}
	c := empties[rng.Intn(len(empties))]
	g.Set(c, CellApple)
	return c, nil
}
