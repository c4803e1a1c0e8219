package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// BodyCapacity is the number of slots in the body ring. One slot always stays
// free to tell a full ring from an empty one, and the longest body is a full
// board plus the optimistic head appended by a losing move.
const BodyCapacity = 4096

// Compile-time check that the ring fits the largest board plus one head.
var _ [BodyCapacity - 1 - (MaxSize*MaxSize + 1)]struct{}

var (
	// ErrBodyFull is returned when a push would overflow the ring.
	ErrBodyFull = errors.New("snake: body capacity exceeded")
	// ErrBodyEmpty is returned when popping an empty body.
	ErrBodyEmpty = errors.New("snake: body is empty")
)

// Body is the snake's segment list, stored tail (oldest) to head (newest)
// in a fixed-size ring buffer.
type Body struct {
	ring [BodyCapacity]core.Coord
	head int // Next free slot
	tail int // Oldest segment
}

// Reset empties the body.
func (b *Body) Reset() {
	b.head = 0
	b.tail = 0
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return (b.head - b.tail + BodyCapacity) % BodyCapacity
}

// Cap returns the maximum number of segments.
func (b *Body) Cap() int {
	return BodyCapacity - 1
}

// PushHead appends a new head segment.
func (b *Body) PushHead(c core.Coord) error {
	next := (b.head + 1) % BodyCapacity
	if next == b.tail {
		return fmt.Errorf("%w: %d segments", ErrBodyFull, b.Cap())
	}
	b.ring[b.head] = c
	b.head = next
	return nil
}

// PopTail removes and returns the oldest segment.
func (b *Body) PopTail() (core.Coord, error) {
	if b.head == b.tail {
		return core.Coord{}, ErrBodyEmpty
	}
	c := b.ring[b.tail]
	b.tail = (b.tail + 1) % BodyCapacity
	return c, nil
}

// Head returns the newest segment. The body must not be empty.
func (b *Body) Head() core.Coord {
	return b.ring[(b.head-1+BodyCapacity)%BodyCapacity]
}

// Tail returns the oldest segment. The body must not be empty.
func (b *Body) Tail() core.Coord {
	return b.ring[b.tail]
}

// Coords returns a copy of the segments from tail to head.
func (b *Body) Coords() []core.Coord {
	out := make([]core.Coord, 0, b.Len())
	for i := b.tail; i != b.head; i = (i + 1) % BodyCapacity {
		out = append(out, b.ring[i])
	}
	return out
}
