package snake

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestBodyPushPopOrder(t *testing.T) {
	var b Body

	for i := range 3 {
		if err := b.PushHead(core.NewCoord(0, i)); err != nil {
			t.Fatalf("PushHead() failed: %v", err)
		}
	}
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", b.Len())
	}
	if b.Head() != core.NewCoord(0, 2) || b.Tail() != core.NewCoord(0, 0) {
		t.Errorf("Head()=%v Tail()=%v, expected (0,2) and (0,0)", b.Head(), b.Tail())
	}

	c, err := b.PopTail()
	if err != nil {
		t.Fatalf("PopTail() failed: %v", err)
	}
	if c != core.NewCoord(0, 0) {
		t.Errorf("PopTail() = %v, expected (0,0)", c)
	}
	if got := b.Coords(); len(got) != 2 || got[0] != core.NewCoord(0, 1) || got[1] != core.NewCoord(0, 2) {
		t.Errorf("Coords() = %v, expected [(0,1) (0,2)]", got)
	}
}

func TestBodyWrapAround(t *testing.T) {
	var b Body
	if err := b.PushHead(core.NewCoord(0, 0)); err != nil {
		t.Fatalf("PushHead() failed: %v", err)
	}

	// Walk the ring several times over while keeping length 1
	for i := 1; i <= 3*BodyCapacity; i++ {
		if err := b.PushHead(core.NewCoord(i, 0)); err != nil {
			t.Fatalf("PushHead() #%d failed: %v", i, err)
		}
		if _, err := b.PopTail(); err != nil {
			t.Fatalf("PopTail() #%d failed: %v", i, err)
		}
		if b.Len() != 1 {
			t.Fatalf("Len() = %d after %d moves, expected 1", b.Len(), i)
		}
	}
	if b.Head() != core.NewCoord(3*BodyCapacity, 0) || b.Head() != b.Tail() {
		t.Errorf("Head()=%v Tail()=%v after wrap", b.Head(), b.Tail())
	}
}

func TestBodyEmpty(t *testing.T) {
	var b Body
	if b.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", b.Len())
	}
	if _, err := b.PopTail(); !errors.Is(err, ErrBodyEmpty) {
		t.Errorf("PopTail() error = %v, expected ErrBodyEmpty", err)
	}
}

func TestBodyFull(t *testing.T) {
	var b Body
	for i := range b.Cap() {
		if err := b.PushHead(core.NewCoord(i, i)); err != nil {
			t.Fatalf("PushHead() #%d failed: %v", i, err)
		}
	}
	if b.Len() != b.Cap() {
		t.Fatalf("Len() = %d, expected %d", b.Len(), b.Cap())
	}
	err := b.PushHead(core.NewCoord(-1, -1))
	if !errors.Is(err, ErrBodyFull) {
		t.Errorf("PushHead() on full body error = %v, expected ErrBodyFull", err)
	}
	if err != nil && !strings.Contains(err.Error(), "4095 segments") {
		t.Errorf("PushHead() error = %q, expected capacity in message", err)
	}
	if b.Len() != b.Cap() {
		t.Errorf("failed push changed Len() to %d", b.Len())
	}
}

func TestBodyCapacityFitsLargestBoard(t *testing.T) {
	var b Body
	if b.Cap() < MaxSize*MaxSize+1 {
		t.Errorf("Cap() = %d, must hold %d segments", b.Cap(), MaxSize*MaxSize+1)
	}
}

func TestBodyReset(t *testing.T) {
	var b Body
	_ = b.PushHead(core.NewCoord(1, 1))
	_ = b.PushHead(core.NewCoord(1, 2))
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() = %d after Reset, expected 0", b.Len())
	}
}
