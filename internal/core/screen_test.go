package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(12, 6)

	if s.Width() != 12 {
		t.Errorf("Width() = %d, expected 12", s.Width())
	}
	if s.Height() != 6 {
		t.Errorf("Height() = %d, expected 6", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, '#', ColorGreen)
	if c := s.GetCell(5, 5); c.Rune != '#' || c.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected green '#'", c)
	}

	s.Set(1, 1, '*')
	if c := s.GetCell(1, 1); c.Rune != '*' || c.Color != ColorDefault {
		t.Errorf("Set should store an uncolored rune, got %+v", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

// writeRow sets consecutive cells of row y starting at column x.
func writeRow(s *Screen, x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetCell(x+i, y, r, c)
	}
}

func TestScreenSetCellClipped(t *testing.T) {
	s := NewScreen(20, 5)
	writeRow(s, 18, 0, "Hello", ColorRed)

	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("cells inside the right boundary should be written")
	}
	if c := s.GetCell(19, 0); c.Color != ColorRed {
		t.Errorf("expected red at (19, 0), got %+v", c)
	}
	if c := s.GetCell(20, 0); c != (Cell{Rune: ' '}) {
		t.Errorf("out of bounds GetCell should be blank, got %+v", c)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	writeRow(s, 0, 0, "-*-", ColorDefault)
	writeRow(s, 0, 1, "##-", ColorGreen)

	if got := s.String(); got != "-*-\n##-" {
		t.Errorf("String() = %q, expected %q", got, "-*-\n##-")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	writeRow(s, 0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); strings.TrimSpace(row) != "" {
		t.Errorf("Resize should discard content, row 0 = %q", row)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	writeRow(s, 0, 2, "Test", ColorDefault)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
