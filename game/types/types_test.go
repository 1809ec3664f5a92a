package types

import (
	"testing"
)

func testArena() Arena {
	return Arena{Origin: Point{X: 12, Y: 12}, Cols: 20, Rows: 20, CellSize: 50}
}

func TestArenaContainsEdges(t *testing.T) {
	a := testArena()

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", Point{12, 12}, true},
		{"last cell", Point{962, 962}, true},
		{"left of origin", Point{11, 12}, false},
		{"above origin", Point{12, 11}, false},
		{"right edge", Point{1012, 12}, false},
		{"bottom edge", Point{12, 1012}, false},
		{"one before right edge", Point{1011, 500}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestArenaCells(t *testing.T) {
	a := Arena{Origin: Point{X: 0, Y: 0}, Cols: 3, Rows: 2, CellSize: 10}

	cells := a.Cells()
	if len(cells) != a.CellCount() {
		t.Fatalf("got %d cells, want %d", len(cells), a.CellCount())
	}
	if cells[0] != (Point{0, 0}) || cells[2] != (Point{20, 0}) || cells[3] != (Point{0, 10}) {
		t.Errorf("cells not row-major: %v", cells)
	}
	for _, c := range cells {
		if !a.Contains(c) || !a.Aligned(c) {
			t.Errorf("cell %v is not an aligned arena cell", c)
		}
	}
}

func TestArenaAligned(t *testing.T) {
	a := testArena()
	if !a.Aligned(Point{112, 162}) {
		t.Error("expected (112,162) to be aligned")
	}
	if a.Aligned(Point{113, 162}) {
		t.Error("expected (113,162) to be unaligned")
	}
	if (Arena{}).Aligned(Point{}) {
		t.Error("zero arena should align nothing")
	}
}

func TestAppleRectCentered(t *testing.T) {
	a := testArena()
	r := a.AppleRect(Point{112, 112})
	if r != (Rect{X: 124, Y: 124, W: 25, H: 25}) {
		t.Errorf("AppleRect = %+v", r)
	}
	if !a.SegmentRect(Point{112, 112}).Contains(Point{r.X + r.W - 1, r.Y + r.H - 1}) {
		t.Error("apple rect leaks out of its cell")
	}
}

func TestHeadingVectors(t *testing.T) {
	for _, h := range Headings {
		v := h.Vector()
		if v == (Point{}) {
			t.Errorf("%v has a zero vector", h)
		}
		if v.Add(h.Opposite().Vector()) != (Point{}) {
			t.Errorf("%v and %v do not cancel", h, h.Opposite())
		}
		if h.TurnLeft().TurnRight() != h {
			t.Errorf("%v: left then right is not identity", h)
		}
		if h.TurnLeft().TurnLeft() != h.Opposite() {
			t.Errorf("%v: two left turns is not a reversal", h)
		}
	}

	if None.Valid() || None.Vector() != (Point{}) || None.Opposite() != None {
		t.Error("None must have no movement")
	}
	if Up.Vector() != (Point{0, -1}) {
		t.Errorf("Up = %v, want (0,-1)", Up.Vector())
	}
}

func TestParseHeading(t *testing.T) {
	for _, h := range Headings {
		got, ok := ParseHeading(h.String())
		if !ok || got != h {
			t.Errorf("ParseHeading(%q) = %v, %v", h.String(), got, ok)
		}
	}
	if _, ok := ParseHeading("none"); ok {
		t.Error("none must not parse as a heading")
	}
}

func TestIsTerminal(t *testing.T) {
	for _, err := range []error{ErrOutOfBounds, ErrSelfCollision, ErrNoFreeCell, ErrEmptyState} {
		if !IsTerminal(err) {
			t.Errorf("%v should be terminal", err)
		}
	}
	if IsTerminal(ErrInvalidConfig) || IsTerminal(nil) {
		t.Error("config errors and nil are not terminal")
	}
}
