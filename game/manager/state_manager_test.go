package manager

import (
	"testing"

	"snake-game/game/entity"
	"snake-game/game/types"

	"github.com/pkg/errors"
)

// origin-anchored 1000x1000 arena of 50 unit cells
func squareArena() types.Arena {
	return types.Arena{Origin: types.Point{X: 0, Y: 0}, Cols: 20, Rows: 20, CellSize: 50}
}

func newStateManager(a types.Arena) *StateManager {
	return NewStateManager(a, NewCollisionManager(a))
}

// nowhere is an apple position no test snake reaches
var nowhere = types.Point{X: -1000, Y: -1000}

func pts(xy ...int) []types.Point {
	out := make([]types.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, types.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func TestAdvanceStraightRun(t *testing.T) {
	sm := newStateManager(squareArena())
	s := entity.FromBody(pts(150, 150)...)
	apple := types.Point{X: 550, Y: 550}

	for i := 0; i < 8; i++ {
		out, err := sm.Advance(s, types.Right, apple)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if out.Grew || out.Snake.Len() != 1 {
			t.Fatalf("step %d: unexpected growth to %d", i, out.Snake.Len())
		}
		s = out.Snake
	}

	if s.GetHead() != (types.Point{X: 550, Y: 150}) {
		t.Errorf("head = %v, want (550,150)", s.GetHead())
	}
}

func TestAdvanceKeepsLength(t *testing.T) {
	sm := newStateManager(squareArena())
	s := entity.FromBody(pts(200, 200, 150, 200, 100, 200)...)

	out, err := sm.Advance(s, types.Up, nowhere)
	if err != nil {
		t.Fatal(err)
	}

	want := pts(200, 150, 200, 200, 150, 200)
	if out.Snake.Len() != 3 {
		t.Fatalf("length = %d, want 3", out.Snake.Len())
	}
	seen := make(map[types.Point]bool)
	for i, p := range out.Snake.Body {
		if p != want[i] {
			t.Errorf("segment %d = %v, want %v", i, p, want[i])
		}
		if seen[p] {
			t.Errorf("segment %v duplicated", p)
		}
		seen[p] = true
	}
}

func TestAdvanceReversalIntoNeck(t *testing.T) {
	sm := newStateManager(squareArena())
	s := entity.FromBody(pts(200, 200, 150, 200, 100, 200)...)

	_, err := sm.Advance(s, types.Left, nowhere)
	if !errors.Is(err, types.ErrSelfCollision) {
		t.Errorf("got %v, want ErrSelfCollision", err)
	}
}

func TestAdvanceDoesNotAlias(t *testing.T) {
	sm := newStateManager(squareArena())
	s := entity.FromBody(pts(200, 200, 150, 200)...)
	before := s.Cells()

	out, err := sm.Advance(s, types.Down, nowhere)
	if err != nil {
		t.Fatal(err)
	}
	out.Snake.Body[1] = types.Point{X: 999, Y: 999}

	for i, p := range before {
		if s.Body[i] != p {
			t.Errorf("input snake changed at %d: %v", i, s.Body[i])
		}
	}
}

func TestAdvanceBoundaries(t *testing.T) {
	a := types.Arena{Origin: types.Point{X: 12, Y: 12}, Cols: 20, Rows: 20, CellSize: 50}
	sm := newStateManager(a)
	first, last := 12, 12+19*50

	tests := []struct {
		name    string
		head    types.Point
		heading types.Heading
		wantErr bool
	}{
		{"left edge", types.Point{X: first, Y: 500 - 38}, types.Left, true},
		{"top edge", types.Point{X: 512, Y: first}, types.Up, true},
		{"right edge", types.Point{X: last, Y: 512}, types.Right, true},
		{"bottom edge", types.Point{X: 512, Y: last}, types.Down, true},
		{"into last column", types.Point{X: last - 50, Y: 512}, types.Right, false},
		{"into last row", types.Point{X: 512, Y: last - 50}, types.Down, false},
		{"into first column", types.Point{X: first + 50, Y: 512}, types.Left, false},
		{"into first row", types.Point{X: 512, Y: first + 50}, types.Up, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sm.Advance(entity.FromBody(tt.head), tt.heading, nowhere)
			if tt.wantErr {
				if !errors.Is(err, types.ErrOutOfBounds) {
					t.Errorf("got %v, want ErrOutOfBounds", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAdvanceGrowth(t *testing.T) {
	sm := newStateManager(squareArena())
	s := entity.FromBody(pts(300, 300, 250, 300, 200, 300)...)

	// The apple under the current head is eaten by this move.
	out, err := sm.Advance(s, types.Right, s.GetHead())
	if err != nil {
		t.Fatal(err)
	}
	if !out.Grew {
		t.Error("expected growth")
	}
	want := pts(350, 300, 300, 300, 250, 300, 200, 300)
	if out.Snake.Len() != len(want) {
		t.Fatalf("length = %d, want %d", out.Snake.Len(), len(want))
	}
	for i, p := range want {
		if out.Snake.Body[i] != p {
			t.Errorf("segment %d = %v, want %v", i, out.Snake.Body[i], p)
		}
	}

	// Entering the apple's cell does not grow yet.
	out, err = sm.Advance(s, types.Right, types.Point{X: 350, Y: 300})
	if err != nil {
		t.Fatal(err)
	}
	if out.Grew || out.Snake.Len() != s.Len() {
		t.Errorf("grew on entering the apple cell: length %d", out.Snake.Len())
	}
}

func TestAdvanceSelfCollision(t *testing.T) {
	sm := newStateManager(squareArena())

	// A hook whose head turns down into its fourth segment.
	hook := entity.FromBody(pts(100, 100, 150, 100, 150, 150, 100, 150, 50, 150)...)
	if _, err := sm.Advance(hook, types.Down, nowhere); !errors.Is(err, types.ErrSelfCollision) {
		t.Errorf("got %v, want ErrSelfCollision", err)
	}

	// A closed square chases its own tail, which moves out of the way.
	square := entity.FromBody(pts(100, 100, 150, 100, 150, 150, 100, 150)...)
	out, err := sm.Advance(square, types.Down, nowhere)
	if err != nil {
		t.Fatalf("following the vacated tail failed: %v", err)
	}
	if out.Snake.GetHead() != (types.Point{X: 100, Y: 150}) {
		t.Errorf("head = %v", out.Snake.GetHead())
	}

	// When growing the tail stays put, so the same move collides.
	if _, err := sm.Advance(square, types.Down, square.GetHead()); !errors.Is(err, types.ErrSelfCollision) {
		t.Errorf("got %v, want ErrSelfCollision while growing", err)
	}
}

func TestAdvanceInvalidInput(t *testing.T) {
	sm := newStateManager(squareArena())

	if _, err := sm.Advance(entity.FromBody(pts(100, 100)...), types.None, nowhere); !errors.Is(err, types.ErrInvalidHeading) {
		t.Errorf("got %v, want ErrInvalidHeading", err)
	}
	if _, err := sm.Advance(entity.Snake{}, types.Up, nowhere); !errors.Is(err, types.ErrEmptyState) {
		t.Errorf("got %v, want ErrEmptyState", err)
	}
}

func TestCollisionTypeErr(t *testing.T) {
	if NoCollision.Err() != nil {
		t.Error("NoCollision must map to nil")
	}
	if WallCollision.Err() != types.ErrOutOfBounds || SelfCollision.Err() != types.ErrSelfCollision {
		t.Error("collision types map to the wrong errors")
	}
}
