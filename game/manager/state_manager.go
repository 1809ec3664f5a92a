package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"
)

// Outcome is the result of a successful advance.
type Outcome struct {
	Snake entity.Snake
	Grew  bool
}

// StateManager moves the snake one cell per tick.
type StateManager struct {
	arena        types.Arena
	collisionMgr *CollisionManager
}

func NewStateManager(arena types.Arena, collisionMgr *CollisionManager) *StateManager {
	return &StateManager{
		arena:        arena,
		collisionMgr: collisionMgr,
	}
}

// AppleEaten decides growth for the coming tick. It compares the head as it
// stands before the move, so the snake grows on the tick after it enters the
// apple's cell.
func AppleEaten(s entity.Snake, apple types.Point) bool {
	return s.GetHead() == apple
}

// NextHead is the head position one cell along heading.
func (sm *StateManager) NextHead(s entity.Snake, heading types.Heading) types.Point {
	return s.GetHead().Add(heading.Vector().Scale(sm.arena.CellSize))
}

// Advance computes the snake for the next tick. The input snake is left untouched.
//
// It fails with types.ErrOutOfBounds when the new head leaves the arena and
// with types.ErrSelfCollision when the new head lands on the rebuilt body.
// When the apple is eaten the tail is kept, growing the snake by one segment.
func (sm *StateManager) Advance(s entity.Snake, heading types.Heading, apple types.Point) (Outcome, error) {
	if !heading.Valid() {
		return Outcome{}, types.ErrInvalidHeading
	}
	if s.Len() == 0 {
		return Outcome{}, types.ErrEmptyState
	}

	newHead := sm.NextHead(s, heading)
	if c := sm.collisionMgr.CheckWall(newHead); c != NoCollision {
		return Outcome{}, c.Err()
	}

	grew := AppleEaten(s, apple)

	keep := s.Len() - 1
	if grew {
		keep = s.Len()
	}
	body := make([]types.Point, 0, keep+1)
	body = append(body, newHead)
	body = append(body, s.Body[:keep]...)
	next := entity.Snake{Body: body}

	if c := sm.collisionMgr.CheckBody(next); c != NoCollision {
		return Outcome{}, c.Err()
	}

	return Outcome{Snake: next, Grew: grew}, nil
}
