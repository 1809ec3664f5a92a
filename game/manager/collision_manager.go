package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Err maps the collision onto the terminal error it causes.
func (c CollisionType) Err() error {
	switch c {
	case WallCollision:
		return types.ErrOutOfBounds
	case SelfCollision:
		return types.ErrSelfCollision
	default:
		return nil
	}
}

type CollisionManager struct {
	arena types.Arena
}

func NewCollisionManager(arena types.Arena) *CollisionManager {
	return &CollisionManager{
		arena: arena,
	}
}

// isWallCollision checks if a position lies outside the arena
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.arena.Contains(pos)
}

// isSelfCollision checks whether the head of body overlaps any other segment
func (cm *CollisionManager) isSelfCollision(body []types.Point) bool {
	head := body[0]
	for _, part := range body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// CheckWall classifies a candidate head position before the body is rebuilt.
func (cm *CollisionManager) CheckWall(pos types.Point) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	return NoCollision
}

// CheckBody classifies a freshly rebuilt snake.
func (cm *CollisionManager) CheckBody(s entity.Snake) CollisionType {
	if s.Len() == 0 {
		return NoCollision
	}
	if cm.isSelfCollision(s.Body) {
		return SelfCollision
	}
	return NoCollision
}

// ValidateSpawnPosition checks if a position is a free arena cell
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied map[types.Point]struct{}) bool {
	if cm.isWallCollision(pos) || !cm.arena.Aligned(pos) {
		return false
	}
	_, taken := occupied[pos]
	return !taken
}
