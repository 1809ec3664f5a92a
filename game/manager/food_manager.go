package manager

import (
	"snake-game/game/types"
)

// Rand is the slice of a random source the spawner needs.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// SpawnApple picks a uniformly random arena cell not present in occupied.
func SpawnApple(rng Rand, arena types.Arena, occupied map[types.Point]struct{}) (types.Point, error) {
	return NewFoodManager(arena, rng, NewCollisionManager(arena)).Spawn(occupied)
}

type FoodManager struct {
	arena        types.Arena
	rng          Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(arena types.Arena, rng Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		arena:        arena,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Spawn draws up to types.MaxSpawnAttempts random cells; if all of them land
// on the snake it chooses uniformly among the remaining free cells, so it
// always terminates. types.ErrNoFreeCell is returned when the arena is full.
func (fm *FoodManager) Spawn(occupied map[types.Point]struct{}) (types.Point, error) {
	if fm.arena.CellCount() == 0 {
		return types.Point{}, types.ErrNoFreeCell
	}

	for i := 0; i < types.MaxSpawnAttempts; i++ {
		food := fm.arena.Cell(fm.rng.Intn(fm.arena.Cols), fm.rng.Intn(fm.arena.Rows))
		if fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
			return food, nil
		}
	}

	free := fm.FreeCells(occupied)
	if len(free) == 0 {
		return types.Point{}, types.ErrNoFreeCell
	}
	return free[fm.rng.Intn(len(free))], nil
}

// FreeCells lists the arena cells not in occupied, row-major.
func (fm *FoodManager) FreeCells(occupied map[types.Point]struct{}) []types.Point {
	free := make([]types.Point, 0, fm.arena.CellCount())
	for _, cell := range fm.arena.Cells() {
		if fm.collisionMgr.ValidateSpawnPosition(cell, occupied) {
			free = append(free, cell)
		}
	}
	return free
}
