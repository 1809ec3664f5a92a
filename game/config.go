package game

import (
	"snake-game/game/types"

	"github.com/pkg/errors"
)

// Config holds the startup constants of a game.
type Config struct {
	Arena           types.Arena
	TicksPerAdvance int           // Rendered frames per snake move
	Start           types.Point   // Initial head position
	InitialLength   int           // Segments at start, trailing behind the head
	InitialHeading  types.Heading // Heading in effect before any input
	Seed            uint64        // Apple placement seed, 0 picks one from the clock
}

// DefaultConfig returns a Config with the values of the classic layout: a
// 1000x1000 arena of 50 unit cells inset by a 12 unit margin.
func DefaultConfig() Config {
	return Config{
		Arena: types.Arena{
			Origin:   types.Point{X: types.DefaultMargin, Y: types.DefaultMargin},
			Cols:     types.DefaultCols,
			Rows:     types.DefaultRows,
			CellSize: types.DefaultCellSize,
		},
		TicksPerAdvance: types.DefaultTicksPerAdvance,
		Start: types.Point{
			X: types.DefaultMargin + 2*types.DefaultCellSize,
			Y: types.DefaultMargin + 2*types.DefaultCellSize,
		},
		InitialLength:  1,
		InitialHeading: types.Right,
	}
}

// Validate checks that the config describes a playable starting position.
func (c Config) Validate() error {
	a := c.Arena
	if a.Cols <= 0 || a.Rows <= 0 || a.CellSize <= 0 {
		return errors.Wrapf(types.ErrInvalidConfig, "arena %dx%d cells of %d", a.Cols, a.Rows, a.CellSize)
	}
	if c.TicksPerAdvance <= 0 {
		return errors.Wrapf(types.ErrInvalidConfig, "ticks per advance %d", c.TicksPerAdvance)
	}
	if !c.InitialHeading.Valid() {
		return errors.Wrapf(types.ErrInvalidConfig, "initial heading %v", c.InitialHeading)
	}
	if c.InitialLength < 1 {
		return errors.Wrapf(types.ErrInvalidConfig, "initial length %d", c.InitialLength)
	}
	if c.InitialLength >= a.CellCount() {
		return errors.Wrapf(types.ErrInvalidConfig, "initial length %d leaves no room for an apple", c.InitialLength)
	}
	if !a.Contains(c.Start) || !a.Aligned(c.Start) {
		return errors.Wrapf(types.ErrInvalidConfig, "start %v is not an arena cell", c.Start)
	}
	tail := c.Start.Add(c.InitialHeading.Opposite().Vector().Scale((c.InitialLength - 1) * a.CellSize))
	if !a.Contains(tail) {
		return errors.Wrapf(types.ErrInvalidConfig, "initial body of %d runs out of the arena", c.InitialLength)
	}
	return nil
}
