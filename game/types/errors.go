package types

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds means the head moved beyond the arena.
	ErrOutOfBounds = errors.New("snake left the arena")
	// ErrSelfCollision means the head moved onto one of its own segments.
	ErrSelfCollision = errors.New("snake ran into itself")
	// ErrNoFreeCell means the apple spawner found no unoccupied cell.
	ErrNoFreeCell = errors.New("no free cell for apple")
	// ErrEmptyState means a heading was requested with nothing buffered and nothing current.
	ErrEmptyState = errors.New("no heading available")

	ErrInvalidHeading = errors.New("invalid heading")
	ErrInvalidConfig  = errors.New("invalid config")
)

// IsTerminal reports whether err ends the running game.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrSelfCollision) ||
		errors.Is(err, ErrNoFreeCell) ||
		errors.Is(err, ErrEmptyState)
}
