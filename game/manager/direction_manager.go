package manager

import (
	"snake-game/game/types"
)

// ResolveHeading reduces the headings queued since the last tick to the one
// that takes effect this tick.
//
// The most recent entry wins unless it is the exact reverse of the heading
// in effect when the window opened, in which case that heading is kept.
// Only the window-start heading is compared, so intermediate entries are not
// checked against each other.
func ResolveHeading(queue []types.Heading, current types.Heading) (types.Heading, error) {
	if len(queue) == 0 {
		if current == types.None {
			return types.None, types.ErrEmptyState
		}
		return current, nil
	}

	start := current
	if start == types.None {
		start = queue[0]
	}

	candidate := queue[len(queue)-1]
	if candidate == start.Opposite() {
		return start, nil
	}
	return candidate, nil
}

// DirectionManager buffers heading inputs between ticks.
type DirectionManager struct {
	queue   []types.Heading
	current types.Heading
}

// NewDirectionManager seeds the buffer with the initial heading.
func NewDirectionManager(initial types.Heading) *DirectionManager {
	dm := &DirectionManager{}
	dm.Reset(initial)
	return dm
}

// Push records a heading input. None is dropped.
func (dm *DirectionManager) Push(h types.Heading) {
	if !h.Valid() {
		return
	}
	dm.queue = append(dm.queue, h)
}

// Resolve returns the effective heading for this tick without consuming the queue.
func (dm *DirectionManager) Resolve() (types.Heading, error) {
	return ResolveHeading(dm.queue, dm.current)
}

// Reset clears the queue and reseeds it with h, opening a new window.
func (dm *DirectionManager) Reset(h types.Heading) {
	dm.current = h
	dm.queue = dm.queue[:0]
	if h.Valid() {
		dm.queue = append(dm.queue, h)
	}
}

// Current is the heading that opened the current window.
func (dm *DirectionManager) Current() types.Heading {
	return dm.current
}

// Pending returns a copy of the queued headings, window start included.
func (dm *DirectionManager) Pending() []types.Heading {
	out := make([]types.Heading, len(dm.queue))
	copy(out, dm.queue)
	return out
}
