package entity

import (
	"snake-game/game/types"
)

// Snake is the ordered body of the snake, head first and tail last.
// Values are never mutated in place once built; advancing produces a new Snake.
type Snake struct {
	Body []types.Point
}

// NewSnake builds a snake of the given length with its head at start and the
// rest of the body trailing behind, opposite to heading.
func NewSnake(start types.Point, heading types.Heading, length, cellSize int) Snake {
	if length < 1 {
		length = 1
	}
	back := heading.Opposite().Vector().Scale(cellSize)
	body := make([]types.Point, length)
	body[0] = start
	for i := 1; i < length; i++ {
		body[i] = body[i-1].Add(back)
	}
	return Snake{Body: body}
}

// FromBody copies body into a new Snake.
func FromBody(body ...types.Point) Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return Snake{Body: b}
}

func (s Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, safe to hand to renderers.
func (s Snake) Cells() []types.Point {
	cells := make([]types.Point, len(s.Body))
	copy(cells, s.Body)
	return cells
}

// Occupied returns the body as a set, as consumed by the apple spawner.
func (s Snake) Occupied() map[types.Point]struct{} {
	set := make(map[types.Point]struct{}, len(s.Body))
	for _, part := range s.Body {
		set[part] = struct{}{}
	}
	return set
}
