package types

// Heading is one of the four cardinal movement directions.
// None is the zero value and means no heading is known yet.
type Heading int

const (
	None Heading = iota
	Up
	Right
	Down
	Left
)

// Headings lists the legal movement headings.
var Headings = [...]Heading{Up, Right, Down, Left}

// Valid reports whether h is one of the four movement headings.
func (h Heading) Valid() bool {
	return h >= Up && h <= Left
}

// Vector converts the heading into a unit displacement.
// Y grows downward, so Up decrements Y.
func (h Heading) Vector() Point {
	switch h {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading. None has no opposite.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// TurnLeft rotates the heading 90° counter-clockwise.
func (h Heading) TurnLeft() Heading {
	switch h {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return h
	}
}

// TurnRight rotates the heading 90° clockwise.
func (h Heading) TurnRight() Heading {
	switch h {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return h
	}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// ParseHeading maps a heading name back to its value.
func ParseHeading(s string) (Heading, bool) {
	for _, h := range Headings {
		if h.String() == s {
			return h, true
		}
	}
	return None, false
}
