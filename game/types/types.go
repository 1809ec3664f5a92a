package types

// Point is a position in arena units. Cells are addressed by their top-left
// corner, so every occupied point is aligned to the arena's cell size.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p with both coordinates multiplied by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Rect is an axis-aligned rectangle in arena units
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r (right and bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Arena is the rectangular play area. It is fixed for the lifetime of a game.
type Arena struct {
	Origin   Point
	Cols     int
	Rows     int
	CellSize int
}

// Size returns the arena extent in units.
func (a Arena) Size() (width, height int) {
	return a.Cols * a.CellSize, a.Rows * a.CellSize
}

// Bounds returns the arena rectangle.
func (a Arena) Bounds() Rect {
	w, h := a.Size()
	return Rect{X: a.Origin.X, Y: a.Origin.Y, W: w, H: h}
}

// Contains checks p against the arena edges: origin inclusive, origin+extent exclusive.
func (a Arena) Contains(p Point) bool {
	return a.Bounds().Contains(p)
}

// Aligned reports whether p sits on a cell corner.
func (a Arena) Aligned(p Point) bool {
	if a.CellSize <= 0 {
		return false
	}
	return (p.X-a.Origin.X)%a.CellSize == 0 && (p.Y-a.Origin.Y)%a.CellSize == 0
}

// Cell returns the position of the cell at the given column and row.
func (a Arena) Cell(col, row int) Point {
	return Point{
		X: a.Origin.X + col*a.CellSize,
		Y: a.Origin.Y + row*a.CellSize,
	}
}

// CellCount is the number of cells in the arena.
func (a Arena) CellCount() int {
	return a.Cols * a.Rows
}

// Cells lists every cell of the arena in row-major order.
func (a Arena) Cells() []Point {
	cells := make([]Point, 0, a.CellCount())
	for row := 0; row < a.Rows; row++ {
		for col := 0; col < a.Cols; col++ {
			cells = append(cells, a.Cell(col, row))
		}
	}
	return cells
}

// SegmentRect is the full-cell rectangle a snake segment occupies.
func (a Arena) SegmentRect(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, W: a.CellSize, H: a.CellSize}
}

// AppleRect is the half-size rectangle centered in the apple's cell.
func (a Arena) AppleRect(p Point) Rect {
	size := a.CellSize / 2
	offset := (a.CellSize - size) / 2
	return Rect{X: p.X + offset, Y: p.Y + offset, W: size, H: size}
}

// Game constants
const (
	DefaultCellSize        = 50
	DefaultCols            = 20
	DefaultRows            = 20
	DefaultMargin          = 12
	DefaultTicksPerAdvance = 15
	MaxSpawnAttempts       = 64 // Rejection draws before sampling the free-cell set
)
