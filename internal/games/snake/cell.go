package snake

// Cell is a grid coordinate. Valid cells satisfy 0 <= X, Y < N.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// InGrid reports whether the cell lies on an n×n grid.
func (c Cell) InGrid(n int) bool {
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

// Direction is a unit movement vector. Y grows downwards.
type Direction struct {
	DX, DY int
}

// The four headings.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsUnit reports whether exactly one component is ±1 and the other is 0.
func (d Direction) IsUnit() bool {
	switch {
	case d.DX == 0:
		return d.DY == 1 || d.DY == -1
	case d.DY == 0:
		return d.DX == 1 || d.DX == -1
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
