package types

import "time"

// Game constants
const (
	GridSize      = 20                     // Cells per side of the square play field
	PointsPerFood = 10                     // Score gained per food eaten
	TickInterval  = 150 * time.Millisecond // Simulation step period
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid returns the standard square play field.
func DefaultGrid() Grid {
	return Grid{Width: GridSize, Height: GridSize}
}

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the total number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

type Point struct {
	X, Y int
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// The four movement directions. Y grows downward, screen style.
var (
	DirUp    = Point{X: 0, Y: -1}
	DirDown  = Point{X: 0, Y: 1}
	DirLeft  = Point{X: -1, Y: 0}
	DirRight = Point{X: 1, Y: 0}
)

// SameAxis reports whether two unit directions lie on the same axis.
// A horizontal vector has a non-zero X component, a vertical one does not.
func SameAxis(a, b Point) bool {
	return (a.X != 0) == (b.X != 0)
}

// Initial game placement.
var (
	StartPosition = Point{X: 10, Y: 10}
	StartFood     = Point{X: 5, Y: 5}
	StartDir      = DirUp
)
