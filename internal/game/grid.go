package game

import "fmt"

// Point is a cell coordinate on the board.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p shifted by one cell in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether p lies on the board.
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < Columns && p.Y >= 0 && p.Y < Rows
}
