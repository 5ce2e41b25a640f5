// internal/types/position.go
package types

import "fmt"

// Position addresses a cell on a canvas grid.
// X is the 0-based column, Y the 0-based row (row 0 is the top row).
type Position struct {
	X int
	Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) Left() Position  { return Position{X: p.X - 1, Y: p.Y} }
func (p Position) Right() Position { return Position{X: p.X + 1, Y: p.Y} }
func (p Position) Up() Position    { return Position{X: p.X, Y: p.Y - 1} }
func (p Position) Down() Position  { return Position{X: p.X, Y: p.Y + 1} }

// Add offsets the position by dx, dy.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
