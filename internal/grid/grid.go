// Package grid stores values in a fixed-size two-dimensional array.
package grid

import (
	"errors"
	"fmt"

	"github.com/bethropolis/daub/internal/types"
)

var (
	// ErrOutOfBounds is returned for positions outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrSizeMismatch is returned when two grids of different size are combined.
	ErrSizeMismatch = errors.New("grid size mismatch")
	// ErrInvalidSize is returned for non-positive dimensions.
	ErrInvalidSize = errors.New("invalid grid size")
)

// Grid is a dense width x height array of cells. Each grid carries a
// ConstructID so actions on it can be grouped.
type Grid[T comparable] struct {
	id         types.ConstructID
	width      int
	height     int
	cells      []T // row-major
	newDefault func() T
}

// New creates a grid whose cells are initialised by newDefault.
func New[T comparable](width, height int, newDefault func() T) (*Grid[T], error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if newDefault == nil {
		return nil, errors.New("grid: default value factory is required")
	}
	g := &Grid[T]{
		id:         types.NewConstructID("grid"),
		width:      width,
		height:     height,
		cells:      make([]T, width*height),
		newDefault: newDefault,
	}
	g.Clear()
	return g, nil
}

// Filled returns a factory producing v, for use with New.
func Filled[T comparable](v T) func() T {
	return func() T { return v }
}

// Clone returns a copy of g with the same contents and a new identity.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{
		id:         types.NewConstructID("grid"),
		width:      g.width,
		height:     g.height,
		cells:      cells,
		newDefault: g.newDefault,
	}
}

// InBounds reports whether pos addresses a cell of g.
func (g *Grid[T]) InBounds(pos types.Position) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

func (g *Grid[T]) index(pos types.Position) (int, error) {
	if !g.InBounds(pos) {
		return 0, fmt.Errorf("%w: %v on %v grid", ErrOutOfBounds, pos, g)
	}
	return pos.Y*g.width + pos.X, nil
}

// At returns the value stored at pos.
func (g *Grid[T]) At(pos types.Position) (T, error) {
	i, err := g.index(pos)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.cells[i], nil
}

// MustAt is At for positions the caller has already bounds-checked.
// It panics on out-of-bounds access.
func (g *Grid[T]) MustAt(pos types.Position) T {
	v, err := g.At(pos)
	if err != nil {
		panic(err)
	}
	return v
}

// Set stores value at pos.
func (g *Grid[T]) Set(pos types.Position, value T) error {
	i, err := g.index(pos)
	if err != nil {
		return err
	}
	g.cells[i] = value
	return nil
}

// MustSet is Set for positions the caller has already bounds-checked.
// It panics on out-of-bounds access.
func (g *Grid[T]) MustSet(pos types.Position, value T) {
	if err := g.Set(pos, value); err != nil {
		panic(err)
	}
}

// SetFrom copies every cell of other into g. Both must have the same size.
func (g *Grid[T]) SetFrom(other *Grid[T]) error {
	if other.width != g.width || other.height != g.height {
		return fmt.Errorf("%w: %v into %v", ErrSizeMismatch, other, g)
	}
	copy(g.cells, other.cells)
	return nil
}

// Clear resets every cell to the default value.
func (g *Grid[T]) Clear() {
	for i := range g.cells {
		g.cells[i] = g.newDefault()
	}
}

// Contains reports whether value is stored in at least one cell.
func (g *Grid[T]) Contains(value T) bool {
	for _, c := range g.cells {
		if c == value {
			return true
		}
	}
	return false
}

// Equal reports whether other has the same size and the same cells.
// Identity is not compared.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if other == nil || other.width != g.width || other.height != g.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Cells returns a copy of the grid contents indexed [y][x].
func (g *Grid[T]) Cells() [][]T {
	rows := make([][]T, g.height)
	for y := range rows {
		rows[y] = make([]T, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(pos types.Position, value T)) {
	for i, v := range g.cells {
		fn(types.Pos(i%g.width, i/g.width), v)
	}
}

func (g *Grid[T]) ID() types.ConstructID { return g.id }
func (g *Grid[T]) Width() int             { return g.width }
func (g *Grid[T]) Height() int            { return g.height }

func (g *Grid[T]) String() string {
	return fmt.Sprintf("%dx%d", g.width, g.height)
}
