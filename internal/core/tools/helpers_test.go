package tools

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bethropolis/daub/internal/grid"
	"github.com/bethropolis/daub/internal/types"
)

// recorder collects collaborator callbacks.
type recorder struct {
	drawn    []types.Position
	finished []int
}

func (r *recorder) sink(_ int, pos types.Position, _ int) { r.drawn = append(r.drawn, pos) }
func (r *recorder) done(layer int)                         { r.finished = append(r.finished, layer) }

func newGrid(t *testing.T, w, h, fill int) *grid.Grid[int] {
	t.Helper()
	g, err := grid.New(w, h, grid.Filled(fill))
	require.NoError(t, err)
	return g
}

// gridFromRows builds a grid from rows of digits, row 0 first.
func gridFromRows(t *testing.T, rows ...string) *grid.Grid[int] {
	t.Helper()
	g := newGrid(t, len(rows[0]), len(rows), 0)
	for y, row := range rows {
		for x, c := range row {
			require.NoError(t, g.Set(types.Pos(x, y), int(c-'0')))
		}
	}
	return g
}

// regionOf is a plain breadth-first reference for the 4-connected region at seed.
func regionOf(g *grid.Grid[int], seed types.Position) map[types.Position]bool {
	target := g.MustAt(seed)
	seen := map[types.Position]bool{seed: true}
	queue := []types.Position{seed}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range []types.Position{p.Left(), p.Right(), p.Up(), p.Down()} {
			if g.InBounds(n) && !seen[n] && g.MustAt(n) == target {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}
