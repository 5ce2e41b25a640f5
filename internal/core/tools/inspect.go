package tools

import (
	"github.com/bethropolis/daub/internal/grid"
	"github.com/bethropolis/daub/internal/types"
)

// Picker reports the value under the cursor so the caller can select it
// in the palette. It never writes to the grid.
type Picker[T comparable] struct {
	OnPick func(value T)
}

func (p *Picker[T]) ApplyEffect(g *grid.Grid[T], pos types.Position, _ T, _ int) error {
	v, err := g.At(pos)
	if err != nil {
		return err
	}
	if p.OnPick != nil {
		p.OnPick(v)
	}
	return nil
}

func (p *Picker[T]) String() string { return "Picker Tool" }

// Selector reports the value of the selected cell. It never writes to the grid.
type Selector[T comparable] struct {
	OnSelect func(pos types.Position, value T)
}

func (s *Selector[T]) ApplyEffect(g *grid.Grid[T], pos types.Position, _ T, _ int) error {
	v, err := g.At(pos)
	if err != nil {
		return err
	}
	if s.OnSelect != nil {
		s.OnSelect(pos, v)
	}
	return nil
}

func (s *Selector[T]) String() string { return "Selection Tool" }
