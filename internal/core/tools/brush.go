package tools

import (
	"github.com/bethropolis/daub/internal/grid"
	"github.com/bethropolis/daub/internal/types"
)

// Brush writes a single cell.
type Brush[T comparable] struct {
	callbacks[T]
	name string
}

// NewBrush creates a brush. The eraser is a brush too, see NewEraser.
func NewBrush[T comparable](sink GraphicSink[T], finished EffectFinished) *Brush[T] {
	return &Brush[T]{callbacks: callbacks[T]{sink: sink, finished: finished}, name: "Brush Tool"}
}

// NewEraser creates a brush that reports itself as an eraser. The toolbox
// substitutes the empty value when it is used.
func NewEraser[T comparable](sink GraphicSink[T], finished EffectFinished) *Brush[T] {
	b := NewBrush(sink, finished)
	b.name = "Eraser Tool"
	return b
}

func (b *Brush[T]) ApplyEffect(g *grid.Grid[T], pos types.Position, value T, layer int) error {
	if err := g.Set(pos, value); err != nil {
		return err
	}
	b.drawn(layer, pos, value)
	b.done(layer)
	return nil
}

func (b *Brush[T]) String() string { return b.name }
