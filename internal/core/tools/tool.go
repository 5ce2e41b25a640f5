// Package tools implements the canvas tools and the history actions that
// record their effects.
package tools

import (
	"errors"

	"github.com/bethropolis/daub/internal/grid"
	"github.com/bethropolis/daub/internal/types"
)

// ErrUnknownTool is returned for a tool kind with no registered tool or factory.
var ErrUnknownTool = errors.New("unknown tool")

// ErrNilGrid is returned when a tool is applied without a grid.
var ErrNilGrid = errors.New("no grid to apply to")

// Kind identifies a tool in the toolbox.
type Kind int

const (
	KindNone Kind = iota
	KindBrush
	KindEraser
	KindFill
	KindPicker
	KindSelect
)

func (k Kind) String() string {
	switch k {
	case KindBrush:
		return "Brush"
	case KindEraser:
		return "Eraser"
	case KindFill:
		return "Fill"
	case KindPicker:
		return "Picker"
	case KindSelect:
		return "Select"
	default:
		return "None"
	}
}

// GraphicSink is told about every cell a tool writes.
type GraphicSink[T any] func(layer int, pos types.Position, value T)

// EffectFinished is called once after a tool finished writing to a layer.
type EffectFinished func(layer int)

// Tool applies an effect to a grid at a position.
type Tool[T comparable] interface {
	ApplyEffect(g *grid.Grid[T], pos types.Position, value T, layer int) error
	String() string
}

// callbacks holds the collaborator hooks shared by all tools. Both are optional.
type callbacks[T any] struct {
	sink     GraphicSink[T]
	finished EffectFinished
}

func (c callbacks[T]) drawn(layer int, pos types.Position, value T) {
	if c.sink != nil {
		c.sink(layer, pos, value)
	}
}

func (c callbacks[T]) done(layer int) {
	if c.finished != nil {
		c.finished(layer)
	}
}
