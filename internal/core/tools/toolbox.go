package tools

import (
	"fmt"

	"github.com/bethropolis/daub/internal/core/history"
	"github.com/bethropolis/daub/internal/event"
	"github.com/bethropolis/daub/internal/grid"
	"github.com/bethropolis/daub/internal/logger"
	"github.com/bethropolis/daub/internal/types"
)

// Toolbox owns one tool per kind and submits their effects to history.
type Toolbox[T comparable] struct {
	tools    map[Kind]Tool[T]
	registry *Registry[T]
	history  *history.System
	events   *event.Manager

	emptyValue T
	current    Kind

	picker   *Picker[T]
	selector *Selector[T]
}

// NewToolbox creates a toolbox with the brush selected. events may be nil.
func NewToolbox[T comparable](hist *history.System, events *event.Manager, sink GraphicSink[T], finished EffectFinished, emptyValue T) *Toolbox[T] {
	tb := &Toolbox[T]{
		registry:   NewRegistry[T](),
		history:    hist,
		events:     events,
		emptyValue: emptyValue,
		picker:     &Picker[T]{},
		selector:   &Selector[T]{},
	}
	tb.tools = map[Kind]Tool[T]{
		KindBrush:  NewBrush(sink, finished),
		KindEraser: NewEraser(sink, finished),
		KindFill:   NewBucket(sink, finished),
		KindPicker: tb.picker,
		KindSelect: tb.selector,
	}
	if err := tb.SwitchTool(KindBrush); err != nil {
		logger.Errorf("Toolbox: %v", err)
	}
	return tb
}

// Registry exposes the action factories so new kinds can be added.
func (tb *Toolbox[T]) Registry() *Registry[T] { return tb.registry }

// AddTool installs tool under kind. kind needs a factory in the registry.
func (tb *Toolbox[T]) AddTool(kind Kind, tool Tool[T]) {
	tb.tools[kind] = tool
}

// OnPick sets the callback for the picker tool.
func (tb *Toolbox[T]) OnPick(fn func(value T)) { tb.picker.OnPick = fn }

// OnSelect sets the callback for the selection tool.
func (tb *Toolbox[T]) OnSelect(fn func(pos types.Position, value T)) { tb.selector.OnSelect = fn }

// Current returns the selected tool kind.
func (tb *Toolbox[T]) Current() Kind { return tb.current }

// SwitchTool selects kind and announces it on the event bus.
func (tb *Toolbox[T]) SwitchTool(kind Kind) error {
	if kind == tb.current {
		return nil
	}
	if _, ok := tb.tools[kind]; !ok {
		return fmt.Errorf("%w: %v", ErrUnknownTool, kind)
	}
	tb.current = kind
	logger.DebugTagf("tools", "Toolbox: Switched to %v", kind)
	tb.Refresh()
	return nil
}

// Refresh re-announces the current tool.
func (tb *Toolbox[T]) Refresh() {
	if tb.events != nil {
		tb.events.Dispatch(event.TypeToolSwitched, event.ToolSwitchedData{Tool: tb.current.String()})
	}
}

// ApplyCurrent uses the current tool at pos.
func (tb *Toolbox[T]) ApplyCurrent(g *grid.Grid[T], pos types.Position, value T, layer int) error {
	return tb.Apply(tb.current, g, pos, value, layer, false)
}

// ApplySpecific uses the tool of the given kind at pos without switching to it.
func (tb *Toolbox[T]) ApplySpecific(kind Kind, g *grid.Grid[T], pos types.Position, value T, layer int) error {
	return tb.Apply(kind, g, pos, value, layer, false)
}

// Apply uses the tool of the given kind and records the result.
// blockGrouping keeps the action out of the open history group. Detached
// requests with a nil grid go through the registry directly.
func (tb *Toolbox[T]) Apply(kind Kind, g *grid.Grid[T], pos types.Position, value T, layer int, blockGrouping bool) error {
	tool, ok := tb.tools[kind]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownTool, kind)
	}
	if g == nil {
		return fmt.Errorf("%v: %w", tool, ErrNilGrid)
	}
	if kind == KindEraser {
		value = tb.emptyValue
	}

	lastValue, err := g.At(pos)
	if err != nil {
		return fmt.Errorf("%v: %w", tool, err)
	}

	action, err := tb.registry.Create(kind, tool, Request[T]{
		Grid:      g,
		Pos:       pos,
		Value:     value,
		LastValue: lastValue,
		Layer:     layer,
	})
	if err != nil {
		return err
	}
	if action != nil {
		tb.history.AddAndExecute(action, blockGrouping)
	}
	return nil
}
