package tools

import (
	"fmt"

	"github.com/bethropolis/daub/internal/core/history"
	"github.com/bethropolis/daub/internal/grid"
	"github.com/bethropolis/daub/internal/logger"
	"github.com/bethropolis/daub/internal/types"
)

// Request describes one tool use.
type Request[T comparable] struct {
	Grid      *grid.Grid[T]
	Pos       types.Position
	Value     T
	LastValue T
	Layer     int
	// Fallback receives Value or LastValue when Grid is nil.
	Fallback func(T)
}

func (r Request[T]) construct() types.ConstructID {
	if r.Grid == nil {
		return types.NoConstruct
	}
	return r.Grid.ID()
}

func (r Request[T]) validate() error {
	if r.Grid == nil {
		return nil
	}
	_, err := r.Grid.At(r.Pos)
	return err
}

// UseToolAction records a single-cell tool use. Undo writes the previous
// value back through the same tool.
type UseToolAction[T comparable] struct {
	tool Tool[T]
	req  Request[T]
}

// NewUseToolAction validates the request and wraps the action for history.
func NewUseToolAction[T comparable](tool Tool[T], req Request[T]) (*history.Command[T], error) {
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", tool, err)
	}
	return history.NewCommand[T](&UseToolAction[T]{tool: tool, req: req}, req.Fallback), nil
}

func (a *UseToolAction[T]) ExecuteSelf() { a.apply(a.req.Value) }
func (a *UseToolAction[T]) UndoSelf()    { a.apply(a.req.LastValue) }

func (a *UseToolAction[T]) apply(v T) {
	if err := a.tool.ApplyEffect(a.req.Grid, a.req.Pos, v, a.req.Layer); err != nil {
		logger.Errorf("UseToolAction: %v failed at %v: %v", a.tool, a.req.Pos, err)
	}
}

func (a *UseToolAction[T]) NothingChanged() bool                 { return a.req.Value == a.req.LastValue }
func (a *UseToolAction[T]) AffectedConstruct() types.ConstructID { return a.req.construct() }
func (a *UseToolAction[T]) Value() T                             { return a.req.Value }
func (a *UseToolAction[T]) LastValue() T                         { return a.req.LastValue }

func (a *UseToolAction[T]) String() string {
	return fmt.Sprintf("%v: %v -> %v at %d-%v", a.tool, a.req.LastValue, a.req.Value, a.req.Layer, a.req.Pos)
}

// UseBucketToolAction records a fill. Execute snapshots the touched cells;
// Undo writes the previous value back to exactly those cells.
type UseBucketToolAction[T comparable] struct {
	tool     *Bucket[T]
	req      Request[T]
	affected []types.Position
}

// NewUseBucketToolAction validates the request and wraps the action for history.
// req.LastValue must be the seed cell's current value.
func NewUseBucketToolAction[T comparable](tool *Bucket[T], req Request[T]) (*history.Command[T], error) {
	if tool == nil {
		return nil, fmt.Errorf("bucket action: nil tool")
	}
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", tool, err)
	}
	return history.NewCommand[T](&UseBucketToolAction[T]{tool: tool, req: req}, req.Fallback), nil
}

func (a *UseBucketToolAction[T]) ExecuteSelf() {
	if err := a.tool.ApplyEffect(a.req.Grid, a.req.Pos, a.req.Value, a.req.Layer); err != nil {
		logger.Errorf("UseBucketToolAction: fill failed at %v: %v", a.req.Pos, err)
		a.affected = nil
		return
	}
	a.affected = a.tool.LastProcessedPositions()
	logger.DebugTagf("tools", "UseBucketToolAction: filled %d cells from %v", len(a.affected), a.req.Pos)
}

func (a *UseBucketToolAction[T]) UndoSelf() {
	if err := a.tool.ApplyEffectTo(a.req.Grid, a.affected, a.req.LastValue, a.req.Layer); err != nil {
		logger.Errorf("UseBucketToolAction: restore failed: %v", err)
	}
}

// Affected returns the cells touched by the last Execute.
func (a *UseBucketToolAction[T]) Affected() []types.Position {
	out := make([]types.Position, len(a.affected))
	copy(out, a.affected)
	return out
}

func (a *UseBucketToolAction[T]) NothingChanged() bool                 { return a.req.Value == a.req.LastValue }
func (a *UseBucketToolAction[T]) AffectedConstruct() types.ConstructID { return a.req.construct() }
func (a *UseBucketToolAction[T]) Value() T                             { return a.req.Value }
func (a *UseBucketToolAction[T]) LastValue() T                         { return a.req.LastValue }

func (a *UseBucketToolAction[T]) String() string {
	return fmt.Sprintf("%v: %v -> %v at %d-%v", a.tool, a.req.LastValue, a.req.Value, a.req.Layer, a.req.Pos)
}

var (
	_ history.Reversible[int] = (*UseToolAction[int])(nil)
	_ history.Reversible[int] = (*UseBucketToolAction[int])(nil)
)
