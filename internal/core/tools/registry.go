package tools

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/bethropolis/daub/internal/core/history"
)

// Factory turns a tool use into a history action. A factory may apply the
// tool itself and return a nil action; such uses are not recorded.
type Factory[T comparable] func(tool Tool[T], req Request[T]) (history.Action, error)

// Registry maps tool kinds to action factories.
type Registry[T comparable] struct {
	factories map[Kind]Factory[T]
}

// NewRegistry returns a registry with the factories for the built-in kinds.
func NewRegistry[T comparable]() *Registry[T] {
	r := &Registry[T]{factories: make(map[Kind]Factory[T])}
	r.Register(KindBrush, BrushFactory[T])
	r.Register(KindEraser, BrushFactory[T])
	r.Register(KindFill, BucketFactory[T])
	r.Register(KindPicker, SilentFactory[T])
	r.Register(KindSelect, SilentFactory[T])
	return r
}

// Register sets the factory for kind, replacing any previous one.
func (r *Registry[T]) Register(kind Kind, f Factory[T]) {
	r.factories[kind] = f
}

// Kinds lists the registered kinds in ascending order.
func (r *Registry[T]) Kinds() []Kind {
	kinds := lo.Keys(r.factories)
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Create builds the action for using tool as kind.
func (r *Registry[T]) Create(kind Kind, tool Tool[T], req Request[T]) (history.Action, error) {
	f, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTool, kind)
	}
	return f(tool, req)
}

// BrushFactory records single-cell writes.
func BrushFactory[T comparable](tool Tool[T], req Request[T]) (history.Action, error) {
	a, err := NewUseToolAction(tool, req)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// BucketFactory records fills. tool must be a *Bucket.
func BucketFactory[T comparable](tool Tool[T], req Request[T]) (history.Action, error) {
	bucket, ok := tool.(*Bucket[T])
	if !ok {
		return nil, fmt.Errorf("bucket factory: %v is not a bucket", tool)
	}
	a, err := NewUseBucketToolAction(bucket, req)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// SilentFactory applies the tool directly and records nothing.
func SilentFactory[T comparable](tool Tool[T], req Request[T]) (history.Action, error) {
	if err := tool.ApplyEffect(req.Grid, req.Pos, req.Value, req.Layer); err != nil {
		return nil, err
	}
	return nil, nil
}
