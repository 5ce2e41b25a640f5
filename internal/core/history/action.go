// Package history records reversible actions on undo/redo stacks.
package history

import (
	"fmt"

	"github.com/bethropolis/daub/internal/types"
)

// Action is a single reversible state transition.
type Action interface {
	// Execute applies the transition.
	Execute()
	// Undo reverts it.
	Undo()
	// NothingChanged reports whether Execute would be a no-op.
	// Such actions are never recorded.
	NothingChanged() bool
	// AffectedConstruct identifies the mutated resource; it is the grouping key.
	// types.NoConstruct means the action has no backing construct.
	AffectedConstruct() types.ConstructID
	Value() any
	LastValue() any
}

// Reversible is implemented by concrete commands and turned into an Action
// by NewCommand.
type Reversible[T any] interface {
	ExecuteSelf()
	UndoSelf()
	NothingChanged() bool
	AffectedConstruct() types.ConstructID
	Value() T
	LastValue() T
}

// Command adapts a Reversible into an Action. When the command has no
// construct, Execute and Undo call the fallback with Value and LastValue
// instead of ExecuteSelf and UndoSelf.
type Command[T any] struct {
	r        Reversible[T]
	fallback func(T)
}

// NewCommand wraps r. fallback may be nil.
func NewCommand[T any](r Reversible[T], fallback func(T)) *Command[T] {
	return &Command[T]{r: r, fallback: fallback}
}

func (c *Command[T]) Execute() {
	if c.r.AffectedConstruct().IsZero() {
		if c.fallback != nil {
			c.fallback(c.r.Value())
		}
		return
	}
	c.r.ExecuteSelf()
}

func (c *Command[T]) Undo() {
	if c.r.AffectedConstruct().IsZero() {
		if c.fallback != nil {
			c.fallback(c.r.LastValue())
		}
		return
	}
	c.r.UndoSelf()
}

func (c *Command[T]) NothingChanged() bool                 { return c.r.NothingChanged() }
func (c *Command[T]) AffectedConstruct() types.ConstructID { return c.r.AffectedConstruct() }
func (c *Command[T]) Value() any                           { return c.r.Value() }
func (c *Command[T]) LastValue() any                       { return c.r.LastValue() }

// Unwrap returns the wrapped command.
func (c *Command[T]) Unwrap() Reversible[T] {
	return c.r
}

func (c *Command[T]) String() string {
	if s, ok := c.r.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v -> %v", c.r.LastValue(), c.r.Value())
}

// ambient is a construct-less value change routed entirely through the fallback.
type ambient[T comparable] struct {
	value, lastValue T
}

func (a ambient[T]) ExecuteSelf()                         {}
func (a ambient[T]) UndoSelf()                            {}
func (a ambient[T]) NothingChanged() bool                 { return a.value == a.lastValue }
func (a ambient[T]) AffectedConstruct() types.ConstructID { return types.NoConstruct }
func (a ambient[T]) Value() T                             { return a.value }
func (a ambient[T]) LastValue() T                         { return a.lastValue }

func (a ambient[T]) String() string {
	return fmt.Sprintf("ambient: %v -> %v", a.lastValue, a.value)
}

// NewAmbient records a change of a value that has no backing construct.
// Execute calls apply(value), Undo calls apply(lastValue).
func NewAmbient[T comparable](value, lastValue T, apply func(T)) *Command[T] {
	return NewCommand[T](ambient[T]{value: value, lastValue: lastValue}, apply)
}

// Compile-time checks.
var (
	_ Action       = (*Command[int])(nil)
	_ fmt.Stringer = (*Command[int])(nil)
)
