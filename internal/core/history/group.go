package history

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/samber/lo"

	"github.com/bethropolis/daub/internal/types"
)

// Group aggregates actions into one undo/redo unit.
type Group interface {
	Action
	AddAction(action Action)
	Len() int
	Actions() []Action
}

// groupBase holds the members and the ordering rules shared by both group kinds.
type groupBase struct {
	actions []Action
}

func (g *groupBase) AddAction(action Action) {
	g.actions = append(g.actions, action)
}

// Execute applies members in insertion order.
func (g *groupBase) Execute() {
	for _, a := range g.actions {
		a.Execute()
	}
}

// Undo reverts members in reverse insertion order.
func (g *groupBase) Undo() {
	for i := len(g.actions) - 1; i >= 0; i-- {
		g.actions[i].Undo()
	}
}

func (g *groupBase) Len() int {
	return len(g.actions)
}

func (g *groupBase) Actions() []Action {
	out := make([]Action, len(g.actions))
	copy(out, g.actions)
	return out
}

// AffectedConstruct is the first member's construct.
func (g *groupBase) AffectedConstruct() types.ConstructID {
	if len(g.actions) == 0 {
		return types.NoConstruct
	}
	return g.actions[0].AffectedConstruct()
}

// Value is the last member's value: the state the group ends in.
func (g *groupBase) Value() any {
	if len(g.actions) == 0 {
		return nil
	}
	return g.actions[len(g.actions)-1].Value()
}

// LastValue is the first member's last value: the state the group starts from.
func (g *groupBase) LastValue() any {
	if len(g.actions) == 0 {
		return nil
	}
	return g.actions[0].LastValue()
}

// GroupAction groups consecutive actions on the same construct.
type GroupAction struct {
	groupBase
}

// NewGroupAction creates an empty same-construct group.
func NewGroupAction() *GroupAction {
	return &GroupAction{}
}

// NothingChanged compares only the endpoints of the chain, so an edit
// sequence that returns to its starting value counts as unchanged.
func (g *GroupAction) NothingChanged() bool {
	if len(g.actions) == 0 {
		return true
	}
	return valuesEqual(g.actions[0].LastValue(), g.actions[len(g.actions)-1].Value())
}

func (g *GroupAction) String() string {
	if len(g.actions) == 0 {
		return "empty group"
	}
	return fmt.Sprintf("%s x %d", g.AffectedConstruct(), len(g.actions))
}

// MixedGroupAction groups actions regardless of their construct.
type MixedGroupAction struct {
	groupBase
}

// NewMixedGroupAction creates an empty mixed-construct group.
func NewMixedGroupAction() *MixedGroupAction {
	return &MixedGroupAction{}
}

// NothingChanged holds only if every member is unchanged.
func (g *MixedGroupAction) NothingChanged() bool {
	return lo.EveryBy(g.actions, func(a Action) bool { return a.NothingChanged() })
}

func (g *MixedGroupAction) String() string {
	return strings.Join(lo.Map(g.actions, func(a Action, _ int) string {
		return fmt.Sprint(a)
	}), ", ")
}

// valuesEqual compares action values, which may be of any dynamic type.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

var (
	_ Group = (*GroupAction)(nil)
	_ Group = (*MixedGroupAction)(nil)
)
