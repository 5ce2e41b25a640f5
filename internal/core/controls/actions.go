package controls

import (
	"fmt"
	"math"

	"github.com/bethropolis/daub/internal/core/history"
	"github.com/bethropolis/daub/internal/types"
)

// sliderEpsilon is the smallest slider movement that counts as a change.
const sliderEpsilon = 0.001

// update writes a value into a control. A nil target has no construct, so
// the history command routes Execute and Undo to the fallback instead.
type update[T any] struct {
	target      control[T]
	value, last T
}

func (u *update[T]) ExecuteSelf() { u.target.SetWithoutNotify(u.value) }
func (u *update[T]) UndoSelf()    { u.target.SetWithoutNotify(u.last) }
func (u *update[T]) Value() T     { return u.value }
func (u *update[T]) LastValue() T { return u.last }

func (u *update[T]) AffectedConstruct() types.ConstructID {
	if u.target == nil {
		return types.NoConstruct
	}
	return u.target.ID()
}

func (u *update[T]) String() string {
	name := "detached"
	if u.target != nil {
		name = u.target.Name()
	}
	return fmt.Sprintf("%s: %v -> %v", name, u.last, u.value)
}

// UpdateToggleAction switches a toggle.
type UpdateToggleAction struct{ update[bool] }

func NewUpdateToggleAction(toggle *Toggle, value, lastValue bool, fallback func(bool)) *history.Command[bool] {
	a := &UpdateToggleAction{update[bool]{value: value, last: lastValue}}
	if toggle != nil {
		a.target = toggle
	}
	return history.NewCommand[bool](a, fallback)
}

func (a *UpdateToggleAction) NothingChanged() bool { return a.value == a.last }

// UpdateSliderAction moves a slider.
type UpdateSliderAction struct{ update[float64] }

func NewUpdateSliderAction(slider *Slider, value, lastValue float64, fallback func(float64)) *history.Command[float64] {
	a := &UpdateSliderAction{update[float64]{value: value, last: lastValue}}
	if slider != nil {
		a.target = slider
	}
	return history.NewCommand[float64](a, fallback)
}

func (a *UpdateSliderAction) NothingChanged() bool {
	return math.Abs(a.value-a.last) < sliderEpsilon
}

// UpdateDropdownAction changes a dropdown selection.
type UpdateDropdownAction struct{ update[int] }

func NewUpdateDropdownAction(dropdown *Dropdown, value, lastValue int, fallback func(int)) *history.Command[int] {
	a := &UpdateDropdownAction{update[int]{value: value, last: lastValue}}
	if dropdown != nil {
		a.target = dropdown
	}
	return history.NewCommand[int](a, fallback)
}

func (a *UpdateDropdownAction) NothingChanged() bool { return a.value == a.last }

// UpdateInputFieldAction replaces the text of an input field.
type UpdateInputFieldAction struct{ update[string] }

func NewUpdateInputFieldAction(field *InputField, value, lastValue string, fallback func(string)) *history.Command[string] {
	a := &UpdateInputFieldAction{update[string]{value: value, last: lastValue}}
	if field != nil {
		a.target = field
	}
	return history.NewCommand[string](a, fallback)
}

func (a *UpdateInputFieldAction) NothingChanged() bool { return a.value == a.last }

var (
	_ history.Reversible[bool]    = (*UpdateToggleAction)(nil)
	_ history.Reversible[float64] = (*UpdateSliderAction)(nil)
	_ history.Reversible[int]     = (*UpdateDropdownAction)(nil)
	_ history.Reversible[string]  = (*UpdateInputFieldAction)(nil)
)
