// Package controls holds the value-carrying widgets of the property panel.
// Each control is a history construct: user edits go through Submit and
// can be undone, while SetWithoutNotify is used by undo and redo to write
// the value back without recording anything.
package controls

import (
	"github.com/samber/lo"

	"github.com/bethropolis/daub/internal/core/history"
	"github.com/bethropolis/daub/internal/types"
)

// control is what the update actions need from a widget.
type control[T any] interface {
	ID() types.ConstructID
	Name() string
	Value() T
	SetWithoutNotify(v T)
}

type base[T any] struct {
	id       types.ConstructID
	name     string
	value    T
	onChange func(T)
}

func newBase[T any](kind, name string, value T, onChange func(T)) base[T] {
	return base[T]{id: types.NewConstructID(kind), name: name, value: value, onChange: onChange}
}

func (b *base[T]) ID() types.ConstructID { return b.id }
func (b *base[T]) Name() string          { return b.name }
func (b *base[T]) Value() T              { return b.value }

// OnChange replaces the effect hook. It runs whenever the value is set.
func (b *base[T]) OnChange(fn func(T)) { b.onChange = fn }

func (b *base[T]) set(v T) {
	b.value = v
	if b.onChange != nil {
		b.onChange(v)
	}
}

// Toggle is an on/off switch.
type Toggle struct {
	base[bool]
}

func NewToggle(name string, value bool, onChange func(bool)) *Toggle {
	return &Toggle{base: newBase("toggle", name, value, onChange)}
}

// SetWithoutNotify sets the value and runs the effect hook without recording history.
func (t *Toggle) SetWithoutNotify(v bool) { t.set(v) }

// Submit records the user setting the toggle to v.
func (t *Toggle) Submit(v bool, sys *history.System) {
	sys.AddAndExecute(NewUpdateToggleAction(t, v, t.value, t.onChange), false)
}

// Flip submits the opposite of the current value.
func (t *Toggle) Flip(sys *history.System) { t.Submit(!t.value, sys) }

// Slider holds a number clamped to its bounds.
type Slider struct {
	base[float64]
	min, max float64
}

// NewSlider creates a slider. The bounds are swapped if given out of order.
func NewSlider(name string, minValue, maxValue, value float64, onChange func(float64)) *Slider {
	if minValue > maxValue {
		minValue, maxValue = maxValue, minValue
	}
	s := &Slider{min: minValue, max: maxValue}
	s.base = newBase("slider", name, s.clamp(value), onChange)
	return s
}

func (s *Slider) Min() float64 { return s.min }
func (s *Slider) Max() float64 { return s.max }

func (s *Slider) clamp(v float64) float64 { return lo.Clamp(v, s.min, s.max) }

// SetWithoutNotify sets the clamped value and runs the effect hook without recording history.
func (s *Slider) SetWithoutNotify(v float64) { s.set(s.clamp(v)) }

// Submit records the user moving the slider to v.
func (s *Slider) Submit(v float64, sys *history.System) {
	sys.AddAndExecute(NewUpdateSliderAction(s, s.clamp(v), s.value, s.onChange), false)
}

// Step submits the current value moved by delta.
func (s *Slider) Step(delta float64, sys *history.System) { s.Submit(s.value+delta, sys) }

// Dropdown selects one of a fixed list of options by index.
type Dropdown struct {
	base[int]
	options []string
}

// NewDropdown creates a dropdown. It needs at least one option.
func NewDropdown(name string, options []string, index int, onChange func(int)) *Dropdown {
	if len(options) == 0 {
		options = []string{""}
	}
	d := &Dropdown{options: append([]string(nil), options...)}
	d.base = newBase("dropdown", name, d.clamp(index), onChange)
	return d
}

func (d *Dropdown) clamp(i int) int { return lo.Clamp(i, 0, len(d.options)-1) }

// Options returns a copy of the option labels.
func (d *Dropdown) Options() []string { return append([]string(nil), d.options...) }

// Selected returns the label of the selected option.
func (d *Dropdown) Selected() string { return d.options[d.value] }

// SetWithoutNotify selects index and runs the effect hook without recording history.
func (d *Dropdown) SetWithoutNotify(index int) { d.set(d.clamp(index)) }

// Submit records the user selecting index.
func (d *Dropdown) Submit(index int, sys *history.System) {
	sys.AddAndExecute(NewUpdateDropdownAction(d, d.clamp(index), d.value, d.onChange), false)
}

// Cycle submits the option delta steps away, wrapping around.
func (d *Dropdown) Cycle(delta int, sys *history.System) {
	n := len(d.options)
	d.Submit(((d.value+delta)%n+n)%n, sys)
}

// InputField holds free text.
type InputField struct {
	base[string]
}

func NewInputField(name, value string, onChange func(string)) *InputField {
	return &InputField{base: newBase("input", name, value, onChange)}
}

// SetWithoutNotify sets the text and runs the effect hook without recording history.
func (f *InputField) SetWithoutNotify(v string) { f.set(v) }

// Submit records the user entering v.
func (f *InputField) Submit(v string, sys *history.System) {
	sys.AddAndExecute(NewUpdateInputFieldAction(f, v, f.value, f.onChange), false)
}

var (
	_ control[bool]    = (*Toggle)(nil)
	_ control[float64] = (*Slider)(nil)
	_ control[int]     = (*Dropdown)(nil)
	_ control[string]  = (*InputField)(nil)
)
