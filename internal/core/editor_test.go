package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/daub/internal/core/tools"
	"github.com/bethropolis/daub/internal/event"
	"github.com/bethropolis/daub/internal/palette"
	"github.com/bethropolis/daub/internal/types"
)

func newEditor(t *testing.T) (*Editor, *event.Manager) {
	t.Helper()
	events := event.NewManager()
	e, err := NewEditor(Options{
		Width:    6,
		Height:   4,
		Layers:   2,
		Borders:  []string{"thin", "thick", "none"},
		Grouping: true,
	}, events)
	require.NoError(t, err)
	return e, events
}

func TestNewEditor(t *testing.T) {
	e, _ := newEditor(t)

	assert.Len(t, e.Layers(), 2)
	assert.Equal(t, 6, e.Width())
	assert.Equal(t, 4, e.Height())
	assert.Equal(t, 0, e.ActiveLayer())
	assert.Equal(t, tools.KindBrush, e.CurrentTool())
	assert.Equal(t, 1, e.Color())
	assert.True(t, e.ShowGrid())
	assert.Equal(t, "thin", e.BorderName())
	assert.True(t, e.History().GroupingEnabled())

	_, err := NewEditor(Options{Width: 2, Height: 2}, nil)
	assert.ErrorIs(t, err, ErrNoLayers)

	_, err = NewEditor(Options{Width: 0, Height: 2, Layers: 1}, nil)
	assert.Error(t, err)
}

func TestEditorCursorClamps(t *testing.T) {
	e, _ := newEditor(t)

	e.MoveCursor(-3, -1)
	assert.Equal(t, types.Pos(0, 0), e.GetCursor())

	e.MoveCursor(100, 2)
	assert.Equal(t, types.Pos(5, 2), e.GetCursor())

	e.SetCursor(types.Pos(3, 9))
	assert.Equal(t, types.Pos(3, 3), e.GetCursor())
}

func TestEditorKeyboardAppliesAreSeparateSteps(t *testing.T) {
	e, _ := newEditor(t)

	require.NoError(t, e.ApplyAtCursor(false))
	e.MoveCursor(1, 0)
	require.NoError(t, e.ApplyAtCursor(false))

	assert.Equal(t, 2, e.History().UndoCount())
	assert.Equal(t, 1, e.Active().MustAt(types.Pos(0, 0)))
	assert.Equal(t, 1, e.Active().MustAt(types.Pos(1, 0)))

	require.NoError(t, e.ApplyAtCursor(true))
	assert.Equal(t, palette.Empty, e.Active().MustAt(types.Pos(1, 0)))

	assert.True(t, e.Undo())
	assert.Equal(t, 1, e.Active().MustAt(types.Pos(1, 0)))
}

func TestEditorStrokeIsOneStep(t *testing.T) {
	e, events := newEditor(t)

	var modified int
	events.Subscribe(event.TypeCanvasModified, func(ev event.Event) bool {
		modified++
		return false
	})

	require.NoError(t, e.BeginStroke(types.Pos(0, 1), false))
	assert.True(t, e.Stroking())
	for x := 1; x < 4; x++ {
		require.NoError(t, e.ContinueStroke(types.Pos(x, 1)))
	}
	// Repeated position is ignored
	require.NoError(t, e.ContinueStroke(types.Pos(3, 1)))
	e.EndStroke()

	assert.False(t, e.Stroking())
	assert.Equal(t, 1, e.History().UndoCount())
	assert.Equal(t, 4, modified)
	assert.Equal(t, types.Pos(3, 1), e.GetCursor())

	assert.True(t, e.Undo())
	assert.False(t, e.Active().Contains(1))

	assert.True(t, e.Redo())
	for x := 0; x < 4; x++ {
		assert.Equal(t, 1, e.Active().MustAt(types.Pos(x, 1)))
	}
}

func TestEditorFillStrokeIgnoresDrag(t *testing.T) {
	e, _ := newEditor(t)
	e.Active().MustSet(types.Pos(5, 3), 2)
	require.NoError(t, e.SwitchTool(tools.KindFill))

	require.NoError(t, e.BeginStroke(types.Pos(2, 2), false))
	assert.Equal(t, 23, countValue(e, 1))

	require.NoError(t, e.ContinueStroke(types.Pos(5, 3)))
	e.EndStroke()

	assert.Equal(t, 2, e.Active().MustAt(types.Pos(5, 3)), "drag must not refill")
	assert.Equal(t, 1, e.History().UndoCount())
	assert.True(t, e.Undo())
	assert.Equal(t, 0, countValue(e, 1))
}

func TestEditorUndoClosesStroke(t *testing.T) {
	e, _ := newEditor(t)

	require.NoError(t, e.BeginStroke(types.Pos(0, 0), false))
	require.NoError(t, e.ContinueStroke(types.Pos(1, 0)))

	assert.True(t, e.Undo())
	assert.False(t, e.Stroking())
	assert.False(t, e.Active().Contains(1))
	assert.Equal(t, 1, e.History().RedoCount())
}

func TestEditorLayerSwitchIsUndoable(t *testing.T) {
	e, events := newEditor(t)

	var switched []int
	events.Subscribe(event.TypeLayerSwitched, func(ev event.Event) bool {
		switched = append(switched, ev.Data.(event.LayerSwitchedData).Layer)
		return false
	})

	e.NextLayer()
	assert.Equal(t, 1, e.ActiveLayer())

	require.NoError(t, e.ApplyAtCursor(false))
	assert.Equal(t, 1, e.Layers()[1].MustAt(types.Pos(0, 0)))
	assert.Equal(t, palette.Empty, e.Layers()[0].MustAt(types.Pos(0, 0)))

	assert.True(t, e.Undo())
	assert.True(t, e.Undo())
	assert.Equal(t, 0, e.ActiveLayer())
	assert.Equal(t, []int{1, 0}, switched)

	e.SelectLayer(7)
	assert.Equal(t, 0, e.ActiveLayer())
}

func TestEditorClearLayer(t *testing.T) {
	e, _ := newEditor(t)

	for x := 0; x < 3; x++ {
		e.SetCursor(types.Pos(x, 0))
		require.NoError(t, e.ApplyAtCursor(false))
	}
	before := e.History().UndoCount()

	n, err := e.ClearLayer()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.False(t, e.Active().Contains(1))
	assert.Equal(t, before+1, e.History().UndoCount())

	assert.True(t, e.Undo())
	assert.Equal(t, 3, countValue(e, 1))
}

func TestEditorControls(t *testing.T) {
	e, _ := newEditor(t)
	h := e.History()

	e.ToggleGrid()
	assert.False(t, e.ShowGrid())

	hue := e.GridColor()
	e.StepHue(1)
	e.StepHue(1)
	assert.Equal(t, defaultGridHue+2*hueStep, e.GridHue())
	assert.NotEqual(t, hue, e.GridColor())

	e.CycleBorder()
	assert.Equal(t, "thick", e.BorderName())

	e.SetTitle("sunset")
	assert.Equal(t, "sunset", e.Title())

	// A construct change closes the open group and records the newcomer
	// alone, so the second hue step opens a fresh group.
	h.EndCurrentGroup()
	assert.Equal(t, 5, h.UndoCount())

	assert.True(t, e.Undo())
	assert.Equal(t, "", e.Title())
	assert.True(t, e.Undo())
	assert.Equal(t, "thin", e.BorderName())
	assert.True(t, e.Undo())
	assert.Equal(t, defaultGridHue+hueStep, e.GridHue())
	assert.True(t, e.Undo())
	assert.Equal(t, defaultGridHue, e.GridHue())
	assert.Equal(t, hue, e.GridColor())
	assert.True(t, e.Undo())
	assert.True(t, e.ShowGrid())
}

func TestEditorPickerSelectsColor(t *testing.T) {
	e, _ := newEditor(t)

	e.Active().MustSet(types.Pos(2, 2), 4)
	require.NoError(t, e.SwitchTool(tools.KindPicker))

	e.SetCursor(types.Pos(2, 2))
	require.NoError(t, e.ApplyAtCursor(false))
	assert.Equal(t, 4, e.Color())
	assert.Equal(t, "red", e.ColorName())

	// Picking an empty cell keeps the colour
	e.SetCursor(types.Pos(0, 0))
	require.NoError(t, e.ApplyAtCursor(false))
	assert.Equal(t, 4, e.Color())
}

func TestEditorYankPaste(t *testing.T) {
	e, _ := newEditor(t)

	require.NoError(t, e.ApplyAtCursor(false))
	require.NoError(t, e.Yank())

	e.NextLayer()
	e.SetCursor(types.Pos(2, 1))
	n, err := e.Paste()
	require.NoError(t, err)
	assert.Equal(t, 4*3, n)
	assert.Equal(t, 1, e.Layers()[1].MustAt(types.Pos(2, 1)))

	assert.True(t, e.Undo())
	assert.False(t, e.Layers()[1].Contains(1))
}

func TestEditorPanelLines(t *testing.T) {
	e, _ := newEditor(t)

	lines := e.PanelLines()
	require.Len(t, lines, 6)
	assert.Equal(t, "[x] Grid", lines[0])
	assert.Equal(t, "Border: thin", lines[2])
	assert.Equal(t, "Tool: Brush", lines[4])
	assert.Equal(t, "Layer: 1/2", lines[5])
}

func countValue(e *Editor, v int) int {
	n := 0
	e.Active().Each(func(_ types.Position, value int) {
		if value == v {
			n++
		}
	})
	return n
}
