package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/daub/internal/event"
)

func newUngroupedSystem() *System {
	s := NewSystem(nil)
	s.EnableGroupingBehaviour(false)
	return s
}

func TestAddAndExecuteRunsAction(t *testing.T) {
	s := newUngroupedSystem()
	reg := newRegister("x")

	s.AddAndExecute(set(reg, 3), false)

	assert.Equal(t, 3, reg.value)
	assert.Equal(t, 1, s.UndoCount())
	assert.True(t, s.CanUndo())
}

func TestNilAndNoOpActionsAreDropped(t *testing.T) {
	s := newUngroupedSystem()
	reg := newRegister("x")

	s.AddAndExecute(set(reg, 1), false)
	require.True(t, s.Undo())
	require.Equal(t, 1, s.RedoCount())

	s.AddAndExecute(nil, false)
	s.AddAndExecute(set(reg, reg.value), false)

	assert.Equal(t, 0, s.UndoCount())
	assert.Equal(t, 1, s.RedoCount(), "dropped actions must not clear redo")
}

func TestSequenceOfUndosRestoresOriginalState(t *testing.T) {
	s := newUngroupedSystem()
	reg := newRegister("x")

	for v := 1; v <= 5; v++ {
		s.AddAndExecute(set(reg, v*10), false)
	}
	require.Equal(t, 5, s.UndoCount())

	for i := 0; i < 5; i++ {
		assert.True(t, s.Undo())
	}
	assert.Equal(t, 0, reg.value)
	assert.False(t, s.Undo(), "empty undo is a silent no-op")
}

func TestRedoReproducesExecute(t *testing.T) {
	s := newUngroupedSystem()
	reg := newRegister("x")

	s.AddAndExecute(set(reg, 9), false)
	afterExecute := reg.value

	s.Undo()
	assert.Equal(t, 0, reg.value)
	assert.True(t, s.Redo())
	assert.Equal(t, afterExecute, reg.value)
	assert.False(t, s.Redo(), "empty redo is a silent no-op")
}

func TestCommitAfterUndoClearsRedo(t *testing.T) {
	s := newUngroupedSystem()
	reg := newRegister("x")

	s.AddAndExecute(set(reg, 1), false) // A
	s.AddAndExecute(set(reg, 2), false) // B
	s.Undo()
	require.True(t, s.CanRedo())
	s.AddAndExecute(set(reg, 3), false) // C

	assert.False(t, s.CanRedo())
	assert.False(t, s.Redo())
	assert.Equal(t, 3, reg.value, "B is unreachable")
}

func TestSameConstructActionsCollapseIntoOneStep(t *testing.T) {
	s := NewSystem(nil)
	reg := newRegister("x")

	s.AddAndExecute(set(reg, 1), false)
	s.AddAndExecute(set(reg, 2), false)
	s.AddAndExecute(set(reg, 3), false)

	require.NotNil(t, s.CurrentGroup())
	assert.Equal(t, 3, s.CurrentGroup().Len())
	assert.Equal(t, 0, s.UndoCount(), "group is still open")

	assert.True(t, s.Undo())
	assert.Equal(t, 0, reg.value, "one undo reverts all three")
	assert.Equal(t, 0, s.UndoCount())
	assert.Equal(t, 1, s.RedoCount())

	s.Redo()
	assert.Equal(t, 3, reg.value)
}

func TestDifferentConstructClosesGroup(t *testing.T) {
	s := NewSystem(nil)
	x, y := newRegister("x"), newRegister("y")

	s.AddAndExecute(set(x, 1), false) // A(X)
	s.AddAndExecute(set(x, 2), false) // B(X)
	s.AddAndExecute(set(y, 5), false) // C(Y)

	assert.Nil(t, s.CurrentGroup())
	assert.Equal(t, 2, s.UndoCount())

	s.Undo()
	assert.Equal(t, 0, y.value)
	assert.Equal(t, 2, x.value)
	s.Undo()
	assert.Equal(t, 0, x.value)
	assert.False(t, s.Undo())
}

func TestActionAfterUngroupedOneSeedsNewGroup(t *testing.T) {
	s := NewSystem(nil)
	x, y := newRegister("x"), newRegister("y")

	s.AddAndExecute(set(x, 1), false)
	s.AddAndExecute(set(y, 1), false) // closes {x}, pushed alone
	s.AddAndExecute(set(y, 2), false) // opens a new group
	s.AddAndExecute(set(y, 3), false)

	require.NotNil(t, s.CurrentGroup())
	assert.Equal(t, 2, s.CurrentGroup().Len())
	assert.Equal(t, 2, s.UndoCount())

	s.Undo()
	assert.Equal(t, 1, y.value)
	assert.Equal(t, 2, s.UndoCount(), "group closed onto undo before popping")
}

func TestNetZeroGroupIsNotRecorded(t *testing.T) {
	s := NewSystem(nil)
	reg := newRegister("x")

	s.AddAndExecute(set(reg, 1), false)
	s.AddAndExecute(set(reg, 2), false)
	s.AddAndExecute(set(reg, 0), false)
	s.EndCurrentGroup()

	assert.Equal(t, 0, s.UndoCount())
	assert.Nil(t, s.CurrentGroup())
	assert.False(t, s.CanUndo())
}

func TestBlockGroupingBypassesGroup(t *testing.T) {
	s := NewSystem(nil)
	reg := newRegister("x")

	s.AddAndExecute(set(reg, 1), false)
	s.AddAndExecute(set(reg, 2), true)

	assert.Equal(t, 1, s.UndoCount(), "blocked action pushed directly")
	require.NotNil(t, s.CurrentGroup())
	assert.Equal(t, 1, s.CurrentGroup().Len())
}

func TestUndoClosesOpenGroupFirst(t *testing.T) {
	s := NewSystem(nil)
	reg := newRegister("x")

	s.AddAndExecute(set(reg, 1), false)
	s.AddAndExecute(set(reg, 2), false)
	assert.True(t, s.CanUndo(), "open group counts as undoable")

	s.Undo()
	assert.Nil(t, s.CurrentGroup())
	assert.Equal(t, 0, reg.value)
}

func TestStartNewGroupSplitsSameConstructRuns(t *testing.T) {
	s := NewSystem(nil)
	reg := newRegister("x")

	s.AddAndExecute(set(reg, 1), false)
	s.StartNewGroup(false)
	s.AddAndExecute(set(reg, 2), false)
	s.EndCurrentGroup()

	assert.Equal(t, 2, s.UndoCount())
	s.Undo()
	assert.Equal(t, 1, reg.value)
}

func TestMixedModeGroupsDifferentConstructs(t *testing.T) {
	s := NewSystem(nil)
	x, y := newRegister("x"), newRegister("y")

	s.StartNewGroup(true)
	s.AddAndExecute(set(x, 1), false)
	s.AddAndExecute(set(y, 1), false)
	s.AddAndExecute(set(x, 2), false)

	require.IsType(t, &MixedGroupAction{}, s.CurrentGroup())
	assert.Equal(t, 3, s.CurrentGroup().Len())

	s.EndCurrentGroup()
	assert.Equal(t, 1, s.UndoCount())

	// Mixed mode ended with the group.
	s.AddAndExecute(set(x, 3), false)
	require.IsType(t, &GroupAction{}, s.CurrentGroup())

	s.Undo() // closes {x=3} and undoes it
	s.Undo() // the mixed group
	assert.Equal(t, 0, x.value)
	assert.Equal(t, 0, y.value)
}

func TestStartNewGroupWhileGroupingDisabled(t *testing.T) {
	s := newUngroupedSystem()
	reg := newRegister("x")

	s.StartNewGroup(true)
	s.AddAndExecute(set(reg, 1), false)
	s.AddAndExecute(set(reg, 2), false)

	assert.Nil(t, s.CurrentGroup())
	assert.Equal(t, 2, s.UndoCount())
}

func TestDisablingGroupingClosesOpenGroup(t *testing.T) {
	s := NewSystem(nil)
	reg := newRegister("x")

	s.AddAndExecute(set(reg, 1), false)
	s.AddAndExecute(set(reg, 2), false)
	s.EnableGroupingBehaviour(false)

	assert.False(t, s.GroupingEnabled())
	assert.Nil(t, s.CurrentGroup())
	assert.Equal(t, 1, s.UndoCount())

	s.AddAndExecute(set(reg, 3), false)
	assert.Equal(t, 2, s.UndoCount())
}

func TestClearHistory(t *testing.T) {
	s := NewSystem(nil)
	reg := newRegister("x")

	s.AddAndExecute(set(reg, 1), true)
	s.AddAndExecute(set(reg, 2), true)
	s.Undo()
	s.AddAndExecute(set(reg, 5), false)
	s.ClearHistory()

	assert.Equal(t, 0, s.UndoCount())
	assert.Equal(t, 0, s.RedoCount())
	assert.Nil(t, s.CurrentGroup())
	assert.False(t, s.Undo())
	assert.Equal(t, 5, reg.value, "clearing history does not touch state")
}

func TestHistoryEventsCarryCounts(t *testing.T) {
	events := event.NewManager()
	var undoCounts, redoCounts []int
	events.Subscribe(event.TypeUndoHistoryChanged, func(e event.Event) bool {
		undoCounts = append(undoCounts, e.Data.(event.HistoryChangedData).UndoCount)
		return false
	})
	events.Subscribe(event.TypeRedoHistoryChanged, func(e event.Event) bool {
		redoCounts = append(redoCounts, e.Data.(event.HistoryChangedData).RedoCount)
		return false
	})

	s := NewSystem(events)
	s.EnableGroupingBehaviour(false)
	reg := newRegister("x")

	s.AddAndExecute(set(reg, 1), false) // undo push, redo clear
	s.Undo()                            // undo pop, redo push

	assert.Equal(t, []int{1, 0}, undoCounts)
	assert.Equal(t, []int{0, 1}, redoCounts)
}
