package history

import (
	"github.com/bethropolis/daub/internal/event"
	"github.com/bethropolis/daub/internal/logger"
	"github.com/bethropolis/daub/internal/stack"
)

const logTag = "history"

// System owns the undo and redo stacks and decides how committed actions
// are grouped.
//
// A System is not safe for concurrent use: it must be driven from a single
// goroutine. Undo and Redo never fail; calling them on an empty history
// does nothing.
type System struct {
	undoHistory *stack.Observable[Action]
	redoHistory *stack.Observable[Action]

	lastAction       Action
	currentGroup     Group
	canCreateGroups  bool
	ignoreConstructs bool

	events *event.Manager
}

// NewSystem creates an empty history with grouping enabled. Stack changes
// are dispatched on events as TypeUndoHistoryChanged and
// TypeRedoHistoryChanged; events may be nil.
func NewSystem(events *event.Manager) *System {
	s := &System{
		undoHistory:     stack.New[Action](),
		redoHistory:     stack.New[Action](),
		canCreateGroups: true,
		events:          events,
	}
	s.undoHistory.Subscribe(stack.Listener[Action]{
		OnChange: func() { s.notify(event.TypeUndoHistoryChanged) },
	})
	s.redoHistory.Subscribe(stack.Listener[Action]{
		OnChange: func() { s.notify(event.TypeRedoHistoryChanged) },
	})
	return s
}

func (s *System) notify(t event.Type) {
	if s.events == nil {
		return
	}
	s.events.Dispatch(t, event.HistoryChangedData{
		UndoCount: s.undoHistory.Len(),
		RedoCount: s.redoHistory.Len(),
	})
}

// AddAndExecute executes action and records it. Nil actions and actions
// that change nothing are dropped. blockGrouping records the action on its
// own even when grouping is enabled. Any redo history is discarded.
func (s *System) AddAndExecute(action Action, blockGrouping bool) {
	if action == nil {
		return
	}
	if action.NothingChanged() {
		logger.DebugTagf(logTag, "History: Dropped no-op action %v", action)
		return
	}

	action.Execute()
	s.decideGroupingResponseFor(action, blockGrouping)
	s.redoHistory.Clear()
	s.lastAction = action

	logger.DebugTagf(logTag, "History: Recorded %v. Undo: %d, open group: %d",
		action, s.undoHistory.Len(), s.openGroupLen())
}

// Undo reverts the newest recorded action. An open group is closed first,
// so an in-progress gesture is undone as one unit. It reports whether an
// action was undone.
func (s *System) Undo() bool {
	if s.currentGroup != nil {
		s.addCurrentGroupToUndo()
	}

	action, ok := s.undoHistory.Pop()
	if !ok {
		logger.DebugTagf(logTag, "History: Nothing to undo.")
		return false
	}
	s.redoHistory.Push(action)
	action.Undo()

	logger.DebugTagf(logTag, "History: Undid %v. Undo: %d, Redo: %d",
		action, s.undoHistory.Len(), s.redoHistory.Len())
	return true
}

// Redo reapplies the newest undone action and reports whether there was one.
func (s *System) Redo() bool {
	action, ok := s.redoHistory.Pop()
	if !ok {
		logger.DebugTagf(logTag, "History: Nothing to redo.")
		return false
	}
	s.undoHistory.Push(action)
	action.Execute()

	logger.DebugTagf(logTag, "History: Redid %v. Undo: %d, Redo: %d",
		action, s.undoHistory.Len(), s.redoHistory.Len())
	return true
}

// ClearHistory forgets every recorded action and any open group.
func (s *System) ClearHistory() {
	s.undoHistory.Clear()
	s.redoHistory.Clear()
	s.lastAction = nil
	s.currentGroup = nil
	logger.DebugTagf(logTag, "History: Cleared.")
}

// EnableGroupingBehaviour turns grouping on or off. Turning it off closes
// the open group.
func (s *System) EnableGroupingBehaviour(enable bool) {
	s.canCreateGroups = enable
	if !enable {
		s.EndCurrentGroup()
	}
}

// StartNewGroup closes the open group so the next action starts a new one.
// allowDifferentConstructs makes that next group a mixed group; the flag
// lasts until EndCurrentGroup.
func (s *System) StartNewGroup(allowDifferentConstructs bool) {
	if allowDifferentConstructs {
		s.ignoreConstructs = true
	}
	if s.canCreateGroups {
		s.addCurrentGroupToUndo()
	}
}

// EndCurrentGroup closes the open group, if any, and leaves mixed mode.
func (s *System) EndCurrentGroup() {
	s.ignoreConstructs = false
	s.addCurrentGroupToUndo()
}

func (s *System) decideGroupingResponseFor(action Action, blockGrouping bool) {
	if !blockGrouping && s.canCreateGroups {
		if s.currentGroup == nil {
			if s.ignoreConstructs {
				s.currentGroup = NewMixedGroupAction()
			} else {
				s.currentGroup = NewGroupAction()
			}
			s.currentGroup.AddAction(action)
			return
		}

		if s.ignoreConstructs || (s.lastAction != nil && action.AffectedConstruct() == s.lastAction.AffectedConstruct()) {
			s.currentGroup.AddAction(action)
			return
		}

		// Different construct: close the group and record this one alone.
		s.addCurrentGroupToUndo()
	}

	s.undoHistory.Push(action)
}

func (s *System) addCurrentGroupToUndo() {
	if s.currentGroup == nil {
		return
	}
	if !s.currentGroup.NothingChanged() {
		s.undoHistory.Push(s.currentGroup)
	} else {
		logger.DebugTagf(logTag, "History: Dropped net-zero group %v", s.currentGroup)
	}
	s.currentGroup = nil
}

func (s *System) openGroupLen() int {
	if s.currentGroup == nil {
		return 0
	}
	return s.currentGroup.Len()
}

// UndoCount is the number of undoable entries, not counting an open group.
func (s *System) UndoCount() int { return s.undoHistory.Len() }

// RedoCount is the number of redoable entries.
func (s *System) RedoCount() int { return s.redoHistory.Len() }

// CanUndo reports whether Undo would revert something.
func (s *System) CanUndo() bool {
	return s.undoHistory.Len() > 0 || (s.currentGroup != nil && !s.currentGroup.NothingChanged())
}

// CanRedo reports whether Redo would reapply something.
func (s *System) CanRedo() bool { return s.redoHistory.Len() > 0 }

// CurrentGroup returns the open group, or nil.
func (s *System) CurrentGroup() Group { return s.currentGroup }

// GroupingEnabled reports whether actions are currently grouped.
func (s *System) GroupingEnabled() bool { return s.canCreateGroups }
