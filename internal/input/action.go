// internal/input/action.go
package input

import (
	"github.com/bethropolis/daub/internal/core/tools"
	"github.com/bethropolis/daub/internal/types"
)

// Action represents a command or operation to be performed by the app.
type Action int

// Define the set of possible actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// --- Canvas ---
	ActionApply            // Use the current tool at the cursor
	ActionApplyAlternative // Erase at the cursor
	ActionSelectTool       // Requires Tool
	ActionPrevColor
	ActionNextColor
	ActionNextLayer

	// --- Property panel ---
	ActionToggleGrid
	ActionHueDown
	ActionHueUp
	ActionCycleBorder

	// --- History / Clipboard ---
	ActionUndo
	ActionRedo
	ActionYank
	ActionPaste

	// --- Mouse gesture, Pos is the screen cell ---
	ActionMouseDown
	ActionMouseDrag
	ActionMouseUp

	// --- Command Mode ---
	ActionEnterCommandMode  // Special action for ':'
	ActionExecuteCommand    // Enter in Command Mode
	ActionCancelCommand     // Esc in Command Mode
	ActionAppendCommand     // Runes in Command Mode
	ActionDeleteCommandChar // Backspace in Command Mode
)

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune           // Used for ActionAppendCommand
	Tool   tools.Kind     // Used for ActionSelectTool
	Pos    types.Position // Screen cell for mouse actions
	// Alternative is set on mouse actions driven by the secondary button.
	Alternative bool
}
