package modehandler

import (
	"github.com/bethropolis/daub/internal/input"
	"github.com/bethropolis/daub/internal/logger"
)

// executeAction handles actions when in ModeNormal.
// Returns true if a redraw is needed.
func (mh *ModeHandler) executeAction(actionEvent input.ActionEvent) bool {
	ed := mh.editor
	actionProcessed := true

	switch actionEvent.Action {
	// Mode Switching
	case input.ActionEnterCommandMode:
		ed.EndStroke()
		mh.currentMode = ModeCommand
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.statusBar.SetCommand("", true)
		logger.Debugf("ModeHandler: Entering Command Mode")

	case input.ActionQuit:
		mh.Quit()
		actionProcessed = false

	// Movement
	case input.ActionMoveUp:
		ed.MoveCursor(0, -1)
	case input.ActionMoveDown:
		ed.MoveCursor(0, 1)
	case input.ActionMoveLeft:
		ed.MoveCursor(-1, 0)
	case input.ActionMoveRight:
		ed.MoveCursor(1, 0)

	// Canvas
	case input.ActionApply:
		mh.reportError("Apply", ed.ApplyAtCursor(false))
	case input.ActionApplyAlternative:
		mh.reportError("Erase", ed.ApplyAtCursor(true))
	case input.ActionSelectTool:
		mh.reportError("Tool switch", ed.SwitchTool(actionEvent.Tool))
	case input.ActionPrevColor:
		ed.CycleColor(-1)
	case input.ActionNextColor:
		ed.CycleColor(1)
	case input.ActionNextLayer:
		ed.NextLayer()

	// Property panel
	case input.ActionToggleGrid:
		ed.ToggleGrid()
	case input.ActionHueDown:
		ed.StepHue(-1)
	case input.ActionHueUp:
		ed.StepHue(1)
	case input.ActionCycleBorder:
		ed.CycleBorder()

	// History
	case input.ActionUndo:
		if !ed.Undo() {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		if !ed.Redo() {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	// Clipboard
	case input.ActionYank:
		if err := ed.Yank(); err != nil {
			mh.reportError("Yank", err)
		} else {
			mh.statusBar.SetTemporaryMessage("Layer %d yanked", ed.ActiveLayer()+1)
		}
	case input.ActionPaste:
		n, err := ed.Paste()
		if err != nil {
			mh.reportError("Paste", err)
		} else {
			mh.statusBar.SetTemporaryMessage("Pasted %d cells", n)
		}

	default:
		actionProcessed = false
	}

	return actionProcessed
}
