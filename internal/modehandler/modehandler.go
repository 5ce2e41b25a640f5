// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/daub/internal/core"
	"github.com/bethropolis/daub/internal/input"
	"github.com/bethropolis/daub/internal/logger"
	"github.com/bethropolis/daub/internal/plugin" // For CommandFunc type
	"github.com/bethropolis/daub/internal/statusbar"
	"github.com/bethropolis/daub/internal/tui"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
)

func (m InputMode) String() string {
	if m == ModeCommand {
		return "COMMAND"
	}
	return "NORMAL"
}

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	// Dependencies (references to components managed by App)
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	statusBar      *statusbar.StatusBar
	layout         tui.Layout
	quitSignal     chan<- struct{}
	quitOnce       sync.Once

	// Internal State
	currentMode InputMode
	cmdBuffer   []rune
	commands    map[string]plugin.CommandFunc
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	StatusBar      *statusbar.StatusBar
	Layout         tui.Layout      // Maps mouse positions to canvas cells
	QuitSignal     chan<- struct{} // Write-only channel to signal quit
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		statusBar:      cfg.StatusBar,
		layout:         cfg.Layout,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	switch mh.currentMode {
	case ModeNormal:
		return mh.executeAction(mh.inputProcessor.ProcessEvent(ev))
	case ModeCommand:
		return mh.handleActionCommand(mh.inputProcessor.ProcessCommandEvent(ev))
	default:
		logger.Warnf("ModeHandler: Unknown input mode: %v", mh.currentMode)
		return false
	}
}

// HandleMouseEvent turns mouse presses, drags and releases on the canvas
// into strokes. Returns true if a redraw is needed.
func (mh *ModeHandler) HandleMouseEvent(ev *tcell.EventMouse) bool {
	actionEvent := mh.inputProcessor.ProcessMouse(ev)
	if actionEvent.Action == input.ActionUnknown {
		return false
	}
	if mh.currentMode != ModeNormal && actionEvent.Action != input.ActionMouseUp {
		return false
	}

	cell, onCanvas := mh.layout.CellAt(actionEvent.Pos)
	switch actionEvent.Action {
	case input.ActionMouseDown:
		if !onCanvas {
			return false
		}
		mh.reportError("Apply", mh.editor.BeginStroke(cell, actionEvent.Alternative))
	case input.ActionMouseDrag:
		if !onCanvas {
			return false
		}
		mh.reportError("Apply", mh.editor.ContinueStroke(cell))
	case input.ActionMouseUp:
		mh.editor.EndStroke()
	}
	return true
}

// SetLayout updates the screen layout used for mouse mapping.
func (mh *ModeHandler) SetLayout(l tui.Layout) {
	mh.layout = l
}

// RegisterCommand adds a command to the registry. Called via EditorAPI.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command ':%s'", name)
	return nil
}

// Quit signals the app to stop. Safe to call more than once.
func (mh *ModeHandler) Quit() {
	mh.quitOnce.Do(func() { close(mh.quitSignal) })
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCurrentModeString returns the current mode for display.
func (mh *ModeHandler) GetCurrentModeString() string {
	return mh.currentMode.String()
}

// GetCommandBuffer returns the command line being typed, or "" outside
// command mode.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return string(mh.cmdBuffer)
	}
	return ""
}

func (mh *ModeHandler) reportError(what string, err error) {
	if err == nil {
		return
	}
	logger.Debugf("ModeHandler: %s failed: %v", what, err)
	mh.statusBar.SetTemporaryMessage("%s failed: %v", what, err)
}
