package app

import (
	"github.com/bethropolis/daub/internal/event"
	"github.com/bethropolis/daub/internal/logger"
)

// handleHistoryChanged refreshes the undo/redo counts in the status bar.
func (a *App) handleHistoryChanged(e event.Event) bool {
	if data, ok := e.Data.(event.HistoryChangedData); ok {
		a.statusBar.SetHistory(data.UndoCount, data.RedoCount)
		a.requestRedraw()
	}
	return false // Not consumed
}

func (a *App) handleToolSwitched(e event.Event) bool {
	if data, ok := e.Data.(event.ToolSwitchedData); ok {
		a.statusBar.SetTool(data.Tool)
	}
	return false
}

func (a *App) handleLayerSwitched(e event.Event) bool {
	if data, ok := e.Data.(event.LayerSwitchedData); ok {
		a.statusBar.SetLayer(data.Layer, len(a.editor.Layers()))
		a.requestRedraw()
	}
	return false
}

// handleCanvasModified runs once per finished tool effect.
func (a *App) handleCanvasModified(e event.Event) bool {
	if data, ok := e.Data.(event.CanvasModifiedData); ok {
		logger.DebugTagf("draw", "App: Layer %d modified", data.Layer)
	}
	a.requestRedraw()
	return false
}
