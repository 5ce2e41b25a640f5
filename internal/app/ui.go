package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/daub/internal/logger"
	"github.com/bethropolis/daub/internal/tui"
)

var panelStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)

// drawCanvas clears screen and redraws all components.
func (a *App) drawCanvas() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	logger.DebugTagf("draw", "drawCanvas: Screen Size (%d x %d)", width, height)

	ed := a.editor
	a.tuiManager.Clear()
	tui.DrawCanvas(a.tuiManager, a.layout, tui.Canvas{
		Layers:    ed.Layers(),
		Active:    ed.ActiveLayer(),
		Palette:   ed.Palette(),
		Cursor:    ed.GetCursor(),
		ShowGrid:  ed.ShowGrid(),
		GridColor: ed.GridColor(),
		Border:    ed.Border(),
	})
	tui.DrawPanel(a.tuiManager, a.layout, ed.PanelLines(), panelStyle)
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	ed := a.editor
	a.statusBar.SetTitle(ed.Title())
	a.statusBar.SetTool(ed.CurrentTool().String())
	a.statusBar.SetColor(ed.ColorName())
	a.statusBar.SetLayer(ed.ActiveLayer(), len(ed.Layers()))
	a.statusBar.SetCursorInfo(ed.GetCursor())
	a.statusBar.SetHistory(ed.History().UndoCount(), ed.History().RedoCount())
}

// SetStatusMessage shows a temporary message in the status bar.
func (a *App) SetStatusMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(format, args...)
	a.requestRedraw()
}
