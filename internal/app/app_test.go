package app

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/daub/internal/config"
	"github.com/bethropolis/daub/internal/core/tools"
	"github.com/bethropolis/daub/internal/palette"
	"github.com/bethropolis/daub/internal/types"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Canvas.Width = 8
	cfg.Canvas.Height = 4

	screen := tcell.NewSimulationScreen("UTF-8")
	a, err := NewAppWithScreen(cfg, screen)
	require.NoError(t, err)
	screen.SetSize(80, 24)
	return a, screen
}

func statusText(a *App) string {
	text, _ := a.statusBar.Text()
	return text
}

func TestCommands(t *testing.T) {
	a, _ := newTestApp(t)
	mh := a.GetModeHandler()
	ed := a.Editor()

	mh.ExecuteCommand("title evening sky")
	assert.Equal(t, "evening sky", ed.Title())

	mh.ExecuteCommand("tool fill")
	assert.Equal(t, tools.KindFill, ed.CurrentTool())
	mh.ExecuteCommand("tool crayon")
	assert.Contains(t, statusText(a), "unknown tool")

	mh.ExecuteCommand("layer 2")
	assert.Equal(t, 1, ed.ActiveLayer())
	mh.ExecuteCommand("layer 9")
	assert.Contains(t, statusText(a), "no layer")

	mh.ExecuteCommand("grouping off")
	assert.False(t, ed.History().GroupingEnabled())
	assert.Equal(t, "Grouping off", statusText(a))
	mh.ExecuteCommand("grouping maybe")
	assert.Contains(t, statusText(a), "expected on or off")

	mh.ExecuteCommand("history")
	assert.Equal(t, "Undo: 2, Redo: 0, grouping off", statusText(a))
}

func TestClearCommandIsOneStep(t *testing.T) {
	a, _ := newTestApp(t)
	ed := a.Editor()

	for x := 0; x < 4; x++ {
		ed.SetCursor(types.Pos(x, 1))
		require.NoError(t, ed.ApplyAtCursor(false))
	}
	a.GetModeHandler().ExecuteCommand("clear")
	assert.Equal(t, "Cleared 4 cells on layer 1", statusText(a))
	assert.False(t, ed.Active().Contains(1))

	assert.True(t, ed.Undo())
	assert.Equal(t, 4, len(lookup(ed.Active().Cells(), 1)))
}

func TestPluginCommandRegistered(t *testing.T) {
	a, _ := newTestApp(t)
	ed := a.Editor()

	require.NoError(t, ed.ApplyAtCursor(false))
	a.GetModeHandler().ExecuteCommand("cells")
	assert.True(t, strings.HasPrefix(statusText(a), "Layer 1: 1 cells"), statusText(a))
}

func TestHistoryEventsUpdateStatusBar(t *testing.T) {
	a, _ := newTestApp(t)
	ed := a.Editor()

	require.NoError(t, ed.ApplyAtCursor(false))
	assert.Contains(t, statusText(a), "U:1 R:0")

	ed.Undo()
	assert.Contains(t, statusText(a), "U:0 R:1")
}

func TestDrawCanvas(t *testing.T) {
	a, screen := newTestApp(t)
	ed := a.Editor()

	require.NoError(t, ed.ApplyAtCursor(false))
	a.drawCanvas()

	// Cursor cell, painted with the first colour
	r, _, style, _ := screen.GetContent(1, 1)
	assert.Equal(t, '[', r)
	_, bg, _ := style.Decompose()
	assert.Equal(t, palette.Default.Color(1), bg)

	// Thin border corner
	r, _, _, _ = screen.GetContent(0, 0)
	assert.Equal(t, '┌', r)

	// Status line
	_, h := screen.Size()
	var sb strings.Builder
	for x := 0; x < 10; x++ {
		r, _, _, _ := screen.GetContent(x, h-1)
		sb.WriteRune(r)
	}
	assert.Equal(t, "[Untitled]", sb.String())
}

func TestRunHandlesKeysUntilQuit(t *testing.T) {
	a, screen := newTestApp(t)

	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not quit")
	}

	assert.Equal(t, 1, a.Editor().Active().MustAt(types.Pos(1, 0)))
}

func lookup(rows [][]int, v int) []types.Position {
	var found []types.Position
	for y, row := range rows {
		for x, c := range row {
			if c == v {
				found = append(found, types.Pos(x, y))
			}
		}
	}
	return found
}
