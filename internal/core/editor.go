// internal/core/editor.go
package core

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/lo"

	"github.com/bethropolis/daub/internal/core/clipboard"
	"github.com/bethropolis/daub/internal/core/controls"
	"github.com/bethropolis/daub/internal/core/history"
	"github.com/bethropolis/daub/internal/core/tools"
	"github.com/bethropolis/daub/internal/event"
	"github.com/bethropolis/daub/internal/grid"
	"github.com/bethropolis/daub/internal/logger"
	"github.com/bethropolis/daub/internal/palette"
	"github.com/bethropolis/daub/internal/types"
)

// ErrNoLayers is returned when an editor is created without layers.
var ErrNoLayers = errors.New("canvas needs at least one layer")

const (
	defaultGridHue = 210.0
	hueStep        = 30.0
)

// Options configures a new Editor.
type Options struct {
	Width, Height   int
	Layers          int
	Palette         *palette.Palette
	Borders         []string // Border style names, in drawing order
	Grouping        bool
	SystemClipboard bool
}

// Editor owns the canvas layers, the property controls and the history
// they are edited through.
type Editor struct {
	layers  []*grid.Grid[int]
	active  int
	Cursor  types.Position
	palette *palette.Palette

	history      *history.System
	toolbox      *tools.Toolbox[int]
	clipboard    *clipboard.Manager
	eventManager *event.Manager

	// Property panel
	showGrid  *controls.Toggle
	gridHue   *controls.Slider
	border    *controls.Dropdown
	color     *controls.Dropdown
	title     *controls.InputField
	gridColor tcell.Color

	// Mouse gesture state
	stroking   bool
	strokeKind tools.Kind
	strokeLast types.Position
}

// NewEditor builds the layers, history, toolbox and controls. events may be nil.
func NewEditor(opts Options, events *event.Manager) (*Editor, error) {
	if opts.Layers < 1 {
		return nil, ErrNoLayers
	}
	pal := opts.Palette
	if pal == nil {
		pal = &palette.Default
	}

	e := &Editor{
		palette:      pal,
		eventManager: events,
		history:      history.NewSystem(events),
		clipboard:    clipboard.NewManager(opts.SystemClipboard),
	}
	e.history.EnableGroupingBehaviour(opts.Grouping)

	for i := 0; i < opts.Layers; i++ {
		g, err := grid.New(opts.Width, opts.Height, grid.Filled(palette.Empty))
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		e.layers = append(e.layers, g)
	}

	e.toolbox = tools.NewToolbox[int](e.history, events, e.cellDrawn, e.effectFinished, palette.Empty)
	e.toolbox.OnPick(e.pickColor)

	e.showGrid = controls.NewToggle("Grid", true, nil)
	e.gridHue = controls.NewSlider("Grid Hue", 0, 360, defaultGridHue, func(v float64) {
		e.gridColor = palette.Hue(v)
	})
	e.gridColor = palette.Hue(defaultGridHue)
	e.border = controls.NewDropdown("Border", opts.Borders, 0, nil)
	e.color = controls.NewDropdown("Color", pal.Labels(), 0, nil)
	e.title = controls.NewInputField("Title", "", nil)

	logger.Debugf("Editor: Created %dx%d canvas with %d layers", opts.Width, opts.Height, opts.Layers)
	return e, nil
}

func (e *Editor) cellDrawn(layer int, pos types.Position, value int) {
	logger.DebugTagf("draw", "Editor: layer %d cell %v = %d", layer, pos, value)
}

// SwitchTool selects the tool used by applies and strokes.
func (e *Editor) SwitchTool(kind tools.Kind) error {
	return e.toolbox.SwitchTool(kind)
}

func (e *Editor) effectFinished(layer int) {
	if e.eventManager == nil || layer < 0 || layer >= len(e.layers) {
		return
	}
	e.eventManager.Dispatch(event.TypeCanvasModified, event.CanvasModifiedData{
		Layer: layer,
		Grid:  e.layers[layer].ID(),
	})
}

// pickColor selects value in the colour dropdown, whose options start at
// the first paintable index.
func (e *Editor) pickColor(value int) {
	if !e.palette.Valid(value) || value == palette.Empty {
		return
	}
	e.color.Submit(value-1, e.history)
}

// --- Accessors ---

func (e *Editor) History() *history.System        { return e.history }
func (e *Editor) Toolbox() *tools.Toolbox[int]    { return e.toolbox }
func (e *Editor) Clipboard() *clipboard.Manager   { return e.clipboard }
func (e *Editor) Palette() *palette.Palette       { return e.palette }
func (e *Editor) Layers() []*grid.Grid[int]       { return e.layers }
func (e *Editor) ActiveLayer() int                { return e.active }
func (e *Editor) Active() *grid.Grid[int]         { return e.layers[e.active] }
func (e *Editor) Width() int                      { return e.layers[0].Width() }
func (e *Editor) Height() int                     { return e.layers[0].Height() }
func (e *Editor) Color() int                      { return e.color.Value() + 1 }
func (e *Editor) ColorName() string               { return e.palette.ColorName(e.Color()) }
func (e *Editor) ShowGrid() bool                  { return e.showGrid.Value() }
func (e *Editor) GridHue() float64                { return e.gridHue.Value() }
func (e *Editor) GridColor() tcell.Color          { return e.gridColor }
func (e *Editor) Border() int                     { return e.border.Value() }
func (e *Editor) BorderName() string              { return e.border.Selected() }
func (e *Editor) Title() string                   { return e.title.Value() }
func (e *Editor) Stroking() bool                  { return e.stroking }
func (e *Editor) GetCursor() types.Position       { return e.Cursor }
func (e *Editor) CurrentTool() tools.Kind         { return e.toolbox.Current() }

// --- Cursor ---

// MoveCursor moves the cursor by dx, dy, clamped to the canvas.
func (e *Editor) MoveCursor(dx, dy int) {
	e.SetCursor(e.Cursor.Add(dx, dy))
}

// SetCursor places the cursor, clamped to the canvas.
func (e *Editor) SetCursor(pos types.Position) {
	e.Cursor = types.Pos(
		lo.Clamp(pos.X, 0, e.Width()-1),
		lo.Clamp(pos.Y, 0, e.Height()-1),
	)
}

// --- Tools ---

func (e *Editor) kindFor(alternative bool) tools.Kind {
	if alternative {
		return tools.KindEraser
	}
	return e.toolbox.Current()
}

// ApplyAtCursor uses the current tool, or the eraser when alternative is
// set, at the cursor. Each keyboard apply is its own undo step.
func (e *Editor) ApplyAtCursor(alternative bool) error {
	e.history.EndCurrentGroup()
	return e.toolbox.Apply(e.kindFor(alternative), e.Active(), e.Cursor, e.Color(), e.active, true)
}

// BeginStroke starts a mouse gesture at pos. Everything applied until
// EndStroke is undone as one step.
func (e *Editor) BeginStroke(pos types.Position, alternative bool) error {
	if e.stroking {
		e.EndStroke()
	}
	e.SetCursor(pos)
	e.stroking = true
	e.strokeKind = e.kindFor(alternative)
	e.strokeLast = pos
	e.history.StartNewGroup(false)
	return e.toolbox.Apply(e.strokeKind, e.Active(), pos, e.Color(), e.active, false)
}

// ContinueStroke applies the gesture's tool at pos. Only painting tools
// follow the drag; fill and the read-only tools act on press alone.
func (e *Editor) ContinueStroke(pos types.Position) error {
	if !e.stroking || pos == e.strokeLast {
		return nil
	}
	e.SetCursor(pos)
	e.strokeLast = pos
	if e.strokeKind != tools.KindBrush && e.strokeKind != tools.KindEraser {
		return nil
	}
	return e.toolbox.Apply(e.strokeKind, e.Active(), pos, e.Color(), e.active, false)
}

// EndStroke closes the gesture's history group.
func (e *Editor) EndStroke() {
	if !e.stroking {
		return
	}
	e.stroking = false
	e.history.EndCurrentGroup()
}

// --- History ---

func (e *Editor) Undo() bool {
	e.EndStroke()
	return e.history.Undo()
}

func (e *Editor) Redo() bool {
	e.EndStroke()
	return e.history.Redo()
}

// --- Layers ---

// NextLayer makes the next layer active, wrapping around. The switch is
// recorded so undo returns to the previous layer.
func (e *Editor) NextLayer() {
	e.SelectLayer((e.active + 1) % len(e.layers))
}

// SelectLayer makes layer active through history.
func (e *Editor) SelectLayer(layer int) {
	if layer < 0 || layer >= len(e.layers) {
		return
	}
	e.history.AddAndExecute(history.NewAmbient(layer, e.active, e.setActiveLayer), false)
}

func (e *Editor) setActiveLayer(layer int) {
	e.active = layer
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeLayerSwitched, event.LayerSwitchedData{Layer: layer})
	}
}

// ClearLayer erases every painted cell of the active layer inside one
// mixed group. With grouping disabled each cell is its own undo step.
func (e *Editor) ClearLayer() (int, error) {
	e.EndStroke()
	g := e.Active()

	e.history.StartNewGroup(true)
	defer e.history.EndCurrentGroup()

	cleared := 0
	var applyErr error
	g.Each(func(pos types.Position, value int) {
		if applyErr != nil || value == palette.Empty {
			return
		}
		if err := e.toolbox.Apply(tools.KindEraser, g, pos, palette.Empty, e.active, false); err != nil {
			applyErr = err
			return
		}
		cleared++
	})
	return cleared, applyErr
}

// --- Property panel ---

func (e *Editor) ToggleGrid()          { e.showGrid.Flip(e.history) }
func (e *Editor) StepHue(sign int)     { e.gridHue.Step(float64(sign)*hueStep, e.history) }
func (e *Editor) CycleBorder()         { e.border.Cycle(1, e.history) }
func (e *Editor) CycleColor(delta int) { e.color.Cycle(delta, e.history) }
func (e *Editor) SetTitle(t string)    { e.title.Submit(t, e.history) }

// PanelLines describes the property panel, one control per line.
func (e *Editor) PanelLines() []string {
	check := "[ ]"
	if e.ShowGrid() {
		check = "[x]"
	}
	return []string{
		fmt.Sprintf("%s %s", check, e.showGrid.Name()),
		fmt.Sprintf("%s: %3.0f", e.gridHue.Name(), e.GridHue()),
		fmt.Sprintf("%s: %s", e.border.Name(), e.BorderName()),
		fmt.Sprintf("%s: %s", e.color.Name(), e.ColorName()),
		fmt.Sprintf("Tool: %v", e.CurrentTool()),
		fmt.Sprintf("Layer: %d/%d", e.active+1, len(e.layers)),
	}
}

// --- Clipboard ---

// Yank copies the active layer to the clipboard.
func (e *Editor) Yank() error {
	return e.clipboard.Yank(e.Active())
}

// Paste writes the clipboard onto the active layer at the cursor.
func (e *Editor) Paste() (int, error) {
	e.EndStroke()
	return e.clipboard.Paste(e.Active(), e.Cursor, e.active, e.toolbox, e.history)
}
