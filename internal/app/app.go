// internal/app/app.go
package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/daub/internal/config"
	"github.com/bethropolis/daub/internal/core"
	"github.com/bethropolis/daub/internal/event"
	"github.com/bethropolis/daub/internal/input"
	"github.com/bethropolis/daub/internal/logger"
	"github.com/bethropolis/daub/internal/modehandler"
	"github.com/bethropolis/daub/internal/palette"
	"github.com/bethropolis/daub/internal/plugin"
	"github.com/bethropolis/daub/internal/statusbar"
	"github.com/bethropolis/daub/internal/tui"
	"github.com/bethropolis/daub/internal/types"
)

// App encapsulates the core components and main loop of the editor.
//
// Everything that touches the history runs on the goroutine that calls
// Run; a separate goroutine only polls the terminal and forwards events.
type App struct {
	config        *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	editorAPI     plugin.EditorAPI
	layout        tui.Layout

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
	terminal      chan tcell.Event
}

// NewApp creates and initializes a new application on the real terminal.
func NewApp(cfg *config.Config) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	a, err := newApp(cfg, tuiManager)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

// NewAppWithScreen creates an application drawing on screen, such as a
// tcell simulation screen.
func NewAppWithScreen(cfg *config.Config, screen tcell.Screen) (*App, error) {
	tuiManager, err := tui.NewWithScreen(screen)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return newApp(cfg, tuiManager)
}

func newApp(cfg *config.Config, tuiManager *tui.TUI) (*App, error) {
	eventManager := event.NewManager()
	pal := palette.Load(cfg.Canvas.PaletteFile)

	editor, err := core.NewEditor(core.Options{
		Width:           cfg.Canvas.Width,
		Height:          cfg.Canvas.Height,
		Layers:          cfg.Canvas.Layers,
		Palette:         pal,
		Borders:         tui.BorderNames,
		Grouping:        cfg.History.Grouping,
		SystemClipboard: cfg.Editor.SystemClipboard,
	}, eventManager)
	if err != nil {
		return nil, fmt.Errorf("canvas initialization failed: %w", err)
	}

	sbConfig := statusbar.DefaultConfig()
	sbConfig.MessageTimeout = config.MessageTimeout
	statusBar := statusbar.New(sbConfig)

	quitChan := make(chan struct{})
	layout := tui.NewLayout(editor.Width(), editor.Height())

	// --- Create Mode Handler ---
	modeHandler := modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		StatusBar:      statusBar,
		Layout:         layout,
		QuitSignal:     quitChan,
	})

	a := &App{
		config:        cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		modeHandler:   modeHandler,
		layout:        layout,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
		terminal:      make(chan tcell.Event),
	}
	a.editorAPI = newEditorAPI(a)

	editor.Toolbox().OnSelect(func(pos types.Position, value int) {
		a.statusBar.SetTemporaryMessage("Cell %d,%d: %s", pos.X, pos.Y, pal.ColorName(value))
	})

	// --- Subscribe Core Components (App level wiring) ---
	eventManager.Subscribe(event.TypeUndoHistoryChanged, a.handleHistoryChanged)
	eventManager.Subscribe(event.TypeRedoHistoryChanged, a.handleHistoryChanged)
	eventManager.Subscribe(event.TypeToolSwitched, a.handleToolSwitched)
	eventManager.Subscribe(event.TypeLayerSwitched, a.handleLayerSwitched)
	eventManager.Subscribe(event.TypeCanvasModified, a.handleCanvasModified)

	registerAppCommands(a)

	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	a.pluginManager.InitializePlugins(a.editorAPI)

	logger.Infof("App: %dx%d canvas, %d layers, palette '%s', grouping %v",
		editor.Width(), editor.Height(), len(editor.Layers()), pal.Name, cfg.History.Grouping)
	return a, nil
}

// Run starts the application's main event and drawing loops and returns
// when the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	go a.pollEvents()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("%s - b/e/f/i/s tools | [ ] colour | u/r undo/redo | : commands | q quit", config.AppName)
	a.requestRedraw()

	// Expired status messages only disappear on redraw.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case ev := <-a.terminal:
			if a.handleTerminalEvent(ev) {
				a.requestRedraw()
			}
		case <-a.redrawRequest:
			a.drawCanvas()
		case <-ticker.C:
			a.drawCanvas()
		}
	}
}

// pollEvents forwards terminal events to the main loop until the screen
// is finalized or the app quits.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.terminal <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleTerminalEvent routes one terminal event and reports whether a
// redraw is needed.
func (a *App) handleTerminalEvent(ev tcell.Event) bool {
	switch eventData := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(eventData)
	case *tcell.EventMouse:
		return a.modeHandler.HandleMouseEvent(eventData)
	}
	return false
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}

// Editor returns the canvas editor.
func (a *App) Editor() *core.Editor {
	return a.editor
}

// GetModeHandler allows the API adapter to access the mode handler for command registration.
func (a *App) GetModeHandler() *modehandler.ModeHandler {
	return a.modeHandler
}
