// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/daub/internal/event"
	"github.com/bethropolis/daub/internal/types"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes the words after the command name and returns an error.
type CommandFunc func(args []string) error

// EditorAPI defines the methods plugins can use to interact with the canvas.
// Plugins read the canvas; every edit goes through the editor's history.
type EditorAPI interface {
	// --- Canvas Access (Read-Only) ---
	LayerCount() int
	ActiveLayer() int
	LayerCells(layer int) ([][]int, error) // Copy of the layer, row-major
	ColorName(index int) string
	GetCursor() types.Position

	// --- History ---
	UndoCount() int
	RedoCount() int

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded. Plugins
	// subscribe to events and register commands here.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
