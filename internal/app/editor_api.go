// internal/app/editor_api.go
package app

import (
	"fmt"

	"github.com/bethropolis/daub/internal/event"
	"github.com/bethropolis/daub/internal/logger"
	"github.com/bethropolis/daub/internal/plugin"
	"github.com/bethropolis/daub/internal/types"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
type appEditorAPI struct {
	app *App // Reference back to the main application
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Canvas Access ---

func (api *appEditorAPI) LayerCount() int {
	return len(api.app.editor.Layers())
}

func (api *appEditorAPI) ActiveLayer() int {
	return api.app.editor.ActiveLayer()
}

func (api *appEditorAPI) LayerCells(layer int) ([][]int, error) {
	layers := api.app.editor.Layers()
	if layer < 0 || layer >= len(layers) {
		return nil, fmt.Errorf("layer %d out of range [1, %d]", layer+1, len(layers))
	}
	return layers[layer].Cells(), nil
}

func (api *appEditorAPI) ColorName(index int) string {
	return api.app.editor.Palette().ColorName(index)
}

func (api *appEditorAPI) GetCursor() types.Position {
	return api.app.editor.GetCursor()
}

// --- History ---

func (api *appEditorAPI) UndoCount() int {
	return api.app.editor.History().UndoCount()
}

func (api *appEditorAPI) RedoCount() int {
	return api.app.editor.History().RedoCount()
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if api.app.modeHandler == nil {
		logger.Warnf("API: RegisterCommand called before mode handler was ready")
		return fmt.Errorf("mode handler not ready")
	}
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.SetStatusMessage(format, args...)
}
