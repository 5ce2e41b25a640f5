// internal/event/event.go
package event

import "github.com/bethropolis/daub/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// History events
	TypeUndoHistoryChanged // Undo stack pushed, popped or cleared
	TypeRedoHistoryChanged // Redo stack pushed, popped or cleared

	// Canvas events
	TypeCanvasModified // A tool finished writing cells on a layer
	TypeToolSwitched   // The toolbox changed its current tool
	TypeLayerSwitched  // The active layer changed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

func (t Type) String() string {
	switch t {
	case TypeUndoHistoryChanged:
		return "UndoHistoryChanged"
	case TypeRedoHistoryChanged:
		return "RedoHistoryChanged"
	case TypeCanvasModified:
		return "CanvasModified"
	case TypeToolSwitched:
		return "ToolSwitched"
	case TypeLayerSwitched:
		return "LayerSwitched"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	default:
		return "Unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// HistoryChangedData carries the stack sizes after the change.
type HistoryChangedData struct {
	UndoCount int
	RedoCount int
}

// CanvasModifiedData identifies the layer a tool just finished drawing on.
type CanvasModifiedData struct {
	Layer int
	Grid  types.ConstructID
}

// ToolSwitchedData names the newly selected tool.
type ToolSwitchedData struct {
	Tool string
}

// LayerSwitchedData carries the new active layer index.
type LayerSwitchedData struct {
	Layer int
}

type AppReadyData struct{}

type AppQuitData struct{}
