// plugins/cellcount/cellcount.go
package cellcount

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/bethropolis/daub/internal/event"
	"github.com/bethropolis/daub/internal/palette"
	"github.com/bethropolis/daub/internal/plugin"
)

// Ensure CellCount implements plugin.Plugin
var _ plugin.Plugin = (*CellCount)(nil)

// CellCount reports how many cells of each colour a layer holds and how
// many tool effects have finished since startup.
type CellCount struct {
	api   plugin.EditorAPI
	edits int
}

// New creates a new instance of the CellCount plugin.
func New() *CellCount {
	return &CellCount{}
}

func (p *CellCount) Name() string {
	return "CellCount"
}

// Initialize registers the :cells command and starts counting edits.
func (p *CellCount) Initialize(api plugin.EditorAPI) error {
	p.api = api

	if err := api.RegisterCommand("cells", p.executeCellCount); err != nil {
		return fmt.Errorf("failed to register 'cells' command: %w", err)
	}
	api.SubscribeEvent(event.TypeCanvasModified, func(event.Event) bool {
		p.edits++
		return false
	})
	return nil
}

func (p *CellCount) Shutdown() error {
	return nil
}

// Edits returns the number of finished tool effects seen so far.
func (p *CellCount) Edits() int { return p.edits }

// executeCellCount runs for ":cells [layer]". Layers are numbered from 1.
func (p *CellCount) executeCellCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("cellcount plugin not initialized with API")
	}

	layer := p.api.ActiveLayer()
	if len(args) > 0 {
		var n int
		if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n < 1 || n > p.api.LayerCount() {
			return fmt.Errorf("no layer %q", args[0])
		}
		layer = n - 1
	}

	cells, err := p.api.LayerCells(layer)
	if err != nil {
		return err
	}
	p.api.SetStatusMessage("%s", Summarize(layer, cells, p.api.ColorName, p.edits))
	return nil
}

// Summarize formats the colour counts of one layer, skipping empty cells.
func Summarize(layer int, cells [][]int, colorName func(int) string, edits int) string {
	counts := lo.CountValues(lo.Flatten(cells))
	delete(counts, palette.Empty)

	keys := lo.Keys(counts)
	sort.Ints(keys)
	parts := lo.Map(keys, func(k int, _ int) string {
		return fmt.Sprintf("%s %d", colorName(k), counts[k])
	})

	total := lo.Sum(lo.Values(counts))
	msg := fmt.Sprintf("Layer %d: %d cells", layer+1, total)
	if len(parts) > 0 {
		msg += " (" + strings.Join(parts, ", ") + ")"
	}
	return fmt.Sprintf("%s, %d edits", msg, edits)
}
