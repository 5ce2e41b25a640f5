package tools

import (
	"github.com/bethropolis/daub/internal/grid"
	"github.com/bethropolis/daub/internal/types"
)

// Bucket replaces the 4-connected region sharing the seed's value.
//
// The fill is a scanline fill driven by an explicit stack of pending row
// seeds. Every seed is the leftmost matching cell of its row run at the
// time it is pushed; a popped seed that no longer holds the overridden
// value was reached through another run and is skipped.
type Bucket[T comparable] struct {
	callbacks[T]

	// Per-invocation state.
	grid            *grid.Grid[T]
	value           T
	valueToOverride T
	pending         []types.Position
	processed       []types.Position
}

// NewBucket creates a fill tool.
func NewBucket[T comparable](sink GraphicSink[T], finished EffectFinished) *Bucket[T] {
	return &Bucket[T]{callbacks: callbacks[T]{sink: sink, finished: finished}}
}

// ApplyEffect fills from seed. If the seed already holds value nothing is
// written, no callback fires and LastProcessedPositions is empty.
func (b *Bucket[T]) ApplyEffect(g *grid.Grid[T], seed types.Position, value T, layer int) error {
	b.processed = nil
	b.pending = b.pending[:0]

	current, err := g.At(seed)
	if err != nil {
		return err
	}
	if current == value {
		return nil
	}

	b.grid = g
	b.value = value
	b.valueToOverride = current
	defer func() { b.grid = nil }()

	b.pending = append(b.pending, b.leftmost(seed))
	for len(b.pending) > 0 {
		start := b.pending[len(b.pending)-1]
		b.pending = b.pending[:len(b.pending)-1]
		if !b.matches(start) {
			continue
		}
		b.scanRow(start, layer)
	}

	b.done(layer)
	return nil
}

// scanRow converts the run starting at start and queues the runs touching
// it from above and below, one seed per run.
func (b *Bucket[T]) scanRow(start types.Position, layer int) {
	aboveQueued, belowQueued := false, false
	for pos := start; ; pos = pos.Right() {
		aboveQueued = b.queueNeighbour(pos.Up(), aboveQueued)
		belowQueued = b.queueNeighbour(pos.Down(), belowQueued)

		b.grid.MustSet(pos, b.value)
		b.drawn(layer, pos, b.value)
		b.processed = append(b.processed, pos)

		if !b.matches(pos.Right()) {
			return
		}
	}
}

// queueNeighbour pushes the run containing n unless the run is already queued.
// It returns whether the run n belongs to is queued.
func (b *Bucket[T]) queueNeighbour(n types.Position, queued bool) bool {
	if !b.matches(n) {
		return false
	}
	if !queued {
		b.pending = append(b.pending, b.leftmost(n))
	}
	return true
}

func (b *Bucket[T]) leftmost(pos types.Position) types.Position {
	for b.matches(pos.Left()) {
		pos = pos.Left()
	}
	return pos
}

func (b *Bucket[T]) matches(pos types.Position) bool {
	if !b.grid.InBounds(pos) {
		return false
	}
	return b.grid.MustAt(pos) == b.valueToOverride
}

// LastProcessedPositions returns the cells written by the most recent fill,
// in write order.
func (b *Bucket[T]) LastProcessedPositions() []types.Position {
	out := make([]types.Position, len(b.processed))
	copy(out, b.processed)
	return out
}

// ApplyEffectTo writes value to every position. It is the batch write-back
// used to undo a fill. Positions are validated before anything is written.
func (b *Bucket[T]) ApplyEffectTo(g *grid.Grid[T], positions []types.Position, value T, layer int) error {
	if len(positions) == 0 {
		return nil
	}
	for _, pos := range positions {
		if _, err := g.At(pos); err != nil {
			return err
		}
	}
	for _, pos := range positions {
		g.MustSet(pos, value)
		b.drawn(layer, pos, value)
	}
	b.done(layer)
	return nil
}

func (b *Bucket[T]) String() string { return "Bucket Tool" }
