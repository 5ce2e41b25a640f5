package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/daub/internal/core/history"
	"github.com/bethropolis/daub/internal/grid"
	"github.com/bethropolis/daub/internal/types"
)

func TestUseToolActionRoundTrip(t *testing.T) {
	g := newGrid(t, 3, 3, 0)
	a, err := NewUseToolAction[int](NewBrush[int](nil, nil), Request[int]{
		Grid: g, Pos: types.Pos(1, 2), Value: 6, LastValue: 0, Layer: 0,
	})
	require.NoError(t, err)

	assert.False(t, a.NothingChanged())
	assert.Equal(t, g.ID(), a.AffectedConstruct())

	a.Execute()
	assert.Equal(t, 6, g.MustAt(types.Pos(1, 2)))
	a.Undo()
	assert.Equal(t, 0, g.MustAt(types.Pos(1, 2)))
	assert.Equal(t, "Brush Tool: 0 -> 6 at 0-(1,2)", a.String())
}

func TestUseToolActionRejectsBadPosition(t *testing.T) {
	g := newGrid(t, 3, 3, 0)
	_, err := NewUseToolAction[int](NewBrush[int](nil, nil), Request[int]{Grid: g, Pos: types.Pos(3, 3), Value: 1})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = NewUseBucketToolAction(NewBucket[int](nil, nil), Request[int]{Grid: g, Pos: types.Pos(0, -1), Value: 1})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestUseToolActionWithoutGridUsesFallback(t *testing.T) {
	var got []int
	a, err := NewUseToolAction[int](NewBrush[int](nil, nil), Request[int]{
		Value: 3, LastValue: 1, Fallback: func(v int) { got = append(got, v) },
	})
	require.NoError(t, err)

	assert.True(t, a.AffectedConstruct().IsZero())
	a.Execute()
	a.Undo()
	assert.Equal(t, []int{3, 1}, got)
}

func TestUseBucketToolActionRestoresTouchedSet(t *testing.T) {
	g := gridFromRows(t,
		"0010",
		"0010",
		"1110",
	)
	before := g.Clone()
	bucket := NewBucket[int](nil, nil)
	a, err := NewUseBucketToolAction(bucket, Request[int]{Grid: g, Pos: types.Pos(3, 0), Value: 4, LastValue: 0})
	require.NoError(t, err)

	a.Execute()
	bucketAction := a.Unwrap().(*UseBucketToolAction[int])
	assert.Len(t, bucketAction.Affected(), 3)
	assert.Equal(t, 0, g.MustAt(types.Pos(0, 0)), "other region untouched")

	a.Undo()
	assert.True(t, g.Equal(before))

	a.Execute()
	assert.Equal(t, 4, g.MustAt(types.Pos(3, 2)))
}

func TestBucketActionThroughHistory(t *testing.T) {
	sys := history.NewSystem(nil)
	g := newGrid(t, 4, 4, 0)
	before := g.Clone()
	a, err := NewUseBucketToolAction(NewBucket[int](nil, nil), Request[int]{Grid: g, Pos: types.Pos(1, 1), Value: 5, LastValue: 0})
	require.NoError(t, err)

	sys.AddAndExecute(a, false)
	assert.False(t, g.Contains(0))

	require.True(t, sys.Undo())
	assert.True(t, g.Equal(before), "all 16 cells restored")

	require.True(t, sys.Redo())
	assert.False(t, g.Contains(0))
}

func TestBucketActionNothingChanged(t *testing.T) {
	g := newGrid(t, 2, 2, 3)
	a, err := NewUseBucketToolAction(NewBucket[int](nil, nil), Request[int]{Grid: g, Pos: types.Pos(0, 0), Value: 3, LastValue: 3})
	require.NoError(t, err)
	assert.True(t, a.NothingChanged())

	_, err = NewUseBucketToolAction[int](nil, Request[int]{Grid: g})
	assert.Error(t, err)
}
