package chego

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranspositionTableStoreAndLookup(t *testing.T) {
	tt := NewTranspositionTable(1)
	hash := uint64(0xDEADBEEF)

	_, ok := tt.LookupAtLeast(hash, 1)
	require.False(t, ok)

	tt.Update(hash, 4, 120, NewMove(SE4, SE2, MoveNormal), ttBoundExact)

	entry, ok := tt.LookupAtLeast(hash, 4)
	require.True(t, ok)
	require.EqualValues(t, 120, entry.score)

	_, ok = tt.LookupAtLeast(hash, 5)
	require.False(t, ok, "a shallower stored search must not satisfy a deeper depth request")

	entry, ok = tt.LookupAny(hash)
	require.True(t, ok)
	require.Equal(t, ttBoundExact, entry.bound)
}

func TestTranspositionTableShallowerSearchDoesNotReplaceDeeper(t *testing.T) {
	tt := NewTranspositionTable(1)
	hash := uint64(12345)

	tt.Update(hash, 8, 50, NewMove(SE4, SE2, MoveNormal), ttBoundExact)
	tt.Update(hash, 2, -50, NewMove(SD4, SD2, MoveNormal), ttBoundExact)

	entry, ok := tt.LookupAny(hash)
	require.True(t, ok)
	require.EqualValues(t, 8, entry.depth)
	require.EqualValues(t, 50, entry.score)
}

func TestTranspositionTableLoadFactor(t *testing.T) {
	tt := NewTranspositionTable(1)
	require.Zero(t, tt.LoadFactor())
	tt.Update(1, 1, 0, 0, ttBoundExact)
	require.Greater(t, tt.LoadFactor(), 0.0)
}
