package classify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mobius-tri/lextet/classify"
	"github.com/mobius-tri/lextet/matrix"
)

// TestRank2BettiNumberDistinguishesCycleFromNone exercises the cols-rank
// computation §4.5 calls the first Betti number, with two small
// hand-verified boundary matrices standing in for a torus-style link (one
// which has a 2-cycle, so its boundary map has a 1-dimensional kernel) and a
// Klein-bottle-style link (one with none, so its boundary map is injective).
// A synthetic matrix is used rather than a named triangulation's actual face
// list, since hand-deriving and hand-verifying a real closed non-orientable
// triangulation's boundary matrix without the Go toolchain is error-prone;
// this still exercises exactly the arithmetic classify.Classify depends on.
func TestRank2BettiNumberDistinguishesCycleFromNone(t *testing.T) {
	// Two faces over the same edge set, identically oriented: their
	// difference is the zero vector, i.e. the (1,-1) combination of columns
	// is a 2-cycle. rank = 1, cols = 2, betti = cols-rank = 1 (torus-style).
	cycle, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	for _, col := range []int{0, 1} {
		require.NoError(t, cycle.Set(0, col, 1))
		require.NoError(t, cycle.Set(1, col, 1))
		require.NoError(t, cycle.Set(2, col, -1))
	}
	rank, err := classify.Rank2(cycle)
	require.NoError(t, err)
	require.Equal(t, 1, rank)
	require.Equal(t, 1, cycle.Cols()-rank)

	// Two faces over disjoint edge sets: the columns are linearly
	// independent, so no non-trivial combination is a cycle. rank = 2,
	// cols = 2, betti = 0 (Klein-bottle-style).
	noCycle, err := matrix.NewDense(4, 2)
	require.NoError(t, err)
	require.NoError(t, noCycle.Set(0, 0, 1))
	require.NoError(t, noCycle.Set(1, 0, 1))
	require.NoError(t, noCycle.Set(2, 1, 1))
	require.NoError(t, noCycle.Set(3, 1, 1))
	rank, err = classify.Rank2(noCycle)
	require.NoError(t, err)
	require.Equal(t, 2, rank)
	require.Equal(t, 0, noCycle.Cols()-rank)
}
