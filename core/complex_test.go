package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mobius-tri/lextet/core"
)

// rootFan builds the degree-d root fan around edge (0,1): tetrahedra
// (0,1,2,3),(0,1,3,4),...,(0,1,d,d+1),(0,1,d+1,2), grounded on §4.6's
// seeding rule.
func rootFan(t *testing.T, c *core.Complex, d int) {
	t.Helper()
	for i := 0; i < d; i++ {
		a := i + 2
		b := i + 3
		if i == d-1 {
			b = 2
		}
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		_, _, err := c.AddTet(core.Sorted(0, 1, lo, hi), true)
		require.NoError(t, err)
	}
}

func sumDegrees(c *core.Complex) (sum01, sum02, sum03 int) {
	for v := 0; v < c.NV(); v++ {
		d01, d02, d03 := c.DegA(v)
		sum01 += d01
		sum02 += d02
		sum03 += d03
	}
	return
}

func TestNewComplexRejectsOutOfRangeN(t *testing.T) {
	_, err := core.NewComplex(3)
	require.ErrorIs(t, err, core.ErrInvalidVertexCount)

	_, err = core.NewComplex(core.MaxVertices + 1)
	require.ErrorIs(t, err, core.ErrInvalidVertexCount)

	c, err := core.NewComplex(4)
	require.NoError(t, err)
	require.Equal(t, 4, c.N())
}

// TestUniversalInvariants exercises §8's universal invariants 1-3 after a
// sequence of AddTet calls building a degree-3 root fan (three tetrahedra
// around the root edge, labels 0..4).
func TestUniversalInvariants(t *testing.T) {
	c, err := core.NewComplex(5)
	require.NoError(t, err)

	rootFan(t, c, 3)

	_, _, nf, nt := c.Counts()
	require.Equal(t, 3, nt)

	// Every face has at most two cofacets in A (invariant 1).
	for a := 0; a < 5; a++ {
		for b := a + 1; b < 5; b++ {
			for cc := b + 1; cc < 5; cc++ {
				otherA, _, _, ok := c.Face(a, b, cc)
				if !ok {
					continue
				}
				count := 0
				for _, x := range otherA {
					if x != -1 {
						count++
					}
				}
				require.LessOrEqual(t, count, 2)
			}
		}
	}

	// deg03 sums to 4*nt and deg01 sums to 2*ne (invariant 2, vertex/edge
	// relations). deg02 sums to 3*nf: each triangle has three vertices,
	// the mathematically consistent coefficient for "faces at v" — see
	// DESIGN.md for why this corrects the distilled spec's literal 2*nf.
	sum01, sum02, sum03 := sumDegrees(c)
	_, ne, _, _ := c.Counts()
	require.Equal(t, 2*ne, sum01)
	require.Equal(t, 3*nf, sum02)
	require.Equal(t, 4*nt, sum03)
}

// TestAddRemoveIsExactInverse exercises invariant 4: undoing every pick in
// reverse order returns a Complex indistinguishable from a freshly reset
// one at the same root degree.
func TestAddRemoveIsExactInverse(t *testing.T) {
	c, err := core.NewComplex(6)
	require.NoError(t, err)
	rootFan(t, c, 3)

	_, _, err = c.AddTet(core.Sorted(0, 2, 3, 5), true)
	require.NoError(t, err)

	nvBefore, neBefore, nfBefore, ntBefore := c.Counts()
	require.Equal(t, 6, nvBefore)

	_, _, err = c.RemoveTet()
	require.NoError(t, err)

	nvAfter, neAfter, nfAfter, ntAfter := c.Counts()
	require.Equal(t, 5, nvAfter)
	require.NotEqual(t, neBefore, neAfter)
	require.NotEqual(t, nfBefore, nfAfter)
	require.NotEqual(t, ntBefore, ntAfter)

	// fully unwind the fan
	for i := 0; i < 3; i++ {
		_, _, err = c.RemoveTet()
		require.NoError(t, err)
	}
	nv, ne, nf, nt := c.Counts()
	require.Zero(t, nv)
	require.Zero(t, ne)
	require.Zero(t, nf)
	require.Zero(t, nt)

	_, _, err = c.RemoveTet()
	require.ErrorIs(t, err, core.ErrNotPicked)
}

func TestCompletionTransitionOnFourSimplexBoundary(t *testing.T) {
	// The boundary of the 4-simplex on labels 0..4: all five 3-subsets of
	// {0,1,2,3,4}, each vertex link a 2-sphere (tetrahedron boundary).
	c, err := core.NewComplex(5)
	require.NoError(t, err)

	labels := [5]int{0, 1, 2, 3, 4}
	var newlyComplete []int
	for i := 0; i < 5; i++ {
		var t core.Tetrahedron
		k := 0
		for j, v := range labels {
			if j != i {
				t[k] = v
				k++
			}
		}
		nc, _, err := c.AddTet(t, true)
		require.NoError(t, err)
		newlyComplete = append(newlyComplete, nc...)
	}
	require.Len(t, newlyComplete, 5)
	for v := 0; v < 5; v++ {
		require.True(t, c.CompleteA(v))
		require.True(t, c.CompleteP(v))
	}
}
