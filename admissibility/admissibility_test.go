package admissibility_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mobius-tri/lextet/admissibility"
	"github.com/mobius-tri/lextet/core"
)

func addPicked(t *testing.T, c *core.Complex, v0, v1, v2, v3 int) []int {
	t.Helper()
	_, ncP, err := c.AddTet(core.Sorted(v0, v1, v2, v3), true)
	require.NoError(t, err)
	return ncP
}

func TestPreCheckRejectsClosedVertex(t *testing.T) {
	c, err := core.NewComplex(5)
	require.NoError(t, err)
	addPicked(t, c, 0, 1, 2, 3)
	addPicked(t, c, 0, 1, 2, 4)
	addPicked(t, c, 0, 1, 3, 4)
	nc := addPicked(t, c, 0, 2, 3, 4)
	require.Contains(t, nc, 0)
	addPicked(t, c, 1, 2, 3, 4)

	// vertex 0's link is now a closed tetrahedron boundary; any further
	// tetrahedron at 0 must be rejected by PreCheck.
	require.False(t, admissibility.PreCheck(c, core.Sorted(0, 1, 2, 5)))
}

func TestLinkConnectedOnFourSimplexBoundary(t *testing.T) {
	c, err := core.NewComplex(5)
	require.NoError(t, err)
	addPicked(t, c, 0, 1, 2, 3)
	addPicked(t, c, 0, 1, 2, 4)
	addPicked(t, c, 0, 1, 3, 4)
	addPicked(t, c, 0, 2, 3, 4)
	addPicked(t, c, 1, 2, 3, 4)

	require.True(t, admissibility.LinkConnected(c, 0))
	require.True(t, admissibility.LinkOfLinkConnected(c, 0, 1))
}

// TestContractibleOnFourSimplexBoundary exercises both of contractible()'s
// counters (common neighbors and common neighboring faces) on the boundary
// of the 4-simplex, the minimal triangulation of S^3: every edge there (an
// edge of the unique 5-vertex triangulation) is, as expected, contractible
// — the predicate exists to reject exactly this kind of reducible edge once
// a triangulation is past the handful of vertices where it would reject
// everything.
func TestContractibleOnFourSimplexBoundary(t *testing.T) {
	c, err := core.NewComplex(5)
	require.NoError(t, err)
	addPicked(t, c, 0, 1, 2, 3)
	addPicked(t, c, 0, 1, 2, 4)
	addPicked(t, c, 0, 1, 3, 4)
	addPicked(t, c, 0, 2, 3, 4)
	addPicked(t, c, 1, 2, 3, 4)

	require.True(t, admissibility.Contractible(c, 0, 1))
}
