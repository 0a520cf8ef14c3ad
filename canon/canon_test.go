package canon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mobius-tri/lextet/canon"
	"github.com/mobius-tri/lextet/core"
)

func TestIsMinLexAcceptsCanonicalRootFan(t *testing.T) {
	c, err := core.NewComplex(5)
	require.NoError(t, err)

	tets := [][4]int{{0, 1, 2, 3}, {0, 1, 2, 4}, {0, 1, 3, 4}}
	for _, tt := range tets {
		_, _, err := c.AddTet(core.Sorted(tt[0], tt[1], tt[2], tt[3]), true)
		require.NoError(t, err)
	}

	cache := canon.NewCache()
	require.True(t, canon.IsMinLex(c, cache))
}

func TestCacheAddDedupes(t *testing.T) {
	cache := canon.NewCache()
	cache.Add(2, map[int]int{0: 1, 1: 0, 2: 2}, 3)
	cache.Add(2, map[int]int{0: 1, 1: 0, 2: 2}, 3)
	require.Len(t, cache.Witnesses(2), 1)

	cache.Purge(2)
	require.Empty(t, cache.Witnesses(2))
}
