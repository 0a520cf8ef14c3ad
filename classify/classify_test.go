package classify_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mobius-tri/lextet/classify"
	"github.com/mobius-tri/lextet/core"
)

func fourSimplexBoundary(t *testing.T) *core.Complex {
	t.Helper()
	c, err := core.NewComplex(5)
	require.NoError(t, err)
	tets := [][4]int{{0, 1, 2, 3}, {0, 1, 2, 4}, {0, 1, 3, 4}, {0, 2, 3, 4}, {1, 2, 3, 4}}
	for _, tt := range tets {
		_, _, err := c.AddTet(core.Sorted(tt[0], tt[1], tt[2], tt[3]), true)
		require.NoError(t, err)
	}
	return c
}

func TestClassifyFourSimplexBoundaryIsFiveSpheres(t *testing.T) {
	c := fourSimplexBoundary(t)
	key, err := classify.Classify(c)
	require.NoError(t, err)

	require.Equal(t, 5, key.NV)
	require.Equal(t, 0, key.Chi)
	require.Equal(t, 5, key.E2)
	require.Equal(t, 0, key.E1+key.E0T+key.E0K)
	require.Equal(t, "3-manifolds_5v_5_0_0_0_0_0_0_0_0_0_Eul0.lex", key.FileName())
}

func TestEncodeLineBase52WritesFourLabelsPerTetrahedron(t *testing.T) {
	c := fourSimplexBoundary(t)
	line := classify.EncodeLine(c.NV(), c.Picks())
	require.Len(t, line, 4*len(c.Picks()))
	require.Equal(t, byte('a'), line[0])
}

func TestSinkAppendsAndFlushes(t *testing.T) {
	dir := t.TempDir()
	sink, err := classify.NewSink(dir)
	require.NoError(t, err)

	key := classify.Key{NV: 5, Chi: 0}
	require.NoError(t, sink.Emit(key, "abcdabceabdeacde"))
	require.NoError(t, sink.Emit(key, "abcdabceabdeacde"))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(filepath.Join(dir, key.FileName()))
	require.NoError(t, err)
	require.Equal(t, "abcdabceabdeacde\nabcdabceabdeacde\n", string(data))
}
