package search_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mobius-tri/lextet/classify"
	"github.com/mobius-tri/lextet/search"
)

func TestRunNVFourEmitsNothing(t *testing.T) {
	dir := t.TempDir()
	sink, err := classify.NewSink(dir)
	require.NoError(t, err)

	summary, err := search.Run(context.Background(), 4, search.WithSink(sink))
	require.NoError(t, err)
	require.Equal(t, 0, summary.Triangulations)
	require.Empty(t, summary.RootDegreesRun)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRunNVFiveCompletesWithoutError(t *testing.T) {
	dir := t.TempDir()
	sink, err := classify.NewSink(dir)
	require.NoError(t, err)

	summary, err := search.Run(context.Background(), 5, search.WithSink(sink))
	require.NoError(t, err)
	require.NotEmpty(t, summary.RootDegreesRun)
	require.GreaterOrEqual(t, summary.Triangulations, 0)
}

// TestRunIsIdempotent checks §8's idempotence property: two independent runs
// over the same NV must agree on every counter and emit byte-identical
// files, down to the file set and each file's contents.
func TestRunIsIdempotent(t *testing.T) {
	run := func() (search.Summary, map[string]string) {
		dir := t.TempDir()
		sink, err := classify.NewSink(dir)
		require.NoError(t, err)

		summary, err := search.Run(context.Background(), 5, search.WithSink(sink))
		require.NoError(t, err)
		require.NoError(t, sink.Close())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		files := make(map[string]string, len(entries))
		for _, e := range entries {
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			require.NoError(t, err)
			files[e.Name()] = string(data)
		}
		return summary, files
	}

	summaryA, filesA := run()
	summaryB, filesB := run()

	if diff := cmp.Diff(summaryA, summaryB); diff != "" {
		t.Errorf("Run is not idempotent, summary differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(filesA, filesB); diff != "" {
		t.Errorf("Run is not idempotent, emitted files differ (-first +second):\n%s", diff)
	}
}

// TestRunWithIrreducibleOnlyNarrowsRootDegreesAndLeaves exercises §8 scenario
// S4: -i both drops the d=n-2 root-edge-degree pass and rejects every
// contractible-edge leaf the wider pass would otherwise keep, so it must
// complete without error, run a strictly smaller root-degree range, and emit
// no more triangulations than the unrestricted run over the same NV.
func TestRunWithIrreducibleOnlyNarrowsRootDegreesAndLeaves(t *testing.T) {
	const nv = 6

	dirDefault := t.TempDir()
	sinkDefault, err := classify.NewSink(dirDefault)
	require.NoError(t, err)
	summaryDefault, err := search.Run(context.Background(), nv, search.WithSink(sinkDefault))
	require.NoError(t, err)

	dirIrreducible := t.TempDir()
	sinkIrreducible, err := classify.NewSink(dirIrreducible)
	require.NoError(t, err)
	summaryIrreducible, err := search.Run(context.Background(), nv,
		search.WithSink(sinkIrreducible), search.WithIrreducibleOnly())
	require.NoError(t, err)

	require.Less(t, len(summaryIrreducible.RootDegreesRun), len(summaryDefault.RootDegreesRun))
	require.LessOrEqual(t, summaryIrreducible.Triangulations, summaryDefault.Triangulations)
}

func TestWithSplitRejectsOutOfRangeResidue(t *testing.T) {
	require.Panics(t, func() { search.WithSplit(2, 2) })
	require.Panics(t, func() { search.WithSplit(-1, 2) })
	require.NotPanics(t, func() { search.WithSplit(0, 2) })
}
