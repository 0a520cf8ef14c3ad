package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mobius-tri/lextet/config"
)

func TestRunSpecValidateRejectsOutOfRangeNV(t *testing.T) {
	require.ErrorIs(t, config.RunSpec{NV: 3}.Validate(), config.ErrArgument)
	require.ErrorIs(t, config.RunSpec{NV: 201}.Validate(), config.ErrArgument)
	require.NoError(t, config.RunSpec{NV: 4}.Validate())
}

func TestRunSpecValidateRejectsBadSplit(t *testing.T) {
	require.ErrorIs(t, config.RunSpec{NV: 7, Res: 2, Mod: 2}.Validate(), config.ErrArgument)
	require.NoError(t, config.RunSpec{NV: 7, Res: 1, Mod: 2}.Validate())
}

func TestParseManifestDecodesRuns(t *testing.T) {
	data := []byte("runs:\n  - nv: 6\n  - nv: 7\n    res: 0\n    mod: 2\n")
	m, err := config.ParseManifest(data)
	require.NoError(t, err)
	require.Len(t, m.Runs, 2)
	require.Equal(t, 6, m.Runs[0].NV)
	require.Equal(t, 2, m.Runs[1].Mod)
}

func TestParseManifestRejectsEmpty(t *testing.T) {
	_, err := config.ParseManifest([]byte("runs: []\n"))
	require.ErrorIs(t, err, config.ErrArgument)
}
