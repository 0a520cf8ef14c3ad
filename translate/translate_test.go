package translate_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mobius-tri/lextet/translate"
)

func TestDecodeLineIsEncodeLineInverse(t *testing.T) {
	tets, err := translate.DecodeLine("abcdabceabdeacde")
	require.NoError(t, err)
	require.Equal(t, [][4]int{
		{1, 2, 3, 4}, {1, 2, 3, 5}, {1, 2, 4, 5}, {1, 3, 4, 5},
	}, tets)
}

func TestDecodeLineRejectsBadLength(t *testing.T) {
	_, err := translate.DecodeLine("abc")
	require.Error(t, err)
}

func TestEncodeGAPRendersNestedArray(t *testing.T) {
	tets := [][4]int{{1, 2, 3, 4}, {1, 2, 3, 5}}
	require.Equal(t, "[[1,2,3,4],[1,2,3,5]]", translate.EncodeGAP(tets))
}

func TestRunTranslatesMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	name := "3-manifolds_5v_5_0_0_0_0_0_0_0_0_0_Eul0.lex"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("abcdabceabdeacde\n"), 0o644))

	var diag bytes.Buffer
	require.NoError(t, translate.Run(dir, 5, &diag))
	require.Contains(t, diag.String(), "## 1, f = (5,")

	out, err := os.ReadFile(filepath.Join(dir, "3-manifolds_5v_5_0_0_0_0_0_0_0_0_0_Eul0"))
	require.NoError(t, err)
	require.Equal(t, "[[1,2,3,4],[1,2,3,5],[1,2,4,5],[1,3,4,5]]\n", string(out))
}
