package classify

import (
	"strconv"
	"strings"

	"github.com/mobius-tri/lextet/core"
)

// alphabet52 is the base-52 vertex-label alphabet of §4.5/§6: a...z then
// A...Z. Implemented directly on string/byte arithmetic: builder's
// letters_spec.go encodes fixed pixel-grid glyph shapes for demo graphs, an
// unrelated concern with no reusable alphabet-indexing logic (see
// DESIGN.md) — this is the one place in classify built on the standard
// library alone.
const alphabet52 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// EncodeLine renders one completed pick list per §4.5/§6: if nv <= 52,
// each vertex label maps to alphabet52 and the four characters of every
// tetrahedron are concatenated in pick order with no separator; otherwise
// each tetrahedron is rendered as a 1-based "[v0,v1,v2,v3]," tuple.
func EncodeLine(nv int, picks []core.Tetrahedron) string {
	if nv <= len(alphabet52) {
		var sb strings.Builder
		sb.Grow(len(picks) * 4)
		for _, t := range picks {
			for _, v := range t {
				sb.WriteByte(alphabet52[v])
			}
		}
		return sb.String()
	}

	var sb strings.Builder
	for _, t := range picks {
		sb.WriteByte('[')
		for i, v := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(v + 1))
		}
		sb.WriteString("],")
	}
	return sb.String()
}
