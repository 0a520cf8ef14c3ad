package classify

import (
	"sort"

	"github.com/mobius-tri/lextet/core"
	"github.com/mobius-tri/lextet/matrix"
)

// Classify computes the classification Key of a complete triangulation held
// in c, per §4.5: the global Euler characteristic plus, for every vertex,
// its link's Euler characteristic and (when that is <= 0) its link's Z/2
// homology rank, used to bucket the vertex.
func Classify(c *core.Complex) (Key, error) {
	nv, ne, nf, nt := c.PickCounts()
	key := Key{NV: nv, Chi: nv - ne + nf - nt}

	for v := 0; v < nv; v++ {
		deg01, deg02, deg03 := c.DegP(v)
		chiV := deg01 - deg02 + deg03

		betti := 0
		if chiV <= 0 {
			rank, cols, err := linkHomologyRank(c, v)
			if err != nil {
				return Key{}, err
			}
			// §4.5: "dim of cycles = columns - rank" is the link's first
			// Betti number, not the raw rank. The raw boundary-matrix rank
			// is >=1 for essentially every non-degenerate link regardless
			// of orientability, so bucketing on it directly could never
			// populate the Klein-bottle-style buckets; the nullity is what
			// distinguishes a closed 2-cycle (torus-style) from none
			// (Klein-bottle-style).
			betti = cols - rank
		}
		if err := key.Buckets.add(chiV, betti); err != nil {
			return Key{}, err
		}
	}
	return key, nil
}

// linkEdge is an unordered pair of link-graph vertices, used to dedupe and
// index the rows of the link's boundary matrix.
type linkEdge struct{ a, b int }

func mkLinkEdge(a, b int) linkEdge {
	if a > b {
		a, b = b, a
	}
	return linkEdge{a, b}
}

// linkHomologyRank builds the boundary matrix of vertex v's link (rows =
// link-edges, columns = link-faces, signed by each face's sorted-vertex
// orientation) and returns its Rank2 together with its column count, per
// §4.5's "Z/2 homology rank" recipe: each picked tetrahedron at v
// contributes one link-face, the triangle of its other three vertices. The
// caller derives the first Betti number as cols-rank; Rank2 alone cannot
// tell a torus-style link from a Klein-bottle-style one, since it is >=1 for
// essentially every non-degenerate link regardless of orientability.
func linkHomologyRank(c *core.Complex, v int) (rank, cols int, err error) {
	var faces [][3]int
	for _, t := range c.Picks() {
		idx := -1
		for i, x := range t {
			if x == v {
				idx = i
				break
			}
		}
		if idx == -1 {
			continue
		}
		others := make([]int, 0, 3)
		for i, x := range t {
			if i != idx {
				others = append(others, x)
			}
		}
		sort.Ints(others)
		faces = append(faces, [3]int{others[0], others[1], others[2]})
	}
	if len(faces) == 0 {
		return 0, 0, nil
	}

	edgeIndex := make(map[linkEdge]int)
	edgeOf := func(a, b int) int {
		k := mkLinkEdge(a, b)
		if i, ok := edgeIndex[k]; ok {
			return i
		}
		i := len(edgeIndex)
		edgeIndex[k] = i
		return i
	}
	// First pass assigns row indices; second pass (below) fills the matrix,
	// since the row count is only known once every face has been scanned.
	for _, f := range faces {
		edgeOf(f[0], f[1])
		edgeOf(f[1], f[2])
		edgeOf(f[0], f[2])
	}

	m, err := matrix.NewDense(len(edgeIndex), len(faces))
	if err != nil {
		return 0, 0, err
	}
	for col, f := range faces {
		// Oriented boundary of sorted triangle (a,b,c): edges (a,b) and
		// (b,c) traversed forward, (a,c) traversed backward.
		if err := m.Set(edgeOf(f[0], f[1]), col, 1); err != nil {
			return 0, 0, err
		}
		if err := m.Set(edgeOf(f[1], f[2]), col, 1); err != nil {
			return 0, 0, err
		}
		if err := m.Set(edgeOf(f[0], f[2]), col, -1); err != nil {
			return 0, 0, err
		}
	}

	rank, err = Rank2(m)
	if err != nil {
		return 0, 0, err
	}
	return rank, m.Cols(), nil
}
