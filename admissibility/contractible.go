package admissibility

import "github.com/mobius-tri/lextet/core"

// Contractible reports whether the A-side edge (v0,v1) — both endpoints
// complete — is contractible, per original_source/lextet.c's
// contractible() (~line 1482): it counts vertices adjacent to both v0 and
// v1 in A ("common neighbors") and, among pairs of those, faces (v0,v2,v3)
// and (v1,v2,v3) that are both already occupied in A ("common neighboring
// edges" — the C reference's name for this count, kept here for
// traceability). Either count reaching degree12_a[v0][v1]+1 means
// contracting the edge would pinch the complex, so the edge is not
// contractible and Contractible returns false; otherwise it returns true
// and the caller rejects the edge as contractible.
func Contractible(c *core.Complex, v0, v1 int) bool {
	rootDeg, _ := c.EdgeDegA(v0, v1)
	threshold := rootDeg + 1

	nv := c.NV()
	neighbors, eneighbors := 0, 0
	for v2 := 0; v2 < nv; v2++ {
		if v2 == v0 || v2 == v1 {
			continue
		}
		deg0, _ := c.EdgeDegA(v0, v2)
		deg1, _ := c.EdgeDegA(v1, v2)
		if deg0 == 0 || deg1 == 0 {
			continue
		}
		neighbors++
		if neighbors == threshold {
			return false
		}
		for v3 := v2 + 1; v3 < nv; v3++ {
			if v3 == v0 || v3 == v1 {
				continue
			}
			if faceOccupiedA(c, v0, v2, v3) && faceOccupiedA(c, v1, v2, v3) {
				eneighbors++
				if eneighbors == threshold {
					return false
				}
			}
		}
	}
	return true
}

func faceOccupiedA(c *core.Complex, a, b, c2 int) bool {
	otherA, _, _, ok := c.Face(a, b, c2)
	return ok && otherA[0] != -1
}
