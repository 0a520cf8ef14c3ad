package core

// NextSlot computes v0 and v1 of §4.4's next-slot rule: v0 is the smallest
// vertex whose P-link is not yet closed (introducing a fresh vertex once
// every existing one closes, as long as nv is still below target); v1
// reuses the smallest edge at v0 that is open in P, or, failing that,
// introduces a new edge to the smallest vertex not yet joined to v0. ok is
// false only when every vertex is closed and nv has already reached target
// — the caller's leaf case. Exported so canon's canonicity replay (see
// canon.IsMinLex) can drive the same deterministic construction order the
// search driver uses.
func NextSlot(c *Complex, target int) (v0, v1 int, ok bool) {
	for v := 0; v < c.NV(); v++ {
		if !c.CompleteP(v) {
			return v, resolveV1(c, v), true
		}
	}
	if c.NV() < target {
		v0 = c.NV()
		return v0, resolveV1(c, v0), true
	}
	return 0, 0, false
}

func resolveV1(c *Complex, v0 int) int {
	if v1 := firstOpenEdge(c, v0); v1 != -1 {
		return v1
	}
	return firstUnjoined(c, v0)
}

// firstOpenEdge returns the smallest v1 such that edge (v0,v1) has at least
// one tetrahedron in P and is not yet closed (deg12 != deg13), or -1 if no
// such edge exists.
func firstOpenEdge(c *Complex, v0 int) int {
	for v1 := 0; v1 < c.NV(); v1++ {
		if v1 == v0 {
			continue
		}
		deg12, deg13 := c.EdgeDegP(v0, v1)
		if deg12 > 0 && deg12 != deg13 {
			return v1
		}
	}
	return -1
}

// firstUnjoined returns the smallest vertex not yet connected to v0 by any
// edge in P, introducing a fresh label (c.NV()) if every existing vertex is
// already joined.
func firstUnjoined(c *Complex, v0 int) int {
	for v1 := 0; v1 < c.NV(); v1++ {
		if v1 == v0 {
			continue
		}
		if deg12, _ := c.EdgeDegP(v0, v1); deg12 == 0 {
			return v1
		}
	}
	return c.NV()
}

// CandidatesFor enumerates every (v2,v3) completion of slot (v0,v1) in
// strictly increasing lex order, each capped so a fresh label never exceeds
// nv by more than one (§4.4's "lex-canonicity: a fresh label always equals
// nv") and never reaching the target vertex count c.N(), and filtered to
// candidates whose four faces still have room for another cofacet in A.
func CandidatesFor(c *Complex, v0, v1 int) []Tetrahedron {
	limit := c.NV()
	if limit < v1+1 {
		limit = v1 + 1
	}
	maxLabel := limit + 1
	if maxLabel > c.N()-1 {
		maxLabel = c.N() - 1
	}

	var out []Tetrahedron
	for v2 := v1 + 1; v2 <= maxLabel; v2++ {
		for v3 := v2 + 1; v3 <= maxLabel; v3++ {
			t := Sorted(v0, v1, v2, v3)
			if !FacesHaveRoom(c, t) {
				continue
			}
			out = append(out, t)
		}
	}
	return out
}

// FacesHaveRoom rejects t if any of its four faces is already two-sided in
// A by a pair of opposite vertices that both differ from t's own opposite
// vertex — the "blocked by forced pick" rule of §4.2.
func FacesHaveRoom(c *Complex, t Tetrahedron) bool {
	triples := [4][3]int{
		{t[0], t[1], t[2]},
		{t[0], t[1], t[3]},
		{t[0], t[2], t[3]},
		{t[1], t[2], t[3]},
	}
	opposite := [4]int{t[3], t[2], t[1], t[0]}

	for i, f := range triples {
		otherA, _, _, ok := c.Face(f[0], f[1], f[2])
		if !ok {
			continue
		}
		if otherA[0] != -1 && otherA[1] != -1 && otherA[0] != opposite[i] && otherA[1] != opposite[i] {
			return false
		}
	}
	return true
}
