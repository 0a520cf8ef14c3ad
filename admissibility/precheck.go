package admissibility

import "github.com/mobius-tri/lextet/core"

// PreCheck runs the local tests of §4.2 that must hold BEFORE a candidate
// tetrahedron t is committed with Complex.AddTet: no vertex or edge of t is
// already closed, and none of t's six edge links would become "a cycle plus
// an extra edge".
func PreCheck(c *core.Complex, t core.Tetrahedron) bool {
	for _, v := range t {
		if c.CompleteP(v) {
			return false
		}
	}
	pairs := candidateEdgePairs(t)
	for _, ep := range pairs {
		deg12, deg13 := c.EdgeDegP(ep.a, ep.b)
		if deg12 > 0 && deg12 == deg13 {
			// edge already closed: a complete edge link cannot accept
			// another tetrahedron.
			return false
		}
		if !edgeAdmissible(c, ep.a, ep.b, ep.p, ep.q) {
			return false
		}
	}
	return true
}

type candidateEdge struct{ a, b, p, q int }

// candidateEdgePairs returns, for each of t's six edges, the edge endpoints
// and the complementary pair of vertices t would contribute to that edge's
// link.
func candidateEdgePairs(t core.Tetrahedron) [6]candidateEdge {
	return [6]candidateEdge{
		{t[0], t[1], t[2], t[3]},
		{t[0], t[2], t[1], t[3]},
		{t[0], t[3], t[1], t[2]},
		{t[1], t[2], t[0], t[3]},
		{t[1], t[3], t[0], t[2]},
		{t[2], t[3], t[0], t[1]},
	}
}

// edgeAdmissible implements §4.2's edge-link predicate using the P-side
// link-pair history: if fewer than two faces currently contain the edge,
// or the edge link is a still-open arc with exactly one gap, or either base
// face is fresh, the candidate is admissible outright; otherwise the new
// pair (p,q) must connect the two existing open ends of the arc/cycle
// without branching.
func edgeAdmissible(c *core.Complex, a, b, p, q int) bool {
	deg12, deg13 := c.EdgeDegP(a, b)
	if deg12 < 2 {
		return true
	}
	if deg12 == deg13+1 {
		return true
	}
	_, _, _, okP := c.Face(a, b, p)
	_, _, _, okQ := c.Face(a, b, q)
	if !okP || !okQ {
		return true
	}
	return walkReaches(c.EdgeLinkPairsP(a, b), p, q)
}

// walkReaches treats pairs as the edge set of a degree-≤2 graph (an arc or
// partially-built cycle) and reports whether a simple walk starting at
// start, using each pair exactly once, can reach target — i.e. whether
// attaching the new segment (start,target) would close the chain cleanly
// rather than branch or leave a gap.
func walkReaches(pairs [][2]int, start, target int) bool {
	type halfEdge struct {
		to   int
		used bool
	}
	adj := make(map[int][]*halfEdge)
	for _, pr := range pairs {
		he1 := &halfEdge{to: pr[1]}
		he2 := &halfEdge{to: pr[0]}
		adj[pr[0]] = append(adj[pr[0]], he1)
		adj[pr[1]] = append(adj[pr[1]], he2)
	}

	cur := start
	for {
		if cur == target {
			return true
		}
		var next *halfEdge
		for _, he := range adj[cur] {
			if !he.used {
				next = he
				break
			}
		}
		if next == nil {
			return cur == target
		}
		next.used = true
		// mark the mirrored half-edge used too
		for _, he := range adj[next.to] {
			if he.to == cur && !he.used {
				he.used = true
				break
			}
		}
		cur = next.to
	}
}
