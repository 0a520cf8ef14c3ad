package admissibility

import "github.com/mobius-tri/lextet/core"

// PostCheck runs the tests of §4.2 that only make sense after Complex.AddTet
// has committed candidate t: every edge of t that just closed must have
// degree ≥ the root edge's degree, and every vertex AddTet reports as newly
// complete must have a connected link and link-of-link. rootEdgeDeg12 is
// deg12[0,1], the baseline every closed edge must meet or exceed.
func PostCheck(c *core.Complex, t core.Tetrahedron, rootEdgeDeg12 int, newlyCompleteP []int) bool {
	for _, ep := range candidateEdgePairs(t) {
		deg12, deg13 := c.EdgeDegP(ep.a, ep.b)
		if deg12 == deg13 && deg12 < rootEdgeDeg12 {
			return false
		}
	}
	for _, v := range newlyCompleteP {
		if !LinkConnected(c, v) {
			return false
		}
		for _, w := range linkNeighbors(c, v) {
			if !LinkOfLinkConnected(c, v, w) {
				return false
			}
		}
	}
	return true
}

// linkGraph builds the 1-skeleton of vertex v's link: nodes are v's
// neighbors, edges join two neighbors whenever they co-occur in a face at
// v (equivalently, a tetrahedron at v induces a triangle among its other
// three vertices in this graph).
func linkGraph(c *core.Complex, v int) map[int]map[int]bool {
	adj := make(map[int]map[int]bool)
	join := func(a, b int) {
		if adj[a] == nil {
			adj[a] = make(map[int]bool)
		}
		if adj[b] == nil {
			adj[b] = make(map[int]bool)
		}
		adj[a][b] = true
		adj[b][a] = true
	}
	for _, tet := range c.Picks() {
		idx := -1
		for i, x := range tet {
			if x == v {
				idx = i
				break
			}
		}
		if idx == -1 {
			continue
		}
		others := make([]int, 0, 3)
		for i, x := range tet {
			if i != idx {
				others = append(others, x)
			}
		}
		join(others[0], others[1])
		join(others[0], others[2])
		join(others[1], others[2])
	}
	return adj
}

func linkNeighbors(c *core.Complex, v int) []int {
	adj := linkGraph(c, v)
	out := make([]int, 0, len(adj))
	for k := range adj {
		out = append(out, k)
	}
	return out
}

func bfsConnected(adj map[int]map[int]bool) bool {
	if len(adj) == 0 {
		return true
	}
	var start int
	for k := range adj {
		start = k
		break
	}
	visited := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for nb := range adj[cur] {
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(visited) == len(adj)
}

// LinkConnected reports whether vertex v's link graph (see linkGraph) is
// connected, per §4.2's "newly complete vertex link must be connected".
func LinkConnected(c *core.Complex, v int) bool {
	return bfsConnected(linkGraph(c, v))
}

// LinkOfLinkConnected reports whether, within link(v), the induced
// neighborhood of w (link(v)'s link of w) is connected — the "pinch"
// detector of §4.2, grounded on lextet.c's linkSend construction (~line
// 1930): an edge belongs to link(v)'s link of w only if it comes from a
// tetrahedron that contains *both* v and w (that tetrahedron's other two
// vertices are the edge); edges between two neighbors of w that merely
// happen to be joined in link(v) via some unrelated tetrahedron (one that
// doesn't contain w) do not count; including them would let a genuinely
// pinched link-of-link pass as connected.
func LinkOfLinkConnected(c *core.Complex, v, w int) bool {
	sub := make(map[int]map[int]bool)
	join := func(a, b int) {
		if sub[a] == nil {
			sub[a] = make(map[int]bool)
		}
		if sub[b] == nil {
			sub[b] = make(map[int]bool)
		}
		sub[a][b] = true
		sub[b][a] = true
	}
	for _, tet := range c.Picks() {
		hasV, hasW := false, false
		others := make([]int, 0, 2)
		for _, x := range tet {
			switch x {
			case v:
				hasV = true
			case w:
				hasW = true
			default:
				others = append(others, x)
			}
		}
		if hasV && hasW {
			join(others[0], others[1])
		}
	}
	if len(sub) == 0 {
		return true
	}
	return bfsConnected(sub)
}
