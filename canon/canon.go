package canon

import "github.com/mobius-tri/lextet/core"

// seed is one candidate relabeling's partial assignment: original vertex
// label -> trial label, built up greedily as picks are scanned.
type seed struct {
	toLabel   map[int]int
	nextLabel int
}

func newSeed(v0, v1 int, ring []int, start, dir int) *seed {
	s := &seed{toLabel: make(map[int]int), nextLabel: 2 + len(ring)}
	s.toLabel[v0] = 0
	s.toLabel[v1] = 1
	n := len(ring)
	for i := 0; i < n; i++ {
		idx := ((start+dir*i)%n + n) % n
		s.toLabel[ring[idx]] = 2 + i
	}
	return s
}

func (s *seed) label(origVertex int) int {
	if lbl, ok := s.toLabel[origVertex]; ok {
		return lbl
	}
	lbl := s.nextLabel
	s.toLabel[origVertex] = lbl
	s.nextLabel++
	return lbl
}

func (s *seed) relabel(t core.Tetrahedron) core.Tetrahedron {
	return core.Sorted(s.label(t[0]), s.label(t[1]), s.label(t[2]), s.label(t[3]))
}

func cmpTet(a, b core.Tetrahedron) int {
	for i := 0; i < 4; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// edgeRing returns the cyclic sequence of neighbors forming edge (a,b)'s
// link, reconstructed by chaining the complementary pairs EdgeLinkPairsP
// records, or nil if the edge has no pairs. For a link that is not a simple
// cycle the walk stops early and the returned sequence is partial.
func edgeRing(c *core.Complex, a, b int) []int {
	pairs := c.EdgeLinkPairsP(a, b)
	if len(pairs) == 0 {
		return nil
	}
	adj := make(map[int][]int)
	for _, pr := range pairs {
		adj[pr[0]] = append(adj[pr[0]], pr[1])
		adj[pr[1]] = append(adj[pr[1]], pr[0])
	}
	start := pairs[0][0]
	ring := []int{start}
	prev := -1
	cur := start
	for {
		var next int = -1
		for _, nb := range adj[cur] {
			if nb != prev {
				next = nb
				break
			}
		}
		if next == -1 || next == start {
			break
		}
		ring = append(ring, next)
		prev, cur = cur, next
		if len(ring) > len(pairs)+1 {
			break // defensive: malformed ring, stop rather than loop forever
		}
	}
	return ring
}

// IsMinLex decides whether c's current pick list is the lex-smallest
// labeling reachable by re-rooting at any other complete edge of the same
// degree as the root edge (0,1). cache records automorphism witnesses
// discovered along the way, per §4.3's "Automorphism caching". A runSeed
// error means the candidate relabeling cannot be replayed (AddTet rejected
// a relabeled pick) — conservatively not a smaller witness, so the search
// continues rather than aborting a run over one unreachable rooting.
func IsMinLex(c *core.Complex, cache *Cache) bool {
	_, rootDeg12 := c.EdgeDegP(0, 1)
	picks := c.Picks()
	nv := c.NV()

	for v0 := 0; v0 < nv; v0++ {
		if !c.CompleteP(v0) {
			continue
		}
		for v1 := 0; v1 < nv; v1++ {
			if v1 == v0 || !c.CompleteP(v1) {
				continue
			}
			deg12, _ := c.EdgeDegP(v0, v1)
			if deg12 != rootDeg12 {
				continue
			}
			ring := edgeRing(c, v0, v1)
			if len(ring) != rootDeg12 {
				continue
			}
			for start := 0; start < len(ring); start++ {
				for _, dir := range [2]int{1, -1} {
					s := newSeed(v0, v1, ring, start, dir)
					out, err := runSeed(c, picks, rootDeg12, s)
					if err != nil {
						continue
					}
					switch out {
					case outcomeSmaller:
						return false
					case outcomeAutomorphism:
						if cache != nil && v0 != 0 {
							cache.Add(v0, s.toLabel, nv)
						}
					}
				}
			}
		}
	}
	return true
}

type outcome int

const (
	outcomeLarger outcome = iota
	outcomeSmaller
	outcomeAutomorphism
)

// containsVertices reports whether t has both a and b among its four
// labels.
func containsVertices(t core.Tetrahedron, a, b int) bool {
	hasA, hasB := false, false
	for _, x := range t {
		if x == a {
			hasA = true
		}
		if x == b {
			hasB = true
		}
	}
	return hasA && hasB
}

// runSeed is this module's rendition of original_source/lextet.c's
// smaller_lex() (~line 1078): it decides whether relabeling nv by s yields
// a pick sequence strictly smaller than, equal to, or larger than picks,
// under the same deterministic slot-by-slot construction order the search
// driver itself uses. The C reference re-derives each next candidate by
// walking its face table (base[...]->other_a), branching when the walk is
// locally ambiguous; this module's construction order is instead driven by
// core.NextSlot's label-dependent rule, so the replay below re-derives the
// next candidate by asking core.NextSlot for the next slot and taking the
// lexicographically smallest not-yet-placed relabeled tetrahedron that
// covers it. That greedy choice is exactly the smallest sequence reachable
// under s — NextSlot's slot choice depends only on which edges/vertices
// have closed, never on which of several tetrahedra covering the same open
// edge is placed first, so always taking the smallest is what yields the
// minimal-under-s sequence to compare against picks. The picks around the
// seed's edge relabel, by newSeed's construction, to exactly the root fan
// around (0,1), matching the first rootDeg12 picks: they seed trial directly
// without replay.
func runSeed(c *core.Complex, picks []core.Tetrahedron, rootDeg12 int, s *seed) (outcome, error) {
	trial, err := core.NewComplex(c.NV())
	if err != nil {
		return outcomeLarger, err
	}

	remaining := make([]core.Tetrahedron, 0, len(picks)-rootDeg12)
	for _, p := range picks {
		t := s.relabel(p)
		if !containsVertices(t, 0, 1) {
			remaining = append(remaining, t)
			continue
		}
		if _, _, err := trial.AddTet(t, true); err != nil {
			return outcomeLarger, err
		}
	}
	used := make([]bool, len(remaining))

	for k := rootDeg12; k < len(picks); k++ {
		v0, v1, ok := core.NextSlot(trial, c.NV())
		if !ok {
			// trial closed before every relabeled pick was placed: s does
			// not replay this structure consistently. Not an automorphism;
			// treat conservatively as not smaller.
			return outcomeLarger, nil
		}

		best := -1
		for i, t := range remaining {
			if used[i] || !containsVertices(t, v0, v1) {
				continue
			}
			if best == -1 || cmpTet(t, remaining[best]) < 0 {
				best = i
			}
		}
		if best == -1 {
			return outcomeLarger, nil
		}
		next := remaining[best]
		used[best] = true
		if _, _, err := trial.AddTet(next, true); err != nil {
			return outcomeLarger, err
		}

		switch cmpTet(next, picks[k]) {
		case -1:
			return outcomeSmaller, nil
		case 1:
			return outcomeLarger, nil
		}
	}
	return outcomeAutomorphism, nil
}
