package search

import "github.com/mobius-tri/lextet/core"

// nextSlot and candidatesFor are the search driver's local names for
// core.NextSlot/core.CandidatesFor, the §4.4 next-slot rule also replayed
// by canon.IsMinLex's canonicity check against an alternate labeling.
func nextSlot(c *core.Complex, target int) (v0, v1 int, ok bool) {
	return core.NextSlot(c, target)
}

func candidatesFor(c *core.Complex, v0, v1 int) []core.Tetrahedron {
	return core.CandidatesFor(c, v0, v1)
}
