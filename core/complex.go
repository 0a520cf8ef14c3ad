package core

// Complex is the single owning aggregate described in doc.go: the sparse
// face table (A), the picked subset (P ⊆ A), and every degree table needed
// by admissibility, canonicity and classification. A zero Complex is not
// usable; construct with NewComplex.
type Complex struct {
	target int // n: the enumeration's target vertex count

	nv int // labels currently in use: one past the largest label added

	faces map[faceKey]*faceEntry
	vdeg  []vertexDeg // len == target
	edeg  map[edgeKey]*edgeDeg

	// labelUse[v] counts how many currently-added tetrahedra reference
	// label v; nv shrinks on RemoveTet only when the top label's count
	// drops to zero, so an out-of-order-introduced label from a bulk
	// root-fan seed does not get prematurely reclaimed by undoing a
	// later-added tetrahedron that happens to reuse a smaller label.
	labelUse []int

	// A-side face vector.
	ne, nf, nt int
	// P-side face vector.
	neP, nfP, ntP int

	picks []Tetrahedron
	added []addedRecord
}

// NewComplex allocates an empty Complex for a target vertex count n.
// Stage 1 (Validate): 4 ≤ n ≤ MaxVertices.
// Stage 2 (Prepare): allocate per-vertex degree table sized n.
// Stage 3 (Finalize): return the zero-tetrahedron Complex.
func NewComplex(n int) (*Complex, error) {
	if n < 4 || n > MaxVertices {
		return nil, ErrInvalidVertexCount
	}
	return &Complex{
		target:   n,
		faces:    make(map[faceKey]*faceEntry),
		vdeg:     make([]vertexDeg, n),
		edeg:     make(map[edgeKey]*edgeDeg),
		labelUse: make([]int, n),
	}, nil
}

// N returns the target vertex count this Complex was constructed for.
func (c *Complex) N() int { return c.target }

// NV returns the number of distinct vertex labels introduced so far.
func (c *Complex) NV() int { return c.nv }

// Picks returns the ordered pick list. The returned slice aliases internal
// storage; callers must not mutate it.
func (c *Complex) Picks() []Tetrahedron { return c.picks }

// Counts returns the A-side face vector (nv, ne, nf, nt).
func (c *Complex) Counts() (nv, ne, nf, nt int) { return c.nv, c.ne, c.nf, c.nt }

// PickCounts returns the P-side face vector (nv, ne, nf, nt).
func (c *Complex) PickCounts() (nv, ne, nf, nt int) { return c.nv, c.neP, c.nfP, c.ntP }

// Face reports the face record for the canonical triple {a,b,c}. ok is
// false if no tetrahedron has ever touched that face.
func (c *Complex) Face(a, b, c2 int) (otherA, otherP [2]int, typeA [2]TetType, ok bool) {
	fe, present := c.faces[faceOf(a, b, c2)]
	if !present {
		return [2]int{-1, -1}, [2]int{-1, -1}, [2]TetType{}, false
	}
	return fe.otherA, fe.otherP, fe.typeA, true
}

// DegA returns the A-side (deg01, deg02, deg03) triple for vertex v.
func (c *Complex) DegA(v int) (deg01, deg02, deg03 int) {
	d := &c.vdeg[v]
	return d.deg01A, d.deg02A, d.deg03A
}

// DegP returns the P-side (deg01, deg02, deg03) triple for vertex v.
func (c *Complex) DegP(v int) (deg01, deg02, deg03 int) {
	d := &c.vdeg[v]
	return d.deg01P, d.deg02P, d.deg03P
}

// CompleteA reports whether vertex v's A-side link is closed.
func (c *Complex) CompleteA(v int) bool { return c.vdeg[v].completeA }

// CompleteP reports whether vertex v's P-side link is closed.
func (c *Complex) CompleteP(v int) bool { return c.vdeg[v].completeP }

// EdgeDegA returns the A-side (deg12, deg13) pair for edge (a,b).
func (c *Complex) EdgeDegA(a, b int) (deg12, deg13 int) {
	ed := c.edeg[edgeOf(a, b)]
	if ed == nil {
		return 0, 0
	}
	return ed.deg12A, ed.deg13A
}

// EdgeDegP returns the P-side (deg12, deg13) pair for edge (a,b).
func (c *Complex) EdgeDegP(a, b int) (deg12, deg13 int) {
	ed := c.edeg[edgeOf(a, b)]
	if ed == nil {
		return 0, 0
	}
	return ed.deg12P, ed.deg13P
}

// ForceTetrahedron is the forcing hook of §9: in the reference enumerator
// it always returns true (a no-op: no look-ahead forcing is performed).
// Kept as an explicit call site so a future forcing pass has one place to
// change rather than requiring search-driver surgery.
func (c *Complex) ForceTetrahedron(Tetrahedron) bool { return true }

type tetFaces [4]struct {
	f   faceKey
	opp int
}

func facesOf(t Tetrahedron) tetFaces {
	return tetFaces{
		{faceOf(t[0], t[1], t[2]), t[3]},
		{faceOf(t[0], t[1], t[3]), t[2]},
		{faceOf(t[0], t[2], t[3]), t[1]},
		{faceOf(t[1], t[2], t[3]), t[0]},
	}
}

func edgesOfFace(f faceKey) [3]edgeKey {
	return [3]edgeKey{edgeOf(f.a, f.b), edgeOf(f.a, f.c), edgeOf(f.b, f.c)}
}

func edgesOfTet(t Tetrahedron) [6]edgeKey {
	return [6]edgeKey{
		edgeOf(t[0], t[1]), edgeOf(t[0], t[2]), edgeOf(t[0], t[3]),
		edgeOf(t[1], t[2]), edgeOf(t[1], t[3]), edgeOf(t[2], t[3]),
	}
}

// edgeLinkPair returns, for tetrahedron t and one of its six edges
// identified by the two indices into t that are NOT its endpoints, the
// complementary pair of vertices the tetrahedron contributes to that
// edge's link.
type edgePairEntry struct {
	e    edgeKey
	p, q int
}

func edgePairsOfTet(t Tetrahedron) [6]edgePairEntry {
	return [6]edgePairEntry{
		{edgeOf(t[0], t[1]), t[2], t[3]},
		{edgeOf(t[0], t[2]), t[1], t[3]},
		{edgeOf(t[0], t[3]), t[1], t[2]},
		{edgeOf(t[1], t[2]), t[0], t[3]},
		{edgeOf(t[1], t[3]), t[0], t[2]},
		{edgeOf(t[2], t[3]), t[0], t[1]},
	}
}

// EdgeLinkPairsA returns the A-side complementary-vertex pairs currently
// contributing to edge (a,b)'s link, in commit order. The returned slice
// aliases internal storage; callers must not mutate it.
func (c *Complex) EdgeLinkPairsA(a, b int) [][2]int {
	ed := c.edeg[edgeOf(a, b)]
	if ed == nil {
		return nil
	}
	return ed.linkA
}

// EdgeLinkPairsP is EdgeLinkPairsA's P-side counterpart.
func (c *Complex) EdgeLinkPairsP(a, b int) [][2]int {
	ed := c.edeg[edgeOf(a, b)]
	if ed == nil {
		return nil
	}
	return ed.linkP
}

// AddTet inserts tetrahedron t into A, and into P as well when picked is
// true, per §4.1. It reports which vertices (among t's four) transitioned
// to a closed link on the A side and, if picked, on the P side — callers
// (canon) must purge any cached automorphisms for those vertices only on
// the reverse transition (see RemoveTet), never here.
func (c *Complex) AddTet(t Tetrahedron, picked bool) (newlyCompleteA, newlyCompleteP []int, err error) {
	t = Sorted(t[0], t[1], t[2], t[3])
	if t[3] >= c.target || t[0] < 0 {
		return nil, nil, ErrInvalidVertexCount
	}
	// The "a fresh label always equals nv" rule is enforced by the search
	// driver's candidate generation (§4.4), not here: root-fan seeding
	// (§4.6) legitimately introduces several labels in its first call,
	// before any incremental one-label-at-a-time search step exists.

	// A pick belongs to its own new index; a forced tetrahedron belongs to
	// the most recent pick, which RemoveTet unwinds it with.
	pickIndex := len(c.picks) - 1
	if picked {
		pickIndex = len(c.picks)
	}

	for _, fa := range facesOf(t) {
		fe, present := c.faces[fa.f]
		if !present {
			fe = newFaceEntry()
			c.faces[fa.f] = fe
		}

		wasEmptyA := fe.otherA[0] == -1 && fe.otherA[1] == -1
		wasEmptyP := fe.otherP[0] == -1 && fe.otherP[1] == -1

		slot := -1
		switch {
		case fe.otherA[0] == fa.opp:
			slot = 0
		case fe.otherA[1] == fa.opp:
			slot = 1
		case fe.otherA[0] == -1:
			slot = 0
		case fe.otherA[1] == -1:
			slot = 1
		default:
			return nil, nil, ErrFaceOverflow
		}

		if fe.otherA[slot] == -1 {
			fe.otherA[slot] = fa.opp
			if picked {
				fe.typeA[slot] = Picked
			} else {
				fe.typeA[slot] = Forced
				fe.forcedBy[slot] = pickIndex
			}
		} else if picked && fe.typeA[slot] == Forced {
			fe.typeA[slot] = ForcedPicked
		}

		if picked {
			if fe.otherP[0] == -1 {
				fe.otherP[0] = fa.opp
			} else {
				fe.otherP[1] = fa.opp
			}
		}

		if wasEmptyA {
			c.nf++
			c.vdeg[fa.f.a].deg02A++
			c.vdeg[fa.f.b].deg02A++
			c.vdeg[fa.f.c].deg02A++
			for _, ek := range edgesOfFace(fa.f) {
				c.edgeOrNew(ek).deg12A++
			}
		}
		if picked && wasEmptyP {
			c.nfP++
			c.vdeg[fa.f.a].deg02P++
			c.vdeg[fa.f.b].deg02P++
			c.vdeg[fa.f.c].deg02P++
			for _, ek := range edgesOfFace(fa.f) {
				c.edgeOrNew(ek).deg12P++
			}
		}
	}

	for _, ep := range edgePairsOfTet(t) {
		ek := ep.e
		ed := c.edgeOrNew(ek)
		wasZeroA := ed.deg13A == 0
		ed.deg13A++
		ed.linkA = append(ed.linkA, [2]int{ep.p, ep.q})
		if wasZeroA {
			c.ne++
			c.vdeg[ek.a].deg01A++
			c.vdeg[ek.b].deg01A++
		}
		if picked {
			wasZeroP := ed.deg13P == 0
			ed.deg13P++
			ed.linkP = append(ed.linkP, [2]int{ep.p, ep.q})
			if wasZeroP {
				c.neP++
				c.vdeg[ek.a].deg01P++
				c.vdeg[ek.b].deg01P++
			}
		}
	}

	c.nt++
	if picked {
		c.ntP++
	}
	for _, v := range t {
		c.vdeg[v].deg03A++
		if picked {
			c.vdeg[v].deg03P++
		}
		c.labelUse[v]++
	}

	if t[3] >= c.nv {
		c.nv = t[3] + 1
	}

	for _, v := range t {
		d := &c.vdeg[v]
		if !d.completeA && d.deg02A*2 == d.deg03A*3 && d.deg03A > 0 {
			d.completeA = true
			newlyCompleteA = append(newlyCompleteA, v)
		}
		if picked && !d.completeP && d.deg02P*2 == d.deg03P*3 && d.deg03P > 0 {
			d.completeP = true
			newlyCompleteP = append(newlyCompleteP, v)
		}
	}

	c.added = append(c.added, addedRecord{tet: t, pickIndex: pickIndex, forced: !picked})
	if picked {
		c.picks = append(c.picks, t)
	}

	return newlyCompleteA, newlyCompleteP, nil
}

func (c *Complex) edgeOrNew(ek edgeKey) *edgeDeg {
	ed, ok := c.edeg[ek]
	if !ok {
		ed = &edgeDeg{}
		c.edeg[ek] = ed
	}
	return ed
}

// RemoveTet undoes the most recently picked tetrahedron, first unwinding
// every tetrahedron added-but-not-picked that was appended after it (per
// §4.1's "re-pick of previously forced" reversal and §9's forcing
// back-pointers), then the pick itself. It reports which vertices
// transitioned from closed to open, so canon can purge their automorphism
// caches per §9.
func (c *Complex) RemoveTet() (newlyIncompleteA, newlyIncompleteP []int, err error) {
	if len(c.picks) == 0 {
		return nil, nil, ErrNotPicked
	}
	currentPick := len(c.picks) - 1

	for len(c.added) > 0 && c.added[len(c.added)-1].pickIndex == currentPick {
		rec := c.added[len(c.added)-1]
		c.added = c.added[:len(c.added)-1]
		ncA, ncP, uerr := c.uncommit(rec.tet, !rec.forced)
		if uerr != nil {
			return nil, nil, uerr
		}
		newlyIncompleteA = append(newlyIncompleteA, ncA...)
		newlyIncompleteP = append(newlyIncompleteP, ncP...)
	}

	c.picks = c.picks[:currentPick]
	return newlyIncompleteA, newlyIncompleteP, nil
}

func (c *Complex) uncommit(t Tetrahedron, picked bool) (newlyIncompleteA, newlyIncompleteP []int, err error) {
	for _, v := range t {
		d := &c.vdeg[v]
		if picked {
			d.deg03P--
		}
		d.deg03A--
		c.labelUse[v]--
	}
	for c.nv > 0 && c.labelUse[c.nv-1] == 0 {
		c.nv--
	}
	c.nt--
	if picked {
		c.ntP--
	}

	for _, ek := range edgesOfTet(t) {
		ed := c.edeg[ek]
		if ed == nil {
			return nil, nil, ErrUnknownFace
		}
		ed.deg13A--
		ed.linkA = ed.linkA[:len(ed.linkA)-1]
		if ed.deg13A == 0 {
			c.ne--
			c.vdeg[ek.a].deg01A--
			c.vdeg[ek.b].deg01A--
		}
		if picked {
			ed.deg13P--
			ed.linkP = ed.linkP[:len(ed.linkP)-1]
			if ed.deg13P == 0 {
				c.neP--
				c.vdeg[ek.a].deg01P--
				c.vdeg[ek.b].deg01P--
			}
		}
	}

	for _, fa := range facesOf(t) {
		fe := c.faces[fa.f]
		if fe == nil {
			return nil, nil, ErrUnknownFace
		}

		if picked {
			switch {
			case fe.otherP[0] == fa.opp:
				fe.otherP[0] = -1
			case fe.otherP[1] == fa.opp:
				fe.otherP[1] = -1
			}
			if fe.otherP[0] == -1 && fe.otherP[1] == -1 {
				c.nfP--
				c.vdeg[fa.f.a].deg02P--
				c.vdeg[fa.f.b].deg02P--
				c.vdeg[fa.f.c].deg02P--
				for _, ek := range edgesOfFace(fa.f) {
					c.edeg[ek].deg12P--
				}
			}
		}

		slot := -1
		switch {
		case fe.otherA[0] == fa.opp:
			slot = 0
		case fe.otherA[1] == fa.opp:
			slot = 1
		default:
			return nil, nil, ErrUnknownFace
		}
		fe.otherA[slot] = -1
		fe.typeA[slot] = Available
		fe.forcedBy[slot] = -1

		if fe.otherA[0] == -1 && fe.otherA[1] == -1 {
			c.nf--
			c.vdeg[fa.f.a].deg02A--
			c.vdeg[fa.f.b].deg02A--
			c.vdeg[fa.f.c].deg02A--
			for _, ek := range edgesOfFace(fa.f) {
				c.edeg[ek].deg12A--
			}
			delete(c.faces, fa.f)
		}
	}

	for _, v := range t {
		d := &c.vdeg[v]
		if d.completeA && !(d.deg02A*2 == d.deg03A*3 && d.deg03A > 0) {
			d.completeA = false
			newlyIncompleteA = append(newlyIncompleteA, v)
		}
		if picked && d.completeP && !(d.deg02P*2 == d.deg03P*3 && d.deg03P > 0) {
			d.completeP = false
			newlyIncompleteP = append(newlyIncompleteP, v)
		}
	}

	return newlyIncompleteA, newlyIncompleteP, nil
}
