package core

// TetType marks how a face's cofacet was introduced, mirroring the
// reference enumerator's AVAILABLE/FORCED/PICKED/FORCED_PICKED flag on each
// side of a face record.
type TetType uint8

const (
	// Available marks a cofacet slot reserved but not yet committed.
	// Never produced by AddTet in this implementation (the look-ahead
	// forcing pass that would populate it is a documented no-op hook,
	// see ForceTetrahedron), kept for data-model fidelity and so a future
	// forcing pass has somewhere to write without a schema change.
	Available TetType = iota
	// Forced marks a cofacet added as a consequence of a pick, not itself
	// picked.
	Forced
	// Picked marks a cofacet chosen directly by the search driver.
	Picked
	// ForcedPicked marks a cofacet that was first Forced and later
	// re-picked directly by the search driver.
	ForcedPicked
)

func (t TetType) String() string {
	switch t {
	case Available:
		return "AVAILABLE"
	case Forced:
		return "FORCED"
	case Picked:
		return "PICKED"
	case ForcedPicked:
		return "FORCED_PICKED"
	default:
		return "UNKNOWN"
	}
}

// MaxVertices bounds NV per the external CLI contract (§6 of the reference
// specification); NV beyond this is an argument error, not an internal
// limit surfaced mid-search.
const MaxVertices = 200

// Tetrahedron is an unordered 4-set of vertex labels, always stored sorted
// ascending so two Tetrahedron values are equal iff they name the same set.
type Tetrahedron [4]int

// Sorted returns the 4-set {a,b,c,d} as a Tetrahedron with labels ascending.
func Sorted(a, b, c, d int) Tetrahedron {
	t := Tetrahedron{a, b, c, d}
	// insertion sort: 4 elements, fixed small cost
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && t[j-1] > t[j]; j-- {
			t[j-1], t[j] = t[j], t[j-1]
		}
	}
	return t
}

// edgeKey is a canonical unordered pair a<b.
type edgeKey struct{ a, b int }

func edgeOf(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// faceKey is a canonical unordered triple a<b<c.
type faceKey struct{ a, b, c int }

func faceOf(a, b, c int) faceKey {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return faceKey{a, b, c}
}

// faceEntry is the face record F(a,b,c) of §3/4.1: up to two opposite
// vertices making tetrahedra in A, their TetType, and the mirrored P-side
// opposite vertices. forcedBy[i] holds the pick-list index that caused
// otherA[i] to be added when typeA[i] is Forced or ForcedPicked, or -1 when
// the side was added directly as a pick (or is empty).
type faceEntry struct {
	otherA   [2]int
	typeA    [2]TetType
	otherP   [2]int
	forcedBy [2]int
}

func newFaceEntry() *faceEntry {
	return &faceEntry{
		otherA:   [2]int{-1, -1},
		otherP:   [2]int{-1, -1},
		forcedBy: [2]int{-1, -1},
	}
}

// vertexDeg holds the per-vertex counters of §3, tracked separately for A
// and P so admissibility can reason about either complex.
type vertexDeg struct {
	deg01A, deg02A, deg03A int
	deg01P, deg02P, deg03P int
	completeA, completeP   bool
}

// edgeDeg holds the per-edge counters of §3, plus the edge-link walk data
// admissibility needs: linkA/linkP record, in LIFO commit order, the
// complementary vertex pair each tetrahedron at this edge contributes to
// the edge's link (a cycle or arc over these pairs once complete).
type edgeDeg struct {
	deg12A, deg13A int
	deg12P, deg13P int
	linkA, linkP   [][2]int
}

// addedRecord is one entry in the append-only log of tetrahedra ever
// committed to A, in commit order. pickIndex is the pick-list index it
// belongs to (the pick itself, or the pick that forced it); forced is true
// when this record was not the direct pick (kept for symmetry with the
// reference's list_a_forced, even though no forcing pass currently
// populates it — see ForceTetrahedron).
type addedRecord struct {
	tet       Tetrahedron
	pickIndex int
	forced    bool
}
