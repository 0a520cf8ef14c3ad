// Package core owns the mutable simplicial-complex state that the search
// driver mutates tetrahedron by tetrahedron.
//
// What & Why:
//
//	Complex is the single owning aggregate for a triangulation under
//	construction: a sparse face table keyed by canonical vertex triple (the
//	added complex A) plus the subset of faces also present in the picked
//	complex P ⊆ A, per-vertex and per-edge degree tables, the ordered pick
//	list, and the forcing back-pointers needed to undo a pick's
//	look-ahead consequences atomically. Every other package (admissibility,
//	canon, search, classify) operates on a *Complex by reference; there is
//	no package-level mutable state.
//
// Contract:
//
//	AddTet/RemoveTet are exact inverses: removing the tetrahedra in the
//	reverse order they were added returns a Complex equal in every
//	observable field to one freshly built by NewComplex. Callers are
//	responsible for running admissibility checks *before* AddTet; Complex
//	itself only enforces the bookkeeping invariant that a face never gains
//	more than two cofacets.
//
// Complexity:
//
//	AddTet/RemoveTet run in O(1) amortized per face (O(deg) worst case for
//	the re-pick-of-forced detection, bounded by the small constant face
//	degree in a normal pseudomanifold).
//
// AI-Hints:
//
//	Do not mutate the slices returned by accessors (Picks, EdgeLinkPairsA,
//	EdgeLinkPairsP); they
//	alias internal storage for zero-copy reads.
package core
