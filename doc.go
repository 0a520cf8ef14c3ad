// Package lextet enumerates triangulated, normal 3-dimensional
// pseudomanifolds by isomorph-free lexicographic backtracking and
// classifies each one by its vertex links' Euler characteristics and
// Z/2 homology ranks.
//
// The module is organized under focused subpackages:
//
//	core/          — the dual complex: picked/forced tetrahedra, vertex
//	                 and edge degree tables, forcing back-pointers
//	admissibility/ — link-connectivity checks applied before and after
//	                 each tetrahedron is added
//	canon/         — isomorph-free pruning via lexicographically-minimal
//	                 relabeling
//	search/        — the backtracking driver: root-fan seeding, next-slot
//	                 selection, candidate enumeration, work splitting
//	classify/      — per-vertex link classification and keyed output
//	                 files
//	translate/     — format translation of classification output into
//	                 GAP array syntax
//	config/        — CLI argument and YAML batch-manifest resolution
//	matrix/        — the dense float64 matrix used to compute link
//	                 homology ranks
//
// cmd/lextet runs the enumerator; cmd/lexgap runs the translator.
package lextet
