// Package admissibility implements the local predicates the search driver
// runs before and after committing a candidate tetrahedron (§4.2): no
// closed vertex or edge, edge-link shape, the minimum degree of newly closed
// edges, and — once a vertex link closes — link and link-of-link
// connectivity. The no-double-forced-face rule is core.FacesHaveRoom.
//
// Contract:
//
//	PreCheck never mutates its Complex argument: it reads face/degree
//	tables to decide whether AddTet is even safe to call. PostCheck runs
//	after AddTet has already committed the candidate and may return false,
//	in which case the caller must RemoveTet before trying another
//	candidate — PostCheck itself never unwinds.
//
// AI-Hints:
//
//	Connectivity checks only run for vertices AddTet reports as newly
//	complete; a vertex whose link is still open has no closed-surface
//	shape to validate yet.
package admissibility
