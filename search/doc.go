// Package search implements the Search Driver and Driver Shell of §4.4/§4.6:
// the backtracking DFS that grows a Complex one lex-smallest tetrahedron at
// a time, pruning through admissibility and canonicity, and the outer loop
// that seeds a root fan for every admissible root-edge degree.
//
// Contract:
//
//	Run drives one Complex per root-edge degree to completion (or context
//	cancellation, checked only between root-edge-degree passes — never
//	inside the recursive search itself, so a single triangulation is never
//	interrupted mid-proof). Completed, canonical triangulations are handed
//	to classify.Classify and appended through a classify.Sink.
//
// AI-Hints:
//
//	nextSlot's v0/v1 selection and candidatesFor's v2/v3 enumeration are a
//	direct, deliberately literal implementation of §4.4's textual next-slot
//	rule rather than a byte-for-byte reconstruction of the reference
//	enumerator's internal state machine (unavailable in this form) — see
//	DESIGN.md for the open-question resolution this represents.
package search
